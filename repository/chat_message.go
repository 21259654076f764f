//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE
package repository

import (
	"github.com/guregu/null"

	"github.com/traPtitech/atelier/model"
)

// CreateChatMessageArgs チャットメッセージ作成引数
type CreateChatMessageArgs struct {
	UserID        int
	UserName      string
	Message       string
	ColorShared   null.String
	TextureShared null.String
}

// ChatMessageRepository チャットメッセージリポジトリ
type ChatMessageRepository interface {
	// CreateChatMessage メッセージを追加します
	//
	// 成功した場合、メッセージとnilを返します。
	// 引数に問題がある場合、ArgumentErrorを返します。
	// UserIDに0を指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	CreateChatMessage(args CreateChatMessageArgs) (*model.ChatMessage, error)
	// GetRecentChatMessages 最新のメッセージを最大limit件、古い順に取得します
	//
	// 成功した場合、メッセージの配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetRecentChatMessages(limit int) ([]*model.ChatMessage, error)
	// GetChatMessagesCount メッセージの総数を取得します
	//
	// 成功した場合、総数とnilを返します。
	// DBによるエラーを返すことがあります。
	GetChatMessagesCount() (int64, error)
}
