package chat

import (
	"github.com/guregu/null"

	"github.com/traPtitech/atelier/model"
)

// WindowSize クライアントに返すメッセージの最大数
const WindowSize = 50

// DefaultMaxContentLength メッセージ本文の既定の最大文字数
const DefaultMaxContentLength = 2000

// SendArgs メッセージ送信引数
type SendArgs struct {
	Content       string
	SharedColor   null.String
	SharedTexture null.String
}

// Manager コミュニティチャットマネージャー
type Manager interface {
	// List 最新WindowSize件のメッセージを古い順に返します
	//
	// DBに接続できない場合は空の配列を返します。
	List() ([]*model.ChatMessage, error)
	// Send authorとしてメッセージを送信します
	//
	// 本文が空白のみかつ色が共有されていない場合、本文が長すぎる場合、
	// 存在しないテクスチャを共有しようとした場合はrepository.ArgumentErrorを返します。
	Send(author *model.User, args SendArgs) (*model.ChatMessage, error)
}
