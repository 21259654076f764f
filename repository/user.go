//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE
package repository

import (
	"time"

	"github.com/guregu/null"

	"github.com/traPtitech/atelier/model"
)

// UpsertUserArgs 外部IDによるユーザー作成・更新引数
type UpsertUserArgs struct {
	OpenID      string
	Name        null.String
	Email       null.String
	LoginMethod null.String
	// Role 新規作成時、または空でない場合に設定されるロール
	Role         string
	LastSignedIn time.Time
}

// UpdateUserArgs プロフィール更新引数
type UpdateUserArgs struct {
	Name   null.String
	Bio    null.String
	Avatar null.String
}

// UserRepository ユーザーリポジトリ
type UserRepository interface {
	// UpsertUser 外部IDをキーにユーザーを作成、または更新します
	//
	// 既に存在する場合、Email, LoginMethod, LastSignedInを更新します。
	// Nameは未設定の場合のみ設定されます。OpenIDは変更されません。
	// 成功した場合、ユーザーとnilを返します。
	// OpenIDが空の場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	UpsertUser(args UpsertUserArgs) (*model.User, error)
	// GetUser 指定したIDのユーザーを取得します
	//
	// 成功した場合、ユーザーとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetUser(id int) (*model.User, error)
	// GetUserByOpenID 指定した外部IDのユーザーを取得します
	//
	// 成功した場合、ユーザーとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetUserByOpenID(openID string) (*model.User, error)
	// GetUsers 指定したIDのユーザーを取得します
	//
	// 成功した場合、存在したユーザーの配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetUsers(ids []int) ([]*model.User, error)
	// UpdateUser 指定したユーザーのプロフィールを更新します
	//
	// 成功した場合、nilを返します。
	// 存在しないユーザーの場合、ErrNotFoundを返します。
	// idに0を指定した場合、ErrNilIDを返します。
	// 更新内容に問題がある場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	UpdateUser(id int, args UpdateUserArgs) error
}
