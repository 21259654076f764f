//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE
package repository

import (
	"github.com/guregu/null"

	"github.com/traPtitech/atelier/model"
)

// CreateArtistTagArgs アーティストタグ作成引数
type CreateArtistTagArgs struct {
	Name        string
	Description null.String
	Icon        null.String
	Color       null.String
}

// ArtistTagRepository アーティストタグリポジトリ
type ArtistTagRepository interface {
	// CreateArtistTag アーティストタグを作成します
	//
	// 成功した場合、タグとnilを返します。
	// 引数に問題がある場合、ArgumentErrorを返します。
	// 既にNameが使われている場合、ErrAlreadyExistsを返します。
	// DBによるエラーを返すことがあります。
	CreateArtistTag(args CreateArtistTagArgs) (*model.ArtistTag, error)
	// GetArtistTag 指定したIDのタグを取得します
	//
	// 成功した場合、タグとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetArtistTag(id int) (*model.ArtistTag, error)
	// GetArtistTags 全てのタグを名前順に取得します
	//
	// 成功した場合、タグの配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetArtistTags() ([]*model.ArtistTag, error)
	// DeleteArtistTag 指定したタグと、それを参照する全てのユーザータグを削除します
	//
	// 削除は単一のトランザクションで行われます。
	// 成功した場合、nilを返します。
	// 既に存在しない場合、ErrNotFoundを返します。
	// idに0を指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	DeleteArtistTag(id int) error
	// AddUserTag ユーザーにタグを付与します
	//
	// 成功した場合、付与情報とnilを返します。
	// タグが存在しない場合、ErrNotFoundを返します。
	// 既に付与されている場合、ErrAlreadyExistsを返します。
	// userID, tagIDに0を指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	AddUserTag(userID, tagID int) (*model.UserTag, error)
	// DeleteUserTag ユーザーからタグを外します
	//
	// 成功した場合、nilを返します。
	// 付与されていない場合、ErrNotFoundを返します。
	// userID, tagIDに0を指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	DeleteUserTag(userID, tagID int) error
	// GetUserTags 指定したユーザーに付与されたタグを付与順に取得します
	//
	// 参照先のタグが存在しない付与は含まれません。
	// 成功した場合、ArtistTagを埋めた付与情報の配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetUserTags(userID int) ([]*model.UserTag, error)
	// GetUserIDsByArtistTag 指定したタグが付与されたユーザーのIDを取得します
	//
	// 成功した場合、ユーザーIDの配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetUserIDsByArtistTag(tagID int) ([]int, error)
}
