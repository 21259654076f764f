package tag

import (
	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
)

// Manager アーティストタグマネージャー
//
// 作成・削除・付与の権限チェックは呼び出し側で行います。
type Manager interface {
	// List 全てのタグを返します
	//
	// DBに接続できない場合は空の配列を返します。
	List() ([]*model.ArtistTag, error)
	// Create タグを作成します
	//
	// 引数に問題がある場合、repository.ArgumentErrorを返します。
	// 名前が重複している場合、repository.ErrAlreadyExistsを返します。
	Create(args repository.CreateArtistTagArgs) (*model.ArtistTag, error)
	// Delete タグと、その全ての付与を削除します
	//
	// 存在しない場合、repository.ErrNotFoundを返します。
	Delete(id int) error
	// Assign ユーザーにタグを付与します
	//
	// ユーザーまたはタグが存在しない場合、repository.ErrNotFoundを返します。
	// 既に付与されている場合、repository.ErrAlreadyExistsを返します。
	Assign(userID, tagID int) (*model.UserTag, error)
	// Unassign ユーザーからタグを外します
	//
	// 付与されていない場合、repository.ErrNotFoundを返します。
	Unassign(userID, tagID int) error
	// GetUserTags ユーザーに付与されたタグを返します
	//
	// DBに接続できない場合は空の配列を返します。
	GetUserTags(userID int) ([]*model.UserTag, error)
	// GetUsersByTag タグが付与されたユーザーを返します
	//
	// タグが存在しない場合、repository.ErrNotFoundを返します。
	GetUsersByTag(tagID int) ([]*model.User, error)
}
