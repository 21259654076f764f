package color

import (
	"github.com/guregu/null"

	"github.com/traPtitech/atelier/model"
)

// Manager 保存色マネージャー
type Manager interface {
	// List 指定したユーザーの保存色を古い順に返します
	//
	// DBに接続できない場合は空の配列を返します。
	List(ownerID int) ([]*model.SavedColor, error)
	// Save 色を保存します
	//
	// 引数に問題がある場合、repository.ArgumentErrorを返します。
	Save(ownerID int, htmlColor string, name null.String) (*model.SavedColor, error)
	// Delete 保存色を削除します
	//
	// 存在しない場合、repository.ErrNotFoundを返します。
	// 他のユーザーの色の場合、repository.ErrForbiddenを返します。
	Delete(requesterID, colorID int) error
}
