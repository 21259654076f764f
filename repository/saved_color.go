//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE
package repository

import (
	"github.com/guregu/null"

	"github.com/traPtitech/atelier/model"
)

// SavedColorRepository 保存色リポジトリ
type SavedColorRepository interface {
	// CreateSavedColor 色を保存します
	//
	// htmlColorは大文字に正規化されます。
	// 成功した場合、保存した色とnilを返します。
	// 引数に問題がある場合、ArgumentErrorを返します。
	// userIDに0を指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	CreateSavedColor(userID int, htmlColor string, name null.String) (*model.SavedColor, error)
	// GetSavedColor 指定したIDの保存色を取得します
	//
	// 成功した場合、保存色とnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetSavedColor(id int) (*model.SavedColor, error)
	// GetSavedColors 指定したユーザーの保存色を古い順に取得します
	//
	// 成功した場合、保存色の配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetSavedColors(userID int) ([]*model.SavedColor, error)
	// DeleteSavedColor 指定したIDの保存色を削除します
	//
	// 成功した場合、nilを返します。
	// 既に存在しない場合、ErrNotFoundを返します。
	// idに0を指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	DeleteSavedColor(id int) error
}
