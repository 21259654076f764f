package palette

import (
	"github.com/guregu/null"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
)

// ExportDocument パレットのエクスポート形式
type ExportDocument struct {
	Name        string      `json:"name"`
	Colors      []string    `json:"colors"`
	Description null.String `json:"description"`
}

// Manager カラーパレットマネージャー
type Manager interface {
	// List 指定したユーザーのパレットを新しい順に返します
	//
	// DBに接続できない場合は空の配列を返します。
	List(ownerID int) ([]*model.ColorPalette, error)
	// ListPublic 公開パレットを新しい順に最大limit件返します
	//
	// DBに接続できない場合は空の配列を返します。
	ListPublic(limit int) ([]*model.ColorPalette, error)
	// Get パレットを取得します
	//
	// 存在しない、または他のユーザーの非公開パレットの場合、repository.ErrNotFoundを返します。
	Get(requesterID, id int) (*model.ColorPalette, error)
	// Create パレットを作成します
	//
	// 引数に問題がある場合、repository.ArgumentErrorを返します。
	Create(args repository.CreateColorPaletteArgs) (*model.ColorPalette, error)
	// Update パレットを更新します
	//
	// 存在しない場合、repository.ErrNotFoundを返します。
	// 他のユーザーのパレットの場合、repository.ErrForbiddenを返します。
	Update(requesterID, id int, args repository.UpdateColorPaletteArgs) (*model.ColorPalette, error)
	// Delete パレットを削除します
	//
	// 存在しない場合、repository.ErrNotFoundを返します。
	// 他のユーザーのパレットの場合、repository.ErrForbiddenを返します。
	Delete(requesterID, id int) error
	// Export パレットをエクスポート形式に変換します
	//
	// 閲覧権限はGetと同じです。
	Export(requesterID, id int) (*ExportDocument, error)
}
