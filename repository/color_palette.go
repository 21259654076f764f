//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE
package repository

import (
	"github.com/guregu/null"

	"github.com/traPtitech/atelier/model"
)

// CreateColorPaletteArgs パレット作成引数
type CreateColorPaletteArgs struct {
	UserID      int
	Name        string
	Description null.String
	Colors      []string
	IsPublic    bool
}

// UpdateColorPaletteArgs パレット更新引数
type UpdateColorPaletteArgs struct {
	Name        null.String
	Description null.String
	Colors      []string
	IsPublic    null.Bool
}

// ColorPaletteRepository カラーパレットリポジトリ
type ColorPaletteRepository interface {
	// CreateColorPalette パレットを作成します
	//
	// 成功した場合、パレットとnilを返します。
	// 引数に問題がある場合、ArgumentErrorを返します。
	// UserIDに0を指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	CreateColorPalette(args CreateColorPaletteArgs) (*model.ColorPalette, error)
	// GetColorPalette 指定したIDのパレットを取得します
	//
	// 成功した場合、パレットとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetColorPalette(id int) (*model.ColorPalette, error)
	// GetColorPalettes 指定したユーザーのパレットを新しい順に取得します
	//
	// 成功した場合、パレットの配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetColorPalettes(userID int) ([]*model.ColorPalette, error)
	// GetPublicColorPalettes 公開パレットを新しい順に取得します
	//
	// limitが0以下の場合は全件を返します。
	// 成功した場合、パレットの配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetPublicColorPalettes(limit int) ([]*model.ColorPalette, error)
	// UpdateColorPalette 指定したパレットを更新します
	//
	// 成功した場合、nilを返します。
	// 存在しないパレットの場合、ErrNotFoundを返します。
	// idに0を指定した場合、ErrNilIDを返します。
	// 更新内容に問題がある場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	UpdateColorPalette(id int, args UpdateColorPaletteArgs) error
	// DeleteColorPalette 指定したパレットを削除します
	//
	// 成功した場合、nilを返します。
	// 既に存在しない場合、ErrNotFoundを返します。
	// idに0を指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	DeleteColorPalette(id int) error
}
