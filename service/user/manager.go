package user

import (
	"context"

	"github.com/traPtitech/atelier/model"
	"github.com/traPtitech/atelier/repository"
)

// Identity 認証プロキシから渡される利用者の識別情報
type Identity struct {
	OpenID      string
	Name        string
	Email       string
	LoginMethod string
}

// Manager ユーザーマネージャー
type Manager interface {
	// SignIn 識別情報に対応するユーザーを返します
	//
	// ユーザーが存在しない場合は作成します。
	// 同じ識別情報による呼び出しは一定時間キャッシュされます。
	// OpenIDが空の場合、repository.ArgumentErrorを返します。
	SignIn(ctx context.Context, id Identity) (*model.User, error)
	// Get 指定したIDのユーザーを返します
	//
	// 存在しない場合、repository.ErrNotFoundを返します。
	Get(ctx context.Context, id int) (*model.User, error)
	// UpdateProfile ユーザーのプロフィールを更新し、更新後のユーザーを返します
	//
	// 存在しない場合、repository.ErrNotFoundを返します。
	// 引数に問題がある場合、repository.ArgumentErrorを返します。
	UpdateProfile(ctx context.Context, id int, args repository.UpdateUserArgs) (*model.User, error)
}
