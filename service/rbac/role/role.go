package role

import (
	"github.com/traPtitech/atelier/service/rbac/permission"
)

const (
	// Admin 管理者ロール
	Admin = "admin"
	// User 一般ユーザーロール
	User = "user"
)

var userPerms = []permission.Permission{
	permission.GetMe,
	permission.EditMe,
	permission.GetUser,
	permission.GetArtistTag,
	permission.GetSavedColor,
	permission.SaveColor,
	permission.DeleteSavedColor,
	permission.GetPalette,
	permission.CreatePalette,
	permission.EditPalette,
	permission.DeletePalette,
	permission.GetChatMessage,
	permission.PostChatMessage,
	permission.UsePicker,
}

// SystemRoles システム定義ロールと、その権限
func SystemRoles() map[string]permission.Permissions {
	return map[string]permission.Permissions{
		Admin: permission.PermissionsFromArray(permission.List),
		User:  permission.PermissionsFromArray(userPerms),
	}
}

// IsValid 定義されたロールかどうか
func IsValid(role string) bool {
	return role == Admin || role == User
}
