package rbac

import (
	"github.com/traPtitech/atelier/service/rbac/permission"
	"github.com/traPtitech/atelier/service/rbac/role"
)

type rbacImpl struct {
	roles map[string]permission.Permissions
}

// New RBACを初期化
func New() RBAC {
	return &rbacImpl{
		roles: role.SystemRoles(),
	}
}

func (r *rbacImpl) IsGranted(_role string, p permission.Permission) bool {
	if _role == role.Admin {
		return true
	}
	perms, ok := r.roles[_role]
	return ok && perms.Contains(p)
}

func (r *rbacImpl) GetGrantedPermissions(role string) []permission.Permission {
	perms, ok := r.roles[role]
	if !ok {
		return []permission.Permission{}
	}
	return perms.Array()
}
