package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/traPtitech/atelier/service/rbac/permission"
	"github.com/traPtitech/atelier/service/rbac/role"
)

func TestRbacImpl_IsGranted(t *testing.T) {
	t.Parallel()
	r := New()

	for _, p := range permission.List {
		assert.True(t, r.IsGranted(role.Admin, p), p)
	}

	assert.True(t, r.IsGranted(role.User, permission.SaveColor))
	assert.True(t, r.IsGranted(role.User, permission.GetArtistTag))
	assert.False(t, r.IsGranted(role.User, permission.ManageArtistTags))
	assert.False(t, r.IsGranted("unknown", permission.GetMe))
	assert.False(t, r.IsGranted("", permission.GetMe))
}

func TestRbacImpl_GetGrantedPermissions(t *testing.T) {
	t.Parallel()
	r := New()

	assert.ElementsMatch(t, permission.List, r.GetGrantedPermissions(role.Admin))
	assert.NotContains(t, r.GetGrantedPermissions(role.User), permission.ManageArtistTags)
	assert.Len(t, r.GetGrantedPermissions("unknown"), 0)
}
