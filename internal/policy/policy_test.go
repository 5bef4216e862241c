package policy

import (
	"testing"

	"ufsbd-cms-server/internal/model"
)

// 测试内容：验证路由级判定为完全相等或管理员覆盖。
func TestIsAllowed(t *testing.T) {
	cases := []struct {
		required model.Role
		current  model.Role
		want     bool
	}{
		{model.RoleAuthor, model.RoleAuthor, true},
		{model.RoleAuthor, model.RoleAdmin, true},
		{model.RoleAdmin, model.RoleDoctor, false},
		{model.RoleDoctor, model.RoleAuthor, false},
		{model.RoleViewer, "", false},
	}
	for _, tc := range cases {
		if got := IsAllowed(tc.required, tc.current); got != tc.want {
			t.Fatalf("IsAllowed(%s, %s) 期望 %v，实际为 %v", tc.required, tc.current, tc.want, got)
		}
	}
}

// 测试内容：验证能力表中各角色的授权结果。
func TestCan(t *testing.T) {
	if !Can(PostSubmit, model.RoleAuthor) || !Can(PostSubmit, model.RoleDoctor) {
		t.Fatalf("期望作者与医生可以投稿")
	}
	if Can(PostSubmit, model.RoleViewer) {
		t.Fatalf("期望访客不能投稿")
	}
	if Can(PostModerate, model.RoleDoctor) {
		t.Fatalf("期望只有管理员可以审核")
	}
	if !Can(GalleryManage, model.RoleDoctor) || !Can(OrganigramManage, model.RoleDoctor) {
		t.Fatalf("期望医生可以管理图库与组织架构")
	}
	if Can(UserManage, model.RoleDoctor) {
		t.Fatalf("期望医生不能管理用户")
	}
	if Can(Capability("unknown"), model.RoleAdmin) {
		t.Fatalf("期望未知能力一律拒绝")
	}
}

// 测试内容：验证能力快照覆盖全部能力，且管理员拥有全部能力。
func TestCapabilities(t *testing.T) {
	caps := Capabilities(model.RoleAdmin)
	if len(caps) != len(ordered) {
		t.Fatalf("期望 %d 项能力，实际为 %d", len(ordered), len(caps))
	}
	for c, ok := range caps {
		if !ok {
			t.Fatalf("期望管理员拥有 %s", c)
		}
	}
	viewer := Capabilities(model.RoleViewer)
	for c, ok := range viewer {
		if ok {
			t.Fatalf("期望访客没有 %s", c)
		}
	}
}

// 测试内容：验证 RolesFor 返回副本，修改不会影响能力表。
func TestRolesFor_ReturnsCopy(t *testing.T) {
	roles := RolesFor(PostModerate)
	roles[0] = model.RoleViewer
	if !Can(PostModerate, model.RoleAdmin) {
		t.Fatalf("期望能力表不受外部修改影响")
	}
}
