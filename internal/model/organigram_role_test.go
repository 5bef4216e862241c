package model

import "testing"

// 测试内容：验证受保护职位集合只包含主席、秘书长与财务。
func TestOrganigramRole_ProtectedSet(t *testing.T) {
	protected := map[OrganigramRole]bool{
		OrgRolePresident:  true,
		OrgRoleSecretaire: true,
		OrgRoleTresorier:  true,
	}
	for _, info := range OrganigramRoles {
		if info.Role.Protected() != protected[info.Role] {
			t.Fatalf("职位 %s 期望 protected=%v", info.Role, protected[info.Role])
		}
	}
	if OrganigramRole("unknown").Protected() {
		t.Fatalf("期望未知职位不受保护")
	}
}

// 测试内容：验证标签与默认颜色的查找及回退。
func TestOrganigramRole_LabelAndColor(t *testing.T) {
	if got := OrgRoleTresorier.Label(); got != "Trésorier" {
		t.Fatalf("期望 Trésorier，实际为 %q", got)
	}
	if got := OrganigramRole("x").Label(); got != "x" {
		t.Fatalf("期望未知职位原样返回，实际为 %q", got)
	}
	if got := OrgRolePresident.DefaultColor(); got != "from-blue-600 to-blue-700" {
		t.Fatalf("非预期颜色 %q", got)
	}
	if got := OrganigramRole("x").DefaultColor(); got != defaultOrgColor {
		t.Fatalf("期望默认颜色，实际为 %q", got)
	}
}

// 测试内容：验证账号角色与博客分类的枚举校验。
func TestEnumsValid(t *testing.T) {
	if !RoleDoctor.Valid() || Role("root").Valid() {
		t.Fatalf("账号角色校验错误")
	}
	if !CategoryConseils.Valid() || PostCategory("sport").Valid() {
		t.Fatalf("博客分类校验错误")
	}
}
