package policy

import "ufsbd-cms-server/internal/model"

// Capability 一项受角色控制的操作
type Capability string

const (
	PostSubmit       Capability = "post.submit"
	PostModerate     Capability = "post.moderate"
	UserManage       Capability = "user.manage"
	GalleryManage    Capability = "gallery.manage"
	OrganigramManage Capability = "organigram.manage"
	AdminDashboard   Capability = "admin.dashboard"
	MaintenanceRun   Capability = "maintenance.run"
)

// table 能力到角色集合的唯一映射，路由与界面共用
var table = map[Capability][]model.Role{
	PostSubmit:       {model.RoleAuthor, model.RoleDoctor, model.RoleAdmin},
	PostModerate:     {model.RoleAdmin},
	UserManage:       {model.RoleAdmin},
	GalleryManage:    {model.RoleAdmin, model.RoleDoctor},
	OrganigramManage: {model.RoleAdmin, model.RoleDoctor},
	AdminDashboard:   {model.RoleAdmin, model.RoleDoctor},
	MaintenanceRun:   {model.RoleAdmin},
}

// ordered 固定输出顺序
var ordered = []Capability{
	PostSubmit,
	PostModerate,
	UserManage,
	GalleryManage,
	OrganigramManage,
	AdminDashboard,
	MaintenanceRun,
}

// IsAllowed 路由级判定：角色完全相等，或当前为管理员
func IsAllowed(required, current model.Role) bool {
	if current == "" {
		return false
	}
	return current == required || current == model.RoleAdmin
}

// Can 判断角色是否拥有某项能力，未知能力一律拒绝
func Can(capability Capability, role model.Role) bool {
	for _, r := range table[capability] {
		if r == role {
			return true
		}
	}
	return false
}

// RolesFor 返回拥有该能力的角色（副本）
func RolesFor(capability Capability) []model.Role {
	roles := table[capability]
	out := make([]model.Role, len(roles))
	copy(out, roles)
	return out
}

// Capabilities 计算角色对全部能力的判定结果
func Capabilities(role model.Role) map[Capability]bool {
	out := make(map[Capability]bool, len(ordered))
	for _, c := range ordered {
		out[c] = Can(c, role)
	}
	return out
}
