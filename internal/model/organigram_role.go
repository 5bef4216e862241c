package model

// OrganigramRole 组织架构中的职位
type OrganigramRole string

const (
	OrgRolePresident         OrganigramRole = "president"
	OrgRoleSecretaire        OrganigramRole = "secretaire"
	OrgRoleSecretaireAdjoint OrganigramRole = "secretaireAdjoint"
	OrgRoleTresorier         OrganigramRole = "tresorier"
	OrgRoleTresorierAdjoint  OrganigramRole = "tresorierAdjoint"
	OrgRoleVicePresidents    OrganigramRole = "vicePresidents"
	OrgRoleChargesMission    OrganigramRole = "chargesMission"
	OrgRoleVerificateur      OrganigramRole = "verificateur"
)

const defaultOrgColor = "from-blue-500 to-blue-600"

// OrganigramRoleInfo 职位的展示与保护属性，全站唯一来源
type OrganigramRoleInfo struct {
	Role        OrganigramRole `json:"role"`
	Label       string         `json:"label"`
	Description string         `json:"description"`
	Color       string         `json:"color"`
	Icon        string         `json:"icon"`
	Protected   bool           `json:"protected"`
}

// OrganigramRoles 按展示顺序排列
var OrganigramRoles = []OrganigramRoleInfo{
	{Role: OrgRolePresident, Label: "Président", Description: "Co-présidents de l'organisation", Color: "from-blue-600 to-blue-700", Icon: "award", Protected: true},
	{Role: OrgRoleSecretaire, Label: "Secrétaire", Description: "Secrétaire générale", Color: "from-blue-500 to-blue-600", Icon: "user-check", Protected: true},
	{Role: OrgRoleSecretaireAdjoint, Label: "Secrétaire Adjoint", Description: "Secrétaire général adjoint", Color: "from-cyan-500 to-cyan-600", Icon: "user-check"},
	{Role: OrgRoleTresorier, Label: "Trésorier", Description: "Trésorier principal", Color: "from-teal-500 to-teal-600", Icon: "building", Protected: true},
	{Role: OrgRoleTresorierAdjoint, Label: "Trésorier Adjoint", Description: "Trésorier adjoint", Color: "from-green-500 to-green-600", Icon: "building"},
	{Role: OrgRoleVicePresidents, Label: "Vice-présidents", Description: "Vice-présidents", Color: "from-purple-500 to-purple-600", Icon: "users"},
	{Role: OrgRoleChargesMission, Label: "Chargés de Mission", Description: "Chargés de mission", Color: "from-red-500 to-red-600", Icon: "shield"},
	{Role: OrgRoleVerificateur, Label: "Vérificateur", Description: "Vérificateur aux comptes", Color: "from-orange-500 to-orange-600", Icon: "book-open"},
}

// LookupOrganigramRole 查找职位信息
func LookupOrganigramRole(role OrganigramRole) (OrganigramRoleInfo, bool) {
	for _, info := range OrganigramRoles {
		if info.Role == role {
			return info, true
		}
	}
	return OrganigramRoleInfo{}, false
}

func (r OrganigramRole) Valid() bool {
	_, ok := LookupOrganigramRole(r)
	return ok
}

// Protected 受保护职位不允许删除成员
func (r OrganigramRole) Protected() bool {
	info, ok := LookupOrganigramRole(r)
	return ok && info.Protected
}

// Label 未知职位原样返回
func (r OrganigramRole) Label() string {
	if info, ok := LookupOrganigramRole(r); ok {
		return info.Label
	}
	return string(r)
}

func (r OrganigramRole) DefaultColor() string {
	if info, ok := LookupOrganigramRole(r); ok {
		return info.Color
	}
	return defaultOrgColor
}
