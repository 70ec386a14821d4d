package employee

import (
	"strings"
	"time"
)

// Role は社員の役割を表す閉じた列挙型です。値の順序は既存クライアントとの互換性のため固定です。
type Role int

const (
	RoleMediaTeam Role = iota
	RoleMentor
	RoleManager
	RoleSocialMediaTeam
	RoleTechnicianSupervisor
	RoleKitchenStaff
)

// RoleUnknown は正規名に一致しなかった役割を表します。Valid は false です。
const RoleUnknown Role = -1

var roleNames = [...]string{
	RoleMediaTeam:            "MEDIA_TEAM",
	RoleMentor:               "MENTOR",
	RoleManager:              "MANAGER",
	RoleSocialMediaTeam:      "SOCIAL_MEDIA_TEAM",
	RoleTechnicianSupervisor: "TECHNICIAN_SUPERVISOR",
	RoleKitchenStaff:         "KITCHEN_STAFF",
}

// Roles は定義済みの全役割を序数順に返します。
func Roles() []Role {
	roles := make([]Role, len(roleNames))
	for i := range roleNames {
		roles[i] = Role(i)
	}
	return roles
}

// Valid は列挙に含まれる役割かどうかを返します。
func (r Role) Valid() bool {
	return r >= 0 && int(r) < len(roleNames)
}

// String は役割の正規名 (例: MEDIA_TEAM) を返します。
func (r Role) String() string {
	if !r.Valid() {
		return "UNKNOWN"
	}
	return roleNames[r]
}

// GrantsGarageAccess は在籍中の社員がこの役割でガレージに入れるかを返します。
// 新しい役割は明示的に追加しない限り許可されません。
func (r Role) GrantsGarageAccess() bool {
	switch r {
	case RoleMediaTeam, RoleMentor, RoleManager:
		return true
	case RoleSocialMediaTeam, RoleTechnicianSupervisor, RoleKitchenStaff:
		return false
	default:
		return false
	}
}

// ParseRole は正規名から役割を取得します。大文字小文字と前後の空白は無視します。
func ParseRole(raw string) (Role, error) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	for i, candidate := range roleNames {
		if candidate == name {
			return Role(i), nil
		}
	}
	return 0, ErrInvalidRole
}

// RoleFromName は正規名から役割を返します。一致しない場合は RoleUnknown を返し、
// 拒否はサービスの検証順序に従って行われます。
func RoleFromName(raw string) Role {
	role, err := ParseRole(raw)
	if err != nil {
		return RoleUnknown
	}
	return role
}

// Employee は社員エンティティです。Address は外部から与えられる不透明な識別子です。
type Employee struct {
	Address    string
	Name       string
	Role       Role
	IsEmployed bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Clone は呼び出し側が保持してよいコピーを返します。
func (e *Employee) Clone() *Employee {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

// CanAccessGarage は記録が存在し、在籍中で、許可された役割の場合のみ true を返します。
func CanAccessGarage(e *Employee) bool {
	if e == nil || !e.IsEmployed {
		return false
	}
	return e.Role.GrantsGarageAccess()
}
