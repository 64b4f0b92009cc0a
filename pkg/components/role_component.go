package components

// Role 时间轴画面中实体的角色
type Role int

const (
	// RoleTopLine 顶部参考线
	RoleTopLine Role = iota
	// RoleBottomLine 底部参考线
	RoleBottomLine
	// RoleCursor 游标
	RoleCursor
	// RoleStatusText 状态文本
	RoleStatusText
)

// String 返回角色名称
func (r Role) String() string {
	switch r {
	case RoleTopLine:
		return "TopLine"
	case RoleBottomLine:
		return "BottomLine"
	case RoleCursor:
		return "Cursor"
	case RoleStatusText:
		return "StatusText"
	default:
		return "Unknown"
	}
}

// RoleComponent 标记实体在画面中的角色，系统按角色写入布局和帧数据
type RoleComponent struct {
	Role Role
}
