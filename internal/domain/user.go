package domain

type Role string

const (
	RoleStaff Role = "Staff"
	RoleAdmin Role = "Admin"
)

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Active   bool   `json:"active"`
	PIN      string `json:"pin"` // 4 位数字，按照产品设计明文存储
}
