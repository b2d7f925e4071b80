package domain

// Category 是日志条目的分类标签，由管理员维护。
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
