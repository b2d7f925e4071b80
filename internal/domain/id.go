package domain

import "github.com/google/uuid"

// NewID 为所有实体生成唯一标识。
func NewID() string {
	return uuid.NewString()
}
