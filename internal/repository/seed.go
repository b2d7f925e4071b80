package repository

import "github.com/carehome-dev/care-journal/backend/internal/domain"

// 初始数据与前端版本保持一致：一名管理员、两名护理员、六个日志分类。
// 首次读取对应集合时写入。

func SeedUsers() []domain.User {
	return []domain.User{
		{ID: "1", Name: "Admin Jane", Username: "admin", Role: domain.RoleAdmin, Active: true, PIN: "1234"},
		{ID: "2", Name: "Caregiver Mark", Username: "mark", Role: domain.RoleStaff, Active: true, PIN: "2222"},
		{ID: "3", Name: "Caregiver Sarah", Username: "sarah", Role: domain.RoleStaff, Active: true, PIN: "3333"},
	}
}

func SeedCategories() []domain.Category {
	return []domain.Category{
		{ID: "1", Name: "General Note"},
		{ID: "2", Name: "Water"},
		{ID: "3", Name: "Meals"},
		{ID: "4", Name: "Hygiene"},
		{ID: "5", Name: "Medication"},
		{ID: "6", Name: "Mood"},
	}
}
