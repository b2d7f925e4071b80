package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/carehome-dev/care-journal/backend/internal/domain"
)

func (h *Handler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.repository.GetUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取员工列表成功", users)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name" validate:"required"`
		Username string `json:"username"`
		Role     string `json:"role" validate:"required,oneof=Staff Admin"`
		PIN      string `json:"pin" validate:"required,len=4,numeric"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 未指定登录名时，用姓名去掉空格的小写形式
	if req.Username == "" {
		req.Username = strings.ToLower(strings.ReplaceAll(req.Name, " ", ""))
	}

	users, err := h.repository.GetUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	for _, u := range users {
		if u.Username == req.Username {
			h.badRequest(w, r, errors.New("登录名已存在"))
			return
		}
	}

	user := domain.User{
		ID:       domain.NewID(),
		Name:     req.Name,
		Username: req.Username,
		Role:     domain.Role(req.Role),
		Active:   true,
		PIN:      req.PIN,
	}

	users = append(users, user)
	if err := h.repository.SaveUsers(users); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "员工创建成功", user)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     *string `json:"name"`
		Username *string `json:"username"`
		Role     *string `json:"role" validate:"omitempty,oneof=Staff Admin"`
		PIN      *string `json:"pin" validate:"omitempty,len=4,numeric"`
		Active   *bool   `json:"active"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	users, err := h.repository.GetUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	userID := chi.URLParam(r, "id")
	idx := -1
	for i := range users {
		if users[i].ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		h.errorResponse(w, r, "员工不存在")
		return
	}

	if req.Username != nil {
		for i, u := range users {
			if i != idx && u.Username == *req.Username {
				h.badRequest(w, r, errors.New("登录名已存在"))
				return
			}
		}
		users[idx].Username = *req.Username
	}
	if req.Name != nil {
		users[idx].Name = *req.Name
	}
	if req.Role != nil {
		users[idx].Role = domain.Role(*req.Role)
	}
	if req.PIN != nil {
		users[idx].PIN = *req.PIN
	}
	if req.Active != nil {
		users[idx].Active = *req.Active
	}

	if err := h.repository.SaveUsers(users); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新员工信息成功", users[idx])
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	me := r.Context().Value(CurrentUserCtx).(*domain.User)
	userID := chi.URLParam(r, "id")

	if userID == me.ID {
		h.errorResponse(w, r, "不能删除自己的账号")
		return
	}

	users, err := h.repository.GetUsers()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	next := make([]domain.User, 0, len(users))
	found := false
	for _, u := range users {
		if u.ID == userID {
			found = true
			continue
		}
		next = append(next, u)
	}
	if !found {
		h.errorResponse(w, r, "员工不存在")
		return
	}

	if err := h.repository.SaveUsers(next); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除员工成功", nil)
}
