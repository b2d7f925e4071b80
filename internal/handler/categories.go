package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/carehome-dev/care-journal/backend/internal/domain"
)

func (h *Handler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repository.GetCategories()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取分类列表成功", categories)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	categories, err := h.repository.GetCategories()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	for _, c := range categories {
		if c.Name == req.Name {
			h.badRequest(w, r, errors.New("分类已存在"))
			return
		}
	}

	category := domain.Category{
		ID:   domain.NewID(),
		Name: req.Name,
	}

	categories = append(categories, category)
	if err := h.repository.SaveCategories(categories); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "分类创建成功", category)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	categories, err := h.repository.GetCategories()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	categoryID := chi.URLParam(r, "id")
	idx := -1
	for i := range categories {
		if categories[i].ID == categoryID {
			idx = i
			break
		}
	}
	if idx == -1 {
		h.errorResponse(w, r, "分类不存在")
		return
	}

	categories[idx].Name = req.Name
	if err := h.repository.SaveCategories(categories); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "更新分类成功", categories[idx])
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repository.GetCategories()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	categoryID := chi.URLParam(r, "id")
	next := make([]domain.Category, 0, len(categories))
	found := false
	for _, c := range categories {
		if c.ID == categoryID {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		h.errorResponse(w, r, "分类不存在")
		return
	}

	if err := h.repository.SaveCategories(next); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除分类成功", nil)
}
