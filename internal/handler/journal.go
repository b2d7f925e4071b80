package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carehome-dev/care-journal/backend/internal/domain"
)

func (h *Handler) GetJournalEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.repository.GetJournalEntries()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取护理日志成功", entries)
}

// categoryExists 检查分类名是否在分类集合中。
func (h *Handler) categoryExists(name string) (bool, error) {
	categories, err := h.repository.GetCategories()
	if err != nil {
		return false, err
	}
	for _, c := range categories {
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (h *Handler) CreateJournalEntry(w http.ResponseWriter, r *http.Request) {
	me := r.Context().Value(CurrentUserCtx).(*domain.User)

	var req struct {
		ShiftID    string `json:"shiftId"`
		Category   string `json:"category" validate:"required"`
		Text       string `json:"text" validate:"required"`
		IsCritical bool   `json:"isCritical"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	ok, err := h.categoryExists(req.Category)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !ok {
		h.errorResponse(w, r, "分类不存在")
		return
	}

	entries, err := h.repository.GetJournalEntries()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	now := time.Now()
	entry := domain.JournalEntry{
		ID:         domain.NewID(),
		ShiftID:    req.ShiftID,
		StaffID:    me.ID,
		StaffName:  me.Name,
		Date:       now.Format("2006-01-02"),
		Category:   req.Category,
		Text:       req.Text,
		Timestamp:  now,
		ShiftName:  domain.ShiftNameAt(now),
		IsCritical: req.IsCritical,
	}

	entries = append(entries, entry)
	if err := h.repository.SaveJournalEntries(entries); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "日志记录成功", entry)
}

func (h *Handler) ReplaceJournalEntry(w http.ResponseWriter, r *http.Request) {
	me := r.Context().Value(CurrentUserCtx).(*domain.User)
	entryID := chi.URLParam(r, "id")

	var req struct {
		Category   string `json:"category" validate:"required"`
		Text       string `json:"text" validate:"required"`
		IsCritical bool   `json:"isCritical"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	ok, err := h.categoryExists(req.Category)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !ok {
		h.errorResponse(w, r, "分类不存在")
		return
	}

	entries, err := h.repository.GetJournalEntries()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	found := -1
	for i := range entries {
		if entries[i].ID == entryID {
			found = i
			break
		}
	}
	if found == -1 {
		h.errorResponse(w, r, "日志不存在")
		return
	}

	// 作者本人或管理员才能修改
	if me.Role != domain.RoleAdmin && entries[found].StaffID != me.ID {
		h.errorResponse(w, r, "权限不足")
		return
	}

	entries[found].Category = req.Category
	entries[found].Text = req.Text
	entries[found].IsCritical = req.IsCritical

	if err := h.repository.SaveJournalEntries(entries); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "日志更新成功", entries[found])
}
