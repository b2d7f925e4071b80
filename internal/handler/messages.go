package handler

import (
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carehome-dev/care-journal/backend/internal/domain"
)

func (h *Handler) GetAllMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.repository.GetMessages()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取消息成功", messages)
}

func (h *Handler) GetUnreadMessages(w http.ResponseWriter, r *http.Request) {
	me := r.Context().Value(CurrentUserCtx).(*domain.User)

	messages, err := h.repository.GetMessages()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	unread := make([]domain.Message, 0)
	for _, m := range messages {
		if !slices.Contains(m.AcknowledgedBy, me.ID) {
			unread = append(unread, m)
		}
	}

	h.successResponse(w, r, "获取未读消息成功", unread)
}

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	me := r.Context().Value(CurrentUserCtx).(*domain.User)

	var req struct {
		Text     string          `json:"text" validate:"required"`
		Severity domain.Severity `json:"severity" validate:"required,oneof=Info Important Critical"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	messages, err := h.repository.GetMessages()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 发送者默认已读自己的消息
	message := domain.Message{
		ID:             domain.NewID(),
		SenderID:       me.ID,
		SenderName:     me.Name,
		Text:           req.Text,
		Severity:       req.Severity,
		CreatedAt:      time.Now(),
		AcknowledgedBy: []string{me.ID},
	}

	messages = append(messages, message)
	if err := h.repository.SaveMessages(messages); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "消息发送成功", message)
}

func (h *Handler) AcknowledgeMessage(w http.ResponseWriter, r *http.Request) {
	me := r.Context().Value(CurrentUserCtx).(*domain.User)
	messageID := chi.URLParam(r, "id")

	messages, err := h.repository.GetMessages()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	found := -1
	for i := range messages {
		if messages[i].ID == messageID {
			found = i
			break
		}
	}
	if found == -1 {
		h.errorResponse(w, r, "消息不存在")
		return
	}

	// 重复确认直接视为成功
	if !slices.Contains(messages[found].AcknowledgedBy, me.ID) {
		messages[found].AcknowledgedBy = append(messages[found].AcknowledgedBy, me.ID)
		if err := h.repository.SaveMessages(messages); err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "消息已确认", messages[found])
}
