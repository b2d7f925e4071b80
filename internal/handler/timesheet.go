package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/carehome-dev/care-journal/backend/internal/domain"
	"github.com/carehome-dev/care-journal/backend/internal/timesheet"
)

func (h *Handler) GetMyTimesheet(w http.ResponseWriter, r *http.Request) {
	me := r.Context().Value(CurrentUserCtx).(*domain.User)

	shifts, err := h.repository.GetShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	sheet := timesheet.Weekly(shifts, me.ID, time.Now())
	h.successResponse(w, r, "获取周时间表成功", sheet)
}

func (h *Handler) ExportMyTimesheet(w http.ResponseWriter, r *http.Request) {
	me := r.Context().Value(CurrentUserCtx).(*domain.User)

	shifts, err := h.repository.GetShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	sheet := timesheet.Weekly(shifts, me.ID, time.Now())

	mailMessage := domain.MailMessage{
		Type: "timesheet_export",
		To:   h.config.Payroll.Email,
		Data: timesheet.MailData(me, sheet),
	}

	// 对邮件进行序列化
	emailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 将邮件发送到消息队列
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        emailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "周时间表已提交发送", sheet)
}
