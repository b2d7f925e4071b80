package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carehome-dev/care-journal/backend/internal/domain"
	"github.com/carehome-dev/care-journal/backend/internal/roster"
	"github.com/carehome-dev/care-journal/backend/internal/utils"
	"github.com/carehome-dev/care-journal/backend/internal/workflow"
)

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.repository.GetSchedule()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取排班表成功", schedule)
}

func (h *Handler) CreateScheduleEntry(w http.ResponseWriter, r *http.Request) {
	me := r.Context().Value(CurrentUserCtx).(*domain.User)

	var req struct {
		StaffID   *string `json:"staffId"`
		Date      string  `json:"date" validate:"required"`
		StartTime string  `json:"startTime" validate:"required"`
		EndTime   string  `json:"endTime" validate:"required"`
		Note      string  `json:"note"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateDate(req.Date); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateClockTime(req.StartTime); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateClockTime(req.EndTime); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 普通员工只能给自己加班次，管理员可以指定任何人或留空
	staffID := me.ID
	if req.StaffID != nil {
		if me.Role != domain.RoleAdmin && *req.StaffID != me.ID {
			h.errorResponse(w, r, "权限不足")
			return
		}
		staffID = *req.StaffID
	}

	schedule, err := h.repository.GetSchedule()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	entry := domain.ScheduleEntry{
		ID:                domain.NewID(),
		StaffID:           staffID,
		Date:              req.Date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Note:              req.Note,
		CoverageRequested: false,
	}

	schedule = append(schedule, entry)
	if err := h.repository.SaveSchedule(schedule); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "排班添加成功", entry)
}

func (h *Handler) GenerateRoster(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Weekday *int          `json:"weekday" validate:"required,gte=0,lte=6"` // 0 = 周日
		Months  *int          `json:"months" validate:"required,gte=0,lte=12"`
		Slots   []roster.Slot `json:"slots"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := utils.ValidateSlots(req.Slots); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 先完成全部生成再一次性落盘，失败时排班集合保持不变
	batch := roster.Generate(time.Now(), time.Weekday(*req.Weekday), *req.Months, req.Slots)

	schedule, err := h.repository.GetSchedule()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	schedule = append(schedule, batch...)
	if err := h.repository.SaveSchedule(schedule); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "排班生成成功", map[string]any{
		"generated": len(batch),
		"entries":   batch,
	})
}

// findScheduleEntry 按 ID 查找空档，不存在时返回 nil。
func findScheduleEntry(schedule []domain.ScheduleEntry, entryID string) *domain.ScheduleEntry {
	for i := range schedule {
		if schedule[i].ID == entryID {
			return &schedule[i]
		}
	}
	return nil
}

// appendBroadcast 把一条广播通知追加到消息集合。
func (h *Handler) appendBroadcast(msg *domain.Message) error {
	if msg == nil {
		return nil
	}

	messages, err := h.repository.GetMessages()
	if err != nil {
		return err
	}

	messages = append(messages, *msg)
	return h.repository.SaveMessages(messages)
}

func (h *Handler) RequestCoverage(w http.ResponseWriter, r *http.Request) {
	me := r.Context().Value(CurrentUserCtx).(*domain.User)
	entryID := chi.URLParam(r, "id")

	schedule, err := h.repository.GetSchedule()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if findScheduleEntry(schedule, entryID) == nil {
		h.errorResponse(w, r, "排班空档不存在")
		return
	}

	next, msg, err := workflow.RequestCoverage(schedule, entryID, me, time.Now())
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.SaveSchedule(next); err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if err := h.appendBroadcast(msg); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "替班申请成功", findScheduleEntry(next, entryID))
}

func (h *Handler) ExpressInterest(w http.ResponseWriter, r *http.Request) {
	me := r.Context().Value(CurrentUserCtx).(*domain.User)
	entryID := chi.URLParam(r, "id")

	schedule, err := h.repository.GetSchedule()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	entry := findScheduleEntry(schedule, entryID)
	if entry == nil {
		h.errorResponse(w, r, "排班空档不存在")
		return
	}

	// 通知文案中需要原班次所有者的姓名
	ownerName := ""
	if entry.StaffID != "" {
		users, err := h.repository.GetUsers()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		for _, u := range users {
			if u.ID == entry.StaffID {
				ownerName = u.Name
				break
			}
		}
	}

	next, msg, err := workflow.ExpressInterest(schedule, entryID, me, ownerName, time.Now())
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.SaveSchedule(next); err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if err := h.appendBroadcast(msg); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "响应替班成功，等待管理员审批", findScheduleEntry(next, entryID))
}

func (h *Handler) ApproveSwap(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "id")

	schedule, err := h.repository.GetSchedule()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if findScheduleEntry(schedule, entryID) == nil {
		h.errorResponse(w, r, "排班空档不存在")
		return
	}

	next, err := workflow.ApproveSwap(schedule, entryID)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.SaveSchedule(next); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "替班已批准", findScheduleEntry(next, entryID))
}

func (h *Handler) RejectInterest(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "id")

	schedule, err := h.repository.GetSchedule()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if findScheduleEntry(schedule, entryID) == nil {
		h.errorResponse(w, r, "排班空档不存在")
		return
	}

	next, err := workflow.RejectInterest(schedule, entryID)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	if err := h.repository.SaveSchedule(next); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "已驳回响应，替班申请保持开放", findScheduleEntry(next, entryID))
}

func (h *Handler) AssignStaff(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "id")

	var req struct {
		StaffID string `json:"staffId"` // 留空表示置为无人认领
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.StaffID != "" {
		users, err := h.repository.GetUsers()
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		exists := false
		for _, u := range users {
			if u.ID == req.StaffID {
				exists = true
				break
			}
		}
		if !exists {
			h.badRequest(w, r, errors.New("指定的员工不存在"))
			return
		}
	}

	schedule, err := h.repository.GetSchedule()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if findScheduleEntry(schedule, entryID) == nil {
		h.errorResponse(w, r, "排班空档不存在")
		return
	}

	next := workflow.AssignStaff(schedule, entryID, req.StaffID)
	if err := h.repository.SaveSchedule(next); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "指派成功", findScheduleEntry(next, entryID))
}

func (h *Handler) DeleteScheduleEntry(w http.ResponseWriter, r *http.Request) {
	me := r.Context().Value(CurrentUserCtx).(*domain.User)
	entryID := chi.URLParam(r, "id")

	schedule, err := h.repository.GetSchedule()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	entry := findScheduleEntry(schedule, entryID)
	if entry == nil {
		h.errorResponse(w, r, "排班空档不存在")
		return
	}

	// 只有空档所有者和管理员可以删除
	if me.Role != domain.RoleAdmin && entry.StaffID != me.ID {
		h.errorResponse(w, r, "权限不足")
		return
	}

	next := workflow.DeleteEntry(schedule, entryID)
	if err := h.repository.SaveSchedule(next); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "删除排班成功", nil)
}
