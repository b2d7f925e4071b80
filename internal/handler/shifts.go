package handler

import (
	"net/http"
	"slices"
	"time"

	"github.com/carehome-dev/care-journal/backend/internal/domain"
)

func (h *Handler) GetAllShifts(w http.ResponseWriter, r *http.Request) {
	shifts, err := h.repository.GetShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取班次记录成功", shifts)
}

func (h *Handler) GetMyShifts(w http.ResponseWriter, r *http.Request) {
	me := r.Context().Value(CurrentUserCtx).(*domain.User)

	shifts, err := h.repository.GetShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	mine := make([]domain.Shift, 0)
	for _, s := range shifts {
		if s.StaffID == me.ID {
			mine = append(mine, s)
		}
	}

	h.successResponse(w, r, "获取班次记录成功", mine)
}

// appendAutoJournalEntry 记录上下班打卡产生的自动日志。
func (h *Handler) appendAutoJournalEntry(me *domain.User, shiftID string, text string, now time.Time) error {
	entries, err := h.repository.GetJournalEntries()
	if err != nil {
		return err
	}

	entries = append(entries, domain.JournalEntry{
		ID:         domain.NewID(),
		ShiftID:    shiftID,
		StaffID:    me.ID,
		StaffName:  me.Name,
		Date:       now.Format("2006-01-02"),
		Category:   "General Note",
		Text:       text,
		Timestamp:  now,
		ShiftName:  domain.ShiftNameAt(now),
		IsCritical: false,
	})

	return h.repository.SaveJournalEntries(entries)
}

func (h *Handler) ClockIn(w http.ResponseWriter, r *http.Request) {
	me := r.Context().Value(CurrentUserCtx).(*domain.User)

	var req struct {
		// 上班前必须确认交接内容，前端在展示完交接记录后置为 true
		HandoffAcknowledged bool `json:"handoffAcknowledged"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shifts, err := h.repository.GetShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	pendingHandoff := false
	for i := range shifts {
		s := &shifts[i]
		if s.StaffID == me.ID && s.Status == domain.ShiftStatusClockedIn {
			h.errorResponse(w, r, "当前已在岗，请先下班打卡")
			return
		}
		if s.Status == domain.ShiftStatusCompleted && s.StaffID != me.ID &&
			!slices.Contains(s.AcknowledgedBy, me.ID) {
			pendingHandoff = true
		}
	}

	if pendingHandoff && !req.HandoffAcknowledged {
		h.errorResponse(w, r, "上班前请先查看并确认交接记录")
		return
	}

	now := time.Now()

	// 确认过交接后，把所有未确认的已完成班次标记为已读
	if req.HandoffAcknowledged {
		for i := range shifts {
			s := &shifts[i]
			if s.Status == domain.ShiftStatusCompleted && s.StaffID != me.ID &&
				!slices.Contains(s.AcknowledgedBy, me.ID) {
				s.AcknowledgedBy = append(s.AcknowledgedBy, me.ID)
			}
		}
	}

	shift := domain.Shift{
		ID:             domain.NewID(),
		StaffID:        me.ID,
		Date:           now.Format("2006-01-02"),
		StartTime:      now.Format("15:04"),
		ClockInTime:    &now,
		Status:         domain.ShiftStatusClockedIn,
		AcknowledgedBy: []string{},
	}

	shifts = append(shifts, shift)
	if err := h.repository.SaveShifts(shifts); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.appendAutoJournalEntry(me, shift.ID, "Arrived (Clocked In)", now); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "上班打卡成功", shift)
}

func (h *Handler) ClockOut(w http.ResponseWriter, r *http.Request) {
	me := r.Context().Value(CurrentUserCtx).(*domain.User)

	var req struct {
		// 留空则不发送交接广播
		HandoffNote string `json:"handoffNote"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shifts, err := h.repository.GetShifts()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 取最近一次上班打卡的班次
	active := -1
	for i := range shifts {
		s := &shifts[i]
		if s.StaffID != me.ID || s.Status != domain.ShiftStatusClockedIn {
			continue
		}
		if active == -1 || (s.ClockInTime != nil && shifts[active].ClockInTime != nil &&
			s.ClockInTime.After(*shifts[active].ClockInTime)) {
			active = i
		}
	}
	if active == -1 {
		h.errorResponse(w, r, "当前没有在岗的班次")
		return
	}

	now := time.Now()
	shifts[active].ClockOutTime = &now
	shifts[active].EndTime = now.Format("15:04")
	shifts[active].Status = domain.ShiftStatusCompleted

	if err := h.repository.SaveShifts(shifts); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.appendAutoJournalEntry(me, shifts[active].ID, "Left (Clocked Out)", now); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if req.HandoffNote != "" {
		err := h.appendBroadcast(&domain.Message{
			ID:             domain.NewID(),
			SenderID:       me.ID,
			SenderName:     me.Name,
			Text:           req.HandoffNote,
			Severity:       domain.SeverityImportant,
			CreatedAt:      now,
			AcknowledgedBy: []string{me.ID},
		})
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
	}

	h.successResponse(w, r, "下班打卡成功", shifts[active])
}
