// Package workflow 实现排班空档的替班审批状态机。
// 所有变换都是对排班集合快照的纯函数：输入一个切片，返回一个新切片，
// 原切片不会被修改。针对不存在的空档 ID 的变换按约定返回原快照（no-op）。
package workflow

import (
	"errors"
	"fmt"
	"time"

	"github.com/carehome-dev/care-journal/backend/internal/domain"
)

// State 是一个空档的可观察状态，由字段组合推导而来。
type State string

const (
	StateAssigned          State = "Assigned"          // 已分配，未申请替班
	StateCoverageRequested State = "CoverageRequested" // 已申请替班，等待有人响应
	StateInterestPending   State = "InterestPending"   // 有人响应，等待管理员审批
	StateOpen              State = "Open"              // 无人认领
)

var (
	ErrNotOwner         = errors.New("只能为自己的班次申请替班")
	ErrAlreadyRequested = errors.New("已经申请过替班")
	ErrNotRequested     = errors.New("该班次没有申请替班")
	ErrInterestTaken    = errors.New("已有其他人响应该替班申请")
	ErrOwnShift         = errors.New("不能响应自己班次的替班申请")
	ErrNoInterest       = errors.New("该班次没有待审批的响应")
)

// StateOf 推导一个空档当前所处的状态。
// 无人认领的空档无论是否带有替班标记都视为 Open。
func StateOf(e domain.ScheduleEntry) State {
	if e.StaffID == "" {
		return StateOpen
	}
	if e.CoverageRequested {
		if e.InterestedStaffID != "" {
			return StateInterestPending
		}
		return StateCoverageRequested
	}
	return StateAssigned
}

func findEntry(schedule []domain.ScheduleEntry, entryID string) int {
	for i := range schedule {
		if schedule[i].ID == entryID {
			return i
		}
	}
	return -1
}

func cloneSchedule(schedule []domain.ScheduleEntry) []domain.ScheduleEntry {
	next := make([]domain.ScheduleEntry, len(schedule))
	copy(next, schedule)
	return next
}

// broadcast 构造一条广播通知，发送人默认已确认。
func broadcast(sender *domain.User, text string, severity domain.Severity, now time.Time) *domain.Message {
	return &domain.Message{
		ID:             domain.NewID(),
		SenderID:       sender.ID,
		SenderName:     sender.Name,
		Text:           text,
		Severity:       severity,
		CreatedAt:      now,
		AcknowledgedBy: []string{sender.ID},
	}
}

func formatEntryDate(dateStr string) string {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return d.Format("Jan 2")
}

// RequestCoverage 由班次所有者发起替班申请，并广播一条 Important 通知。
func RequestCoverage(schedule []domain.ScheduleEntry, entryID string, requester *domain.User, now time.Time) ([]domain.ScheduleEntry, *domain.Message, error) {
	idx := findEntry(schedule, entryID)
	if idx == -1 {
		return schedule, nil, nil
	}

	entry := schedule[idx]
	if entry.StaffID != requester.ID {
		return schedule, nil, ErrNotOwner
	}
	if entry.CoverageRequested {
		return schedule, nil, ErrAlreadyRequested
	}

	next := cloneSchedule(schedule)
	next[idx].CoverageRequested = true

	text := fmt.Sprintf("COVERAGE REQUEST: %s needs cover for %s (%s-%s).",
		requester.Name, formatEntryDate(entry.Date), entry.StartTime, entry.EndTime)
	return next, broadcast(requester, text, domain.SeverityImportant, now), nil
}

// ExpressInterest 由志愿者响应替班申请，等待管理员审批，并广播通知。
// ownerName 用于通知文案，空档没有所有者时显示 Open Slot。
func ExpressInterest(schedule []domain.ScheduleEntry, entryID string, volunteer *domain.User, ownerName string, now time.Time) ([]domain.ScheduleEntry, *domain.Message, error) {
	idx := findEntry(schedule, entryID)
	if idx == -1 {
		return schedule, nil, nil
	}

	entry := schedule[idx]
	if !entry.CoverageRequested {
		return schedule, nil, ErrNotRequested
	}
	if entry.InterestedStaffID != "" {
		return schedule, nil, ErrInterestTaken
	}
	if entry.StaffID == volunteer.ID {
		return schedule, nil, ErrOwnShift
	}

	next := cloneSchedule(schedule)
	next[idx].InterestedStaffID = volunteer.ID

	if ownerName == "" {
		ownerName = "Open Slot"
	}
	text := fmt.Sprintf("INTEREST: %s is available to cover the shift on %s (%s). Admin approval pending.",
		volunteer.Name, formatEntryDate(entry.Date), ownerName)
	return next, broadcast(volunteer, text, domain.SeverityImportant, now), nil
}

// ApproveSwap 由管理员批准替班：响应者成为新的所有者，回到 Assigned。
// 管理员动作不产生广播。
func ApproveSwap(schedule []domain.ScheduleEntry, entryID string) ([]domain.ScheduleEntry, error) {
	idx := findEntry(schedule, entryID)
	if idx == -1 {
		return schedule, nil
	}

	if schedule[idx].InterestedStaffID == "" {
		return schedule, ErrNoInterest
	}

	next := cloneSchedule(schedule)
	next[idx].StaffID = next[idx].InterestedStaffID
	next[idx].InterestedStaffID = ""
	next[idx].CoverageRequested = false
	return next, nil
}

// RejectInterest 由管理员驳回响应：清除响应者，替班申请保持开放，
// 允许其他人再次响应。
func RejectInterest(schedule []domain.ScheduleEntry, entryID string) ([]domain.ScheduleEntry, error) {
	idx := findEntry(schedule, entryID)
	if idx == -1 {
		return schedule, nil
	}

	if schedule[idx].InterestedStaffID == "" {
		return schedule, ErrNoInterest
	}

	next := cloneSchedule(schedule)
	next[idx].InterestedStaffID = ""
	return next, nil
}

// AssignStaff 是管理员的直接指派，可以在任意状态下使用（包括 Open），
// staffID 传空表示把空档重新置为无人认领。无条件清除替班标记与响应者。
func AssignStaff(schedule []domain.ScheduleEntry, entryID string, staffID string) []domain.ScheduleEntry {
	idx := findEntry(schedule, entryID)
	if idx == -1 {
		return schedule
	}

	next := cloneSchedule(schedule)
	next[idx].StaffID = staffID
	next[idx].CoverageRequested = false
	next[idx].InterestedStaffID = ""
	return next
}

// DeleteEntry 删除一个空档，任意状态下都允许。权限（所有者或管理员）
// 由调用方校验。
func DeleteEntry(schedule []domain.ScheduleEntry, entryID string) []domain.ScheduleEntry {
	idx := findEntry(schedule, entryID)
	if idx == -1 {
		return schedule
	}

	next := make([]domain.ScheduleEntry, 0, len(schedule)-1)
	next = append(next, schedule[:idx]...)
	next = append(next, schedule[idx+1:]...)
	return next
}
