package domain

import "time"

type ShiftStatus string

const (
	ShiftStatusScheduled ShiftStatus = "Scheduled"
	ShiftStatusClockedIn ShiftStatus = "ClockedIn"
	ShiftStatusCompleted ShiftStatus = "Completed"
	ShiftStatusOpen      ShiftStatus = "Open"
)

// Shift 表示一条实际出勤记录，在打卡上班时创建，打卡下班后除了
// 交接确认（AcknowledgedBy 追加）外不再修改。
type Shift struct {
	ID                string      `json:"id"`
	StaffID           string      `json:"staffId"`
	Date              string      `json:"date"`      // YYYY-MM-DD
	StartTime         string      `json:"startTime"` // HH:mm
	EndTime           string      `json:"endTime"`   // HH:mm，下班前为空
	ClockInTime       *time.Time  `json:"clockInTime,omitempty"`
	ClockOutTime      *time.Time  `json:"clockOutTime,omitempty"`
	Status            ShiftStatus `json:"status"`
	CoverageRequested bool        `json:"coverageRequested"`
	ApprovedByAdmin   bool        `json:"approvedByAdmin"`
	AcknowledgedBy    []string    `json:"acknowledgedBy"`
}
