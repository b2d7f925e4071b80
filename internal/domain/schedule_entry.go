package domain

// ScheduleEntry 表示排班表中的一个计划班次。
// StaffID 为空表示这是一个无人认领的空档；
// InterestedStaffID 仅在 CoverageRequested 为 true 时才允许被设置。
type ScheduleEntry struct {
	ID                string `json:"id"`
	StaffID           string `json:"staffId"`
	Date              string `json:"date"`      // YYYY-MM-DD
	StartTime         string `json:"startTime"` // HH:mm
	EndTime           string `json:"endTime"`   // HH:mm
	Note              string `json:"note,omitempty"`
	CoverageRequested bool   `json:"coverageRequested"`
	InterestedStaffID string `json:"interestedStaffId,omitempty"`
}
