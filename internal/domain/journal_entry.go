package domain

import "time"

// JournalEntry 是值班日志中的一条记录。创建后不支持原地修改，
// 编辑通过整条替换实现。
type JournalEntry struct {
	ID         string    `json:"id"`
	ShiftID    string    `json:"shiftId,omitempty"`
	StaffID    string    `json:"staffId"`
	StaffName  string    `json:"staffName"`
	Date       string    `json:"date"` // YYYY-MM-DD，用于按天分组
	Category   string    `json:"category"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	ShiftName  string    `json:"shiftName,omitempty"` // 早班/午班/晚班/夜班，用于展示
	IsCritical bool      `json:"isCritical"`
}

// ShiftNameAt 根据时刻返回所属班段的名称。
func ShiftNameAt(t time.Time) string {
	hour := t.Hour()
	switch {
	case hour >= 5 && hour < 12:
		return "Morning Shift"
	case hour >= 12 && hour < 17:
		return "Afternoon Shift"
	case hour >= 17 && hour < 22:
		return "Evening Shift"
	default:
		return "Night Shift"
	}
}
