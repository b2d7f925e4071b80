// Package roster 负责将周期性排班模式展开为一批未分配的排班空档。
// 展开本身是纯函数，调用方负责把生成的批次一次性写入排班集合。
package roster

import (
	"time"

	"github.com/carehome-dev/care-journal/backend/internal/domain"
)

// Slot 是一条班次模板，只有起止时刻。
type Slot struct {
	Start string `json:"start"` // HH:mm
	End   string `json:"end"`   // HH:mm
}

// Generate 从 today 起，找到第一个星期数等于 weekday 的日期（含当天），
// 然后每隔 7 天、直到 today 加 spanMonths 个自然月的截止日（含截止日当天）
// 为止，按模板顺序为每个日期生成空档。
//
// 截止日使用自然月加法而不是 30 天近似；模板允许重复，生成结果同样重复；
// 不做任何与既有排班的冲突检查。
func Generate(today time.Time, weekday time.Weekday, spanMonths int, slots []Slot) []domain.ScheduleEntry {
	entries := []domain.ScheduleEntry{}
	if len(slots) == 0 {
		return entries
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	cutoff := day.AddDate(0, spanMonths, 0)

	// 找到第一个匹配的星期数
	for day.Weekday() != weekday {
		day = day.AddDate(0, 0, 1)
	}

	for !day.After(cutoff) {
		dateStr := day.Format("2006-01-02")
		for _, slot := range slots {
			entries = append(entries, domain.ScheduleEntry{
				ID:                domain.NewID(),
				StaffID:           "", // 空档
				Date:              dateStr,
				StartTime:         slot.Start,
				EndTime:           slot.End,
				CoverageRequested: false,
			})
		}
		day = day.AddDate(0, 0, 7)
	}

	return entries
}
