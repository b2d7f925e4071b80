package utils

import (
	"fmt"
	"time"

	"github.com/carehome-dev/care-journal/backend/internal/roster"
)

// ValidateSlots 检查每条班次模板的时间格式，以及结束时刻是否晚于开始时刻。
// 模板之间允许重叠甚至完全相同，生成结果按设计同样重复。
func ValidateSlots(slots []roster.Slot) error {
	for i, slot := range slots {
		start, err := time.Parse("15:04", slot.Start)
		if err != nil {
			return fmt.Errorf("班次模板 %d 的开始时间格式错误", i+1)
		}
		end, err := time.Parse("15:04", slot.End)
		if err != nil {
			return fmt.Errorf("班次模板 %d 的结束时间格式错误", i+1)
		}
		if !end.After(start) {
			return fmt.Errorf("班次模板 %d 的结束时间必须晚于开始时间", i+1)
		}
	}
	return nil
}

// ValidateClockTime 检查 HH:mm 格式的时刻字符串。
func ValidateClockTime(value string) error {
	if _, err := time.Parse("15:04", value); err != nil {
		return fmt.Errorf("时间 %q 不是合法的 HH:mm 格式", value)
	}
	return nil
}

// ValidateDate 检查 YYYY-MM-DD 格式的日期字符串。
func ValidateDate(value string) error {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("日期 %q 不是合法的 YYYY-MM-DD 格式", value)
	}
	return nil
}
