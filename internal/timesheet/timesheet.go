// Package timesheet 是周时间表的只读聚合查询。
package timesheet

import (
	"sort"
	"time"

	"github.com/carehome-dev/care-journal/backend/internal/domain"
)

// Row 是时间表中的一行：一条出勤记录及其本次计入的小时数。
type Row struct {
	Shift domain.Shift `json:"shift"`
	Hours float64      `json:"hours"`
}

type Timesheet struct {
	StaffID    string    `json:"staffId"`
	WeekStart  time.Time `json:"weekStart"`
	WeekEnd    time.Time `json:"weekEnd"`
	Rows       []Row     `json:"rows"`
	TotalHours float64   `json:"totalHours"`
}

// WeekRange 返回包含 now 的 ISO 周（周一 00:00 起、至周日最后一刻）的闭区间。
func WeekRange(now time.Time) (time.Time, time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// time.Weekday 以周日为 0，ISO 周以周一为起点
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}

// hours 计算一条出勤记录计入的小时数。
// 未打下班卡的记录计 0 而不是估算到当前时刻：周合计宁可低估在班中的
// 班次，也不做猜测。负时长（下班早于上班的异常数据）原样计入。
func hours(s domain.Shift) float64 {
	if s.ClockInTime == nil || s.ClockOutTime == nil {
		return 0
	}
	return s.ClockOutTime.Sub(*s.ClockInTime).Minutes() / 60
}

// Weekly 聚合某员工在包含 now 的那一周内的出勤记录。
// 归属按打卡上班时刻判断：跨周的班次整体计入上班时刻所在的周。
// 未完成的班次出现在列表中但不计入合计。
func Weekly(shifts []domain.Shift, staffID string, now time.Time) Timesheet {
	start, end := WeekRange(now)

	rows := []Row{}
	total := 0.0

	for _, s := range shifts {
		if s.StaffID != staffID || s.ClockInTime == nil {
			continue
		}
		punch := *s.ClockInTime
		if punch.Before(start) || punch.After(end) {
			continue
		}

		h := hours(s)
		rows = append(rows, Row{Shift: s, Hours: h})
		total += h
	}

	// 展示时最近的打卡在最上面
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Shift.ClockInTime.After(*rows[j].Shift.ClockInTime)
	})

	return Timesheet{
		StaffID:    staffID,
		WeekStart:  start,
		WeekEnd:    end,
		Rows:       rows,
		TotalHours: total,
	}
}
