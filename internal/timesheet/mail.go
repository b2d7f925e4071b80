package timesheet

import (
	"fmt"

	"github.com/carehome-dev/care-journal/backend/internal/domain"
)

// MailData 把一张周时间表转换成导出邮件需要的数据。
// 小时数只在这里被四舍五入到两位小数，聚合过程不做舍入。
func MailData(staff *domain.User, sheet Timesheet) domain.TimesheetMailData {
	data := domain.TimesheetMailData{
		StaffName:  staff.Name,
		WeekStart:  sheet.WeekStart.Format("Jan 2"),
		WeekEnd:    sheet.WeekEnd.Format("Jan 2"),
		Rows:       make([]domain.TimesheetMailRow, 0, len(sheet.Rows)),
		TotalHours: fmt.Sprintf("%.2f", sheet.TotalHours),
	}

	for _, row := range sheet.Rows {
		out := "STILL IN"
		if row.Shift.ClockOutTime != nil {
			out = row.Shift.ClockOutTime.Format("3:04 PM")
		}
		data.Rows = append(data.Rows, domain.TimesheetMailRow{
			Date:     row.Shift.ClockInTime.Format("Monday, Jan 2"),
			ClockIn:  row.Shift.ClockInTime.Format("3:04 PM"),
			ClockOut: out,
			Hours:    fmt.Sprintf("%.2f", row.Hours),
		})
	}

	return data
}
