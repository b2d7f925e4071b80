package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type TimesheetMailRow struct {
	Date     string `json:"date"`
	ClockIn  string `json:"clockIn"`
	ClockOut string `json:"clockOut"` // 仍在班时为 "STILL IN"
	Hours    string `json:"hours"`
}

type TimesheetMailData struct {
	StaffName  string             `json:"staffName"`
	WeekStart  string             `json:"weekStart"`
	WeekEnd    string             `json:"weekEnd"`
	Rows       []TimesheetMailRow `json:"rows"`
	TotalHours string             `json:"totalHours"`
}
