package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 每个集合整体序列化存储，反序列化后必须与写入前结构一致，
// 字段和元素顺序都不允许发生漂移。
func roundTrip[T any](t *testing.T, in []T) {
	t.Helper()

	blob, err := json.Marshal(in)
	require.NoError(t, err)

	out := []T{}
	require.NoError(t, json.Unmarshal(blob, &out))
	assert.Equal(t, in, out)
}

func TestUsersRoundTrip(t *testing.T) {
	roundTrip(t, []User{
		{ID: "1", Name: "Admin Jane", Username: "admin", Role: RoleAdmin, Active: true, PIN: "1234"},
		{ID: "2", Name: "Caregiver Mark", Username: "mark", Role: RoleStaff, Active: false, PIN: "2222"},
	})
}

func TestShiftsRoundTrip(t *testing.T) {
	in := time.Date(2024, time.March, 11, 8, 0, 0, 0, time.UTC)
	out := time.Date(2024, time.March, 11, 16, 0, 0, 0, time.UTC)

	roundTrip(t, []Shift{
		// 已完成：两个打卡时刻都有，且已有人确认交接
		{
			ID: "s1", StaffID: "2", Date: "2024-03-11", StartTime: "08:00", EndTime: "16:00",
			ClockInTime: &in, ClockOutTime: &out, Status: ShiftStatusCompleted,
			AcknowledgedBy: []string{"1", "3"},
		},
		// 在班中：下班时刻为 nil，确认列表为空
		{
			ID: "s2", StaffID: "3", Date: "2024-03-11", StartTime: "16:00",
			ClockInTime: &out, Status: ShiftStatusClockedIn,
			AcknowledgedBy: []string{},
		},
		// 仅排班：两个打卡时刻都是 nil
		{
			ID: "s3", StaffID: "2", Date: "2024-03-12", StartTime: "08:00", EndTime: "16:00",
			Status: ShiftStatusScheduled,
		},
	})
}

func TestMessagesRoundTrip(t *testing.T) {
	roundTrip(t, []Message{
		{
			ID: "m1", SenderID: "2", SenderName: "Caregiver Mark",
			Text: "COVERAGE REQUEST: Mark needs cover for Mar 11 (08:00-16:00).",
			Severity: SeverityImportant,
			CreatedAt: time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC),
			AcknowledgedBy: []string{"2"},
		},
	})
}

func TestJournalEntriesRoundTrip(t *testing.T) {
	roundTrip(t, []JournalEntry{
		{
			ID: "j1", ShiftID: "s1", StaffID: "2", StaffName: "Caregiver Mark",
			Date: "2024-03-11", Category: "Medication", Text: "Medication given as scheduled.",
			Timestamp: time.Date(2024, time.March, 11, 9, 30, 0, 0, time.UTC),
			ShiftName: "Morning Shift", IsCritical: true,
		},
		// omitempty 字段全部留空
		{
			ID: "j2", StaffID: "3", StaffName: "Caregiver Sarah",
			Date: "2024-03-11", Category: "General Note", Text: "Quiet afternoon.",
			Timestamp: time.Date(2024, time.March, 11, 14, 0, 0, 0, time.UTC),
		},
	})
}

func TestCategoriesRoundTrip(t *testing.T) {
	roundTrip(t, []Category{
		{ID: "1", Name: "General Note"},
		{ID: "5", Name: "Medication"},
	})
}

func TestScheduleRoundTrip(t *testing.T) {
	roundTrip(t, []ScheduleEntry{
		// 完整的替班审批中间态
		{
			ID: "e1", StaffID: "2", Date: "2024-03-11", StartTime: "08:00", EndTime: "16:00",
			Note: "Front desk", CoverageRequested: true, InterestedStaffID: "3",
		},
		// 无人认领的空档，omitempty 字段留空
		{
			ID: "e2", Date: "2024-03-13", StartTime: "08:00", EndTime: "16:00",
		},
	})
}
