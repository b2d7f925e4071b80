package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateNoSlots(t *testing.T) {
	entries := Generate(date(2024, time.January, 4), time.Monday, 3, nil)
	assert.Empty(t, entries)
}

func TestGenerateAdvancesToFirstMatchingWeekday(t *testing.T) {
	// 2024-01-04 是周四，第一个周一应该是 2024-01-08
	today := date(2024, time.January, 4)
	slots := []Slot{{Start: "09:00", End: "17:00"}}

	entries := Generate(today, time.Monday, 1, slots)

	require.NotEmpty(t, entries)
	assert.Equal(t, "2024-01-08", entries[0].Date)
}

func TestGenerateIncludesTodayWhenWeekdayMatches(t *testing.T) {
	// 2024-01-04 本身就是周四
	today := date(2024, time.January, 4)
	slots := []Slot{{Start: "09:00", End: "17:00"}}

	entries := Generate(today, time.Thursday, 1, slots)

	require.NotEmpty(t, entries)
	assert.Equal(t, "2024-01-04", entries[0].Date)
}

func TestGenerateCalendarMonthCutoffInclusive(t *testing.T) {
	// 从周四 2024-01-04 起生成一个月的周一班：截止日 2024-02-04（周日），
	// 周一依次为 01-08、01-15、01-22、01-29，02-05 已越过截止日
	today := date(2024, time.January, 4)
	slots := []Slot{{Start: "08:00", End: "12:00"}, {Start: "13:00", End: "17:00"}}

	entries := Generate(today, time.Monday, 1, slots)

	require.Len(t, entries, 8)
	assert.Equal(t, "2024-01-08", entries[0].Date)
	assert.Equal(t, "2024-01-29", entries[len(entries)-1].Date)

	// 截止日当天匹配 weekday 时也要生成：从 2024-01-01 起一个月的周四班，
	// 截止日 2024-02-01 恰好是周四，应包含在内
	entries = Generate(date(2024, time.January, 1), time.Thursday, 1, slots[:1])
	require.Len(t, entries, 5)
	assert.Equal(t, "2024-01-04", entries[0].Date)
	assert.Equal(t, "2024-02-01", entries[4].Date)
}

func TestGenerateZeroMonthSpan(t *testing.T) {
	// 跨度为 0 时截止日就是今天，仅当今天匹配 weekday 才会生成
	today := date(2024, time.January, 4) // 周四
	slots := []Slot{{Start: "09:00", End: "17:00"}}

	assert.Len(t, Generate(today, time.Thursday, 0, slots), 1)
	assert.Empty(t, Generate(today, time.Friday, 0, slots))
}

func TestGenerateSlotOrderAndShape(t *testing.T) {
	today := date(2024, time.January, 1)
	slots := []Slot{{Start: "08:00", End: "12:00"}, {Start: "13:00", End: "17:00"}}

	entries := Generate(today, time.Monday, 1, slots)
	require.NotEmpty(t, entries)

	seen := map[string]bool{}
	for i, e := range entries {
		assert.Empty(t, e.StaffID)
		assert.False(t, e.CoverageRequested)
		assert.Empty(t, e.InterestedStaffID)
		assert.NotEmpty(t, e.ID)
		assert.False(t, seen[e.ID], "空档 ID 重复")
		seen[e.ID] = true

		d, err := time.Parse("2006-01-02", e.Date)
		require.NoError(t, err)
		assert.Equal(t, time.Monday, d.Weekday())

		// 同一日期内模板顺序保持不变
		slot := slots[i%len(slots)]
		assert.Equal(t, slot.Start, e.StartTime)
		assert.Equal(t, slot.End, e.EndTime)
	}
}

func TestGenerateKeepsDuplicateSlots(t *testing.T) {
	today := date(2024, time.January, 1)
	slots := []Slot{{Start: "09:00", End: "17:00"}, {Start: "09:00", End: "17:00"}}

	entries := Generate(today, time.Monday, 0, slots)

	require.Len(t, entries, 2)
	assert.Equal(t, entries[0].Date, entries[1].Date)
	assert.Equal(t, entries[0].StartTime, entries[1].StartTime)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}
