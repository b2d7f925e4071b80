package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carehome-dev/care-journal/backend/internal/domain"
)

var (
	mark  = &domain.User{ID: "u-mark", Name: "Mark", Role: domain.RoleStaff, Active: true}
	sarah = &domain.User{ID: "u-sarah", Name: "Sarah", Role: domain.RoleStaff, Active: true}
	chen  = &domain.User{ID: "u-chen", Name: "Chen", Role: domain.RoleStaff, Active: true}
)

func testSchedule() []domain.ScheduleEntry {
	return []domain.ScheduleEntry{
		{ID: "e1", StaffID: mark.ID, Date: "2024-03-11", StartTime: "08:00", EndTime: "16:00"},
		{ID: "e2", StaffID: sarah.ID, Date: "2024-03-12", StartTime: "16:00", EndTime: "22:00"},
		{ID: "e3", StaffID: "", Date: "2024-03-13", StartTime: "08:00", EndTime: "16:00"},
	}
}

var now = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func TestStateOf(t *testing.T) {
	assert.Equal(t, StateAssigned, StateOf(domain.ScheduleEntry{StaffID: "u1"}))
	assert.Equal(t, StateCoverageRequested, StateOf(domain.ScheduleEntry{StaffID: "u1", CoverageRequested: true}))
	assert.Equal(t, StateInterestPending, StateOf(domain.ScheduleEntry{StaffID: "u1", CoverageRequested: true, InterestedStaffID: "u2"}))
	assert.Equal(t, StateOpen, StateOf(domain.ScheduleEntry{}))
	// 无人认领时即使带着替班标记也视为 Open
	assert.Equal(t, StateOpen, StateOf(domain.ScheduleEntry{CoverageRequested: true, InterestedStaffID: "u2"}))
}

func TestRequestCoverage(t *testing.T) {
	schedule := testSchedule()

	next, msg, err := RequestCoverage(schedule, "e1", mark, now)

	require.NoError(t, err)
	assert.True(t, next[0].CoverageRequested)
	assert.Equal(t, StateCoverageRequested, StateOf(next[0]))

	require.NotNil(t, msg)
	assert.Equal(t, "COVERAGE REQUEST: Mark needs cover for Mar 11 (08:00-16:00).", msg.Text)
	assert.Equal(t, domain.SeverityImportant, msg.Severity)
	assert.Equal(t, mark.ID, msg.SenderID)
	assert.Contains(t, msg.AcknowledgedBy, mark.ID)

	// 原快照不被修改
	assert.False(t, schedule[0].CoverageRequested)
}

func TestRequestCoverageGuards(t *testing.T) {
	schedule := testSchedule()

	_, msg, err := RequestCoverage(schedule, "e1", sarah, now)
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Nil(t, msg)

	requested, _, err := RequestCoverage(schedule, "e1", mark, now)
	require.NoError(t, err)

	_, msg, err = RequestCoverage(requested, "e1", mark, now)
	assert.ErrorIs(t, err, ErrAlreadyRequested)
	assert.Nil(t, msg)
}

func TestExpressInterest(t *testing.T) {
	schedule, _, err := RequestCoverage(testSchedule(), "e1", mark, now)
	require.NoError(t, err)

	next, msg, err := ExpressInterest(schedule, "e1", sarah, mark.Name, now)

	require.NoError(t, err)
	assert.Equal(t, sarah.ID, next[0].InterestedStaffID)
	assert.Equal(t, StateInterestPending, StateOf(next[0]))

	require.NotNil(t, msg)
	assert.Equal(t, "INTEREST: Sarah is available to cover the shift on Mar 11 (Mark). Admin approval pending.", msg.Text)
	assert.Equal(t, domain.SeverityImportant, msg.Severity)
	assert.Contains(t, msg.AcknowledgedBy, sarah.ID)
}

func TestExpressInterestOpenSlotName(t *testing.T) {
	schedule := testSchedule()
	schedule[2].CoverageRequested = true

	_, msg, err := ExpressInterest(schedule, "e3", sarah, "", now)

	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Contains(t, msg.Text, "(Open Slot)")
}

func TestExpressInterestGuards(t *testing.T) {
	schedule := testSchedule()

	_, _, err := ExpressInterest(schedule, "e1", sarah, mark.Name, now)
	assert.ErrorIs(t, err, ErrNotRequested)

	requested, _, err := RequestCoverage(schedule, "e1", mark, now)
	require.NoError(t, err)

	_, _, err = ExpressInterest(requested, "e1", mark, mark.Name, now)
	assert.ErrorIs(t, err, ErrOwnShift)

	pending, _, err := ExpressInterest(requested, "e1", sarah, mark.Name, now)
	require.NoError(t, err)

	_, _, err = ExpressInterest(pending, "e1", chen, mark.Name, now)
	assert.ErrorIs(t, err, ErrInterestTaken)
}

func TestApproveSwap(t *testing.T) {
	schedule, _, err := RequestCoverage(testSchedule(), "e1", mark, now)
	require.NoError(t, err)
	schedule, _, err = ExpressInterest(schedule, "e1", sarah, mark.Name, now)
	require.NoError(t, err)

	next, err := ApproveSwap(schedule, "e1")

	require.NoError(t, err)
	assert.Equal(t, sarah.ID, next[0].StaffID)
	assert.Empty(t, next[0].InterestedStaffID)
	assert.False(t, next[0].CoverageRequested)
	assert.Equal(t, StateAssigned, StateOf(next[0]))
}

func TestApproveSwapWithoutInterest(t *testing.T) {
	schedule, _, err := RequestCoverage(testSchedule(), "e1", mark, now)
	require.NoError(t, err)

	_, err = ApproveSwap(schedule, "e1")
	assert.ErrorIs(t, err, ErrNoInterest)
}

func TestRejectInterestReopensRequest(t *testing.T) {
	schedule, _, err := RequestCoverage(testSchedule(), "e1", mark, now)
	require.NoError(t, err)
	schedule, _, err = ExpressInterest(schedule, "e1", sarah, mark.Name, now)
	require.NoError(t, err)

	next, err := RejectInterest(schedule, "e1")

	require.NoError(t, err)
	assert.Empty(t, next[0].InterestedStaffID)
	assert.True(t, next[0].CoverageRequested)
	assert.Equal(t, StateCoverageRequested, StateOf(next[0]))

	// 驳回后其他人可以再次响应
	next, _, err = ExpressInterest(next, "e1", chen, mark.Name, now)
	require.NoError(t, err)
	assert.Equal(t, chen.ID, next[0].InterestedStaffID)
}

func TestRejectInterestWithoutInterest(t *testing.T) {
	_, err := RejectInterest(testSchedule(), "e1")
	assert.ErrorIs(t, err, ErrNoInterest)
}

func TestAssignStaffClearsCoverageFields(t *testing.T) {
	schedule, _, err := RequestCoverage(testSchedule(), "e1", mark, now)
	require.NoError(t, err)
	schedule, _, err = ExpressInterest(schedule, "e1", sarah, mark.Name, now)
	require.NoError(t, err)

	next := AssignStaff(schedule, "e1", chen.ID)

	assert.Equal(t, chen.ID, next[0].StaffID)
	assert.False(t, next[0].CoverageRequested)
	assert.Empty(t, next[0].InterestedStaffID)
	assert.Equal(t, StateAssigned, StateOf(next[0]))
}

func TestAssignStaffEmptyMakesOpen(t *testing.T) {
	next := AssignStaff(testSchedule(), "e1", "")
	assert.Equal(t, StateOpen, StateOf(next[0]))
}

func TestDeleteEntry(t *testing.T) {
	schedule := testSchedule()

	next := DeleteEntry(schedule, "e2")

	require.Len(t, next, 2)
	assert.Equal(t, "e1", next[0].ID)
	assert.Equal(t, "e3", next[1].ID)
	assert.Len(t, schedule, 3)
}

func TestStaleEntryIDIsNoOp(t *testing.T) {
	schedule := testSchedule()

	next, msg, err := RequestCoverage(schedule, "missing", mark, now)
	require.NoError(t, err)
	assert.Nil(t, msg)
	assert.Equal(t, schedule, next)

	next, msg, err = ExpressInterest(schedule, "missing", sarah, mark.Name, now)
	require.NoError(t, err)
	assert.Nil(t, msg)
	assert.Equal(t, schedule, next)

	next, err = ApproveSwap(schedule, "missing")
	require.NoError(t, err)
	assert.Equal(t, schedule, next)

	next, err = RejectInterest(schedule, "missing")
	require.NoError(t, err)
	assert.Equal(t, schedule, next)

	assert.Equal(t, schedule, AssignStaff(schedule, "missing", chen.ID))
	assert.Equal(t, schedule, DeleteEntry(schedule, "missing"))
}
