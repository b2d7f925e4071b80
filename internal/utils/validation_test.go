package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carehome-dev/care-journal/backend/internal/roster"
)

func TestValidateSlots(t *testing.T) {
	assert.NoError(t, ValidateSlots(nil))
	assert.NoError(t, ValidateSlots([]roster.Slot{{Start: "08:00", End: "16:00"}}))
	// 模板之间允许重复
	assert.NoError(t, ValidateSlots([]roster.Slot{
		{Start: "08:00", End: "16:00"},
		{Start: "08:00", End: "16:00"},
	}))

	assert.Error(t, ValidateSlots([]roster.Slot{{Start: "8am", End: "16:00"}}))
	assert.Error(t, ValidateSlots([]roster.Slot{{Start: "08:00", End: "25:00"}}))
	assert.Error(t, ValidateSlots([]roster.Slot{{Start: "16:00", End: "08:00"}}))
	assert.Error(t, ValidateSlots([]roster.Slot{{Start: "08:00", End: "08:00"}}))
}

func TestValidateClockTime(t *testing.T) {
	assert.NoError(t, ValidateClockTime("00:00"))
	assert.NoError(t, ValidateClockTime("23:59"))
	assert.Error(t, ValidateClockTime("24:00"))
	assert.Error(t, ValidateClockTime("9:00 AM"))
	assert.Error(t, ValidateClockTime(""))
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2024-03-11"))
	assert.Error(t, ValidateDate("2024-13-01"))
	assert.Error(t, ValidateDate("11/03/2024"))
	assert.Error(t, ValidateDate(""))
}

func TestGenerateRandomPIN(t *testing.T) {
	for i := 0; i < 100; i++ {
		pin := GenerateRandomPIN()
		assert.Len(t, pin, 4)
		for _, c := range pin {
			assert.True(t, c >= '0' && c <= '9')
		}
	}
}

func TestGenerateRandomUser(t *testing.T) {
	user := GenerateRandomUser()

	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, user.Name)
	assert.NotEmpty(t, user.Username)
	assert.True(t, user.Active)
	assert.Len(t, user.PIN, 4)
}

func TestGenerateRandomSlotsAreValid(t *testing.T) {
	for i := 0; i < 50; i++ {
		assert.NoError(t, ValidateSlots(GenerateRandomSlots()))
	}
}
