package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShiftNameAt(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2024, time.March, 11, hour, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, "Night Shift", ShiftNameAt(at(0)))
	assert.Equal(t, "Night Shift", ShiftNameAt(at(4)))
	assert.Equal(t, "Morning Shift", ShiftNameAt(at(5)))
	assert.Equal(t, "Morning Shift", ShiftNameAt(at(11)))
	assert.Equal(t, "Afternoon Shift", ShiftNameAt(at(12)))
	assert.Equal(t, "Afternoon Shift", ShiftNameAt(at(16)))
	assert.Equal(t, "Evening Shift", ShiftNameAt(at(17)))
	assert.Equal(t, "Evening Shift", ShiftNameAt(at(21)))
	assert.Equal(t, "Night Shift", ShiftNameAt(at(22)))
	assert.Equal(t, "Night Shift", ShiftNameAt(at(23)))
}
