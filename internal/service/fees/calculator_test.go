package fees

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func TestCalculateRegularUser(t *testing.T) {
	calc := NewCalculator(2.50)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		timeIn   time.Time
		expected float64
	}{
		{
			name:     "two hours",
			timeIn:   now.Add(-2 * time.Hour),
			expected: 5.00,
		},
		{
			name:     "half hour is not rounded up to full hour",
			timeIn:   now.Add(-30 * time.Minute),
			expected: 1.25,
		},
		{
			name:     "zero duration",
			timeIn:   now,
			expected: 0,
		},
		{
			name:     "fractional result rounds to two decimals",
			timeIn:   now.Add(-100 * time.Minute),
			expected: 4.17, // 100/60 * 2.50 = 4.1666...
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee := calc.Calculate(tt.timeIn, false, now)
			assert.InDelta(t, tt.expected, fee, 0.001)
		})
	}
}

func TestCalculateEmployeeIsFree(t *testing.T) {
	calc := NewCalculator(2.50)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	fee := calc.Calculate(now.Add(-8*time.Hour), true, now)

	assert.Zero(t, fee)
}

func TestCalculateFutureEntryClampedToZero(t *testing.T) {
	calc := NewCalculator(2.50)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	fee := calc.Calculate(now.Add(10*time.Minute), false, now)

	assert.Zero(t, fee)
}

func TestNewCalculatorFallsBackToDefaultRate(t *testing.T) {
	assert.InDelta(t, domain.DefaultHourlyRate, NewCalculator(0).HourlyRate(), 0.001)
	assert.InDelta(t, domain.DefaultHourlyRate, NewCalculator(-1).HourlyRate(), 0.001)
	assert.InDelta(t, 3.75, NewCalculator(3.75).HourlyRate(), 0.001)
}
