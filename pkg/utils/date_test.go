package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextDay(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  time.Time
	}{
		{
			name:  "Meia-noite avança um dia",
			input: time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "Horário do dia é descartado",
			input: time.Date(2026, 8, 5, 14, 30, 45, 123, time.UTC),
			want:  time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "Virada de mês",
			input: time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC),
			want:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, NextDay(tt.input).Equal(tt.want))
		})
	}
}

func TestSameDay(t *testing.T) {
	noon := time.Date(2026, 8, 5, 12, 0, 0, 0, time.UTC)
	midnight := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(noon, midnight))
	assert.False(t, SameDay(noon, midnight.AddDate(0, 0, 1)))
}
