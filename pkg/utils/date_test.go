package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected *time.Time
		wantErr  bool
	}{
		{
			name:     "String vazia vira nil sem erro",
			value:    "",
			expected: nil,
		},
		{
			name:  "Data válida vira meia-noite local",
			value: "2025-07-15",
			expected: func() *time.Time {
				d := time.Date(2025, 7, 15, 0, 0, 0, 0, time.Local)
				return &d
			}(),
		},
		{
			name:    "Formato brasileiro é rejeitado",
			value:   "15/07/2025",
			wantErr: true,
		},
		{
			name:    "Dia inexistente no calendário é rejeitado",
			value:   "2025-02-30",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ParseDate(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			if tt.expected == nil {
				assert.Nil(t, date)
			} else {
				assert.True(t, tt.expected.Equal(*date))
			}
		})
	}
}
