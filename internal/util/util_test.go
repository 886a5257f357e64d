package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		skip      int
		limit     int
		wantSkip  int
		wantLimit int
		wantErr   bool
	}{
		{name: "defaults", skip: 0, limit: 0, wantSkip: 0, wantLimit: 100},
		{name: "explicit", skip: 20, limit: 10, wantSkip: 20, wantLimit: 10},
		{name: "capped", skip: 0, limit: 10000, wantSkip: 0, wantLimit: 500},
		{name: "negative skip", skip: -1, limit: 10, wantErr: true},
		{name: "negative limit", skip: 0, limit: -5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			skip, limit, err := NormalizePage(tt.skip, tt.limit, 100, 500)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPage)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "abc", "0", "-3", "99999999999999999999"} {
		_, err := ParseID(raw)
		assert.Error(t, err, raw)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
