package util

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidPage is returned for a negative offset or limit.
var ErrInvalidPage = errors.New("skip and limit must not be negative")

// NormalizePage applies the default limit when limit is zero and caps it at maxLimit.
func NormalizePage(skip, limit, defaultLimit, maxLimit int) (int, int, error) {
	if skip < 0 || limit < 0 {
		return 0, 0, ErrInvalidPage
	}
	if limit == 0 {
		limit = defaultLimit
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}

	return skip, limit, nil
}

// ParseID parses a positive int64 identifier from a path segment.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid id %q", raw)
	}
	if id <= 0 {
		return 0, errors.Errorf("invalid id %q", raw)
	}

	return id, nil
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
