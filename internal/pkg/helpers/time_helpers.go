package helpers

import (
	"time"

	"github.com/yigit/coursemap/internal/pkg/logger"
)

// ParseDuration parses a duration string and falls back to def when it is
// empty, invalid or not positive.
func ParseDuration(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		logger.Warn().Err(err).Str("duration", value).Dur("default", def).Msg("Invalid duration, using default")
		return def
	}
	return d
}
