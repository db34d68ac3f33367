package logging

import (
	"time"
)

// Time executes fn and logs its duration at debug level.
//
// Example:
//
//	logging.Time("crawl menu", func() {
//	    // ... walk the tree ...
//	})
func Time(name string, fn func()) {
	if !IsEnabled() {
		fn()
		return
	}

	start := time.Now()
	fn()
	logDuration(Get(), name, time.Since(start))
}

func logDuration(l *Logger, name string, duration time.Duration) {
	l.Debug(name,
		"duration", duration.String(),
		"ms", duration.Milliseconds(),
	)
}
