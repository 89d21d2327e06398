package platform

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ioregIdlePattern = regexp.MustCompile(`"HIDIdleTime"\s*=\s*(\d+)`)
	gdbusIdlePattern = regexp.MustCompile(`uint64\s+(\d+)`)
)

// parseMillis reads a bare millisecond count such as xprintidle prints.
func parseMillis(output string) (time.Duration, error) {
	value := strings.TrimSpace(output)
	millis, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse idle milliseconds: %w", err)
	}
	if millis < 0 {
		millis = 0
	}
	return time.Duration(millis) * time.Millisecond, nil
}

// parseMutterIdle reads the GetIdletime reply, e.g. "(uint64 5230,)".
func parseMutterIdle(output string) (time.Duration, error) {
	match := gdbusIdlePattern.FindStringSubmatch(output)
	if match == nil {
		return 0, fmt.Errorf("parse mutter idle time: unexpected reply %q", strings.TrimSpace(output))
	}
	return parseMillis(match[1])
}

// parseIORegIdle reads HIDIdleTime (nanoseconds) from ioreg output.
func parseIORegIdle(output string) (time.Duration, error) {
	match := ioregIdlePattern.FindStringSubmatch(output)
	if match == nil {
		return 0, fmt.Errorf("parse ioreg idle time: HIDIdleTime not found")
	}
	nanos, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse ioreg idle time: %w", err)
	}
	return time.Duration(nanos), nil
}
