package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultCount is used whenever the requested run count cannot be honored.
const DefaultCount = 1

// ParseCount converts a user-supplied run count. Parsing is deliberately
// permissive: anything that is not a positive integer, including an empty
// string, yields DefaultCount instead of an error. Leading digits are
// honored ("5x" is 5), matching how the count has always been read.
func ParseCount(raw string) int {
	raw = strings.TrimSpace(raw)
	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == 0 {
		return DefaultCount
	}

	n, err := strconv.Atoi(raw[:end])
	if err != nil || n < 1 {
		return DefaultCount
	}
	return n
}

// ValidateCount validates that a run count is at least 1
func ValidateCount(count int) error {
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got: %d", count)
	}
	return nil
}

// ValidateCommand validates that a command string is not blank
func ValidateCommand(command string) error {
	if strings.TrimSpace(command) == "" {
		return fmt.Errorf("command cannot be empty")
	}
	return nil
}

// ValidateTimeout validates a per-run timeout (zero disables it)
func ValidateTimeout(timeout time.Duration) error {
	if timeout < 0 {
		return fmt.Errorf("timeout cannot be negative: %v", timeout)
	}
	return nil
}
