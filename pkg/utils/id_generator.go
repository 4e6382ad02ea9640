package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateID generates a new UUID, used for request correlation IDs
func GenerateID() string {
	return uuid.New().String()
}

// IsValidUUID checks if a string is a valid UUID
func IsValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// ComplaintCodePrefix returns the code prefix for a given year, e.g. "CMP2025-"
func ComplaintCodePrefix(year int) string {
	return fmt.Sprintf("CMP%d-", year)
}

// CurrentComplaintCodePrefix returns the code prefix for the current year
func CurrentComplaintCodePrefix() string {
	return ComplaintCodePrefix(time.Now().UTC().Year())
}

// FormatComplaintCode builds a human-readable sequential complaint code,
// e.g. FormatComplaintCode(2025, 1) -> "CMP2025-0001". Suffixes past 9999
// widen naturally.
func FormatComplaintCode(year int, number int64) string {
	return fmt.Sprintf("%s%04d", ComplaintCodePrefix(year), number)
}

// ParseComplaintCodeNumber extracts the numeric suffix from a complaint code
func ParseComplaintCodeNumber(code string) (int64, error) {
	idx := strings.LastIndex(code, "-")
	if idx < 0 || idx == len(code)-1 {
		return 0, fmt.Errorf("malformed complaint code: %s", code)
	}
	n, err := strconv.ParseInt(code[idx+1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed complaint code suffix: %s", code)
	}
	return n, nil
}
