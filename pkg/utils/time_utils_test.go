package utils

import (
	"testing"
	"time"
)

func TestGetCurrentTimeMillis(t *testing.T) {
	now := GetCurrentTimeMillis()

	// Should be a reasonable timestamp (after 2020 and before 2100)
	minTime := int64(1577836800000) // 2020-01-01 in milliseconds
	maxTime := int64(4102444800000) // 2100-01-01 in milliseconds

	if now < minTime || now > maxTime {
		t.Errorf("GetCurrentTimeMillis() = %d, expected between %d and %d", now, minTime, maxTime)
	}

	// Should be ~13 digits (milliseconds since epoch)
	if now < 1000000000000 || now > 9999999999999 {
		t.Errorf("GetCurrentTimeMillis() = %d, expected to be 13 digits", now)
	}
}

func TestMillisToTime(t *testing.T) {
	// Test known timestamp
	millis := int64(1729728000000) // 2024-10-24 00:00:00 UTC
	result := MillisToTime(millis)

	expected := time.Date(2024, 10, 24, 0, 0, 0, 0, time.UTC)
	if !result.Equal(expected) {
		t.Errorf("MillisToTime(%d) = %v, want %v", millis, result, expected)
	}
}

func TestTimeToMillis(t *testing.T) {
	// Test known time
	testTime := time.Date(2024, 10, 24, 0, 0, 0, 0, time.UTC)
	result := TimeToMillis(testTime)

	expected := int64(1729728000000) // 2024-10-24 00:00:00 UTC in milliseconds
	if result != expected {
		t.Errorf("TimeToMillis(%v) = %d, want %d", testTime, result, expected)
	}
}

func TestDaysAgo(t *testing.T) {
	before := GetCurrentTimeMillis()
	result := DaysAgo(30)
	after := GetCurrentTimeMillis()

	thirtyDaysInMillis := int64(30 * 24 * 60 * 60 * 1000)
	expectedMin := before - thirtyDaysInMillis
	expectedMax := after - thirtyDaysInMillis

	if result < expectedMin || result > expectedMax {
		t.Errorf("DaysAgo(30) = %d, expected between %d and %d", result, expectedMin, expectedMax)
	}
}

func TestDaysFromNow(t *testing.T) {
	before := GetCurrentTimeMillis()
	result := DaysFromNow(7) // 7 days
	after := GetCurrentTimeMillis()

	// Result should be approximately 7 days in the future
	sevenDaysInMillis := int64(7 * 24 * 60 * 60 * 1000)
	expectedMin := before + sevenDaysInMillis
	expectedMax := after + sevenDaysInMillis

	if result < expectedMin || result > expectedMax {
		t.Errorf("DaysFromNow(7) = %d, expected between %d and %d", result, expectedMin, expectedMax)
	}
}

func TestFormatTime(t *testing.T) {
	testTime := time.Date(2024, 10, 24, 12, 30, 45, 0, time.UTC)
	result := FormatTime(testTime)
	expected := "2024-10-24T12:30:45Z"

	if result != expected {
		t.Errorf("FormatTime(%v) = %s, want %s", testTime, result, expected)
	}
}

func TestParseTime(t *testing.T) {
	timeStr := "2024-10-24T12:30:45Z"
	result, err := ParseTime(timeStr)

	if err != nil {
		t.Errorf("ParseTime(%s) returned error: %v", timeStr, err)
	}

	expected := time.Date(2024, 10, 24, 12, 30, 45, 0, time.UTC)
	if !result.Equal(expected) {
		t.Errorf("ParseTime(%s) = %v, want %v", timeStr, result, expected)
	}
}

func TestParseTime_InvalidFormat(t *testing.T) {
	invalidTimeStr := "not-a-valid-time"
	_, err := ParseTime(invalidTimeStr)

	if err == nil {
		t.Errorf("ParseTime(%s) should return error for invalid format", invalidTimeStr)
	}
}
