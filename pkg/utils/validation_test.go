package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid email", "student@psgtech.ac.in", false},
		{"Valid email with plus", "user+tag@example.com", false},
		{"Valid email with dots", "first.last@example.co.uk", false},
		{"Empty email", "", true},
		{"Missing at sign", "userexample.com", true},
		{"Missing domain", "user@", true},
		{"Missing TLD", "user@example", true},
		{"Spaces in email", "user name@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRequired(t *testing.T) {
	if err := ValidateRequired("name", "value"); err != nil {
		t.Errorf("ValidateRequired with value returned error: %v", err)
	}
	if err := ValidateRequired("name", ""); err == nil {
		t.Error("ValidateRequired with empty value should return error")
	}
	if err := ValidateRequired("name", "   "); err == nil {
		t.Error("ValidateRequired with whitespace-only value should return error")
	}
}

func TestValidateMaxLength(t *testing.T) {
	if err := ValidateMaxLength("field", "short", 10); err != nil {
		t.Errorf("ValidateMaxLength within limit returned error: %v", err)
	}
	if err := ValidateMaxLength("field", strings.Repeat("x", 11), 10); err == nil {
		t.Error("ValidateMaxLength over limit should return error")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		max      int
		expected string
	}{
		{"Shorter than max", "short", 100, "short"},
		{"Exactly max", strings.Repeat("a", 100), 100, strings.Repeat("a", 100)},
		{"Longer than max", strings.Repeat("a", 150), 100, strings.Repeat("a", 100)},
		{"Multi-byte characters", strings.Repeat("€", 150), 100, strings.Repeat("€", 100)},
		{"Multi-byte within limit", strings.Repeat("€", 50), 100, strings.Repeat("€", 50)},
		{"Empty string", "", 100, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.value, tt.max)
			if result != tt.expected {
				t.Errorf("Truncate(%d chars, %d) = %d chars", len(tt.value), tt.max, len(result))
			}
			if !utf8.ValidString(result) {
				t.Error("Truncate must not cut a character mid-rune")
			}
		})
	}
}

func TestTruncateEllipsis(t *testing.T) {
	long := strings.Repeat("d", 600)
	result := TruncateEllipsis(long, 500)
	if len(result) != 503 {
		t.Errorf("TruncateEllipsis(600 chars, 500) = %d chars, want 503", len(result))
	}
	if !strings.HasSuffix(result, "...") {
		t.Error("TruncateEllipsis should append ellipsis marker when truncating")
	}

	short := "short description"
	if TruncateEllipsis(short, 500) != short {
		t.Error("TruncateEllipsis should not modify strings within the limit")
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello\x00world  "); got != "helloworld" {
		t.Errorf("SanitizeString = %q, want %q", got, "helloworld")
	}
}

func TestFormatComplaintCode(t *testing.T) {
	tests := []struct {
		year     int
		number   int64
		expected string
	}{
		{2025, 1, "CMP2025-0001"},
		{2025, 42, "CMP2025-0042"},
		{2025, 9999, "CMP2025-9999"},
		{2025, 10000, "CMP2025-10000"},
		{2026, 7, "CMP2026-0007"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := FormatComplaintCode(tt.year, tt.number)
			if result != tt.expected {
				t.Errorf("FormatComplaintCode(%d, %d) = %s, want %s", tt.year, tt.number, result, tt.expected)
			}
		})
	}
}

func TestParseComplaintCodeNumber(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected int64
		wantErr  bool
	}{
		{"First code", "CMP2025-0001", 1, false},
		{"Large suffix", "CMP2025-10234", 10234, false},
		{"No separator", "CMP20250001", 0, true},
		{"Empty suffix", "CMP2025-", 0, true},
		{"Non-numeric suffix", "CMP2025-abcd", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseComplaintCodeNumber(tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseComplaintCodeNumber(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if err == nil && result != tt.expected {
				t.Errorf("ParseComplaintCodeNumber(%q) = %d, want %d", tt.code, result, tt.expected)
			}
		})
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret-password" {
		t.Error("HashPassword must not store the plaintext")
	}
	if !VerifyPassword(hash, "s3cret-password") {
		t.Error("VerifyPassword should accept the original password")
	}
	if VerifyPassword(hash, "wrong-password") {
		t.Error("VerifyPassword should reject a wrong password")
	}
}
