package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidHexColor(t *testing.T) {
	valid := []string{"aabbcc", "AABBCC", "000000", "ffFF00"}
	invalid := []string{"#aabbcc", "abc", "aabbccdd", "gghhii", ""}
	for _, color := range valid {
		if !IsValidHexColor(color) {
			t.Errorf("IsValidHexColor(%q) = false, want true", color)
		}
	}
	for _, color := range invalid {
		if IsValidHexColor(color) {
			t.Errorf("IsValidHexColor(%q) = true, want false", color)
		}
	}
}

func TestIsValidTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	invalid := []string{"24:00", "9:3x", "09:60", "morning", ""}
	for _, s := range valid {
		if _, ok := IsValidTime(s); !ok {
			t.Errorf("IsValidTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidTime(s); ok {
			t.Errorf("IsValidTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-02-28"); !ok {
		t.Error("IsValidDate(2025-02-28) = false, want true")
	}
	for _, s := range []string{"2025-02-30", "28-02-2025", "2025/02/28", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestCoordinateRanges(t *testing.T) {
	if !IsValidLatitude(-90) || !IsValidLatitude(90) || !IsValidLatitude(40.4168) {
		t.Error("expected boundary and in-range latitudes to be valid")
	}
	if IsValidLatitude(-90.0001) || IsValidLatitude(91) {
		t.Error("expected out-of-range latitudes to be invalid")
	}
	if !IsValidLongitude(-180) || !IsValidLongitude(180) || !IsValidLongitude(-3.7038) {
		t.Error("expected boundary and in-range longitudes to be valid")
	}
	if IsValidLongitude(180.5) || IsValidLongitude(-181) {
		t.Error("expected out-of-range longitudes to be invalid")
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("b", slice) {
		t.Error("IsInSlice(b) = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Error("IsInSlice(d) = true, want false")
	}
}
