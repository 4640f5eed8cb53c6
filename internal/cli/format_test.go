package cli

import "testing"

func TestFormatWords(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1234, "1.2K"},
		{50000, "50.0K"},
		{1_234_567, "1.2M"},
		{-1500, "-1.5K"},
	}

	for _, tc := range cases {
		if got := FormatWords(tc.in); got != tc.want {
			t.Errorf("FormatWords(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-50000, "-50,000"},
	}

	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDaysRemaining(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{49, "49 days"},
		{1, "1 day"},
		{0, "0 days"},
		{-5, "overdue by 5"},
	}

	for _, tc := range cases {
		if got := FormatDaysRemaining(tc.in); got != tc.want {
			t.Errorf("FormatDaysRemaining(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatSignedWords(t *testing.T) {
	if got := FormatSignedWords(1200); got != "+1,200" {
		t.Errorf("FormatSignedWords(1200) = %q, want +1,200", got)
	}
	if got := FormatSignedWords(0); got != "+0" {
		t.Errorf("FormatSignedWords(0) = %q, want +0", got)
	}
}
