package timeutil

import "testing"

func TestFormat(t *testing.T) {
	testCases := []struct {
		want string
		secs int
	}{
		{secs: 0, want: "00:00"},
		{secs: 9, want: "00:09"},
		{secs: 65, want: "01:05"},
		{secs: 1500, want: "25:00"},
		// minutes are not wrapped at 60
		{secs: 6000, want: "100:00"},
		{secs: -5, want: "00:00"},
	}

	for _, tc := range testCases {
		if got := Format(tc.secs); got != tc.want {
			t.Errorf("Format(%d) = %q, want %q", tc.secs, got, tc.want)
		}
	}
}

func TestSecsToMinsAndSecs(t *testing.T) {
	mins, secs := SecsToMinsAndSecs(1565)

	if mins != 26 || secs != 5 {
		t.Fatalf("SecsToMinsAndSecs(1565) = %d, %d, want 26, 5", mins, secs)
	}
}
