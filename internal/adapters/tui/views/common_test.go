package views

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.png", 20, "short.png"},
		{"a-very-long-filename.png", 10, "a-very-lo…"},
		{"日本語の写真.jpg", 8, "日本語…"},
		{"anything", 0, ""},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestFormatMB(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0.00 MB"},
		{1024 * 1024, "1.00 MB"},
		{1536 * 1024, "1.50 MB"},
	}

	for _, tt := range tests {
		if got := FormatMB(tt.in); got != tt.want {
			t.Errorf("FormatMB(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContentWidth(t *testing.T) {
	var s ViewState
	if s.ContentWidth(80) != 80 {
		t.Error("expected fallback before a size is known")
	}
	s.SetSize(100, 40)
	if s.ContentWidth(80) != 96 {
		t.Errorf("ContentWidth() = %d, want 96", s.ContentWidth(80))
	}
}
