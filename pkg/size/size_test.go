package size

import "testing"

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"negative", -5, "0 B"},
		{"bytes", 512, "512 B"},
		{"kibibytes", 2048, "2.0 KiB"},
		{"mebibytes", 5 * 1024 * 1024, "5.0 MiB"},
		{"gibibytes", 3 * 1024 * 1024 * 1024, "3.0 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSize(tt.bytes); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestMB(t *testing.T) {
	if got := MB(1024 * 1024); got != 1.0 {
		t.Errorf("MB(1MiB) = %v, want 1.0", got)
	}
	if got := MB(1536 * 1024); got != 1.5 {
		t.Errorf("MB(1.5MiB) = %v, want 1.5", got)
	}
	if got := MB(0); got != 0 {
		t.Errorf("MB(0) = %v, want 0", got)
	}
}

func TestFormatMB(t *testing.T) {
	tests := []struct {
		mb   float64
		want string
	}{
		{0, "0.00"},
		{1.5, "1.50"},
		{12.3456, "12.35"},
		{1024, "1024.00"},
	}

	for _, tt := range tests {
		if got := FormatMB(tt.mb); got != tt.want {
			t.Errorf("FormatMB(%v) = %q, want %q", tt.mb, got, tt.want)
		}
	}
}
