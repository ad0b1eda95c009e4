package app

import "testing"

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name string
		v1   string
		v2   string
		want int
	}{
		{"equal versions", "1.2.3", "1.2.3", 0},
		{"older major", "1.2.3", "2.0.0", -1},
		{"newer major", "2.0.0", "1.9.9", 1},
		{"older minor", "1.2.3", "1.3.0", -1},
		{"older patch", "1.2.3", "1.2.4", -1},
		{"shorter is older when prefixes match", "1.2", "1.2.1", -1},
		{"longer is newer when prefixes match", "1.2.1", "1.2", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareVersions(tt.v1, tt.v2); got != tt.want {
				t.Errorf("compareVersions(%q, %q) = %d, want %d", tt.v1, tt.v2, got, tt.want)
			}
		})
	}
}
