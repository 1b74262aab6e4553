package rpmver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.0", 0},
		{"1.0", "2.0", -1},
		{"2.0", "1.0", 1},
		{"2.0.1", "2.0", 1},
		{"1.10", "1.9", 1},
		{"1.05", "1.5", 0},
		{"1.0a", "1.0", 1},
		{"1.0", "1.0a", -1},
		{"a", "1", -1},
		{"fc38", "fc37", 1},
		{"1.0~rc1", "1.0", -1},
		{"1.0~rc1", "1.0~rc2", -1},
		{"1.0~~", "1.0~", -1},
		{"1_0", "1.0", 0},
		{"2.0.1a", "2.0.1", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Compare(tt.a, tt.b), "Compare(%q, %q)", tt.a, tt.b)
	}
}

func TestCompareEVR(t *testing.T) {
	tests := []struct {
		name                   string
		e1, v1, r1, e2, v2, r2 string
		want                   int
	}{
		{"equal", "0", "1.0", "1", "0", "1.0", "1", 0},
		{"epoch wins over version", "1", "1.0", "1", "0", "9.9", "9", 1},
		{"empty epoch means zero", "", "1.0", "1", "0", "1.0", "1", 0},
		{"release breaks tie", "0", "1.0", "2.fc38", "0", "1.0", "1.fc38", 1},
		{"version before release", "0", "1.1", "1", "0", "1.0", "99", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareEVR(tt.e1, tt.v1, tt.r1, tt.e2, tt.v2, tt.r2))
		})
	}
}
