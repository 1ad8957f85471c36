package ivmap

import (
	"testing"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		str            string
		expMin, expMax int
		expErr         bool
	}{
		{"-10:10", -10, 10, false},
		{"0:1", 0, 1, false},
		{"-20:-10", -20, -10, false},
		{"5:5", 0, 0, true},
		{"10:-10", 0, 0, true},
		{"", 0, 0, true},
		{"10", 0, 0, true},
		{"1:2:3", 0, 0, true},
		{"01:2", 0, 0, true},
		{" 1:2", 0, 0, true},
		{"0:99999999999999999999", 0, 0, true},
		{"0:1048576", 0, 1048576, false},
		{"0:1048577", 0, 0, true},
		{"-1000000000:1000000000", 0, 0, true},
		{"-9223372036854775808:9223372036854775807", 0, 0, true},
	}
	for _, tc := range tests {
		min, max, err := ParseWindow(tc.str)
		if min != tc.expMin || max != tc.expMax {
			t.Errorf("ParseWindow(%s) (%d, %d) != (%d, %d)", tc.str, min, max, tc.expMin, tc.expMax)
		}
		if tc.expErr {
			if err == nil {
				t.Errorf("ParseWindow(%s) unexpected nil error", tc.str)
			}
		} else {
			if err != nil {
				t.Errorf("ParseWindow(%s) unexpected error %v", tc.str, err)
			}
		}
	}
}
