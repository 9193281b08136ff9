package tui

import (
	"strings"
	"testing"
)

func TestRenderShimmerLogoLetters(t *testing.T) {
	for _, frame := range []int{0, 17, 500} {
		out := renderShimmerLogo(frame)
		for _, ch := range "LOTTERY" {
			if !strings.ContainsRune(out, ch) {
				t.Errorf("frame %d: logo %q missing %q", frame, out, ch)
			}
		}
	}
}

func TestClampByte(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{-3, 0},
		{0, 0},
		{127.9, 127},
		{300, 255},
	}
	for _, tc := range tests {
		if got := clampByte(tc.in); got != tc.want {
			t.Errorf("clampByte(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestHelpEntryFormat(t *testing.T) {
	result := helpEntry("q", "quit")
	if !strings.Contains(result, "q") {
		t.Errorf("helpEntry('q','quit') does not contain key 'q': %q", result)
	}
	if !strings.Contains(result, "quit") {
		t.Errorf("helpEntry('q','quit') does not contain label 'quit': %q", result)
	}
}

func TestHelpEntryMultipleKeys(t *testing.T) {
	tests := []struct {
		key   string
		label string
	}{
		{"space", "spin"},
		{"enter", "sign in"},
		{"ctrl+t", "中文"},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			result := helpEntry(tc.key, tc.label)
			if !strings.Contains(result, tc.key) {
				t.Errorf("helpEntry(%q, %q) missing key", tc.key, tc.label)
			}
			if !strings.Contains(result, tc.label) {
				t.Errorf("helpEntry(%q, %q) missing label", tc.key, tc.label)
			}
		})
	}
}

func TestPanelContainsBody(t *testing.T) {
	out := panel("hello wheel", 80)
	if !strings.Contains(out, "hello wheel") {
		t.Errorf("panel() = %q, want body inside", out)
	}
}
