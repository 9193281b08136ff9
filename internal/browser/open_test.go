package browser

import (
	"path/filepath"
	"testing"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
	}{
		{"darwin", "open"},
		{"linux", "xdg-open"},
		{"windows", "rundll32"},
	}
	for _, tc := range tests {
		t.Run(tc.goos, func(t *testing.T) {
			cmd, err := command(tc.goos, "http://192.168.5.150:8080/")
			if err != nil {
				t.Fatalf("command() error: %v", err)
			}
			if got := filepath.Base(cmd.Args[0]); got != tc.wantName {
				t.Errorf("program = %q, want %q", got, tc.wantName)
			}
			if last := cmd.Args[len(cmd.Args)-1]; last != "http://192.168.5.150:8080/" {
				t.Errorf("last arg = %q, want the URL", last)
			}
		})
	}
}

func TestCommandRejects(t *testing.T) {
	for _, raw := range []string{"", "file:///etc/passwd", "javascript:alert(1)", "http://"} {
		if _, err := command("linux", raw); err == nil {
			t.Errorf("command(%q) succeeded, want error", raw)
		}
	}
	if _, err := command("plan9", "https://example.com"); err == nil {
		t.Error("command on unsupported OS succeeded, want error")
	}
}
