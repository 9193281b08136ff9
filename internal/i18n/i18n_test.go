package i18n

import (
	"errors"
	"testing"

	"github.com/naveenspark/lottery-wheel/internal/storage"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		platform string
		want     string
	}{
		{"zh-CN", Chinese},
		{"zh_TW.UTF-8", Chinese},
		{"ZH", Chinese},
		{"fr-FR", English},
		{"en_US.UTF-8", English},
		{"", English},
	}
	for _, tc := range tests {
		if got := Detect(tc.platform); got != tc.want {
			t.Errorf("Detect(%q) = %q, want %q", tc.platform, got, tc.want)
		}
	}
}

func TestPlatformLanguage(t *testing.T) {
	env := map[string]string{"LC_ALL": "C", "LANG": "zh_CN.UTF-8"}
	got := PlatformLanguage(func(k string) string { return env[k] })
	if got != "zh_CN.UTF-8" {
		t.Errorf("PlatformLanguage() = %q, want %q", got, "zh_CN.UTF-8")
	}
	if got := PlatformLanguage(func(string) string { return "" }); got != "" {
		t.Errorf("PlatformLanguage() with empty env = %q, want empty", got)
	}
}

func TestNewSwitchResolution(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		platform string
		want     string
	}{
		{"no preference, chinese platform", "", "zh-CN", Chinese},
		{"no preference, french platform", "", "fr-FR", English},
		{"stored preference wins", "en", "zh-CN", English},
		{"stored chinese", "zh", "en-US", Chinese},
		{"unsupported stored value ignored", "fr", "zh-CN", Chinese},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mem := storage.NewMemoryStore()
			if tc.stored != "" {
				mem.Set(KeyLanguage, tc.stored) //nolint:errcheck
			}
			sw, err := NewSwitch(mem, tc.platform)
			if err != nil {
				t.Fatalf("NewSwitch() error: %v", err)
			}
			if got := sw.Language(); got != tc.want {
				t.Errorf("Language() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSetLanguagePersists(t *testing.T) {
	mem := storage.NewMemoryStore()
	sw, _ := NewSwitch(mem, "en-US")

	if err := sw.SetLanguage(Chinese); err != nil {
		t.Fatalf("SetLanguage() error: %v", err)
	}
	if got := sw.Language(); got != Chinese {
		t.Errorf("Language() = %q, want %q", got, Chinese)
	}
	if v, _ := mem.Get(KeyLanguage); v != Chinese {
		t.Errorf("stored language = %q, want %q", v, Chinese)
	}

	if err := sw.SetLanguage("fr"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("SetLanguage(fr) error = %v, want ErrUnsupportedLanguage", err)
	}
	if got := sw.Language(); got != Chinese {
		t.Errorf("Language() after rejected switch = %q, want %q", got, Chinese)
	}
}

type readOnlyStore struct {
	*storage.MemoryStore
}

func (readOnlyStore) Set(string, string) error {
	return errors.New("read-only file system")
}

func TestSetLanguageFailedWriteKeepsLanguage(t *testing.T) {
	sw, err := NewSwitch(readOnlyStore{storage.NewMemoryStore()}, "en-US")
	if err != nil {
		t.Fatal(err)
	}
	if err := sw.SetLanguage(Chinese); err == nil {
		t.Fatal("SetLanguage() succeeded on a read-only store")
	}
	if got := sw.Language(); got != English {
		t.Errorf("Language() = %q, want %q", got, English)
	}
	if got := sw.T(LoginTitle); got != "Sign in" {
		t.Errorf("T(LoginTitle) = %q, want English text", got)
	}
	if err := sw.Toggle(); err == nil {
		t.Error("Toggle() succeeded on a read-only store")
	}
	if got := sw.Language(); got != English {
		t.Errorf("Language() after failed Toggle = %q, want %q", got, English)
	}
}

func TestToggle(t *testing.T) {
	sw, _ := NewSwitch(storage.NewMemoryStore(), "en")
	if err := sw.Toggle(); err != nil {
		t.Fatal(err)
	}
	if sw.Language() != Chinese {
		t.Errorf("Language() after Toggle = %q, want %q", sw.Language(), Chinese)
	}
	if err := sw.Toggle(); err != nil {
		t.Fatal(err)
	}
	if sw.Language() != English {
		t.Errorf("Language() after second Toggle = %q, want %q", sw.Language(), English)
	}
}

func TestT(t *testing.T) {
	sw, _ := NewSwitch(storage.NewMemoryStore(), "en")
	if got := sw.T(LoginTitle); got != "Sign in" {
		t.Errorf("T(LoginTitle) = %q, want %q", got, "Sign in")
	}
	if got := sw.T(LotteryWinner, "Bike"); got != "Winner: Bike" {
		t.Errorf("T(LotteryWinner) = %q, want %q", got, "Winner: Bike")
	}

	sw.SetLanguage(Chinese) //nolint:errcheck
	if got := sw.T(LoginTitle); got != "登录" {
		t.Errorf("T(LoginTitle) zh = %q, want %q", got, "登录")
	}
}

func TestEveryMessageHasBothLanguages(t *testing.T) {
	for key, m := range messages {
		if m[0] == "" || m[1] == "" {
			t.Errorf("message %q is missing a translation", key)
		}
	}
}
