// Package i18n resolves the UI language and renders the client's strings.
//
// The preference is read from storage first; without one, the platform
// language decides: anything starting with "zh" selects Chinese, everything
// else English.
package i18n

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/naveenspark/lottery-wheel/internal/storage"
)

// KeyLanguage is the storage key of the persisted preference.
const KeyLanguage = "language"

const (
	English = "en"
	Chinese = "zh"
)

// ErrUnsupportedLanguage is returned by SetLanguage for anything other than
// English or Chinese.
var ErrUnsupportedLanguage = errors.New("i18n: unsupported language")

var tags = map[string]language.Tag{
	English: language.English,
	Chinese: language.Chinese,
}

// Supported reports whether lang is one of the bundled languages.
func Supported(lang string) bool {
	_, ok := tags[lang]
	return ok
}

// Detect maps a platform language such as "zh-CN" or "zh_TW.UTF-8" to a
// bundled language.
func Detect(platform string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(platform)), "zh") {
		return Chinese
	}
	return English
}

// PlatformLanguage returns the language reported by the locale environment,
// or "" when only the C locale is set.
func PlatformLanguage(getenv func(string) string) string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := getenv(name)
		if v == "" || v == "C" || v == "POSIX" || strings.HasPrefix(v, "C.") {
			continue
		}
		return v
	}
	return ""
}

// Switch is the active UI language. It is created once by the application
// root and shared with the views.
type Switch struct {
	storage storage.Storage
	cat     catalog.Catalog

	mu      sync.RWMutex
	lang    string
	printer *message.Printer
}

// NewSwitch resolves the initial language from storage, falling back to the
// platform language.
func NewSwitch(s storage.Storage, platform string) (*Switch, error) {
	stored, err := s.Get(KeyLanguage)
	if err != nil {
		return nil, fmt.Errorf("i18n.NewSwitch: %w", err)
	}
	lang := stored
	if !Supported(lang) {
		lang = Detect(platform)
	}
	sw := &Switch{storage: s, cat: newCatalog()}
	sw.apply(lang)
	return sw, nil
}

func (sw *Switch) apply(lang string) {
	sw.lang = lang
	sw.printer = message.NewPrinter(tags[lang], message.Catalog(sw.cat))
}

// Language returns the active language code.
func (sw *Switch) Language() string {
	sw.mu.RLock()
	defer sw.mu.RUnlock()
	return sw.lang
}

// SetLanguage persists the choice and then switches the active language. A
// failed write leaves the active language unchanged.
func (sw *Switch) SetLanguage(lang string) error {
	if !Supported(lang) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	if err := sw.storage.Set(KeyLanguage, lang); err != nil {
		return fmt.Errorf("i18n.SetLanguage: %w", err)
	}
	sw.mu.Lock()
	sw.apply(lang)
	sw.mu.Unlock()
	return nil
}

// Toggle flips between English and Chinese.
func (sw *Switch) Toggle() error {
	if sw.Language() == Chinese {
		return sw.SetLanguage(English)
	}
	return sw.SetLanguage(Chinese)
}

// T renders the message registered under key.
func (sw *Switch) T(key string, args ...any) string {
	sw.mu.RLock()
	p := sw.printer
	sw.mu.RUnlock()
	return p.Sprintf(key, args...)
}
