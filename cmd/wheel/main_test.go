package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/naveenspark/lottery-wheel/internal/config"
	"github.com/naveenspark/lottery-wheel/internal/i18n"
	"github.com/naveenspark/lottery-wheel/internal/session"
	"github.com/naveenspark/lottery-wheel/internal/storage"
	"github.com/naveenspark/lottery-wheel/pkg/client"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// newAdminServer fakes the two admin endpoints the CLI calls.
func newAdminServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
			UUID     string `json:"uuid"`
		}
		json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck
		if body.Username != "alice" || body.Password != "secret" {
			writeJSON(w, map[string]any{"code": 500, "msg": "wrong password"})
			return
		}
		if body.UUID == "" {
			writeJSON(w, map[string]any{"code": 500, "msg": "missing uuid"})
			return
		}
		writeJSON(w, map[string]any{"code": 200, "msg": "ok", "data": map[string]string{"token": "tok-1"}})
	})
	mux.HandleFunc("GET /system/prize/list", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		rows := []map[string]any{
			{"id": 1, "name": "Bike", "level": "First", "stock": 2, "weight": 1},
			{"id": 2, "name": "Mug", "level": "Third", "stock": 50, "weight": 9.5},
		}
		if r.URL.Query().Get("pageNum") == "2" {
			rows = nil
		}
		writeJSON(w, map[string]any{"code": 200, "msg": "ok", "rows": rows, "total": 2})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T, apiURL string, store storage.Storage) (*app, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.APIURL = apiURL
	cfg.Timeout = 5 * time.Second
	var out bytes.Buffer
	a, err := newApp(cfg, store, "en_US.UTF-8", slog.New(slog.DiscardHandler), &out)
	if err != nil {
		t.Fatal(err)
	}
	return a, &out
}

func stubPassword(t *testing.T, pw string) *int {
	t.Helper()
	calls := 0
	orig := readPassword
	readPassword = func() (string, error) {
		calls++
		return pw, nil
	}
	t.Cleanup(func() { readPassword = orig })
	return &calls
}

func TestLoginCommand(t *testing.T) {
	srv := newAdminServer(t)
	store := storage.NewFileStore(t.TempDir())
	a, out := newTestApp(t, srv.URL, store)

	err := a.runLogin(context.Background(), []string{"--username", "alice", "--password", "secret", "--code", "1234"})
	if err != nil {
		t.Fatalf("runLogin() error: %v", err)
	}
	if !strings.Contains(out.String(), "Logged in as alice.") {
		t.Errorf("output = %q", out.String())
	}

	// A fresh process sees the persisted session.
	sess, err := session.New(store)
	if err != nil {
		t.Fatal(err)
	}
	if got := sess.Current(); !got.LoggedIn || got.Username != "alice" || got.Token != "tok-1" {
		t.Errorf("restored session = %+v", got)
	}
}

func TestLoginCommandPromptsForPassword(t *testing.T) {
	srv := newAdminServer(t)
	calls := stubPassword(t, "secret")
	a, _ := newTestApp(t, srv.URL, storage.NewMemoryStore())

	if err := a.runLogin(context.Background(), []string{"-u", "alice"}); err != nil {
		t.Fatalf("runLogin() error: %v", err)
	}
	if *calls != 1 {
		t.Errorf("password prompted %d times, want 1", *calls)
	}
	if a.session.Token() != "tok-1" {
		t.Errorf("token = %q, want tok-1", a.session.Token())
	}
}

func TestLoginCommandRejected(t *testing.T) {
	srv := newAdminServer(t)
	mem := storage.NewMemoryStore()
	a, _ := newTestApp(t, srv.URL, mem)

	err := a.runLogin(context.Background(), []string{"--username", "alice", "--password", "nope"})
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) || apiErr.Msg != "wrong password" {
		t.Fatalf("err = %v, want APIError with server message", err)
	}
	if a.session.IsLoggedIn() || mem.Has(session.KeyUsername) {
		t.Error("failed login must not change the session")
	}
}

func TestLoginCommandRequiresUsername(t *testing.T) {
	a, _ := newTestApp(t, "http://127.0.0.1:0", storage.NewMemoryStore())
	if err := a.runLogin(context.Background(), []string{"--password", "x"}); err == nil {
		t.Error("expected error without a username")
	}
}

func TestLogoutCommand(t *testing.T) {
	mem := storage.NewMemoryStore()
	a, out := newTestApp(t, "http://127.0.0.1:0", mem)

	if err := a.runLogout(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Already logged out.") {
		t.Errorf("output = %q", out.String())
	}

	if err := a.session.Login("alice", "tok-1"); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := a.runLogout(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Logged out.") {
		t.Errorf("output = %q", out.String())
	}
	if mem.Has(session.KeyUsername) || mem.Has(session.KeyToken) {
		t.Error("session keys not removed")
	}
}

func TestPrizesCommand(t *testing.T) {
	srv := newAdminServer(t)
	mem := storage.NewMemoryStore()
	a, out := newTestApp(t, srv.URL, mem)
	if err := a.session.Login("alice", "tok-1"); err != nil {
		t.Fatal(err)
	}

	if err := a.runPrizes(context.Background(), nil); err != nil {
		t.Fatalf("runPrizes() error: %v", err)
	}
	for _, want := range []string{"NAME", "Bike", "First", "Mug", "9.5", "2 prizes"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	if err := a.runPrizes(context.Background(), []string{"--page", "2"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No prizes.") {
		t.Errorf("output = %q", out.String())
	}
}

func TestPrizesCommandNotLoggedIn(t *testing.T) {
	a, _ := newTestApp(t, "http://127.0.0.1:0", storage.NewMemoryStore())
	err := a.runPrizes(context.Background(), nil)
	if err == nil || !strings.Contains(err.Error(), "not logged in") {
		t.Errorf("err = %v, want not logged in", err)
	}
}

func TestPrizesCommandUnauthorized(t *testing.T) {
	srv := newAdminServer(t)
	a, _ := newTestApp(t, srv.URL, storage.NewMemoryStore())
	if err := a.session.Login("alice", "stale"); err != nil {
		t.Fatal(err)
	}
	err := a.runPrizes(context.Background(), nil)
	if !client.IsStatus(err, http.StatusUnauthorized) {
		t.Errorf("err = %v, want HTTP 401", err)
	}
}

func TestLangCommand(t *testing.T) {
	mem := storage.NewMemoryStore()
	a, out := newTestApp(t, "http://127.0.0.1:0", mem)

	if err := a.runLang(nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != i18n.English {
		t.Errorf("current language = %q, want en", out.String())
	}

	out.Reset()
	if err := a.runLang([]string{"zh"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "语言已切换为 zh") {
		t.Errorf("output = %q", out.String())
	}
	if v, _ := mem.Get(i18n.KeyLanguage); v != i18n.Chinese {
		t.Errorf("stored language = %q, want zh", v)
	}

	if err := a.runLang([]string{"fr"}); !errors.Is(err, i18n.ErrUnsupportedLanguage) {
		t.Errorf("err = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestPrintHelp(t *testing.T) {
	var buf bytes.Buffer
	printHelp(&buf)
	for _, want := range []string{"wheel login", "wheel prizes", "wheel lang", "WHEEL_API_URL"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("help missing %q", want)
		}
	}
}

func TestRunUnknownCommand(t *testing.T) {
	t.Setenv("WHEEL_DATA_DIR", t.TempDir())
	t.Setenv("WHEEL_CONFIG", "")
	err := run([]string{"frobnicate"})
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("err = %v, want unknown command", err)
	}
}
