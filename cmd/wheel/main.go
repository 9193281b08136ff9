package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/lottery-wheel/internal/config"
	"github.com/naveenspark/lottery-wheel/internal/i18n"
	"github.com/naveenspark/lottery-wheel/internal/logging"
	"github.com/naveenspark/lottery-wheel/internal/router"
	"github.com/naveenspark/lottery-wheel/internal/session"
	"github.com/naveenspark/lottery-wheel/internal/storage"
	"github.com/naveenspark/lottery-wheel/internal/tui"
	"github.com/naveenspark/lottery-wheel/pkg/client"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the objects every command shares. They are built once here and
// passed down explicitly.
type app struct {
	cfg     config.Config
	session *session.Store
	locale  *i18n.Switch
	api     *client.Client
	logger  *slog.Logger
	out     io.Writer
}

func run(args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "--version", "version", "-v":
			fmt.Println("wheel " + version)
			return nil
		case "help", "--help", "-h":
			printHelp(os.Stdout)
			return nil
		}
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.Load(os.Getenv)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger, closer, err := logging.Open(cfg.LogPath(), level)
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck

	a, err := newApp(cfg, storage.NewFileStore(cfg.DataDir), i18n.PlatformLanguage(os.Getenv), logger, os.Stdout)
	if err != nil {
		return err
	}
	logger.Debug("starting", "version", version, "api", cfg.APIURL, "data_dir", cfg.DataDir)

	if len(args) > 0 {
		switch args[0] {
		case "login":
			return a.runLogin(context.Background(), args[1:])
		case "logout":
			return a.runLogout()
		case "prizes":
			return a.runPrizes(context.Background(), args[1:])
		case "lang":
			return a.runLang(args[1:])
		default:
			return fmt.Errorf("unknown command %q (see \"wheel help\")", args[0])
		}
	}
	return a.runTUI()
}

// newApp restores the session and language from store and builds the API
// client on top of the session.
func newApp(cfg config.Config, store storage.Storage, platform string, logger *slog.Logger, out io.Writer) (*app, error) {
	sess, err := session.New(store)
	if err != nil {
		return nil, err
	}
	locale, err := i18n.NewSwitch(store, platform)
	if err != nil {
		return nil, err
	}
	api := client.New(cfg.APIURL, sess,
		client.WithLogger(logger),
		client.WithTimeout(cfg.Timeout),
	)
	return &app{
		cfg:     cfg,
		session: sess,
		locale:  locale,
		api:     api,
		logger:  logger,
		out:     out,
	}, nil
}

func (a *app) runTUI() error {
	model := tui.NewApp(tui.Deps{
		API:      a.api,
		Session:  a.session,
		Locale:   a.locale,
		Router:   router.Default(),
		Logger:   a.logger,
		PageSize: a.cfg.PageSize,
		AdminURL: a.cfg.AdminURL,
		Version:  version,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
