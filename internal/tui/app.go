package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/lottery-wheel/internal/i18n"
	"github.com/naveenspark/lottery-wheel/internal/router"
	"github.com/naveenspark/lottery-wheel/internal/session"
	"github.com/naveenspark/lottery-wheel/pkg/client"
	"github.com/naveenspark/lottery-wheel/pkg/domain"
)

// API is the part of the admin client the views use.
type API interface {
	Login(ctx context.Context, username, password, code, captchaID string) (string, error)
	ListPrizes(ctx context.Context, pageNum, pageSize int) (*domain.PrizePage, error)
}

// Deps are the collaborators the application root hands to the TUI.
type Deps struct {
	API      API
	Session  *session.Store
	Locale   *i18n.Switch
	Router   *router.Router
	Logger   *slog.Logger
	PageSize int
	AdminURL string
	Version  string
}

// App is the root Bubbletea model.
type App struct {
	deps    Deps
	route   router.Route
	login   loginModel
	lottery lotteryModel
	navErr  string
	width   int
	height  int
	frame   int // logo shimmer animation frame
	initCmd tea.Cmd
}

// NewApp creates the TUI and resolves the initial view from "/".
func NewApp(deps Deps) App {
	if deps.Router == nil {
		deps.Router = router.Default()
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	if deps.PageSize <= 0 {
		deps.PageSize = client.DefaultPageSize
	}
	a, cmd := App{deps: deps}.navigate(router.RootPath)
	a.initCmd = cmd
	return a
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.initCmd, shimmerTickCmd())
}

// navigate resolves path through the router and switches to the resulting
// view with fresh state.
func (a App) navigate(path string) (App, tea.Cmd) {
	rt, err := a.deps.Router.Resolve(path, a.deps.Session.IsLoggedIn())
	if err != nil {
		a.deps.Logger.Error("navigate", "path", path, "error", err)
		a.navErr = err.Error()
		return a, nil
	}
	a.navErr = ""
	if rt.Path != path {
		a.deps.Logger.Debug("navigate redirected", "from", path, "to", rt.Path)
	}
	a.route = rt

	size := tea.WindowSizeMsg{Width: a.width, Height: a.height}
	switch rt.Path {
	case router.LoginPath:
		a.login = newLoginModel(a.deps.API, a.deps.Locale)
		a.login, _ = a.login.Update(size)
		return a, a.login.Init()
	case router.LotteryPath:
		a.lottery = newLotteryModel(a.deps.API, a.deps.Locale, a.deps.Session.Username(), a.deps.PageSize, a.deps.AdminURL)
		a.lottery, _ = a.lottery.Update(size)
		return a, a.lottery.Init()
	}
	return a, nil
}

func (a App) logout() (App, tea.Cmd) {
	if err := a.deps.Session.Logout(); err != nil {
		a.deps.Logger.Error("logout", "error", err)
	}
	return a.navigate(router.RootPath)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.login, _ = a.login.Update(msg)
		a.lottery, _ = a.lottery.Update(msg)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case loginResultMsg:
		if msg.err != nil {
			a.deps.Logger.Warn("login failed", "username", msg.username, "error", msg.err)
			a.login, _ = a.login.Update(msg)
			return a, nil
		}
		if err := a.deps.Session.Login(msg.username, msg.token); err != nil {
			a.deps.Logger.Error("save session", "error", err)
			a.login, _ = a.login.Update(loginResultMsg{username: msg.username, err: err})
			return a, nil
		}
		a.deps.Logger.Info("logged in", "username", msg.username)
		return a.navigate(router.LotteryPath)

	case logoutMsg:
		a.deps.Logger.Info("logged out", "username", a.deps.Session.Username())
		return a.logout()

	case prizesLoadedMsg:
		if msg.err != nil && client.IsAuthFailure(msg.err) {
			a.deps.Logger.Warn("session rejected", "error", msg.err)
			return a.logout()
		}

	case tea.KeyMsg:
		keys := DefaultKeyMap
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.ToggleLang):
			return a.toggleLanguage(), nil
		}
		if a.route.Path == router.LotteryPath {
			switch {
			case key.Matches(msg, keys.LetterQuit):
				return a, tea.Quit
			case key.Matches(msg, keys.LetterLang):
				return a.toggleLanguage(), nil
			}
		}
	}

	var cmd tea.Cmd
	switch a.route.Path {
	case router.LoginPath:
		a.login, cmd = a.login.Update(msg)
	case router.LotteryPath:
		a.lottery, cmd = a.lottery.Update(msg)
	}
	return a, cmd
}

func (a App) toggleLanguage() App {
	if err := a.deps.Locale.Toggle(); err != nil {
		a.deps.Logger.Error("save language", "error", err)
	}
	return a
}

func (a App) View() string {
	logo := renderShimmerLogo(a.frame)
	logoPad := max((a.width-lipgloss.Width(logo))/2, 0)
	header := strings.Repeat(" ", logoPad) + logo

	sub := ""
	if a.deps.Version != "" {
		sub = metaStyle.Render(a.deps.Version)
	}
	subPad := max((a.width-lipgloss.Width(sub))/2, 0)
	header += "\n" + strings.Repeat(" ", subPad) + sub

	var body, help string
	switch a.route.Path {
	case router.LoginPath:
		body = a.login.View()
		help = " " + a.login.helpKeys()
	case router.LotteryPath:
		body = a.lottery.View()
		help = " " + a.lottery.helpKeys()
	}
	if a.navErr != "" {
		body = "\n " + errorStyle.Render(a.navErr)
	}

	// Chrome budget: header(2) + help(1) = 3 lines + body
	chrome := 3
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s", header, body, help)
}
