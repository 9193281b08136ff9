package tui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/lottery-wheel/internal/browser"
	"github.com/naveenspark/lottery-wheel/internal/i18n"
	"github.com/naveenspark/lottery-wheel/internal/wheel"
	"github.com/naveenspark/lottery-wheel/pkg/domain"
)

// prizesLoadedMsg carries the result of ListPrizes.
type prizesLoadedMsg struct {
	page *domain.PrizePage
	err  error
}

// spinTickMsg advances the spin animation. seq ties the tick to one spin.
type spinTickMsg struct {
	seq int
}

type copiedMsg struct {
	err error
}

// adminOpenedMsg carries the result of opening the admin console.
type adminOpenedMsg struct {
	err error
}

// logoutMsg asks the App to end the session.
type logoutMsg struct{}

// clipboardWrite and browserOpen are swapped out in tests.
var (
	clipboardWrite = clipboard.WriteAll
	browserOpen    = browser.Open
)

type lotteryModel struct {
	api      API
	locale   *i18n.Switch
	pageSize int
	adminURL string
	username string
	rng      *rand.Rand

	prizes  []domain.Prize
	total   int
	loading bool
	err     string

	spinning  bool
	spinSeq   int
	steps     []wheel.Step
	step      int
	highlight int
	winner    int

	status string
	width  int
}

func newLotteryModel(api API, locale *i18n.Switch, username string, pageSize int, adminURL string) lotteryModel {
	return lotteryModel{
		api:       api,
		locale:    locale,
		pageSize:  pageSize,
		adminURL:  adminURL,
		username:  username,
		loading:   true,
		highlight: -1,
		winner:    -1,
	}
}

func (m lotteryModel) Init() tea.Cmd {
	return m.load()
}

func (m lotteryModel) load() tea.Cmd {
	api := m.api
	size := m.pageSize
	return func() tea.Msg {
		page, err := api.ListPrizes(context.Background(), 1, size)
		return prizesLoadedMsg{page: page, err: err}
	}
}

func spinTickCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return spinTickMsg{seq: seq}
	})
}

func (m lotteryModel) Update(msg tea.Msg) (lotteryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case prizesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = m.locale.T(i18n.LotteryError, msg.err.Error())
			return m, nil
		}
		m.err = ""
		m.prizes, m.total = nil, 0
		if msg.page != nil {
			m.prizes = msg.page.Rows
			m.total = msg.page.Total
		}
		m.highlight = -1
		m.winner = -1
		return m, nil

	case spinTickMsg:
		if !m.spinning || msg.seq != m.spinSeq {
			return m, nil
		}
		m.step++
		if m.step >= len(m.steps) {
			m.spinning = false
			m.winner = m.highlight
			return m, nil
		}
		m.highlight = m.steps[m.step].Index
		return m, spinTickCmd(m.spinSeq, m.steps[m.step].Delay)

	case copiedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = m.locale.T(i18n.LotteryCopied)
		}
		return m, nil

	case adminOpenedMsg:
		if msg.err != nil {
			m.status = m.locale.T(i18n.LotteryOpenFail, msg.err.Error())
		} else {
			m.status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m lotteryModel) updateKeys(msg tea.KeyMsg) (lotteryModel, tea.Cmd) {
	keys := DefaultKeyMap
	switch {
	case key.Matches(msg, keys.Spin):
		return m.spin()
	case key.Matches(msg, keys.Reload):
		if m.spinning {
			return m, nil
		}
		m.loading = true
		m.status = ""
		return m, m.load()
	case key.Matches(msg, keys.Copy):
		if m.winner < 0 || m.winner >= len(m.prizes) {
			return m, nil
		}
		name := m.prizes[m.winner].Name
		return m, func() tea.Msg {
			return copiedMsg{err: clipboardWrite(name)}
		}
	case key.Matches(msg, keys.OpenAdmin):
		if m.adminURL == "" {
			return m, nil
		}
		url := m.adminURL
		return m, func() tea.Msg {
			return adminOpenedMsg{err: browserOpen(url)}
		}
	case key.Matches(msg, keys.Logout):
		return m, func() tea.Msg { return logoutMsg{} }
	}
	return m, nil
}

func (m lotteryModel) spin() (lotteryModel, tea.Cmd) {
	if m.spinning || m.loading || len(m.prizes) == 0 {
		return m, nil
	}
	target, err := wheel.Pick(m.prizes, m.rng)
	if err != nil {
		m.err = err.Error()
		return m, nil
	}
	m.steps = wheel.Schedule(len(m.prizes), target, wheel.DefaultLaps)
	m.step = 0
	m.spinSeq++
	m.spinning = true
	m.winner = -1
	m.status = ""
	m.highlight = m.steps[0].Index
	return m, spinTickCmd(m.spinSeq, m.steps[0].Delay)
}

func (m lotteryModel) View() string {
	t := m.locale.T

	var sb strings.Builder
	sb.WriteString(selectedStyle.Render(t(i18n.LotteryTitle)))
	if m.username != "" {
		sb.WriteString("  " + metaStyle.Render(t(i18n.LotteryUser, m.username)))
	}
	sb.WriteString("\n\n")

	switch {
	case m.loading:
		sb.WriteString(dimStyle.Render(t(i18n.LotteryLoading)))
		return "\n" + panel(sb.String(), m.width)
	case m.err != "":
		sb.WriteString(errorStyle.Render(m.err))
		return "\n" + panel(sb.String(), m.width)
	case len(m.prizes) == 0:
		sb.WriteString(dimStyle.Render(t(i18n.LotteryEmpty)))
		return "\n" + panel(sb.String(), m.width)
	}

	for i, p := range m.prizes {
		label := truncStr(p.Name, 36)
		if p.Level != "" {
			label = fmt.Sprintf("%s  %s", label, metaStyle.Render(p.Level))
		}
		if i == m.highlight {
			sb.WriteString(accentStyle.Render("▶ ") + segmentLitStyle.Render(" "+truncStr(p.Name, 36)+" "))
		} else {
			sb.WriteString("  " + segmentStyle.Render(label))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n" + metaStyle.Render(t(i18n.LotteryTotal, m.total)) + "\n")

	switch {
	case m.spinning:
		sb.WriteString(dimStyle.Render(t(i18n.LotterySpinning)))
	case m.winner >= 0 && m.winner < len(m.prizes):
		sb.WriteString(winnerStyle.Render(t(i18n.LotteryWinner, m.prizes[m.winner].Name)))
	}
	if m.status != "" {
		sb.WriteString("\n" + dimStyle.Render(m.status))
	}

	return "\n" + panel(sb.String(), m.width)
}

func (m lotteryModel) helpKeys() string {
	t := m.locale.T
	keys := DefaultKeyMap
	return bindingHelp(keys.Spin, t(i18n.HelpSpin)) + "  " +
		bindingHelp(keys.Reload, t(i18n.HelpReload)) + "  " +
		bindingHelp(keys.Copy, t(i18n.HelpCopy)) + "  " +
		bindingHelp(keys.OpenAdmin, t(i18n.HelpOpen)) + "  " +
		bindingHelp(keys.LetterLang, t(i18n.HelpLang)) + "  " +
		bindingHelp(keys.Logout, t(i18n.HelpLogout)) + "  " +
		bindingHelp(keys.LetterQuit, t(i18n.HelpQuit))
}
