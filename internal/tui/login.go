package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/lottery-wheel/internal/i18n"
	"github.com/naveenspark/lottery-wheel/pkg/client"
)

type loginField int

const (
	fieldUsername loginField = iota
	fieldPassword
	fieldCode
	numFields
)

// loginResultMsg carries the outcome of a login call. The App applies it to
// the session.
type loginResultMsg struct {
	username string
	token    string
	err      error
}

type loginModel struct {
	api    API
	locale *i18n.Switch
	fields [numFields]string
	focus  loginField
	busy   bool
	err    string
	width  int
}

func newLoginModel(api API, locale *i18n.Switch) loginModel {
	return loginModel{api: api, locale: locale}
}

func (m loginModel) Init() tea.Cmd {
	return nil
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case loginResultMsg:
		m.busy = false
		if msg.err != nil {
			m.err = m.locale.T(i18n.LoginFailed, loginErrorText(msg.err))
			m.fields[fieldPassword] = ""
			m.fields[fieldCode] = ""
			m.focus = fieldPassword
		}
		return m, nil

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m loginModel) updateKeys(msg tea.KeyMsg) (loginModel, tea.Cmd) {
	keys := DefaultKeyMap
	switch {
	case key.Matches(msg, keys.Submit):
		return m.submit()
	case key.Matches(msg, keys.NextField):
		m.focus = (m.focus + 1) % numFields
	case key.Matches(msg, keys.PrevField):
		m.focus = (m.focus - 1 + numFields) % numFields
	case key.Matches(msg, keys.Enter):
		if m.focus == numFields-1 {
			return m.submit()
		}
		m.focus++
	case key.Matches(msg, keys.Dismiss):
		m.err = ""
	default:
		f := &m.fields[m.focus]
		*f = editRune(*f, msg.String())
	}
	return m, nil
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	username := strings.TrimSpace(m.fields[fieldUsername])
	password := m.fields[fieldPassword]
	code := strings.TrimSpace(m.fields[fieldCode])
	if username == "" || password == "" {
		m.err = m.locale.T(i18n.LoginMissing)
		return m, nil
	}
	m.err = ""
	m.busy = true
	api := m.api
	return m, func() tea.Msg {
		token, err := api.Login(context.Background(), username, password, code, "")
		if err != nil {
			return loginResultMsg{username: username, err: err}
		}
		return loginResultMsg{username: username, token: token}
	}
}

// loginErrorText shows the server's message for rejected credentials and the
// full error for anything else.
func loginErrorText(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Msg
	}
	return err.Error()
}

func (m loginModel) View() string {
	t := m.locale.T
	labels := [numFields]string{
		t(i18n.LoginUsername),
		t(i18n.LoginPassword),
		t(i18n.LoginCode),
	}

	var sb strings.Builder
	sb.WriteString(selectedStyle.Render(t(i18n.LoginTitle)) + "\n\n")
	for i := loginField(0); i < numFields; i++ {
		value := m.fields[i]
		if i == fieldPassword {
			value = mask(value)
		}
		if i == m.focus {
			sb.WriteString(focusLabelStyle.Render(labels[i]) + " " + normalStyle.Render(value) + accentStyle.Render("█"))
		} else {
			sb.WriteString(labelStyle.Render(labels[i]) + " " + dimStyle.Render(value))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	switch {
	case m.busy:
		sb.WriteString(dimStyle.Render(t(i18n.LoginBusy)))
	case m.err != "":
		sb.WriteString(errorStyle.Render(m.err))
	}

	return "\n" + panel(sb.String(), m.width)
}

func (m loginModel) helpKeys() string {
	t := m.locale.T
	keys := DefaultKeyMap
	return bindingHelp(keys.NextField, t(i18n.HelpNext)) + "  " +
		bindingHelp(keys.Enter, t(i18n.HelpSubmit)) + "  " +
		bindingHelp(keys.ToggleLang, t(i18n.HelpLang)) + "  " +
		bindingHelp(keys.Quit, t(i18n.HelpQuit))
}
