package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/naveenspark/lottery-wheel/internal/i18n"
	"github.com/naveenspark/lottery-wheel/pkg/client"
)

// readPassword prompts for the password with echo disabled. Tests replace it.
var readPassword = func() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no terminal available for the password prompt (use --password)")
	}
	fmt.Fprint(os.Stderr, "Password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

func (a *app) runLogin(ctx context.Context, args []string) error {
	var username, password, code, captchaID string
	fs := pflag.NewFlagSet("wheel login", pflag.ContinueOnError)
	fs.StringVarP(&username, "username", "u", "", "account name")
	fs.StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	fs.StringVar(&code, "code", "", "captcha answer")
	fs.StringVar(&captchaID, "uuid", "", "captcha id (generated when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	username = strings.TrimSpace(username)
	if username == "" && fs.NArg() > 0 {
		username = fs.Arg(0)
	}
	if username == "" {
		return errors.New("login: --username is required")
	}
	if password == "" {
		p, err := readPassword()
		if err != nil {
			return err
		}
		password = p
	}

	token, err := a.api.Login(ctx, username, password, code, captchaID)
	if err != nil {
		a.logger.Warn("login failed", "username", username, "error", err)
		return err
	}
	if err := a.session.Login(username, token); err != nil {
		return err
	}
	a.logger.Info("logged in", "username", username)
	fmt.Fprintln(a.out, a.locale.T(i18n.CLILoggedIn, username))
	return nil
}

func (a *app) runLogout() error {
	if !a.session.IsLoggedIn() {
		fmt.Fprintln(a.out, a.locale.T(i18n.CLIAlreadyOut))
		return nil
	}
	name := a.session.Username()
	if err := a.session.Logout(); err != nil {
		return err
	}
	a.logger.Info("logged out", "username", name)
	fmt.Fprintln(a.out, a.locale.T(i18n.CLILoggedOut))
	return nil
}

func (a *app) runPrizes(ctx context.Context, args []string) error {
	var page, size int
	fs := pflag.NewFlagSet("wheel prizes", pflag.ContinueOnError)
	fs.IntVar(&page, "page", client.DefaultPageNum, "page number")
	fs.IntVar(&size, "size", a.cfg.PageSize, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.api.ListPrizes(ctx, page, size)
	if err != nil {
		if errors.Is(err, client.ErrNotLoggedIn) {
			return errors.New("not logged in (run \"wheel login\" first)")
		}
		return err
	}
	if len(result.Rows) == 0 {
		fmt.Fprintln(a.out, a.locale.T(i18n.CLINoPrizes))
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#2a2a38"))).
		Headers("ID", "NAME", "LEVEL", "STOCK", "WEIGHT")
	for _, p := range result.Rows {
		t.Row(
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Level,
			strconv.Itoa(p.Stock),
			strconv.FormatFloat(p.Weight, 'f', -1, 64),
		)
	}
	fmt.Fprintln(a.out, t.Render())
	fmt.Fprintln(a.out, a.locale.T(i18n.LotteryTotal, result.Total))
	return nil
}

func (a *app) runLang(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, a.locale.Language())
		return nil
	}
	if err := a.locale.SetLanguage(args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, a.locale.T(i18n.CLILanguageSet, a.locale.Language()))
	return nil
}
