package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

func printHelp(w io.Writer) {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fcd34d")).
		Bold(true).
		Render("L O T T E R Y")

	sub := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render("Spin the prize wheel from your terminal.")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	commands := []struct{ cmd, desc string }{
		{"wheel", "Open the wheel (interactive TUI)"},
		{"wheel login", "Sign in (--username, --password, --code, --uuid)"},
		{"wheel logout", "Clear the saved session"},
		{"wheel prizes", "List prizes (--page, --size)"},
		{"wheel lang [en|zh]", "Show or set the language"},
		{"wheel --version", "Show version"},
		{"wheel help", "You are here"},
	}

	fmt.Fprintf(w, "\n  %s\n\n  %s\n\n  Commands:\n", title, sub) //nolint:errcheck
	for _, c := range commands {
		fmt.Fprintf(w, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", c.cmd)), descStyle.Render(c.desc)) //nolint:errcheck
	}

	env := descStyle.Render("Environment: WHEEL_API_URL WHEEL_ADMIN_URL WHEEL_DATA_DIR WHEEL_CONFIG WHEEL_LOG_LEVEL WHEEL_PAGE_SIZE WHEEL_TIMEOUT")
	fmt.Fprintf(w, "\n  %s\n\n", env) //nolint:errcheck
}
