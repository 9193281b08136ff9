package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of both views. Help labels are looked up in
// the locale catalog when the help bar is rendered, so only the key names
// are set here.
type KeyMap struct {
	// Global.
	Quit       key.Binding
	ToggleLang key.Binding

	// Login form.
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding // Submit from any field.
	Enter     key.Binding // Next field, or submit on the last one.
	Dismiss   key.Binding

	// Lottery view. Single-letter keys only apply here since the login
	// form needs them for typing.
	Spin       key.Binding
	Reload     key.Binding
	Copy       key.Binding
	OpenAdmin  key.Binding
	LetterLang key.Binding
	Logout     key.Binding
	LetterQuit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	ToggleLang: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "language"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "submit"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "dismiss"),
	),
	Spin: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "spin"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	OpenAdmin: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "admin"),
	),
	LetterLang: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "language"),
	),
	Logout: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "logout"),
	),
	LetterQuit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

// bindingHelp renders one binding for the help bar with a translated label.
func bindingHelp(b key.Binding, label string) string {
	return helpEntry(b.Help().Key, label)
}
