package model

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	// list
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	SelectAll  key.Binding
	View       key.Binding
	Delete     key.Binding
	BulkDelete key.Binding
	Add        key.Binding
	Refresh    key.Binding

	// form and in-place edit
	NextField key.Binding
	PrevField key.Binding
	Enter     key.Binding
	Save      key.Binding
	Esc       key.Binding

	// view
	Edit       key.Binding
	EditInForm key.Binding
	Back       key.Binding
	Copy       key.Binding

	// dialogs
	Confirm key.Binding
	Deny    key.Binding

	// global
	Help      key.Binding
	ToggleLog key.Binding
	CopyLogs  key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "move down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "select row"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all"),
		),
		View: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter/v", "view"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		BulkDelete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete selected"),
		),
		Add: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "add employee"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next / submit"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/back"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit in place"),
		),
		EditInForm: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "edit in form"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "back to list"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy as YAML"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y/enter", "delete"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		CopyLogs: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy logs"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// PageHelp is the help.KeyMap shown for one page.
type PageHelp struct {
	Short []key.Binding
	Full  [][]key.Binding
}

func (p PageHelp) ShortHelp() []key.Binding  { return p.Short }
func (p PageHelp) FullHelp() [][]key.Binding { return p.Full }

// HelpFor returns the bindings that apply to the given page.
func (k KeyMap) HelpFor(page Page, editing bool) PageHelp {
	global := []key.Binding{k.Help, k.ToggleLog, k.Quit}
	switch {
	case page == PageForm:
		return PageHelp{
			Short: []key.Binding{k.NextField, k.Enter, k.Save, k.Esc},
			Full:  [][]key.Binding{{k.NextField, k.PrevField}, {k.Enter, k.Save, k.Esc}, {k.ForceQuit}},
		}
	case page == PageView && editing:
		return PageHelp{
			Short: []key.Binding{k.NextField, k.Save, k.Esc},
			Full:  [][]key.Binding{{k.NextField, k.PrevField}, {k.Enter, k.Save, k.Esc}, {k.ForceQuit}},
		}
	case page == PageView:
		return PageHelp{
			Short: []key.Binding{k.Edit, k.EditInForm, k.Back, k.Copy},
			Full:  [][]key.Binding{{k.Edit, k.EditInForm}, {k.Back, k.Esc, k.Copy}, global},
		}
	default:
		return PageHelp{
			Short: []key.Binding{k.Up, k.Down, k.Toggle, k.View, k.Add, k.Delete},
			Full: [][]key.Binding{
				{k.Up, k.Down, k.View},
				{k.Toggle, k.SelectAll, k.BulkDelete},
				{k.Add, k.Delete, k.Refresh},
				global,
			},
		}
	}
}
