package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/magnet-maze/internal/core"
)

// KeyMap defines the key bindings for a play session.
type KeyMap struct {
	SelectNone      key.Binding
	SelectAttract   key.Binding
	SelectRepel     key.Binding
	SelectTrap      key.Binding
	SelectParabolic key.Binding
	Polarity        key.Binding
	Pause           key.Binding
	Retry           key.Binding
	Regenerate      key.Binding
	NextLevel       key.Binding
	Dismiss         key.Binding
	Screenshot      key.Binding
	Help            key.Binding
	Quit            key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Polarity, k.Pause, k.Retry, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SelectNone, k.SelectAttract, k.SelectRepel, k.SelectTrap, k.SelectParabolic},
		{k.Polarity, k.Pause, k.Dismiss},
		{k.Retry, k.Regenerate, k.NextLevel},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SelectNone: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "select nothing"),
		),
		SelectAttract: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "attract magnet"),
		),
		SelectRepel: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "repel magnet"),
		),
		SelectTrap: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "trap magnet"),
		),
		SelectParabolic: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "parabolic magnet"),
		),
		Polarity: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "switch polarity"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "new layout"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next level"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a session action.
// Returns ActionNone for keys handled by the model itself or not bound.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.SelectNone):
		return core.ActionSelectNone
	case key.Matches(msg, k.SelectAttract):
		return core.ActionSelectAttract
	case key.Matches(msg, k.SelectRepel):
		return core.ActionSelectRepel
	case key.Matches(msg, k.SelectTrap):
		return core.ActionSelectTrap
	case key.Matches(msg, k.SelectParabolic):
		return core.ActionSelectParabolic
	case key.Matches(msg, k.Polarity):
		return core.ActionSwitchPolarity
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Retry):
		return core.ActionRetry
	case key.Matches(msg, k.Regenerate):
		return core.ActionRegenerate
	case key.Matches(msg, k.NextLevel):
		return core.ActionNextLevel
	case key.Matches(msg, k.Dismiss):
		return core.ActionDismiss
	}
	return core.ActionNone
}
