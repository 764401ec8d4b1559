package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/voxelpad/internal/core"
)

// KeyMap defines the key bindings for the sandbox, with help metadata for
// the footer bar.
type KeyMap struct {
	Inventory key.Binding
	Destroy   key.Binding
	Build     key.Binding
	Stats     key.Binding
	Regen     key.Binding
	Slots     key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Inventory, k.Slots, k.Build, k.Destroy, k.Stats, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Inventory, k.Slots, k.Build, k.Destroy},
		{k.Stats, k.Regen, k.Quit},
	}
}

// DefaultKeyMap returns the default sandbox key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Inventory: key.NewBinding(
			key.WithKeys("e", "i"),
			key.WithHelp("e", "inventory"),
		),
		Destroy: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "destroy"),
		),
		Build: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "build"),
		),
		Stats: key.NewBinding(
			key.WithKeys("tab", "m"),
			key.WithHelp("tab", "stats"),
		),
		Regen: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new world"),
		),
		Slots: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "pick block"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, k.Quit):
		frame.Set(core.ActionQuit)
		return true
	case key.Matches(msg, k.Inventory):
		frame.Set(core.ActionInventory)
	case key.Matches(msg, k.Destroy):
		frame.Set(core.ActionDestroy)
	case key.Matches(msg, k.Build):
		frame.Set(core.ActionBuild)
	case key.Matches(msg, k.Stats):
		frame.Set(core.ActionToggleHUD)
	case key.Matches(msg, k.Regen):
		frame.Set(core.ActionRegenerate)
	case key.Matches(msg, k.Slots):
		s := msg.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			frame.SetSlot(int(s[0] - '0'))
		}
	}
	return false
}

// MapMouseToFrame appends the pointer event for a mouse message to the frame.
func MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			frame.AddPointer(core.PointerPress, msg.X, msg.Y)
		case tea.MouseButtonRight:
			frame.AddPointer(core.PointerRightPress, msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		frame.AddPointer(core.PointerMove, msg.X, msg.Y)
	case tea.MouseActionRelease:
		frame.AddPointer(core.PointerRelease, msg.X, msg.Y)
	}
}
