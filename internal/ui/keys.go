package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/nibzard/tasklist/internal/config"
)

type keyMap struct {
	// List focus
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Raise    key.Binding
	Lower    key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Delete   key.Binding
	Focus    key.Binding
	Help     key.Binding
	Quit     key.Binding

	// Input focus
	Submit        key.Binding
	CyclePriority key.Binding
	Blur          key.Binding
}

func newKeyMap(k config.KeysConfig) keyMap {
	return keyMap{
		Up:            binding(k.Up, "up"),
		Down:          binding(k.Down, "down"),
		Toggle:        binding(k.Toggle, "done"),
		Raise:         binding(k.Raise, "raise"),
		Lower:         binding(k.Lower, "lower"),
		MoveUp:        binding(k.MoveUp, "move up"),
		MoveDown:      binding(k.MoveDown, "move down"),
		Delete:        binding(k.Delete, "delete"),
		Focus:         binding(k.Focus, "add task"),
		Help:          binding(k.Help, "help"),
		Quit:          binding(k.Quit, "quit"),
		Submit:        binding(k.Submit, "add"),
		CyclePriority: binding(k.CyclePriority, "priority"),
		Blur:          binding(k.Blur, "list"),
	}
}

// binding accepts "space" as an alias for the literal " " bubbletea reports.
func binding(keys []string, desc string) key.Binding {
	names := make([]string, 0, len(keys))
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		switch strings.ToLower(k) {
		case " ", "space":
			names = append(names, " ")
			labels = append(labels, "space")
		default:
			names = append(names, k)
			labels = append(labels, k)
		}
	}
	return key.NewBinding(
		key.WithKeys(names...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// listHelp and inputHelp feed bubbles/help for each focus.
type listHelp keyMap

func (k listHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Delete, k.Focus, k.Help, k.Quit}
}

func (k listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle, k.Delete},
		{k.Raise, k.Lower, k.MoveUp, k.MoveDown},
		{k.Focus, k.Help, k.Quit},
	}
}

type inputHelp keyMap

func (k inputHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.CyclePriority, k.Blur}
}

func (k inputHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
