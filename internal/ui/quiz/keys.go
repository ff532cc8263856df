package quiz

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shown in the help line.
type keyMap struct {
	Generate key.Binding
	Open     key.Binding
	Next     key.Binding
	Prev     key.Binding
	Up       key.Binding
	Down     key.Binding
	Choose   key.Binding
	Pick     key.Binding
	Submit   key.Binding
	Back     key.Binding
	Quit     key.Binding

	screen screen
}

func defaultKeys() keyMap {
	return keyMap{
		Generate: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate")),
		Open:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "load file")),
		Next:     key.NewBinding(key.WithKeys("tab", "right", "n"), key.WithHelp("tab", "next question")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab", "left", "p"), key.WithHelp("shift+tab", "previous")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Choose:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Pick:     key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "pick option")),
		Submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "edit text")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp returns the bindings relevant to the current screen.
func (k keyMap) ShortHelp() []key.Binding {
	switch k.screen {
	case screenQuiz:
		return []key.Binding{k.Up, k.Down, k.Choose, k.Pick, k.Next, k.Prev, k.Submit, k.Back, k.Quit}
	case screenReview:
		return []key.Binding{k.Next, k.Prev, k.Back, k.Quit}
	default:
		return []key.Binding{k.Generate, k.Open, k.Quit}
	}
}

// FullHelp returns every binding grouped by screen.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.Open},
		{k.Up, k.Down, k.Choose, k.Pick, k.Next, k.Prev},
		{k.Submit, k.Back, k.Quit},
	}
}
