package wizard

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the form screen bindings. Field editing keys (typing, cursor
// movement) go to the focused widget and are not listed here.
type keyMap struct {
	NextField   key.Binding
	PrevField   key.Binding
	NextStep    key.Binding
	PrevStep    key.Binding
	Step1       key.Binding
	Step2       key.Binding
	Step3       key.Binding
	Step4       key.Binding
	AddEntry    key.Binding
	RemoveEntry key.Binding
	Toggle      key.Binding
	NextOption  key.Binding
	PrevOption  key.Binding
	Submit      key.Binding
	Reset       key.Binding
	Hint        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down", "enter"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		NextStep: key.NewBinding(
			key.WithKeys("ctrl+n", "pgdown"),
			key.WithHelp("ctrl+n", "next section"),
		),
		PrevStep: key.NewBinding(
			key.WithKeys("ctrl+p", "pgup"),
			key.WithHelp("ctrl+p", "back"),
		),
		Step1: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1-f4", "jump to section")),
		Step2: key.NewBinding(key.WithKeys("f2")),
		Step3: key.NewBinding(key.WithKeys("f3")),
		Step4: key.NewBinding(key.WithKeys("f4")),
		AddEntry: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "add entry"),
		),
		RemoveEntry: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove entry"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		NextOption: key.NewBinding(
			key.WithKeys("right", " "),
			key.WithHelp("→", "next option"),
		),
		PrevOption: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev option"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "new form"),
		),
		Hint: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "field hint"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp satisfies help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.NextStep, k.PrevStep, k.Step1, k.AddEntry, k.RemoveEntry, k.Submit, k.Quit}
}

// FullHelp satisfies help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Toggle, k.NextOption, k.PrevOption},
		{k.NextStep, k.PrevStep, k.Step1},
		{k.AddEntry, k.RemoveEntry},
		{k.Submit, k.Reset, k.Hint, k.Quit},
	}
}
