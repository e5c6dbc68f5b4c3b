package cli

import "github.com/charmbracelet/bubbles/key"

type ledgerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Remove key.Binding
	Price  key.Binding
}

var ledgerKeys = ledgerKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Remove: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "remove")),
	Price:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "price")),
}

type globalKeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Back      key.Binding
}

var globalKeys = globalKeyMap{
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

type resultKeyMap struct {
	Edit  key.Binding
	Close key.Binding
}

var resultKeys = resultKeyMap{
	Edit:  key.NewBinding(key.WithKeys("p", "e"), key.WithHelp("p", "edit quantities")),
	Close: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
}
