package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit      key.Binding
	Search    key.Binding
	Clear     key.Binding
	Filter    key.Binding
	Up        key.Binding
	Down      key.Binding
	StockIn   key.Binding
	StockOut  key.Binding
	History   key.Binding
	Dashboard key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "Search")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Clear")),
		Filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "Filter")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k", "Up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/k", "Move")),
		StockIn:   key.NewBinding(key.WithKeys("+", "i"), key.WithHelp("+", "Stock in")),
		StockOut:  key.NewBinding(key.WithKeys("-", "o"), key.WithHelp("-", "Stock out")),
		History:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "History")),
		Dashboard: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "Dashboard")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Confirm")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Cancel")),
	}
}

func (k keyMap) dashboardHelp() []key.Binding {
	return []key.Binding{k.Search, k.Filter, k.Down, k.StockIn, k.StockOut, k.History, k.Quit}
}

func (k keyMap) historyHelp() []key.Binding {
	back := k.History
	back.SetHelp("h", "Back")
	return []key.Binding{back, k.Quit}
}

func (k keyMap) modalHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, "["+h.Key+"] "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, "  "))
}
