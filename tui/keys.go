package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"staysearch/state"
)

// filterKeys toggle the chips of state.FilterChips in order
var filterKeys = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0", "-", "="}

type keyMap struct {
	Grid     key.Binding
	Map      key.Binding
	Split    key.Binding
	Up       key.Binding
	Down     key.Binding
	Click    key.Binding
	Favorite key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	LoadMore key.Binding
	Filter   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	n := len(state.FilterChips)
	if n > len(filterKeys) {
		n = len(filterKeys)
	}
	return keyMap{
		Grid:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid")),
		Map:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "map")),
		Split:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "split")),
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Click:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open on map")),
		Favorite: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favorite")),
		ZoomIn:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "zoom in")),
		ZoomOut:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "zoom out")),
		LoadMore: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "load more")),
		Filter:   key.NewBinding(key.WithKeys(filterKeys[:n]...), key.WithHelp("1-0 - =", "filters")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Click, k.Favorite, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Grid, k.Map, k.Split},
		{k.Up, k.Down, k.Click, k.Favorite},
		{k.ZoomIn, k.ZoomOut, k.LoadMore, k.Filter},
		{k.Help, k.Quit},
	}
}

// filterFor maps a pressed key to its chip id
func filterFor(pressed string) (string, bool) {
	for i, k := range filterKeys {
		if k == pressed && i < len(state.FilterChips) {
			return state.FilterChips[i].ID, true
		}
	}
	return "", false
}
