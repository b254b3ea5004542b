// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter   key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	clock   key.Binding
	refresh key.Binding
	stats   key.Binding
}

var keys = keyMap{
	enter:   key.NewBinding(key.WithKeys("enter")),
	tab:     key.NewBinding(key.WithKeys("tab", "down")),
	backtab: key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	clock:   key.NewBinding(key.WithKeys("c")),
	refresh: key.NewBinding(key.WithKeys("r")),
	stats:   key.NewBinding(key.WithKeys("s")),
}
