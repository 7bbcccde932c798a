// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	next       key.Binding
	left       key.Binding
	right      key.Binding
	add        key.Binding
	sync       key.Binding
	importFile key.Binding
	exportFile key.Binding
	copy       key.Binding
	info       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	forceQuit  key.Binding
}

var keys = keyMap{
	next:       key.NewBinding(key.WithKeys("n", " ")),
	left:       key.NewBinding(key.WithKeys("left", "h")),
	right:      key.NewBinding(key.WithKeys("right", "l")),
	add:        key.NewBinding(key.WithKeys("a")),
	sync:       key.NewBinding(key.WithKeys("s")),
	importFile: key.NewBinding(key.WithKeys("i")),
	exportFile: key.NewBinding(key.WithKeys("e")),
	copy:       key.NewBinding(key.WithKeys("c")),
	info:       key.NewBinding(key.WithKeys("v")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab", "down")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:       key.NewBinding(key.WithKeys("q")),
	forceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
}
