// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-quote-keeper/models"
)

const (
	fieldText = iota
	fieldCategory
	fieldAuthor
)

// addForm collects a new quote. Author is optional.
type addForm struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newAddForm() addForm {
	text := textinput.New()
	text.Placeholder = "Enter a new quote"
	text.Width = 56
	text.Focus()

	category := textinput.New()
	category.Placeholder = "Enter quote category"
	category.Width = 32

	author := textinput.New()
	author.Placeholder = "Author (optional)"
	author.Width = 32

	return addForm{inputs: []textinput.Model{text, category, author}}
}

func (f *addForm) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *addForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f addForm) quote() models.Quote {
	return models.Quote{
		Text:     f.inputs[fieldText].Value(),
		Category: f.inputs[fieldCategory].Value(),
		Author:   f.inputs[fieldAuthor].Value(),
	}
}

func (f addForm) View() string {
	var b strings.Builder
	b.WriteString("Quote    │ [" + f.inputs[fieldText].View() + "]\n")
	b.WriteString("Category │ [" + f.inputs[fieldCategory].View() + "]\n")
	b.WriteString("Author   │ [" + f.inputs[fieldAuthor].View() + "]\n")
	if f.submitting {
		b.WriteString("Action   │ [Saving...]\n")
	} else {
		b.WriteString("Action   │ [Add Quote]\n")
	}
	if f.errMsg != "" {
		b.WriteString("Error    │ " + errorStyle.Render(f.errMsg) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// pathPrompt asks for a file path for import or export.
type pathPrompt struct {
	input  textinput.Model
	export bool
}

func newPathPrompt(export bool, initial string) pathPrompt {
	in := textinput.New()
	in.Placeholder = "path/to/quotes.json"
	in.Width = 48
	in.SetValue(initial)
	in.Focus()
	return pathPrompt{input: in, export: export}
}

func (p pathPrompt) path() string {
	return strings.TrimSpace(p.input.Value())
}

func (p pathPrompt) View() string {
	label := "Import from"
	if p.export {
		label = "Export to"
	}
	out := label + " │ [" + p.input.View() + "]"
	if p.export {
		out += "\n" + helpStyle.Render("a .xlsx extension writes a workbook, anything else JSON")
	}
	return out
}
