// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-quote-keeper/internal/app"
	"github.com/MKhiriev/go-quote-keeper/internal/presenter"
	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/models"
)

type viewMode int

const (
	modeQuote viewMode = iota
	modeAdd
	modePath
	modeInfo
)

const mainHotKeys = "n: new quote │ ←/→: category │ a: add │ s: sync │ i: import │ e: export │ c: copy │ v: version │ q: quit"

type mainModel struct {
	ctx       context.Context
	services  *service.Services
	board     *presenter.Board
	notifyFor time.Duration
	reports   <-chan models.SyncReport
	buildInfo models.AppBuildInfo

	// copyText writes to the system clipboard.
	copyText func(string) error

	mode    viewMode
	display presenter.Display
	filter  string
	options []string

	form   addForm
	prompt pathPrompt
	sync   syncModel
}

func newMainModel(ctx context.Context, services *service.Services, board *presenter.Board, notifyFor time.Duration, reports <-chan models.SyncReport) mainModel {
	m := mainModel{
		ctx:       ctx,
		services:  services,
		board:     board,
		notifyFor: notifyFor,
		reports:   reports,
		copyText:  clipboard.WriteAll,
		filter:    models.FilterAll,
		sync:      newSyncModel(),
	}
	m.refreshOptions()
	return m
}

func (m mainModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLastShown(), m.cmdLoadFilter(), waitForReport(m.reports))
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAdd:
			return m.updateAddForm(msg)
		case modePath:
			return m.updatePathPrompt(msg)
		case modeInfo:
			if key.Matches(msg, keys.esc, keys.enter, keys.quit) {
				m.mode = modeQuote
			}
			return m, nil
		}
		return m.updateQuoteKeys(msg)

	case spinner.TickMsg:
		if !m.sync.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.sync.spinner, cmd = m.sync.spinner.Update(msg)
		return m, cmd

	case lastShownMsg:
		if msg.found && m.display.Text == "" {
			quote := models.Quote{Text: msg.quote.Text, Category: msg.quote.Category}
			m.display = presenter.Display{Quote: quote, Text: presenter.Render(quote), Found: true}
		}
		return m, nil

	case filterLoadedMsg:
		if msg.err != nil {
			return m, m.notify(userMessage(msg.err))
		}
		m.filter = msg.filter
		return m, nil

	case filterSavedMsg:
		if msg.err != nil {
			return m, m.notify(userMessage(msg.err))
		}
		m.filter = msg.filter
		return m, m.cmdRandom()

	case quoteShownMsg:
		if msg.err != nil {
			return m, m.notify(userMessage(msg.err))
		}
		m.display = msg.display
		return m, nil

	case quoteAddedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.mode = modeQuote
		m.refreshOptions()
		return m, m.notify(app.MsgQuoteAdded)

	case syncDoneMsg:
		m.sync.running = false
		m.refreshOptions()
		return m, m.notify(manualSyncMessage(msg.report))

	case syncReportMsg:
		if !msg.ok {
			return m, nil
		}
		m.refreshOptions()
		cmds := []tea.Cmd{waitForReport(m.reports)}
		if text, ok := msg.report.Summary(); ok {
			cmds = append(cmds, m.notify(text))
		}
		return m, tea.Batch(cmds...)

	case importDoneMsg:
		if msg.err != nil {
			return m, m.notify(userMessage(msg.err))
		}
		m.refreshOptions()
		return m, m.notify(app.MsgQuotesImported)

	case exportDoneMsg:
		if msg.err != nil {
			return m, m.notify(userMessage(msg.err))
		}
		return m, m.notify(app.MsgQuotesExported)

	case notificationExpiredMsg:
		m.board.Expire(msg.id)
		return m, nil
	}

	return m.forwardToInputs(msg)
}

func (m mainModel) updateQuoteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.next):
		return m, m.cmdRandom()
	case key.Matches(msg, keys.left):
		return m, m.cmdSetFilter(m.cycleFilter(-1))
	case key.Matches(msg, keys.right):
		return m, m.cmdSetFilter(m.cycleFilter(1))
	case key.Matches(msg, keys.add):
		m.mode = modeAdd
		m.form = newAddForm()
		return m, textinput.Blink
	case key.Matches(msg, keys.sync):
		if m.sync.running {
			return m, m.notify(app.MsgSyncInProgress)
		}
		m.sync.running = true
		return m, tea.Batch(m.sync.spinner.Tick, m.cmdSync())
	case key.Matches(msg, keys.importFile):
		m.mode = modePath
		m.prompt = newPathPrompt(false, "")
		return m, textinput.Blink
	case key.Matches(msg, keys.exportFile):
		m.mode = modePath
		m.prompt = newPathPrompt(true, service.ExportFileName(service.FormatJSON))
		return m, textinput.Blink
	case key.Matches(msg, keys.copy):
		if !m.display.Found {
			return m, m.notify(app.MsgNoQuotesAvailable)
		}
		if err := m.copyText(m.display.Text); err != nil {
			return m, m.notify(userMessage(err))
		}
		return m, m.notify(app.MsgCopied)
	case key.Matches(msg, keys.info):
		m.mode = modeInfo
	}
	return m, nil
}

func (m mainModel) updateAddForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeQuote
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form.move(1)
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form.move(-1)
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.form.submitting {
			return m, nil
		}
		quote := m.form.quote()
		if strings.TrimSpace(quote.Text) == "" || strings.TrimSpace(quote.Category) == "" {
			m.form.errMsg = app.MsgFillBothFields
			return m, nil
		}
		m.form.submitting = true
		m.form.errMsg = ""
		return m, m.cmdAdd(quote)
	}

	return m, m.form.update(msg)
}

func (m mainModel) updatePathPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeQuote
		return m, nil
	case key.Matches(msg, keys.enter):
		m.mode = modeQuote
		if m.prompt.export {
			return m, m.cmdExport(m.prompt.path())
		}
		return m, m.cmdImport(m.prompt.path())
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

func (m mainModel) forwardToInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAdd:
		return m, m.form.update(msg)
	case modePath:
		var cmd tea.Cmd
		m.prompt.input, cmd = m.prompt.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *mainModel) refreshOptions() {
	m.options = service.CategoryOptions(m.services.Catalog)
}

// cycleFilter returns the option delta steps away from the current filter,
// wrapping around. An unknown current filter counts as "all".
func (m mainModel) cycleFilter(delta int) string {
	if len(m.options) == 0 {
		return models.FilterAll
	}
	i := max(slices.Index(m.options, m.filter), 0)
	n := len(m.options)
	return m.options[((i+delta)%n+n)%n]
}

func (m mainModel) View() string {
	switch m.mode {
	case modeAdd:
		return renderPage("ADD QUOTE", m.form.View(), "esc: back │ tab: next field │ enter: add")
	case modePath:
		title := "IMPORT QUOTES"
		if m.prompt.export {
			title = "EXPORT QUOTES"
		}
		return renderPage(title, m.prompt.View(), "esc: back │ enter: confirm")
	case modeInfo:
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder
	b.WriteString("Category: ")
	b.WriteString(filterStyle.Render("< " + filterLabel(m.filter) + " >"))
	b.WriteString("\n\n")

	text := m.display.Text
	if text == "" {
		text = "Press n to show a quote."
	}
	b.WriteString(quoteStyle.Render(text))
	b.WriteString("\n")

	if s := m.sync.View(); s != "" {
		b.WriteString("\n")
		b.WriteString(s)
		b.WriteString("\n")
	}
	for _, n := range m.board.Active() {
		b.WriteString(statusStyle.Render("• " + fitText(n.Message, 72)))
		b.WriteString("\n")
	}

	return renderPage("QUOTE KEEPER", strings.TrimRight(b.String(), "\n"), mainHotKeys)
}
