// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/prodcat/catalog"
)

// Focus targets, cycled with tab
const (
	focusQuery = iota
	focusResults
	focusDetail
	focusCount
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	queryInput     textinput.Model
	resultsList    list.Model
	detailViewport viewport.Model

	// Data
	session *session
	config  *Config

	// State
	focusIndex int
	results    []catalog.Product
	lastQuery  string

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(accentColor()).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
	}
}

// productItem represents a product in the results list
type productItem struct {
	product catalog.Product
}

func (i productItem) FilterValue() string { return i.product.Name }
func (i productItem) Title() string       { return i.product.Name }
func (i productItem) Description() string { return "id " + i.product.ID }

// InitialModel creates the initial model
func InitialModel(s *session, cfg *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a product name or id..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	resultsList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	resultsList.SetShowTitle(false)
	resultsList.SetShowHelp(false)
	resultsList.SetFilteringEnabled(false)

	detailViewport := viewport.New(0, 0)
	detailViewport.SetContent("Select a product to see its details...")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(cfg.UI.WordWrap),
	)

	m := Model{
		queryInput:      ti,
		resultsList:     resultsList,
		detailViewport:  detailViewport,
		session:         s,
		config:          cfg,
		focusIndex:      focusQuery,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.updateResults("")
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.focusIndex = (m.focusIndex + 1) % focusCount
			if m.focusIndex == focusQuery {
				m.queryInput.Focus()
			} else {
				m.queryInput.Blur()
			}
			return m, nil
		case "enter":
			if m.focusIndex != focusResults {
				return m, nil
			}
			if selected, ok := m.selected(); ok {
				return m, func() tea.Msg {
					if err := copyToClipboard(selected.ID); err != nil {
						fmt.Fprintf(os.Stderr, "Failed to copy id: %v\n", err)
					}
					return tea.Quit()
				}
			}
			return m, nil
		}
		return m.updateFocused(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// updateFocused hands a key to whichever component has focus
func (m Model) updateFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focusIndex {
	case focusQuery:
		m.queryInput, cmd = m.queryInput.Update(msg)
		if query := m.queryInput.Value(); query != m.lastQuery {
			m.updateResults(query)
			m.lastQuery = query
		}
	case focusResults:
		before := m.resultsList.Index()
		m.resultsList, cmd = m.resultsList.Update(msg)
		if m.resultsList.Index() != before {
			m.updateDetail()
		}
	case focusDetail:
		m.detailViewport, cmd = m.detailViewport.Update(msg)
	}

	return m, cmd
}

// searchProducts resolves a query against the session: an empty query
// lists everything, an id adds that product first, and every product with
// exactly that name follows.
func searchProducts(s *session, query string) []catalog.Product {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.list()
	}

	results := []catalog.Product{}
	seen := ""
	if key, err := catalog.ParseID(query); err == nil {
		id := catalog.FormatID(key)
		if name, _ := s.name(id); name != "" {
			results = append(results, catalog.Product{ID: id, Name: name})
			seen = id
		}
	}
	for _, id := range s.find(query) {
		if id == seen {
			continue
		}
		results = append(results, catalog.Product{ID: id, Name: query})
	}
	return results
}

// updateResults refreshes the results list for a query
func (m *Model) updateResults(query string) {
	m.results = searchProducts(m.session, query)

	items := make([]list.Item, len(m.results))
	for i, product := range m.results {
		items[i] = productItem{product: product}
	}
	m.resultsList.SetItems(items)
	m.resultsList.ResetSelected()
	m.updateDetail()
}

func (m Model) selected() (catalog.Product, bool) {
	idx := m.resultsList.Index()
	if idx < 0 || idx >= len(m.results) {
		return catalog.Product{}, false
	}
	return m.results[idx], true
}

// updateDetail renders the selected product into the detail viewport
func (m *Model) updateDetail() {
	product, ok := m.selected()
	if !ok {
		m.detailViewport.SetContent("No products match your search.")
		return
	}

	var content strings.Builder
	content.WriteString(fmt.Sprintf("# %s\n\n", product.Name))
	content.WriteString(fmt.Sprintf("**ID:** %s\n\n", product.ID))

	var others []string
	for _, id := range m.session.find(product.Name) {
		if id != product.ID {
			others = append(others, id)
		}
	}
	if len(others) > 0 {
		content.WriteString(fmt.Sprintf("**Same name:** %s\n\n", strings.Join(others, ", ")))
	}
	content.WriteString(fmt.Sprintf("**Catalog size:** %d products\n\n", m.session.products.Count()))

	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(content.String()); err == nil {
			m.detailViewport.SetContent(rendered)
			return
		}
	}
	m.detailViewport.SetContent(content.String())
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	m.queryInput.Width = leftWidth - 4
	m.resultsList.SetSize(leftWidth-2, listHeight-2)
	m.detailViewport.Width = rightWidth - 2
	m.detailViewport.Height = listHeight + inputHeight
}

func (m Model) boxStyle(focus int) lipgloss.Style {
	if m.focusIndex == focus {
		return m.styles.BorderFocused
	}
	return m.styles.BorderBlurred
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	inputBox := m.boxStyle(focusQuery).
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("🔍 Search Products"),
			m.queryInput.View(),
		))

	resultsBox := m.boxStyle(focusResults).
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(fmt.Sprintf("📦 Products (%d)", len(m.results))),
			m.resultsList.View(),
		))

	detailBox := m.boxStyle(focusDetail).
		Width(rightWidth).
		Height(listHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render("📖 Details"),
			m.detailViewport.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, resultsBox),
		detailBox,
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderHelp())
}

// renderHelp renders the key help footer
func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "↑/↓", "esc"}
	descs := []string{"copy id", "switch focus", "move", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %s%s%s to clipboard.\n", Green, text, Reset)
	return nil
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(s *session, cfg *Config) error {
	model := InitialModel(s, cfg)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
