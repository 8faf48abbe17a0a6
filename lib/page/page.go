// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

package page

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/canopy-ui/dropdown/lib/dropdown"
	"github.com/canopy-ui/dropdown/lib/tui"
)

// Layout constants. Each dropdown occupies three rows: a caption, the
// trigger, and a separator. Open menus overlay the rows below their
// trigger.
const (
	leftMargin    = 2
	headerRows    = 2 // Title + blank.
	rowsPerWidget = 3
)

// Page is a bubbletea model hosting the dropdowns declared by a
// Definition. It owns the registry, assigns screen anchors, routes
// key and mouse events, and fans selection notifications out to the
// bubbletea loop, subscribers, and the logger.
type Page struct {
	title     string
	theme     tui.Theme
	keys      KeyMap
	logger    *slog.Logger
	registry  *dropdown.Registry
	dropdowns []*dropdown.Dropdown // Layout order; destroyed entries keep their slot.
	captions  []string

	focusIndex int // Which trigger has keyboard focus.
	width      int
	height     int
	ready      bool

	status          string // Last selection, shown in the status line.
	clipboardNotice string

	subscribers []func(dropdown.SelectionMsg)
}

// NewPage builds one dropdown per definition entry, registers each in
// a fresh registry, and logs the initialized count.
func NewPage(definition *Definition, logger *slog.Logger) Page {
	if logger == nil {
		logger = slog.Default()
	}

	registry := dropdown.NewRegistry(logger)
	page := Page{
		title:    definition.Title,
		theme:    tui.DefaultTheme,
		keys:     DefaultKeyMap,
		logger:   logger,
		registry: registry,
	}

	for _, def := range definition.Dropdowns {
		options := make([]dropdown.Option, len(def.Options))
		for index, option := range def.Options {
			options[index] = dropdown.Option{Label: option.Label, Value: option.Value}
		}
		instance := dropdown.New(def.ID, def.Placeholder, options)
		if def.MaxVisible > 0 {
			instance.SetMaxVisible(def.MaxVisible)
		}
		registry.Add(instance)
		page.dropdowns = append(page.dropdowns, instance)

		caption := def.Label
		if caption == "" {
			caption = def.ID
		}
		page.captions = append(page.captions, caption)
	}

	logger.Info("initialized dropdowns", "count", registry.Len())
	page.updateLayout()
	return page
}

// Registry exposes the instance collection (lookups, mutual
// exclusion) to external callers.
func (page *Page) Registry() *dropdown.Registry { return page.registry }

// Subscribe registers a callback invoked on every committed
// selection, after the page's own bookkeeping. Call before the
// program starts; subscribers run synchronously on the event loop.
func (page *Page) Subscribe(callback func(dropdown.SelectionMsg)) {
	page.subscribers = append(page.subscribers, callback)
}

// Destroy tears down the instance with the given ID: its menu closes,
// it leaves the registry, and it stops reacting to any input. Unknown
// IDs are ignored.
func (page *Page) Destroy(id string) {
	instance := page.registry.ByID(id)
	if instance == nil {
		return
	}
	instance.Destroy(page.registry)
	if page.focusedDropdown() == instance {
		page.focusNext()
	}
}

// Init implements tea.Model.
func (page Page) Init() tea.Cmd { return nil }

// Update implements tea.Model. Keyboard events route to the open
// instance when there is one, otherwise to page-level navigation.
// Mouse events go through the click interceptor.
func (page Page) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		page.width = message.Width
		page.height = message.Height
		page.ready = true
		page.updateLayout()

	case tea.KeyMsg:
		return page.handleKey(message)

	case tea.MouseMsg:
		if cmd := page.handleMouse(message); cmd != nil {
			return page, cmd
		}

	case dropdown.SelectionMsg:
		page.status = fmt.Sprintf("%s = %s", message.ID, message.Value)
		page.logger.Info("option selected",
			"dropdown", message.ID,
			"value", message.Value,
			"index", message.Index,
		)
		for _, subscriber := range page.subscribers {
			subscriber(message)
		}

	case clipboardFadeMsg:
		page.clipboardNotice = ""
	}

	return page, nil
}

func (page Page) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// An open menu captures everything except the force-quit chord.
	if open := page.registry.OpenInstance(); open != nil {
		if key.Matches(message, page.keys.ForceQuit) {
			return page, tea.Quit
		}
		if msg, selected := open.HandleKey(message); selected {
			return page, emitSelection(msg)
		}
		return page, nil
	}

	switch {
	case key.Matches(message, page.keys.Quit):
		return page, tea.Quit

	case key.Matches(message, page.keys.FocusNext):
		page.focusNext()

	case key.Matches(message, page.keys.FocusPrevious):
		page.focusPrevious()

	case key.Matches(message, page.keys.Activate):
		if focused := page.focusedDropdown(); focused != nil {
			focused.Open(page.registry)
		}
	}
	return page, nil
}

// handleMouse is the global click interceptor plus per-instance click
// delivery. One handler at page level serves every instance: on each
// press, any open menu that does not contain the target point closes;
// a contained press is delivered to its owning instance, whose own
// trigger/option handling governs that case.
func (page *Page) handleMouse(message tea.MouseMsg) tea.Cmd {
	switch message.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		delta := 1
		if message.Button == tea.MouseButtonWheelUp {
			delta = -1
		}
		if open := page.registry.OpenInstance(); open != nil && open.Contains(message.X, message.Y) {
			open.HandleWheel(delta)
		}
		return nil

	case tea.MouseButtonLeft:
		if message.Action != tea.MouseActionPress {
			return nil
		}
		for _, instance := range page.registry.Instances() {
			if instance.IsOpen() && !instance.Contains(message.X, message.Y) {
				instance.Close()
			}
		}
		for index, instance := range page.dropdowns {
			msg, selected, handled := instance.HandleClick(message.X, message.Y, page.registry)
			if !handled {
				continue
			}
			page.focusIndex = index
			if selected {
				return emitSelection(msg)
			}
			return nil
		}
		return nil

	case tea.MouseButtonRight:
		if message.Action != tea.MouseActionRelease {
			return nil
		}
		// Right-click on an instance copies its selected value to the
		// system clipboard via OSC 52.
		for _, instance := range page.dropdowns {
			if !instance.Contains(message.X, message.Y) {
				continue
			}
			if option, ok := instance.Selected(); ok {
				page.clipboardNotice = option.Value
				return copyToClipboard(option.Value)
			}
			return nil
		}
	}
	return nil
}

// emitSelection re-delivers a selection notification through the
// bubbletea loop so the page (and anything wrapping it) observes it
// as a message.
func emitSelection(msg dropdown.SelectionMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (page *Page) focusedDropdown() *dropdown.Dropdown {
	if page.focusIndex < 0 || page.focusIndex >= len(page.dropdowns) {
		return nil
	}
	instance := page.dropdowns[page.focusIndex]
	if instance.Destroyed() {
		return nil
	}
	return instance
}

// focusNext moves trigger focus forward, skipping destroyed
// instances and wrapping.
func (page *Page) focusNext() {
	count := len(page.dropdowns)
	for step := 1; step <= count; step++ {
		candidate := (page.focusIndex + step) % count
		if !page.dropdowns[candidate].Destroyed() {
			page.focusIndex = candidate
			return
		}
	}
}

func (page *Page) focusPrevious() {
	count := len(page.dropdowns)
	for step := 1; step <= count; step++ {
		candidate := (page.focusIndex - step + count) % count
		if !page.dropdowns[candidate].Destroyed() {
			page.focusIndex = candidate
			return
		}
	}
}

// updateLayout assigns every instance's screen anchor from its slot.
// Destroyed instances keep their slot so the page does not reflow
// under the pointer.
func (page *Page) updateLayout() {
	for index, instance := range page.dropdowns {
		captionY := headerRows + index*rowsPerWidget
		instance.SetAnchor(leftMargin, captionY+1)
	}
}

// View implements tea.Model. The base page (title, captions,
// triggers, status, help) renders first; the open menu, if any, is
// spliced over it.
func (page Page) View() string {
	if !page.ready {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Foreground(page.theme.TitleForeground).Bold(true)
	captionStyle := lipgloss.NewStyle().Foreground(page.theme.FaintText)
	statusStyle := lipgloss.NewStyle().Foreground(page.theme.StatusForeground)
	helpStyle := lipgloss.NewStyle().Foreground(page.theme.HelpText)

	lines := make([]string, page.height)
	margin := strings.Repeat(" ", leftMargin)

	setLine := func(y int, content string) {
		if y >= 0 && y < len(lines) {
			lines[y] = content
		}
	}

	setLine(0, margin+titleStyle.Render(page.title))

	for index, instance := range page.dropdowns {
		if instance.Destroyed() {
			continue
		}
		captionY := headerRows + index*rowsPerWidget
		setLine(captionY, margin+captionStyle.Render(page.captions[index]))
		setLine(captionY+1, margin+instance.RenderTrigger(page.theme, index == page.focusIndex))
	}

	if page.height >= 2 {
		status := page.status
		if page.clipboardNotice != "" {
			status = fmt.Sprintf("copied %q", page.clipboardNotice)
		}
		setLine(page.height-2, margin+statusStyle.Render(status))
		setLine(page.height-1, margin+helpStyle.Render(page.helpLine()))
	}

	view := strings.Join(lines, "\n")

	if open := page.registry.OpenInstance(); open != nil {
		anchorX, anchorY := open.Anchor()
		view = tui.SpliceOverlay(view, open.RenderMenu(page.theme), anchorX, anchorY+1)
	}

	return view
}

func (page Page) helpLine() string {
	if page.registry.OpenInstance() != nil {
		return "↑/↓ move · type to jump · Enter select · Esc close"
	}
	return "Tab next field · Enter open · q quit"
}

