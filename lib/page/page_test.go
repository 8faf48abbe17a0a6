// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: Apache-2.0

package page

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/canopy-ui/dropdown/lib/dropdown"
)

func testPage() Page {
	definition := &Definition{
		Title: "Test form",
		Dropdowns: []DropdownDef{
			{ID: "a", Label: "Alpha", Placeholder: "Pick", Options: []OptionDef{
				{Label: "A1", Value: "a1"},
				{Label: "A2", Value: "a2"},
			}},
			{ID: "b", Label: "Beta", Placeholder: "Pick", Options: []OptionDef{
				{Label: "B1", Value: "b1"},
				{Label: "B2", Value: "b2"},
				{Label: "B3", Value: "b3"},
			}},
			{ID: "c", Label: "Gamma", Placeholder: "Pick", Options: []OptionDef{
				{Label: "C1", Value: "c1"},
				{Label: "C2", Value: "c2"},
			}},
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	page := NewPage(definition, logger)
	model, _ := page.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(Page)
}

func update(t *testing.T, page Page, message tea.Msg) (Page, tea.Cmd) {
	t.Helper()
	model, cmd := page.Update(message)
	return model.(Page), cmd
}

func press(keyType tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: keyType}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// Trigger rows follow the fixed layout: header rows, then three rows
// per widget with the trigger in the middle.
func triggerY(index int) int {
	return headerRows + index*rowsPerWidget + 1
}

func TestNewPageBuildsInstances(t *testing.T) {
	page := testPage()

	if page.Registry().Len() != 3 {
		t.Fatalf("registry holds %d instances, want 3", page.Registry().Len())
	}
	for _, id := range []string{"a", "b", "c"} {
		if page.Registry().ByID(id) == nil {
			t.Errorf("instance %q missing from registry", id)
		}
	}
	if page.focusedDropdown() == nil || page.focusedDropdown().ID() != "a" {
		t.Error("initial focus should land on the first instance")
	}
}

func TestViewWaitsForWindowSize(t *testing.T) {
	definition := &Definition{Title: "t", Dropdowns: []DropdownDef{{ID: "a"}}}
	page := NewPage(definition, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if page.View() != "" {
		t.Error("view should be empty before the first window size")
	}

	page = testPage()
	view := page.View()
	if !strings.Contains(view, "Test form") {
		t.Error("sized view should contain the title")
	}
	if got := len(strings.Split(view, "\n")); got != 24 {
		t.Errorf("view has %d rows, want 24", got)
	}
}

func TestTabTraversalWraps(t *testing.T) {
	page := testPage()

	page, _ = update(t, page, press(tea.KeyTab))
	if page.focusedDropdown().ID() != "b" {
		t.Errorf("after tab focus = %q, want b", page.focusedDropdown().ID())
	}
	page, _ = update(t, page, press(tea.KeyTab))
	page, _ = update(t, page, press(tea.KeyTab))
	if page.focusedDropdown().ID() != "a" {
		t.Errorf("focus should wrap to a, got %q", page.focusedDropdown().ID())
	}

	page, _ = update(t, page, press(tea.KeyShiftTab))
	if page.focusedDropdown().ID() != "c" {
		t.Errorf("shift+tab should wrap backward to c, got %q", page.focusedDropdown().ID())
	}
}

func TestActivateOpensFocusedTrigger(t *testing.T) {
	page := testPage()

	page, _ = update(t, page, press(tea.KeyEnter))
	open := page.Registry().OpenInstance()
	if open == nil || open.ID() != "a" {
		t.Fatal("enter should open the focused instance")
	}

	// Esc closes it again without committing anything.
	page, _ = update(t, page, press(tea.KeyEsc))
	if page.Registry().OpenInstance() != nil {
		t.Error("esc should close the open menu")
	}
	if page.Registry().ByID("a").SelectedIndex() != dropdown.NoSelection {
		t.Error("dismissal must not commit a selection")
	}
}

func TestKeyboardSelectionFlow(t *testing.T) {
	page := testPage()
	var received []dropdown.SelectionMsg
	page.Subscribe(func(msg dropdown.SelectionMsg) {
		received = append(received, msg)
	})

	page, _ = update(t, page, press(tea.KeyEnter))
	page, _ = update(t, page, press(tea.KeyDown))
	page, cmd := update(t, page, press(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("committing a selection should yield a command")
	}

	msg, ok := cmd().(dropdown.SelectionMsg)
	if !ok {
		t.Fatalf("command produced %T, want SelectionMsg", cmd())
	}
	if msg.ID != "a" || msg.Value != "a1" || msg.Index != 0 {
		t.Errorf("unexpected selection: %+v", msg)
	}

	page, _ = update(t, page, msg)
	if page.status != "a = a1" {
		t.Errorf("status = %q, want %q", page.status, "a = a1")
	}
	if len(received) != 1 || received[0].Value != "a1" {
		t.Errorf("subscriber saw %v", received)
	}
	if page.Registry().OpenInstance() != nil {
		t.Error("menu should close on commit")
	}
}

func TestOpenMenuCapturesNavigationKeys(t *testing.T) {
	page := testPage()

	page, _ = update(t, page, press(tea.KeyEnter))
	page, _ = update(t, page, press(tea.KeyTab))
	if page.focusedDropdown().ID() != "a" {
		t.Error("tab must not move trigger focus while a menu is open")
	}

	// The force-quit chord still works.
	_, cmd := update(t, page, press(tea.KeyCtrlC))
	if cmd == nil {
		t.Fatal("ctrl+c should quit even with a menu open")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("ctrl+c produced %T, want tea.QuitMsg", cmd())
	}
}

func TestClickTriggerTogglesMenu(t *testing.T) {
	page := testPage()

	page, _ = update(t, page, leftClick(leftMargin+1, triggerY(1)))
	open := page.Registry().OpenInstance()
	if open == nil || open.ID() != "b" {
		t.Fatal("clicking a trigger should open its menu")
	}
	if page.focusedDropdown().ID() != "b" {
		t.Error("click should move trigger focus")
	}

	page, _ = update(t, page, leftClick(leftMargin+1, triggerY(1)))
	if page.Registry().OpenInstance() != nil {
		t.Error("clicking the trigger again should close the menu")
	}
}

func TestClickOptionCommitsSelection(t *testing.T) {
	page := testPage()

	page, _ = update(t, page, leftClick(leftMargin+1, triggerY(0)))
	// Menu rows start directly under the trigger; row 1 is option A2.
	page, cmd := update(t, page, leftClick(leftMargin+1, triggerY(0)+2))
	if cmd == nil {
		t.Fatal("clicking an option should yield a selection command")
	}

	msg, ok := cmd().(dropdown.SelectionMsg)
	if !ok || msg.Value != "a2" || msg.Index != 1 {
		t.Fatalf("unexpected selection from click: %+v", cmd())
	}
	if page.Registry().ByID("a").SelectedIndex() != 1 {
		t.Error("click selection should commit on the instance")
	}
	if page.Registry().OpenInstance() != nil {
		t.Error("menu should close after an option click")
	}
}

func TestClickSecondTriggerClosesFirst(t *testing.T) {
	page := testPage()

	page, _ = update(t, page, leftClick(leftMargin+1, triggerY(0)))
	page, _ = update(t, page, leftClick(leftMargin+1, triggerY(2)))

	open := page.Registry().OpenInstance()
	if open == nil || open.ID() != "c" {
		t.Fatal("second trigger click should open its own menu")
	}
	if page.Registry().ByID("a").IsOpen() {
		t.Error("first menu should have closed")
	}
}

func TestOutsideClickClosesWithoutSelecting(t *testing.T) {
	page := testPage()

	page, _ = update(t, page, leftClick(leftMargin+1, triggerY(1)))
	instance := page.Registry().ByID("b")
	instance.MoveFocusDown()

	page, cmd := update(t, page, leftClick(60, 0))
	if cmd != nil {
		t.Error("outside clicks must not emit anything")
	}
	if instance.IsOpen() {
		t.Error("outside click should close the open menu")
	}
	if instance.SelectedIndex() != dropdown.NoSelection {
		t.Error("outside click must not commit the focused option")
	}
}

func TestWheelScrollsOpenMenu(t *testing.T) {
	definition := &Definition{Title: "t", Dropdowns: []DropdownDef{{
		ID: "long", Placeholder: "Pick", MaxVisible: 3,
		Options: []OptionDef{
			{Label: "1", Value: "1"}, {Label: "2", Value: "2"},
			{Label: "3", Value: "3"}, {Label: "4", Value: "4"},
			{Label: "5", Value: "5"},
		},
	}}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	model, _ := NewPage(definition, logger).Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	page := model.(Page)

	page, _ = update(t, page, leftClick(leftMargin+1, triggerY(0)))
	instance := page.Registry().ByID("long")
	if !instance.IsOpen() {
		t.Fatal("trigger click should open the menu")
	}

	wheel := tea.MouseMsg{
		X: leftMargin + 1, Y: triggerY(0) + 1,
		Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown,
	}
	page, _ = update(t, page, wheel)
	if instance.ScrollOffset() != 1 {
		t.Errorf("wheel down should scroll the window, offset = %d", instance.ScrollOffset())
	}

	// Wheel events outside the widget do nothing.
	wheel.X, wheel.Y = 60, 0
	_, _ = update(t, page, wheel)
	if instance.ScrollOffset() != 1 {
		t.Error("wheel outside the widget must not scroll")
	}
}

func TestDestroyedInstanceIgnoresInput(t *testing.T) {
	page := testPage()
	page.Destroy("a")

	if page.Registry().ByID("a") != nil {
		t.Error("destroyed instances leave the registry")
	}
	if page.focusedDropdown().ID() != "b" {
		t.Error("focus should move off a destroyed instance")
	}

	// Clicking where the destroyed trigger was does nothing.
	page, cmd := update(t, page, leftClick(leftMargin+1, triggerY(0)))
	if cmd != nil {
		t.Error("clicks on a destroyed instance must not emit")
	}
	if page.Registry().OpenInstance() != nil {
		t.Error("destroyed instances must not open")
	}

	// Tab traversal skips the destroyed slot entirely.
	page, _ = update(t, page, press(tea.KeyTab))
	page, _ = update(t, page, press(tea.KeyTab))
	if page.focusedDropdown().ID() != "b" {
		t.Errorf("traversal should cycle b and c only, got %q", page.focusedDropdown().ID())
	}

	// The destroyed widget disappears from the view.
	if strings.Contains(page.View(), "Alpha") {
		t.Error("destroyed widgets should not render")
	}
}

func TestDestroyUnknownIDIsIgnored(t *testing.T) {
	page := testPage()
	page.Destroy("missing")
	if page.Registry().Len() != 3 {
		t.Error("destroying an unknown id must not touch the registry")
	}
}

func TestViewSplicesOpenMenu(t *testing.T) {
	page := testPage()

	page, _ = update(t, page, press(tea.KeyEnter))
	view := page.View()
	if !strings.Contains(view, "A1") || !strings.Contains(view, "A2") {
		t.Error("open menu rows should appear in the view")
	}
	if got := len(strings.Split(view, "\n")); got != 24 {
		t.Errorf("overlay must not change the view height, got %d rows", got)
	}
}
