package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"covalent/internal/interact"
)

// handleCursorMove moves the keyboard pointer and reports the move to the
// controller so drags follow it.
func (m *model) handleCursorMove(key string, speed int) tea.Model {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
	m.keyboardActive = true
	m.dispatch(m.pointerEvent(interact.Move, interact.Primary))
	return m
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

// togglePress stands in for holding the primary button: the first press
// grabs at the cursor, the next one lets go there.
func (m *model) togglePress() {
	m.keyboardActive = true
	if m.keyHeld {
		m.keyHeld = false
		m.dispatch(m.pointerEvent(interact.Release, interact.Primary))
		return
	}
	m.dispatch(m.pointerEvent(interact.Press, interact.Primary))
	m.keyHeld = m.ctl.State() != interact.Idle
}

func (m *model) removeAtCursor() {
	m.keyboardActive = true
	m.dispatch(m.pointerEvent(interact.Press, interact.Secondary))
}

func (m *model) ensureCursorInBounds() {
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if m.width > 0 && m.cursorX >= m.width {
		m.cursorX = m.width - 1
	}
	// Leave room for status line
	maxY := m.height - 1 - statusLines
	if maxY < 0 {
		maxY = 0
	}
	if m.cursorY > maxY {
		m.cursorY = maxY
	}
}
