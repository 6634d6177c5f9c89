// Copyright (c) 2025 Neomantra Corp

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

//////////////////////////////////////////////////////////////////////////////

func maxInt[I int | uint | int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64](a, b I) I {
	if a > b {
		return a
	}
	return b
}

//////////////////////////////////////////////////////////////////////////////

// teaCmdize converts a given value into a tea.Cmd that emits it as a message.
func teaCmdize[T any](t T) tea.Cmd {
	return func() tea.Msg {
		return t
	}
}
