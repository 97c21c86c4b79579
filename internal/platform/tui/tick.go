// Package tui runs worlds in the terminal with Bubble Tea. It handles key
// bindings, frame pacing, the variant picker and colored screen output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a redraw.
type TickMsg time.Time

// tickCmd returns a command that sends one TickMsg after 1/fps seconds.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
