package main

import (
	"image"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/jigsaw"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5f87ff"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8a8a"))
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5f5f"))
)

// summary formats the result of a run for the terminal.
func summary(pieces []jigsaw.Piece, size image.Point, rows, cols int, elapsed time.Duration) string {
	p := message.NewPrinter(language.English)

	area, degenerate := 0, 0
	for _, pc := range pieces {
		area += pc.Area
		if pc.Degenerate {
			degenerate++
		}
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(p.Sprintf("%d pieces", len(pieces))))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("image   ") + p.Sprintf("%dx%d, %dx%d grid", size.X, size.Y, rows, cols) + "\n")
	sb.WriteString(labelStyle.Render("pixels  ") + p.Sprintf("%d of %d claimed", area, size.X*size.Y) + "\n")
	sb.WriteString(labelStyle.Render("time    ") + elapsed.Round(time.Millisecond).String())
	if degenerate > 0 {
		sb.WriteString("\n")
		sb.WriteString(warnStyle.Render(p.Sprintf("%d degenerate pieces: seeds landed on cut lines", degenerate)))
	}
	return sb.String()
}
