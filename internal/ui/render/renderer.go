package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/duopane/internal/fs"
	statepkg "github.com/kk-code-lab/duopane/internal/state"
	"github.com/mattn/go-runewidth"
)

const (
	browseHint = "Use arrow keys to move, 'q' to quit."
	viewerHint = "Up/Down to scroll, Esc/'q' to close"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	layout := ComputeLayout(w, h)

	r.drawTracePane(state, layout.Trace)
	if state.ViewerActive() {
		r.drawViewer(state, layout.Panel)
	} else {
		r.drawDirectoryPanel(state, layout.Panel)
	}

	r.screen.Show()
}

// drawDirectoryPanel renders the listing box: border, path title, the
// visible slice of entries with the selection reversed, and the key hint.
func (r *Renderer) drawDirectoryPanel(state *statepkg.AppState, rect Rect) {
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	r.drawBorder(rect, style.Foreground(r.theme.BorderFg))
	r.drawText(rect.X+2, rect.Y, rect.W-4, state.CurrentPath, style.Foreground(r.theme.TitleFg))

	if state.ListErr != nil {
		errStyle := style.Foreground(r.theme.ErrorFg)
		r.drawText(rect.X+1, rect.Y+1, rect.W-2, fmt.Sprintf("Read error: %v", state.ListErr), errStyle)
	} else {
		start, end := state.Dir.VisibleRange(len(state.Items))
		for i := start; i < end; i++ {
			rowStyle := style
			if entry, ok := state.Items[i].(fsutil.NamedEntry); ok && entry.Entry.IsDir {
				rowStyle = rowStyle.Foreground(r.theme.DirectoryFg)
			}
			if i == state.Dir.Selected {
				rowStyle = rowStyle.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
			}
			y := rect.Y + 1 + (i - state.Dir.ScrollOffset)
			r.drawText(rect.X+1, y, rect.W-2, fsutil.DisplayName(state.Items[i]), rowStyle)
		}
	}

	r.drawText(rect.X+2, rect.Y+rect.H-1, rect.W-3, browseHint, style.Foreground(r.theme.HintFg))
}

// drawViewer renders the modal file viewer over the panel region. Lines
// are re-read from the source at their recorded offsets every frame.
func (r *Renderer) drawViewer(state *statepkg.AppState, rect Rect) {
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	r.drawBorder(rect, style.Foreground(r.theme.BorderFg))
	r.drawText(rect.X+2, rect.Y, rect.W-4, " "+state.Viewer.Path+" ", style.Foreground(r.theme.TitleFg))

	lines, err := state.Viewer.Source.VisibleLines()
	if err != nil {
		errStyle := style.Foreground(r.theme.ErrorFg)
		r.drawText(rect.X+1, rect.Y+1, rect.W-2, fmt.Sprintf("Read error: %v", err), errStyle)
	} else {
		for i, line := range lines {
			if i >= rect.H-2 {
				break
			}
			r.drawText(rect.X+1, rect.Y+1+i, rect.W-2, line, style)
		}
	}

	r.drawText(rect.X+2, rect.Y+rect.H-1, rect.W-3, viewerHint, style.Foreground(r.theme.HintFg))
}

// drawTracePane renders the event trace on the left half, newest entry at
// the bottom, with the last recorded error pinned to the final row.
func (r *Renderer) drawTracePane(state *statepkg.AppState, rect Rect) {
	if rect.W <= 0 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.TraceFg)
	r.drawText(rect.X, rect.Y, rect.W, "Trace", style.Bold(true))

	rows := rect.H - 1
	errRow := 0
	if state.LastError != nil {
		errRow = 1
	}
	entries := state.Trace.Tail(rows - errRow)
	for i, entry := range entries {
		r.drawText(rect.X, rect.Y+1+i, rect.W, entry, style)
	}
	if state.LastError != nil {
		errStyle := style.Foreground(r.theme.ErrorFg)
		r.drawText(rect.X, rect.Y+rect.H-1, rect.W, state.LastError.Error(), errStyle)
	}
}

// drawBorder draws a box around rect with line-drawing runes.
func (r *Renderer) drawBorder(rect Rect, style tcell.Style) {
	if rect.W < 2 || rect.H < 2 {
		return
	}
	x2 := rect.X + rect.W - 1
	y2 := rect.Y + rect.H - 1

	for x := rect.X + 1; x < x2; x++ {
		r.screen.SetContent(x, rect.Y, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, y2, tcell.RuneHLine, nil, style)
	}
	for y := rect.Y + 1; y < y2; y++ {
		r.screen.SetContent(rect.X, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(x2, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(rect.X, rect.Y, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(x2, rect.Y, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(rect.X, y2, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
}

// drawText writes text at (x, y) truncated to maxWidth display cells.
func (r *Renderer) drawText(x, y, maxWidth int, text string, style tcell.Style) {
	if maxWidth <= 0 {
		return
	}
	text = truncateTextToWidth(text, maxWidth)
	col := x
	for _, ru := range text {
		width := runewidth.RuneWidth(ru)
		if width <= 0 {
			continue
		}
		r.screen.SetContent(col, y, ru, nil, style)
		col += width
	}
}

// truncateTextToWidth cuts text to fit width cells, appending an ellipsis
// when anything was dropped.
func truncateTextToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	ellipsis := "…"
	available := width - runewidth.StringWidth(ellipsis)
	if available < 0 {
		return ""
	}

	var out []rune
	used := 0
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if used+w > available {
			break
		}
		out = append(out, ru)
		used += w
	}
	return string(out) + ellipsis
}
