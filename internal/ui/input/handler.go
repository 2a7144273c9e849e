package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/duopane/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	actionChan chan statepkg.Action
	state      *statepkg.AppState // Reference to current state for mode checking
}

// NewInputHandler creates a new input handler
func NewInputHandler(actionChan chan statepkg.Action) *InputHandler {
	return &InputHandler{
		actionChan: actionChan,
	}
}

// SetState sets the state reference for mode checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// ProcessEvent converts a tcell event into an Action. It returns false
// when the application should quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.actionChan <- statepkg.ResizeAction{Width: w, Height: h}
		return true
	default:
		return true
	}
}

// processKeyEvent handles keyboard input. While the viewer modal is up,
// Escape and 'q' close it instead of quitting; everything else routes to
// the reducer, which knows which pane is active.
func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	viewerActive := ih.state != nil && ih.state.ViewerActive()

	switch ev.Key() {
	case tcell.KeyEscape:
		if viewerActive {
			ih.actionChan <- statepkg.CloseViewerAction{}
			return true
		}
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyCtrlC:
		ih.actionChan <- statepkg.QuitAction{}
		return false

	case tcell.KeyUp:
		ih.actionChan <- statepkg.NavigateUpAction{}
		return true

	case tcell.KeyDown:
		ih.actionChan <- statepkg.NavigateDownAction{}
		return true

	case tcell.KeyEnter:
		ih.actionChan <- statepkg.EnterAction{}
		return true

	case tcell.KeyRune:
		if r := ev.Rune(); r == 'q' || r == 'Q' {
			if viewerActive {
				ih.actionChan <- statepkg.CloseViewerAction{}
				return true
			}
			ih.actionChan <- statepkg.QuitAction{}
			return false
		}
		return true

	default:
		return true
	}
}
