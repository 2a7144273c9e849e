package app

import (
	"os"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/duopane/internal/state"
	inputui "github.com/kk-code-lab/duopane/internal/ui/input"
	renderui "github.com/kk-code-lab/duopane/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	shouldQuit bool
}

// Close cleans up resources.
func (app *Application) Close() error {
	if app.state.Viewer != nil {
		app.state.Viewer.Source.Close()
		app.state.Viewer = nil
	}
	app.screen.Fini()
	return nil
}

// State exposes the application state for tests.
func (app *Application) State() *statepkg.AppState {
	return app.state
}

// GetCwd returns current working directory.
func GetCwd() (string, error) {
	return os.Getwd()
}
