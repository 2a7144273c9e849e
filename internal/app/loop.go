package app

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/duopane/internal/state"
	inputui "github.com/kk-code-lab/duopane/internal/ui/input"
	renderui "github.com/kk-code-lab/duopane/internal/ui/render"
)

// NewApplication initializes the terminal screen and loads the starting
// directory. Failures here are the only fatal ones; callers exit non-zero.
func NewApplication() (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	cwd, err := GetCwd()
	if err != nil {
		screen.Fini()
		return nil, err
	}

	return newApplication(screen, cwd), nil
}

// newApplication wires state, reducer, renderer, and input over an
// initialized screen.
func newApplication(screen tcell.Screen, cwd string) *Application {
	w, h := screen.Size()
	state := statepkg.NewAppState(cwd, w, h)
	statepkg.LoadDirectory(state, cwd)

	actionCh := make(chan statepkg.Action, 10)
	inputHandler := inputui.NewInputHandler(actionCh)
	inputHandler.SetState(state)

	return &Application{
		screen:   screen,
		state:    state,
		reducer:  statepkg.NewStateReducer(),
		renderer: renderui.NewRenderer(screen),
		input:    inputHandler,
		actionCh: actionCh,
	}
}

// Run blocks on terminal input, handling each event to completion and
// redrawing only when state marked itself dirty.
func (app *Application) Run() {
	app.renderer.Render(app.state)
	app.state.ClearDirty()

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	for !app.shouldQuit {
		select {
		case ev := <-eventChan:
			app.handleEvent(ev)
		case action := <-app.actionCh:
			app.handleAction(action)
		}
		app.processActions()

		if app.state.PendingBeep {
			_ = app.screen.Beep()
			app.state.PendingBeep = false
		}
		if app.state.Dirty() {
			app.renderer.Render(app.state)
			app.state.ClearDirty()
		}
	}
}

func (app *Application) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		// A false return means quit; the QuitAction is already queued and
		// gets drained right after.
		app.input.ProcessEvent(ev)
	}
}

// processActions drains queued actions so one keypress never renders twice.
func (app *Application) processActions() {
	for {
		select {
		case action := <-app.actionCh:
			app.handleAction(action)
		default:
			return
		}
	}
}

func (app *Application) handleAction(action statepkg.Action) {
	if action == nil {
		return
	}

	if _, ok := action.(statepkg.QuitAction); ok {
		app.shouldQuit = true
		return
	}

	if err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.LastError = err
		app.state.MarkDirty()
	}
}
