package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/duopane/internal/state"
)

func drain(t *testing.T, ch chan statepkg.Action) statepkg.Action {
	t.Helper()
	select {
	case action := <-ch:
		return action
	default:
		t.Fatal("expected an action")
		return nil
	}
}

func TestArrowKeysProduceNavigation(t *testing.T) {
	ch := make(chan statepkg.Action, 4)
	ih := NewInputHandler(ch)
	ih.SetState(statepkg.NewAppState("/", 80, 24))

	if !ih.ProcessEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)) {
		t.Fatal("Up must not quit")
	}
	if _, ok := drain(t, ch).(statepkg.NavigateUpAction); !ok {
		t.Error("expected NavigateUpAction")
	}

	if !ih.ProcessEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone)) {
		t.Fatal("Down must not quit")
	}
	if _, ok := drain(t, ch).(statepkg.NavigateDownAction); !ok {
		t.Error("expected NavigateDownAction")
	}

	if !ih.ProcessEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)) {
		t.Fatal("Enter must not quit")
	}
	if _, ok := drain(t, ch).(statepkg.EnterAction); !ok {
		t.Error("expected EnterAction")
	}
}

func TestQuitKeysAtTopLevel(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	} {
		ch := make(chan statepkg.Action, 4)
		ih := NewInputHandler(ch)
		ih.SetState(statepkg.NewAppState("/", 80, 24))

		if ih.ProcessEvent(ev) {
			t.Errorf("%v at top level must quit", ev.Key())
		}
		if _, ok := drain(t, ch).(statepkg.QuitAction); !ok {
			t.Errorf("%v should produce QuitAction", ev.Key())
		}
	}
}

func TestEscapeClosesViewerInstead(t *testing.T) {
	ch := make(chan statepkg.Action, 4)
	ih := NewInputHandler(ch)
	s := statepkg.NewAppState("/", 80, 24)
	s.Viewer = &statepkg.ViewerState{Path: "/tmp/x"}
	ih.SetState(s)

	if !ih.ProcessEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("Escape with viewer open must not quit")
	}
	if _, ok := drain(t, ch).(statepkg.CloseViewerAction); !ok {
		t.Error("expected CloseViewerAction")
	}

	if !ih.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q with viewer open must not quit")
	}
	if _, ok := drain(t, ch).(statepkg.CloseViewerAction); !ok {
		t.Error("expected CloseViewerAction for q")
	}
}

func TestResizeEvent(t *testing.T) {
	ch := make(chan statepkg.Action, 4)
	ih := NewInputHandler(ch)

	if !ih.ProcessEvent(tcell.NewEventResize(100, 40)) {
		t.Fatal("resize must not quit")
	}
	resize, ok := drain(t, ch).(statepkg.ResizeAction)
	if !ok {
		t.Fatal("expected ResizeAction")
	}
	if resize.Width != 100 || resize.Height != 40 {
		t.Errorf("got %dx%d", resize.Width, resize.Height)
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	ch := make(chan statepkg.Action, 4)
	ih := NewInputHandler(ch)

	if !ih.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)) {
		t.Fatal("unknown rune must not quit")
	}
	select {
	case action := <-ch:
		t.Errorf("unknown key produced %T", action)
	default:
	}
}
