package app

import (
	"testing"

	"github.com/go-loft/loft/pkg/core"
	"github.com/go-loft/loft/pkg/display"
	"github.com/go-loft/loft/pkg/errors"
	"github.com/go-loft/loft/pkg/geometry"
	"github.com/go-loft/loft/pkg/theme"
)

// countingRoot records the update/draw cycles it receives.
type countingRoot struct {
	core.WidgetBase
	updates   int
	draws     int
	panicking bool
}

func (r *countingRoot) Bounds() geometry.Rect { return geometry.Rect{} }

func (r *countingRoot) Update(ctx core.UpdateContext) {
	r.updates++
	if r.panicking {
		panic("widget update failed")
	}
}

func (r *countingRoot) Draw(d display.Display, ctx core.GraphicsContext) { r.draws++ }

func (r *countingRoot) Children() []core.WidgetChildren { return nil }

func newCountingApp(t *testing.T, warmup int) (*App, *countingRoot) {
	t.Helper()
	root := &countingRoot{WidgetBase: core.NewWidgetBase()}
	a, err := New(theme.DefaultTheme(), display.NewListDisplay(),
		func(thm theme.Theme, uctx core.UpdateContext, gctx core.GraphicsContext) core.WidgetChildren {
			return root
		}, Options{Warmup: warmup})
	if err != nil {
		t.Fatalf("creating app: %v", err)
	}
	return a, root
}

func TestApp_WarmupTicks(t *testing.T) {
	_, root := newCountingApp(t, 2)
	if root.updates != 2 || root.draws != 2 {
		t.Errorf("warmup cycles: got %d updates, %d draws", root.updates, root.draws)
	}
}

func TestApp_TickOrdersUpdateBeforeDraw(t *testing.T) {
	a, root := newCountingApp(t, 0)
	a.Tick()
	if root.updates != 1 || root.draws != 1 {
		t.Errorf("got %d updates, %d draws", root.updates, root.draws)
	}
}

func TestApp_TickHonorsRootVisibility(t *testing.T) {
	a, root := newCountingApp(t, 0)

	root.SetVisibility(core.VisibilityStatic)
	a.Tick()
	if root.updates != 0 || root.draws != 1 {
		t.Errorf("static: got %d updates, %d draws", root.updates, root.draws)
	}

	root.SetVisibility(core.VisibilityInvisible)
	a.Tick()
	if root.updates != 1 || root.draws != 1 {
		t.Errorf("invisible: got %d updates, %d draws", root.updates, root.draws)
	}

	root.SetVisibility(core.VisibilityNone)
	a.Tick()
	if root.updates != 1 || root.draws != 1 {
		t.Errorf("none: got %d updates, %d draws", root.updates, root.draws)
	}
}

type panicCapture struct {
	panics []*errors.PanicError
}

func (h *panicCapture) HandleError(err *errors.LoftError) {}
func (h *panicCapture) HandlePanic(err *errors.PanicError) {
	h.panics = append(h.panics, err)
}

func TestApp_TickRecoversPanics(t *testing.T) {
	capture := &panicCapture{}
	errors.SetHandler(capture)
	t.Cleanup(func() { errors.SetHandler(nil) })

	a, root := newCountingApp(t, 0)
	root.panicking = true

	a.Tick()

	if len(capture.panics) != 1 {
		t.Fatalf("expected 1 reported panic, got %d", len(capture.panics))
	}
	if capture.panics[0].Op != "app.Tick" {
		t.Errorf("panic op: got %q", capture.panics[0].Op)
	}
}

func TestApp_PointerPressEmitsClearFocusFirst(t *testing.T) {
	a, _ := newCountingApp(t, 0)
	l := a.UpdateContext().WindowEvents().Listen()

	a.PointerMoved(geometry.Offset{X: 3, Y: 4}, core.KeyModifiers{})
	a.PointerPressed(core.MouseButtonLeft, core.KeyModifiers{})

	evs := l.Drain()
	if len(evs) != 3 {
		t.Fatalf("expected 3 events, got %d", len(evs))
	}
	if _, ok := evs[0].(core.MouseMove); !ok {
		t.Errorf("event 0: got %T", evs[0])
	}
	if _, ok := evs[1].(core.ClearFocus); !ok {
		t.Errorf("expected ClearFocus before the press, got %T", evs[1])
	}
	press, ok := evs[2].(core.MousePress)
	if !ok {
		t.Fatalf("event 2: got %T", evs[2])
	}
	data := press.Event.Get()
	if data.Pos != (geometry.Offset{X: 3, Y: 4}) {
		t.Errorf("press position: got %+v", data.Pos)
	}
	if data.Button != core.MouseButtonLeft {
		t.Errorf("press button: got %v", data.Button)
	}
}

func TestApp_ReleaseAndBlurEmitClearFocus(t *testing.T) {
	a, _ := newCountingApp(t, 0)
	l := a.UpdateContext().WindowEvents().Listen()

	a.PointerReleased(core.MouseButtonLeft, core.KeyModifiers{})
	a.WindowBlurred()

	evs := l.Drain()
	if len(evs) != 3 {
		t.Fatalf("expected 3 events, got %d", len(evs))
	}
	if _, ok := evs[0].(core.ClearFocus); !ok {
		t.Errorf("expected ClearFocus before the release, got %T", evs[0])
	}
	if _, ok := evs[1].(core.MouseRelease); !ok {
		t.Errorf("event 1: got %T", evs[1])
	}
	if _, ok := evs[2].(core.ClearFocus); !ok {
		t.Errorf("window blur should broadcast ClearFocus, got %T", evs[2])
	}
}

func TestApp_TextAndKeys(t *testing.T) {
	a, _ := newCountingApp(t, 0)
	l := a.UpdateContext().WindowEvents().Listen()

	a.KeyPressed(core.KeySpace, core.KeyModifiers{})
	a.KeyReleased(core.KeySpace, core.KeyModifiers{})
	a.TextEntered("hi")

	evs := l.Drain()
	if len(evs) != 3 {
		t.Fatalf("expected 3 events, got %d", len(evs))
	}
	if kp, ok := evs[0].(core.KeyPress); !ok || kp.Event.Get().Key != core.KeySpace {
		t.Errorf("event 0: got %T", evs[0])
	}
	if _, ok := evs[1].(core.KeyRelease); !ok {
		t.Errorf("event 1: got %T", evs[1])
	}
	if ti, ok := evs[2].(core.TextInput); !ok || ti.Event.Get() != "hi" {
		t.Errorf("event 2: got %T", evs[2])
	}
}
