package wavemenu

import (
	"errors"
	"testing"
	"time"
)

func newTestHost() (*Host, *manualClock) {
	clock := &manualClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	h := NewHost(DefaultMenuConfig(), clock.Now)
	h.Layout(400, 300)
	return h, clock
}

func TestHostLayoutResizesSurface(t *testing.T) {
	h, _ := newTestHost()
	if w, ht := h.Surface().Size(); w != 400 || ht != 300 {
		t.Errorf("surface = %dx%d, want 400x300", w, ht)
	}
	sw, sh := h.Layout(640, 480)
	if sw != 640 || sh != 480 {
		t.Errorf("Layout = %dx%d, want 640x480", sw, sh)
	}
	if w, ht := h.Surface().Size(); w != 640 || ht != 480 {
		t.Errorf("surface = %dx%d, want 640x480", w, ht)
	}
}

func TestHostOpenRunsToCompletion(t *testing.T) {
	h, clock := newTestHost()
	if err := h.OpenMenu(); err != nil {
		t.Fatalf("OpenMenu: %v", err)
	}
	if !h.IsOpen() || !h.Animator().Active() {
		t.Fatal("menu and animator should be active after OpenMenu")
	}
	if h.Frames().Pending() != 1 {
		t.Fatalf("pending = %d, want 1", h.Frames().Pending())
	}

	if err := h.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if h.Animator().Phase() != PhaseStart {
		t.Errorf("phase = %v, want start", h.Animator().Phase())
	}

	clock.Advance(500)
	_ = h.Update()
	if h.Animator().Phase() != PhaseDebounce {
		t.Errorf("phase = %v, want debounce", h.Animator().Phase())
	}

	clock.Advance(400)
	_ = h.Update()
	if h.Animator().Phase() != PhaseComplete {
		t.Errorf("phase = %v, want complete", h.Animator().Phase())
	}
	if h.Frames().Pending() != 0 {
		t.Errorf("pending after complete = %d, want 0", h.Frames().Pending())
	}
}

func TestHostOpenTwiceKeepsRun(t *testing.T) {
	h, clock := newTestHost()
	_ = h.OpenMenu()
	_ = h.Update()
	clock.Advance(300)
	_ = h.OpenMenu()
	_ = h.Update()
	if h.Animator().Phase() != PhaseStart {
		t.Errorf("phase = %v, want start (second open should not restart)", h.Animator().Phase())
	}
	if h.Frames().Pending() != 1 {
		t.Errorf("pending = %d, want 1", h.Frames().Pending())
	}
}

func TestHostToggle(t *testing.T) {
	h, _ := newTestHost()
	if err := h.Toggle(); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !h.IsOpen() {
		t.Fatal("first toggle should open")
	}
	if err := h.Toggle(); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if h.IsOpen() || h.Animator().Active() {
		t.Error("second toggle should close and deactivate")
	}
	// The frame queued by the open is stale now and paints nothing.
	_ = h.Update()
	if h.Frames().Pending() != 0 {
		t.Errorf("pending = %d, want 0", h.Frames().Pending())
	}
}

func TestHostOpenBadColor(t *testing.T) {
	menu := DefaultMenuConfig()
	menu.Animation.FillColor = "nope"
	h := NewHost(menu, nil)
	err := h.OpenMenu()
	if err == nil {
		t.Fatal("expected error")
	}
	if h.IsOpen() {
		t.Error("menu should stay closed on error")
	}
	if errors.Is(err, ErrClosed) {
		t.Errorf("unexpected ErrClosed: %v", err)
	}
}

func TestHostContentXSlides(t *testing.T) {
	h, _ := newTestHost()
	margin := h.MenuConfig().ContentMargin
	if h.ContentX() != margin {
		t.Errorf("closed ContentX = %v, want %v", h.ContentX(), margin)
	}
	_ = h.OpenMenu()
	want := margin - slideFraction*h.MenuConfig().Animation.PanelWidth
	if h.ContentX() != want {
		t.Errorf("opening ContentX = %v, want %v", h.ContentX(), want)
	}
	for i := 0; i < 120; i++ {
		_ = h.Update()
	}
	if h.ContentX() != margin {
		t.Errorf("settled ContentX = %v, want %v", h.ContentX(), margin)
	}
}

func TestHostSetMenuConfigAppliesOnNextOpen(t *testing.T) {
	h, _ := newTestHost()
	_ = h.OpenMenu()

	next := DefaultMenuConfig()
	next.Animation.PanelWidth = 320
	h.SetMenuConfig(next)
	if got := h.Animator().Config().PanelWidth; got != 200 {
		t.Errorf("running PanelWidth = %v, want 200", got)
	}

	h.CloseMenu()
	_ = h.OpenMenu()
	if got := h.Animator().Config().PanelWidth; got != 320 {
		t.Errorf("reopened PanelWidth = %v, want 320", got)
	}
}

func TestHostUpdateFunc(t *testing.T) {
	h, _ := newTestHost()
	calls := 0
	h.SetUpdateFunc(func() error {
		calls++
		return nil
	})
	_ = h.Update()
	_ = h.Update()
	if calls != 2 {
		t.Errorf("update func calls = %d, want 2", calls)
	}

	boom := errors.New("boom")
	h.SetUpdateFunc(func() error { return boom })
	if err := h.Update(); !errors.Is(err, boom) {
		t.Errorf("Update = %v, want boom", err)
	}
}

func TestHostDisposeReleasesResize(t *testing.T) {
	h, _ := newTestHost()
	if h.resize.Len() != 1 {
		t.Fatalf("resize handlers = %d, want 1", h.resize.Len())
	}
	_ = h.OpenMenu()
	h.Dispose()
	if h.resize.Len() != 0 {
		t.Errorf("resize handlers after Dispose = %d, want 0", h.resize.Len())
	}
	if h.IsOpen() {
		t.Error("menu should be closed after Dispose")
	}
	if err := h.OpenMenu(); !errors.Is(err, ErrClosed) {
		t.Errorf("OpenMenu after Dispose = %v, want ErrClosed", err)
	}
}
