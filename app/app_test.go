package app

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmigpin/flashwin/attention"
	"github.com/jmigpin/flashwin/config"
	"github.com/jmigpin/flashwin/driver/native"
	"github.com/jmigpin/flashwin/host"
	"github.com/jmigpin/flashwin/util/logutil"
	"github.com/jmigpin/flashwin/util/uiutil/event"
)

func TestClickInsideRect(t *testing.T) {
	a, fl := newTestApp(t, config.TriggerClick)
	a.OnMouse(&event.MouseDown{Point: image.Pt(180, 150), Button: event.ButtonLeft})
	if len(fl.reqs) != 1 {
		t.Fatalf("flashes: %v", len(fl.reqs))
	}
}

func TestClickOutsideRect(t *testing.T) {
	a, fl := newTestApp(t, config.TriggerClick)
	a.OnMouse(&event.MouseDown{Point: image.Pt(10, 10), Button: event.ButtonLeft})
	a.OnMouse(&event.MouseDown{Point: image.Pt(180, 150), Button: event.ButtonRight})
	if len(fl.reqs) != 0 {
		t.Fatalf("flashes: %v", len(fl.reqs))
	}
}

func TestKeyPressAndRelease(t *testing.T) {
	a, fl := newTestApp(t, config.TriggerKey)
	a.OnKey(&event.KeyDown{KeySym: event.KSymSpace, Rune: ' '})
	if len(fl.reqs) != 1 {
		t.Fatalf("after press: %v", len(fl.reqs))
	}
	a.OnKey(&event.KeyUp{KeySym: event.KSymSpace, Rune: ' '})
	if len(fl.reqs) != 1 {
		t.Fatalf("after release: %v", len(fl.reqs))
	}
	a.OnKey(&event.KeyDown{KeySym: event.KSymA, Rune: 'a'})
	if len(fl.reqs) != 1 {
		t.Fatalf("other key: %v", len(fl.reqs))
	}
}

func TestResumeTrigger(t *testing.T) {
	a, fl := newTestApp(t, config.TriggerResume)
	a.OnLifecycle(&event.Resumed{})
	a.OnLifecycle(&event.Suspended{})
	a.OnLifecycle(&event.Resumed{})
	if len(fl.reqs) != 2 {
		t.Fatalf("flashes: %v", len(fl.reqs))
	}
}

func TestRequestFromConfig(t *testing.T) {
	cfg := testConfig(config.TriggerKey)
	cfg.FlashStyle = "tray"
	cfg.FlashCount = 4
	cfg.FlashTimeoutMs = 300
	fl := &fakeFlasher{}
	a, err := New(cfg, fl, logutil.Discard())
	if err != nil {
		t.Fatal(err)
	}
	a.Attach(&fakeProvider{})
	a.OnKey(&event.KeyDown{KeySym: event.KSymSpace})
	if len(fl.reqs) != 1 {
		t.Fatal(len(fl.reqs))
	}
	req := fl.reqs[0]
	if req.Style != attention.StyleTray || req.Count != 4 || req.Timeout != 300*time.Millisecond {
		t.Fatal(req)
	}
}

func TestCloseExitsAndStopsFlashing(t *testing.T) {
	a, fl := newTestApp(t, config.TriggerClick)
	if ctl := a.OnWindow(&event.WindowClose{}); ctl != host.Exit {
		t.Fatal(ctl)
	}
	a.OnMouse(&event.MouseDown{Point: image.Pt(180, 150), Button: event.ButtonLeft})
	if len(fl.reqs) != 0 {
		t.Fatal("flash after close")
	}
}

func TestFlashErrorContinues(t *testing.T) {
	a, fl := newTestApp(t, config.TriggerClick)
	fl.err = attention.ErrInvalidHandle
	md := &event.MouseDown{Point: image.Pt(180, 150), Button: event.ButtonLeft}
	if ctl := a.OnMouse(md); ctl != host.Continue {
		t.Fatal(ctl)
	}
	if len(fl.reqs) != 1 || a.Flashes() != 0 {
		t.Fatal(len(fl.reqs), a.Flashes())
	}
}

func TestFlashWithoutWindow(t *testing.T) {
	fl := &fakeFlasher{}
	a, err := New(testConfig(config.TriggerResume), fl, logutil.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if ctl := a.OnLifecycle(&event.Resumed{}); ctl != host.Continue {
		t.Fatal(ctl)
	}
	if len(fl.reqs) != 0 {
		t.Fatal("flash without a window")
	}
}

func TestUnknownTriggerKey(t *testing.T) {
	cfg := testConfig(config.TriggerKey)
	cfg.TriggerKey = "nosuchkey"
	if _, err := New(cfg, &fakeFlasher{}, logutil.Discard()); err == nil {
		t.Fatal("expected error")
	}
}

// Full loop: host + app with a scripted window.
func TestHostLoopNoFlashAfterClose(t *testing.T) {
	win := &scriptWindow{evs: []interface{}{
		&event.MouseDown{Point: image.Pt(180, 150), Button: event.ButtonLeft},
		&event.MouseDown{Point: image.Pt(10, 10), Button: event.ButtonLeft},
		&event.WindowClose{},
		&event.MouseDown{Point: image.Pt(180, 150), Button: event.ButtonLeft},
	}}
	h := host.New(win, logutil.Discard())
	fl := &fakeFlasher{checkHandle: true}
	a, err := New(testConfig(config.TriggerClick), fl, logutil.Discard())
	if err != nil {
		t.Fatal(err)
	}
	a.Attach(h)
	if err := h.Run(a); err != nil {
		t.Fatal(err)
	}
	if len(fl.reqs) != 1 {
		t.Fatalf("flashes: %v", len(fl.reqs))
	}
}

func TestWatchIconPostsReload(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "icon.png")
	if err := os.WriteFile(name, pngBytes(t), 0644); err != nil {
		t.Fatal(err)
	}

	posted := make(chan interface{}, 16)
	fw, err := WatchIcon(name, func(ev interface{}) { posted <- ev }, logutil.Discard())
	if err != nil {
		t.Fatal(err)
	}
	defer fw.Close()

	if err := os.WriteFile(name, pngBytes(t), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case ev := <-posted:
		ir, ok := ev.(*host.IconReload)
		if !ok || ir.Icon.Width != 2 {
			t.Fatalf("%#v", ev)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timeout")
	}
}

//----------

func newTestApp(t *testing.T, trigger string) (*App, *fakeFlasher) {
	t.Helper()
	fl := &fakeFlasher{}
	a, err := New(testConfig(trigger), fl, logutil.Discard())
	if err != nil {
		t.Fatal(err)
	}
	a.Attach(&fakeProvider{})
	return a, fl
}

func testConfig(trigger string) *config.Configuration {
	return &config.Configuration{
		Title:      "test",
		Width:      400,
		Height:     300,
		Trigger:    trigger,
		TriggerKey: "space",
		RectX:      150,
		RectY:      130,
		RectWidth:  100,
		RectHeight: 40,
		FlashStyle: "all",
		LogLevel:   "info",
	}
}

type fakeFlasher struct {
	reqs        []*attention.Request
	err         error
	checkHandle bool
}

func (fl *fakeFlasher) Flash(hp native.Provider, req *attention.Request) error {
	if fl.checkHandle {
		if _, err := hp.NativeHandle(); err != nil {
			return errors.New("flash with invalid handle")
		}
	}
	fl.reqs = append(fl.reqs, req)
	return fl.err
}

type fakeProvider struct{}

func (p *fakeProvider) NativeHandle() (native.Handle, error) {
	return &native.Win32{HWND: 1}, nil
}
