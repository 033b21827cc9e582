//go:build windows

package windriver

import (
	"fmt"
	"image"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/jmigpin/flashwin/driver/native"
	"github.com/jmigpin/flashwin/util/imageutil"
	"github.com/jmigpin/flashwin/util/uiutil/event"
)

// Function preceded by "ost" run in the "operating-system-thread".
type Window struct {
	className   *uint16
	windowTitle *uint16
	hwnd        windows.Handle
	instance    windows.Handle

	icons struct {
		big, small windows.Handle
	}

	events    chan interface{}
	evLoopEnd chan struct{}

	closing   atomic.Bool
	closeOnce sync.Once

	postEv struct {
		sync.Mutex
		id int
		m  map[int]interface{}
	}
}

func NewWindow(title string, width, height int) (*Window, error) {
	win := &Window{
		events:    make(chan interface{}, 16),
		evLoopEnd: make(chan struct{}),
	}
	win.postEv.m = map[int]interface{}{}

	if err := win.initAndSetupLoop(title, width, height); err != nil {
		return nil, err
	}

	return win, nil
}

//----------

func (win *Window) initAndSetupLoop(title string, width, height int) error {
	initErr := make(chan error)

	go func() {
		// ensure OS thread
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if err := win.ostInitialize(title, width, height); err != nil {
			initErr <- err
			return
		}
		initErr <- nil

		// run event loop in OS thread
		win.ostMsgLoop() // blocks
	}()

	return <-initErr
}

//----------

func (win *Window) ostInitialize(title string, width, height int) error {
	// handle containing the window procedure for the class.
	instance, err := _GetModuleHandleW(nil)
	if err != nil {
		return fmt.Errorf("getmodulehandle: %w", err)
	}
	win.instance = instance

	cursorH, err := _LoadCursorW(0, _IDC_ARROW)
	if err != nil {
		return fmt.Errorf("loadcursor: %w", err)
	}

	// window class registration
	win.className = UTF16PtrFromString("flashwinClass")
	wce := _WndClassExW{
		LpszClassName: win.className,
		LpfnWndProc:   windows.NewCallback(win.wndProcCallback),
		HInstance:     win.instance,
		HCursor:       cursorH,
		HbrBackground: _COLOR_WINDOW + 1,
		Style:         _CS_HREDRAW | _CS_VREDRAW,
	}
	wce.CbSize = uint32(unsafe.Sizeof(wce))
	if _, err := _RegisterClassExW(&wce); err != nil {
		return fmt.Errorf("registerclassex: %w", err)
	}

	// create window
	win.windowTitle = UTF16PtrFromString(title)
	hwnd, err := _CreateWindowExW(
		0,
		win.className,
		win.windowTitle,
		_WS_OVERLAPPEDWINDOW,
		_CW_USEDEFAULT, _CW_USEDEFAULT, // x,y
		int32(width), int32(height),
		0, 0, win.instance, 0,
	)
	if err != nil {
		return fmt.Errorf("createwindow: %w", err)
	}
	win.hwnd = hwnd

	_ = _ShowWindow(win.hwnd, _SW_SHOWDEFAULT)
	_ = _UpdateWindow(win.hwnd)

	return nil
}

//----------

func (win *Window) NextEvent() interface{} {
	select {
	case ev := <-win.events:
		return ev
	case <-win.evLoopEnd:
		return &event.WindowClose{}
	}
}

func (win *Window) Post(ev interface{}) {
	select {
	case win.events <- ev:
	case <-win.evLoopEnd:
	}
}

//----------

func (win *Window) postAppMsg(app *appMsg) error {
	win.postEv.Lock()
	defer win.postEv.Unlock()
	id := win.postEv.id
	win.postEv.m[id] = app
	if !_PostMessageW(win.hwnd, uint32(_WM_APP), uintptr(id), 0) {
		delete(win.postEv.m, id)
		return fmt.Errorf("postmessage: failed to post")
	}
	win.postEv.id++
	return nil
}

func (win *Window) getPostEventData(id int) (interface{}, error) {
	win.postEv.Lock()
	defer win.postEv.Unlock()
	ev, ok := win.postEv.m[id]
	if !ok {
		return nil, fmt.Errorf("postevent map: id not found: %v", id)
	}
	delete(win.postEv.m, id)
	return ev, nil
}

// Posts to the OS thread and waits for the reply.
func (win *Window) runAppMsg(ev interface{}) interface{} {
	app := newAppMsg(ev)
	if err := win.postAppMsg(app); err != nil {
		return err
	}
	select {
	case res := <-app.Reply:
		return res
	case <-win.evLoopEnd:
		return native.ErrWindowClosed
	}
}

//----------

// Called from OS thread.
func (win *Window) ostMsgLoop() {
	defer func() {
		close(win.evLoopEnd)
	}()

	msg := _Msg{} // ensure it is instantiated during the loop
	for {
		// hwnd 0: the WM_QUIT message is not bound to the window
		res, err := _GetMessageW(&msg, 0, 0, 0) // wait for next msg
		if err != nil {
			win.events <- fmt.Errorf("getmessage: %w", err)
			break
		}
		quit := res == 0
		if quit {
			break
		}

		// not used: virtual keys are translated ondemand (keydown/keyup)
		//_ = _TranslateMessage(&msg)

		// dispatch to hwnd.class.LpfnWndProc (runs win.wndProcCallback)
		_ = _DispatchMessageW(&msg)
	}
}

//----------

// Called by dispatchMessage and via WndClassExW.
func (win *Window) wndProcCallback(hwnd windows.Handle, msg uint32, wParam, lParam uintptr) uintptr {
	m := &_Msg{
		HWnd:   hwnd,
		Msg:    msg,
		WParam: wParam,
		LParam: lParam,
	}
	return win.handleMsg(m)
}

//----------

func (win *Window) handleMsg(msg *_Msg) uintptr {
	defh := func() uintptr {
		return _DefWindowProcW(msg.HWnd, msg.Msg, msg.WParam, msg.LParam)
	}

	switch _wm(msg.Msg) {
	case _WM_CREATE:
		createW := (*_CreateStructW)(unsafe.Pointer(msg.LParam))
		w, h := int(createW.CX), int(createW.CY)
		r := image.Rect(0, 0, w, h)
		win.events <- &event.WindowResize{Rect: r}
	case _WM_SIZE:
		w, h := unpackLowHigh(uint32(msg.LParam))
		r := image.Rect(0, 0, w, h)
		win.events <- &event.WindowResize{Rect: r}

	case _WM_CLOSE: // window close button
		win.events <- &event.WindowClose{}
		// the default proc would destroy the window; that is done by Close()
		return 0
	case _WM_DESTROY:
		win.ostDestroyIcons()
		_PostQuitMessage(0)

	case _WM_KEYDOWN:
		win.events <- win.keyUpDown(msg, false)
	case _WM_KEYUP:
		win.events <- win.keyUpDown(msg, true)

	case _WM_LBUTTONDOWN:
		win.events <- win.mouseButton(msg, event.ButtonLeft, false)
	case _WM_LBUTTONUP:
		win.events <- win.mouseButton(msg, event.ButtonLeft, true)
	case _WM_RBUTTONDOWN:
		win.events <- win.mouseButton(msg, event.ButtonRight, false)
	case _WM_RBUTTONUP:
		win.events <- win.mouseButton(msg, event.ButtonRight, true)
	case _WM_MBUTTONDOWN:
		win.events <- win.mouseButton(msg, event.ButtonMiddle, false)
	case _WM_MBUTTONUP:
		win.events <- win.mouseButton(msg, event.ButtonMiddle, true)

	case _WM_APP:
		id := int(msg.WParam)
		data, err := win.getPostEventData(id)
		if err != nil {
			win.events <- err
			break
		}
		app := data.(*appMsg)
		app.Reply <- win.handleAppEvent(msg, app)
		return 0
	}

	return defh()
}

//----------

func (win *Window) handleAppEvent(msg *_Msg, app *appMsg) interface{} {
	switch t := app.Event.(type) {
	case *appClose:
		if !_DestroyWindow(msg.HWnd) {
			return fmt.Errorf("destroywindow: false")
		}
		return nil
	case *appSetWindowName:
		if !_SetWindowTextW(msg.HWnd, UTF16PtrFromString(t.s)) {
			return fmt.Errorf("setwindowtext: false")
		}
		return nil
	case *appSetIcon:
		return win.ostSetIcon(t.icon)
	default:
		return fmt.Errorf("unexpected app event type: %T", app.Event)
	}
}

//----------

func (win *Window) keyUpDown(msg *_Msg, up bool) interface{} {
	vkey := uint32(msg.WParam)
	kstate := [256]byte{}
	_ = _GetKeyboardState(&kstate)
	ru, _ := vkeyRune(vkey, &kstate)
	ks := translateVKeyToEventKeySym(vkey, ru)
	km := translateKStateToEventKeyModifiers(&kstate)

	// key messages carry no pointer position
	p := image.Point{}
	if up {
		return &event.KeyUp{Point: p, KeySym: ks, Mods: km, Rune: ru}
	}
	return &event.KeyDown{Point: p, KeySym: ks, Mods: km, Rune: ru}
}

func (win *Window) mouseButton(msg *_Msg, b event.MouseButton, up bool) interface{} {
	p := paramToPoint(uint32(msg.LParam)) // window point
	km := translateVKeyToEventKeyModifiers(uint32(msg.WParam))
	if up {
		return &event.MouseUp{Point: p, Button: b, Mods: km}
	}
	return &event.MouseDown{Point: p, Button: b, Mods: km}
}

//----------

func (win *Window) SetWindowName(str string) {
	if err := appCheckError(win.runAppMsg(&appSetWindowName{str})); err != nil {
		win.Post(err)
	}
}

func (win *Window) SetIcon(icon *imageutil.Icon) error {
	return appCheckError(win.runAppMsg(&appSetIcon{icon}))
}

//----------

func (win *Window) NativeHandle() (native.Handle, error) {
	if win.closing.Load() {
		return nil, native.ErrWindowClosed
	}
	select {
	case <-win.evLoopEnd:
		return nil, native.ErrWindowClosed
	default:
		return &native.Win32{HWND: uintptr(win.hwnd)}, nil
	}
}

//----------

// Called from app.
func (win *Window) Close() error {
	var err error
	win.closeOnce.Do(func() {
		win.closing.Store(true)
		err = appCheckError(win.runAppMsg(&appClose{}))
		if err == native.ErrWindowClosed {
			err = nil
		}
		if err == nil {
			<-win.evLoopEnd
		}
	})
	return err
}

//----------

// Messages sent to the ost loop (operating system thread).

type appMsg struct {
	Event interface{}
	Reply chan interface{}
}

func newAppMsg(ev interface{}) *appMsg {
	return &appMsg{Event: ev, Reply: make(chan interface{}, 1)}
}

func appCheckError(res interface{}) error {
	switch t := res.(type) {
	case nil:
		return nil
	case error:
		return t
	default:
		return fmt.Errorf("unexpected app reply: %v", res)
	}
}

type appClose struct{}
type appSetWindowName struct{ s string }
type appSetIcon struct{ icon *imageutil.Icon }

//----------

func paramToPoint(param uint32) image.Point {
	x, y := unpackLowHigh(param)
	return image.Point{X: int(int16(x)), Y: int(int16(y))}
}

//----------

func vkeyRune(vkey uint32, kstate *[256]byte) (rune, bool) {
	scanCode := _MapVirtualKeyW(vkey, _MAPVK_VK_TO_VSC)
	wFlags := uint32(0)
	var res uint32
	resPtr := (*uint16)(unsafe.Pointer(&res))
	v := _ToUnicode(vkey, scanCode, kstate, resPtr, 2, wFlags)
	isDeadKey := v == -1
	if v <= 0 {
		return 0, isDeadKey
	}
	return rune(uint16(res)), isDeadKey
}
