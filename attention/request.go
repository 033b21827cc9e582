package attention

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Style int

const (
	StyleAll        Style = iota // caption and taskbar
	StyleTray                    // taskbar only
	StyleContinuous              // flash until stopped
	StyleStop                    // stop a running flash
)

func (s Style) String() string {
	switch s {
	case StyleAll:
		return "all"
	case StyleTray:
		return "tray"
	case StyleContinuous:
		return "continuous"
	case StyleStop:
		return "stop"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return StyleAll, nil
	case "tray":
		return StyleTray, nil
	case "continuous":
		return StyleContinuous, nil
	case "stop":
		return StyleStop, nil
	}
	return 0, fmt.Errorf("unknown flash style: %q", s)
}

//----------

// One flash invocation. Count 0 repeats until the window comes to the
// foreground. Timeout 0 uses the platform default cadence.
type Request struct {
	ID      uuid.UUID
	Style   Style
	Count   uint32
	Timeout time.Duration
}

func NewRequest(style Style, count uint32, timeout time.Duration) *Request {
	return &Request{
		ID:      uuid.New(),
		Style:   style,
		Count:   count,
		Timeout: timeout,
	}
}

func (r *Request) String() string {
	return fmt.Sprintf("%v(style=%v, count=%v, timeout=%v)", r.ID, r.Style, r.Count, r.Timeout)
}

//----------

// FLASHWINFO flags
const (
	flashwStop      = 0
	flashwCaption   = 1
	flashwTray      = 2
	flashwAll       = flashwCaption | flashwTray
	flashwTimer     = 4
	flashwTimerNoFG = 0xC
)

// FLASHWINFO fields.
type win32Flash struct {
	Flags   uint32
	Count   uint32
	Timeout uint32 // milliseconds
}

func (r *Request) win32() win32Flash {
	var f uint32
	switch r.Style {
	case StyleAll:
		f = flashwAll
	case StyleTray:
		f = flashwTray
	case StyleContinuous:
		f = flashwAll | flashwTimer
	case StyleStop:
		f = flashwStop
	}
	if r.Count == 0 && (r.Style == StyleAll || r.Style == StyleTray) {
		f |= flashwTimerNoFG
	}
	return win32Flash{
		Flags:   f,
		Count:   r.Count,
		Timeout: uint32(r.Timeout / time.Millisecond),
	}
}
