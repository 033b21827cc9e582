package event

type MouseButton int32

const (
	ButtonNone MouseButton = iota
	ButtonLeft MouseButton = 1 << (iota - 1)
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
	ButtonWheelLeft
	ButtonWheelRight
	ButtonBackward
	ButtonForward
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonWheelUp:
		return "wheelup"
	case ButtonWheelDown:
		return "wheeldown"
	case ButtonWheelLeft:
		return "wheelleft"
	case ButtonWheelRight:
		return "wheelright"
	case ButtonBackward:
		return "backward"
	case ButtonForward:
		return "forward"
	default:
		return "none"
	}
}
