package event

import (
	"fmt"
	"strings"
)

type KeySym int

const (
	KSymNone KeySym = iota

	// let ascii codes keep their values (adding 256 ensures gap)
	KSym_dummy_ KeySym = 256 + iota

	KSym0
	KSym1
	KSym2
	KSym3
	KSym4
	KSym5
	KSym6
	KSym7
	KSym8
	KSym9

	KSymA
	KSymB
	KSymC
	KSymD
	KSymE
	KSymF
	KSymG
	KSymH
	KSymI
	KSymJ
	KSymK
	KSymL
	KSymM
	KSymN
	KSymO
	KSymP
	KSymQ
	KSymR
	KSymS
	KSymT
	KSymU
	KSymV
	KSymW
	KSymX
	KSymY
	KSymZ

	KSymSpace
	KSymBackspace
	KSymReturn
	KSymEscape
	KSymTab
	KSymDelete
	KSymInsert
	KSymHome
	KSymEnd
	KSymPageUp
	KSymPageDown
	KSymLeft
	KSymUp
	KSymRight
	KSymDown

	KSymF1
	KSymF2
	KSymF3
	KSymF4
	KSymF5
	KSymF6
	KSymF7
	KSymF8
	KSymF9
	KSymF10
	KSymF11
	KSymF12
)

//----------

var ksymNames = map[KeySym]string{
	KSymSpace:     "space",
	KSymBackspace: "backspace",
	KSymReturn:    "return",
	KSymEscape:    "escape",
	KSymTab:       "tab",
	KSymDelete:    "delete",
	KSymInsert:    "insert",
	KSymHome:      "home",
	KSymEnd:       "end",
	KSymPageUp:    "pageup",
	KSymPageDown:  "pagedown",
	KSymLeft:      "left",
	KSymUp:        "up",
	KSymRight:     "right",
	KSymDown:      "down",
}

func init() {
	for i := 0; i < 10; i++ {
		ksymNames[KSym0+KeySym(i)] = string(rune('0' + i))
	}
	for i := 0; i < 26; i++ {
		ksymNames[KSymA+KeySym(i)] = string(rune('a' + i))
	}
	for i := 0; i < 12; i++ {
		ksymNames[KSymF1+KeySym(i)] = fmt.Sprintf("f%d", i+1)
	}
}

func (ks KeySym) String() string {
	if s, ok := ksymNames[ks]; ok {
		return s
	}
	return fmt.Sprintf("keysym(%d)", int(ks))
}

// ParseKeySym accepts the names returned by KeySym.String (case insensitive).
func ParseKeySym(s string) (KeySym, error) {
	s2 := strings.ToLower(strings.TrimSpace(s))
	for ks, name := range ksymNames {
		if name == s2 {
			return ks, nil
		}
	}
	return KSymNone, fmt.Errorf("unknown key: %q", s)
}

//----------

// RuneToKeySym maps printable ascii runes to their keysym.
func RuneToKeySym(ru rune) KeySym {
	switch {
	case ru >= '0' && ru <= '9':
		return KSym0 + KeySym(ru-'0')
	case ru >= 'a' && ru <= 'z':
		return KSymA + KeySym(ru-'a')
	case ru >= 'A' && ru <= 'Z':
		return KSymA + KeySym(ru-'A')
	case ru == ' ':
		return KSymSpace
	}
	return KSymNone
}
