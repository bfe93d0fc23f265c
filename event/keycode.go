package event

import "fmt"

// KeyCode follows Allegro's key numbering. Other backends translate into it.
type KeyCode int

const (
	KeyA KeyCode = 1 + iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyPad0
	KeyPad1
	KeyPad2
	KeyPad3
	KeyPad4
	KeyPad5
	KeyPad6
	KeyPad7
	KeyPad8
	KeyPad9
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyEscape
	KeyTilde
	KeyMinus
	KeyEquals
	KeyBackspace
	KeyTab
	KeyOpenBrace
	KeyCloseBrace
	KeyEnter
	KeySemicolon
	KeyQuote
	KeyBackslash
	KeyBackslash2
	KeyComma
	KeyFullStop
	KeySlash
	KeySpace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
)

var keyNames = map[KeyCode]string{
	KeyEscape:     "Escape",
	KeyTilde:      "Tilde",
	KeyMinus:      "Minus",
	KeyEquals:     "Equals",
	KeyBackspace:  "Backspace",
	KeyTab:        "Tab",
	KeyOpenBrace:  "OpenBrace",
	KeyCloseBrace: "CloseBrace",
	KeyEnter:      "Enter",
	KeySemicolon:  "Semicolon",
	KeyQuote:      "Quote",
	KeyBackslash:  "Backslash",
	KeyBackslash2: "Backslash2",
	KeyComma:      "Comma",
	KeyFullStop:   "FullStop",
	KeySlash:      "Slash",
	KeySpace:      "Space",
	KeyInsert:     "Insert",
	KeyDelete:     "Delete",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPgUp:       "PgUp",
	KeyPgDn:       "PgDn",
	KeyLeftArrow:  "Left",
	KeyRightArrow: "Right",
	KeyUpArrow:    "Up",
	KeyDownArrow:  "Down",
}

func (k KeyCode) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k >= KeyPad0 && k <= KeyPad9:
		return fmt.Sprintf("Pad%d", int(k-KeyPad0))
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KeyCode(%d)", int(k))
}
