package editor

import (
	"strings"
	"unicode"
)

// Key is a single key press. Printable keys carry their codepoint; shifted
// letters arrive upper case without ModShift. The editing keys which have no
// glyph use the Key* constants.
type Key struct {
	Codepoint rune
	Modifiers ModifierMask
}

type ModifierMask int

const (
	ModShift ModifierMask = 1 << iota
	ModAlt
	ModCtrl
)

// Keys typed as control codes keep their ASCII value. The rest are placed
// above the unicode range
const (
	KeyTab       rune = 0x09
	KeyEnter     rune = 0x0D
	KeyEsc       rune = 0x1B
	KeySpace     rune = 0x20
	KeyBackspace rune = 0x7F
)

const (
	KeyUp rune = unicode.MaxRune + 1 + iota
	KeyRight
	KeyDown
	KeyLeft
	KeyDelete
)

var keyNames = map[rune]string{
	KeyTab:       "tab",
	KeyEnter:     "enter",
	KeyEsc:       "esc",
	KeySpace:     "space",
	KeyBackspace: "bs",
	KeyUp:        "up",
	KeyRight:     "right",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyDelete:    "delete",
}

// String returns the name key bindings match against: the glyph of a plain
// printable key ("f", "D"), otherwise a bracketed name with modifier
// prefixes in the order c-, a-, s- ("<c-c>", "<s-tab>", "<left>"). Control
// codes read as their control letter.
func (k Key) String() string {
	cp, mods := k.Codepoint, k.Modifiers
	name, named := keyNames[cp]
	switch {
	case named:
	case cp < 0 || cp > unicode.MaxRune:
		return "<invalid>"
	case cp < 0x20:
		cp = unicode.ToLower(cp + 0x40)
		mods |= ModCtrl
		name = string(cp)
	case mods == 0:
		return string(cp)
	default:
		name = string(cp)
	}

	b := &strings.Builder{}
	b.WriteByte('<')
	if mods&ModCtrl != 0 {
		b.WriteString("c-")
	}
	if mods&ModAlt != 0 {
		b.WriteString("a-")
	}
	if mods&ModShift != 0 {
		b.WriteString("s-")
	}
	b.WriteString(name)
	b.WriteByte('>')
	return b.String()
}

// Printable reports whether the key types a glyph from the printable ASCII
// range
func (k Key) Printable() bool {
	return k.Modifiers&^ModShift == 0 && k.Codepoint >= 0x20 && k.Codepoint <= 0x7E
}
