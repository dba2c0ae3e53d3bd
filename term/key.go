package term

import (
	"github.com/gdamore/tcell/v2"

	"git.sr.ht/~rockorager/scrawl/editor"
)

// editingKeys are the tcell keys with no rune which the editor binds
var editingKeys = map[tcell.Key]rune{
	tcell.KeyUp:        editor.KeyUp,
	tcell.KeyRight:     editor.KeyRight,
	tcell.KeyDown:      editor.KeyDown,
	tcell.KeyLeft:      editor.KeyLeft,
	tcell.KeyDelete:    editor.KeyDelete,
	tcell.KeyBackspace: editor.KeyBackspace,
	tcell.KeyEnter:     editor.KeyEnter,
	tcell.KeyTab:       editor.KeyTab,
	tcell.KeyEscape:    editor.KeyEsc,
}

// KeyFromEvent translates a tcell key event. The second return value is false
// for keys the editor has no name for.
func KeyFromEvent(ev *tcell.EventKey) (editor.Key, bool) {
	mods := modifiers(ev.Modifiers())
	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		// The shift is already part of the rune
		return editor.Key{
			Codepoint: ev.Rune(),
			Modifiers: mods &^ editor.ModShift,
		}, true
	case k == tcell.KeyBacktab:
		return editor.Key{
			Codepoint: editor.KeyTab,
			Modifiers: mods | editor.ModShift,
		}, true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		// tcell numbers these apart from their C0 codes
		return editor.Key{
			Codepoint: 'a' + rune(k-tcell.KeyCtrlA),
			Modifiers: mods | editor.ModCtrl,
		}, true
	case k == tcell.KeyCtrlSpace:
		return editor.Key{
			Codepoint: editor.KeySpace,
			Modifiers: mods | editor.ModCtrl,
		}, true
	}
	if cp, ok := editingKeys[k]; ok {
		return editor.Key{Codepoint: cp, Modifiers: mods}, true
	}
	return editor.Key{}, false
}

func modifiers(m tcell.ModMask) editor.ModifierMask {
	var mods editor.ModifierMask
	if m&tcell.ModShift != 0 {
		mods |= editor.ModShift
	}
	// tcell reports meta as alt on most platforms
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mods |= editor.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mods |= editor.ModCtrl
	}
	return mods
}
