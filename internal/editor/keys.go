package editor

import (
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/mobile/event/key"
)

// KeyShortcut describes a keyboard combination that triggers an action.
// Either Code or Rune identifies the key.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

// Binding ties an action name to its shortcuts.
type Binding struct {
	Action string
	Keys   []KeyShortcut
	Help   string
	run    func() error
}

// Bindings lists the session's key commands.
func (s *Session) Bindings() []Binding {
	b := []Binding{
		{Action: "commit", Keys: []KeyShortcut{{Code: key.CodeReturnEnter}}, Help: "commit active layer", run: s.Commit},
		{Action: "undo", Keys: []KeyShortcut{{Code: key.CodeEscape}, {Code: key.CodeZ, Modifiers: key.ModControl}}, Help: "undo active layer", run: s.Undo},
		{Action: "new", Keys: []KeyShortcut{{Rune: 'n'}}, Help: "add next asset", run: func() error { _, err := s.AddNext(); return err }},
		{Action: "refresh", Keys: []KeyShortcut{{Rune: 'r'}}, Help: "re-rasterize active layer", run: s.Refresh},
		{Action: "brighter", Keys: []KeyShortcut{{Rune: '+'}, {Rune: '='}}, Help: "raise intensity", run: func() error { return s.AdjustIntensity(1) }},
		{Action: "dimmer", Keys: []KeyShortcut{{Rune: '-'}}, Help: "lower intensity", run: func() error { return s.AdjustIntensity(-1) }},
		{Action: "rotate-left", Keys: []KeyShortcut{{Rune: 'q'}}, Help: "rotate left", run: func() error { return s.Rotate(-1) }},
		{Action: "rotate-right", Keys: []KeyShortcut{{Rune: 'e'}}, Help: "rotate right", run: func() error { return s.Rotate(1) }},
		{Action: "grow", Keys: []KeyShortcut{{Rune: ']'}}, Help: "scale up", run: func() error { return s.Zoom(1) }},
		{Action: "shrink", Keys: []KeyShortcut{{Rune: '['}}, Help: "scale down", run: func() error { return s.Zoom(-1) }},
		{Action: "copy", Keys: []KeyShortcut{{Code: key.CodeC, Modifiers: key.ModControl}}, Help: "copy poster", run: s.Copy},
		{Action: "save", Keys: []KeyShortcut{{Code: key.CodeS, Modifiers: key.ModControl}}, Help: "save poster", run: s.Save},
	}
	for i := range Palette {
		idx := i
		b = append(b, Binding{
			Action: "color-" + Palette[i].Name,
			Keys:   []KeyShortcut{{Rune: rune('1' + i)}},
			Help:   "tint " + Palette[i].Name,
			run:    func() error { return s.SetColor(idx) },
		})
	}
	return b
}

// Lookup returns the action bound to e.
func (s *Session) Lookup(e key.Event) (Binding, bool) {
	mods := e.Modifiers &^ key.ModShift
	byCode := KeyShortcut{Code: e.Code, Modifiers: e.Modifiers}
	byRune := KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: mods}
	for _, b := range s.Bindings() {
		for _, k := range b.Keys {
			if k.Code != key.CodeUnknown && k == byCode {
				return b, true
			}
			if k.Rune != 0 && e.Rune > 0 && k == byRune {
				return b, true
			}
		}
	}
	return Binding{}, false
}

// HandleKey runs the action bound to a key press. It reports whether the
// key was bound. Action errors are logged and shown in the status bar.
func (s *Session) HandleKey(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	b, ok := s.Lookup(e)
	if !ok {
		return false
	}
	if err := b.run(); err != nil {
		s.log.Warn("action failed", zap.String("action", b.Action), zap.Error(err))
		s.flash("%s: %v", b.Action, err)
	}
	return true
}
