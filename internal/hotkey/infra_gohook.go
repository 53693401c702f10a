package hotkey

import (
	"sync"
	"unicode"

	hook "github.com/robotn/gohook"
)

// GlobalListener emits edges for the configured keys using a global
// keyboard hook, so the terminal does not need focus.
type GlobalListener struct {
	primary rune
	reply   rune
	exit    rune

	events    chan Event
	closeOnce sync.Once
}

func NewGlobalListener(primary, reply, exit rune) *GlobalListener {
	return &GlobalListener{
		primary: unicode.ToLower(primary),
		reply:   unicode.ToLower(reply),
		exit:    unicode.ToLower(exit),
		events:  make(chan Event, 16),
	}
}

func (l *GlobalListener) Start() <-chan Event {
	raw := hook.Start()
	go l.loop(raw)
	return l.events
}

func (l *GlobalListener) Close() {
	l.closeOnce.Do(func() {
		hook.End()
	})
}

func (l *GlobalListener) loop(raw chan hook.Event) {
	defer close(l.events)

	// KeyUp events carry a rawcode but not a reliable keychar, so the
	// rawcode seen on the primary KeyDown is remembered to match its
	// release.
	var (
		primaryHeld bool
		primaryRaw  uint16
	)

	for ev := range raw {
		switch ev.Kind {
		case hook.KeyDown:
			switch unicode.ToLower(ev.Keychar) {
			case l.primary:
				if primaryHeld {
					continue // OS key repeat
				}
				primaryHeld = true
				primaryRaw = ev.Rawcode
				l.emit(Event{Key: KeyPrimary, Kind: Press})
			case l.reply:
				l.emit(Event{Key: KeyReply, Kind: Press})
			case l.exit:
				l.emit(Event{Key: KeyExit, Kind: Press})
			}
		case hook.KeyUp:
			if primaryHeld && ev.Rawcode == primaryRaw {
				primaryHeld = false
				l.emit(Event{Key: KeyPrimary, Kind: Release})
			}
		}
	}
}

func (l *GlobalListener) emit(ev Event) {
	select {
	case l.events <- ev:
	default:
		// drop instead of blocking the hook goroutine
	}
}
