package hotkey

// Key identifies one of the bound hotkeys.
type Key int

const (
	KeyPrimary Key = iota // hold-to-talk, first speaker
	KeyReply              // fixed-duration English reply
	KeyExit
)

// Kind is the edge direction of a hotkey event.
type Kind int

const (
	Press Kind = iota
	Release
)

type Event struct {
	Key  Key
	Kind Kind
}

// Listener delivers hotkey edges on a channel until closed.
type Listener interface {
	Start() <-chan Event
	Close()
}
