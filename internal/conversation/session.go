package conversation

// Phase is the controller's position in the two-flow conversation.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRecordingPrimary
	PhaseProcessingPrimary
	PhaseReadyForReply
	PhaseRecordingReply
	PhaseProcessingReply
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRecordingPrimary:
		return "recording_primary"
	case PhaseProcessingPrimary:
		return "processing_primary"
	case PhaseReadyForReply:
		return "ready_for_reply"
	case PhaseRecordingReply:
		return "recording_reply"
	case PhaseProcessingReply:
		return "processing_reply"
	default:
		return "unknown"
	}
}

// Session — единственное изменяемое состояние разговора. Owned by the
// controller loop; lives for the lifetime of the process.
type Session struct {
	Phase            Phase
	DetectedLanguage string // ISO 639-1, empty until the primary flow sets it
}

// Utterance is the transient value produced by one pipeline pass.
type Utterance struct {
	ID          string
	PCM         []int16
	Transcript  string
	Language    string
	Translation string
	Synth       []byte // PCM16 bytes from the synthesizer
}
