package breakout

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseIdle    Phase = iota // Before the first start
	PhaseRunning              // Simulation advances each tick
	PhaseEnded                // Frozen; Outcome says why
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome is the terminal result of a session.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// MessageKind identifies a lifecycle message for the presentation layer.
type MessageKind int

const (
	MessageNone        MessageKind = iota // Game in progress, no overlay
	MessageStartPrompt                    // Waiting for the first start
	MessageGameOver                       // Ended in defeat
	MessageVictory                        // Ended in victory
)

// Message is what the presentation layer should overlay on the scene.
type Message struct {
	Kind      MessageKind
	Score     int
	Total     int
	HighScore int
}

// messageFor derives the lifecycle message from the state machine.
func messageFor(phase Phase, outcome Outcome) MessageKind {
	switch phase {
	case PhaseIdle:
		return MessageStartPrompt
	case PhaseEnded:
		if outcome == OutcomeVictory {
			return MessageVictory
		}
		return MessageGameOver
	default:
		return MessageNone
	}
}
