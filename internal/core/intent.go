package core

// Intent is the player's input request for one simulation tick.
// Input adapters translate raw key events into an Intent; the simulation
// never sees key codes.
type Intent struct {
	Left  bool // Paddle should move left this tick
	Right bool // Paddle should move right this tick
	Start bool // Start or restart; edge-triggered, consumed once
}

// IsZero reports whether the intent requests nothing.
func (in Intent) IsZero() bool {
	return !in.Left && !in.Right && !in.Start
}

// String returns a compact human-readable form, e.g. "L", "R+S" or "-".
func (in Intent) String() string {
	s := ""
	if in.Left {
		s += "L"
	}
	if in.Right {
		if s != "" {
			s += "+"
		}
		s += "R"
	}
	if in.Start {
		if s != "" {
			s += "+"
		}
		s += "S"
	}
	if s == "" {
		return "-"
	}
	return s
}
