package page

// CycleMode selects how Cycle walks the pages.
type CycleMode uint8

const (
	// Forward moves to the next visible page after the current one.
	Forward CycleMode = iota
	// Backward moves to the previous visible page before the current one.
	Backward
	// StayOrForward keeps the current page if it is visible, otherwise
	// moves forward.
	StayOrForward
	// StayOrBackward keeps the current page if it is visible, otherwise
	// moves backward.
	StayOrBackward
)

func (c CycleMode) String() string {
	switch c {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case StayOrForward:
		return "stay-or-forward"
	case StayOrBackward:
		return "stay-or-backward"
	default:
		return "unknown"
	}
}

func (c CycleMode) stays() bool    { return c == StayOrForward || c == StayOrBackward }
func (c CycleMode) backward() bool { return c == Backward || c == StayOrBackward }

// Cycle moves the cursor to the first visible page in the direction given by
// mode, wrapping around the ends. Hidden pages are skipped. When every
// candidate is hidden the cursor stays where it is and the current page is
// returned. Cycle reports false only for an empty manager.
func (m *Manager[P]) Cycle(mode CycleMode) (P, bool) {
	n := len(m.pages)
	if n == 0 {
		var zero P
		return zero, false
	}

	start := 1
	if mode.stays() {
		start = 0
	}
	for i := start; i < n; i++ {
		step := i
		if mode.backward() {
			step = n - i
		}
		idx := (m.current + step) % n
		if !m.pages[idx].Hidden() {
			m.current = idx
			return m.pages[idx], true
		}
	}
	return m.pages[m.current], true
}

// Next is Cycle(Forward).
func (m *Manager[P]) Next() (P, bool) { return m.Cycle(Forward) }

// Previous is Cycle(Backward).
func (m *Manager[P]) Previous() (P, bool) { return m.Cycle(Backward) }
