package chart

// Window bounds how many notes a single tick may admit.
type Window struct {
	Lead    float64 // admit notes whose cue is at most this far ahead
	MaxRun  int
	MaxSpan float64 // seconds between the first and last admitted note
}

// Admit returns the notes due at music time now, starting at cursor, and the new
// cursor. The notes must be sorted.
func Admit(notes []Note, cursor int, now float64, w Window) ([]Note, int) {
	start := cursor
	for cursor < len(notes) {
		head := notes[cursor]
		if head.Time-now > w.Lead {
			break
		}
		if cursor-start >= w.MaxRun {
			break
		}
		if cursor > start && head.Time-notes[start].Time > w.MaxSpan {
			break
		}
		cursor++
	}
	return notes[start:cursor], cursor
}
