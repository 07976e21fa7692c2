package chart

// Generate builds a beat-aligned chart for songs without an authored one: one note
// per beat, a heavy note every fourth beat and a danger note every eighth.
func Generate(duration, bpm float64) *Chart {
	if bpm <= 0 {
		bpm = DefaultBPM
	}
	beat := 60 / bpm
	c := &Chart{
		Metadata: Metadata{
			Title:      "Generated",
			BPM:        bpm,
			Duration:   duration,
			Difficulty: "normal",
		},
	}
	for i := 1; float64(i)*beat < duration; i++ {
		raw := "light"
		switch {
		case i%8 == 0:
			raw = "danger"
		case i%4 == 0:
			raw = "heavy"
		case i%2 == 0:
			raw = "normal"
		}
		c.Notes = append(c.Notes, Note{
			Time:      float64(i) * beat,
			RawType:   raw,
			Type:      MapNoteType(raw),
			Intensity: DefaultIntensity,
		})
	}
	return c
}
