package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var window = Window{Lead: 1.5, MaxRun: 3, MaxSpan: 0.2}

func notesAt(times ...float64) []Note {
	notes := make([]Note, len(times))
	for i, t := range times {
		notes[i] = Note{Time: t}
	}
	return notes
}

func TestAdmitBoundsSpan(t *testing.T) {
	notes := notesAt(0.05, 0.10, 0.30)

	due, cursor := Admit(notes, 0, 0, window)
	assert.Len(t, due, 2)
	assert.Equal(t, 2, cursor)
	assert.Equal(t, 0.05, due[0].Time)
	assert.Equal(t, 0.10, due[1].Time)

	due, cursor = Admit(notes, cursor, 0.016, window)
	assert.Len(t, due, 1)
	assert.Equal(t, 0.30, due[0].Time)
	assert.Equal(t, 3, cursor)
}

func TestAdmitBoundsCount(t *testing.T) {
	notes := notesAt(1, 1, 1, 1, 1)

	due, cursor := Admit(notes, 0, 0, window)
	assert.Len(t, due, 3)
	assert.Equal(t, 3, cursor)

	due, cursor = Admit(notes, cursor, 0, window)
	assert.Len(t, due, 2)
	assert.Equal(t, 5, cursor)
}

func TestAdmitRespectsLead(t *testing.T) {
	notes := notesAt(2.0, 2.1)

	due, cursor := Admit(notes, 0, 0.4, window)
	assert.Empty(t, due)
	assert.Equal(t, 0, cursor)

	due, cursor = Admit(notes, 0, 0.5, window)
	assert.Len(t, due, 1)
	assert.Equal(t, 1, cursor)
}

func TestAdmitExhausted(t *testing.T) {
	due, cursor := Admit(nil, 0, 10, window)
	assert.Empty(t, due)
	assert.Zero(t, cursor)
}
