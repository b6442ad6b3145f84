package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pageExtents() []Extent {
	return []Extent{
		{ID: "hero", Top: 0, Bottom: 9},
		{ID: "about", Top: 10, Bottom: 19},
		{ID: "skills", Top: 20, Bottom: 39},
	}
}

func TestActive(t *testing.T) {
	tests := []struct {
		name      string
		scrollTop int
		anchor    int
		wantID    string
		wantOK    bool
	}{
		{name: "top of page", scrollTop: 0, anchor: 3, wantID: "hero", wantOK: true},
		{name: "anchor on boundary row", scrollTop: 7, anchor: 3, wantID: "about", wantOK: true},
		{name: "last row of hero", scrollTop: 6, anchor: 3, wantID: "hero", wantOK: true},
		{name: "deep in skills", scrollTop: 30, anchor: 3, wantID: "skills", wantOK: true},
		{name: "past the end", scrollTop: 60, anchor: 3, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := Active(pageExtents(), tt.scrollTop, tt.anchor)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestSpy_KeepsCurrentWhenNothingMatches(t *testing.T) {
	s := NewSpy("hero")
	assert.True(t, s.Observe(pageExtents(), 12))
	assert.Equal(t, "about", s.Current)

	assert.False(t, s.Observe(pageExtents(), 100))
	assert.Equal(t, "about", s.Current)

	assert.False(t, s.Observe(pageExtents(), 13), "same section is not a change")
}

func TestOffset(t *testing.T) {
	off, ok := Offset(pageExtents(), "skills")
	assert.True(t, ok)
	assert.Equal(t, 20, off)

	_, ok = Offset(pageExtents(), "missing")
	assert.False(t, ok)
}

func TestMenu(t *testing.T) {
	var m Menu
	m.Toggle()
	assert.True(t, m.Open)
	m.Close()
	assert.False(t, m.Open)
	m.Close()
	assert.False(t, m.Open)
}
