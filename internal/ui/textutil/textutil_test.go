package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Sales Da…", Truncate("Sales Dashboard", 9))
	assert.Equal(t, Ellipsis, Truncate("abc", 1))
	assert.Equal(t, "", Truncate("abc", 0))
}

func TestPadRightVisual(t *testing.T) {
	assert.Equal(t, "SQL   ", PadRightVisual("SQL", 6))
	assert.Equal(t, "Pyth…", PadRightVisual("Python", 5))
	assert.Equal(t, 4, VisualWidth(PadRightVisual("▥", 4)))
}

func TestWrap(t *testing.T) {
	got := Wrap("Collected and cleaned data from multiple sources", 20, "")
	assert.Equal(t, []string{"Collected and", "cleaned data from", "multiple sources"}, got)
	for _, l := range got {
		assert.LessOrEqual(t, VisualWidth(l), 20)
	}
}

func TestWrap_Indent(t *testing.T) {
	got := Wrap("one two three four", 10, "  ")
	assert.Equal(t, []string{"one two", "  three", "  four"}, got)
}

func TestWrap_Empty(t *testing.T) {
	assert.Nil(t, Wrap("   ", 10, ""))
}
