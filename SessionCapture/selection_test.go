package SessionCapture_test

import (
	"testing"

	"EnasClinic/SessionCapture"

	"github.com/stretchr/testify/assert"
)

func TestSelectionToggle(t *testing.T) {
	selection := SessionCapture.NewSelection()

	selection.Toggle("neck")
	assert.True(t, selection.Has("neck"))
	assert.Equal(t, 1, selection.Len())

	selection.Toggle("neck")
	assert.False(t, selection.Has("neck"))
	assert.Equal(t, 0, selection.Len())
}

func TestSelectionMembersSorted(t *testing.T) {
	selection := SessionCapture.NewSelection()
	selection.Toggle("right_knee")
	selection.Toggle("abdomen")
	selection.Toggle("neck")

	assert.Equal(t, []string{"abdomen", "neck", "right_knee"}, selection.Members())
}

func TestSelectionClear(t *testing.T) {
	selection := SessionCapture.NewSelection()
	selection.Toggle("head")
	selection.Toggle("chest")

	selection.Clear()
	assert.Equal(t, 0, selection.Len())
	assert.Empty(t, selection.Members())
}

func TestSelectionReplace(t *testing.T) {
	selection := SessionCapture.NewSelection()
	selection.Toggle("head")
	selection.Toggle("chest")

	selection.Replace([]string{"left_knee"})
	assert.Equal(t, []string{"left_knee"}, selection.Members())
	assert.False(t, selection.Has("head"))
}
