package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAnchor(t *testing.T) {
	a, err := ParseAnchor(" Bottom ")
	assert.NoError(t, err)
	assert.Equal(t, Bottom, a)
	_, err = ParseAnchor("middle")
	assert.Error(t, err)
}

func TestLabelEmpty(t *testing.T) {
	assert.True(t, Label{}.Empty())
	assert.True(t, Label{Text: " \t"}.Empty())
	assert.False(t, Label{Text: "x"}.Empty())
}
