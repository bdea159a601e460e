package placeholder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderShowsRoute(t *testing.T) {
	p := New("Machine Learning", "/learning-hub/1")

	assert.Equal(t, "Machine Learning", p.Title())
	assert.Equal(t, "/learning-hub/1", p.Route())

	view := p.View(80, 20)
	assert.Contains(t, view, "Coming Soon")
	assert.Contains(t, view, "/learning-hub/1")
	assert.Nil(t, p.Init())
}
