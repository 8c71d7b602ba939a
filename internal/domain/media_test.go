package domain

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverImageNamesOrder(t *testing.T) {
	t.Parallel()

	names := slices.Collect(CoverImageNames())

	assert.Equal(t, []string{"01.jpg", "001.jpg", "01.png", "001.png", "1.jpg", "1.png"}, names)
	assert.Equal(t, names, slices.Collect(CoverImageNames()), "sequence must be restartable")
}

func TestCoverImageNamesStopsEarly(t *testing.T) {
	t.Parallel()

	var visited []string
	for name := range CoverImageNames() {
		visited = append(visited, name)
		if name == "001.jpg" {
			break
		}
	}

	assert.Equal(t, []string{"01.jpg", "001.jpg"}, visited)
}

func TestImageContentType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "image/jpeg", ImageContentType("01.jpg"))
	assert.Equal(t, "image/png", ImageContentType("001.png"))
	assert.Equal(t, "image/png", ImageContentType("1.PNG"))
}
