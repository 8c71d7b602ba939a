package winner

import (
	"testing"

	"github.com/bnema/random-folder-picker/internal/application"
	"github.com/bnema/random-folder-picker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWinnerWithImage(t *testing.T) {
	output, err := Render(application.SessionStatus{
		Root:      "/photos",
		State:     domain.SessionPopulated,
		Remaining: 1234,
		Winner:    "/photos/Holiday",
		History:   2,
		Image: &application.StatusImage{
			Name:        "01.jpg",
			Path:        "/photos/Holiday/01.jpg",
			ContentType: "image/jpeg",
			Size:        1500,
		},
	}, RenderOptions{Favorite: true})

	require.NoError(t, err)
	assert.Contains(t, output, "root: /photos")
	assert.Contains(t, output, "Winner: Holiday")
	assert.Contains(t, output, "01.jpg (image/jpeg, 1.5 kB)")
	assert.Contains(t, output, "1,234 folders")
	assert.Contains(t, output, "(2 shown before)")
	assert.Contains(t, output, "♥")
}

func TestRenderWinnerWithoutImage(t *testing.T) {
	output := View(application.SessionStatus{
		Root:      "/photos",
		State:     domain.SessionPopulated,
		Remaining: 1,
		Winner:    "/photos/Empty",
	}, RenderOptions{Message: "picked again"})

	assert.Contains(t, output, "image: none")
	assert.Contains(t, output, "1 folder")
	assert.Contains(t, output, "picked again")
	assert.NotContains(t, output, "♥")
	assert.NotContains(t, output, "shown before")
}

func TestRenderExhaustedPool(t *testing.T) {
	output := View(application.SessionStatus{
		Root:   "/photos",
		State:  domain.SessionExhausted,
		Winner: "/photos/Last",
	}, RenderOptions{})

	assert.Contains(t, output, "Winner: Last")
	assert.Contains(t, output, "Pool exhausted")
}

func TestRenderWithoutRoot(t *testing.T) {
	output := View(application.SessionStatus{State: domain.SessionEmpty}, RenderOptions{Help: "c choose • q quit"})

	assert.Contains(t, output, "No root folder chosen")
	assert.Contains(t, output, "c choose • q quit")
	assert.NotContains(t, output, "Winner")
}
