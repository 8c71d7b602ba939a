package application

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/random-folder-picker/internal/domain"
	"github.com/bnema/random-folder-picker/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMediaResolverStopsAtFirstNonEmptyHit(t *testing.T) {
	t.Parallel()

	reader := mocks.NewMockFileReader(t)
	folder := "/root/A"
	png := []byte{0x89, 'P', 'N', 'G'}

	reader.EXPECT().ReadFile(mock.Anything, filepath.Join(folder, "01.jpg")).Return(nil, os.ErrNotExist).Once()
	reader.EXPECT().ReadFile(mock.Anything, filepath.Join(folder, "001.jpg")).Return(nil, os.ErrPermission).Once()
	reader.EXPECT().ReadFile(mock.Anything, filepath.Join(folder, "01.png")).Return([]byte{}, nil).Once()
	reader.EXPECT().ReadFile(mock.Anything, filepath.Join(folder, "001.png")).Return(png, nil).Once()

	image, err := NewMediaResolver(reader, nil).Resolve(context.Background(), folder)
	require.NoError(t, err)

	assert.Equal(t, domain.Image{
		Folder:      folder,
		Name:        "001.png",
		Path:        filepath.Join(folder, "001.png"),
		ContentType: "image/png",
		Data:        png,
	}, image)
	reader.AssertNumberOfCalls(t, "ReadFile", 4)
}

func TestMediaResolverFirstCandidateWins(t *testing.T) {
	t.Parallel()

	reader := mocks.NewMockFileReader(t)
	reader.EXPECT().ReadFile(mock.Anything, filepath.Join("/root/B", "01.jpg")).Return([]byte("jpeg"), nil).Once()

	image, err := NewMediaResolver(reader, nil).Resolve(context.Background(), "/root/B")
	require.NoError(t, err)
	assert.Equal(t, "01.jpg", image.Name)
	assert.Equal(t, "image/jpeg", image.ContentType)
	assert.Equal(t, 4, image.Size())
}

func TestMediaResolverTriesAllSixThenMisses(t *testing.T) {
	t.Parallel()

	reader := &fakeReader{files: map[string][]byte{
		"/root/C/cover.jpg": []byte("not a cover name"),
		"/root/C/1.png":     {},
	}}

	_, err := NewMediaResolver(reader, nil).Resolve(context.Background(), "/root/C")
	require.ErrorIs(t, err, domain.ErrNoImage)

	assert.Equal(t, []string{
		"/root/C/01.jpg",
		"/root/C/001.jpg",
		"/root/C/01.png",
		"/root/C/001.png",
		"/root/C/1.jpg",
		"/root/C/1.png",
	}, reader.reads)
}

func TestMediaResolverTreatsEveryReadErrorAsMiss(t *testing.T) {
	t.Parallel()

	reader := mocks.NewMockFileReader(t)
	reader.EXPECT().ReadFile(mock.Anything, mock.AnythingOfType("string")).Return(nil, errors.New("io error")).Times(6)

	_, err := NewMediaResolver(reader, nil).Resolve(context.Background(), "/root/D")
	require.ErrorIs(t, err, domain.ErrNoImage)
}
