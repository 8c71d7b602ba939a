package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterEntriesExcludesMediaAndConfigSuffixes(t *testing.T) {
	t.Parallel()

	entries := []Entry{
		{Name: "A", Path: "/root/A", IsDir: true},
		{Name: "cover.jpg", Path: "/root/cover.jpg"},
		{Name: "B", Path: "/root/B", IsDir: true},
		{Name: "logo.png", Path: "/root/logo.png"},
		{Name: "anim.gif", Path: "/root/anim.gif"},
		{Name: "clip.mp4", Path: "/root/clip.mp4"},
		{Name: "desktop.ini", Path: "/root/desktop.ini"},
		{Name: "notes.txt", Path: "/root/notes.txt"},
		{Name: "C", Path: "/root/C", IsDir: true},
	}

	pool := FilterEntries(entries)

	assert.Equal(t, []CandidateID{"/root/A", "/root/B", "/root/notes.txt", "/root/C"}, pool.Members())
}

func TestFilterEntriesFallsBackToPathAndName(t *testing.T) {
	t.Parallel()

	pool := FilterEntries([]Entry{
		{Path: "/root/only-path"},
		{Path: "/root/pic.png"},
		{Name: "only-name"},
	})

	assert.Equal(t, []CandidateID{"/root/only-path", "only-name"}, pool.Members())
}

func TestNewPoolDeduplicatesAndDropsEmpty(t *testing.T) {
	t.Parallel()

	pool := NewPool([]CandidateID{"1", "", "2", "1", "  ", "2", "3"})

	assert.Equal(t, []CandidateID{"1", "2", "3"}, pool.Members())
}

func TestPoolWithoutReturnsNewSnapshot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		index int
		want  []CandidateID
	}{
		{name: "first", index: 0, want: []CandidateID{"B", "C"}},
		{name: "middle", index: 1, want: []CandidateID{"A", "C"}},
		{name: "last", index: 2, want: []CandidateID{"A", "B"}},
		{name: "out of range", index: 7, want: []CandidateID{"A", "B", "C"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			original := NewPool([]CandidateID{"A", "B", "C"})
			shrunk := original.Without(tc.index)

			assert.Equal(t, tc.want, shrunk.Members())
			assert.Equal(t, []CandidateID{"A", "B", "C"}, original.Members())
		})
	}
}

func TestPoolMembersIsACopy(t *testing.T) {
	t.Parallel()

	pool := NewPool([]CandidateID{"A", "B"})
	members := pool.Members()
	members[0] = "Z"

	assert.True(t, pool.Contains("A"))
	assert.False(t, pool.Contains("Z"))
}

func TestPoolFromStringsRoundTrip(t *testing.T) {
	t.Parallel()

	pool := PoolFromStrings([]string{"/a", "/b"})

	assert.Equal(t, []string{"/a", "/b"}, pool.Strings())
	assert.Equal(t, 2, pool.Len())
}
