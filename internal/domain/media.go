package domain

import (
	"iter"
	"mime"
	"path/filepath"
	"strings"
)

var coverImageNames = []string{
	"01.jpg",
	"001.jpg",
	"01.png",
	"001.png",
	"1.jpg",
	"1.png",
}

// CoverImageNames yields the file names tried, in priority order, when
// looking for a folder's representative image.
func CoverImageNames() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range coverImageNames {
			if !yield(name) {
				return
			}
		}
	}
}

type Image struct {
	Folder      string
	Name        string
	Path        string
	ContentType string
	Data        []byte
}

func (i Image) Size() int {
	return len(i.Data)
}

func ImageContentType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if contentType := mime.TypeByExtension(ext); contentType != "" {
		return contentType
	}

	return "image/" + strings.TrimPrefix(ext, ".")
}
