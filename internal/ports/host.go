package ports

import "context"

type DirectoryChooser interface {
	ChooseDirectory(ctx context.Context) (string, error)
}

// Explorer reveals a path in the system file explorer. Callers do not wait
// on the explorer process.
type Explorer interface {
	Open(ctx context.Context, path string) error
}
