// Package dialog asks the user for a root directory with a terminal file
// picker.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/random-folder-picker/internal/ports"
	"github.com/charmbracelet/huh"
)

var ErrNoSelection = errors.New("no directory selected")

type runFunc func(ctx context.Context, start string) (string, error)

type Chooser struct {
	start string
	run   runFunc
}

var _ ports.DirectoryChooser = (*Chooser)(nil)

// NewChooser opens the picker in start, or in the working directory when
// start is empty.
func NewChooser(start string) *Chooser {
	return &Chooser{start: start, run: runFilePicker}
}

func (c *Chooser) ChooseDirectory(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	start, err := c.startDirectory()
	if err != nil {
		return "", err
	}

	selected, err := c.run(ctx, start)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrNoSelection
		}
		return "", fmt.Errorf("run directory picker: %w", err)
	}

	selected = strings.TrimSpace(selected)
	if selected == "" {
		return "", ErrNoSelection
	}

	absPath, err := filepath.Abs(selected)
	if err != nil {
		return "", fmt.Errorf("resolve selected directory: %w", err)
	}

	return absPath, nil
}

func (c *Chooser) startDirectory() (string, error) {
	if strings.TrimSpace(c.start) != "" {
		return c.start, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	return wd, nil
}

func runFilePicker(ctx context.Context, start string) (string, error) {
	var selected string

	picker := huh.NewFilePicker().
		Title("Choose a root folder").
		Description("Subfolders of the chosen folder become the candidates.").
		CurrentDirectory(start).
		DirAllowed(true).
		FileAllowed(false).
		ShowHidden(false).
		Picking(true).
		Value(&selected)

	if err := huh.NewForm(huh.NewGroup(picker)).RunWithContext(ctx); err != nil {
		return "", err
	}

	return selected, nil
}
