package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	winnerrender "github.com/bnema/random-folder-picker/internal/adapters/render/winner"
	"github.com/bnema/random-folder-picker/internal/application"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
)

func printSuccess(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", green("✔"), fmt.Sprintf(format, args...))
}

func printWarn(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", yellow("○"), fmt.Sprintf(format, args...))
}

func printInfo(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", cyan("→"), fmt.Sprintf(format, args...))
}

type statusImageJSON struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

type statusJSON struct {
	SessionID string           `json:"session_id,omitempty"`
	Root      string           `json:"root"`
	State     string           `json:"state"`
	Remaining int              `json:"remaining"`
	Exhausted bool             `json:"exhausted"`
	Winner    string           `json:"winner,omitempty"`
	Favorite  bool             `json:"favorite"`
	Image     *statusImageJSON `json:"image,omitempty"`
}

func toStatusJSON(status application.SessionStatus, favorite bool) statusJSON {
	out := statusJSON{
		SessionID: string(status.SessionID),
		Root:      status.Root,
		State:     string(status.State),
		Remaining: status.Remaining,
		Exhausted: status.Exhausted(),
		Winner:    string(status.Winner),
		Favorite:  favorite,
	}
	if status.Image != nil {
		out.Image = &statusImageJSON{
			Name:        status.Image.Name,
			Path:        status.Image.Path,
			ContentType: status.Image.ContentType,
			Size:        status.Image.Size,
		}
	}

	return out
}

func writeSessionOutput(cmd *cobra.Command, app *app, asJSON bool) error {
	status := app.controller.Status()

	favorite := false
	if status.Winner != "" {
		liked, err := app.favorites.Contains(cmd.Context(), string(status.Winner))
		if err != nil {
			return fmt.Errorf("load favorites: %w", err)
		}
		favorite = liked
	}

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(toStatusJSON(status, favorite))
	}

	rendered, err := app.renderer(status, winnerrender.RenderOptions{Favorite: favorite})
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
