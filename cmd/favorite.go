package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/random-folder-picker/internal/domain"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newFavoriteCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fav",
		Aliases: []string{"favorite"},
		Short:   "Manage liked folders",
	}

	cmd.AddCommand(
		newFavoriteAddCmd(app),
		newFavoriteRemoveCmd(app),
		newFavoriteListCmd(app),
	)

	return cmd
}

func newFavoriteAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add PATH",
		Short: "Like a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := favoritePathArg(args[0])
			if err != nil {
				return err
			}

			favorite, err := app.favorites.Add(cmd.Context(), path)
			if err != nil {
				return err
			}

			printSuccess(cmd.OutOrStdout(), "liked %s", favorite.Path)
			return nil
		},
	}
}

func newFavoriteRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove PATH",
		Aliases: []string{"rm"},
		Short:   "Unlike a folder",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := favoritePathArg(args[0])
			if err != nil {
				return err
			}

			if err := app.favorites.Remove(cmd.Context(), path); err != nil {
				if errors.Is(err, domain.ErrFavoriteNotFound) {
					return fmt.Errorf("%s is not a favorite", path)
				}
				return err
			}

			printSuccess(cmd.OutOrStdout(), "unliked %s", path)
			return nil
		},
	}
}

func newFavoriteListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List liked folders, oldest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			favorites, err := app.favorites.List(cmd.Context())
			if err != nil {
				return err
			}

			if len(favorites) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "favorites: none")
				return nil
			}

			for _, favorite := range favorites {
				added := "unknown"
				if !favorite.AddedAt.IsZero() {
					added = humanize.Time(favorite.AddedAt)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t(liked %s)\n", favorite.Path, added)
			}

			return nil
		},
	}
}

func favoritePathArg(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", errors.New("path is required")
	}

	path, err := filepath.Abs(raw)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", raw, err)
	}

	return path, nil
}
