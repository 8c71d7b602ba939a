package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/random-folder-picker/internal/domain"
	"github.com/spf13/cobra"
)

var errNoRootChosen = fmt.Errorf("%w: run `rfp choose` first", domain.ErrNoRootDirectory)

func newChooseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "choose [DIR]",
		Short: "Choose the root folder and draw the first winner",
		Long:  "Choose the root folder whose subfolders become the candidates. Without DIR an interactive folder picker opens. Choosing a root discards the previous pool.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if err := app.controller.ChooseFolder(cmd.Context()); err != nil {
					return err
				}
			} else {
				root, err := resolveRootArg(args[0])
				if err != nil {
					return err
				}
				if err := app.controller.SetRoot(cmd.Context(), root); err != nil {
					return err
				}
			}

			status := app.controller.Status()
			printSuccess(cmd.ErrOrStderr(), "root set to %s", status.Root)
			if status.Winner == "" {
				printWarn(cmd.ErrOrStderr(), "no candidate folders under %s", status.Root)
			}

			return writeSessionOutput(cmd, app, false)
		},
	}
}

func resolveRootArg(raw string) (string, error) {
	root, err := filepath.Abs(raw)
	if err != nil {
		return "", fmt.Errorf("resolve root %q: %w", raw, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %q is not a directory", domain.ErrInvalidRoot, root)
	}

	return root, nil
}

func newPickCmd(app *app) *cobra.Command {
	var (
		openWinner bool
		relist     bool
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Draw the next random folder from the saved pool",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if relist {
				if !app.controller.Restore(ctx) {
					return errNoRootChosen
				}
				if err := app.controller.Relist(ctx); err != nil {
					return err
				}
			} else {
				app.controller.Start(ctx)
			}

			status := app.controller.Status()
			if status.Root == "" {
				return errNoRootChosen
			}
			if status.Winner == "" {
				if status.Exhausted() {
					printWarn(cmd.ErrOrStderr(), "pool exhausted, run `rfp relist` to start over")
				} else {
					printWarn(cmd.ErrOrStderr(), "could not list %s", status.Root)
				}
				return writeSessionOutput(cmd, app, false)
			}

			if openWinner {
				if err := app.controller.OpenWinner(ctx); err != nil {
					return err
				}
				printInfo(cmd.ErrOrStderr(), "opened %s", status.Winner)
			}

			return writeSessionOutput(cmd, app, false)
		},
	}

	cmd.Flags().BoolVar(&openWinner, "open", false, "Open the winner in the system file explorer")
	cmd.Flags().BoolVar(&relist, "relist", false, "Re-query the root folder before drawing")

	return cmd
}

func newRelistCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "relist",
		Short: "Re-query the root folder and refill the pool",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if !app.controller.Restore(ctx) {
				return errNoRootChosen
			}

			if err := app.controller.Relist(ctx); err != nil {
				if errors.Is(err, domain.ErrNoRootDirectory) {
					return errNoRootChosen
				}
				return err
			}

			status := app.controller.Status()
			printSuccess(cmd.ErrOrStderr(), "relisted %s", status.Root)

			return writeSessionOutput(cmd, app, false)
		},
	}
}

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the saved root folder and remaining pool",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.controller.Restore(cmd.Context())
			return writeSessionOutput(cmd, app, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print status as JSON")

	return cmd
}
