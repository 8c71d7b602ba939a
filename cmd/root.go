package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rfp",
		Short:         "Random Folder Picker (rfp): draw random subfolders without repeats",
		Long:          "rfp picks a random subfolder of a root directory, shows its cover image, and never picks the same folder twice until you relist. The remaining pool survives restarts.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newChooseCmd(app),
		newPickCmd(app),
		newRelistCmd(app),
		newStatusCmd(app),
		newLoopCmd(app),
		newFavoriteCmd(app),
	)

	return rootCmd
}
