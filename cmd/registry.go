package cmd

import "github.com/spf13/cobra"

func RegisterCommands(root *cobra.Command) {
	AddCommands(root,
		versionCmd,
		showCmd,
		copyCmd,
		interactiveCmd,
		scriptCmd,
		serveCmd,
		configCmd,
	)

	AddCommands(configCmd,
		configShowCmd,
		configPathCmd,
		configInitCmd,
	)
}
