package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/parley-chat/parley/internal/interfaces/cli/migrate"
	"github.com/parley-chat/parley/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parley",
		Short: "Parley - two-party chat backend",
		Long:  `Parley serves user accounts, one-to-one conversations and live presence over a websocket.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
