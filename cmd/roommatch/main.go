package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/roommatch/internal/config"
	"github.com/kailas-cloud/roommatch/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var env string

	rootCmd := &cobra.Command{
		Use:          "roommatch",
		Short:        "Roommate and property matching service",
		Version:      version.String(),
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// .env first so ENV and ${VAR} expansion can see it
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			if env == "" {
				env = config.GetEnv()
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&env, "env", "", "config environment (default: $ENV or local)")

	rootCmd.AddCommand(newServeCmd(&env))
	rootCmd.AddCommand(newMigrateCmd(&env))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("roommatch " + version.String())
		},
	}
}
