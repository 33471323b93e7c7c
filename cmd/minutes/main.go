package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "minutes",
		Short: "Meeting minutes pipeline",
		Long: `minutes turns meeting recordings and transcripts into a summary
and a list of action items (who does what, by when).

Drop .txt/.md transcripts or audio/video recordings into the inbox and
run "minutes watch", or process a single file with "minutes text" or
"minutes audio".`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to config file")

	rootCmd.AddCommand(watchCmd(&configPath))
	rootCmd.AddCommand(textCmd(&configPath))
	rootCmd.AddCommand(audioCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
