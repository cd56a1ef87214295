// Package cmd implements the mbusdump command-line tool.
package cmd

import (
	"github.com/spf13/cobra"
)

var Verbose bool

var rootCmd = &cobra.Command{
	Use:   "mbusdump",
	Short: "Decode M-Bus telegrams from a file or stdin",
	Long: `mbusdump decodes EN 13757-3 M-Bus application-layer telegrams
captured as hex or raw bytes, printing the frame envelope and, for long
frames, every Data Record found in the payload.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "enable debug-level decode tracing")
	rootCmd.Version = "0.1.0"
}
