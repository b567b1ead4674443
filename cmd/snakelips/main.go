// Command snakelips produces the lip-less variants of a snake cross-section
// and exports one of them as an immersed body.
package main

import (
	"os"

	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "snakelips",
	Short: "Reshape the lips of a gliding snake cross-section",
	Long: `Reshape the lips of a gliding snake cross-section.

The input section is normalized to a chord of 1 and centered on the origin.
The lips around the front and back tips are replaced by circular arcs, and
four variants are written: with both lips, without the front lip, without
the back lip and without either.

Subcommands:
  sections  - write the four section variants
  body      - resample and rotate one variant into a body file`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every step")
}

func newLogger() l.Wrapper {
	if !verbose {
		return l.NewNopLoggerWrapper()
	}
	return l.NewConsoleLoggerWrapper()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
