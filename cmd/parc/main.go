package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"parc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "parc",
	Short: "Parser-combinator toolkit and JSON validator",
	Long:  `parc validates files with grammars built on the parc combinator library and reports parse failures as compiler-style diagnostics`,
}

// main registers subcommands and persistent flags, then executes the
// root command. Command execution errors exit with status 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("context", 2, "source context lines shown above a failure")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// resolveColor decides whether output should be styled: an explicit
// flag wins, then the manifest, then terminal detection. The fatih/color
// global is synced so forced color survives piping.
func resolveColor(mode string, manifest *parcConfig) bool {
	if mode == "auto" && manifest != nil && manifest.Output.Color != "" {
		mode = manifest.Output.Color
	}
	var on bool
	switch mode {
	case "on":
		on = true
	case "off":
		on = false
	default:
		on = isTerminal(os.Stdout)
	}
	color.NoColor = !on
	return on
}
