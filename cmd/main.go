package main

import (
	"asmview/internal/inspect"
	"asmview/internal/logger"
	"asmview/pkg/color"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Main entry point for asmview.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	options := inspect.Inspector{}

	rootCmd := &cobra.Command{
		Use:   "asmview [flags] file.s",
		Short: "Show compiler generated assembly with demangled names",
		Long: `Asmview reads an assembly listing produced by rustc, clang or gcc,
classifies every line as a label, directive or instruction, groups the
statements into functions and prints them with demangled, colored names.`,

		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			logger.Init(options.Verbose, options.NoColor)
			if options.NoColor {
				color.EnableColor(false)
			}

			options.SourceFile = args[0]
			if err := options.Run(); err != nil {
				log.Fatal("Inspection failed", "error", err)
			}
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "Verbose mode")
	flags.BoolVarP(&options.NoColor, "no-color", "n", false, "No color")
	flags.StringVarP(&options.Function, "function", "f", "", "Show only functions whose name contains this text")
	flags.BoolVar(&options.Full, "full", false, "Keep hashes in demangled names")
	flags.BoolVar(&options.Strict, "strict", false, "Fail if the last line has no terminator")
	flags.BoolVar(&options.KeepDirectives, "keep-directives", false, "Show every directive")
	flags.BoolVarP(&options.List, "list", "l", false, "List functions only")

	return rootCmd
}
