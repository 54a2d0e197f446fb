package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var flags analyzeFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "lexstat [file]",
		Short: "Lexical statistics for a plain-text document",
		Long: "Print word frequencies, sentence-length statistics, type-token ratio and\n" +
			"the most common bigrams and trigrams of a text file, with charts.\n\n" +
			"Without a file argument the configured analysis.input_path is used, then\n" +
			"text.txt next to the lexstat executable.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, ctx, args, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	flags.register(rootCmd)

	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newSimilarityCommand(ctx))

	return rootCmd
}
