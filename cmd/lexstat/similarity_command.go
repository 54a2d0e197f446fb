package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lexstat/internal/fileutil"
	"lexstat/internal/textutil"
)

type similarityResult struct {
	First            string  `json:"first"`
	Second           string  `json:"second"`
	FirstVocabulary  int     `json:"first_vocabulary"`
	SecondVocabulary int     `json:"second_vocabulary"`
	Similarity       float64 `json:"similarity"`
}

func newSimilarityCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "similarity <file> <file>",
		Short: "Compare two documents by term-frequency cosine similarity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fingerprints := make([]*textutil.Fingerprint, len(args))
			for i, path := range args {
				text, err := fileutil.ReadText(path)
				if err != nil {
					return fmt.Errorf("read input %s: %w", path, err)
				}
				fingerprints[i] = textutil.NewFingerprint(text)
			}

			result := similarityResult{
				First:            args[0],
				Second:           args[1],
				FirstVocabulary:  fingerprints[0].TokenCount(),
				SecondVocabulary: fingerprints[1].TokenCount(),
				Similarity:       textutil.CosineSimilarity(fingerprints[0], fingerprints[1]),
			}

			if logger, err := ctx.ensureLogger(); err == nil {
				defer ctx.closeLogger()
				logger.Debug("similarity computed",
					"first", result.First,
					"second", result.Second,
					"similarity", result.Similarity,
				)
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cosine similarity: %.3f\n", result.Similarity)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
