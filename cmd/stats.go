package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yumiuse/lexilevel/internal"
	"github.com/yumiuse/lexilevel/internal/config"
	"github.com/yumiuse/lexilevel/internal/corpus"
)

// newStatsCmd prints the corpus-wide numbers behind the unknown-word
// fallback, mostly useful when swapping in a different corpus export.
func newStatsCmd(cfg *config.Config, db *sql.DB) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show corpus statistics and fallback thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := internal.LoadCorpus(cfg, db, refresh)
			if err != nil {
				return err
			}

			thresholds := corpus.EstimateThresholds(records)
			globalAvg := corpus.GlobalMeanFrequency(records)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "corpus:        %s\n", cfg.Corpus.Path)
			fmt.Fprintf(out, "records:       %d\n", len(records))
			fmt.Fprintf(out, "q1 (33rd pct): %.4f\n", thresholds.Q1)
			fmt.Fprintf(out, "q2 (66th pct): %.4f\n", thresholds.Q2)
			fmt.Fprintf(out, "global mean:   %.4f\n", globalAvg)
			return nil
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "reparse the corpus even if the cache is fresh")

	return cmd
}
