package cmd

import (
	"bufio"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yumiuse/lexilevel/internal"
	"github.com/yumiuse/lexilevel/internal/config"
)

func NewRootCmd(cfg *config.Config, db *sql.DB) *cobra.Command {
	var wordListPath string
	var refresh bool

	cmd := &cobra.Command{
		Use:   "lexilevel <word1> <word2> ...",
		Short: "Predict CEFR difficulty levels for French vocabulary words",
		Long: `lexilevel predicts a difficulty level for each given French word.
Words found in the reference corpus go through the trained classifier;
unknown words fall back to frequency-quantile buckets (Level 1-3).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			words := args
			if wordListPath != "" {
				fromFile, err := readWordList(wordListPath)
				if err != nil {
					return err
				}
				words = append(words, fromFile...)
			}
			if len(words) == 0 {
				return fmt.Errorf("no words given")
			}

			rsv, err := internal.GenerateResolver(cfg, db, refresh)
			if err != nil {
				return err
			}

			results, err := rsv.Resolve(words)
			if err != nil {
				return err
			}
			for _, res := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", res.Word, res.Label)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&wordListPath, "file", "f", "", "read additional words from a file, one per line")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "reparse the corpus even if the cache is fresh")

	cmd.AddCommand(newStatsCmd(cfg, db))

	return cmd
}

func Execute(cfg *config.Config, db *sql.DB) error {
	return NewRootCmd(cfg, db).Execute()
}

// readWordList loads newline-separated words, skipping blank lines.
func readWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return words, nil
}
