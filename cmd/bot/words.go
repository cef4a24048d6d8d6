package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/charades/internal/tasks"
	"github.com/KirkDiggler/charades/internal/wordbank"
	"github.com/spf13/cobra"
)

func newWordsCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "words",
		Short: "Load a word bank and print the number of words per task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = cfg.WordsDir
			}

			bank, err := wordSource(dir).Load()
			if err != nil {
				return err
			}

			catalog := tasks.Default()
			counts := bank.Counts()
			out := cmd.OutOrStdout()
			for _, id := range catalog.IDs() {
				task, _ := catalog.Get(id)
				fmt.Fprintf(out, "%d\t%d\t%s\n", id, counts[id], task.Description)
			}
			fmt.Fprintf(out, "total\t%d\n", bank.Total())
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Word bank directory (env: WORDS_DIR, default: bundled bank)")

	return cmd
}

// wordSource reads the word bank from dir, or the bundled one when dir is empty
func wordSource(dir string) *wordbank.Source {
	if dir == "" {
		return wordbank.Embedded()
	}
	return &wordbank.Source{
		FS:      os.DirFS(dir),
		Catalog: tasks.Default(),
	}
}
