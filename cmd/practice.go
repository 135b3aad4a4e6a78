package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetz/internal/practice"
	"github.com/abhisek/worksheetz/internal/store"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "List the answers the learner keeps missing",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo, err := st.EventRepo()
		if err != nil {
			return err
		}

		missed, err := repo.QueryMissedAttempts(cmd.Context(), store.QueryOpts{Limit: 200})
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		items := practice.BuildList(missed, limit)

		out := cmd.OutOrStdout()
		if len(items) == 0 {
			fmt.Fprintln(out, "Nothing to practice. Great work!")
			return nil
		}
		for _, it := range items {
			fmt.Fprintf(out, "%s\n  answer: %s  (missed %d×, last wrote %q)\n",
				it.QuestionText, it.Correct, it.Misses, it.LastAnswer)
		}
		return nil
	},
}

func init() {
	practiceCmd.Flags().Int("limit", practice.DefaultLimit, "Maximum practice items to show")
}
