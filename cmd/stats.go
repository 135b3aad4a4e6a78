package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetz/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show accuracy per question type and recent sessions",
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

		out := cmd.OutOrStdout()

		stats, err := repo.TypeAccuracy(cmd.Context())
		if err != nil {
			return err
		}
		if len(stats) == 0 {
			fmt.Fprintln(out, "No graded worksheets yet.")
			return nil
		}

		types := make([]string, 0, len(stats))
		for t := range stats {
			types = append(types, t)
		}
		sort.Strings(types)

		fmt.Fprintln(out, "Accuracy by question type:")
		for _, t := range types {
			s := stats[t]
			fmt.Fprintf(out, "  %-24s %3d/%3d (%.0f%%)\n", t, s.Correct, s.Attempts, s.Accuracy()*100)
		}

		sessions, err := repo.QuerySessions(cmd.Context(), store.QueryOpts{Limit: 5})
		if err != nil {
			return err
		}
		if len(sessions) > 0 {
			fmt.Fprintln(out, "\nRecent sessions:")
			for _, s := range sessions {
				title := s.WorksheetTitle
				if title == "" {
					title = "(untitled)"
				}
				fmt.Fprintf(out, "  %s  %s  %.0f%%  %d★\n",
					s.Timestamp.Format("2006-01-02"), title, s.Percent, s.Stars)
			}
		}
		return nil
	},
}
