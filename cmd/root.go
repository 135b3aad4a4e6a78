package cmd

import (
	"github.com/abhisek/worksheetz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "worksheetz",
	Short: "Homework grading companion for kids",
	Long:  "Worksheetz grades photographed worksheets: checks answers with typo tolerance, awards partial credit, and tracks what to practice next.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORKSHEETZ_DB env var)")

	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WORKSHEETZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
