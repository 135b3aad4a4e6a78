package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetz/internal/answercheck"
)

var checkCmd = &cobra.Command{
	Use:   "check <correct> <answer>",
	Short: "Check one answer against a correct answer with typo tolerance",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		maxDist, _ := cmd.Flags().GetInt("max-distance")
		m := answercheck.FuzzyMatch(args[1], args[0], maxDist)

		out := cmd.OutOrStdout()
		switch {
		case m.Ok && m.Distance == 0:
			fmt.Fprintln(out, "Correct!")
		case m.Ok:
			fmt.Fprintln(out, m.Feedback)
		default:
			fmt.Fprintf(out, "Not a match (edit distance %d, correct answer: %q)\n", m.Distance, args[0])
		}
	},
}

func init() {
	checkCmd.Flags().Int("max-distance", 2, "Maximum edit distance accepted for longer answers")
}
