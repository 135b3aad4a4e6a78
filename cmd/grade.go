package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheetz/internal/grader"
	"github.com/abhisek/worksheetz/internal/report"
	"github.com/abhisek/worksheetz/internal/store"
	"github.com/abhisek/worksheetz/internal/worksheet"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <worksheet.json> <answers.json>",
	Short: "Grade an answer sheet against an extracted worksheet",
	Args:  cobra.ExactArgs(2),
	RunE:  runGrade,
}

func init() {
	gradeCmd.Flags().Bool("json", false, "Print the report as JSON instead of styled text")
	gradeCmd.Flags().Bool("no-save", false, "Grade without recording attempt history")
}

func runGrade(cmd *cobra.Command, args []string) error {
	wsData, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read worksheet: %w", err)
	}
	ansData, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("read answer sheet: %w", err)
	}

	ws, err := worksheet.Parse(wsData)
	if err != nil {
		return err
	}
	answers, err := worksheet.ParseAnswers(ansData)
	if err != nil {
		return err
	}

	var events store.EventRepo
	if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		events, err = st.EventRepo()
		if err != nil {
			return err
		}
	}

	svc := grader.NewService(events)
	rep, err := svc.GradeWorksheet(cmd.Context(), ws.Title, ws.Questions, answers)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	fmt.Fprint(cmd.OutOrStdout(), report.Render(rep))
	return nil
}

// openStore opens the SQLite store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
