package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all review progress and reopen every lesson",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force && !confirm("This deletes all review progress. Continue? [y/N] ") {
			fmt.Println("Aborted.")
			return nil
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		deleted, err := st.ReviewRepo().DeleteAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("delete reviews: %w", err)
		}
		if err := st.LessonBatchRepo().ResetAll(cmd.Context()); err != nil {
			return fmt.Errorf("reopen lessons: %w", err)
		}

		fmt.Printf("Deleted %d review records and reopened all lessons.\n", deleted)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "skip the confirmation prompt")
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
