package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanado/internal/srs"
	"github.com/abhisek/kanado/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		st, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		agg := stats.NewAggregator(st.SymbolRepo(), st.ReviewRepo(), st.LessonBatchRepo())
		d, err := agg.Dashboard(cmd.Context(), time.Now().UTC())
		if err != nil {
			return err
		}

		fmt.Printf("Symbols:           %d\n", d.TotalItems)
		fmt.Printf("Due now:           %d\n", d.ReviewsDueNow)
		fmt.Printf("Due within 24h:    %d\n", d.ReviewsDueToday)
		fmt.Printf("Accuracy:          %d%%\n", d.AccuracyRate)
		fmt.Printf("Lessons remaining: %d\n", d.LessonsAvailable)
		fmt.Println()
		for _, tier := range srs.Tiers {
			fmt.Printf("%-12s %d\n", tier, d.StageDistribution[string(tier)])
		}
		return nil
	},
}
