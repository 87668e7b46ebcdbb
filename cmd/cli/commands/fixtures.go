package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ojbennett/fpl-squad-picker/pkg/core/services"
)

// FixturesCmd creates the fixtures command
func FixturesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Show the match schedule for the upcoming gameweek",
		RunE: func(cmd *cobra.Command, args []string) error {
			matchday, _ := cmd.Flags().GetInt("matchday")

			app.Logger.Debug("fixtures command", zap.Int("matchday", matchday))

			result, err := services.ViewFixtures(
				app.Ctx,
				app.FixturesClient,
				app.Source,
				app.Cfg,
				app.Logger,
				matchday,
			)
			if err != nil {
				return fmt.Errorf("fixtures lookup failed: %w", err)
			}

			fmt.Printf("\n📅 Fixtures - Matchday %d\n\n", result.Matchday)
			if !result.NextDeadline.IsZero() {
				fmt.Printf("Deadline: %s\n\n", result.NextDeadline.Format("2006-01-02 15:04 (Monday)"))
			}

			for _, match := range result.Matches {
				fmt.Printf("  %s vs %s", match.HomeTeam, match.AwayTeam)
				if match.UTCDate != "" {
					fmt.Printf("  (%s)", match.UTCDate)
				}
				fmt.Println()
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int("matchday", 0, "Matchday to fetch (default: the predictions' gameweek)")

	return cmd
}
