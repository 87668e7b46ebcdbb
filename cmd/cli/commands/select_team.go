package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ojbennett/fpl-squad-picker/pkg/core/model"
	"github.com/ojbennett/fpl-squad-picker/pkg/core/services"
)

// SelectTeamCmd creates the selectTeam command
func SelectTeamCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selectTeam",
		Short: "Select the best squad within the budget",
		Long:  "Run the greedy selection algorithm over the gameweek's predictions to pick a squad under budget, position and club constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			budget, _ := cmd.Flags().GetFloat64("budget")
			autoSelectBench, _ := cmd.Flags().GetBool("auto-select-bench")
			dataPath, _ := cmd.Flags().GetString("data")

			app.Logger.Debug("selectTeam command",
				zap.Float64("budget", budget),
				zap.Bool("auto_select_bench", autoSelectBench),
				zap.String("data", dataPath))

			result, err := services.SelectTeam(
				app.Ctx,
				app.SourceFor(dataPath),
				app.Cfg,
				app.Logger,
				services.SelectTeamOptions{
					Budget:          budget,
					AutoSelectBench: autoSelectBench,
				},
			)
			if err != nil {
				return fmt.Errorf("team selection failed: %w", err)
			}

			// Display header
			fmt.Printf("\n⚽ Squad Selection Results\n\n")
			if result.Gameweek > 0 {
				fmt.Printf("Gameweek:  %d\n", result.Gameweek)
			}
			fmt.Printf("Budget:    %.1fM\n", result.Constraints.Budget)
			if autoSelectBench {
				fmt.Printf("Mode:      bench auto-select enabled\n")
			}
			if !result.NextDeadline.IsZero() {
				fmt.Printf("Deadline:  %s\n", result.NextDeadline.Format("2006-01-02 15:04 (Monday)"))
			}
			fmt.Println()

			printRoster(result.Roster)

			fmt.Printf("\n%s\n\n", result.Summary)

			return nil
		},
	}

	cmd.Flags().Float64("budget", 0, "Total budget in millions (default from config)")
	cmd.Flags().Bool("auto-select-bench", false, "Pre-fill the cheapest player per position as bench")
	cmd.Flags().String("data", "", "Override the predictions CSV path")

	return cmd
}

// printRoster renders the selected squad as a table, grouped by position
func printRoster(roster *model.Roster) {
	const (
		colorReset = "\033[0m"
		colorBold  = "\033[1m"
	)

	// Calculate name and team column widths
	nameColWidth := 12
	teamColWidth := 10
	for _, player := range roster.Players {
		if len(player.Name) > nameColWidth {
			nameColWidth = len(player.Name)
		}
		if len(player.Team) > teamColWidth {
			teamColWidth = len(player.Team)
		}
	}
	nameColWidth += 2
	teamColWidth += 2

	fmt.Printf("%s%-12s  %-*s  %-*s  %8s  %8s%s\n",
		colorBold,
		"Position",
		nameColWidth, "Player",
		teamColWidth, "Team",
		"Price", "Points",
		colorReset)
	fmt.Println(strings.Repeat("-", 12+nameColWidth+teamColWidth+24))

	for _, pos := range model.Positions {
		for _, player := range roster.ByPosition[pos] {
			fmt.Printf("%-12s  %-*s  %-*s  %7.1fM  %8.1f\n",
				string(pos),
				nameColWidth, player.Name,
				teamColWidth, player.Team,
				player.Price, player.ProjectedScore)
		}
	}
}
