package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ojbennett/fpl-squad-picker/pkg/core/services"
)

// TopPlayersCmd creates the topPlayers command
func TopPlayersCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topPlayers",
		Short: "Show the highest-projected players for the upcoming gameweek",
		RunE: func(cmd *cobra.Command, args []string) error {
			tops, _ := cmd.Flags().GetInt("tops")
			dataPath, _ := cmd.Flags().GetString("data")
			writeReport, _ := cmd.Flags().GetBool("out")

			app.Logger.Debug("topPlayers command",
				zap.Int("tops", tops),
				zap.String("data", dataPath))

			result, err := services.TopPlayers(
				app.Ctx,
				app.SourceFor(dataPath),
				app.Cfg,
				app.Logger,
				tops,
			)
			if err != nil {
				return fmt.Errorf("top players failed: %w", err)
			}

			report := renderTopPlayers(result)
			fmt.Print(report)

			if writeReport {
				fileName := result.ReportFileName()
				if err := os.WriteFile(fileName, []byte(report), 0644); err != nil {
					return fmt.Errorf("failed to write report: %w", err)
				}
				fmt.Printf("Report saved as %s\n", fileName)
			}

			return nil
		},
	}

	cmd.Flags().Int("tops", 32, "Number of top players to show")
	cmd.Flags().String("data", "", "Override the predictions CSV path")
	cmd.Flags().Bool("out", false, "Write the report to a gameweek-named file")

	return cmd
}

func renderTopPlayers(result *services.TopPlayersResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nFPL Prediction - Top %d Players", result.Tops)
	if result.Gameweek > 0 {
		fmt.Fprintf(&b, " (Gameweek %d)", result.Gameweek)
	}
	fmt.Fprintf(&b, "\n\n")

	nameColWidth := 12
	teamColWidth := 10
	for _, player := range result.Players {
		if len(player.Name) > nameColWidth {
			nameColWidth = len(player.Name)
		}
		if len(player.Team) > teamColWidth {
			teamColWidth = len(player.Team)
		}
	}
	nameColWidth += 2
	teamColWidth += 2

	fmt.Fprintf(&b, "%4s  %-*s  %-*s  %-12s  %8s  %8s\n",
		"#",
		nameColWidth, "Player",
		teamColWidth, "Team",
		"Position",
		"Price", "Points")
	fmt.Fprintln(&b, strings.Repeat("-", 4+nameColWidth+teamColWidth+36))

	for i, player := range result.Players {
		fmt.Fprintf(&b, "%4d  %-*s  %-*s  %-12s  %7.1fM  %8.1f\n",
			i+1,
			nameColWidth, player.Name,
			teamColWidth, player.Team,
			string(player.Position),
			player.Price, player.ProjectedScore)
	}
	fmt.Fprintln(&b)

	return b.String()
}
