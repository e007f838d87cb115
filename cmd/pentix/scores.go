package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pentix/internal/platform/tui"
	"github.com/vovakirdan/pentix/internal/storage"
)

var (
	flagLimit       int
	flagRuns        bool
	flagInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the best score of each player, or the most recent games
with --runs.

Examples:
  pentix scores
  pentix scores --limit 5
  pentix scores --runs
  pentix scores -i`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "List recent games instead of the leaderboard")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagInteractive {
		view := tui.ViewLeaderboard
		if flagRuns {
			view = tui.ViewRuns
		}
		width, height := terminalSize()
		return tui.RunScoreboard(store, view, flagLimit, width, height)
	}

	if flagRuns {
		return printRuns(store)
	}
	return printLeaderboard(store)
}

func printLeaderboard(store *storage.Store) error {
	entries, err := store.Leaderboard(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("High Scores - Pentix"))
	if len(entries) == 0 {
		fmt.Println(dimStyle.Render("No scores recorded yet. Run 'pentix play' to set the first one!"))
		return nil
	}

	t := newTable("Rank", "Player", "Score")
	for i, e := range entries {
		t.Row(strconv.Itoa(i+1), e.Player, strconv.Itoa(e.Score))
	}
	fmt.Println(t)
	return nil
}

func printRuns(store *storage.Store) error {
	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("Recent Games - Pentix"))
	if len(runs) == 0 {
		fmt.Println(dimStyle.Render("No games recorded yet."))
		return nil
	}

	t := newTable("Date", "Player", "Score", "Lines", "Run")
	for _, r := range runs {
		t.Row(
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Player,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Lines),
			shortID(r.ID),
		)
	}
	fmt.Println(t)
	return nil
}

// shortID trims a run id to its first eight characters for display.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
