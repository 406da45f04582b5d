package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rafaeldias2025/oficial-27/internal/scoring"
)

type RankingSource interface {
	WeeklyRanking(now time.Time, location *time.Location) (scoring.RankingPeriod, error)
	RankingForRange(from time.Time, to time.Time, location *time.Location) (scoring.RankingPeriod, error)
}

type rankingStyles struct {
	header lipgloss.Style
	podium lipgloss.Style
	row    lipgloss.Style
	dim    lipgloss.Style
}

func newRankingStyles() rankingStyles {
	return rankingStyles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		podium: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		row:    lipgloss.NewStyle(),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// RunRankingCommand prints the ranking for from..to, or the default window
// ending today when both are zero.
func RunRankingCommand(source RankingSource, out io.Writer, from time.Time, to time.Time, location *time.Location) error {
	var (
		period scoring.RankingPeriod
		err    error
	)
	if from.IsZero() && to.IsZero() {
		period, err = source.WeeklyRanking(time.Now(), location)
	} else {
		period, err = source.RankingForRange(from, to, location)
	}
	if err != nil {
		return fmt.Errorf("load ranking: %w", err)
	}

	fmt.Fprint(out, RenderRanking(period))
	return nil
}

func RenderRanking(period scoring.RankingPeriod) string {
	styles := newRankingStyles()
	var builder strings.Builder

	builder.WriteString(styles.header.Render(fmt.Sprintf("Ranking %s .. %s", period.StartDate, period.EndDate)))
	builder.WriteString("\n")
	if len(period.Rankings) == 0 {
		builder.WriteString(styles.dim.Render("No scores in this window."))
		builder.WriteString("\n")
		return builder.String()
	}

	builder.WriteString(styles.dim.Render(fmt.Sprintf("%-4s %-24s %8s %8s %5s", "#", "Name", "Average", "Points", "Days")))
	builder.WriteString("\n")
	for _, entry := range period.Rankings {
		style := styles.row
		if entry.Position <= 3 {
			style = styles.podium
		}
		line := fmt.Sprintf("%-4d %-24s %8.2f %8d %5d",
			entry.Position,
			truncateName(entry.Name, 24),
			entry.WeeklyAverage,
			entry.WeeklyPoints,
			len(entry.DailyTotals),
		)
		builder.WriteString(style.Render(line))
		builder.WriteString("\n")
	}

	builder.WriteString(styles.dim.Render(fmt.Sprintf("%d participants, average %.2f, top %d",
		period.TotalParticipants, period.AveragePoints, period.TopScore)))
	builder.WriteString("\n")
	return builder.String()
}

func truncateName(name string, width int) string {
	runes := []rune(name)
	if len(runes) <= width {
		return name
	}
	return string(runes[:width-1]) + "…"
}
