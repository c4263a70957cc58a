package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokerodds/odds"
	"github.com/lox/pokerodds/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func renderHeader(w io.Writer, req odds.Request) {
	category := poker.CategoryUnknown
	if len(req.Hole) == 2 {
		category = poker.CategorizeHoleCards(req.Hole[0], req.Hole[1])
	}

	fmt.Fprintf(w, "%s  %s %s\n",
		headerStyle.Render("hand "),
		handStyle.Render(formatSymbols(req.Hole)),
		dimStyle.Render("("+string(category)+")"))
	if len(req.Community) > 0 {
		fmt.Fprintf(w, "%s  %s\n", headerStyle.Render("board"), handStyle.Render(formatSymbols(req.Community)))
	}
	fmt.Fprintln(w)
}

func renderFooter(w io.Writer, trials int, seed int64, elapsed time.Duration) {
	fmt.Fprintf(w, "\n%s\n", dimStyle.Render(fmt.Sprintf("%d trials in %v (seed %d)", trials, elapsed.Truncate(time.Millisecond), seed)))
}

// renderCategories prints the category distribution, strongest first
func renderCategories(w io.Writer, req odds.Request, dist odds.Distribution, all bool) {
	renderHeader(w, req)

	cats := poker.LegacyCategories
	if all {
		cats = poker.Categories()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("category"),
		headerStyle.Render("chance"),
		headerStyle.Render("±se"))

	for i := len(cats) - 1; i >= 0; i-- {
		cat := cats[i]
		pct := dist.Percent(cat)
		value := "."
		if dist.Counts[cat] > 0 {
			value = fmt.Sprintf("%.2f%%", pct)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			categoryStyle.Render(cat.String()),
			winStyle.Render(value),
			dimStyle.Render(fmt.Sprintf("%.2f", dist.StandardError(cat))))
	}
	_ = tw.Flush()

	renderFooter(w, dist.Trials, dist.Seed, dist.Elapsed)
}

// renderWin prints the outcome split and equity of a win-probability run
func renderWin(w io.Writer, req odds.Request, result odds.WinResult) {
	renderHeader(w, req)

	lower, upper := result.ConfidenceInterval()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("opponents"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"),
		headerStyle.Render("loss"),
		headerStyle.Render("equity"))
	fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
		result.Opponents,
		winStyle.Render(fmt.Sprintf("%.1f%%", result.WinProbability())),
		tieStyle.Render(fmt.Sprintf("%.1f%%", result.TieProbability())),
		lossStyle.Render(fmt.Sprintf("%.1f%%", result.LossProbability())),
		handStyle.Render(fmt.Sprintf("%.1f%%", result.Equity())))
	_ = tw.Flush()

	fmt.Fprintf(w, "%s\n", dimStyle.Render(fmt.Sprintf("win 95%% CI %.1f%% - %.1f%%", lower, upper)))
	renderFooter(w, result.Trials, result.Seed, result.Elapsed)
}

func formatSymbols(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = card.Symbol()
	}
	return strings.Join(parts, " ")
}

type categoriesReport struct {
	Hand        string             `json:"hand"`
	Board       string             `json:"board,omitempty"`
	Trials      int                `json:"trials"`
	Seed        int64              `json:"seed"`
	ElapsedMS   int64              `json:"elapsedMs"`
	Percentages map[string]float64 `json:"percentages"`
	Counts      map[string]int     `json:"counts"`
}

func newCategoriesReport(req odds.Request, dist odds.Distribution, all bool) categoriesReport {
	report := categoriesReport{
		Hand:        poker.FormatCards(req.Hole),
		Board:       poker.FormatCards(req.Community),
		Trials:      dist.Trials,
		Seed:        dist.Seed,
		ElapsedMS:   dist.Elapsed.Milliseconds(),
		Percentages: dist.Legacy(),
		Counts:      make(map[string]int, poker.NumCategories),
	}
	if all {
		report.Percentages = dist.All()
	}
	for _, cat := range poker.Categories() {
		report.Counts[cat.Label()] = dist.Counts[cat]
	}
	return report
}

type winReport struct {
	Hand            string  `json:"hand"`
	Board           string  `json:"board,omitempty"`
	Opponents       int     `json:"opponents"`
	Trials          int     `json:"trials"`
	Seed            int64   `json:"seed"`
	ElapsedMS       int64   `json:"elapsedMs"`
	WinProbability  float64 `json:"winProbability"`
	TieProbability  float64 `json:"tieProbability"`
	LossProbability float64 `json:"lossProbability"`
	Equity          float64 `json:"equity"`
}

func newWinReport(req odds.Request, result odds.WinResult) winReport {
	return winReport{
		Hand:            poker.FormatCards(req.Hole),
		Board:           poker.FormatCards(req.Community),
		Opponents:       result.Opponents,
		Trials:          result.Trials,
		Seed:            result.Seed,
		ElapsedMS:       result.Elapsed.Milliseconds(),
		WinProbability:  result.WinProbability(),
		TieProbability:  result.TieProbability(),
		LossProbability: result.LossProbability(),
		Equity:          result.Equity(),
	}
}
