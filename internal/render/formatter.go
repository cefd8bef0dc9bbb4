// Package render formats controller state as plain-text screens.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"Quint/internal/classifier"
	"Quint/internal/model"
)

const currency = "USD"

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// FormatMoney renders a whole-dollar amount, e.g. $104,250.00.
func FormatMoney(dollars int64) string {
	return money.New(dollars*100, currency).Display()
}

// FormatPercent renders a percentage with an explicit sign and two decimals.
func FormatPercent(pct float64) string {
	d := decimal.NewFromFloat(pct).Round(2)
	sign := ""
	if d.Sign() >= 0 {
		sign = "+"
	}
	return sign + d.StringFixed(2) + "%"
}

// FormatFraction renders a fraction (0.034) as a signed percentage (+3.40%).
func FormatFraction(f float64) string {
	return FormatPercent(f * 100)
}

// FormatLastSimulation renders "Today" for a timestamp on the same day as now,
// otherwise the date.
func FormatLastSimulation(at, now time.Time) string {
	if at.IsZero() {
		return ""
	}
	at = at.In(now.Location())
	y1, m1, d1 := at.Date()
	y2, m2, d2 := now.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	return at.Format("2006-01-02")
}

// Sparkline draws values as a row of block characters.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	var b strings.Builder
	for _, v := range values {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkBlocks)-1))
		}
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

// FormatJourney renders the level header: completed levels are checked and
// the current level is bracketed.
func FormatJourney(current int) string {
	parts := make([]string, 0, model.TotalLevels)
	for _, lvl := range model.Levels {
		switch {
		case lvl.Number < current:
			parts = append(parts, "✓")
		case lvl.Number == current:
			parts = append(parts, fmt.Sprintf("[%d]", lvl.Number))
		default:
			parts = append(parts, fmt.Sprintf("%d", lvl.Number))
		}
	}
	return "Quint | Journey " + strings.Join(parts, " ─ ")
}

// levelStatus mirrors the dashboard: completed, current, or locked.
func levelStatus(state model.ProgressionState, level int) string {
	switch {
	case state.IsCompleted(level):
		return "completed"
	case level == state.Level:
		return "current"
	case level > state.Level:
		return "locked"
	default:
		return "unlocked"
	}
}

// FormatDashboard renders the dashboard. preview may be nil.
func FormatDashboard(state model.ProgressionState, alloc model.Allocation, preview *model.SimulatedPath, now time.Time) string {
	var b strings.Builder
	b.WriteString(FormatJourney(state.Level) + "\n\n")

	b.WriteString("Your portfolio\n")
	if !state.HasSimulated || preview == nil {
		b.WriteString("  No simulation yet. Start Level 1 to build your first portfolio.\n\n")
	} else {
		b.WriteString(fmt.Sprintf("  Last simulation: %s\n", FormatLastSimulation(state.LastSimulationAt, now)))
		b.WriteString(fmt.Sprintf("  Allocation: %s\n", formatWeights(alloc)))
		b.WriteString(fmt.Sprintf("  Preview: %s  %s\n\n", Sparkline(preview.Values()), FormatMoney(preview.FinalValue())))
	}

	b.WriteString("Levels\n")
	for _, lvl := range model.Levels {
		b.WriteString(fmt.Sprintf("  %d. %-38s %s\n", lvl.Number, lvl.Title, levelStatus(state, lvl.Number)))
	}

	if state.IsCompleted(1) {
		b.WriteString(fmt.Sprintf("\nType 'start' to begin Level %d.\n", state.Level))
	} else {
		b.WriteString("\nType 'start' to begin Level 1.\n")
	}
	return b.String()
}

func formatWeights(a model.Allocation) string {
	parts := make([]string, 0, len(model.AssetClasses))
	for _, asset := range model.AssetClasses {
		w, _ := a.Weight(asset)
		parts = append(parts, fmt.Sprintf("%s %g%%", asset, w))
	}
	return strings.Join(parts, ", ")
}

// FormatAllocation renders the allocation screen.
func FormatAllocation(a model.Allocation) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("You have %s of virtual capital. Decide how to allocate it.\n\n", FormatMoney(100000)))
	for _, info := range model.Assets {
		w, _ := a.Weight(info.Key)
		b.WriteString(fmt.Sprintf("  %-6s %-18s %5g%%\n", info.Key, info.Name, w))
	}
	b.WriteString("  ─────────────────────────────────\n")
	b.WriteString(fmt.Sprintf("  Total allocation          %5g%%\n", a.Total()))
	if !a.Complete() {
		b.WriteString("\nPlease adjust your allocation to equal 100%\n")
	} else {
		b.WriteString("\nReady. Type 'simulate' to run your portfolio.\n")
	}
	return b.String()
}

// FormatAssetInfo renders the description of one asset class.
func FormatAssetInfo(info model.AssetInfo) string {
	return fmt.Sprintf("%s (%s)\n  %s\n", info.Name, info.Key, info.Description)
}

// FormatResult renders the simulation result screen.
func FormatResult(a model.Allocation, out model.SimulationOutcome) string {
	var b strings.Builder
	r := out.Assessment

	b.WriteString("Your portfolio simulation\n\n")
	b.WriteString(fmt.Sprintf("Final value: %s (%s over 1 year)\n\n", FormatMoney(out.Path.FinalValue()), FormatPercent(r.ReturnPercent)))

	if out.Path.HasBenchmark {
		b.WriteString(fmt.Sprintf("  %-5s %14s %14s\n", "Month", "Your Portfolio", "Market Ref."))
	} else {
		b.WriteString(fmt.Sprintf("  %-5s %14s\n", "Month", "Your Portfolio"))
	}
	for _, pt := range out.Path.Points {
		if out.Path.HasBenchmark {
			b.WriteString(fmt.Sprintf("  %-5s %14s %14s\n", pt.Month, FormatMoney(pt.Portfolio), FormatMoney(pt.Benchmark)))
		} else {
			b.WriteString(fmt.Sprintf("  %-5s %14s\n", pt.Month, FormatMoney(pt.Portfolio)))
		}
	}
	b.WriteString(fmt.Sprintf("  %s\n", Sparkline(out.Path.Values())))
	if out.Path.HasBenchmark {
		b.WriteString("  The market reference is shown for comparison only.\n")
	}

	b.WriteString("\nAssessment\n")
	b.WriteString(fmt.Sprintf("  Growth potential: %s\n", r.Growth))
	b.WriteString(fmt.Sprintf("  Volatility:       %s\n", r.Volatility))
	b.WriteString(fmt.Sprintf("  Growth assets %g%% | Stable assets %g%%\n", r.GrowthAssets, r.StableAssets))
	b.WriteString(fmt.Sprintf("\n%s\n", r.Explanation))

	s := out.Stats
	b.WriteString("\nMonth by month\n")
	b.WriteString(fmt.Sprintf("  Average month: %s | Swing (std dev): %s\n", FormatFraction(s.MeanMonthlyReturn), strings.TrimPrefix(FormatFraction(s.MonthlyVolatility), "+")))
	b.WriteString(fmt.Sprintf("  Best month: %s %s | Worst month: %s %s\n", s.BestMonth, FormatFraction(s.BestReturn), s.WorstMonth, FormatFraction(s.WorstReturn)))
	b.WriteString(fmt.Sprintf("  Largest drop from a peak: %s\n", strings.TrimPrefix(FormatFraction(s.MaxDrawdown), "+")))

	b.WriteString("\n" + FormatProfiles(&r))
	return b.String()
}

// FormatProfiles renders the reference profiles. When r is set, the profile
// with matching labels is marked.
func FormatProfiles(r *model.AssessmentResult) string {
	var b strings.Builder
	b.WriteString("How does this compare?\n")
	var match string
	if r != nil {
		if p, ok := classifier.MatchProfile(*r); ok {
			match = p.Name
		}
		b.WriteString(fmt.Sprintf("  %-13s growth %-8s volatility %-8s (based on your allocation choices)\n", "Your portfolio", r.Growth, r.Volatility))
	}
	for _, p := range classifier.Profiles() {
		marker := " "
		if p.Name == match {
			marker = "*"
		}
		b.WriteString(fmt.Sprintf(" %s%-13s growth %-8s volatility %-8s %s\n", marker, p.Name, p.Growth, p.Volatility, p.Summary))
		b.WriteString(fmt.Sprintf("   %s\n", p.Description))
	}
	return b.String()
}

var takeaways = []struct{ Title, Body string }{
	{"Different assets play different roles in a portfolio",
		"Some provide growth, others stability, and understanding these roles helps you build with intention."},
	{"Asset allocation affects both growth and risk",
		"The way you balance your investments determines how much your portfolio might grow and how volatile it could be."},
	{"There is no single correct portfolio",
		"Only informed decisions based on your understanding of how different assets work together."},
}

// FormatReview renders the review screen for the level just played.
func FormatReview(state model.ProgressionState) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Level %d complete\n", state.Level))
	b.WriteString("You've taken your first step into investing.\n\n")

	b.WriteString("What You Learned\n")
	for i, t := range takeaways {
		b.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, t.Title, t.Body))
	}

	b.WriteString("\nThink about it\n")
	b.WriteString("  What would you change if you tried again? There's no need to answer, just take a moment to reflect on what you learned.\n\n")

	b.WriteString("Your Progress\n")
	for _, lvl := range model.Levels {
		status := "locked"
		switch {
		case lvl.Number == state.Level || state.IsCompleted(lvl.Number):
			status = "complete"
		case lvl.Number == state.Level+1:
			status = "unlocked"
		}
		b.WriteString(fmt.Sprintf("  %d. %-38s %s\n", lvl.Number, lvl.Title, status))
	}
	b.WriteString(fmt.Sprintf("\nType 'next' to continue to Level %d or 'retry' to try again.\n", state.Level+1))
	return b.String()
}
