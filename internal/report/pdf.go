// Package report exports a simulation result as a one-page PDF.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"Quint/internal/classifier"
	"Quint/internal/model"
	"Quint/internal/render"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight

	chartHeight = 60.0
)

type resultReport struct {
	pdf     *fpdf.Fpdf
	tr      func(string) string
	alloc   model.Allocation
	outcome model.SimulationOutcome
}

// Generate renders the result screen as a PDF document.
func Generate(alloc model.Allocation, outcome model.SimulationOutcome) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	r := &resultReport{
		pdf:     pdf,
		tr:      pdf.UnicodeTranslatorFromDescriptor(""),
		alloc:   alloc,
		outcome: outcome,
	}

	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetTitle("Quint portfolio simulation", true)
	pdf.AddPage()

	r.addHeader()
	r.addAllocation()
	r.addChart()
	r.addMonthlyTable()
	r.addAssessment()
	r.addProfiles()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *resultReport) heading(text string) {
	r.pdf.Ln(4)
	r.pdf.SetFont("Arial", "B", 13)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, r.tr(text), "", 1, "L", false, 0, "")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
}

func (r *resultReport) addHeader() {
	p := r.outcome.Path
	a := r.outcome.Assessment

	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, "Your portfolio simulation", "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(120, 120, 120)
	at := r.outcome.SimulatedAt
	if at.IsZero() {
		at = time.Now()
	}
	r.pdf.CellFormat(contentWidth, 6, "Simulated "+at.Format("2 January 2006 15:04"), "", 1, "L", false, 0, "")

	r.pdf.Ln(4)
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(30, 30, 30)
	summary := fmt.Sprintf("Final value %s (%s over 1 year)", render.FormatMoney(p.FinalValue()), render.FormatPercent(a.ReturnPercent))
	r.pdf.CellFormat(contentWidth, 9, r.tr(summary), "", 1, "L", false, 0, "")
}

func (r *resultReport) addAllocation() {
	r.heading("Allocation")
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)
	for _, info := range model.Assets {
		w, _ := r.alloc.Weight(info.Key)
		r.pdf.CellFormat(contentWidth*0.7, 6, r.tr(info.Name), "1", 0, "L", true, 0, "")
		r.pdf.CellFormat(contentWidth*0.3, 6, fmt.Sprintf("%g%%", w), "1", 1, "R", false, 0, "")
	}
}

// addChart draws the portfolio line in blue and the market reference in grey.
func (r *resultReport) addChart() {
	r.heading("Performance over 12 months")

	series := [][]float64{r.outcome.Path.Values()}
	if r.outcome.Path.HasBenchmark {
		series = append(series, r.outcome.Path.BenchmarkValues())
	}
	lo, hi := series[0][0], series[0][0]
	for _, s := range series {
		for _, v := range s {
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	if hi == lo {
		hi, lo = hi+1, lo-1
	}

	x0, y0 := marginLeft, r.pdf.GetY()+2
	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.SetLineWidth(0.2)
	r.pdf.Rect(x0, y0, contentWidth, chartHeight, "D")

	step := contentWidth / float64(model.MonthCount-1)
	pos := func(i int, v float64) (float64, float64) {
		return x0 + float64(i)*step, y0 + chartHeight - (v-lo)/(hi-lo)*chartHeight
	}

	colors := [][3]int{{0, 102, 204}, {150, 150, 150}}
	r.pdf.SetLineWidth(0.6)
	for si, s := range series {
		c := colors[si]
		r.pdf.SetDrawColor(c[0], c[1], c[2])
		for i := 1; i < len(s); i++ {
			xa, ya := pos(i-1, s[i-1])
			xb, yb := pos(i, s[i])
			r.pdf.Line(xa, ya, xb, yb)
		}
	}
	r.pdf.SetLineWidth(0.2)

	r.pdf.SetFont("Arial", "", 7)
	r.pdf.SetTextColor(120, 120, 120)
	for i, label := range model.MonthLabels {
		x, _ := pos(i, lo)
		r.pdf.Text(x-2.5, y0+chartHeight+4, label)
	}
	r.pdf.Text(x0+1, y0+3, render.FormatMoney(int64(hi)))
	r.pdf.Text(x0+1, y0+chartHeight-1, render.FormatMoney(int64(lo)))
	r.pdf.SetXY(marginLeft, y0+chartHeight+6)

	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(0, 102, 204)
	r.pdf.CellFormat(40, 5, "Your Portfolio", "", 0, "L", false, 0, "")
	if r.outcome.Path.HasBenchmark {
		r.pdf.SetTextColor(150, 150, 150)
		r.pdf.CellFormat(60, 5, "Market Reference (comparison only)", "", 0, "L", false, 0, "")
	}
	r.pdf.Ln(6)
	r.pdf.SetTextColor(50, 50, 50)
}

func (r *resultReport) addMonthlyTable() {
	r.heading("Month by month")
	p := r.outcome.Path
	cols := 2
	if p.HasBenchmark {
		cols = 3
	}
	w := contentWidth / float64(cols)

	r.pdf.SetFont("Arial", "B", 9)
	r.pdf.SetFillColor(230, 236, 245)
	r.pdf.CellFormat(w, 6, "Month", "1", 0, "L", true, 0, "")
	r.pdf.CellFormat(w, 6, "Your Portfolio", "1", boolInt(cols == 2), "R", true, 0, "")
	if p.HasBenchmark {
		r.pdf.CellFormat(w, 6, "Market Reference", "1", 1, "R", true, 0, "")
	}

	r.pdf.SetFont("Arial", "", 9)
	for _, pt := range p.Points {
		r.pdf.CellFormat(w, 5.5, pt.Month, "1", 0, "L", false, 0, "")
		r.pdf.CellFormat(w, 5.5, render.FormatMoney(pt.Portfolio), "1", boolInt(cols == 2), "R", false, 0, "")
		if p.HasBenchmark {
			r.pdf.CellFormat(w, 5.5, render.FormatMoney(pt.Benchmark), "1", 1, "R", false, 0, "")
		}
	}

	s := r.outcome.Stats
	r.pdf.Ln(2)
	r.pdf.MultiCell(contentWidth, 5, r.tr(fmt.Sprintf(
		"Average month %s, best month %s (%s), worst month %s (%s), largest drop from a peak %s.",
		render.FormatFraction(s.MeanMonthlyReturn),
		s.BestMonth, render.FormatFraction(s.BestReturn),
		s.WorstMonth, render.FormatFraction(s.WorstReturn),
		render.FormatFraction(s.MaxDrawdown),
	)), "", "L", false)
}

func (r *resultReport) addAssessment() {
	a := r.outcome.Assessment
	r.heading("Assessment")
	r.pdf.CellFormat(contentWidth/2, 6, r.tr("Growth potential: "+string(a.Growth)), "", 0, "L", false, 0, "")
	r.pdf.CellFormat(contentWidth/2, 6, r.tr("Volatility: "+string(a.Volatility)), "", 1, "L", false, 0, "")
	r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Growth assets %g%%, stable assets %g%%", a.GrowthAssets, a.StableAssets), "", 1, "L", false, 0, "")
	r.pdf.Ln(1)
	r.pdf.MultiCell(contentWidth, 5, r.tr(a.Explanation), "", "L", false)
}

func (r *resultReport) addProfiles() {
	r.heading("How does this compare?")
	match, _ := classifier.MatchProfile(r.outcome.Assessment)
	for _, p := range classifier.Profiles() {
		style := ""
		if p.Name == match.Name {
			style = "B"
		}
		r.pdf.SetFont("Arial", style, 10)
		r.pdf.CellFormat(contentWidth, 6, r.tr(fmt.Sprintf("%s: growth %s, volatility %s", p.Name, p.Growth, p.Volatility)), "", 1, "L", false, 0, "")
		r.pdf.SetFont("Arial", "", 9)
		r.pdf.MultiCell(contentWidth, 4.5, r.tr(p.Summary+". "+p.Description), "", "L", false)
	}
	r.pdf.Ln(3)
	r.pdf.SetFont("Arial", "I", 8)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.MultiCell(contentWidth, 4, "Simulated for learning purposes only. The market reference is shown for comparison and is not a recommendation.", "", "L", false)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Writer saves reports into a directory.
type Writer struct {
	Dir string
	now func() time.Time
}

// NewWriter creates a Writer for dir. The directory is created on first export.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir, now: time.Now}
}

// Export writes the PDF and returns its path.
func (w *Writer) Export(alloc model.Allocation, outcome model.SimulationOutcome) (string, error) {
	data, err := Generate(alloc, outcome)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	name := fmt.Sprintf("quint-result-%s.pdf", w.now().Format("20060102-150405"))
	path := filepath.Join(w.Dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
