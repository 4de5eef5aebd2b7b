// Package report renders finished battles as printable PDF after-action
// reports.
package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/samdwyer/cavebattle/internal/game"
)

const (
	margin    = 40.0
	lineH     = 14.0
	titleSize = 18.0
	headSize  = 12.0
	fontSize  = 9.0
)

// Write renders s as a one-or-more page A4 report to w.
func Write(w io.Writer, s game.Summary) error {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle("Battle report "+s.BattleID.String(), false)
	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()
	width := pageW - 2*margin

	pdf.SetTextColor(40, 25, 15)
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.CellFormat(width, 24, "Battle Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", fontSize)
	pdf.CellFormat(width, lineH, "Battle "+s.BattleID.String(), "", 1, "L", false, 0, "")
	pdf.CellFormat(width, lineH,
		fmt.Sprintf("Outcome: %s after %d turns (tier %d)", s.Outcome, s.Turns, s.Tier),
		"", 1, "L", false, 0, "")
	pdf.CellFormat(width, lineH,
		fmt.Sprintf("Rewards: %d exp, %d gold", s.Rewards.Exp, s.Rewards.Gold),
		"", 1, "L", false, 0, "")
	pdf.Ln(lineH / 2)

	roster(pdf, width, "Party", s.Party, s.LevelUps)
	roster(pdf, width, "Enemies", s.Enemies, nil)

	heading(pdf, width, "Battle Log")
	pdf.SetFont("Courier", "", fontSize)
	for _, line := range s.Log {
		pdf.MultiCell(width, lineH-2, line, "", "L", false)
	}

	return pdf.Output(w)
}

func heading(pdf *gofpdf.Fpdf, width float64, title string) {
	pdf.SetFont("Helvetica", "B", headSize)
	pdf.SetDrawColor(80, 50, 30)
	pdf.CellFormat(width, lineH+4, title, "B", 1, "L", false, 0, "")
	pdf.Ln(4)
}

// roster draws one table row per combatant.
func roster(pdf *gofpdf.Fpdf, width float64, title string, rows []game.CombatantSummary, levelUps map[string]int) {
	heading(pdf, width, title)

	cols := []float64{width * 0.34, width * 0.12, width * 0.18, width * 0.18, width * 0.18}
	pdf.SetFont("Helvetica", "B", fontSize)
	pdf.SetFillColor(245, 235, 210)
	for i, h := range []string{"Name", "Level", "HP", "MP", "Status"} {
		pdf.CellFormat(cols[i], lineH, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", fontSize)
	for _, r := range rows {
		status := "standing"
		if r.HP == 0 {
			status = "defeated"
		}
		if n := levelUps[r.Name]; n > 0 {
			status = fmt.Sprintf("+%d level", n)
		}
		cells := []string{
			r.Name,
			fmt.Sprint(r.Level),
			fmt.Sprintf("%d/%d", r.HP, r.MaxHP),
			fmt.Sprintf("%d/%d", r.MP, r.MaxMP),
			status,
		}
		for i, c := range cells {
			align := "C"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(cols[i], lineH, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(lineH / 2)
}
