package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
)

// PayslipLine is one labelled amount on the payslip.
type PayslipLine struct {
	Label  string
	Amount string
}

// PayslipData is everything the renderer needs; amounts arrive preformatted
// so the renderer stays free of money arithmetic.
type PayslipData struct {
	CompanyName  string
	EmployeeName string
	EmployeeCode string
	Department   string
	Position     string
	PeriodStart  string
	PeriodEnd    string
	Currency     string
	WorkDays     int
	Earnings     []PayslipLine
	Deductions   []PayslipLine
	GrossPay     string
	NetPay       string
}

// PayslipRenderer produces the payslip document bytes.
type PayslipRenderer interface {
	RenderPayslip(data PayslipData) ([]byte, error)
}

type payslipRenderer struct{}

func NewPayslipRenderer() PayslipRenderer {
	return &payslipRenderer{}
}

func (r *payslipRenderer) RenderPayslip(data PayslipData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, data.CompanyName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, "Payslip", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Employee and period block
	pdf.SetFont("Helvetica", "", 10)
	left := [][2]string{
		{"Employee", data.EmployeeName},
		{"Code", data.EmployeeCode},
		{"Department", data.Department},
		{"Position", data.Position},
	}
	right := [][2]string{
		{"Period start", data.PeriodStart},
		{"Period end", data.PeriodEnd},
		{"Work days", fmt.Sprintf("%d", data.WorkDays)},
		{"Currency", data.Currency},
	}
	for i := range left {
		pdf.CellFormat(28, 6, left[i][0], "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, left[i][1], "", 0, "L", false, 0, "")
		pdf.CellFormat(28, 6, right[i][0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, right[i][1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	r.renderSection(pdf, "Earnings", data.Earnings)
	r.renderSection(pdf, "Deductions", data.Deductions)

	// Totals
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(120, 8, "Gross pay", "T", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, data.GrossPay, "T", 1, "R", false, 0, "")
	pdf.CellFormat(120, 8, "Net pay", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, data.NetPay, "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *payslipRenderer) renderSection(pdf *gofpdf.Fpdf, title string, lines []PayslipLine) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 7, title, "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range lines {
		pdf.CellFormat(120, 6, line.Label, "LR", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, line.Amount, "LR", 1, "R", false, 0, "")
	}
	pdf.CellFormat(0, 0, "", "T", 1, "", false, 0, "")
	pdf.Ln(3)
}
