package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/utils"
)

// PayslipPDF renders one payroll record as a downloadable payslip.
func PayslipPDF(p v1.PayrollDTO) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", p.Employee.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", p.Employee.Email))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %d/%d", p.Month, p.Year))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Base salary: %.2f", p.BaseSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Allowances: %.2f", p.Allowances))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Bonuses: %.2f", p.Bonuses))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Deductions: %.2f", p.Deductions))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Net salary: %.2f", p.NetSalary))
	if p.IsPaid {
		pdf.Ln(10)
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Paid on %s", utils.DisplayDate(p.PaymentDate.Time)))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
