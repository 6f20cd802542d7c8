package payroll

import (
	"strconv"

	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/ui/uikit"
)

// Fields are the adjustable amounts, kept as the raw input strings until
// submit. Base and net salary are shown read-only.
type Fields struct {
	Allowances string `json:"allowances"`
	Deductions string `json:"deductions"`
	Bonuses    string `json:"bonuses"`
}

type Form struct {
	mode     uikit.FormMode
	open     bool
	recordID string
	record   v1.PayrollDTO
	fields   Fields
	errors   uikit.FieldErrors
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) OpenUpdate(p v1.PayrollDTO) {
	f.populate(uikit.ModeUpdate, p)
}

func (f *Form) OpenView(p v1.PayrollDTO) {
	f.populate(uikit.ModeView, p)
}

func (f *Form) populate(mode uikit.FormMode, p v1.PayrollDTO) {
	f.mode = mode
	f.open = true
	f.recordID = p.ID
	f.record = p
	f.fields = Fields{
		Allowances: strconv.FormatFloat(p.Allowances, 'f', 2, 64),
		Deductions: strconv.FormatFloat(p.Deductions, 'f', 2, 64),
		Bonuses:    strconv.FormatFloat(p.Bonuses, 'f', 2, 64),
	}
	f.errors = nil
}

func (f *Form) Mode() uikit.FormMode      { return f.mode }
func (f *Form) IsOpen() bool              { return f.open }
func (f *Form) ReadOnly() bool            { return f.mode == uikit.ModeView }
func (f *Form) Errors() uikit.FieldErrors { return f.errors }
func (f *Form) Values() Fields            { return f.fields }
func (f *Form) Record() v1.PayrollDTO     { return f.record }

func (f *Form) SetField(name, value string) {
	if f.ReadOnly() {
		return
	}
	switch name {
	case "allowances":
		f.fields.Allowances = value
	case "deductions":
		f.fields.Deductions = value
	case "bonuses":
		f.fields.Bonuses = value
	}
}

func (f *Form) Close() {
	f.open = false
	f.errors = nil
}

func parseAmount(fe uikit.FieldErrors, field, raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fe.Add(field, "Must be a number")
		return 0
	}
	if v < 0 {
		fe.Add(field, "Must not be negative")
		return 0
	}
	return v
}

func (f *Form) Submit(onSubmit func(id string, in v1.PayrollEditInput) error) error {
	if f.ReadOnly() {
		f.Close()
		return nil
	}

	fe := uikit.FieldErrors{}
	in := v1.PayrollEditInput{
		Allowances: parseAmount(fe, "allowances", f.fields.Allowances),
		Deductions: parseAmount(fe, "deductions", f.fields.Deductions),
		Bonuses:    parseAmount(fe, "bonuses", f.fields.Bonuses),
	}
	f.errors = fe
	if !fe.OK() {
		return fe
	}

	if err := onSubmit(f.recordID, in); err != nil {
		return err
	}

	f.Close()
	return nil
}
