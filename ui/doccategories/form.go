package doccategories

import (
	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/ui/uikit"
)

type Fields struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

type Form struct {
	mode     uikit.FormMode
	open     bool
	recordID string
	fields   Fields
	errors   uikit.FieldErrors
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) OpenCreate() {
	f.mode = uikit.ModeCreate
	f.open = true
	f.recordID = ""
	f.fields = Fields{IsActive: true}
	f.errors = nil
}

func (f *Form) OpenUpdate(c v1.DocumentCategoryDTO) {
	f.populate(uikit.ModeUpdate, c)
}

func (f *Form) OpenView(c v1.DocumentCategoryDTO) {
	f.populate(uikit.ModeView, c)
}

func (f *Form) populate(mode uikit.FormMode, c v1.DocumentCategoryDTO) {
	f.mode = mode
	f.open = true
	f.recordID = c.ID
	f.fields = Fields{Name: c.Name, Description: c.Description, IsActive: c.IsActive}
	f.errors = nil
}

func (f *Form) Mode() uikit.FormMode      { return f.mode }
func (f *Form) IsOpen() bool              { return f.open }
func (f *Form) ReadOnly() bool            { return f.mode == uikit.ModeView }
func (f *Form) Errors() uikit.FieldErrors { return f.errors }
func (f *Form) Values() Fields            { return f.fields }

func (f *Form) SetName(v string) {
	if !f.ReadOnly() {
		f.fields.Name = v
	}
}

func (f *Form) SetDescription(v string) {
	if !f.ReadOnly() {
		f.fields.Description = v
	}
}

func (f *Form) SetActive(v bool) {
	if !f.ReadOnly() {
		f.fields.IsActive = v
	}
}

func (f *Form) Close() {
	f.open = false
	f.errors = nil
}

func (f *Form) Submit(onSubmit func(id string, in v1.DocumentCategoryInput) error) error {
	if f.ReadOnly() {
		f.Close()
		return nil
	}

	f.errors = uikit.ValidateStruct(f.fields)
	if !f.errors.OK() {
		return f.errors
	}

	in := v1.DocumentCategoryInput{
		Name:        f.fields.Name,
		Description: f.fields.Description,
		IsActive:    f.fields.IsActive,
	}

	if err := onSubmit(f.recordID, in); err != nil {
		return err
	}

	f.Close()
	return nil
}
