package announcements

import (
	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/peoplehub/v1/common"
	"peoplehub.com/peoplehub/ui/uikit"
	"peoplehub.com/peoplehub/utils"
)

// Fields holds the form's raw input values; dates stay in the date
// input-control format until submit.
type Fields struct {
	Title       string `json:"title" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Priority    string `json:"priority" validate:"required"`
	Description string `json:"description" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate" validate:"required"`
}

// Form is the announcement mutation modal.
type Form struct {
	mode       uikit.FormMode
	open       bool
	recordID   string
	fields     Fields
	attachment *v1.FileUpload
	errors     uikit.FieldErrors
}

func NewForm() *Form {
	return &Form{}
}

// OpenCreate resets every field to its default.
func (f *Form) OpenCreate() {
	f.mode = uikit.ModeCreate
	f.open = true
	f.recordID = ""
	f.fields = Fields{
		Category: v1.AnnouncementCategoryGeneral,
		Priority: PriorityDefault,
	}
	f.attachment = nil
	f.errors = nil
}

const PriorityDefault = v1.PriorityMedium

// OpenUpdate populates the fields from the record, converting wire dates
// to input-control format.
func (f *Form) OpenUpdate(a v1.AnnouncementDTO) {
	f.populate(uikit.ModeUpdate, a)
}

// OpenView shows the record read-only; submit becomes a no-op close.
func (f *Form) OpenView(a v1.AnnouncementDTO) {
	f.populate(uikit.ModeView, a)
}

func (f *Form) populate(mode uikit.FormMode, a v1.AnnouncementDTO) {
	f.mode = mode
	f.open = true
	f.recordID = a.ID
	f.fields = Fields{
		Title:       a.Title,
		Category:    a.Category,
		Priority:    a.Priority,
		Description: a.Description,
		StartDate:   a.StartDate.Wire(),
		EndDate:     a.EndDate.Wire(),
	}
	f.attachment = nil
	f.errors = nil
}

func (f *Form) Mode() uikit.FormMode      { return f.mode }
func (f *Form) IsOpen() bool              { return f.open }
func (f *Form) ReadOnly() bool            { return f.mode == uikit.ModeView }
func (f *Form) Errors() uikit.FieldErrors { return f.errors }
func (f *Form) Values() Fields            { return f.fields }

func (f *Form) SetField(name, value string) {
	if f.ReadOnly() {
		return
	}
	switch name {
	case "title":
		f.fields.Title = value
	case "category":
		f.fields.Category = value
	case "priority":
		f.fields.Priority = value
	case "description":
		f.fields.Description = value
	case "startDate":
		f.fields.StartDate = value
	case "endDate":
		f.fields.EndDate = value
	}
}

// AttachFile stages a new attachment. Leaving it nil on update keeps the
// stored one.
func (f *Form) AttachFile(name string, content []byte) {
	if f.ReadOnly() {
		return
	}
	f.attachment = &v1.FileUpload{FieldName: "attachment", FileName: name, Content: content}
}

func (f *Form) Close() {
	f.open = false
	f.errors = nil
}

// validate runs the synchronous checks: required fields plus the date
// range ordering.
func (f *Form) validate() uikit.FieldErrors {
	fe := uikit.ValidateStruct(f.fields)

	start, startErr := utils.ParseInputDate(f.fields.StartDate)
	if f.fields.StartDate != "" && startErr != nil {
		fe.Add("startDate", "Invalid date")
	}
	end, endErr := utils.ParseInputDate(f.fields.EndDate)
	if f.fields.EndDate != "" && endErr != nil {
		fe.Add("endDate", "Invalid date")
	}
	if startErr == nil && endErr == nil && f.fields.StartDate != "" && f.fields.EndDate != "" {
		if end.Before(start) {
			fe.Add("endDate", "End date must not be before start date")
		}
	}
	return fe
}

// Submit validates and hands the normalized payload to onSubmit, closing
// on success. Nothing is submitted while any field fails. In view mode
// it only closes.
func (f *Form) Submit(onSubmit func(id string, in v1.AnnouncementInput) error) error {
	if f.ReadOnly() {
		f.Close()
		return nil
	}

	f.errors = f.validate()
	if !f.errors.OK() {
		return f.errors
	}

	start, _ := utils.ParseInputDate(f.fields.StartDate)
	end, _ := utils.ParseInputDate(f.fields.EndDate)

	in := v1.AnnouncementInput{
		Title:       f.fields.Title,
		Category:    f.fields.Category,
		Priority:    f.fields.Priority,
		Description: f.fields.Description,
		StartDate:   common.NewDateOnly(start),
		EndDate:     common.NewDateOnly(end),
		Attachment:  f.attachment,
	}

	if err := onSubmit(f.recordID, in); err != nil {
		// keep the modal open with the entered data intact
		return err
	}

	f.Close()
	return nil
}
