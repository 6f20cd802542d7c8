package documents

import (
	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/ui/uikit"
)

// UploadFields is the upload modal's input; documents are only ever
// created, never edited in place.
type UploadFields struct {
	Title      string `json:"title" validate:"required"`
	EmployeeID string `json:"employee" validate:"required"`
	CategoryID string `json:"category" validate:"required"`
}

type UploadForm struct {
	open   bool
	fields UploadFields
	file   *v1.FileUpload
	errors uikit.FieldErrors
}

func NewUploadForm() *UploadForm {
	return &UploadForm{}
}

func (f *UploadForm) Open() {
	f.open = true
	f.fields = UploadFields{}
	f.file = nil
	f.errors = nil
}

func (f *UploadForm) IsOpen() bool              { return f.open }
func (f *UploadForm) Errors() uikit.FieldErrors { return f.errors }
func (f *UploadForm) Values() UploadFields      { return f.fields }

func (f *UploadForm) SetTitle(v string)    { f.fields.Title = v }
func (f *UploadForm) SetEmployee(v string) { f.fields.EmployeeID = v }
func (f *UploadForm) SetCategory(v string) { f.fields.CategoryID = v }

func (f *UploadForm) AttachFile(name string, content []byte) {
	f.file = &v1.FileUpload{FieldName: "file", FileName: name, Content: content}
}

func (f *UploadForm) Close() {
	f.open = false
	f.errors = nil
}

func (f *UploadForm) Submit(onSubmit func(in v1.DocumentUploadInput) error) error {
	f.errors = uikit.ValidateStruct(f.fields)
	if f.file == nil {
		f.errors.Add("file", "A file is required")
	}
	if !f.errors.OK() {
		return f.errors
	}

	in := v1.DocumentUploadInput{
		Title:      f.fields.Title,
		EmployeeID: f.fields.EmployeeID,
		CategoryID: f.fields.CategoryID,
		File:       f.file,
	}

	if err := onSubmit(in); err != nil {
		return err
	}

	f.Close()
	return nil
}

// ReviewDecision is what the review modal submits.
type ReviewDecision string

const (
	DecisionVerify ReviewDecision = "verify"
	DecisionReject ReviewDecision = "reject"
)

// ReviewForm collects the free-text remarks carried by a verify or
// reject transition.
type ReviewForm struct {
	open       bool
	documentID string
	decision   ReviewDecision
	remarks    string
	errors     uikit.FieldErrors
}

func NewReviewForm() *ReviewForm {
	return &ReviewForm{}
}

func (f *ReviewForm) Open(d v1.EmployeeDocumentDTO, decision ReviewDecision) {
	f.open = true
	f.documentID = d.ID
	f.decision = decision
	f.remarks = ""
	f.errors = nil
}

func (f *ReviewForm) IsOpen() bool             { return f.open }
func (f *ReviewForm) Decision() ReviewDecision { return f.decision }

func (f *ReviewForm) SetRemarks(v string) { f.remarks = v }

func (f *ReviewForm) Close() {
	f.open = false
	f.errors = nil
}

// Submit validates (rejections must say why) and dispatches the matching
// action.
func (f *ReviewForm) Submit(actions *Actions) error {
	f.errors = uikit.FieldErrors{}
	if f.decision == DecisionReject && f.remarks == "" {
		f.errors.Add("remarks", "Remarks are required when rejecting")
		return f.errors
	}

	var err error
	if f.decision == DecisionVerify {
		err = actions.Verify(f.documentID, f.remarks)
	} else {
		err = actions.Reject(f.documentID, f.remarks)
	}
	if err != nil {
		return err
	}

	f.Close()
	return nil
}
