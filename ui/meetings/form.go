package meetings

import (
	"time"

	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/ui/uikit"
	"peoplehub.com/peoplehub/utils"
)

// Fields holds the raw inputs; start/end stay in datetime-local format
// until submit.
type Fields struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	StartTime    string `json:"startTime" validate:"required"`
	EndTime      string `json:"endTime" validate:"required"`
	Location     string `json:"location"`
	MeetingLink  string `json:"meetingLink" validate:"omitempty,url"`
	Type         string `json:"type" validate:"required"`
	Participants []string
	Agenda       string `json:"agenda"`
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
	f.fields = Fields{Type: v1.MeetingTypeGeneral}
	f.errors = nil
}

func (f *Form) OpenUpdate(m v1.MeetingDTO) {
	f.populate(uikit.ModeUpdate, m)
}

func (f *Form) OpenView(m v1.MeetingDTO) {
	f.populate(uikit.ModeView, m)
}

func (f *Form) populate(mode uikit.FormMode, m v1.MeetingDTO) {
	f.mode = mode
	f.open = true
	f.recordID = m.ID
	f.fields = Fields{
		Title:       m.Title,
		Description: m.Description,
		StartTime:   m.StartTime.Format(utils.InputDateTimeLayout),
		EndTime:     m.EndTime.Format(utils.InputDateTimeLayout),
		Location:    m.Location,
		MeetingLink: m.MeetingLink,
		Type:        m.Type,
		Participants: utils.Map(m.Participants, func(p v1.ParticipantDTO) string {
			return p.Employee.ID
		}),
		Agenda: m.Agenda,
	}
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
	case "description":
		f.fields.Description = value
	case "startTime":
		f.fields.StartTime = value
	case "endTime":
		f.fields.EndTime = value
	case "location":
		f.fields.Location = value
	case "meetingLink":
		f.fields.MeetingLink = value
	case "type":
		f.fields.Type = value
	case "agenda":
		f.fields.Agenda = value
	}
}

func (f *Form) ToggleParticipant(employeeID string) {
	if f.ReadOnly() {
		return
	}
	if utils.Contains(f.fields.Participants, employeeID) {
		f.fields.Participants = utils.Filter(f.fields.Participants, func(id string) bool {
			return id != employeeID
		})
		return
	}
	f.fields.Participants = append(f.fields.Participants, employeeID)
}

func (f *Form) Close() {
	f.open = false
	f.errors = nil
}

// validate enforces the cross-field rules on top of tag validation: the
// meeting must end after it starts and must invite someone.
func (f *Form) validate() (start, end time.Time, fe uikit.FieldErrors) {
	fe = uikit.ValidateStruct(f.fields)

	var startErr, endErr error
	if f.fields.StartTime != "" {
		start, startErr = utils.ParseInputDateTime(f.fields.StartTime)
		if startErr != nil {
			fe.Add("startTime", "Invalid date/time")
		}
	}
	if f.fields.EndTime != "" {
		end, endErr = utils.ParseInputDateTime(f.fields.EndTime)
		if endErr != nil {
			fe.Add("endTime", "Invalid date/time")
		}
	}
	if startErr == nil && endErr == nil && !start.IsZero() && !end.IsZero() {
		if !end.After(start) {
			fe.Add("endTime", "End time must be after start time")
		}
	}
	if len(f.fields.Participants) == 0 {
		fe.Add("participants", "Select at least one participant")
	}
	return start, end, fe
}

func (f *Form) Submit(onSubmit func(id string, in v1.MeetingInput) error) error {
	if f.ReadOnly() {
		f.Close()
		return nil
	}

	start, end, fe := f.validate()
	f.errors = fe
	if !f.errors.OK() {
		return f.errors
	}

	in := v1.MeetingInput{
		Title:        f.fields.Title,
		Description:  f.fields.Description,
		StartTime:    start.UTC().Format(time.RFC3339),
		EndTime:      end.UTC().Format(time.RFC3339),
		Location:     f.fields.Location,
		MeetingLink:  f.fields.MeetingLink,
		Type:         f.fields.Type,
		Participants: f.fields.Participants,
		Agenda:       f.fields.Agenda,
	}

	if err := onSubmit(f.recordID, in); err != nil {
		return err
	}

	f.Close()
	return nil
}
