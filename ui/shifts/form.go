package shifts

import (
	"strconv"

	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/ui/uikit"
	"peoplehub.com/peoplehub/utils"
)

// Fields holds the raw inputs; the times stay in HH:mm and the minute
// counts stay as strings until submit.
type Fields struct {
	Name          string `json:"name" validate:"required"`
	StartTime     string `json:"startTime" validate:"required"`
	EndTime       string `json:"endTime" validate:"required"`
	BreakDuration string `json:"breakDuration"`
	GraceTime     string `json:"graceTime"`
	WorkingDays   []string
	IsActive      bool
	Description   string `json:"description"`
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
	f.fields = Fields{
		StartTime:     "09:00",
		EndTime:       "17:00",
		BreakDuration: "60",
		GraceTime:     "15",
		IsActive:      true,
	}
	f.errors = nil
}

func (f *Form) OpenUpdate(s v1.ShiftDTO) {
	f.populate(uikit.ModeUpdate, s)
}

func (f *Form) OpenView(s v1.ShiftDTO) {
	f.populate(uikit.ModeView, s)
}

func (f *Form) populate(mode uikit.FormMode, s v1.ShiftDTO) {
	f.mode = mode
	f.open = true
	f.recordID = s.ID
	f.fields = Fields{
		Name:          s.Name,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		BreakDuration: strconv.Itoa(s.BreakDuration),
		GraceTime:     strconv.Itoa(s.GraceTime),
		WorkingDays:   append([]string(nil), s.WorkingDays...),
		IsActive:      s.IsActive,
		Description:   s.Description,
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
	case "name":
		f.fields.Name = value
	case "startTime":
		f.fields.StartTime = value
	case "endTime":
		f.fields.EndTime = value
	case "breakDuration":
		f.fields.BreakDuration = value
	case "graceTime":
		f.fields.GraceTime = value
	case "description":
		f.fields.Description = value
	}
}

func (f *Form) SetActive(v bool) {
	if !f.ReadOnly() {
		f.fields.IsActive = v
	}
}

func (f *Form) ToggleWorkingDay(day string) {
	if f.ReadOnly() || !utils.Contains(v1.Weekdays, day) {
		return
	}
	if utils.Contains(f.fields.WorkingDays, day) {
		f.fields.WorkingDays = utils.Filter(f.fields.WorkingDays, func(d string) bool {
			return d != day
		})
		return
	}
	f.fields.WorkingDays = append(f.fields.WorkingDays, day)
}

func (f *Form) Close() {
	f.open = false
	f.errors = nil
}

func parseMinutes(fe uikit.FieldErrors, field, raw string) int {
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		fe.Add(field, "Must be a non-negative number of minutes")
		return 0
	}
	return v
}

func (f *Form) validate() uikit.FieldErrors {
	fe := uikit.ValidateStruct(f.fields)

	if f.fields.StartTime != "" && !utils.ValidClockTime(f.fields.StartTime) {
		fe.Add("startTime", "Must be HH:mm")
	}
	if f.fields.EndTime != "" && !utils.ValidClockTime(f.fields.EndTime) {
		fe.Add("endTime", "Must be HH:mm")
	}
	// overnight shifts are allowed, but zero-length ones are not
	if utils.ValidClockTime(f.fields.StartTime) && utils.ValidClockTime(f.fields.EndTime) &&
		f.fields.StartTime == f.fields.EndTime {
		fe.Add("endTime", "End time must differ from start time")
	}
	if len(f.fields.WorkingDays) == 0 {
		fe.Add("workingDays", "Select at least one working day")
	}
	return fe
}

func (f *Form) Submit(onSubmit func(id string, in v1.ShiftInput) error) error {
	if f.ReadOnly() {
		f.Close()
		return nil
	}

	fe := f.validate()
	in := v1.ShiftInput{
		Name:          f.fields.Name,
		StartTime:     f.fields.StartTime,
		EndTime:       f.fields.EndTime,
		BreakDuration: parseMinutes(fe, "breakDuration", f.fields.BreakDuration),
		GraceTime:     parseMinutes(fe, "graceTime", f.fields.GraceTime),
		WorkingDays:   f.fields.WorkingDays,
		IsActive:      f.fields.IsActive,
		Description:   f.fields.Description,
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
