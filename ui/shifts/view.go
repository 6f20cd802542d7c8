package shifts

import (
	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/ui/uikit"
	"peoplehub.com/peoplehub/utils"
)

const defaultPageSize = 10

const (
	StatusAll      = "all"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// ListView pages and filters the shift list client-side. No cross-shift
// overlap validation happens here; the server owns that rule.
type ListView struct {
	actions      *Actions
	search       string
	statusFilter string
	page         int
	pageSize     int
	confirm      uikit.ConfirmDialog
}

func NewListView(actions *Actions) *ListView {
	return &ListView{
		actions:      actions,
		statusFilter: StatusAll,
		page:         1,
		pageSize:     defaultPageSize,
	}
}

func (lv *ListView) Mount() error {
	return lv.actions.Load()
}

func (lv *ListView) SetSearch(q string) {
	lv.search = q
	lv.page = 1
}

func (lv *ListView) SetStatusFilter(status string) {
	lv.statusFilter = status
	lv.page = 1
}

func (lv *ListView) SetPage(page int) {
	lv.page = uikit.ClampPage(page, lv.TotalPages())
}

func (lv *ListView) SetPageSize(size int) {
	if size > 0 {
		lv.pageSize = size
	}
	lv.page = 1
}

func (lv *ListView) Page() int { return lv.page }

func (lv *ListView) filtered() []v1.ShiftDTO {
	return utils.Filter(lv.actions.Store().Items(), func(s v1.ShiftDTO) bool {
		if !uikit.MatchesSearch(lv.search, s.Name, s.Description) {
			return false
		}
		switch lv.statusFilter {
		case StatusActive:
			return s.IsActive
		case StatusInactive:
			return !s.IsActive
		}
		return true
	})
}

func (lv *ListView) TotalPages() int {
	return uikit.TotalPages(len(lv.filtered()), lv.pageSize)
}

func (lv *ListView) Rows() []v1.ShiftDTO {
	return uikit.Paginate(lv.filtered(), lv.page, lv.pageSize)
}

func (lv *ListView) Empty() bool {
	return len(lv.Rows()) == 0 && !lv.actions.Store().Loading()
}

func (lv *ListView) Loading() bool { return lv.actions.Store().Loading() }
func (lv *ListView) Err() error    { return lv.actions.Store().Err() }

func (lv *ListView) ConfirmDelete(s v1.ShiftDTO) {
	lv.confirm.Open(s.Name+" ("+s.StartTime+" - "+s.EndTime+")", func() error {
		return lv.actions.Delete(s.ID)
	})
}

func (lv *ListView) Confirm() *uikit.ConfirmDialog {
	return &lv.confirm
}
