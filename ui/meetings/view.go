package meetings

import (
	"sort"
	"time"

	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/ui/uikit"
	"peoplehub.com/peoplehub/utils"
)

// Date filter values for the employee's meeting list.
const (
	DateFilterAll      = "all"
	DateFilterUpcoming = "upcoming"
	DateFilterPast     = "past"
)

const defaultPageSize = 9 // card grid, 3x3

// ListView projects the meeting store. Everything is client-side: the
// API returns the full list. Default order is start time descending;
// the upcoming filter flips to ascending so the next meeting leads.
type ListView struct {
	actions    *Actions
	search     string
	typeFilter string
	dateFilter string
	page       int
	pageSize   int
	now        func() time.Time
	confirm    uikit.ConfirmDialog
}

func NewListView(actions *Actions) *ListView {
	return &ListView{
		actions:    actions,
		typeFilter: "all",
		dateFilter: DateFilterAll,
		page:       1,
		pageSize:   defaultPageSize,
		now:        time.Now,
	}
}

// SetClock pins the wall clock; tests use it to make the derived status
// and date filters deterministic.
func (lv *ListView) SetClock(now func() time.Time) {
	lv.now = now
}

func (lv *ListView) Mount() error {
	return lv.actions.Load()
}

func (lv *ListView) SetSearch(q string) {
	lv.search = q
	lv.page = 1
}

func (lv *ListView) SetTypeFilter(t string) {
	lv.typeFilter = t
	lv.page = 1
}

func (lv *ListView) SetDateFilter(d string) {
	lv.dateFilter = d
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

func (lv *ListView) filtered() []v1.MeetingDTO {
	now := lv.now()

	items := utils.Filter(lv.actions.Store().Items(), func(m v1.MeetingDTO) bool {
		if !uikit.MatchesSearch(lv.search, m.Title, m.Description, m.Location) {
			return false
		}
		if lv.typeFilter != "all" && m.Type != lv.typeFilter {
			return false
		}
		switch lv.dateFilter {
		case DateFilterUpcoming:
			return !m.StartTime.Time.Before(now)
		case DateFilterPast:
			return m.StartTime.Time.Before(now)
		}
		return true
	})

	ascending := lv.dateFilter == DateFilterUpcoming
	sort.SliceStable(items, func(i, j int) bool {
		if ascending {
			return items[i].StartTime.Time.Before(items[j].StartTime.Time)
		}
		return items[j].StartTime.Time.Before(items[i].StartTime.Time)
	})
	return items
}

func (lv *ListView) TotalPages() int {
	return uikit.TotalPages(len(lv.filtered()), lv.pageSize)
}

func (lv *ListView) Rows() []v1.MeetingDTO {
	return uikit.Paginate(lv.filtered(), lv.page, lv.pageSize)
}

func (lv *ListView) Empty() bool {
	return len(lv.Rows()) == 0 && !lv.actions.Store().Loading()
}

func (lv *ListView) Loading() bool { return lv.actions.Store().Loading() }
func (lv *ListView) Err() error    { return lv.actions.Store().Err() }

// StatusOf computes the display badge against the view's clock.
func (lv *ListView) StatusOf(m v1.MeetingDTO) string {
	return Status(lv.now(), m)
}

func (lv *ListView) ConfirmDelete(m v1.MeetingDTO) {
	summary := m.Title + " (" + m.StartTime.Format("Jan 2, 2006 15:04") + ")"
	lv.confirm.Open(summary, func() error {
		return lv.actions.Delete(m.ID)
	})
}

// ConfirmRSVP arms the dialog for an accept/decline; the mutation only
// fires on explicit confirmation.
func (lv *ListView) ConfirmRSVP(m v1.MeetingDTO, status string) {
	verb := "Accept"
	if status == v1.RSVPDeclined {
		verb = "Decline"
	}
	lv.confirm.Open(verb+" \""+m.Title+"\"?", func() error {
		return lv.actions.RSVP(m.ID, status)
	})
}

func (lv *ListView) Confirm() *uikit.ConfirmDialog {
	return &lv.confirm
}
