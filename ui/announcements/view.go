package announcements

import (
	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/ui/uikit"
	"peoplehub.com/peoplehub/utils"
)

const defaultPageSize = 10

// ListView projects the announcement store for the screen. Category and
// priority are server-filtered (each change re-fetches); search text is a
// client-side predicate over title and description; pagination is
// server-driven.
type ListView struct {
	actions  *Actions
	search   string
	category string
	priority string
	page     int
	pageSize int
	confirm  uikit.ConfirmDialog
}

func NewListView(actions *Actions) *ListView {
	return &ListView{
		actions:  actions,
		category: "all",
		priority: "all",
		page:     1,
		pageSize: defaultPageSize,
	}
}

// Mount triggers the initial fetch.
func (lv *ListView) Mount() error {
	return lv.reload()
}

func (lv *ListView) reload() error {
	return lv.actions.Load(v1.AnnouncementListParams{
		Category: lv.category,
		Priority: lv.priority,
		Page:     lv.page,
		Limit:    lv.pageSize,
	})
}

// SetSearch narrows the already-fetched page; no request is made.
func (lv *ListView) SetSearch(q string) {
	lv.search = q
}

// SetCategory resets to page 1 and re-fetches.
func (lv *ListView) SetCategory(category string) error {
	lv.category = category
	lv.page = 1
	return lv.reload()
}

func (lv *ListView) SetPriority(priority string) error {
	lv.priority = priority
	lv.page = 1
	return lv.reload()
}

// SetPage clamps to [1, totalPages] before fetching.
func (lv *ListView) SetPage(page int) error {
	total := lv.actions.Store().Pagination().TotalPages
	lv.page = uikit.ClampPage(page, total)
	return lv.reload()
}

func (lv *ListView) SetPageSize(size int) error {
	if size > 0 {
		lv.pageSize = size
	}
	lv.page = 1
	return lv.reload()
}

func (lv *ListView) Page() int     { return lv.page }
func (lv *ListView) PageSize() int { return lv.pageSize }

// Rows returns the visible records: the fetched page narrowed by the
// search predicate.
func (lv *ListView) Rows() []v1.AnnouncementDTO {
	return utils.Filter(lv.actions.Store().Items(), func(a v1.AnnouncementDTO) bool {
		return uikit.MatchesSearch(lv.search, a.Title, a.Description)
	})
}

// Empty reports whether to render the "no announcements" indicator
// instead of the table.
func (lv *ListView) Empty() bool {
	return len(lv.Rows()) == 0 && !lv.actions.Store().Loading()
}

func (lv *ListView) Loading() bool { return lv.actions.Store().Loading() }
func (lv *ListView) Err() error    { return lv.actions.Store().Err() }

// ConfirmDelete arms the confirmation dialog with the announcement's
// identifying summary.
func (lv *ListView) ConfirmDelete(a v1.AnnouncementDTO) {
	summary := a.Title + " (" + utils.DisplayDateRange(a.StartDate.Time, a.EndDate.Time) + ")"
	lv.confirm.Open(summary, func() error {
		return lv.actions.Delete(a.ID)
	})
}

func (lv *ListView) Confirm() *uikit.ConfirmDialog {
	return &lv.confirm
}
