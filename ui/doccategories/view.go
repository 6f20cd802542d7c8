package doccategories

import (
	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/ui/uikit"
	"peoplehub.com/peoplehub/utils"
)

// Status filter values.
const (
	StatusAll      = "all"
	StatusActive   = "active"
	StatusInactive = "inactive"
)

const defaultPageSize = 10

// ListView filters and pages the category list entirely client-side; the
// whole collection is already in the store.
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

// SetSearch resets to page 1; the filter narrows the client-side slice.
func (lv *ListView) SetSearch(q string) {
	lv.search = q
	lv.page = 1
}

// SetStatusFilter hides categories on the other side of the isActive
// flag; "all" shows everything.
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

func (lv *ListView) filtered() []v1.DocumentCategoryDTO {
	return utils.Filter(lv.actions.Store().Items(), func(c v1.DocumentCategoryDTO) bool {
		if !uikit.MatchesSearch(lv.search, c.Name, c.Description) {
			return false
		}
		switch lv.statusFilter {
		case StatusActive:
			return c.IsActive
		case StatusInactive:
			return !c.IsActive
		}
		return true
	})
}

func (lv *ListView) TotalPages() int {
	return uikit.TotalPages(len(lv.filtered()), lv.pageSize)
}

// Rows returns the current page of the filtered list.
func (lv *ListView) Rows() []v1.DocumentCategoryDTO {
	return uikit.Paginate(lv.filtered(), lv.page, lv.pageSize)
}

func (lv *ListView) Empty() bool {
	return len(lv.Rows()) == 0 && !lv.actions.Store().Loading()
}

func (lv *ListView) Loading() bool { return lv.actions.Store().Loading() }
func (lv *ListView) Err() error    { return lv.actions.Store().Err() }

func (lv *ListView) ConfirmDelete(c v1.DocumentCategoryDTO) {
	lv.confirm.Open(c.Name, func() error {
		return lv.actions.Delete(c.ID)
	})
}

func (lv *ListView) Confirm() *uikit.ConfirmDialog {
	return &lv.confirm
}

// ActiveCategories feeds the category pickers elsewhere; inactive
// categories never appear there.
func (lv *ListView) ActiveCategories() []v1.DocumentCategoryDTO {
	return utils.Filter(lv.actions.Store().Items(), func(c v1.DocumentCategoryDTO) bool {
		return c.IsActive
	})
}
