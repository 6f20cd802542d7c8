package documents

import (
	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/ui/uikit"
	"peoplehub.com/peoplehub/utils"
)

const defaultPageSize = 10

// ListView drives both document screens. Employee, category and status
// filters are server-side (changing one re-fetches page 1); the search
// box narrows the fetched page by title, file name and employee name.
type ListView struct {
	actions  *Actions
	search   string
	employee string
	category string
	status   string
	page     int
	pageSize int
	confirm  uikit.ConfirmDialog
}

func NewListView(actions *Actions) *ListView {
	return &ListView{
		actions:  actions,
		employee: "all",
		category: "all",
		status:   "all",
		page:     1,
		pageSize: defaultPageSize,
	}
}

func (lv *ListView) Mount() error {
	return lv.reload()
}

func (lv *ListView) reload() error {
	return lv.actions.Load(v1.DocumentListParams{
		Employee: lv.employee,
		Category: lv.category,
		Status:   lv.status,
		Page:     lv.page,
		Limit:    lv.pageSize,
	})
}

func (lv *ListView) SetSearch(q string) {
	lv.search = q
}

// SetEmployee is only meaningful on the admin scope; the "my" endpoint
// scopes by the caller's token.
func (lv *ListView) SetEmployee(id string) error {
	lv.employee = id
	lv.page = 1
	return lv.reload()
}

func (lv *ListView) SetCategory(id string) error {
	lv.category = id
	lv.page = 1
	return lv.reload()
}

func (lv *ListView) SetStatus(status string) error {
	lv.status = status
	lv.page = 1
	return lv.reload()
}

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

func (lv *ListView) Page() int { return lv.page }

func (lv *ListView) Rows() []v1.EmployeeDocumentDTO {
	return utils.Filter(lv.actions.Store().Items(), func(d v1.EmployeeDocumentDTO) bool {
		return uikit.MatchesSearch(lv.search, d.Title, d.File.Name, d.Employee.Name)
	})
}

func (lv *ListView) Empty() bool {
	return len(lv.Rows()) == 0 && !lv.actions.Store().Loading()
}

func (lv *ListView) Loading() bool { return lv.actions.Store().Loading() }
func (lv *ListView) Err() error    { return lv.actions.Store().Err() }

// Reviewable reports whether the review actions are offered; only
// pending documents can be verified or rejected.
func Reviewable(d v1.EmployeeDocumentDTO) bool {
	return d.Status == v1.DocumentStatusPending
}

func (lv *ListView) ConfirmDelete(d v1.EmployeeDocumentDTO) {
	lv.confirm.Open(d.Title+" ("+d.File.Name+")", func() error {
		return lv.actions.Delete(d.ID)
	})
}

func (lv *ListView) Confirm() *uikit.ConfirmDialog {
	return &lv.confirm
}
