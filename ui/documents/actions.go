// Package documents implements the employee document screens: the admin
// view over every employee's documents with verify/reject review, and the
// employee's own read-only view. Lists are server-paginated, so mutations
// re-fetch rather than trust the locally patched page.
package documents

import (
	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/peoplehub/v1/common"
	"peoplehub.com/peoplehub/notify"
	"peoplehub.com/peoplehub/store"
)

// Scope selects which listing the actions drive: the admin's all-company
// view or the employee's own documents.
type Scope int

const (
	ScopeAdmin Scope = iota
	ScopeMine
)

type Actions struct {
	api        *v1.DocumentEndpoint
	collection *store.Collection[v1.EmployeeDocumentDTO]
	notifier   notify.Notifier
	scope      Scope
	lastParams v1.DocumentListParams
}

func NewActions(api *v1.DocumentEndpoint, notifier notify.Notifier, scope Scope) *Actions {
	return &Actions{
		api:        api,
		collection: store.New[v1.EmployeeDocumentDTO](),
		notifier:   notifier,
		scope:      scope,
	}
}

func (a *Actions) Store() *store.Collection[v1.EmployeeDocumentDTO] {
	return a.collection
}

func (a *Actions) Scope() Scope { return a.scope }

func (a *Actions) Load(params v1.DocumentListParams) error {
	a.lastParams = params
	token := a.collection.BeginFetch()

	var (
		result *common.ListResult[v1.EmployeeDocumentDTO]
		err    error
	)
	if a.scope == ScopeMine {
		result, err = a.api.ListMine(params)
	} else {
		result, err = a.api.List(params)
	}
	if err != nil {
		a.collection.FetchFailed(token, err)
		return err
	}
	a.collection.FetchSucceeded(token, result.Items, result.Pagination)
	return nil
}

func (a *Actions) Refresh() error {
	return a.Load(a.lastParams)
}

func (a *Actions) Upload(in v1.DocumentUploadInput) error {
	uploaded, err := a.api.Upload(in)
	if err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to upload document"))
		return err
	}
	a.collection.ApplyCreate(*uploaded)
	a.notifier.Success("Document uploaded successfully")
	_ = a.Refresh()
	return nil
}

// Verify moves a pending document to verified with reviewer remarks.
func (a *Actions) Verify(id, remarks string) error {
	updated, err := a.api.Verify(id, remarks)
	if err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to verify document"))
		return err
	}
	a.collection.ApplyUpdate(*updated)
	a.notifier.Success("Document verified successfully")
	_ = a.Refresh()
	return nil
}

// Reject moves a pending document to rejected with reviewer remarks.
func (a *Actions) Reject(id, remarks string) error {
	updated, err := a.api.Reject(id, remarks)
	if err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to reject document"))
		return err
	}
	a.collection.ApplyUpdate(*updated)
	a.notifier.Success("Document rejected")
	_ = a.Refresh()
	return nil
}

func (a *Actions) Delete(id string) error {
	if err := a.api.Delete(id); err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to delete document"))
		return err
	}
	a.collection.ApplyDelete(id)
	a.notifier.Success("Document deleted successfully")
	_ = a.Refresh()
	return nil
}
