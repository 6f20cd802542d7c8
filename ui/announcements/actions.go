// Package announcements implements the company announcements screen:
// admin CRUD over a server-paginated list, with category/priority filters
// pushed to the API and text search applied client-side.
package announcements

import (
	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/peoplehub/v1/common"
	"peoplehub.com/peoplehub/notify"
	"peoplehub.com/peoplehub/store"
)

// Actions is the async action set for announcements. Mutations emit
// exactly one notification and re-fetch the owning list: pagination
// counts are server-owned, so the locally patched copy is not trusted.
type Actions struct {
	api        *v1.AnnouncementEndpoint
	collection *store.Collection[v1.AnnouncementDTO]
	notifier   notify.Notifier
	lastParams v1.AnnouncementListParams
}

func NewActions(api *v1.AnnouncementEndpoint, notifier notify.Notifier) *Actions {
	return &Actions{
		api:        api,
		collection: store.New[v1.AnnouncementDTO](),
		notifier:   notifier,
	}
}

func (a *Actions) Store() *store.Collection[v1.AnnouncementDTO] {
	return a.collection
}

// Load fetches one page. List loads are silent: failures land in the
// store's error field, not in a notification.
func (a *Actions) Load(params v1.AnnouncementListParams) error {
	a.lastParams = params
	token := a.collection.BeginFetch()
	result, err := a.api.List(params)
	if err != nil {
		a.collection.FetchFailed(token, err)
		return err
	}
	a.collection.FetchSucceeded(token, result.Items, result.Pagination)
	return nil
}

// Refresh re-runs the last list fetch, the success-path follow-up after
// a mutation.
func (a *Actions) Refresh() error {
	return a.Load(a.lastParams)
}

func (a *Actions) Create(in v1.AnnouncementInput) error {
	created, err := a.api.Create(in)
	if err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to create announcement"))
		return err
	}
	a.collection.ApplyCreate(*created)
	a.notifier.Success("Announcement created successfully")
	_ = a.Refresh()
	return nil
}

func (a *Actions) Update(id string, in v1.AnnouncementInput) error {
	updated, err := a.api.Update(id, in)
	if err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to update announcement"))
		return err
	}
	a.collection.ApplyUpdate(*updated)
	a.notifier.Success("Announcement updated successfully")
	_ = a.Refresh()
	return nil
}

func (a *Actions) Delete(id string) error {
	if err := a.api.Delete(id); err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to delete announcement"))
		return err
	}
	a.collection.ApplyDelete(id)
	a.notifier.Success("Announcement deleted successfully")
	_ = a.Refresh()
	return nil
}
