// Package meetings implements the meeting screens: admin CRUD plus the
// employee's own list with RSVP. Participant state and the unpaginated
// list are server-owned, so every mutation re-fetches.
package meetings

import (
	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/peoplehub/v1/common"
	"peoplehub.com/peoplehub/notify"
	"peoplehub.com/peoplehub/store"
)

type Scope int

const (
	ScopeAdmin Scope = iota
	ScopeMine
)

type Actions struct {
	api        *v1.MeetingEndpoint
	collection *store.Collection[v1.MeetingDTO]
	notifier   notify.Notifier
	scope      Scope
}

func NewActions(api *v1.MeetingEndpoint, notifier notify.Notifier, scope Scope) *Actions {
	return &Actions{
		api:        api,
		collection: store.New[v1.MeetingDTO](),
		notifier:   notifier,
		scope:      scope,
	}
}

func (a *Actions) Store() *store.Collection[v1.MeetingDTO] {
	return a.collection
}

func (a *Actions) Load() error {
	token := a.collection.BeginFetch()

	var (
		result *common.ListResult[v1.MeetingDTO]
		err    error
	)
	if a.scope == ScopeMine {
		result, err = a.api.ListMine()
	} else {
		result, err = a.api.List()
	}
	if err != nil {
		a.collection.FetchFailed(token, err)
		return err
	}
	a.collection.FetchSucceeded(token, result.Items, result.Pagination)
	return nil
}

func (a *Actions) Create(in v1.MeetingInput) error {
	created, err := a.api.Create(in)
	if err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to schedule meeting"))
		return err
	}
	a.collection.ApplyCreate(*created)
	a.notifier.Success("Meeting scheduled successfully")
	_ = a.Load()
	return nil
}

func (a *Actions) Update(id string, in v1.MeetingInput) error {
	updated, err := a.api.Update(id, in)
	if err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to update meeting"))
		return err
	}
	a.collection.ApplyUpdate(*updated)
	a.notifier.Success("Meeting updated successfully")
	_ = a.Load()
	return nil
}

func (a *Actions) Delete(id string) error {
	if err := a.api.Delete(id); err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to delete meeting"))
		return err
	}
	a.collection.ApplyDelete(id)
	a.notifier.Success("Meeting deleted successfully")
	_ = a.Load()
	return nil
}

// RSVP records the calling participant's accept/decline for a meeting.
func (a *Actions) RSVP(id, status string) error {
	updated, err := a.api.UpdateStatus(id, status)
	if err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to update your response"))
		return err
	}
	a.collection.ApplyUpdate(*updated)
	if status == v1.RSVPAccepted {
		a.notifier.Success("Meeting accepted")
	} else {
		a.notifier.Success("Meeting declined")
	}
	_ = a.Load()
	return nil
}
