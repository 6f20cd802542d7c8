// Package doccategories implements the document category reference-data
// screen. The list is small and unpaginated, so mutations patch the
// cached list in place instead of forcing a re-fetch: the server computes
// nothing for a category beyond its identifier.
package doccategories

import (
	v1 "peoplehub.com/peoplehub/peoplehub/v1"
	"peoplehub.com/peoplehub/peoplehub/v1/common"
	"peoplehub.com/peoplehub/notify"
	"peoplehub.com/peoplehub/store"
)

type Actions struct {
	api        *v1.DocumentCategoryEndpoint
	collection *store.Collection[v1.DocumentCategoryDTO]
	notifier   notify.Notifier
}

func NewActions(api *v1.DocumentCategoryEndpoint, notifier notify.Notifier) *Actions {
	return &Actions{
		api:        api,
		collection: store.New[v1.DocumentCategoryDTO](),
		notifier:   notifier,
	}
}

func (a *Actions) Store() *store.Collection[v1.DocumentCategoryDTO] {
	return a.collection
}

func (a *Actions) Load() error {
	token := a.collection.BeginFetch()
	result, err := a.api.List()
	if err != nil {
		a.collection.FetchFailed(token, err)
		return err
	}
	a.collection.FetchSucceeded(token, result.Items, result.Pagination)
	return nil
}

func (a *Actions) Create(in v1.DocumentCategoryInput) error {
	created, err := a.api.Create(in)
	if err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to create category"))
		return err
	}
	a.collection.ApplyCreate(*created)
	a.notifier.Success("Category created successfully")
	return nil
}

func (a *Actions) Update(id string, in v1.DocumentCategoryInput) error {
	updated, err := a.api.Update(id, in)
	if err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to update category"))
		return err
	}
	a.collection.ApplyUpdate(*updated)
	a.notifier.Success("Category updated successfully")
	return nil
}

// Delete removes exactly the matching entry from the cache; the other
// entries keep their order.
func (a *Actions) Delete(id string) error {
	if err := a.api.Delete(id); err != nil {
		a.notifier.Error(common.ErrorMessage(err, "Failed to delete category"))
		return err
	}
	a.collection.ApplyDelete(id)
	a.notifier.Success("Category deleted successfully")
	return nil
}
