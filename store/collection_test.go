package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"peoplehub.com/peoplehub/peoplehub/v1/common"
)

type record struct {
	ID   string
	Name string
}

func (r record) Identifier() string { return r.ID }

func TestFetchLifecycle(t *testing.T) {
	c := New[record]()

	token := c.BeginFetch()
	assert.True(t, c.Loading())
	assert.NoError(t, c.Err())

	c.FetchSucceeded(token, []record{{ID: "1"}, {ID: "2"}}, common.Pagination{CurrentPage: 1, TotalPages: 3})
	assert.False(t, c.Loading())
	assert.False(t, c.Stale())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.Pagination().TotalPages)
}

func TestFetchFailedKeepsItems(t *testing.T) {
	c := New[record]()

	token := c.BeginFetch()
	c.FetchSucceeded(token, []record{{ID: "1"}}, common.Pagination{})

	token = c.BeginFetch()
	c.FetchFailed(token, errors.New("boom"))

	// stale-but-displayed: the previous page stays visible
	assert.Equal(t, 1, c.Len())
	assert.EqualError(t, c.Err(), "boom")
	assert.False(t, c.Loading())
}

func TestBeginFetchClearsError(t *testing.T) {
	c := New[record]()

	token := c.BeginFetch()
	c.FetchFailed(token, errors.New("boom"))

	c.BeginFetch()
	assert.NoError(t, c.Err())
}

func TestMutationsMarkStale(t *testing.T) {
	c := New[record]()
	token := c.BeginFetch()
	c.FetchSucceeded(token, []record{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}, common.Pagination{})

	c.ApplyCreate(record{ID: "3", Name: "c"})
	assert.True(t, c.Stale())
	assert.Equal(t, 3, c.Len())

	c.ApplyUpdate(record{ID: "2", Name: "B"})
	items := c.Items()
	assert.Equal(t, "B", items[1].Name)

	// a later successful fetch clears staleness
	token = c.BeginFetch()
	c.FetchSucceeded(token, items, common.Pagination{})
	assert.False(t, c.Stale())
}

func TestApplyDeleteRemovesExactlyOne(t *testing.T) {
	c := New[record]()
	token := c.BeginFetch()
	c.FetchSucceeded(token, []record{{ID: "1"}, {ID: "2"}, {ID: "3"}}, common.Pagination{})

	c.ApplyDelete("2")

	items := c.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "3", items[1].ID)
	assert.True(t, c.Stale())
}

func TestUnfencedLastResolvedWins(t *testing.T) {
	c := New[record]()

	first := c.BeginFetch()
	second := c.BeginFetch()

	// the newer request resolves first; the slow one lands afterwards
	c.FetchSucceeded(second, []record{{ID: "new"}}, common.Pagination{})
	c.FetchSucceeded(first, []record{{ID: "old"}}, common.Pagination{})

	// accepted race: the stale response wins
	assert.Equal(t, "old", c.Items()[0].ID)
}

func TestFencedDropsSupersededResponses(t *testing.T) {
	c := NewFenced[record]()

	first := c.BeginFetch()
	second := c.BeginFetch()

	c.FetchSucceeded(second, []record{{ID: "new"}}, common.Pagination{})
	c.FetchSucceeded(first, []record{{ID: "old"}}, common.Pagination{})

	assert.Equal(t, "new", c.Items()[0].ID)

	// a stale failure must not clobber the settled state either
	c.FetchFailed(first, errors.New("slow failure"))
	assert.NoError(t, c.Err())
}
