package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	ID   string
	Name string
}

func newTestCollection() *Collection[rec] {
	return NewCollection(func(r rec) string { return r.ID })
}

func TestBegin_SetsLoadingAndKeepsPriorData(t *testing.T) {
	c := newTestCollection()
	seq := c.Begin()
	c.Replace(seq, []rec{{ID: "1", Name: "first"}})

	c.Begin()
	snap := c.Snapshot()
	assert.True(t, snap.IsLoading)
	assert.Equal(t, []rec{{ID: "1", Name: "first"}}, snap.Items)
}

func TestReplace_SetsExactPayloadAndClearsFlags(t *testing.T) {
	c := newTestCollection()
	seq := c.Begin()
	c.Reject(seq, "boom")

	seq = c.Begin()
	ok := c.Replace(seq, []rec{{ID: "a"}, {ID: "b"}})
	require.True(t, ok)

	snap := c.Snapshot()
	assert.False(t, snap.IsLoading)
	assert.False(t, snap.IsError)
	assert.Empty(t, snap.Message)
	assert.Equal(t, []rec{{ID: "a"}, {ID: "b"}}, snap.Items)
}

func TestReject_SetsErrorAndMessage(t *testing.T) {
	c := newTestCollection()
	seq := c.Begin()
	ok := c.Reject(seq, "Not authorized")
	require.True(t, ok)

	snap := c.Snapshot()
	assert.False(t, snap.IsLoading)
	assert.True(t, snap.IsError)
	assert.Equal(t, "Not authorized", snap.Message)
}

func TestPrepend_GrowsByOneAndContainsRecord(t *testing.T) {
	c := newTestCollection()
	seq := c.Begin()
	c.Replace(seq, []rec{{ID: "1"}, {ID: "2"}})

	seq = c.Begin()
	c.Prepend(seq, rec{ID: "3", Name: "new"})

	snap := c.Snapshot()
	require.Len(t, snap.Items, 3)
	assert.Equal(t, rec{ID: "3", Name: "new"}, snap.Items[0])
}

func TestUpdate_ReplacesMatchKeepsLength(t *testing.T) {
	c := newTestCollection()
	seq := c.Begin()
	c.Replace(seq, []rec{{ID: "1", Name: "old"}, {ID: "2"}})

	seq = c.Begin()
	c.Update(seq, rec{ID: "1", Name: "updated"})

	snap := c.Snapshot()
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "updated", snap.Items[0].Name)
	assert.Equal(t, "2", snap.Items[1].ID)
}

func TestRemove_NoRecordWithIDRemains(t *testing.T) {
	c := newTestCollection()
	seq := c.Begin()
	c.Replace(seq, []rec{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	seq = c.Begin()
	c.Remove(seq, "2")

	snap := c.Snapshot()
	require.Len(t, snap.Items, 2)
	for _, item := range snap.Items {
		assert.NotEqual(t, "2", item.ID)
	}
}

func TestReset_RestoresInitialStateRegardlessOfPrior(t *testing.T) {
	c := newTestCollection()
	seq := c.Begin()
	c.ReplacePage(seq, []rec{{ID: "1"}}, 3, 9)
	seq = c.Begin()
	c.Reject(seq, "late failure")

	c.Reset()

	snap := c.Snapshot()
	assert.Empty(t, snap.Items)
	assert.False(t, snap.IsLoading)
	assert.False(t, snap.IsError)
	assert.Empty(t, snap.Message)
	assert.Zero(t, snap.Page)
	assert.Zero(t, snap.TotalPages)
}

func TestStaleResponseDiscarded(t *testing.T) {
	c := newTestCollection()
	first := c.Begin()
	second := c.Begin()

	// Second (latest) request resolves first.
	require.True(t, c.Replace(second, []rec{{ID: "fresh"}}))
	// First request resolves late and must be discarded.
	require.False(t, c.Replace(first, []rec{{ID: "stale"}}))

	snap := c.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "fresh", snap.Items[0].ID)
}

func TestStaleRejectionDiscarded(t *testing.T) {
	c := newTestCollection()
	first := c.Begin()
	second := c.Begin()

	require.True(t, c.Replace(second, []rec{{ID: "fresh"}}))
	require.False(t, c.Reject(first, "stale error"))

	snap := c.Snapshot()
	assert.False(t, snap.IsError)
}

func TestResetInvalidatesOutstandingRequests(t *testing.T) {
	c := newTestCollection()
	seq := c.Begin()
	c.Reset()

	require.False(t, c.Replace(seq, []rec{{ID: "late"}}))
	assert.Empty(t, c.Snapshot().Items)
}

func TestSubscribe_ObserversSeeTransitions(t *testing.T) {
	c := newTestCollection()
	var seen []Snapshot[rec]
	c.Subscribe(func(s Snapshot[rec]) { seen = append(seen, s) })

	seq := c.Begin()
	c.Replace(seq, []rec{{ID: "1"}})

	require.Len(t, seen, 2)
	assert.True(t, seen[0].IsLoading)
	assert.False(t, seen[1].IsLoading)
	assert.Len(t, seen[1].Items, 1)
}

func TestRecord_FetchRejectReset(t *testing.T) {
	r := NewRecord[rec]()

	seq := r.Begin()
	assert.True(t, r.Snapshot().IsLoading)
	require.True(t, r.Set(seq, &rec{ID: "lease-1"}))
	require.NotNil(t, r.Snapshot().Item)

	// Nil item is a valid fulfilled state ("no active lease").
	seq = r.Begin()
	require.True(t, r.Set(seq, nil))
	snap := r.Snapshot()
	assert.Nil(t, snap.Item)
	assert.False(t, snap.IsError)

	seq = r.Begin()
	r.Reject(seq, "Error loading lease details")
	assert.True(t, r.Snapshot().IsError)

	r.Reset()
	snap = r.Snapshot()
	assert.Nil(t, snap.Item)
	assert.False(t, snap.IsError)
	assert.Empty(t, snap.Message)
}

func TestRecord_StaleSetDiscarded(t *testing.T) {
	r := NewRecord[rec]()
	first := r.Begin()
	second := r.Begin()

	require.True(t, r.Set(second, &rec{ID: "fresh"}))
	require.False(t, r.Set(first, &rec{ID: "stale"}))
	assert.Equal(t, "fresh", r.Snapshot().Item.ID)
}
