package memstore_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neighborshare/internal/adapters/persistence/memstore"
	"neighborshare/internal/core/domain"
)

func Test_ItemStore_AssignsSequentialIDs(t *testing.T) {
	store := memstore.NewItemStore()

	for i := 1; i <= 12; i++ {
		item := store.Add(domain.Item{Name: fmt.Sprintf("Item %d", i)})
		assert.Equal(t, fmt.Sprintf("itm%03d", i), item.ID)
	}

	assert.Equal(t, 12, store.Len())
}

func Test_ItemStore_Get_NotFound(t *testing.T) {
	store := memstore.NewItemStore()

	_, err := store.Get("itm999")

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func Test_ItemStore_List_PreservesInsertionOrder(t *testing.T) {
	store := memstore.NewItemStore()
	store.Add(domain.Item{Name: "Zebra Print"})
	store.Add(domain.Item{Name: "Anvil"})

	items := store.List()

	require.Len(t, items, 2)
	assert.Equal(t, "Zebra Print", items[0].Name)
	assert.Equal(t, "Anvil", items[1].Name)
}

func Test_ItemStore_SnapshotsAreIsolated(t *testing.T) {
	store := memstore.NewItemStore()
	added := store.Add(domain.Item{Name: "Drill", Tags: []string{"diy"}})

	// Mutating the returned copy must not leak into the store.
	added.Name = "Mutated"
	added.Tags[0] = "mutated"

	got, err := store.Get(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Drill", got.Name)
	assert.Equal(t, []string{"diy"}, got.Tags)
}

func Test_ItemStore_Hold_MarksUnavailableOnce(t *testing.T) {
	store := memstore.NewItemStore()
	item := store.Add(domain.Item{Name: "Ladder", Available: true})

	require.NoError(t, store.Hold(item.ID))

	got, _ := store.Get(item.ID)
	assert.False(t, got.Available)

	// Second hold loses.
	assert.ErrorIs(t, store.Hold(item.ID), domain.ErrItemUnavailable)
}

func Test_ItemStore_Release_RestoresAvailabilityAndClearsBorrower(t *testing.T) {
	store := memstore.NewItemStore()
	item := store.Add(domain.Item{Name: "Tent", Available: true})
	require.NoError(t, store.Hold(item.ID))
	require.NoError(t, store.MarkBorrowed(item.ID, "Current User"))

	require.NoError(t, store.Release(item.ID))

	got, _ := store.Get(item.ID)
	assert.True(t, got.Available)
	assert.Nil(t, got.BorrowedBy)
}

func Test_ItemStore_MarkBorrowed_SetsBorrowerAndBumpsCount(t *testing.T) {
	store := memstore.NewItemStore()
	item := store.Add(domain.Item{Name: "Mixer", Available: true, BorrowCount: 4})
	require.NoError(t, store.Hold(item.ID))

	require.NoError(t, store.MarkBorrowed(item.ID, "Current User"))

	got, _ := store.Get(item.ID)
	require.NotNil(t, got.BorrowedBy)
	assert.Equal(t, "Current User", *got.BorrowedBy)
	assert.Equal(t, 5, got.BorrowCount)
	assert.False(t, got.Available)
}

func Test_RequestLedger_AssignsSequentialIDs_NotReusedAfterRemoval(t *testing.T) {
	ledger := memstore.NewRequestLedger()

	first := ledger.Append(domain.BorrowRequest{ItemID: "itm001"})
	second := ledger.Append(domain.BorrowRequest{ItemID: "itm002"})
	assert.Equal(t, "req001", first.ID)
	assert.Equal(t, "req002", second.ID)

	_, err := ledger.Remove(second.ID)
	require.NoError(t, err)

	// The counter keeps advancing; ids never collide with removed ones.
	third := ledger.Append(domain.BorrowRequest{ItemID: "itm003"})
	assert.Equal(t, "req003", third.ID)
	assert.Equal(t, 2, ledger.Len())
}

func Test_RequestLedger_Remove_NotFound(t *testing.T) {
	ledger := memstore.NewRequestLedger()

	_, err := ledger.Remove("req404")

	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func Test_RequestLedger_Transition_GuardsCurrentStatus(t *testing.T) {
	ledger := memstore.NewRequestLedger()
	req := ledger.Append(domain.BorrowRequest{
		ItemID: "itm001",
		Status: domain.RequestStatusPending,
	})

	updated, err := ledger.Transition(req.ID, domain.RequestStatusPending, domain.RequestStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusApproved, updated.Status)

	// Approved is terminal; a second transition from pending fails.
	_, err = ledger.Transition(req.ID, domain.RequestStatusPending, domain.RequestStatusRejected)
	assert.ErrorIs(t, err, domain.ErrInvalidRequestStatus)
}
