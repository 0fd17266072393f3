package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neighborshare/internal/adapters/persistence/memstore"
	"neighborshare/internal/config"
	"neighborshare/internal/core/domain"
	"neighborshare/internal/core/services"
)

type borrowFixture struct {
	items  *memstore.ItemStore
	ledger *memstore.RequestLedger
	borrow *services.BorrowService
}

func newBorrowFixture(t *testing.T, holdOnRequest bool) *borrowFixture {
	t.Helper()

	items := memstore.NewItemStore()
	ledger := memstore.NewRequestLedger()
	borrow := services.NewBorrowService(items, ledger, config.BorrowConfig{
		HoldOnRequest: holdOnRequest,
	})
	return &borrowFixture{items: items, ledger: ledger, borrow: borrow}
}

func (f *borrowFixture) addItem(t *testing.T, name string, available bool) domain.Item {
	t.Helper()
	return f.items.Add(domain.Item{
		Name:        name,
		Description: name + " in great shape",
		Category:    domain.CategoryTools,
		Owner:       "Alice Johnson",
		Condition:   domain.ConditionGood,
		Available:   available,
		Image:       domain.DefaultItemImage,
		CreatedAt:   domain.Today(),
		Tags:        []string{},
	})
}

func Test_RequestBorrow_CreatesPendingRequestWithSnapshot(t *testing.T) {
	f := newBorrowFixture(t, true)
	item := f.addItem(t, "Cordless Drill", true)

	req, err := f.borrow.RequestBorrow(item.ID)

	require.NoError(t, err)
	assert.Equal(t, "req001", req.ID)
	assert.Equal(t, item.ID, req.ItemID)
	assert.Equal(t, "Cordless Drill", req.ItemName)
	assert.Equal(t, "Alice Johnson", req.Owner)
	assert.Equal(t, item.Image, req.Image)
	assert.Equal(t, domain.RequestStatusPending, req.Status)
	assert.Equal(t, domain.Today().String(), req.RequestDate.String())
	assert.Equal(t, 1, f.ledger.Len())
}

func Test_RequestBorrow_ItemNotFound(t *testing.T) {
	f := newBorrowFixture(t, true)

	_, err := f.borrow.RequestBorrow("itm404")

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Zero(t, f.ledger.Len())
}

func Test_RequestBorrow_UnavailableItem_LedgerUnchanged(t *testing.T) {
	f := newBorrowFixture(t, true)
	item := f.addItem(t, "Crock Pot", false)

	_, err := f.borrow.RequestBorrow(item.ID)

	assert.ErrorIs(t, err, domain.ErrItemUnavailable)
	assert.Zero(t, f.ledger.Len())
}

func Test_RequestBorrow_WithHold_HoldsItemAndRejectsSecondRequest(t *testing.T) {
	f := newBorrowFixture(t, true)
	item := f.addItem(t, "Camping Tent", true)

	_, err := f.borrow.RequestBorrow(item.ID)
	require.NoError(t, err)

	held, _ := f.items.Get(item.ID)
	assert.False(t, held.Available)
	assert.Nil(t, held.BorrowedBy) // nobody has it until approval

	_, err = f.borrow.RequestBorrow(item.ID)
	assert.ErrorIs(t, err, domain.ErrItemUnavailable)
	assert.Equal(t, 1, f.ledger.Len())
}

func Test_RequestBorrow_WithoutHold_LegacyBehavior(t *testing.T) {
	f := newBorrowFixture(t, false)
	item := f.addItem(t, "Yoga Mat", true)

	_, err := f.borrow.RequestBorrow(item.ID)
	require.NoError(t, err)
	_, err = f.borrow.RequestBorrow(item.ID)
	require.NoError(t, err)

	// Legacy mode: the item never becomes unavailable.
	got, _ := f.items.Get(item.ID)
	assert.True(t, got.Available)
	assert.Equal(t, 2, f.ledger.Len())
}

func Test_CancelRequest_RemovesAndReleasesHold(t *testing.T) {
	f := newBorrowFixture(t, true)
	item := f.addItem(t, "Ladder", true)
	req, err := f.borrow.RequestBorrow(item.ID)
	require.NoError(t, err)

	require.NoError(t, f.borrow.CancelRequest(req.ID))

	assert.Empty(t, f.borrow.ListRequests())
	released, _ := f.items.Get(item.ID)
	assert.True(t, released.Available)
	assert.Nil(t, released.BorrowedBy)

	// Cancelling again fails: the request is gone.
	assert.ErrorIs(t, f.borrow.CancelRequest(req.ID), domain.ErrRequestNotFound)
}

func Test_CancelRequest_NotFound(t *testing.T) {
	f := newBorrowFixture(t, true)

	assert.ErrorIs(t, f.borrow.CancelRequest("req404"), domain.ErrRequestNotFound)
}

func Test_ResolveRequest_Approved_HandsItemToRequester(t *testing.T) {
	f := newBorrowFixture(t, true)
	item := f.addItem(t, "Stand Mixer", true)
	req, _ := f.borrow.RequestBorrow(item.ID)

	resolved, err := f.borrow.ResolveRequest(req.ID, domain.RequestStatusApproved)

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusApproved, resolved.Status)

	got, _ := f.items.Get(item.ID)
	assert.False(t, got.Available)
	require.NotNil(t, got.BorrowedBy)
	assert.Equal(t, domain.CurrentActor, *got.BorrowedBy)
	assert.Equal(t, item.BorrowCount+1, got.BorrowCount)
}

func Test_ResolveRequest_Rejected_ReleasesItem(t *testing.T) {
	f := newBorrowFixture(t, true)
	item := f.addItem(t, "Power Saw", true)
	req, _ := f.borrow.RequestBorrow(item.ID)

	resolved, err := f.borrow.ResolveRequest(req.ID, domain.RequestStatusRejected)

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusRejected, resolved.Status)

	got, _ := f.items.Get(item.ID)
	assert.True(t, got.Available)
	assert.Nil(t, got.BorrowedBy)

	// The item is requestable again.
	_, err = f.borrow.RequestBorrow(item.ID)
	assert.NoError(t, err)
}

func Test_ResolveRequest_TransitionsAreOneDirectional(t *testing.T) {
	f := newBorrowFixture(t, true)
	item := f.addItem(t, "Board Game", true)
	req, _ := f.borrow.RequestBorrow(item.ID)

	_, err := f.borrow.ResolveRequest(req.ID, domain.RequestStatusApproved)
	require.NoError(t, err)

	_, err = f.borrow.ResolveRequest(req.ID, domain.RequestStatusRejected)
	assert.ErrorIs(t, err, domain.ErrInvalidRequestStatus)
}

func Test_ResolveRequest_RejectsPendingAsTarget(t *testing.T) {
	f := newBorrowFixture(t, true)
	item := f.addItem(t, "Blender", true)
	req, _ := f.borrow.RequestBorrow(item.ID)

	_, err := f.borrow.ResolveRequest(req.ID, domain.RequestStatusPending)

	assert.ErrorIs(t, err, domain.ErrInvalidRequestStatus)
}

func Test_ResolveRequest_NotFound(t *testing.T) {
	f := newBorrowFixture(t, true)

	_, err := f.borrow.ResolveRequest("req404", domain.RequestStatusApproved)

	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func Test_CancelRequest_AfterApproval_ReturnsItem(t *testing.T) {
	f := newBorrowFixture(t, true)
	item := f.addItem(t, "Projector", true)
	req, _ := f.borrow.RequestBorrow(item.ID)
	_, err := f.borrow.ResolveRequest(req.ID, domain.RequestStatusApproved)
	require.NoError(t, err)

	// No status precondition on cancel; the caller's policy decides.
	require.NoError(t, f.borrow.CancelRequest(req.ID))

	got, _ := f.items.Get(item.ID)
	assert.True(t, got.Available)
	assert.Nil(t, got.BorrowedBy)
}

func Test_CancelRequest_AfterRejection_DoesNotReleaseAgain(t *testing.T) {
	f := newBorrowFixture(t, true)
	item := f.addItem(t, "Telescope", true)
	first, _ := f.borrow.RequestBorrow(item.ID)
	_, err := f.borrow.ResolveRequest(first.ID, domain.RequestStatusRejected)
	require.NoError(t, err)

	// A new requester holds the item now.
	_, err = f.borrow.RequestBorrow(item.ID)
	require.NoError(t, err)

	// Cancelling the old rejected request must not free the new hold.
	require.NoError(t, f.borrow.CancelRequest(first.ID))

	got, _ := f.items.Get(item.ID)
	assert.False(t, got.Available)
}
