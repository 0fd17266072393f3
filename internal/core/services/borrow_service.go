package services

import (
	"log"

	"neighborshare/internal/adapters/persistence/memstore"
	"neighborshare/internal/config"
	"neighborshare/internal/core/domain"
)

// BorrowService coordinates the borrow-request lifecycle against item
// availability: creation, cancellation and resolution.
//
// With holds enabled (the default) a request marks its item unavailable,
// so a second request for the same item fails until the first one is
// cancelled or rejected. Disabling holds reproduces the legacy behavior
// where items stay requestable indefinitely.
type BorrowService struct {
	items  *memstore.ItemStore
	ledger *memstore.RequestLedger
	hold   bool
}

// NewBorrowService creates a new borrow service
func NewBorrowService(items *memstore.ItemStore, ledger *memstore.RequestLedger, cfg config.BorrowConfig) *BorrowService {
	return &BorrowService{
		items:  items,
		ledger: ledger,
		hold:   cfg.HoldOnRequest,
	}
}

// RequestBorrow creates a pending borrow request against an available item.
// Name, owner and image are snapshotted from the item at this instant.
func (s *BorrowService) RequestBorrow(itemID string) (domain.BorrowRequest, error) {
	item, err := s.items.Get(itemID)
	if err != nil {
		return domain.BorrowRequest{}, err
	}

	if s.hold {
		// Atomic hold: the racing loser gets ErrItemUnavailable here.
		if err := s.items.Hold(itemID); err != nil {
			return domain.BorrowRequest{}, err
		}
	} else if !item.Available {
		return domain.BorrowRequest{}, domain.ErrItemUnavailable
	}

	req := s.ledger.Append(domain.BorrowRequest{
		ItemID:      item.ID,
		ItemName:    item.Name,
		Owner:       item.Owner,
		Status:      domain.RequestStatusPending,
		RequestDate: domain.Today(),
		Image:       item.Image,
	})

	log.Printf("✅ Borrow request created: %s for %s (%s)", req.ID, item.ID, item.Name)
	return req, nil
}

// ListRequests returns all requests in insertion order
func (s *BorrowService) ListRequests() []domain.BorrowRequest {
	return s.ledger.List()
}

// CancelRequest removes a request from the ledger. The core imposes no
// status precondition on cancellation; whether non-pending requests may
// be cancelled is the caller's policy. With holds enabled the item is
// released so it can be requested again.
func (s *BorrowService) CancelRequest(requestID string) error {
	req, err := s.ledger.Remove(requestID)
	if err != nil {
		return err
	}

	if s.hold && req.Status != domain.RequestStatusRejected {
		if err := s.items.Release(req.ItemID); err != nil {
			// Request referenced an item that no longer resolves; the
			// cancellation itself already succeeded.
			log.Printf("⚠️ Cancel %s: release %s: %v", requestID, req.ItemID, err)
		}
	}

	log.Printf("🗑️ Borrow request cancelled: %s", requestID)
	return nil
}

// ResolveRequest settles a pending request. This is the capability used
// by the external resolution actor (the item's owner): pending→approved
// hands the item to the requester, pending→rejected releases it. Any
// other transition fails with ErrInvalidRequestStatus.
func (s *BorrowService) ResolveRequest(requestID string, status domain.RequestStatus) (domain.BorrowRequest, error) {
	if status != domain.RequestStatusApproved && status != domain.RequestStatusRejected {
		return domain.BorrowRequest{}, domain.ErrInvalidRequestStatus
	}

	req, err := s.ledger.Transition(requestID, domain.RequestStatusPending, status)
	if err != nil {
		return domain.BorrowRequest{}, err
	}

	if s.hold {
		switch status {
		case domain.RequestStatusApproved:
			if err := s.items.MarkBorrowed(req.ItemID, domain.CurrentActor); err != nil {
				log.Printf("⚠️ Resolve %s: mark borrowed %s: %v", requestID, req.ItemID, err)
			}
		case domain.RequestStatusRejected:
			if err := s.items.Release(req.ItemID); err != nil {
				log.Printf("⚠️ Resolve %s: release %s: %v", requestID, req.ItemID, err)
			}
		}
	}

	log.Printf("✅ Borrow request %s resolved: %s", requestID, status)
	return req, nil
}
