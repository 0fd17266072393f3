package memstore

import (
	"fmt"
	"sync"

	"neighborshare/internal/core/domain"
)

// RequestLedger owns every BorrowRequest record. Requests can be removed
// (cancellation), so ids come from a monotonic counter rather than the
// ledger length to rule out reuse after a removal.
type RequestLedger struct {
	mu       sync.RWMutex
	requests []*domain.BorrowRequest
	byID     map[string]*domain.BorrowRequest
	seq      int
}

// NewRequestLedger creates an empty request ledger
func NewRequestLedger() *RequestLedger {
	return &RequestLedger{
		byID: make(map[string]*domain.BorrowRequest),
	}
}

// Append assigns the next sequential id to req and records it
func (l *RequestLedger) Append(req domain.BorrowRequest) domain.BorrowRequest {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	req.ID = fmt.Sprintf("req%03d", l.seq)

	stored := req
	l.requests = append(l.requests, &stored)
	l.byID[stored.ID] = &stored
	return stored
}

// Get returns the request with the given id
func (l *RequestLedger) Get(id string) (domain.BorrowRequest, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	req, ok := l.byID[id]
	if !ok {
		return domain.BorrowRequest{}, domain.ErrRequestNotFound
	}
	return *req, nil
}

// List returns a snapshot of all requests in insertion order
func (l *RequestLedger) List() []domain.BorrowRequest {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.BorrowRequest, 0, len(l.requests))
	for _, req := range l.requests {
		out = append(out, *req)
	}
	return out
}

// Len returns the number of requests in the ledger
func (l *RequestLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.requests)
}

// Remove deletes the request with the given id. The referenced item is
// untouched; releasing any hold is the coordinator's job.
func (l *RequestLedger) Remove(id string) (domain.BorrowRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	req, ok := l.byID[id]
	if !ok {
		return domain.BorrowRequest{}, domain.ErrRequestNotFound
	}
	delete(l.byID, id)
	for i, r := range l.requests {
		if r.ID == id {
			l.requests = append(l.requests[:i], l.requests[i+1:]...)
			break
		}
	}
	return *req, nil
}

// Transition atomically moves a request from one status to another.
// It fails with ErrInvalidRequestStatus if the request is not currently
// in the expected status, which keeps transitions one-directional.
func (l *RequestLedger) Transition(id string, from, to domain.RequestStatus) (domain.BorrowRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	req, ok := l.byID[id]
	if !ok {
		return domain.BorrowRequest{}, domain.ErrRequestNotFound
	}
	if req.Status != from {
		return domain.BorrowRequest{}, domain.ErrInvalidRequestStatus
	}
	req.Status = to
	return *req, nil
}
