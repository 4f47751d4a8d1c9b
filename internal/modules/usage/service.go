// README: Generation-ledger service.
package usage

import "context"

// Service wraps ledger access. Recording is best-effort by contract: callers
// log insert failures and move on, a broken ledger must never break content
// generation.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Record appends one entry to the ledger.
func (s *Service) Record(ctx context.Context, e Entry) error {
	return s.store.Insert(ctx, e)
}

// Recent returns the newest entries, clamping limit to sane bounds.
func (s *Service) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 || limit > 100 {
		limit = DefaultRecentLimit
	}
	return s.store.Recent(ctx, limit)
}
