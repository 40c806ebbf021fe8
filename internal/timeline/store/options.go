package store

// Option configures a Store.
type Option func(*Store)

// WithHistoryLimit sets the maximum number of undo entries retained.
// Values at or below zero select the default capacity.
func WithHistoryLimit(n int) Option {
	return func(s *Store) {
		s.historyLimit = n
	}
}
