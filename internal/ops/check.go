package ops

import (
	"github.com/jacksmith/carts/internal/model"
	"github.com/jacksmith/carts/internal/storage"
)

// CheckResult describes the state of the store file.
type CheckResult struct {
	// State is how the file was classified on load.
	State storage.LoadState
	// LoadErr is the read or parse failure for unreadable or corrupt files.
	LoadErr error
	// Carts is the number of carts loaded.
	Carts int
	// Issues lists invariant violations in the loaded collection.
	Issues []model.ValidationError
}

// OK reports whether the file loaded (or is absent/empty) and has no issues.
func (r *CheckResult) OK() bool {
	switch r.State {
	case storage.LoadCorrupt, storage.LoadUnreadable:
		return false
	}
	return len(r.Issues) == 0
}

// Check loads the store without modifying it and reports its state and
// any integrity issues.
func Check(s Store) *CheckResult {
	res := s.Load()
	return &CheckResult{
		State:   res.State,
		LoadErr: res.Err,
		Carts:   len(res.Carts),
		Issues:  model.Validate(res.Carts),
	}
}
