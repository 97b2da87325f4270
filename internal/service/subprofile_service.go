package service

import (
	"context"
	"strings"
	"sync"

	"videometrics-profiles/internal/domain"
	apierrors "videometrics-profiles/internal/errors"
	"videometrics-profiles/internal/repository"

	"go.uber.org/zap"
)

// ActiveFilter is the tri-state active/inactive list filter.
type ActiveFilter string

const (
	FilterAll      ActiveFilter = "all"
	FilterActive   ActiveFilter = "active"
	FilterInactive ActiveFilter = "inactive"
)

// SubProfileService orchestrates the sub-profile lifecycle for one parent
// profile: it owns the canonical in-memory collection, applies confirmed
// repository results to it, and exposes the filtered search view.
//
// Repository errors never propagate past this boundary; the latest failure
// message sits in a single last-error slot until dismissed or superseded.
// The mutex guards only the collection and transient view state. Network
// calls are not serialized: two concurrent operations on the same id race
// and the later response wins. Callers needing strict ordering must
// serialize externally.
type SubProfileService struct {
	profileID int
	repo      repository.SubProfileRepository
	logger    *zap.Logger

	mu           sync.Mutex
	subProfiles  []*domain.SubProfile
	searchTerm   string
	activeFilter ActiveFilter
	lastErr      string
}

// NewSubProfileService creates the lifecycle controller for one profile.
func NewSubProfileService(profileID int, repo repository.SubProfileRepository, logger *zap.Logger) *SubProfileService {
	return &SubProfileService{
		profileID:    profileID,
		repo:         repo,
		logger:       logger,
		subProfiles:  []*domain.SubProfile{},
		activeFilter: FilterAll,
	}
}

// ProfileID returns the parent profile this controller serves.
func (s *SubProfileService) ProfileID() int {
	return s.profileID
}

// Refresh replaces the whole collection with the server's current list.
// Last-refresh-wins: unconfirmed local changes are discarded, no merge is
// attempted.
func (s *SubProfileService) Refresh(ctx context.Context) bool {
	subProfiles, err := s.repo.List(ctx, s.profileID)
	if err != nil {
		s.storeError(err)
		return false
	}

	s.mu.Lock()
	s.subProfiles = subProfiles
	s.mu.Unlock()
	return true
}

// Create validates the form and, if clean, creates the sub-profile remotely
// and appends the server's entity to the collection. A non-empty returned map
// means validation failed and nothing was sent; basic-info errors are
// returned alone so that section is fixed first. The bool reports whether the
// remote call succeeded.
func (s *SubProfileService) Create(ctx context.Context, form domain.SubProfileForm) (map[string]string, bool) {
	if fieldErrs := domain.ValidateSubProfileForm(form); len(fieldErrs) > 0 {
		return fieldErrs, false
	}
	if itemErrs := domain.ValidateFormItems(form); len(itemErrs) > 0 {
		return itemErrs, false
	}

	sp, err := s.repo.Create(ctx, s.profileID, form.Payload())
	if err != nil {
		s.storeError(err)
		return nil, false
	}

	s.mu.Lock()
	s.subProfiles = append(s.subProfiles, sp)
	s.mu.Unlock()

	s.logger.Info("Sub-profile created",
		zap.Int("profile_id", s.profileID),
		zap.Int("sub_profile_id", sp.ID),
	)
	return nil, true
}

// Update validates the form and PUTs the full payload (never partial), then
// replaces the matching collection entry by id. Same return convention as
// Create.
func (s *SubProfileService) Update(ctx context.Context, subProfileID int, form domain.SubProfileForm) (map[string]string, bool) {
	if fieldErrs := domain.ValidateSubProfileForm(form); len(fieldErrs) > 0 {
		return fieldErrs, false
	}
	if itemErrs := domain.ValidateFormItems(form); len(itemErrs) > 0 {
		return itemErrs, false
	}

	sp, err := s.repo.Update(ctx, s.profileID, subProfileID, form.Payload())
	if err != nil {
		s.storeError(err)
		return nil, false
	}

	s.replace(sp)
	s.logger.Info("Sub-profile updated",
		zap.Int("profile_id", s.profileID),
		zap.Int("sub_profile_id", subProfileID),
	)
	return nil, true
}

// ToggleActive flips is_active through a partial update carrying only that
// field, so stale local state can never revert other fields. The entry is
// replaced with the server's response on success.
func (s *SubProfileService) ToggleActive(ctx context.Context, subProfileID int) bool {
	current := s.find(subProfileID)
	if current == nil {
		s.storeError(apierrors.NewNotFoundError("sub-profile not found", nil))
		return false
	}

	sp, err := s.repo.PartialUpdate(ctx, subProfileID, map[string]any{
		"is_active": !current.IsActive,
	})
	if err != nil {
		s.storeError(err)
		return false
	}

	s.replace(sp)
	return true
}

// Delete removes the sub-profile, but only when confirmName exactly equals
// the entry's name (case-sensitive, no trim). This typed confirmation is the
// only guard against the irreversible remote delete, so it is enforced here
// and not left to the view.
func (s *SubProfileService) Delete(ctx context.Context, subProfileID int, confirmName string) bool {
	current := s.find(subProfileID)
	if current == nil {
		s.storeError(apierrors.NewNotFoundError("sub-profile not found", nil))
		return false
	}
	if confirmName != current.Name {
		s.storeError(apierrors.NewValidationError("confirmation name does not match"))
		return false
	}

	if err := s.repo.Delete(ctx, s.profileID, subProfileID); err != nil {
		s.storeError(err)
		return false
	}

	s.mu.Lock()
	for i, sp := range s.subProfiles {
		if sp.ID == subProfileID {
			s.subProfiles = append(s.subProfiles[:i], s.subProfiles[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.logger.Info("Sub-profile deleted",
		zap.Int("profile_id", s.profileID),
		zap.Int("sub_profile_id", subProfileID),
	)
	return true
}

// SetSearchTerm updates the transient search term applied by FilteredView.
func (s *SubProfileService) SetSearchTerm(term string) {
	s.mu.Lock()
	s.searchTerm = term
	s.mu.Unlock()
}

// SetActiveFilter updates the tri-state active filter.
func (s *SubProfileService) SetActiveFilter(filter ActiveFilter) {
	s.mu.Lock()
	s.activeFilter = filter
	s.mu.Unlock()
}

// FilteredView derives the read-only list view: a case-insensitive substring
// match of the search term against name, description and area type (any of
// the three), then the active filter. Recomputed on every call; the source
// collection is small and mutation infrequent.
func (s *SubProfileService) FilteredView() []*domain.SubProfile {
	s.mu.Lock()
	defer s.mu.Unlock()

	term := strings.ToLower(strings.TrimSpace(s.searchTerm))
	out := make([]*domain.SubProfile, 0, len(s.subProfiles))
	for _, sp := range s.subProfiles {
		if term != "" && !matchesSearch(sp, term) {
			continue
		}
		switch s.activeFilter {
		case FilterActive:
			if !sp.IsActive {
				continue
			}
		case FilterInactive:
			if sp.IsActive {
				continue
			}
		}
		out = append(out, sp)
	}
	return out
}

// Counts returns total/active/inactive sizes of the collection.
func (s *SubProfileService) Counts() (total, active, inactive int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total = len(s.subProfiles)
	for _, sp := range s.subProfiles {
		if sp.IsActive {
			active++
		}
	}
	inactive = total - active
	return total, active, inactive
}

// Get returns the collection entry with the given id, or nil.
func (s *SubProfileService) Get(subProfileID int) *domain.SubProfile {
	return s.find(subProfileID)
}

// LastError returns the stored message of the most recent failed operation,
// or "" when none is pending.
func (s *SubProfileService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ClearError dismisses the stored error.
func (s *SubProfileService) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *SubProfileService) find(subProfileID int) *domain.SubProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sp := range s.subProfiles {
		if sp.ID == subProfileID {
			return sp
		}
	}
	return nil
}

func (s *SubProfileService) replace(sp *domain.SubProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.subProfiles {
		if existing.ID == sp.ID {
			s.subProfiles[i] = sp
			return
		}
	}
	// Entry vanished between call and response (an overlapping refresh or
	// delete); the response is dropped rather than resurrecting the entry.
}

func (s *SubProfileService) storeError(err error) {
	msg := apierrors.Message(err)
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
	s.logger.Warn("Sub-profile operation failed",
		zap.Int("profile_id", s.profileID),
		zap.String("error", msg),
	)
}

func matchesSearch(sp *domain.SubProfile, term string) bool {
	return strings.Contains(strings.ToLower(sp.Name), term) ||
		strings.Contains(strings.ToLower(sp.Description), term) ||
		strings.Contains(strings.ToLower(sp.AreaType), term)
}
