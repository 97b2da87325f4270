package repository

import (
	"context"

	"videometrics-profiles/internal/domain"
)

// SubProfileRepository is the remote CRUD surface for sub-profiles.
// Design notes:
//   - Payloads carry nested collections in keyed-map form (the form's
//     Payload() already applied the codec); responses are decoded back to
//     ordered lists regardless of the shape the backend returns.
//   - Update is full-replace: the backend treats omitted fields as reset,
//     so every editable field must be present even when unchanged.
//   - PartialUpdate changes only the supplied keys; it exists for the
//     active/inactive toggle and must not be used for general edits.
//   - Delete treats 404 as a hard NotFound error, never idempotent success.
type SubProfileRepository interface {
	// Create POSTs a new sub-profile under the parent profile; the server
	// assigns id, uuid and timestamps.
	Create(ctx context.Context, profileID int, payload domain.SubProfilePayload) (*domain.SubProfile, error)

	// List returns every sub-profile of the parent profile. The response body
	// may be a bare array, a {sub_profiles: [...]} or {data: [...]} envelope,
	// or (rare) a single object; all shapes are normalized.
	List(ctx context.Context, profileID int) ([]*domain.SubProfile, error)

	// Get fetches a single sub-profile by id.
	Get(ctx context.Context, subProfileID int) (*domain.SubProfile, error)

	// Update PUTs the full payload (full-replace semantics).
	Update(ctx context.Context, profileID, subProfileID int, payload domain.SubProfilePayload) (*domain.SubProfile, error)

	// PartialUpdate PATCHes only the supplied fields, e.g. {"is_active": false}.
	PartialUpdate(ctx context.Context, subProfileID int, fields map[string]any) (*domain.SubProfile, error)

	// Delete removes the sub-profile. Callers must have obtained the typed
	// name confirmation before invoking this.
	Delete(ctx context.Context, profileID, subProfileID int) error
}
