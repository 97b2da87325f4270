package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"videometrics-profiles/internal/domain"
	apierrors "videometrics-profiles/internal/errors"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TokenProvider supplies the bearer credential for each request. Injected so
// the repository has no dependency on where tokens are stored.
type TokenProvider func() (string, error)

// StaticToken wraps a fixed token as a TokenProvider.
func StaticToken(token string) TokenProvider {
	return func() (string, error) {
		return token, nil
	}
}

// HTTPSubProfileRepository performs sub-profile CRUD against the backend
// HTTP API.
type HTTPSubProfileRepository struct {
	client *resty.Client
	token  TokenProvider
	logger *zap.Logger
}

// NewHTTPSubProfileRepository creates a repository against baseURL.
// Retries are disabled: every failure is terminal until the user retries.
func NewHTTPSubProfileRepository(baseURL string, timeout time.Duration, token TokenProvider, logger *zap.Logger) *HTTPSubProfileRepository {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPSubProfileRepository{
		client: client,
		token:  token,
		logger: logger,
	}
}

func (r *HTTPSubProfileRepository) newRequest(ctx context.Context) (*resty.Request, error) {
	token, err := r.token()
	if err != nil {
		return nil, apierrors.NewAuthRequiredError("missing access token", err)
	}
	return r.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("X-Request-ID", uuid.NewString()), nil
}

// Create POSTs a new sub-profile under the parent profile.
func (r *HTTPSubProfileRepository) Create(ctx context.Context, profileID int, payload domain.SubProfilePayload) (*domain.SubProfile, error) {
	req, err := r.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetBody(payload).
		Post(fmt.Sprintf("/profiles/%d/sub-profiles", profileID))
	if err != nil {
		return nil, apierrors.NewAPIError("sub-profile create request failed: "+err.Error(), 0, err)
	}
	if resp.IsError() {
		return nil, r.statusError(resp, false)
	}

	sp, err := decodeSubProfile(resp.Body())
	if err != nil {
		return nil, err
	}

	r.logger.Info("Created sub-profile",
		zap.Int("profile_id", profileID),
		zap.Int("sub_profile_id", sp.ID),
		zap.String("name", sp.Name),
	)
	return sp, nil
}

// List fetches and normalizes all sub-profiles of the parent profile.
func (r *HTTPSubProfileRepository) List(ctx context.Context, profileID int) ([]*domain.SubProfile, error) {
	req, err := r.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get(fmt.Sprintf("/profiles/%d/sub-profiles", profileID))
	if err != nil {
		return nil, apierrors.NewAPIError("sub-profile list request failed: "+err.Error(), 0, err)
	}
	if resp.IsError() {
		return nil, r.statusError(resp, false)
	}

	elements, err := normalizeListBody(resp.Body())
	if err != nil {
		return nil, apierrors.NewAPIError("failed to decode sub-profile list response", 0, err)
	}

	subProfiles := make([]*domain.SubProfile, 0, len(elements))
	for _, element := range elements {
		var wire domain.SubProfileWire
		if err := json.Unmarshal(element, &wire); err != nil {
			return nil, apierrors.NewAPIError("failed to decode sub-profile list element", 0, err)
		}
		subProfiles = append(subProfiles, domain.SubProfileFromWire(wire))
	}

	r.logger.Debug("Listed sub-profiles",
		zap.Int("profile_id", profileID),
		zap.Int("count", len(subProfiles)),
	)
	return subProfiles, nil
}

// Get fetches a single sub-profile by id.
func (r *HTTPSubProfileRepository) Get(ctx context.Context, subProfileID int) (*domain.SubProfile, error) {
	req, err := r.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get(fmt.Sprintf("/sub-profiles/%d", subProfileID))
	if err != nil {
		return nil, apierrors.NewAPIError("sub-profile get request failed: "+err.Error(), 0, err)
	}
	if resp.IsError() {
		return nil, r.statusError(resp, true)
	}

	return decodeSubProfile(resp.Body())
}

// Update PUTs the full payload (full-replace semantics).
func (r *HTTPSubProfileRepository) Update(ctx context.Context, profileID, subProfileID int, payload domain.SubProfilePayload) (*domain.SubProfile, error) {
	req, err := r.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetBody(payload).
		Put(fmt.Sprintf("/sub-profiles/%d", subProfileID))
	if err != nil {
		return nil, apierrors.NewAPIError("sub-profile update request failed: "+err.Error(), 0, err)
	}
	if resp.IsError() {
		return nil, r.statusError(resp, true)
	}

	sp, err := decodeSubProfile(resp.Body())
	if err != nil {
		return nil, err
	}

	r.logger.Info("Updated sub-profile",
		zap.Int("profile_id", profileID),
		zap.Int("sub_profile_id", subProfileID),
	)
	return sp, nil
}

// PartialUpdate PATCHes only the supplied fields.
func (r *HTTPSubProfileRepository) PartialUpdate(ctx context.Context, subProfileID int, fields map[string]any) (*domain.SubProfile, error) {
	req, err := r.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetBody(fields).
		Patch(fmt.Sprintf("/sub-profiles/%d", subProfileID))
	if err != nil {
		return nil, apierrors.NewAPIError("sub-profile partial update request failed: "+err.Error(), 0, err)
	}
	if resp.IsError() {
		return nil, r.statusError(resp, true)
	}

	return decodeSubProfile(resp.Body())
}

// Delete removes the sub-profile. 404 is a hard error: the in-memory list
// should already reflect reality.
func (r *HTTPSubProfileRepository) Delete(ctx context.Context, profileID, subProfileID int) error {
	req, err := r.newRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.Delete(fmt.Sprintf("/sub-profiles/%d", subProfileID))
	if err != nil {
		return apierrors.NewAPIError("sub-profile delete request failed: "+err.Error(), 0, err)
	}
	if resp.IsError() {
		return r.statusError(resp, true)
	}

	r.logger.Info("Deleted sub-profile",
		zap.Int("profile_id", profileID),
		zap.Int("sub_profile_id", subProfileID),
	)
	return nil
}

// statusError maps a non-2xx response to the error taxonomy. 404 becomes
// NotFound only on single-resource operations; on collection paths it stays
// a generic API error.
func (r *HTTPSubProfileRepository) statusError(resp *resty.Response, singleResource bool) error {
	msg := serverMessage(resp.Body(), resp.Status())
	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return apierrors.NewAuthRequiredError(msg, nil)
	case http.StatusForbidden:
		return apierrors.NewAccessDeniedError(msg, nil)
	case http.StatusNotFound:
		if singleResource {
			return apierrors.NewNotFoundError(msg, nil)
		}
	}
	return apierrors.NewAPIError(msg, resp.StatusCode(), nil)
}

// serverMessage extracts the best available error message from a response
// body, preferring the server-provided text over generic HTTP status text.
// A non-JSON or empty body falls back cleanly.
func serverMessage(body []byte, fallback string) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		for _, msg := range []string{envelope.Message, envelope.Error, envelope.Detail} {
			if msg != "" {
				return msg
			}
		}
	}
	return fallback
}

func decodeSubProfile(body []byte) (*domain.SubProfile, error) {
	var wire domain.SubProfileWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, apierrors.NewAPIError("failed to decode sub-profile response", 0, err)
	}
	return domain.SubProfileFromWire(wire), nil
}

// normalizeListBody reduces the three list response shapes (bare array,
// {sub_profiles: [...]}, {data: [...]}) plus the rare single-object response
// to a slice of raw elements, checked in that priority order.
func normalizeListBody(body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var elements []json.RawMessage
		if err := json.Unmarshal(trimmed, &elements); err != nil {
			return nil, err
		}
		return elements, nil
	}

	var envelope struct {
		SubProfiles []json.RawMessage `json:"sub_profiles"`
		Data        []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	if envelope.SubProfiles != nil {
		return envelope.SubProfiles, nil
	}
	if envelope.Data != nil {
		return envelope.Data, nil
	}

	// Rare: a single object stands in for a one-element list
	return []json.RawMessage{trimmed}, nil
}
