package domain

import (
	"encoding/json"
	"strings"
)

// AreaTypes lists the monitored-area categories a sub-profile may use.
var AreaTypes = []string{
	"dining", "kitchen", "entrance", "parking", "office",
	"retail", "warehouse", "outdoor", "lobby", "other",
}

// SubProfile is one monitored area under a parent profile. ID, UUID and the
// timestamps are server-assigned; ProfileID never changes after creation.
// The nested collections are ordered lists in memory and keyed maps on the
// wire (see ItemsToMap / ItemsFromJSON).
type SubProfile struct {
	ID          int
	UUID        string
	ProfileID   int
	Name        string
	Description string
	AreaType    string
	Tags        []string
	IsActive    bool
	CreatedAt   string
	UpdatedAt   string

	CameraLocations     []CameraLocation
	MonitoringSchedules []MonitoringSchedule
	AlertSettings       []AlertSettings
}

// SubProfileWire is the backend JSON shape of a sub-profile. Nested
// collections are kept raw because the backend's response shape for them is
// not guaranteed (array or keyed object).
type SubProfileWire struct {
	ID                 int             `json:"id"`
	UUID               string          `json:"uuid,omitempty"`
	ProfileID          int             `json:"profile_id,omitempty"`
	SubProfileName     string          `json:"sub_profile_name"`
	Description        string          `json:"description,omitempty"`
	AreaType           string          `json:"area_type"`
	Tags               []string        `json:"tags"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          string          `json:"created_at,omitempty"`
	UpdatedAt          string          `json:"updated_at,omitempty"`
	CameraLocations    json.RawMessage `json:"camera_locations,omitempty"`
	MonitoringSchedule json.RawMessage `json:"monitoring_schedule,omitempty"`
	AlertSettings      json.RawMessage `json:"alert_settings,omitempty"`
}

// SubProfilePayload is the request body for create and full update. Nested
// collections must already be in keyed-map form.
type SubProfilePayload struct {
	SubProfileName     string                        `json:"sub_profile_name"`
	Description        string                        `json:"description"`
	Tags               []string                      `json:"tags"`
	AreaType           string                        `json:"area_type"`
	CameraLocations    map[string]CameraLocation     `json:"camera_locations"`
	MonitoringSchedule map[string]MonitoringSchedule `json:"monitoring_schedule"`
	AlertSettings      map[string]AlertSettings      `json:"alert_settings"`
}

// SubProfileForm is the editable state for create and edit flows. Nested
// collections are ordered, id-less lists while being edited.
type SubProfileForm struct {
	Name                string
	Description         string
	AreaType            string
	Tags                []string
	CameraLocations     []CameraLocation
	MonitoringSchedules []MonitoringSchedule
	AlertSettings       []AlertSettings
}

// Payload converts the form into the wire request body: tags normalized,
// nested collections re-keyed from current list order.
func (f SubProfileForm) Payload() SubProfilePayload {
	return SubProfilePayload{
		SubProfileName:     strings.TrimSpace(f.Name),
		Description:        f.Description,
		Tags:               NormalizeTags(f.Tags),
		AreaType:           f.AreaType,
		CameraLocations:    ItemsToMap(f.CameraLocations, CameraKeyPrefix),
		MonitoringSchedule: ItemsToMap(f.MonitoringSchedules, ScheduleKeyPrefix),
		AlertSettings:      ItemsToMap(f.AlertSettings, AlertKeyPrefix),
	}
}

// SubProfileFromWire decodes a backend sub-profile object into the in-memory
// entity, normalizing each nested collection to an ordered list.
func SubProfileFromWire(w SubProfileWire) *SubProfile {
	return &SubProfile{
		ID:          w.ID,
		UUID:        w.UUID,
		ProfileID:   w.ProfileID,
		Name:        w.SubProfileName,
		Description: w.Description,
		AreaType:    w.AreaType,
		Tags:        NormalizeTags(w.Tags),
		IsActive:    w.IsActive,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,

		CameraLocations:     ItemsFromJSON[CameraLocation](w.CameraLocations),
		MonitoringSchedules: ItemsFromJSON[MonitoringSchedule](w.MonitoringSchedule),
		AlertSettings:       ItemsFromJSON[AlertSettings](w.AlertSettings),
	}
}

// Form returns an editable copy of the sub-profile's mutable fields, used to
// seed the edit flow with current server state.
func (s *SubProfile) Form() SubProfileForm {
	return SubProfileForm{
		Name:                s.Name,
		Description:         s.Description,
		AreaType:            s.AreaType,
		Tags:                append([]string(nil), s.Tags...),
		CameraLocations:     append([]CameraLocation(nil), s.CameraLocations...),
		MonitoringSchedules: append([]MonitoringSchedule(nil), s.MonitoringSchedules...),
		AlertSettings:       append([]AlertSettings(nil), s.AlertSettings...),
	}
}

// NormalizeTags trims, drops empties and dedupes case-insensitively, keeping
// first-occurrence order. Stored tags are the case-folded forms.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
