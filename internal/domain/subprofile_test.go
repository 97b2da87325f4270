package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTags(t *testing.T) {
	tags := NormalizeTags([]string{"Security", "security", " monitoring "})
	assert.Equal(t, []string{"security", "monitoring"}, tags)
}

func TestNormalizeTags_DropsEmpties(t *testing.T) {
	tags := NormalizeTags([]string{"", "  ", "night", "NIGHT", "entry"})
	assert.Equal(t, []string{"night", "entry"}, tags)
}

func TestSubProfileFromWire(t *testing.T) {
	wire := SubProfileWire{
		ID:             42,
		UUID:           "abc-123",
		ProfileID:      7,
		SubProfileName: "Lobby",
		Description:    "Main lobby",
		AreaType:       "lobby",
		Tags:           []string{"VIP", "vip", "entry"},
		IsActive:       true,
		CreatedAt:      "2026-08-01T10:00:00Z",
		UpdatedAt:      "2026-08-02T10:00:00Z",
		CameraLocations: json.RawMessage(`{
			"camera_0": {"id": 3, "name": "Desk", "location": "Front desk", "camera_type": "dome"}
		}`),
		MonitoringSchedule: json.RawMessage(`[
			{"name": "Always", "days": ["monday"], "start_time": "00:00", "end_time": "23:59", "priority": "high"}
		]`),
		AlertSettings: json.RawMessage(`null`),
	}

	sp := SubProfileFromWire(wire)

	assert.Equal(t, 42, sp.ID)
	assert.Equal(t, "abc-123", sp.UUID)
	assert.Equal(t, 7, sp.ProfileID)
	assert.Equal(t, "Lobby", sp.Name)
	assert.Equal(t, []string{"vip", "entry"}, sp.Tags)
	assert.True(t, sp.IsActive)

	require.Len(t, sp.CameraLocations, 1)
	assert.Equal(t, "Desk", sp.CameraLocations[0].Name)
	assert.Zero(t, sp.CameraLocations[0].ID)

	require.Len(t, sp.MonitoringSchedules, 1)
	assert.Equal(t, "Always", sp.MonitoringSchedules[0].Name)

	assert.Empty(t, sp.AlertSettings)
}

func TestSubProfileFormPayload(t *testing.T) {
	form := SubProfileForm{
		Name:     "  Parking Lot  ",
		AreaType: "parking",
		Tags:     []string{"Outdoor", "outdoor"},
		CameraLocations: []CameraLocation{
			{Name: "Gate", Location: "Entry gate", CameraType: "bullet"},
			{Name: "Exit", Location: "Exit gate", CameraType: "bullet"},
		},
	}

	payload := form.Payload()

	assert.Equal(t, "Parking Lot", payload.SubProfileName)
	assert.Equal(t, []string{"outdoor"}, payload.Tags)
	require.Len(t, payload.CameraLocations, 2)
	assert.Equal(t, "Gate", payload.CameraLocations["camera_0"].Name)
	assert.Equal(t, "Exit", payload.CameraLocations["camera_1"].Name)
	assert.Empty(t, payload.MonitoringSchedule)
	assert.Empty(t, payload.AlertSettings)
}

func TestSubProfileForm_CopiesCollections(t *testing.T) {
	sp := &SubProfile{
		Name: "Office",
		Tags: []string{"internal"},
		CameraLocations: []CameraLocation{
			{Name: "Corner", Location: "NE corner", CameraType: "dome"},
		},
	}

	form := sp.Form()
	form.Tags[0] = "changed"
	form.CameraLocations[0].Name = "changed"

	assert.Equal(t, "internal", sp.Tags[0])
	assert.Equal(t, "Corner", sp.CameraLocations[0].Name)
}
