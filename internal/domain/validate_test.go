package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() SubProfileForm {
	return SubProfileForm{
		Name:        "Main Entrance",
		Description: "Street-facing entrance",
		AreaType:    "entrance",
		Tags:        []string{"security"},
		CameraLocations: []CameraLocation{
			{Name: "Door cam", Location: "Above door", CameraType: "dome", IPAddress: "10.0.0.12", Port: 554, IsActive: true},
		},
		MonitoringSchedules: []MonitoringSchedule{
			{Name: "Business hours", Days: []string{"monday", "tuesday"}, StartTime: "08:00", EndTime: "18:00", Timezone: "UTC", IsActive: true, Priority: "medium"},
		},
		AlertSettings: []AlertSettings{
			{Name: "Motion", Type: "motion", NotificationMethods: []string{"email"}, Enabled: true},
		},
	}
}

func TestValidateSubProfileForm_Valid(t *testing.T) {
	form := validForm()

	errs := ValidateSubProfileForm(form)
	assert.Empty(t, errs)

	// validating twice stays clean
	errs = ValidateSubProfileForm(form)
	assert.Empty(t, errs)
}

func TestValidateSubProfileForm_Name(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr string
	}{
		{"empty", "", "name is required"},
		{"whitespace only", "   ", "name is required"},
		{"single char", "A", "must be at least 2 characters"},
		{"single char padded", " A ", "must be at least 2 characters"},
		{"two chars", "AB", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			form.Name = tc.value
			errs := ValidateSubProfileForm(form)
			if tc.wantErr == "" {
				assert.NotContains(t, errs, "name")
			} else {
				assert.Equal(t, tc.wantErr, errs["name"])
			}
		})
	}
}

func TestValidateSubProfileForm_Description(t *testing.T) {
	form := validForm()

	long := make([]rune, 500)
	for i := range long {
		long[i] = 'x'
	}
	form.Description = string(long)
	assert.NotContains(t, ValidateSubProfileForm(form), "description")

	form.Description = string(long) + "x"
	errs := ValidateSubProfileForm(form)
	assert.Equal(t, "must be less than 500 characters", errs["description"])
}

func TestValidateSubProfileForm_AreaType(t *testing.T) {
	form := validForm()
	form.AreaType = ""

	errs := ValidateSubProfileForm(form)
	assert.Equal(t, "area type is required", errs["area_type"])

	form.AreaType = "spaceship"
	errs = ValidateSubProfileForm(form)
	assert.Equal(t, "invalid area type", errs["area_type"])

	form.AreaType = "other"
	assert.NotContains(t, ValidateSubProfileForm(form), "area_type")
}

func TestValidateSubProfileForm_AllErrorsReported(t *testing.T) {
	// no short-circuit: every applicable rule fires
	form := SubProfileForm{Name: "", Description: "", AreaType: ""}

	errs := ValidateSubProfileForm(form)
	assert.Len(t, errs, 2)
	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, "area type is required", errs["area_type"])
}

func TestValidateSubProfileForm_DoesNotMutate(t *testing.T) {
	form := validForm()
	form.Name = "  Padded  "

	ValidateSubProfileForm(form)

	assert.Equal(t, "  Padded  ", form.Name)
}

func TestCameraLocationValidate(t *testing.T) {
	camera := CameraLocation{Name: "Cam", Location: "Wall", CameraType: "dome"}
	assert.Empty(t, camera.Validate())

	camera = CameraLocation{}
	errs := camera.Validate()
	assert.Contains(t, errs, "camera name is required")
	assert.Contains(t, errs, "camera location is required")
	assert.Contains(t, errs, "camera type is required")

	camera = CameraLocation{Name: "Cam", Location: "Wall", CameraType: "dome", IPAddress: "999.1.1.1"}
	assert.Contains(t, camera.Validate(), "ip address must be a valid IPv4 address")

	camera.IPAddress = "not-an-ip"
	assert.Contains(t, camera.Validate(), "ip address must be a valid IPv4 address")

	camera.IPAddress = "192.168.0.1"
	assert.Empty(t, camera.Validate())

	camera.Port = 70000
	assert.Contains(t, camera.Validate(), "port must be between 1 and 65535")

	camera.Port = 65535
	assert.Empty(t, camera.Validate())
}

func TestMonitoringScheduleValidate(t *testing.T) {
	schedule := MonitoringSchedule{Name: "Hours", Days: []string{"monday"}, StartTime: "08:00", EndTime: "18:00", Priority: "low"}
	assert.Empty(t, schedule.Validate())

	schedule.Days = nil
	assert.Contains(t, schedule.Validate(), "at least one day is required")

	schedule.Days = []string{"funday"}
	assert.Contains(t, schedule.Validate(), "invalid day: funday")

	schedule.Days = []string{"Monday"}
	schedule.StartTime = "8:00"
	assert.Contains(t, schedule.Validate(), "start time must be in HH:MM format")

	schedule.StartTime = "08:00"
	schedule.EndTime = "24:00"
	assert.Contains(t, schedule.Validate(), "end time must be in HH:MM format")

	schedule.EndTime = "18:00"
	schedule.Priority = "urgent"
	assert.Contains(t, schedule.Validate(), "priority must be low, medium, or high")
}

func TestAlertSettingsValidate(t *testing.T) {
	alert := AlertSettings{Name: "Motion", Type: "motion", NotificationMethods: []string{"sms"}}
	assert.Empty(t, alert.Validate())

	alert = AlertSettings{}
	errs := alert.Validate()
	assert.Contains(t, errs, "alert name is required")
	assert.Contains(t, errs, "alert type is required")
	assert.Contains(t, errs, "at least one notification method is required")
}

func TestFormValid(t *testing.T) {
	assert.True(t, FormValid(validForm()))

	form := validForm()
	form.CameraLocations[0].Name = ""
	assert.False(t, FormValid(form))

	form = validForm()
	form.Name = ""
	assert.False(t, FormValid(form))
}
