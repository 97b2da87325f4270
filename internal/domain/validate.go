package domain

import (
	"strings"
	"unicode/utf8"
)

// ValidateSubProfileForm checks the basic-info fields of a sub-profile form
// and returns a field-keyed error map; an empty map means valid. All rules
// are evaluated independently, and the form is never mutated.
func ValidateSubProfileForm(form SubProfileForm) map[string]string {
	errs := map[string]string{}

	name := strings.TrimSpace(form.Name)
	if name == "" {
		errs["name"] = "name is required"
	} else if utf8.RuneCountInString(name) < 2 {
		errs["name"] = "must be at least 2 characters"
	}

	if utf8.RuneCountInString(form.Description) > 500 {
		errs["description"] = "must be less than 500 characters"
	}

	areaType := strings.TrimSpace(form.AreaType)
	if areaType == "" {
		errs["area_type"] = "area type is required"
	} else if !isAreaType(areaType) {
		errs["area_type"] = "invalid area type"
	}

	return errs
}

func isAreaType(areaType string) bool {
	for _, known := range AreaTypes {
		if areaType == known {
			return true
		}
	}
	return false
}

// ValidateFormItems runs the per-item validators over every nested collection
// and returns a section-keyed error map (messages joined per section).
func ValidateFormItems(form SubProfileForm) map[string]string {
	errs := map[string]string{}

	var cameraErrs []string
	for _, camera := range form.CameraLocations {
		cameraErrs = append(cameraErrs, camera.Validate()...)
	}
	if len(cameraErrs) > 0 {
		errs["camera_locations"] = strings.Join(cameraErrs, "; ")
	}

	var scheduleErrs []string
	for _, schedule := range form.MonitoringSchedules {
		scheduleErrs = append(scheduleErrs, schedule.Validate()...)
	}
	if len(scheduleErrs) > 0 {
		errs["monitoring_schedule"] = strings.Join(scheduleErrs, "; ")
	}

	var alertErrs []string
	for _, alert := range form.AlertSettings {
		alertErrs = append(alertErrs, alert.Validate()...)
	}
	if len(alertErrs) > 0 {
		errs["alert_settings"] = strings.Join(alertErrs, "; ")
	}

	return errs
}

// FormValid reports whether the form is submittable: both the basic-info map
// and every nested-item validation list must be empty.
func FormValid(form SubProfileForm) bool {
	return len(ValidateSubProfileForm(form)) == 0 && len(ValidateFormItems(form)) == 0
}
