package domain

import (
	"strconv"
	"strings"
)

// Synthetic key prefixes for the keyed-map wire form of each collection.
const (
	CameraKeyPrefix   = "camera"
	ScheduleKeyPrefix = "schedule"
	AlertKeyPrefix    = "alert"
)

// Priority levels for monitoring schedules.
var SchedulePriorities = []string{"low", "medium", "high"}

// Weekday tokens accepted in MonitoringSchedule.Days.
var WeekdayTokens = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// CameraLocation is one monitored camera position inside a sub-profile.
// ID is server-assigned and stripped when the item enters an editable list.
type CameraLocation struct {
	ID         int    `json:"id,omitempty"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	CameraType string `json:"camera_type"`
	IPAddress  string `json:"ip_address,omitempty"`
	Port       int    `json:"port,omitempty"`
	IsActive   bool   `json:"is_active"`
}

// MonitoringSchedule is one time window during which the area is monitored.
type MonitoringSchedule struct {
	ID        int      `json:"id,omitempty"`
	Name      string   `json:"name"`
	Days      []string `json:"days"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Timezone  string   `json:"timezone,omitempty"`
	IsActive  bool     `json:"is_active"`
	Priority  string   `json:"priority"`
}

// AlertSettings is one alert rule attached to a sub-profile.
type AlertSettings struct {
	ID                  int      `json:"id,omitempty"`
	Name                string   `json:"name"`
	Type                string   `json:"type"`
	NotificationMethods []string `json:"notification_methods"`
	Threshold           *float64 `json:"threshold,omitempty"`
	Enabled             bool     `json:"enabled"`
}

// Validate checks one camera location and returns all rule violations.
func (c CameraLocation) Validate() []string {
	var errs []string
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "camera name is required")
	}
	if strings.TrimSpace(c.Location) == "" {
		errs = append(errs, "camera location is required")
	}
	if strings.TrimSpace(c.CameraType) == "" {
		errs = append(errs, "camera type is required")
	}
	if c.IPAddress != "" && !isDottedQuadIPv4(c.IPAddress) {
		errs = append(errs, "ip address must be a valid IPv4 address")
	}
	if c.Port != 0 && (c.Port < 1 || c.Port > 65535) {
		errs = append(errs, "port must be between 1 and 65535")
	}
	return errs
}

// Validate checks one monitoring schedule and returns all rule violations.
func (m MonitoringSchedule) Validate() []string {
	var errs []string
	if strings.TrimSpace(m.Name) == "" {
		errs = append(errs, "schedule name is required")
	}
	if len(m.Days) == 0 {
		errs = append(errs, "at least one day is required")
	} else {
		for _, day := range m.Days {
			if !isWeekdayToken(day) {
				errs = append(errs, "invalid day: "+day)
			}
		}
	}
	if !isClockTime(m.StartTime) {
		errs = append(errs, "start time must be in HH:MM format")
	}
	if !isClockTime(m.EndTime) {
		errs = append(errs, "end time must be in HH:MM format")
	}
	if !isSchedulePriority(m.Priority) {
		errs = append(errs, "priority must be low, medium, or high")
	}
	return errs
}

// Validate checks one alert rule and returns all rule violations.
func (a AlertSettings) Validate() []string {
	var errs []string
	if strings.TrimSpace(a.Name) == "" {
		errs = append(errs, "alert name is required")
	}
	if strings.TrimSpace(a.Type) == "" {
		errs = append(errs, "alert type is required")
	}
	if len(a.NotificationMethods) == 0 {
		errs = append(errs, "at least one notification method is required")
	}
	return errs
}

// isDottedQuadIPv4 accepts only the dotted-quad form, e.g. "192.168.1.10".
func isDottedQuadIPv4(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}
	for _, part := range parts {
		if part == "" || len(part) > 3 {
			return false
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 {
			return false
		}
	}
	return true
}

// isClockTime accepts "HH:MM" with HH 00-23 and MM 00-59.
func isClockTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	hh, err := strconv.Atoi(s[:2])
	if err != nil || hh < 0 || hh > 23 {
		return false
	}
	mm, err := strconv.Atoi(s[3:])
	if err != nil || mm < 0 || mm > 59 {
		return false
	}
	return true
}

func isWeekdayToken(day string) bool {
	for _, token := range WeekdayTokens {
		if strings.EqualFold(day, token) {
			return true
		}
	}
	return false
}

func isSchedulePriority(p string) bool {
	for _, priority := range SchedulePriorities {
		if p == priority {
			return true
		}
	}
	return false
}
