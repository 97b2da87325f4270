package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"videometrics-profiles/internal/config"
	"videometrics-profiles/internal/logger"
	"videometrics-profiles/internal/repository"
	"videometrics-profiles/internal/service"
)

func main() {
	var profileID = flag.Int("profile", 0, "Parent profile ID")
	var op = flag.String("op", "list", "Operation: list | get | toggle | delete | export")
	var subProfileID = flag.Int("id", 0, "Sub-profile ID (get/toggle/delete)")
	var confirm = flag.String("confirm", "", "Typed sub-profile name confirmation (delete)")
	var search = flag.String("search", "", "Search term (list/export)")
	var active = flag.String("active", "all", "Active filter: all | active | inactive")
	var out = flag.String("out", "sub-profiles.xlsx", "Output file (export)")
	flag.Parse()

	if *profileID <= 0 {
		log.Fatal("-profile is required")
	}

	cfg := config.Load()

	zapLogger, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "videometrics-profiles")
	if err != nil {
		log.Fatalf("Cannot build logger: %v", err)
	}
	defer zapLogger.Sync()

	repo := repository.NewHTTPSubProfileRepository(
		cfg.API.BaseURL,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
		repository.StaticToken(cfg.API.Token),
		zapLogger,
	)

	svc := service.NewSubProfileService(*profileID, repo, zapLogger)
	svc.SetSearchTerm(*search)
	svc.SetActiveFilter(service.ActiveFilter(*active))

	ctx := context.Background()
	if !svc.Refresh(ctx) {
		log.Fatalf("Refresh failed: %s", svc.LastError())
	}

	switch *op {
	case "list":
		total, activeCount, inactiveCount := svc.Counts()
		fmt.Printf("%d sub-profiles (%d active, %d inactive)\n\n", total, activeCount, inactiveCount)
		for _, sp := range svc.FilteredView() {
			state := "inactive"
			if sp.IsActive {
				state = "active"
			}
			fmt.Printf("  [%d] %-30s %-10s %-8s tags=%s\n",
				sp.ID, sp.Name, sp.AreaType, state, strings.Join(sp.Tags, ","))
		}

	case "get":
		sp := svc.Get(*subProfileID)
		if sp == nil {
			log.Fatalf("Sub-profile %d not found in profile %d", *subProfileID, *profileID)
		}
		fmt.Printf("Name:        %s\n", sp.Name)
		fmt.Printf("Area type:   %s\n", sp.AreaType)
		fmt.Printf("Description: %s\n", sp.Description)
		fmt.Printf("Tags:        %s\n", strings.Join(sp.Tags, ", "))
		fmt.Printf("Active:      %t\n", sp.IsActive)
		fmt.Printf("Cameras:     %d\n", len(sp.CameraLocations))
		fmt.Printf("Schedules:   %d\n", len(sp.MonitoringSchedules))
		fmt.Printf("Alerts:      %d\n", len(sp.AlertSettings))

	case "toggle":
		if !svc.ToggleActive(ctx, *subProfileID) {
			log.Fatalf("Toggle failed: %s", svc.LastError())
		}
		sp := svc.Get(*subProfileID)
		fmt.Printf("Sub-profile %d is_active=%t\n", *subProfileID, sp.IsActive)

	case "delete":
		if !svc.Delete(ctx, *subProfileID, *confirm) {
			log.Fatalf("Delete failed: %s", svc.LastError())
		}
		fmt.Printf("Sub-profile %d deleted\n", *subProfileID)

	case "export":
		data, err := service.GenerateSubProfileExport(svc.FilteredView())
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			log.Fatalf("Cannot write %s: %v", *out, err)
		}
		fmt.Printf("Wrote %s\n", *out)

	default:
		log.Fatalf("Unknown op: %s", *op)
	}
}
