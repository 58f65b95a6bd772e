package database

import (
	"context"
	"testing"

	"scanoverlay/internal/models"
)

func TestProfileRepo_InsertAndGet(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProfileRepo(db)
	ctx := context.Background()

	profile := models.NewDisplayProfile("pixel-7", models.DisplayMetrics{
		ScreenWidth:  1080,
		ScreenHeight: 2400,
		PixelRatio:   2.625,
	})

	if err := repo.Insert(ctx, profile); err != nil {
		t.Fatalf("Failed to insert profile: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, profile.ID)
	if err != nil {
		t.Fatalf("Failed to get profile: %v", err)
	}
	if retrieved == nil {
		t.Fatal("Expected profile, got nil")
	}

	if retrieved.Name != "pixel-7" {
		t.Errorf("Expected name pixel-7, got %s", retrieved.Name)
	}
	if retrieved.Metrics.ScreenWidth != 1080 {
		t.Errorf("Expected screen width 1080, got %g", retrieved.Metrics.ScreenWidth)
	}
	if retrieved.Metrics.PixelRatio != 2.625 {
		t.Errorf("Expected pixel ratio 2.625, got %g", retrieved.Metrics.PixelRatio)
	}
}

func TestProfileRepo_GetByID_NotFound(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProfileRepo(db)

	result, err := repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	if err != nil {
		t.Errorf("Expected no error for non-existent ID, got %v", err)
	}
	if result != nil {
		t.Error("Expected nil result for non-existent ID")
	}
}

func TestProfileRepo_List(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProfileRepo(db)
	ctx := context.Background()

	names := []string{"phone", "tablet", "kiosk"}
	for _, name := range names {
		profile := models.NewDisplayProfile(name, models.DisplayMetrics{
			ScreenWidth:  720,
			ScreenHeight: 1280,
			PixelRatio:   2,
		})
		if err := repo.Insert(ctx, profile); err != nil {
			t.Fatalf("Failed to insert profile %s: %v", name, err)
		}
	}

	profiles, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list profiles: %v", err)
	}

	if len(profiles) != 3 {
		t.Errorf("Expected 3 profiles, got %d", len(profiles))
	}
}

func TestProfileRepo_Delete(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewProfileRepo(db)
	ctx := context.Background()

	profile := models.NewDisplayProfile("temp", models.DisplayMetrics{
		ScreenWidth:  800,
		ScreenHeight: 600,
		PixelRatio:   1,
	})
	if err := repo.Insert(ctx, profile); err != nil {
		t.Fatalf("Failed to insert profile: %v", err)
	}

	deleted, err := repo.Delete(ctx, profile.ID)
	if err != nil {
		t.Fatalf("Failed to delete profile: %v", err)
	}
	if !deleted {
		t.Error("Expected delete to report a removed row")
	}

	result, err := repo.GetByID(ctx, profile.ID)
	if err != nil {
		t.Fatalf("Failed to get profile after delete: %v", err)
	}
	if result != nil {
		t.Error("Expected profile gone after delete")
	}

	deleted, err = repo.Delete(ctx, profile.ID)
	if err != nil {
		t.Fatalf("Second delete errored: %v", err)
	}
	if deleted {
		t.Error("Expected second delete to report no removed row")
	}
}
