package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rideboard/internal/db"
	"rideboard/internal/models"
	"rideboard/internal/testutil"
)

func TestCreateOrganizer(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()

	org := &models.Organizer{
		Name: "Night Riders",
		Slug: "night-riders",
	}
	if err := database.CreateOrganizer(ctx, org); err != nil {
		t.Fatalf("CreateOrganizer() error = %v", err)
	}
	if org.ID == 0 {
		t.Error("CreateOrganizer() did not assign an id")
	}
	if org.CreatedAt.IsZero() {
		t.Error("CreateOrganizer() did not set created_at")
	}
}

func TestCreateOrganizer_DuplicateSlug(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()

	if err := database.CreateOrganizer(ctx, &models.Organizer{Name: "First", Slug: "dupe"}); err != nil {
		t.Fatalf("CreateOrganizer() error = %v", err)
	}

	err := database.CreateOrganizer(ctx, &models.Organizer{Name: "Second", Slug: "dupe"})
	if !errors.Is(err, db.ErrDuplicateOrganizer) {
		t.Errorf("CreateOrganizer() error = %v, want ErrDuplicateOrganizer", err)
	}
}

func TestGetOrganizerBySlug(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()

	id := testutil.CreateTestOrganizer(t, database, "Gravel Gang", "gravel-gang")

	found, err := database.GetOrganizerBySlug(ctx, "gravel-gang")
	if err != nil {
		t.Fatalf("GetOrganizerBySlug() error = %v", err)
	}
	if found.ID != id {
		t.Errorf("GetOrganizerBySlug() id = %d, want %d", found.ID, id)
	}
	if found.Name != "Gravel Gang" {
		t.Errorf("GetOrganizerBySlug() name = %q, want %q", found.Name, "Gravel Gang")
	}
}

func TestGetOrganizerBySlug_NotFound(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	_, err := database.GetOrganizerBySlug(context.Background(), "no-such-crew")
	if !errors.Is(err, db.ErrOrganizerNotFound) {
		t.Errorf("GetOrganizerBySlug() error = %v, want ErrOrganizerNotFound", err)
	}
}

func TestGetAllOrganizers_Alphabetical(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()

	testutil.CreateTestOrganizer(t, database, "Zulu Riders", "zulu-riders")
	testutil.CreateTestOrganizer(t, database, "Alpha Crew", "alpha-crew")

	orgs, err := database.GetAllOrganizers(ctx)
	if err != nil {
		t.Fatalf("GetAllOrganizers() error = %v", err)
	}
	if len(orgs) != 2 {
		t.Fatalf("GetAllOrganizers() returned %d organizers, want 2", len(orgs))
	}
	if orgs[0].Name != "Alpha Crew" || orgs[1].Name != "Zulu Riders" {
		t.Errorf("GetAllOrganizers() order = [%s, %s], want alphabetical", orgs[0].Name, orgs[1].Name)
	}
}

func TestDeleteOrganizerKeepsEvents(t *testing.T) {
	database, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()

	orgID := testutil.CreateTestOrganizer(t, database, "Ephemeral Crew", "ephemeral-crew")

	e := testEvent("Linked Ride", time.Now().Add(24*time.Hour))
	e.OrganizerID = &orgID
	created, err := database.CreateEvent(ctx, e)
	if err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}

	if _, err := database.Pool.Exec(ctx, "DELETE FROM organizers WHERE id = $1", orgID); err != nil {
		t.Fatalf("deleting organizer: %v", err)
	}

	// ON DELETE SET NULL: the event survives with its link cleared.
	after, err := database.GetEventByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetEventByID() error = %v", err)
	}
	if after.OrganizerID != nil {
		t.Errorf("event organizer_id = %v, want nil after organizer delete", *after.OrganizerID)
	}
	if after.Organizer != "Test Crew" {
		t.Errorf("event organizer label = %q, want untouched %q", after.Organizer, "Test Crew")
	}
}
