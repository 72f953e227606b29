package sqlite

import (
	"context"
	"testing"

	"github.com/federacion/fixture-scheduler/internal/core/models"
	"github.com/federacion/fixture-scheduler/internal/storage"
)

func createTestClub(t *testing.T, repo *ClubRepository) *models.Club {
	t.Helper()
	club := &models.Club{
		Name:     "River Plate",
		Locality: "Ayacucho",
		Venue:    models.VenueDescriptor{Default: "Cancha Central"},
	}
	if err := repo.Create(context.Background(), club); err != nil {
		t.Fatalf("failed to create test club: %v", err)
	}
	return club
}

func TestClubRepository_Create(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewClubRepository(db.Conn())
	ctx := context.Background()

	club := &models.Club{Name: "Boca", Locality: "Ayacucho", Venue: models.VenueDescriptor{Default: "Cancha Boca"}}
	if err := repo.Create(ctx, club); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if club.ID == 0 {
		t.Error("Create() should set club ID")
	}

	retrieved, err := repo.Get(ctx, club.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if retrieved.Name != club.Name {
		t.Errorf("Name = %v, want %v", retrieved.Name, club.Name)
	}
	if retrieved.Venue.Default != "Cancha Boca" {
		t.Errorf("Venue.Default = %v, want Cancha Boca", retrieved.Venue.Default)
	}
}

func TestClubRepository_GetByName(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewClubRepository(db.Conn())
	club := createTestClub(t, repo)

	found, err := repo.GetByName(context.Background(), club.Name)
	if err != nil {
		t.Fatalf("GetByName() error = %v", err)
	}
	if found.ID != club.ID {
		t.Errorf("ID = %v, want %v", found.ID, club.ID)
	}

	if _, err := repo.GetByName(context.Background(), "Ghost FC"); err != storage.ErrNotFound {
		t.Errorf("expected ErrNotFound for an unknown name, got %v", err)
	}
}

func TestClubRepository_List(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewClubRepository(db.Conn())
	ctx := context.Background()

	clubs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(clubs) != 0 {
		t.Errorf("expected an empty list initially, got %d", len(clubs))
	}

	createTestClub(t, repo)
	if err := repo.Create(ctx, &models.Club{Name: "Boca"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	clubs, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(clubs) != 2 {
		t.Fatalf("expected 2 clubs, got %d", len(clubs))
	}
	if clubs[0].Name != "Boca" {
		t.Errorf("expected clubs ordered by name (Boca first), got %v", clubs[0].Name)
	}
}

func TestClubRepository_Update(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewClubRepository(db.Conn())
	ctx := context.Background()

	if err := repo.Update(ctx, &models.Club{ID: 999, Name: "Ghost"}); err != storage.ErrNotFound {
		t.Errorf("expected ErrNotFound for a non-existent club, got %v", err)
	}

	club := createTestClub(t, repo)
	club.Name = "River Plate Renamed"
	club.Locality = "Centro"
	if err := repo.Update(ctx, club); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	updated, err := repo.Get(ctx, club.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if updated.Name != "River Plate Renamed" || updated.Locality != "Centro" {
		t.Errorf("unexpected club after update: %+v", updated)
	}
}

func TestClubRepository_Delete(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewClubRepository(db.Conn())
	ctx := context.Background()

	if err := repo.Delete(ctx, 999); err != storage.ErrNotFound {
		t.Errorf("expected ErrNotFound deleting a non-existent club, got %v", err)
	}

	club := createTestClub(t, repo)
	if err := repo.Delete(ctx, club.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.Get(ctx, club.ID); err != storage.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
