package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"bhavesh/backend/internal/model"
	"bhavesh/backend/internal/repository"
	"bhavesh/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestEnquiryRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEnquiryRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Enquiry{
		EnquiryNumber:   "BE-1756702800000-9f3a2b1c",
		Name:            "Ravi",
		Phone:           "9876543210",
		Email:           strPtr("ravi@example.com"),
		Quantity:        strPtr("50"),
		Description:     "Need 50 custom brass bushings, 12mm bore",
		RequirementType: "Custom Manufacturing",
		FileNames:       []string{"drawing.pdf", "photo.jpg"},
		FileURLs:        []string{"https://files.example.com/a.pdf", "https://files.example.com/b.jpg"},
		Status:          model.StatusNew,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "BE-1756702800000-9f3a2b1c", got.EnquiryNumber)
	require.Equal(t, "Ravi", got.Name)
	require.Equal(t, model.StatusNew, got.Status)
	require.Equal(t, []string{"drawing.pdf", "photo.jpg"}, got.FileNames)
	require.Equal(t, []string{"https://files.example.com/a.pdf", "https://files.example.com/b.jpg"}, got.FileURLs)
	require.Len(t, got.FileURLs, len(got.FileNames))
	require.Nil(t, got.InternalNotes)
}

func TestEnquiryRepository_Create_EmptyAttachmentArrays(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEnquiryRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.Enquiry{
		EnquiryNumber:   "BE-1-aa",
		Name:            "Asha",
		Phone:           "9000000001",
		Description:     "Stainless fasteners, M8, bulk order",
		RequirementType: "Custom Manufacturing",
		Status:          model.StatusNew,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.FileNames)
	require.NotNil(t, got.FileURLs)
	require.Empty(t, got.FileNames)
	require.Empty(t, got.FileURLs)
}

func TestEnquiryRepository_Create_DuplicateNumber(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEnquiryRepository(db)
	ctx := context.Background()

	enquiry := model.Enquiry{
		EnquiryNumber:   "BE-dup-01",
		Name:            "Ravi",
		Phone:           "9876543210",
		Description:     "Need 50 custom brass bushings",
		RequirementType: "Custom Manufacturing",
		Status:          model.StatusNew,
	}

	_, err := repo.Create(ctx, enquiry)
	require.NoError(t, err)

	_, err = repo.Create(ctx, enquiry)
	require.ErrorIs(t, err, repository.ErrDuplicateEnquiryNumber)
}

func TestEnquiryRepository_List_NewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEnquiryRepository(db)
	ctx := context.Background()

	testutil.SeedEnquiry(t, db, model.Enquiry{Name: "First", Phone: "1", Description: "first enquiry"})
	testutil.SeedEnquiry(t, db, model.Enquiry{Name: "Second", Phone: "2", Description: "second enquiry"})

	enquiries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, enquiries, 2)
	// Same stored timestamp is possible; the id tiebreaker keeps the
	// later insert first.
	require.Equal(t, "Second", enquiries[0].Name)
	require.Equal(t, "First", enquiries[1].Name)
}

func TestEnquiryRepository_UpdateStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEnquiryRepository(db)
	ctx := context.Background()

	id := testutil.SeedEnquiry(t, db, model.Enquiry{Name: "Ravi", Phone: "9876543210", Description: "brass bushings"})

	require.NoError(t, repo.UpdateStatus(ctx, id, model.StatusResponded))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, model.StatusResponded, got.Status)
}

func TestEnquiryRepository_UpdateStatus_Missing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEnquiryRepository(db)

	err := repo.UpdateStatus(context.Background(), 12345, model.StatusCompleted)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestEnquiryRepository_UpdateNotes(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEnquiryRepository(db)
	ctx := context.Background()

	id := testutil.SeedEnquiry(t, db, model.Enquiry{Name: "Ravi", Phone: "9876543210", Description: "brass bushings"})

	require.NoError(t, repo.UpdateNotes(ctx, id, "quoted on call"))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.InternalNotes)
	require.Equal(t, "quoted on call", *got.InternalNotes)
}

func TestEnquiryRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewEnquiryRepository(db)
	ctx := context.Background()

	id := testutil.SeedEnquiry(t, db, model.Enquiry{Name: "Ravi", Phone: "9876543210", Description: "brass bushings"})

	require.NoError(t, repo.Delete(ctx, id))

	_, err := repo.GetByID(ctx, id)
	require.ErrorIs(t, err, sql.ErrNoRows)

	err = repo.Delete(ctx, id)
	require.ErrorIs(t, err, sql.ErrNoRows)
}
