package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abdullah-abacus/UDST-Lost-Found/internal/models"
)

type fakeReportRepo struct {
	inserted     *models.Report
	typeFilter   models.ReportType
	userID       string
	updatedID    int64
	updatedState models.ReportStatus

	reports []models.Report
	err     error
}

func (f *fakeReportRepo) Insert(ctx context.Context, rep models.Report) (models.Report, error) {
	f.inserted = &rep
	if f.err != nil {
		return models.Report{}, f.err
	}
	rep.ID = 1
	return rep, nil
}

func (f *fakeReportRepo) ApprovedReports(ctx context.Context, typeFilter models.ReportType) ([]models.Report, error) {
	f.typeFilter = typeFilter
	return f.reports, f.err
}

func (f *fakeReportRepo) ReportsByUserID(ctx context.Context, userID string) ([]models.Report, error) {
	f.userID = userID
	return f.reports, f.err
}

func (f *fakeReportRepo) UpdateStatus(ctx context.Context, id int64, status models.ReportStatus) (models.Report, error) {
	f.updatedID = id
	f.updatedState = status
	if f.err != nil {
		return models.Report{}, f.err
	}
	return models.Report{ID: id, Status: status}, nil
}

func (f *fakeReportRepo) CreateSchema(ctx context.Context) error {
	return f.err
}

var testCaller = models.Identity{
	UserID:     "u1",
	UserRole:   models.RoleStudent,
	Name:       "A",
	Email:      "a@x.com",
	Department: "CS",
}

func TestSubmitReportDescriptionBounds(t *testing.T) {
	svc := &ReportService{ReportRepo: &fakeReportRepo{}}
	ctx := context.Background()

	if _, err := svc.SubmitReport(ctx, testCaller, "", models.TypeLost); !errors.Is(err, models.ErrValidation) {
		t.Errorf("empty description: expected ErrValidation, got %v", err)
	}
	if _, err := svc.SubmitReport(ctx, testCaller, strings.Repeat("a", 2001), models.TypeLost); !errors.Is(err, models.ErrValidation) {
		t.Errorf("2001 chars: expected ErrValidation, got %v", err)
	}
	if _, err := svc.SubmitReport(ctx, testCaller, strings.Repeat("a", 2000), models.TypeLost); err != nil {
		t.Errorf("2000 chars: unexpected error %v", err)
	}
}

func TestSubmitReportInvalidType(t *testing.T) {
	svc := &ReportService{ReportRepo: &fakeReportRepo{}}

	if _, err := svc.SubmitReport(context.Background(), testCaller, "lost wallet", "stolen"); !errors.Is(err, models.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestSubmitReportSnapshotsCaller(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := &ReportService{ReportRepo: repo}

	rep, err := svc.SubmitReport(context.Background(), testCaller, "lost wallet", models.TypeLost)
	if err != nil {
		t.Fatalf("SubmitReport: %v", err)
	}
	if repo.inserted == nil {
		t.Fatal("expected an insert")
	}
	if repo.inserted.Status != models.StatusPending {
		t.Errorf("expected status pending, got %q", repo.inserted.Status)
	}
	if repo.inserted.UserID != testCaller.UserID ||
		repo.inserted.UserRole != testCaller.UserRole ||
		repo.inserted.Name != testCaller.Name ||
		repo.inserted.Email != testCaller.Email ||
		repo.inserted.Department != testCaller.Department {
		t.Errorf("identity not snapshotted from caller: %+v", repo.inserted)
	}
	if rep.ID != 1 {
		t.Errorf("expected assigned id 1, got %d", rep.ID)
	}
}

func TestApprovedReportsFilter(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := &ReportService{ReportRepo: repo}
	ctx := context.Background()

	if _, err := svc.ApprovedReports(ctx, "stolen"); !errors.Is(err, models.ErrValidation) {
		t.Errorf("expected ErrValidation for bad filter, got %v", err)
	}
	if _, err := svc.ApprovedReports(ctx, models.TypeFound); err != nil {
		t.Fatalf("ApprovedReports: %v", err)
	}
	if repo.typeFilter != models.TypeFound {
		t.Errorf("filter not passed through, got %q", repo.typeFilter)
	}
	if _, err := svc.ApprovedReports(ctx, ""); err != nil {
		t.Fatalf("ApprovedReports without filter: %v", err)
	}
}

func TestMyReportsUsesCallerID(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := &ReportService{ReportRepo: repo}

	if _, err := svc.MyReports(context.Background(), testCaller); err != nil {
		t.Fatalf("MyReports: %v", err)
	}
	if repo.userID != testCaller.UserID {
		t.Errorf("expected lookup by %q, got %q", testCaller.UserID, repo.userID)
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := &ReportService{ReportRepo: repo}
	ctx := context.Background()

	if _, err := svc.UpdateStatus(ctx, 5, models.StatusPending); !errors.Is(err, models.ErrValidation) {
		t.Errorf("pending is not a decision: expected ErrValidation, got %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, 5, "archived"); !errors.Is(err, models.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}

	rep, err := svc.UpdateStatus(ctx, 5, models.StatusApproved)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if repo.updatedID != 5 || repo.updatedState != models.StatusApproved {
		t.Errorf("update not passed through: id=%d status=%q", repo.updatedID, repo.updatedState)
	}
	if rep.Status != models.StatusApproved {
		t.Errorf("expected approved, got %q", rep.Status)
	}

	repo.err = models.ErrReportNotFound
	if _, err := svc.UpdateStatus(ctx, 99, models.StatusRejected); !errors.Is(err, models.ErrReportNotFound) {
		t.Errorf("expected ErrReportNotFound, got %v", err)
	}
}
