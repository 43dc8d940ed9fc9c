package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/abdullah-abacus/UDST-Lost-Found/internal/models"
)

// ReportRepo is the storage surface the service needs. The concrete
// implementation lives in internal/repositories; tests supply fakes.
type ReportRepo interface {
	Insert(ctx context.Context, rep models.Report) (models.Report, error)
	ApprovedReports(ctx context.Context, typeFilter models.ReportType) ([]models.Report, error)
	ReportsByUserID(ctx context.Context, userID string) ([]models.Report, error)
	UpdateStatus(ctx context.Context, id int64, status models.ReportStatus) (models.Report, error)
	CreateSchema(ctx context.Context) error
}

type ReportService struct {
	ReportRepo ReportRepo
}

// SubmitReport validates the user-supplied fields and inserts a new
// pending report. Every identity field comes from the verified caller,
// never from the request body.
func (s *ReportService) SubmitReport(ctx context.Context, caller models.Identity, description string, reportType models.ReportType) (models.Report, error) {
	if n := utf8.RuneCountInString(description); n < 1 || n > models.MaxDescriptionLen {
		return models.Report{}, fmt.Errorf("%w: description must be between 1 and %d characters", models.ErrValidation, models.MaxDescriptionLen)
	}
	if !reportType.Valid() {
		return models.Report{}, fmt.Errorf("%w: type must be 'lost' or 'found'", models.ErrValidation)
	}

	rep := models.Report{
		UserID:      caller.UserID,
		UserRole:    caller.UserRole,
		Name:        caller.Name,
		Email:       caller.Email,
		Department:  caller.Department,
		Description: description,
		Type:        reportType,
		Status:      models.StatusPending,
	}
	return s.ReportRepo.Insert(ctx, rep)
}

// ApprovedReports lists publicly visible reports, optionally filtered
// by type. An empty filter means all types.
func (s *ReportService) ApprovedReports(ctx context.Context, typeFilter models.ReportType) ([]models.Report, error) {
	if typeFilter != "" && !typeFilter.Valid() {
		return nil, fmt.Errorf("%w: type must be 'lost' or 'found'", models.ErrValidation)
	}
	return s.ReportRepo.ApprovedReports(ctx, typeFilter)
}

func (s *ReportService) MyReports(ctx context.Context, caller models.Identity) ([]models.Report, error) {
	return s.ReportRepo.ReportsByUserID(ctx, caller.UserID)
}

// UpdateStatus decides a report. Nothing restricts the transition to
// reports still pending: an already-decided report can be re-decided.
func (s *ReportService) UpdateStatus(ctx context.Context, id int64, status models.ReportStatus) (models.Report, error) {
	if !status.Decision() {
		return models.Report{}, fmt.Errorf("%w: status must be 'approved' or 'rejected'", models.ErrValidation)
	}
	return s.ReportRepo.UpdateStatus(ctx, id, status)
}

func (s *ReportService) CreateSchema(ctx context.Context) error {
	return s.ReportRepo.CreateSchema(ctx)
}
