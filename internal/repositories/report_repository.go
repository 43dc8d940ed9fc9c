package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/abdullah-abacus/UDST-Lost-Found/internal/models"
)

// ReportRepository runs the per-request SQL for the lost-and-found
// table. Table is the configured table name, validated as a plain
// identifier at config load before it is interpolated here.
type ReportRepository struct {
	DB    *sql.DB
	Table string
}

const reportColumns = "id, user_id, user_role, name, email, department, description, type, status, created_at"

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReport(row rowScanner) (models.Report, error) {
	var rep models.Report
	err := row.Scan(
		&rep.ID, &rep.UserID, &rep.UserRole, &rep.Name, &rep.Email,
		&rep.Department, &rep.Description, &rep.Type, &rep.Status, &rep.CreatedAt,
	)
	return rep, err
}

func (r *ReportRepository) Insert(ctx context.Context, rep models.Report) (models.Report, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, user_role, name, email, department, description, type, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		RETURNING `+reportColumns, r.Table)
	row := r.DB.QueryRowContext(ctx, query,
		rep.UserID, rep.UserRole, rep.Name, rep.Email, rep.Department,
		rep.Description, rep.Type, rep.Status)
	return scanReport(row)
}

// ApprovedReports returns approved reports, newest first, optionally
// narrowed to one report type. No pagination is applied.
func (r *ReportRepository) ApprovedReports(ctx context.Context, typeFilter models.ReportType) ([]models.Report, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if typeFilter != "" {
		query := fmt.Sprintf(`
			SELECT `+reportColumns+`
			FROM %s
			WHERE status = $1 AND type = $2
			ORDER BY created_at DESC`, r.Table)
		rows, err = r.DB.QueryContext(ctx, query, models.StatusApproved, typeFilter)
	} else {
		query := fmt.Sprintf(`
			SELECT `+reportColumns+`
			FROM %s
			WHERE status = $1
			ORDER BY created_at DESC`, r.Table)
		rows, err = r.DB.QueryContext(ctx, query, models.StatusApproved)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReports(rows)
}

func (r *ReportRepository) ReportsByUserID(ctx context.Context, userID string) ([]models.Report, error) {
	query := fmt.Sprintf(`
		SELECT `+reportColumns+`
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC`, r.Table)
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReports(rows)
}

// UpdateStatus sets the status of one report and returns the updated
// row. Match and update happen in a single statement so there is no
// check-then-act window between an existence probe and the write.
func (r *ReportRepository) UpdateStatus(ctx context.Context, id int64, status models.ReportStatus) (models.Report, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1
		WHERE id = $2
		RETURNING `+reportColumns, r.Table)
	rep, err := scanReport(r.DB.QueryRowContext(ctx, query, status, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Report{}, models.ErrReportNotFound
	}
	return rep, err
}

// CreateSchema drops and recreates the table and its secondary
// indexes. Destructive; exposed only through the setup endpoint.
func (r *ReportRepository) CreateSchema(ctx context.Context) error {
	statements := []string{
		fmt.Sprintf(`DROP TABLE IF EXISTS %s`, r.Table),
		fmt.Sprintf(`
			CREATE TABLE %s (
				id BIGSERIAL PRIMARY KEY,
				user_id VARCHAR(50) NOT NULL,
				user_role VARCHAR(20) NOT NULL,
				name VARCHAR(100) NOT NULL,
				email VARCHAR(100) NOT NULL,
				department VARCHAR(100) NOT NULL DEFAULT '',
				description TEXT NOT NULL,
				type VARCHAR(10) NOT NULL,
				status VARCHAR(20) NOT NULL DEFAULT 'pending',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`, r.Table),
		fmt.Sprintf(`CREATE INDEX idx_%[1]s_user_id ON %[1]s (user_id)`, r.Table),
		fmt.Sprintf(`CREATE INDEX idx_%[1]s_user_role ON %[1]s (user_role)`, r.Table),
		fmt.Sprintf(`CREATE INDEX idx_%[1]s_status ON %[1]s (status)`, r.Table),
		fmt.Sprintf(`CREATE INDEX idx_%[1]s_type ON %[1]s (type)`, r.Table),
		fmt.Sprintf(`CREATE INDEX idx_%[1]s_email ON %[1]s (email)`, r.Table),
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func collectReports(rows *sql.Rows) ([]models.Report, error) {
	var reports []models.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}
