package models

import "time"

type ReportType string

const (
	TypeLost  ReportType = "lost"
	TypeFound ReportType = "found"
)

func (t ReportType) Valid() bool {
	return t == TypeLost || t == TypeFound
}

type ReportStatus string

const (
	StatusPending  ReportStatus = "pending"
	StatusApproved ReportStatus = "approved"
	StatusRejected ReportStatus = "rejected"
)

// Decision reports whether the status is one an admin may set. New
// reports always start as pending; pending itself is never a valid
// target of the update operation.
func (s ReportStatus) Decision() bool {
	return s == StatusApproved || s == StatusRejected
}

// Roles carried in verified tokens. Nothing enforces these values on
// incoming claims; they document the expected vocabulary.
const (
	RoleStudent = "student"
	RoleFaculty = "faculty"
	RoleAdmin   = "admin"
	RoleAlumni  = "alumni"
	RolePublic  = "public"
)

const MaxDescriptionLen = 2000

// Report is one lost-or-found item record. Identity fields are copied
// from the submitter's verified token at creation and never updated.
type Report struct {
	ID          int64        `json:"id"`
	UserID      string       `json:"user_id"`
	UserRole    string       `json:"user_role"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Department  string       `json:"department"`
	Description string       `json:"description"`
	Type        ReportType   `json:"type"`
	Status      ReportStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}
