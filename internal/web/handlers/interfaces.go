package handlers

import (
	"context"

	"github.com/webutsav/admin-console/internal/admin"
	"github.com/webutsav/admin-console/internal/listview"
	"github.com/webutsav/admin-console/internal/models"
	"github.com/webutsav/admin-console/internal/session"
)

// JobsController defines the jobs page operations the handler drives.
type JobsController interface {
	Load(ctx context.Context) error
	Filtered(criteria listview.Criteria) []models.JobPosting
	View(id string) (models.JobPosting, bool)
	Create(ctx context.Context, actor string, draft models.JobDraft) (models.JobPosting, error)
	BeginEdit(id string) (models.JobDraft, error)
	UpdateDraft(id string, apply func(*models.JobDraft)) error
	SubmitEdit(ctx context.Context, actor, id string) error
	DiscardEdit(id string)
	Delete(ctx context.Context, actor, id string, confirmed bool) error
	State() listview.State
	Notifier() *listview.Notifier
}

// ApplicationsController defines the applications page operations.
type ApplicationsController interface {
	Load(ctx context.Context) error
	Filtered(criteria listview.Criteria) []models.Application
	View(id string) (models.Application, bool)
	AcknowledgeStatus(id, status string) bool
	State() listview.State
	Notifier() *listview.Notifier
}

// InquiriesController defines the inquiries page operations.
type InquiriesController interface {
	Load(ctx context.Context) error
	SetUnreadOnly(ctx context.Context, unreadOnly bool) error
	Filtered(criteria listview.Criteria) []models.Inquiry
	View(ctx context.Context, actor, id string) (models.Inquiry, error)
	Delete(ctx context.Context, actor, id string, confirmed bool) error
	Countries() []string
	UnreadCount() int
	RefreshUnreadCount(ctx context.Context) (int, error)
	ByCountry(ctx context.Context, country string) ([]models.Inquiry, error)
	State() listview.State
	Notifier() *listview.Notifier
}

// InquirySubmitter is the portal passthrough for the public contact form.
type InquirySubmitter interface {
	SubmitInquiry(ctx context.Context, sub models.InquirySubmission) (models.Inquiry, error)
}

// DashboardController defines the dashboard summary operations.
type DashboardController interface {
	Refresh(ctx context.Context) (admin.Summary, error)
	Current() (admin.Summary, bool)
}

// SessionManager defines the login lifecycle.
type SessionManager interface {
	Login(email, password string) (*session.Session, error)
	Validate(token string) (*session.Session, error)
	Logout(token string)
}
