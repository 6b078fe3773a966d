package admin

import (
	"context"
	"sync"
	"time"

	"github.com/webutsav/admin-console/internal/logger"
	"github.com/webutsav/admin-console/internal/models"
)

// DashboardAPI is the slice of the portal client the dashboard needs.
type DashboardAPI interface {
	ListJobs(ctx context.Context) ([]models.JobPosting, error)
	ListApplications(ctx context.Context) ([]models.Application, error)
	UnreadInquiryCount(ctx context.Context) (int, error)
}

// Summary is the dashboard's aggregate snapshot.
type Summary struct {
	TotalJobs         int                 `json:"totalJobs"`
	ActiveJobs        int                 `json:"activeJobs"`
	TotalApplications int                 `json:"totalApplications"`
	UnreadInquiries   int                 `json:"unreadInquiries"`
	RecentJobs        []models.JobPosting `json:"-"`
	RefreshedAt       time.Time           `json:"refreshedAt"`
}

// DashboardController aggregates counts across the three entities. A failed
// refresh keeps the last good snapshot on display rather than blanking the
// dashboard.
type DashboardController struct {
	api DashboardAPI
	log *logger.Logger

	mu       sync.Mutex
	snapshot Summary
	haveData bool
	lastErr  string
}

// NewDashboardController creates a dashboard controller with no snapshot.
func NewDashboardController(api DashboardAPI, log *logger.Logger) *DashboardController {
	return &DashboardController{api: api, log: log}
}

// Refresh rebuilds the summary from the portal. On any failure the previous
// snapshot survives and the error is reported.
func (c *DashboardController) Refresh(ctx context.Context) (Summary, error) {
	jobs, err := c.api.ListJobs(ctx)
	if err != nil {
		return c.fail(err)
	}
	apps, err := c.api.ListApplications(ctx)
	if err != nil {
		return c.fail(err)
	}
	unread, err := c.api.UnreadInquiryCount(ctx)
	if err != nil {
		return c.fail(err)
	}

	active := 0
	for _, j := range jobs {
		if j.IsActive {
			active++
		}
	}

	recent := jobs
	if len(recent) > 5 {
		recent = recent[:5]
	}

	summary := Summary{
		TotalJobs:         len(jobs),
		ActiveJobs:        active,
		TotalApplications: len(apps),
		UnreadInquiries:   unread,
		RecentJobs:        append([]models.JobPosting(nil), recent...),
		RefreshedAt:       time.Now(),
	}

	c.mu.Lock()
	c.snapshot = summary
	c.haveData = true
	c.lastErr = ""
	c.mu.Unlock()

	return summary, nil
}

func (c *DashboardController) fail(err error) (Summary, error) {
	c.log.Error().Err(err).Msg("dashboard refresh failed")

	c.mu.Lock()
	c.lastErr = err.Error()
	stale := c.snapshot
	c.mu.Unlock()

	return stale, err
}

// Current returns the last good snapshot, if any.
func (c *DashboardController) Current() (Summary, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot, c.haveData
}

// LastError returns the message of the most recent failed refresh.
func (c *DashboardController) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
