// Package admin wires the generic list controller, the portal client, and
// the formatter into one controller per admin page: jobs, applications,
// inquiries, and the dashboard summary.
package admin

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/webutsav/admin-console/internal/audit"
	"github.com/webutsav/admin-console/internal/listview"
	"github.com/webutsav/admin-console/internal/logger"
	"github.com/webutsav/admin-console/internal/models"
	"github.com/webutsav/admin-console/internal/portal"
)

// errors
var (
	// ErrConfirmationRequired gates irreversible actions behind an explicit
	// confirmation from the user.
	ErrConfirmationRequired = errors.New("confirmation required")

	// ErrNoDraft means submit/discard was called with no edit in progress.
	ErrNoDraft = errors.New("no edit in progress")

	// ErrNotInList means the id was not found in the in-memory collection.
	ErrNotInList = errors.New("not in the current list")
)

// JobsAPI is the slice of the portal client the jobs controller needs.
type JobsAPI interface {
	ListJobs(ctx context.Context) ([]models.JobPosting, error)
	CreateJob(ctx context.Context, draft models.JobDraft) (models.JobPosting, error)
	UpdateJob(ctx context.Context, id string, draft models.JobDraft) (models.JobPosting, error)
	DeleteJob(ctx context.Context, id string) error
}

// jobsFilterSpec matches the jobs page: search over profile, role and
// keywords; exact filters on department and active status.
var jobsFilterSpec = listview.FilterSpec[models.JobPosting]{
	SearchFields: func(j models.JobPosting) []string {
		fields := []string{j.Profile, j.Role}
		return append(fields, j.Keywords...)
	},
	Categories: map[string]func(models.JobPosting) string{
		"department": func(j models.JobPosting) string { return j.Department },
		"status": func(j models.JobPosting) string {
			if j.IsActive {
				return "Active"
			}
			return "Inactive"
		},
	},
}

// JobsController manages the job postings list: load, filter, view, create,
// edit via a draft buffer, and delete with a confirmation gate. Drafts are
// keyed by posting id so concurrent edits of different postings never share
// a buffer.
type JobsController struct {
	list  *listview.Controller[models.JobPosting]
	api   JobsAPI
	audit audit.Recorder
	log   *logger.Logger

	mu     sync.Mutex
	drafts map[string]*models.JobDraft
}

// NewJobsController creates a jobs controller in the Idle state.
func NewJobsController(api JobsAPI, rec audit.Recorder, notes *listview.Notifier, log *logger.Logger) *JobsController {
	if rec == nil {
		rec = audit.Nop{}
	}
	return &JobsController{
		list:   listview.New(api.ListJobs, jobsFilterSpec, notes),
		api:    api,
		audit:  rec,
		log:    log,
		drafts: make(map[string]*models.JobDraft),
	}
}

// Load re-fetches the job list from the portal.
func (c *JobsController) Load(ctx context.Context) error {
	if err := c.list.Load(ctx); err != nil {
		c.log.Error().Err(err).Msg("failed to load jobs")
		c.list.Notifier().Error("Error loading jobs. Please try again.")
		return err
	}
	return nil
}

// State returns the list lifecycle state.
func (c *JobsController) State() listview.State { return c.list.State() }

// Notifier returns the page's notification banner.
func (c *JobsController) Notifier() *listview.Notifier { return c.list.Notifier() }

// Filtered returns the postings matching the criteria, in load order.
func (c *JobsController) Filtered(criteria listview.Criteria) []models.JobPosting {
	return c.list.Filtered(criteria)
}

// View looks up one posting in the in-memory collection. No fresh fetch.
func (c *JobsController) View(id string) (models.JobPosting, bool) {
	return c.list.Find(func(j models.JobPosting) bool { return j.ID == id })
}

// BeginEdit clones the posting's editable fields into a draft buffer and
// returns a copy. Field edits mutate only the draft until submit.
func (c *JobsController) BeginEdit(id string) (models.JobDraft, error) {
	job, ok := c.View(id)
	if !ok {
		return models.JobDraft{}, fmt.Errorf("edit job %s: %w", id, ErrNotInList)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	draft := models.DraftFrom(job)
	c.drafts[id] = &draft
	return draft, nil
}

// UpdateDraft applies a change to the posting's in-progress draft.
func (c *JobsController) UpdateDraft(id string, apply func(*models.JobDraft)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	draft, ok := c.drafts[id]
	if !ok {
		return ErrNoDraft
	}
	apply(draft)
	return nil
}

// Draft returns a copy of the posting's in-progress draft.
func (c *JobsController) Draft(id string) (models.JobDraft, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	draft, ok := c.drafts[id]
	if !ok {
		return models.JobDraft{}, false
	}
	return *draft, true
}

// SubmitEdit sends the posting's draft to the portal. On success the full
// list is re-fetched (not locally patched) and the draft is cleared; on
// failure the draft is kept so the user does not lose their work.
func (c *JobsController) SubmitEdit(ctx context.Context, actor, id string) error {
	c.mu.Lock()
	stored, ok := c.drafts[id]
	if !ok {
		c.mu.Unlock()
		return ErrNoDraft
	}
	draft := *stored
	c.mu.Unlock()

	if err := draft.Validate(); err != nil {
		c.list.Notifier().Error(err.Error())
		return err
	}

	if _, err := c.api.UpdateJob(ctx, id, draft); err != nil {
		c.log.Error().Err(err).Str("job_id", id).Msg("failed to update job")
		c.list.Notifier().Error(portal.UserMessage(err))
		return err
	}

	c.mu.Lock()
	delete(c.drafts, id)
	c.mu.Unlock()

	if err := c.audit.Record(actor, audit.ActionJobUpdate, id, draft.Profile); err != nil {
		c.log.Warn().Err(err).Msg("failed to record audit entry")
	}

	c.list.Notifier().Success("Job updated successfully!")
	return c.list.Load(ctx)
}

// DiscardEdit drops the posting's draft without submitting.
func (c *JobsController) DiscardEdit(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.drafts, id)
}

// Create validates and posts a new job, then re-fetches the list so the
// server-assigned id and posted date show up.
func (c *JobsController) Create(ctx context.Context, actor string, draft models.JobDraft) (models.JobPosting, error) {
	if err := draft.Validate(); err != nil {
		c.list.Notifier().Error(err.Error())
		return models.JobPosting{}, err
	}

	created, err := c.api.CreateJob(ctx, draft)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to create job")
		c.list.Notifier().Error(portal.UserMessage(err))
		return models.JobPosting{}, err
	}

	if err := c.audit.Record(actor, audit.ActionJobCreate, created.ID, created.Profile); err != nil {
		c.log.Warn().Err(err).Msg("failed to record audit entry")
	}

	c.list.Notifier().Success("Job posted successfully!")
	if err := c.list.Load(ctx); err != nil {
		return created, err
	}
	return created, nil
}

// Delete permanently removes a posting. The confirmed flag is the
// irreversible-action gate; without it nothing is sent. On success the
// posting is removed from the in-memory collection locally (no re-fetch); on
// failure the collection is left untouched.
func (c *JobsController) Delete(ctx context.Context, actor, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	if err := c.api.DeleteJob(ctx, id); err != nil {
		c.log.Error().Err(err).Str("job_id", id).Msg("failed to delete job")
		c.list.Notifier().Error("Failed to delete job. Please try again.")
		return err
	}

	c.list.Remove(func(j models.JobPosting) bool { return j.ID == id })

	if err := c.audit.Record(actor, audit.ActionJobDelete, id, ""); err != nil {
		c.log.Warn().Err(err).Msg("failed to record audit entry")
	}

	c.list.Notifier().Success("Job deleted successfully!")
	return nil
}
