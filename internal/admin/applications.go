package admin

import (
	"context"

	"github.com/webutsav/admin-console/internal/listview"
	"github.com/webutsav/admin-console/internal/logger"
	"github.com/webutsav/admin-console/internal/models"
)

// ApplicationsAPI is the slice of the portal client the applications
// controller needs. The portal exposes no mutation endpoints for
// applications.
type ApplicationsAPI interface {
	ListApplications(ctx context.Context) ([]models.Application, error)
}

// applicationsFilterSpec matches the applications page: search over name,
// email and job role; exact filters on department and review status.
var applicationsFilterSpec = listview.FilterSpec[models.Application]{
	SearchFields: func(a models.Application) []string {
		return []string{a.FullName, a.Email, a.JobRole}
	},
	Categories: map[string]func(models.Application) string{
		"department": func(a models.Application) string { return a.Department },
		"status":     func(a models.Application) string { return a.Status },
	},
}

// ApplicationsController manages the read-only applications list.
type ApplicationsController struct {
	list *listview.Controller[models.Application]
	log  *logger.Logger
}

// NewApplicationsController creates an applications controller in the Idle state.
func NewApplicationsController(api ApplicationsAPI, notes *listview.Notifier, log *logger.Logger) *ApplicationsController {
	return &ApplicationsController{
		list: listview.New(api.ListApplications, applicationsFilterSpec, notes),
		log:  log,
	}
}

// Load re-fetches the applications list from the portal.
func (c *ApplicationsController) Load(ctx context.Context) error {
	if err := c.list.Load(ctx); err != nil {
		c.log.Error().Err(err).Msg("failed to load applications")
		c.list.Notifier().Error("Error loading applications. Please try again.")
		return err
	}
	return nil
}

// State returns the list lifecycle state.
func (c *ApplicationsController) State() listview.State { return c.list.State() }

// Notifier returns the page's notification banner.
func (c *ApplicationsController) Notifier() *listview.Notifier { return c.list.Notifier() }

// Len returns the total number of applications loaded.
func (c *ApplicationsController) Len() int { return c.list.Len() }

// Filtered returns the applications matching the criteria, in load order.
func (c *ApplicationsController) Filtered(criteria listview.Criteria) []models.Application {
	return c.list.Filtered(criteria)
}

// View looks up one application in the in-memory collection.
func (c *ApplicationsController) View(id string) (models.Application, bool) {
	return c.list.Find(func(a models.Application) bool { return a.ApplicationID == id })
}

// AcknowledgeStatus records a reviewer's status choice locally. The portal
// has no endpoint for it, so this is a client-side acknowledgment only: the
// change is visible until the next re-fetch and is never sent to the server.
func (c *ApplicationsController) AcknowledgeStatus(id, status string) bool {
	valid := false
	for _, s := range models.ApplicationStatuses {
		if s == status {
			valid = true
			break
		}
	}
	if !valid {
		return false
	}

	patched := c.list.Patch(
		func(a models.Application) bool { return a.ApplicationID == id },
		func(a models.Application) models.Application {
			a.Status = status
			return a
		},
	)
	if patched {
		c.list.Notifier().Success("Application status updated.")
	}
	return patched
}
