package admin

import (
	"context"
	"fmt"
	"sync"

	"github.com/webutsav/admin-console/internal/audit"
	"github.com/webutsav/admin-console/internal/listview"
	"github.com/webutsav/admin-console/internal/logger"
	"github.com/webutsav/admin-console/internal/models"
	"github.com/webutsav/admin-console/internal/portal"
)

// InquiriesAPI is the slice of the portal client the inquiries controller needs.
type InquiriesAPI interface {
	ListInquiries(ctx context.Context) ([]models.Inquiry, error)
	ListUnreadInquiries(ctx context.Context) ([]models.Inquiry, error)
	ListInquiriesByCountry(ctx context.Context, country string) ([]models.Inquiry, error)
	GetInquiry(ctx context.Context, id string) (models.Inquiry, error)
	MarkInquiryRead(ctx context.Context, id string) error
	DeleteInquiry(ctx context.Context, id string) error
	UnreadInquiryCount(ctx context.Context) (int, error)
}

// inquiriesFilterSpec matches the inquiries page: search over name, email and
// message; exact filters on country and read status.
var inquiriesFilterSpec = listview.FilterSpec[models.Inquiry]{
	SearchFields: func(i models.Inquiry) []string {
		return []string{i.Name, i.Email, i.Message}
	},
	Categories: map[string]func(models.Inquiry) string{
		"country": func(i models.Inquiry) string { return i.Country },
		"status": func(i models.Inquiry) string {
			if i.IsRead {
				return "read"
			}
			return "unread"
		},
	},
}

// InquiriesController manages the inquiries list plus the cached unread
// counter shown as the sidebar badge.
type InquiriesController struct {
	list  *listview.Controller[models.Inquiry]
	api   InquiriesAPI
	audit audit.Recorder
	log   *logger.Logger

	mu         sync.Mutex
	unread     int
	unreadOnly bool
}

// NewInquiriesController creates an inquiries controller in the Idle state.
func NewInquiriesController(api InquiriesAPI, rec audit.Recorder, notes *listview.Notifier, log *logger.Logger) *InquiriesController {
	if rec == nil {
		rec = audit.Nop{}
	}
	c := &InquiriesController{
		api:   api,
		audit: rec,
		log:   log,
	}
	c.list = listview.New(c.fetch, inquiriesFilterSpec, notes)
	return c
}

// fetch honors the unread-only toggle on every (re)load.
func (c *InquiriesController) fetch(ctx context.Context) ([]models.Inquiry, error) {
	c.mu.Lock()
	unreadOnly := c.unreadOnly
	c.mu.Unlock()

	if unreadOnly {
		return c.api.ListUnreadInquiries(ctx)
	}
	return c.api.ListInquiries(ctx)
}

// Load re-fetches the inquiry list from the portal.
func (c *InquiriesController) Load(ctx context.Context) error {
	if err := c.list.Load(ctx); err != nil {
		c.log.Error().Err(err).Msg("failed to load inquiries")
		c.list.Notifier().Error("Error loading inquiries. Please try again.")
		return err
	}
	return nil
}

// SetUnreadOnly toggles between all inquiries and unread-only, reloading.
func (c *InquiriesController) SetUnreadOnly(ctx context.Context, unreadOnly bool) error {
	c.mu.Lock()
	c.unreadOnly = unreadOnly
	c.mu.Unlock()
	return c.Load(ctx)
}

// State returns the list lifecycle state.
func (c *InquiriesController) State() listview.State { return c.list.State() }

// Notifier returns the page's notification banner.
func (c *InquiriesController) Notifier() *listview.Notifier { return c.list.Notifier() }

// Filtered returns the inquiries matching the criteria, in load order.
func (c *InquiriesController) Filtered(criteria listview.Criteria) []models.Inquiry {
	return c.list.Filtered(criteria)
}

// Countries returns the distinct countries present in the loaded collection,
// in first-seen order, for the country filter select.
func (c *InquiriesController) Countries() []string {
	seen := make(map[string]bool)
	var countries []string
	for _, inq := range c.list.Items() {
		if inq.Country == "" || seen[inq.Country] {
			continue
		}
		seen[inq.Country] = true
		countries = append(countries, inq.Country)
	}
	return countries
}

// UnreadCount returns the cached unread counter.
func (c *InquiriesController) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unread
}

// RefreshUnreadCount re-fetches the unread counter from the portal.
func (c *InquiriesController) RefreshUnreadCount(ctx context.Context) (int, error) {
	count, err := c.api.UnreadInquiryCount(ctx)
	if err != nil {
		c.log.Warn().Err(err).Msg("failed to refresh unread count")
		return c.UnreadCount(), err
	}

	c.mu.Lock()
	c.unread = count
	c.mu.Unlock()
	return count, nil
}

// View re-fetches one inquiry by id — unlike jobs, the detail view always
// goes back to the portal. When the record is unread, exactly one mark-read
// call is issued, the local copy is patched, and the cached unread counter is
// decremented. Viewing an already-read inquiry issues no mark-read call.
func (c *InquiriesController) View(ctx context.Context, actor, id string) (models.Inquiry, error) {
	inquiry, err := c.api.GetInquiry(ctx, id)
	if err != nil {
		c.log.Error().Err(err).Str("inquiry_id", id).Msg("failed to load inquiry")
		c.list.Notifier().Error("Error loading inquiry details.")
		return models.Inquiry{}, err
	}

	if inquiry.IsRead {
		return inquiry, nil
	}

	// guard against a portal read replica lagging behind our own mark-read:
	// if the local copy is already read, this view must not mark again
	if local, ok := c.list.Find(func(i models.Inquiry) bool { return i.ID == id }); ok && local.IsRead {
		inquiry.IsRead = true
		return inquiry, nil
	}

	if err := c.api.MarkInquiryRead(ctx, id); err != nil {
		c.log.Error().Err(err).Str("inquiry_id", id).Msg("failed to mark inquiry read")
		c.list.Notifier().Error(portal.UserMessage(err))
		// the detail itself loaded fine; surface it with the stale flag
		return inquiry, nil
	}

	inquiry.IsRead = true

	c.list.Patch(
		func(i models.Inquiry) bool { return i.ID == id && !i.IsRead },
		func(i models.Inquiry) models.Inquiry {
			i.IsRead = true
			return i
		},
	)

	// the server's counter just dropped; the badge follows even when the
	// record is not in the local list, as on a deep link to the detail view
	c.mu.Lock()
	if c.unread > 0 {
		c.unread--
	}
	c.mu.Unlock()

	if err := c.audit.Record(actor, audit.ActionInquiryRead, id, ""); err != nil {
		c.log.Warn().Err(err).Msg("failed to record audit entry")
	}

	c.list.Notifier().Success("Inquiry marked as read")
	return inquiry, nil
}

// Delete permanently removes an inquiry. Same confirmation gate and local
// patch semantics as job deletion.
func (c *InquiriesController) Delete(ctx context.Context, actor, id string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	if err := c.api.DeleteInquiry(ctx, id); err != nil {
		c.log.Error().Err(err).Str("inquiry_id", id).Msg("failed to delete inquiry")
		c.list.Notifier().Error("Error deleting inquiry. Please try again.")
		return err
	}

	// an unread inquiry that disappears also leaves the badge
	removedUnread := false
	if inq, ok := c.list.Find(func(i models.Inquiry) bool { return i.ID == id }); ok && !inq.IsRead {
		removedUnread = true
	}
	c.list.Remove(func(i models.Inquiry) bool { return i.ID == id })
	if removedUnread {
		c.mu.Lock()
		if c.unread > 0 {
			c.unread--
		}
		c.mu.Unlock()
	}

	if err := c.audit.Record(actor, audit.ActionInquiryDelete, id, ""); err != nil {
		c.log.Warn().Err(err).Msg("failed to record audit entry")
	}

	c.list.Notifier().Success("Inquiry deleted successfully")
	return nil
}

// ByCountry fetches inquiries filtered server-side. Part of the portal
// contract even though the page filter normally runs client-side.
func (c *InquiriesController) ByCountry(ctx context.Context, country string) ([]models.Inquiry, error) {
	inquiries, err := c.api.ListInquiriesByCountry(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("inquiries by country: %w", err)
	}
	return inquiries, nil
}
