package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/webutsav/admin-console/internal/models"
)

// inquiryRecord is a visitor inquiry as it appears on the wire.
type inquiryRecord struct {
	ID          json.Number `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	PhoneNumber string      `json:"phoneNumber"`
	Country     string      `json:"country"`
	Message     string      `json:"message"`
	IsRead      bool        `json:"isRead"`
	CreatedAt   string      `json:"createdAt"`
}

func (r inquiryRecord) normalize() models.Inquiry {
	var created time.Time
	if r.CreatedAt != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, r.CreatedAt); err == nil {
				created = t
				break
			}
		}
	}
	return models.Inquiry{
		ID:          r.ID.String(),
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Country:     r.Country,
		Message:     r.Message,
		IsRead:      r.IsRead,
		CreatedAt:   created,
	}
}

func normalizeInquiries(records []inquiryRecord) []models.Inquiry {
	out := make([]models.Inquiry, 0, len(records))
	for _, r := range records {
		out = append(out, r.normalize())
	}
	return out
}

// ListInquiries returns all inquiries in server order.
func (c *Client) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	var records []inquiryRecord
	if err := c.do(ctx, http.MethodGet, "/api/inquiries/all", nil, &records); err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return normalizeInquiries(records), nil
}

// ListUnreadInquiries returns only the inquiries not yet marked read.
func (c *Client) ListUnreadInquiries(ctx context.Context) ([]models.Inquiry, error) {
	var records []inquiryRecord
	if err := c.do(ctx, http.MethodGet, "/api/inquiries/unread", nil, &records); err != nil {
		return nil, fmt.Errorf("list unread inquiries: %w", err)
	}
	return normalizeInquiries(records), nil
}

// ListInquiriesByCountry returns inquiries filtered server-side by country.
func (c *Client) ListInquiriesByCountry(ctx context.Context, country string) ([]models.Inquiry, error) {
	var records []inquiryRecord
	path := "/api/inquiries/country/" + url.PathEscape(country)
	if err := c.do(ctx, http.MethodGet, path, nil, &records); err != nil {
		return nil, fmt.Errorf("list inquiries by country: %w", err)
	}
	return normalizeInquiries(records), nil
}

// GetInquiry fetches one inquiry by id. Callers viewing an unread inquiry are
// expected to follow up with MarkInquiryRead.
func (c *Client) GetInquiry(ctx context.Context, id string) (models.Inquiry, error) {
	if id == "" {
		return models.Inquiry{}, fmt.Errorf("get inquiry: %w", ErrNotFound)
	}
	var record inquiryRecord
	if err := c.do(ctx, http.MethodGet, "/api/inquiries/"+url.PathEscape(id), nil, &record); err != nil {
		return models.Inquiry{}, fmt.Errorf("get inquiry %s: %w", id, err)
	}
	return record.normalize(), nil
}

// MarkInquiryRead marks an inquiry as read. Idempotent: marking an
// already-read inquiry succeeds.
func (c *Client) MarkInquiryRead(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("mark inquiry read: %w", ErrNotFound)
	}
	path := "/api/inquiries/" + url.PathEscape(id) + "/mark-read"
	if err := c.do(ctx, http.MethodPut, path, nil, nil); err != nil {
		return fmt.Errorf("mark inquiry %s read: %w", id, err)
	}
	return nil
}

// DeleteInquiry permanently removes an inquiry from the portal.
func (c *Client) DeleteInquiry(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("delete inquiry: %w", ErrNotFound)
	}
	if err := c.do(ctx, http.MethodDelete, "/api/inquiries/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete inquiry %s: %w", id, err)
	}
	return nil
}

// UnreadInquiryCount returns the number of unread inquiries.
func (c *Client) UnreadInquiryCount(ctx context.Context) (int, error) {
	var payload struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/inquiries/unread/count", nil, &payload); err != nil {
		return 0, fmt.Errorf("unread inquiry count: %w", err)
	}
	return payload.Count, nil
}

// SubmitInquiry posts a new visitor inquiry. Validation runs client-side
// first so malformed submissions never reach the wire.
func (c *Client) SubmitInquiry(ctx context.Context, sub models.InquirySubmission) (models.Inquiry, error) {
	if err := sub.Validate(); err != nil {
		return models.Inquiry{}, err
	}
	var record inquiryRecord
	if err := c.do(ctx, http.MethodPost, "/api/inquiries/submit", sub, &record); err != nil {
		return models.Inquiry{}, fmt.Errorf("submit inquiry: %w", err)
	}
	return record.normalize(), nil
}
