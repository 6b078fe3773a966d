package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/webutsav/admin-console/internal/models"
)

// applicationRecord is an applied-employee record as it appears on the wire.
type applicationRecord struct {
	ApplicationID json.Number `json:"applicationId"`
	FullName      string      `json:"fullName"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Department    string      `json:"department"`
	JobRole       string      `json:"jobRole"`
	Experience    string      `json:"experience"`
	ResumeURL     string      `json:"resumeUrl"`
	Status        string      `json:"status"`
}

func (r applicationRecord) normalize() models.Application {
	status := r.Status
	if status == "" {
		status = "Pending"
	}
	return models.Application{
		ApplicationID: r.ApplicationID.String(),
		FullName:      r.FullName,
		Email:         r.Email,
		Phone:         r.Phone,
		Department:    r.Department,
		JobRole:       r.JobRole,
		Experience:    r.Experience,
		ResumeURL:     r.ResumeURL,
		Status:        status,
	}
}

// ListApplications returns all submitted applications in server order.
// Applications are read-only from the admin side; there is no create, update
// or delete endpoint on the portal.
func (c *Client) ListApplications(ctx context.Context) ([]models.Application, error) {
	var records []applicationRecord
	if err := c.do(ctx, http.MethodGet, "/employees/getAllAppliedEmployees", nil, &records); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	apps := make([]models.Application, 0, len(records))
	for _, r := range records {
		apps = append(apps, r.normalize())
	}
	return apps, nil
}
