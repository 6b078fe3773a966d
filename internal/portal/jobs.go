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

// stringBool accepts the portal's stringy booleans ("true"/"false") as well
// as real JSON booleans, and always writes the string form back, which is
// what the server transports.
type stringBool bool

func (b *stringBool) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case bool:
		*b = stringBool(v)
	case string:
		*b = stringBool(v == "true")
	case nil:
		*b = false
	default:
		return fmt.Errorf("unexpected isActive value %v", raw)
	}
	return nil
}

func (b stringBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte(`"true"`), nil
	}
	return []byte(`"false"`), nil
}

// jobRecord is the job posting as it appears on the wire.
type jobRecord struct {
	ID                     json.Number `json:"id,omitempty"`
	JobID                  json.Number `json:"jobId,omitempty"`
	JobProfile             string      `json:"jobProfile"`
	JobRole                string      `json:"jobRole"`
	Department             string      `json:"department"`
	EmploymentType         string      `json:"employmentType"`
	Shift                  string      `json:"shift"`
	Experience             string      `json:"experience"`
	ExpectedSalary         string      `json:"expectedSalary"`
	Vacancy                json.Number `json:"vacancy,omitempty"`
	Description            string      `json:"description"`
	RolesAndResponsibility []string    `json:"rolesAndResponsibility"`
	Keyword                []string    `json:"keyword"`
	IsActive               stringBool  `json:"isActive"`
	PostedDate             string      `json:"postedDate,omitempty"`
}

// normalize converts a wire record into the canonical posting. The server
// answers with either "jobId" or "id" depending on the endpoint; jobId wins.
func (r jobRecord) normalize() models.JobPosting {
	id := r.JobID.String()
	if id == "" {
		id = r.ID.String()
	}

	vacancy, _ := r.Vacancy.Int64()

	var posted time.Time
	if r.PostedDate != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, r.PostedDate); err == nil {
				posted = t
				break
			}
		}
	}

	return models.JobPosting{
		ID:               id,
		Profile:          r.JobProfile,
		Role:             r.JobRole,
		Department:       r.Department,
		EmploymentType:   r.EmploymentType,
		Shift:            r.Shift,
		Experience:       r.Experience,
		ExpectedSalary:   r.ExpectedSalary,
		Vacancy:          int(vacancy),
		Description:      r.Description,
		Responsibilities: r.RolesAndResponsibility,
		Keywords:         r.Keyword,
		IsActive:         bool(r.IsActive),
		PostedDate:       posted,
	}
}

// jobPayload builds the wire body for create/update from a draft.
func jobPayload(d models.JobDraft) jobRecord {
	return jobRecord{
		JobProfile:             d.Profile,
		JobRole:                d.Role,
		Department:             d.Department,
		EmploymentType:         d.EmploymentType,
		Shift:                  d.Shift,
		Experience:             d.Experience,
		ExpectedSalary:         d.ExpectedSalary,
		Vacancy:                json.Number(fmt.Sprintf("%d", d.Vacancy)),
		Description:            d.Description,
		RolesAndResponsibility: d.Responsibilities,
		Keyword:                d.Keywords,
		IsActive:               stringBool(d.IsActive),
	}
}

// ListJobs returns all job postings in server order.
func (c *Client) ListJobs(ctx context.Context) ([]models.JobPosting, error) {
	var records []jobRecord
	if err := c.do(ctx, http.MethodGet, "/job/getAllJob", nil, &records); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	jobs := make([]models.JobPosting, 0, len(records))
	for _, r := range records {
		jobs = append(jobs, r.normalize())
	}
	return jobs, nil
}

// CreateJob submits a new posting and returns the server-assigned record.
func (c *Client) CreateJob(ctx context.Context, draft models.JobDraft) (models.JobPosting, error) {
	var record jobRecord
	if err := c.do(ctx, http.MethodPost, "/job/create", jobPayload(draft), &record); err != nil {
		return models.JobPosting{}, fmt.Errorf("create job: %w", err)
	}
	return record.normalize(), nil
}

// UpdateJob replaces the editable fields of an existing posting.
func (c *Client) UpdateJob(ctx context.Context, id string, draft models.JobDraft) (models.JobPosting, error) {
	if id == "" {
		return models.JobPosting{}, fmt.Errorf("update job: %w", ErrNotFound)
	}
	var record jobRecord
	path := "/job/update/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, path, jobPayload(draft), &record); err != nil {
		return models.JobPosting{}, fmt.Errorf("update job %s: %w", id, err)
	}
	return record.normalize(), nil
}

// DeleteJob permanently removes a posting.
func (c *Client) DeleteJob(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("delete job: %w", ErrNotFound)
	}
	path := "/job/delete/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete job %s: %w", id, err)
	}
	return nil
}
