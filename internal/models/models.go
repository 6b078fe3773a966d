// Package models defines the canonical records the admin console works with.
// Wire-format quirks of the remote portal API (stringy booleans, mixed id
// field names) are normalized away before these types are constructed.
package models

import (
	"net/mail"
	"strings"
	"time"
)

// Departments the portal knows about. The server is authoritative; this list
// is a UI convenience for filters and form selects.
var Departments = []string{
	"Research & Development",
	"Sales",
	"Digital Marketing",
	"Back Office",
}

// Employment types accepted by the portal.
var EmploymentTypes = []string{"Full-time", "Internship"}

// Work shifts accepted by the portal.
var Shifts = []string{"Day Shift", "Night Shift"}

// Application review statuses shown in the UI.
var ApplicationStatuses = []string{"Pending", "Reviewed", "Shortlisted", "Rejected", "Hired"}

// JobPosting is a job record as the admin console sees it. ID and PostedDate
// are server-assigned; PostedDate is immutable after creation.
type JobPosting struct {
	ID               string
	Profile          string
	Role             string
	Department       string
	EmploymentType   string
	Shift            string
	Experience       string
	ExpectedSalary   string
	Vacancy          int
	Description      string
	Responsibilities []string
	Keywords         []string
	IsActive         bool
	PostedDate       time.Time
}

// JobDraft holds the editable fields of a job posting while a user edits or
// creates one. Changes to a draft never touch the in-memory list until submit.
type JobDraft struct {
	Profile          string   `json:"profile"`
	Role             string   `json:"role"`
	Department       string   `json:"department"`
	EmploymentType   string   `json:"employmentType"`
	Shift            string   `json:"shift"`
	Experience       string   `json:"experience"`
	ExpectedSalary   string   `json:"expectedSalary"`
	Vacancy          int      `json:"vacancy"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Keywords         []string `json:"keywords"`
	IsActive         bool     `json:"isActive"`
}

// DraftFrom clones the editable fields of a posting into a draft buffer.
func DraftFrom(j JobPosting) JobDraft {
	return JobDraft{
		Profile:          j.Profile,
		Role:             j.Role,
		Department:       j.Department,
		EmploymentType:   j.EmploymentType,
		Shift:            j.Shift,
		Experience:       j.Experience,
		ExpectedSalary:   j.ExpectedSalary,
		Vacancy:          j.Vacancy,
		Description:      j.Description,
		Responsibilities: append([]string(nil), j.Responsibilities...),
		Keywords:         append([]string(nil), j.Keywords...),
		IsActive:         j.IsActive,
	}
}

// Validate checks a draft before submission. The server enforces its own
// rules; this catches the obvious mistakes before a round-trip.
func (d JobDraft) Validate() error {
	var v ValidationError
	if strings.TrimSpace(d.Profile) == "" {
		v.Add("profile", "job profile is required")
	}
	if strings.TrimSpace(d.Role) == "" {
		v.Add("role", "job role is required")
	}
	if strings.TrimSpace(d.Department) == "" {
		v.Add("department", "department is required")
	}
	if d.Vacancy < 0 {
		v.Add("vacancy", "vacancy count cannot be negative")
	}
	return v.OrNil()
}

// Application is a submitted job application. Read-only from the admin side.
type Application struct {
	ApplicationID string
	FullName      string
	Email         string
	Phone         string
	Department    string
	JobRole       string
	Experience    string
	ResumeURL     string
	Status        string
}

// Inquiry is a visitor inquiry. Created outside this system; the admin
// console reads, marks read, and deletes them.
type Inquiry struct {
	ID          string
	Name        string
	Email       string
	PhoneNumber string
	Country     string
	Message     string
	IsRead      bool
	CreatedAt   time.Time
}

// InquirySubmission is the payload for submitting a new inquiry.
type InquirySubmission struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Country     string `json:"country"`
	Message     string `json:"message"`
}

// Validate mirrors the portal's inquiry form rules.
func (s InquirySubmission) Validate() error {
	var v ValidationError
	if strings.TrimSpace(s.Name) == "" {
		v.Add("name", "name is required")
	}
	if strings.TrimSpace(s.Email) == "" {
		v.Add("email", "email is required")
	} else if _, err := mail.ParseAddress(s.Email); err != nil {
		v.Add("email", "please enter a valid email address")
	}
	if strings.TrimSpace(s.PhoneNumber) == "" {
		v.Add("phoneNumber", "phone number is required")
	}
	if strings.TrimSpace(s.Country) == "" {
		v.Add("country", "country is required")
	}
	return v.OrNil()
}

// FieldError is one failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects client-side validation failures. It is detected
// with errors.As at the operation boundary and surfaced to the user verbatim.
type ValidationError struct {
	Fields []FieldError
}

// Add appends a failed rule.
func (v *ValidationError) Add(field, message string) {
	v.Fields = append(v.Fields, FieldError{Field: field, Message: message})
}

// OrNil returns nil when no rule failed, so callers can return it directly.
func (v ValidationError) OrNil() error {
	if len(v.Fields) == 0 {
		return nil
	}
	return &v
}

func (v *ValidationError) Error() string {
	msgs := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}
