// Package format maps canonical records into display-ready shapes. Every
// function here is total: missing optional fields become sentinel text, and
// nothing panics on a zero value. Date conversion is one-way; callers that
// need the raw timestamp keep the canonical record.
package format

import (
	"time"

	"github.com/webutsav/admin-console/internal/models"
)

// Sentinels substituted for missing optional fields.
const (
	NotProvided  = "Not provided"
	NotSpecified = "Not specified"
)

const (
	dateLayout     = "Jan 2, 2006"
	dateTimeLayout = "Jan 2, 2006 3:04 PM"
)

// JobView is a job posting ready for display.
type JobView struct {
	ID               string   `json:"id"`
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
	Status           string   `json:"status"`
	PostedDate       string   `json:"postedDate"`
}

// Job renders one posting for display.
func Job(j models.JobPosting) JobView {
	return JobView{
		ID:               j.ID,
		Profile:          orSentinel(j.Profile, NotProvided),
		Role:             orSentinel(j.Role, NotProvided),
		Department:       orSentinel(j.Department, NotSpecified),
		EmploymentType:   orSentinel(j.EmploymentType, NotSpecified),
		Shift:            orSentinel(j.Shift, NotSpecified),
		Experience:       orSentinel(j.Experience, NotSpecified),
		ExpectedSalary:   orSentinel(j.ExpectedSalary, NotSpecified),
		Vacancy:          j.Vacancy,
		Description:      j.Description,
		Responsibilities: emptyList(j.Responsibilities),
		Keywords:         emptyList(j.Keywords),
		Status:           statusLabel(j.IsActive),
		PostedDate:       dateOrSentinel(j.PostedDate, dateLayout),
	}
}

// ApplicationView is an application ready for display.
type ApplicationView struct {
	ApplicationID string `json:"applicationId"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Department    string `json:"department"`
	JobRole       string `json:"jobRole"`
	Experience    string `json:"experience"`
	ResumeURL     string `json:"resumeUrl"`
	HasResume     bool   `json:"hasResume"`
	Status        string `json:"status"`
}

// Application renders one application for display.
func Application(a models.Application) ApplicationView {
	return ApplicationView{
		ApplicationID: a.ApplicationID,
		FullName:      orSentinel(a.FullName, NotProvided),
		Email:         orSentinel(a.Email, NotProvided),
		Phone:         orSentinel(a.Phone, NotProvided),
		Department:    orSentinel(a.Department, NotSpecified),
		JobRole:       orSentinel(a.JobRole, NotSpecified),
		Experience:    orSentinel(a.Experience, NotSpecified),
		ResumeURL:     a.ResumeURL,
		HasResume:     a.ResumeURL != "",
		Status:        orSentinel(a.Status, "Pending"),
	}
}

// InquiryView is an inquiry ready for display.
type InquiryView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	Country       string `json:"country"`
	Message       string `json:"message"`
	IsRead        bool   `json:"isRead"`
	CreatedAt     string `json:"createdAt"`
	FormattedDate string `json:"formattedDate"`
}

// Inquiry renders one inquiry for display.
func Inquiry(i models.Inquiry) InquiryView {
	return InquiryView{
		ID:            i.ID,
		Name:          orSentinel(i.Name, NotProvided),
		Email:         orSentinel(i.Email, NotProvided),
		PhoneNumber:   orSentinel(i.PhoneNumber, NotProvided),
		Country:       orSentinel(i.Country, NotSpecified),
		Message:       i.Message,
		IsRead:        i.IsRead,
		CreatedAt:     dateOrSentinel(i.CreatedAt, dateTimeLayout),
		FormattedDate: dateOrSentinel(i.CreatedAt, dateLayout),
	}
}

// Jobs renders a whole collection, preserving order.
func Jobs(jobs []models.JobPosting) []JobView {
	views := make([]JobView, 0, len(jobs))
	for _, j := range jobs {
		views = append(views, Job(j))
	}
	return views
}

// Applications renders a whole collection, preserving order.
func Applications(apps []models.Application) []ApplicationView {
	views := make([]ApplicationView, 0, len(apps))
	for _, a := range apps {
		views = append(views, Application(a))
	}
	return views
}

// Inquiries renders a whole collection, preserving order.
func Inquiries(inquiries []models.Inquiry) []InquiryView {
	views := make([]InquiryView, 0, len(inquiries))
	for _, i := range inquiries {
		views = append(views, Inquiry(i))
	}
	return views
}

func orSentinel(s, sentinel string) string {
	if s == "" {
		return sentinel
	}
	return s
}

func dateOrSentinel(t time.Time, layout string) string {
	if t.IsZero() {
		return NotSpecified
	}
	return t.Format(layout)
}

func emptyList(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func statusLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}
