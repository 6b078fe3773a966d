package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobDraft_Validate(t *testing.T) {
	tests := []struct {
		name       string
		draft      JobDraft
		wantFields []string
	}{
		{
			name: "valid",
			draft: JobDraft{
				Profile: "Backend Engineer", Role: "Engineer", Department: "Sales",
			},
		},
		{
			name:       "missing everything",
			draft:      JobDraft{},
			wantFields: []string{"profile", "role", "department"},
		},
		{
			name: "whitespace only",
			draft: JobDraft{
				Profile: "   ", Role: "Engineer", Department: "Sales",
			},
			wantFields: []string{"profile"},
		},
		{
			name: "negative vacancy",
			draft: JobDraft{
				Profile: "X", Role: "Y", Department: "Z", Vacancy: -1,
			},
			wantFields: []string{"vacancy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Len(t, vErr.Fields, len(tt.wantFields))
			for i, field := range tt.wantFields {
				assert.Equal(t, field, vErr.Fields[i].Field)
			}
		})
	}
}

func TestInquirySubmission_Validate(t *testing.T) {
	valid := InquirySubmission{
		Name:        "Alice",
		Email:       "alice@example.com",
		PhoneNumber: "12345",
		Country:     "India",
		Message:     "hello",
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Email = "not-an-email"
	var vErr *ValidationError
	require.ErrorAs(t, bad.Validate(), &vErr)
	assert.Equal(t, "email", vErr.Fields[0].Field)

	empty := InquirySubmission{}
	require.ErrorAs(t, empty.Validate(), &vErr)
	assert.Len(t, vErr.Fields, 4)
}

func TestDraftFrom_ClonesSlices(t *testing.T) {
	job := JobPosting{
		ID:       "1",
		Profile:  "Engineer",
		Keywords: []string{"go"},
	}

	draft := DraftFrom(job)
	draft.Keywords[0] = "rust"

	assert.Equal(t, "go", job.Keywords[0], "editing a draft must not touch the posting")
}

func TestValidationError_ErrorMessage(t *testing.T) {
	var v ValidationError
	v.Add("a", "first problem")
	v.Add("b", "second problem")

	err := v.OrNil()
	require.Error(t, err)
	assert.Equal(t, "first problem; second problem", err.Error())

	var empty ValidationError
	assert.NoError(t, empty.OrNil())
	assert.False(t, errors.Is(empty.OrNil(), err))
}
