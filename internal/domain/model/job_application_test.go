package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jobtrackr/jobtrackr-api/internal/errors"
)

const (
	testUUID1 = "6f1f3fbc-93a7-43fd-92d4-08ec07de9d4a"
	testUUID2 = "9ad0cc13-1af4-4ae6-a4f5-dfcbc6b47f7b"
	testUUID3 = "c3a1f3a1-4b5a-4a27-9f6d-2b9a2f8d4a11"
)

func TestParseApplicationStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    ApplicationStatus
		wantOK  bool
	}{
		{"WISHLIST", StatusWishlist, true},
		{"applied", StatusApplied, true},
		{" Interviewing ", StatusInterviewing, true},
		{"ACCEPTED", StatusAccepted, true},
		{"rejected", StatusRejected, true},
		{"DROPPED", StatusDropped, true},
		{"", "", false},
		{"OFFER", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseApplicationStatus(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateJobApplicationRequest_Validate(t *testing.T) {
	valid := func() CreateJobApplicationRequest {
		return CreateJobApplicationRequest{
			Title:   "Backend Engineer",
			Company: "Acme",
		}
	}

	t.Run("defaults status to wishlist", func(t *testing.T) {
		req := valid()
		require.NoError(t, req.Validate())
		assert.Equal(t, StatusWishlist, req.Status)
	})

	t.Run("normalizes explicit status", func(t *testing.T) {
		req := valid()
		req.Status = "applied"
		require.NoError(t, req.Validate())
		assert.Equal(t, StatusApplied, req.Status)
	})

	t.Run("trims title and company", func(t *testing.T) {
		req := valid()
		req.Title = "  Backend Engineer  "
		req.Company = "  Acme  "
		require.NoError(t, req.Validate())
		assert.Equal(t, "Backend Engineer", req.Title)
		assert.Equal(t, "Acme", req.Company)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		req := valid()
		req.Title = "   "
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, "title", apperrors.GetField(err))
	})

	t.Run("rejects overlong title", func(t *testing.T) {
		req := valid()
		req.Title = strings.Repeat("x", maxTitleLen+1)
		assert.True(t, apperrors.IsValidation(req.Validate()))
	})

	t.Run("rejects missing company", func(t *testing.T) {
		req := valid()
		req.Company = ""
		err := req.Validate()
		require.True(t, apperrors.IsValidation(err))
		assert.Equal(t, "company", apperrors.GetField(err))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		req := valid()
		req.Status = "OFFER"
		assert.True(t, apperrors.IsValidation(req.Validate()))
	})

	t.Run("rejects malformed resume url", func(t *testing.T) {
		req := valid()
		bad := "ftp://resume.example.com/cv.pdf"
		req.ResumeURL = &bad
		err := req.Validate()
		require.True(t, apperrors.IsValidation(err))
		assert.Equal(t, "resume_url", apperrors.GetField(err))
	})

	t.Run("accepts https resume url", func(t *testing.T) {
		req := valid()
		ok := "https://resume.example.com/cv.pdf"
		req.ResumeURL = &ok
		require.NoError(t, req.Validate())
	})

	t.Run("rejects duplicate tag ids", func(t *testing.T) {
		req := valid()
		req.TagIDs = []string{testUUID1, testUUID1}
		err := req.Validate()
		require.True(t, apperrors.IsValidation(err))
		assert.Equal(t, "tag_ids", apperrors.GetField(err))
	})

	t.Run("rejects non-uuid tag ids", func(t *testing.T) {
		req := valid()
		req.TagIDs = []string{"not-a-uuid"}
		assert.True(t, apperrors.IsValidation(req.Validate()))
	})
}

func TestReorderRequest_Validate(t *testing.T) {
	valid := func() ReorderRequest {
		return ReorderRequest{
			Status: "applied",
			Orders: []OrderPair{
				{ID: testUUID1, Order: 2},
				{ID: testUUID2, Order: 0},
				{ID: testUUID3, Order: 1},
			},
		}
	}

	t.Run("accepts and normalizes status", func(t *testing.T) {
		req := valid()
		require.NoError(t, req.Validate())
		assert.Equal(t, StatusApplied, req.Status)
		assert.Equal(t, []string{testUUID1, testUUID2, testUUID3}, req.IDs())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		req := valid()
		req.Status = "PENDING"
		assert.True(t, apperrors.IsValidation(req.Validate()))
	})

	t.Run("rejects empty orders", func(t *testing.T) {
		req := valid()
		req.Orders = nil
		assert.True(t, apperrors.IsValidation(req.Validate()))
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		req := valid()
		req.Orders[1].ID = testUUID1
		err := req.Validate()
		require.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "ids must be unique")
	})

	t.Run("rejects duplicate order values", func(t *testing.T) {
		req := valid()
		req.Orders[1].Order = 2
		err := req.Validate()
		require.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "order values must be unique")
	})

	t.Run("rejects negative order values", func(t *testing.T) {
		req := valid()
		req.Orders[0].Order = -1
		assert.True(t, apperrors.IsValidation(req.Validate()))
	})

	t.Run("rejects non-uuid ids", func(t *testing.T) {
		req := valid()
		req.Orders[0].ID = "nope"
		assert.True(t, apperrors.IsValidation(req.Validate()))
	})
}

func TestChangeStatusRequest_Validate(t *testing.T) {
	req := ChangeStatusRequest{Status: "interviewing"}
	require.NoError(t, req.Validate())
	assert.Equal(t, StatusInterviewing, req.Status)

	bad := ChangeStatusRequest{Status: "GHOSTED"}
	assert.True(t, apperrors.IsValidation(bad.Validate()))
}
