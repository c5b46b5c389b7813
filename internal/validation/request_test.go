package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *AnalyzeRequest {
	return &AnalyzeRequest{
		CVText:         strings.Repeat("experienced software engineer ", 5),
		JobDescription: "Required: python, kubernetes, and five years of backend experience",
	}
}

func TestValidate_OK(t *testing.T) {
	v := NewRequestValidator()
	assert.NoError(t, v.Validate(validRequest()))
}

func TestValidate_JobURLInsteadOfDescription(t *testing.T) {
	v := NewRequestValidator()

	req := validRequest()
	req.JobDescription = ""
	req.JobURL = "https://boards.greenhouse.io/acme/jobs/123"

	assert.NoError(t, v.Validate(req))
}

func TestValidate_Failures(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name    string
		mutate  func(*AnalyzeRequest)
		message string
	}{
		{
			"missing cv",
			func(r *AnalyzeRequest) { r.CVText = "" },
			"cv_text is required",
		},
		{
			"short cv",
			func(r *AnalyzeRequest) { r.CVText = "too short" },
			"cv_text is too short",
		},
		{
			"missing job",
			func(r *AnalyzeRequest) { r.JobDescription = "" },
			"job_description or job_url is required",
		},
		{
			"short job",
			func(r *AnalyzeRequest) { r.JobDescription = "python" },
			"job_description is too short",
		},
		{
			"bad url",
			func(r *AnalyzeRequest) { r.JobDescription = ""; r.JobURL = "not a url" },
			"job_url must be a valid URL",
		},
		{
			"bad strategy",
			func(r *AnalyzeRequest) { r.Strategy = "experimental" },
			"strategy must be 'enhanced' or 'legacy'",
		},
		{
			"both job fields",
			func(r *AnalyzeRequest) { r.JobURL = "https://example.com/job" },
			"mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := v.Validate(req)
			require.Error(t, err)

			var vErr *Error
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
