package validations

import (
	"strings"
	"testing"

	"kucukaslan/interactions/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(t *testing.T, err error) []domain.FieldError {
	t.Helper()
	require.Error(t, err)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	return vErr.Fields
}

func TestValidateInteractionRequest(t *testing.T) {
	req := &domain.InteractionRequest{TargetID: "  wdg_1 ", Referrer: " https://t.co/x "}
	require.NoError(t, ValidateInteractionRequest(req))
	assert.Equal(t, "wdg_1", req.TargetID)
	assert.Equal(t, "https://t.co/x", req.Referrer)
}

func TestValidateInteractionRequest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *domain.InteractionRequest
		field   string
		message string
	}{
		{"missing target", &domain.InteractionRequest{}, "target_id", "is required"},
		{"blank target", &domain.InteractionRequest{TargetID: "   "}, "target_id", "is required"},
		{"long target", &domain.InteractionRequest{TargetID: strings.Repeat("x", 129)}, "target_id", "must be at most 128 characters"},
		{"nil body", nil, "body", "request body is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fields(t, ValidateInteractionRequest(tt.req))
			require.Len(t, got, 1)
			assert.Equal(t, tt.field, got[0].Field)
			assert.Equal(t, tt.message, got[0].Message)
		})
	}
}

func TestValidateReportQuery(t *testing.T) {
	q := &domain.ReportQuery{Range: " weekly ", GroupBy: "DAY", Granularity: "Week", Limit: 10}
	require.NoError(t, ValidateReportQuery(q))
	assert.Equal(t, "weekly", q.Range)
	assert.Equal(t, "day", q.GroupBy)
	assert.Equal(t, "week", q.Granularity)
}

func TestValidateReportQuery_CollectsEveryField(t *testing.T) {
	q := &domain.ReportQuery{Limit: 501, GroupBy: "minute", Granularity: "year", Minutes: -1}

	got := fields(t, ValidateReportQuery(q))

	byField := make(map[string]string)
	for _, f := range got {
		byField[f.Field] = f.Message
	}
	assert.Equal(t, "must be at most 500", byField["limit"])
	assert.Equal(t, "must be one of: hour, day, all", byField["group_by"])
	assert.Equal(t, "must be one of: hour, day, week, month", byField["granularity"])
	assert.Equal(t, "must be at least 1", byField["minutes"])
}

func TestParseInclude(t *testing.T) {
	include, err := ParseInclude(" Links, peak_hours,,timeseries ")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{domain.SectionLinks: true, domain.SectionPeakHours: true}, include)

	include, err = ParseInclude("")
	require.NoError(t, err)
	assert.Empty(t, include)

	got := fields(t, func() error { _, err := ParseInclude("links,heatmap"); return err }())
	assert.Equal(t, "include", got[0].Field)
	assert.Contains(t, got[0].Message, "heatmap")
}
