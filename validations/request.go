package validations

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"kucukaslan/interactions/domain"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// report json/query names instead of Go field names
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
}

// ValidateInteractionRequest trims and checks the body of the click and view endpoints
func ValidateInteractionRequest(request *domain.InteractionRequest) error {
	if request == nil {
		return domain.NewValidationError("body", "request body is required")
	}
	request.TargetID = strings.TrimSpace(request.TargetID)
	request.SessionID = strings.TrimSpace(request.SessionID)
	request.Referrer = strings.TrimSpace(request.Referrer)
	return validateStruct(request)
}

// ValidateReportQuery checks the query parameters shared by the report endpoints
func ValidateReportQuery(query *domain.ReportQuery) error {
	query.Range = strings.TrimSpace(query.Range)
	query.TargetID = strings.TrimSpace(query.TargetID)
	query.GroupBy = strings.ToLower(strings.TrimSpace(query.GroupBy))
	query.Granularity = strings.ToLower(strings.TrimSpace(query.Granularity))
	return validateStruct(query)
}

// ParseInclude turns a comma separated list of dashboard sections into a set.
// An empty list selects every section.
func ParseInclude(raw string) (map[string]bool, error) {
	include := make(map[string]bool)
	var unknown []string
	for part := range strings.SplitSeq(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" || name == domain.SectionTimeSeries {
			continue
		}
		if !slices.Contains(domain.OptionalSections, name) {
			unknown = append(unknown, name)
			continue
		}
		include[name] = true
	}
	if len(unknown) > 0 {
		return nil, domain.NewValidationError("include",
			fmt.Sprintf("unknown sections %s; allowed: %s", strings.Join(unknown, ", "), strings.Join(domain.OptionalSections, ", ")))
	}
	return include, nil
}

func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return domain.NewValidationError("body", err.Error())
	}

	vErr := &domain.ValidationError{Fields: make([]domain.FieldError, 0, len(fieldErrors))}
	for _, fe := range fieldErrors {
		vErr.Fields = append(vErr.Fields, domain.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return vErr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return "is invalid"
	}
}
