package validate

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Severity classifies an issue. Errors fail validation; warnings do not.
type Severity string

const (
	// SeverityError marks a violation the generator would reject.
	SeverityError Severity = "error"
	// SeverityWarning marks a schema-authoring smell.
	SeverityWarning Severity = "warning"
)

// Issue is a single finding against a document.
type Issue struct {
	Severity Severity `json:"severity" yaml:"severity"`
	Code     string   `json:"code" yaml:"code"`
	Path     string   `json:"path" yaml:"path"`
	Message  string   `json:"message" yaml:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s [%s] %s: %s", i.Severity, i.Code, i.Path, i.Message)
}

// Report aggregates the issues found in one document.
type Report struct {
	ID          string    `json:"id" yaml:"id"`
	Source      string    `json:"source" yaml:"source"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Issues      []Issue   `json:"issues" yaml:"issues"`
}

// NewReport returns an empty report for the given source, stamped with a
// fresh ID.
func NewReport(source string) *Report {
	return &Report{
		ID:          uuid.New().String(),
		Source:      source,
		GeneratedAt: time.Now().UTC(),
	}
}

// Errorf records an error-severity issue.
func (r *Report) Errorf(code, path, format string, args ...interface{}) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityError,
		Code:     code,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Warnf records a warning-severity issue.
func (r *Report) Warnf(code, path, format string, args ...interface{}) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityWarning,
		Code:     code,
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
	})
}

// HasErrors reports whether any issue has error severity.
func (r *Report) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Counts returns the number of errors and warnings.
func (r *Report) Counts() (errors, warnings int) {
	for _, issue := range r.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}

// Err returns a summary error when the report has errors, nil otherwise.
func (r *Report) Err() error {
	errors, _ := r.Counts()
	if errors == 0 {
		return nil
	}
	return fmt.Errorf("schema validation failed for %s: %d error(s)", r.Source, errors)
}
