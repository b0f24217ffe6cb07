package leads

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"unicode/utf8"

	apperrors "github.com/Godwin-Baiju/aissol-test/internal/services/site/platform/errors"
)

// Field length bounds, counted in runes.
const (
	maxNameLength     = 100
	maxEmailLength    = 254
	maxPhoneLength    = 30
	maxCompanyLength  = 150
	maxSubjectLength  = 200
	maxMessageLength  = 5000
	maxLocationLength = 200
	maxTitleLength    = 200
	maxQuantityLength = 50
	maxEnquiryItems   = 100
)

// ServiceOptions lists the service slugs a contact or service enquiry may name.
var ServiceOptions = []string{
	"fire-detection",
	"fire-fighting",
	"wet-chemical",
	"fm200",
	"novac",
	"gas-detection",
	"certification",
	"maintenance",
}

var (
	urgencyOptions     = []string{"low", "medium", "high"}
	projectTypeOptions = []string{"new", "upgrade", "maintenance", "consultation"}
	timeframeOptions   = []string{"immediate", "soon", "planning", "future"}
	contactServices    = append(slices.Clone(ServiceOptions), "other")
)

type fieldErrors map[string]string

func (f fieldErrors) required(field, value string, max int) {
	if value == "" {
		f[field] = "is required"
		return
	}
	f.optional(field, value, max)
}

func (f fieldErrors) optional(field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		f[field] = fmt.Sprintf("must be at most %d characters", max)
	}
}

func (f fieldErrors) email(field, value string) {
	f.required(field, value, maxEmailLength)
	if _, failed := f[field]; failed {
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		f[field] = "must be a valid email address"
	}
}

func (f fieldErrors) oneOf(field, value string, allowed []string) {
	if value == "" || slices.Contains(allowed, value) {
		return
	}
	f[field] = "must be one of " + strings.Join(allowed, ", ")
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return apperrors.Invalid("please check the highlighted fields", f)
}

func trim(values ...*string) {
	for _, value := range values {
		*value = strings.TrimSpace(*value)
	}
}
