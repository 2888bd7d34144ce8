// Package validators contains the field-validation rules applied to
// registration and login input.
//
// Each field owns an ordered chain of rules. Rules fire in order and the
// first failing rule wins: a field is not re-checked once it has an error.
// Validation never fails as an operation: the result is a (possibly empty)
// field-to-message map, and an empty map means the input is acceptable.
package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/mzhalilov/go-user-registry/internal/store"
	"github.com/mzhalilov/go-user-registry/models"
)

// Form field names as they appear in request bodies and error details.
const (
	FieldFullName = "fullName"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldDOB      = "dob"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	dobPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// passwordSymbols is the fixed set of symbols of which a password must
// contain at least one.
const passwordSymbols = "!@#$%^&*"

// rule pairs a failure predicate with the message reported when it fires.
type rule struct {
	fails   func(value string) bool
	message string
}

var (
	fullNameRules = []rule{
		{fails: isEmpty, message: "full name required"},
	}

	// emailShapeRules cover presence and format; the store-aware
	// uniqueness rule is appended per call in ValidateRegistration.
	emailShapeRules = []rule{
		{fails: isEmpty, message: "email required"},
		{fails: func(s string) bool { return !emailPattern.MatchString(s) }, message: "invalid email"},
	}

	passwordRules = []rule{
		{fails: isEmpty, message: "password required"},
		{fails: func(s string) bool { return len(s) < 8 }, message: "password must be at least 8 characters"},
		{fails: func(s string) bool { return !strings.ContainsAny(s, passwordSymbols) }, message: "password must contain at least 1 symbol"},
	}

	dobRules = []rule{
		{fails: isEmpty, message: "date of birth required"},
		{fails: func(s string) bool { return !dobPattern.MatchString(s) }, message: "invalid date of birth format, expected YYYY-MM-DD"},
	}
)

// fieldOrder fixes the order in which field errors are reported in details.
var fieldOrder = []string{FieldFullName, FieldEmail, FieldPassword, FieldDOB}

// UserValidator validates user input against the field rules. The email
// uniqueness rule observes the user store at the instant of validation.
type UserValidator struct {
	users store.UserRepository
}

// NewUserValidator constructs a UserValidator backed by the given repository.
func NewUserValidator(users store.UserRepository) *UserValidator {
	return &UserValidator{users: users}
}

// ValidateRegistration checks a candidate registration record and returns a
// field-to-message map. An empty map signals the record is acceptable.
func (v *UserValidator) ValidateRegistration(ctx context.Context, user models.User) map[string]string {
	errs := make(map[string]string)

	applyRules(errs, FieldFullName, user.FullName, fullNameRules)

	emailRules := append(append([]rule{}, emailShapeRules...), rule{
		fails:   v.emailTaken(ctx),
		message: "email already registered",
	})
	applyRules(errs, FieldEmail, user.Email, emailRules)

	applyRules(errs, FieldPassword, user.Password, passwordRules)
	applyRules(errs, FieldDOB, user.DOB, dobRules)

	return errs
}

// ValidateCredentials checks login input. It reuses the registration rules
// for email shape and password shape, without the uniqueness rule: a login
// attempt with a malformed password is rejected before any store lookup.
func (v *UserValidator) ValidateCredentials(ctx context.Context, email, password string) map[string]string {
	errs := make(map[string]string)

	applyRules(errs, FieldEmail, email, emailShapeRules)
	applyRules(errs, FieldPassword, password, passwordRules)

	return errs
}

// emailTaken returns a predicate reporting whether another user already
// holds the exact (case-sensitive) email.
func (v *UserValidator) emailTaken(ctx context.Context) func(string) bool {
	return func(email string) bool {
		_, err := v.users.FindUserByEmail(ctx, email)
		return err == nil
	}
}

// Detail converts a field-error map into the detail list shape used in HTTP
// responses, ordered by fieldOrder for deterministic output.
func Detail(errs map[string]string) []models.FieldError {
	detail := make([]models.FieldError, 0, len(errs))
	for _, field := range fieldOrder {
		if message, ok := errs[field]; ok {
			detail = append(detail, models.FieldError{Field: field, Message: message})
		}
	}

	return detail
}

func isEmpty(s string) bool {
	return s == ""
}

func applyRules(errs map[string]string, field, value string, rules []rule) {
	for _, r := range rules {
		if r.fails(value) {
			errs[field] = r.message
			return
		}
	}
}
