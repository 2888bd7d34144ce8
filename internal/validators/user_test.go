package validators

import (
	"context"
	"testing"

	"github.com/mzhalilov/go-user-registry/internal/logger"
	"github.com/mzhalilov/go-user-registry/internal/store"
	"github.com/mzhalilov/go-user-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) (*UserValidator, store.UserRepository) {
	t.Helper()
	repo := store.NewUserRepository(logger.Nop())
	return NewUserValidator(repo), repo
}

func validInput() models.User {
	return models.User{
		FullName: "A B",
		Email:    "a@b.com",
		Password: "Secret1!",
		DOB:      "1990-01-01",
	}
}

// ─────────────────────────────────────────────
// ValidateRegistration
// ─────────────────────────────────────────────

// TestValidateRegistration_Valid verifies that a fully valid record yields an
// empty map.
func TestValidateRegistration_Valid(t *testing.T) {
	v, _ := newValidator(t)

	errs := v.ValidateRegistration(context.Background(), validInput())

	assert.Empty(t, errs)
}

// TestValidateRegistration_FieldRules drives every per-field rule and checks
// the exact message, in the first-failure-wins order.
func TestValidateRegistration_FieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.User)
		field   string
		message string
	}{
		{
			name:    "missing full name",
			mutate:  func(u *models.User) { u.FullName = "" },
			field:   FieldFullName,
			message: "full name required",
		},
		{
			name:    "missing email",
			mutate:  func(u *models.User) { u.Email = "" },
			field:   FieldEmail,
			message: "email required",
		},
		{
			name:    "email without at sign",
			mutate:  func(u *models.User) { u.Email = "not-an-email" },
			field:   FieldEmail,
			message: "invalid email",
		},
		{
			name:    "email without tld",
			mutate:  func(u *models.User) { u.Email = "a@b" },
			field:   FieldEmail,
			message: "invalid email",
		},
		{
			name:    "email with whitespace",
			mutate:  func(u *models.User) { u.Email = "a b@c.com" },
			field:   FieldEmail,
			message: "invalid email",
		},
		{
			name:    "missing password",
			mutate:  func(u *models.User) { u.Password = "" },
			field:   FieldPassword,
			message: "password required",
		},
		{
			name:    "short password",
			mutate:  func(u *models.User) { u.Password = "Ab1!" },
			field:   FieldPassword,
			message: "password must be at least 8 characters",
		},
		{
			name:    "password without symbol",
			mutate:  func(u *models.User) { u.Password = "Secret123" },
			field:   FieldPassword,
			message: "password must contain at least 1 symbol",
		},
		{
			name:    "missing dob",
			mutate:  func(u *models.User) { u.DOB = "" },
			field:   FieldDOB,
			message: "date of birth required",
		},
		{
			name:    "dob in wrong shape",
			mutate:  func(u *models.User) { u.DOB = "01-01-1990" },
			field:   FieldDOB,
			message: "invalid date of birth format, expected YYYY-MM-DD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newValidator(t)
			user := validInput()
			tt.mutate(&user)

			errs := v.ValidateRegistration(context.Background(), user)

			require.Len(t, errs, 1)
			assert.Equal(t, tt.message, errs[tt.field])
		})
	}
}

// TestValidateRegistration_EmailAlreadyRegistered verifies that the
// uniqueness rule fires against the store state at validation time.
func TestValidateRegistration_EmailAlreadyRegistered(t *testing.T) {
	v, repo := newValidator(t)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, validInput())
	require.NoError(t, err)

	errs := v.ValidateRegistration(ctx, validInput())

	require.Contains(t, errs, FieldEmail)
	assert.Equal(t, "email already registered", errs[FieldEmail])
}

// TestValidateRegistration_EmailUniquenessCaseSensitive verifies that only
// an exact case-sensitive match counts as taken.
func TestValidateRegistration_EmailUniquenessCaseSensitive(t *testing.T) {
	v, repo := newValidator(t)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, validInput())
	require.NoError(t, err)

	user := validInput()
	user.Email = "A@b.com"

	assert.Empty(t, v.ValidateRegistration(ctx, user))
}

// TestValidateRegistration_MultipleFailures verifies that every failing field
// appears in the map, one message each.
func TestValidateRegistration_MultipleFailures(t *testing.T) {
	v, _ := newValidator(t)

	errs := v.ValidateRegistration(context.Background(), models.User{})

	require.Len(t, errs, 4)
	assert.Equal(t, "full name required", errs[FieldFullName])
	assert.Equal(t, "email required", errs[FieldEmail])
	assert.Equal(t, "password required", errs[FieldPassword])
	assert.Equal(t, "date of birth required", errs[FieldDOB])
}

// ─────────────────────────────────────────────
// ValidateCredentials
// ─────────────────────────────────────────────

// TestValidateCredentials_SkipsUniqueness verifies that login validation
// accepts an email that is already registered.
func TestValidateCredentials_SkipsUniqueness(t *testing.T) {
	v, repo := newValidator(t)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, validInput())
	require.NoError(t, err)

	assert.Empty(t, v.ValidateCredentials(ctx, "a@b.com", "Secret1!"))
}

// TestValidateCredentials_PasswordShape verifies that login keeps the full
// password shape rules even though only equality matters afterwards.
func TestValidateCredentials_PasswordShape(t *testing.T) {
	v, _ := newValidator(t)
	ctx := context.Background()

	errs := v.ValidateCredentials(ctx, "a@b.com", "short")
	assert.Equal(t, "password must be at least 8 characters", errs[FieldPassword])

	errs = v.ValidateCredentials(ctx, "a@b.com", "longenoughbutplain")
	assert.Equal(t, "password must contain at least 1 symbol", errs[FieldPassword])
}

// ─────────────────────────────────────────────
// Detail
// ─────────────────────────────────────────────

// TestDetail_DeterministicOrder verifies that the detail list follows the
// fixed field order regardless of map iteration order.
func TestDetail_DeterministicOrder(t *testing.T) {
	errs := map[string]string{
		FieldDOB:      "date of birth required",
		FieldFullName: "full name required",
		FieldPassword: "password required",
		FieldEmail:    "email required",
	}

	detail := Detail(errs)

	require.Len(t, detail, 4)
	assert.Equal(t, FieldFullName, detail[0].Field)
	assert.Equal(t, FieldEmail, detail[1].Field)
	assert.Equal(t, FieldPassword, detail[2].Field)
	assert.Equal(t, FieldDOB, detail[3].Field)
}
