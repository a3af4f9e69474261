package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/app/repositories"
	"github.com/rakshithv/placemate/internal/app/repositories/memory"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
	"github.com/rakshithv/placemate/internal/pkg/auth"
)

func newJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
}

func seedStudent(t *testing.T, store *repositories.Store, usn string) *models.Student {
	t.Helper()
	hash, err := auth.HashPassword(auth.DemoPassword)
	require.NoError(t, err)
	student := &models.Student{
		USN:          usn,
		Name:         "Test Student",
		Branch:       "CSE",
		PasswordHash: hash,
	}
	require.NoError(t, store.Students.Create(context.Background(), student))
	return student
}

func TestLoginDemoModeIssuesTokenWithRoleClaim(t *testing.T) {
	store := memory.NewStore()
	seedStudent(t, store, "4SF22CS001")
	jwtService := newJWTService()
	svc := NewAuthService(store.Students, store.Officers, auth.DemoVerifier{}, jwtService)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "4SF22CS001",
		Password: auth.DemoPassword,
		Role:     "student",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "4SF22CS001", claims.Username)

	student, ok := resp.User.(*models.Student)
	require.True(t, ok)
	assert.Equal(t, "4SF22CS001", student.USN)
}

func TestLoginRejectsUsernameFailingRoleFormat(t *testing.T) {
	store := memory.NewStore()
	svc := NewAuthService(store.Students, store.Officers, auth.DemoVerifier{}, newJWTService())

	cases := []struct {
		username string
		role     string
	}{
		{"notausn", "student"},
		{"4SF22XX001", "student"},
		{"4SF22CS001", "placement"}, // USN is not an officer username
		{"FA001", "student"},
		{"FA001", "professor"},
	}
	for _, tc := range cases {
		_, err := svc.Login(context.Background(), &dto.LoginRequest{
			Username: tc.username,
			Password: auth.DemoPassword,
			Role:     tc.role,
		})
		assert.Error(t, err, "username %q role %q", tc.username, tc.role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	store := memory.NewStore()
	seedStudent(t, store, "4SF22CS001")
	svc := NewAuthService(store.Students, store.Officers, auth.BcryptVerifier{}, newJWTService())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "4SF22CS001",
		Password: "not-the-password",
		Role:     "student",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUserLooksLikeBadCredentials(t *testing.T) {
	store := memory.NewStore()
	svc := NewAuthService(store.Students, store.Officers, auth.DemoVerifier{}, newJWTService())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "4SF22CS999",
		Password: auth.DemoPassword,
		Role:     "student",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRegisterStudentDerivesBranchAndYear(t *testing.T) {
	store := memory.NewStore()
	svc := NewAuthService(store.Students, store.Officers, auth.BcryptVerifier{}, newJWTService())

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "4SF22IS042",
		Password: "password123",
		Role:     "student",
		Name:     "Ananya Rao",
	})
	require.NoError(t, err)

	student, ok := user.(*models.Student)
	require.True(t, ok)
	assert.Equal(t, "ISE", student.Branch)
	assert.Equal(t, 2022, student.YearOfAdmission)
	assert.NotEmpty(t, student.PasswordHash)
}

func TestRegisterDuplicateUSN(t *testing.T) {
	store := memory.NewStore()
	seedStudent(t, store, "4SF22CS001")
	svc := NewAuthService(store.Students, store.Officers, auth.BcryptVerifier{}, newJWTService())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "4SF22CS001",
		Password: "password123",
		Role:     "student",
		Name:     "Someone Else",
	})
	assert.ErrorIs(t, err, apperrors.ErrUSNAlreadyExists)
}

func TestRegisterShortPassword(t *testing.T) {
	store := memory.NewStore()
	svc := NewAuthService(store.Students, store.Officers, auth.BcryptVerifier{}, newJWTService())

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "4SF22CS002",
		Password: "short",
		Role:     "student",
		Name:     "Too Short",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegisterOfficer(t *testing.T) {
	store := memory.NewStore()
	svc := NewAuthService(store.Students, store.Officers, auth.BcryptVerifier{}, newJWTService())

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "FA007",
		Password: "password123",
		Role:     "placement",
		Name:     "New Officer",
	})
	require.NoError(t, err)

	officer, ok := user.(*models.PlacementOfficer)
	require.True(t, ok)
	assert.Equal(t, "FA007", officer.Username)
	assert.Equal(t, "Placement Officer", officer.Designation)
}
