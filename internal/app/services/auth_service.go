package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/app/repositories"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
	"github.com/rakshithv/placemate/internal/pkg/auth"
	"github.com/rakshithv/placemate/internal/pkg/validation"
)

// AuthService handles login, registration and identity lookups for both
// student and placement-officer accounts.
type AuthService struct {
	students repositories.StudentRepository
	officers repositories.OfficerRepository
	verifier auth.CredentialVerifier
	jwt      *auth.JWTService
}

// NewAuthService creates a new auth service instance.
func NewAuthService(
	students repositories.StudentRepository,
	officers repositories.OfficerRepository,
	verifier auth.CredentialVerifier,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		students: students,
		officers: officers,
		verifier: verifier,
		jwt:      jwtService,
	}
}

// Login authenticates a user and issues a signed token. The username must
// match the role's format before any store lookup happens.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Role != string(models.RoleStudent) && req.Role != string(models.RolePlacement) {
		return nil, apperrors.ErrInvalidRole
	}
	if !validation.ValidateUsername(req.Username, req.Role) {
		return nil, apperrors.ErrInvalidUsername
	}

	var (
		user         interface{}
		name         string
		passwordHash string
	)
	switch req.Role {
	case string(models.RoleStudent):
		student, err := s.students.GetByUSN(ctx, req.Username)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, err
		}
		user, name, passwordHash = student, student.Name, student.PasswordHash
	case string(models.RolePlacement):
		officer, err := s.officers.GetByUsername(ctx, req.Username)
		if err != nil {
			if errors.Is(err, apperrors.ErrOfficerNotFound) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, err
		}
		user, name, passwordHash = officer, officer.Name, officer.PasswordHash
	}

	if !s.verifier.Verify(passwordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(req.Username, name, req.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &dto.LoginResponse{User: user, Token: token}, nil
}

// Register creates a new account for the requested role. The username must
// match the role's format and be unused.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (interface{}, error) {
	if req.Role != string(models.RoleStudent) && req.Role != string(models.RolePlacement) {
		return nil, apperrors.ErrInvalidRole
	}
	if !validation.ValidateUsername(req.Username, req.Role) {
		return nil, apperrors.ErrInvalidUsername
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, apperrors.ErrValidationFailed
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	switch req.Role {
	case string(models.RoleStudent):
		exists, err := s.students.ExistsByUSN(ctx, req.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrUSNAlreadyExists
		}

		student := &models.Student{
			USN:             req.Username,
			Name:            req.Name,
			Branch:          validation.BranchFromUSN(req.Username),
			YearOfAdmission: validation.AdmissionYearFromUSN(req.Username),
			PasswordHash:    hash,
		}
		if err := s.students.Create(ctx, student); err != nil {
			return nil, err
		}
		return student, nil

	default:
		exists, err := s.officers.ExistsByUsername(ctx, req.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrUsernameExists
		}

		officer := &models.PlacementOfficer{
			Username:     req.Username,
			Name:         req.Name,
			Designation:  "Placement Officer",
			PasswordHash: hash,
		}
		if err := s.officers.Create(ctx, officer); err != nil {
			return nil, err
		}
		return officer, nil
	}
}

// CurrentUser resolves the authenticated identity into its full record.
func (s *AuthService) CurrentUser(ctx context.Context, username, role string) (interface{}, error) {
	switch role {
	case string(models.RoleStudent):
		return s.students.GetByUSN(ctx, username)
	case string(models.RolePlacement):
		return s.officers.GetByUsername(ctx, username)
	}
	return nil, apperrors.ErrInvalidRole
}
