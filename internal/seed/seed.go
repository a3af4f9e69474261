// Package seed installs demo accounts and sample placement data.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/app/repositories"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
	"github.com/rakshithv/placemate/internal/pkg/auth"
	"github.com/rakshithv/placemate/internal/pkg/validation"
)

// CreateDefaultData installs a demo officer, demo students and a small
// company/drive set when they do not already exist. Memory mode depends on
// this for its working data; postgres mode gets the same rows once.
func CreateDefaultData(ctx context.Context, store *repositories.Store, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	hash, err := auth.HashPassword(auth.DemoPassword)
	if err != nil {
		return err
	}

	officer := &models.PlacementOfficer{
		Username:     "FA001",
		Name:         "Priya Shenoy",
		Designation:  "Placement Officer",
		PasswordHash: hash,
	}
	if err := store.Officers.Create(ctx, officer); err != nil && !errors.Is(err, apperrors.ErrUsernameExists) {
		lgr.Error().Err(err).Msg("Error creating default officer")
		finalErr = errors.Join(finalErr, err)
	}

	pkg := func(v float64) *float64 { return &v }
	company := func(name string) *string { return &name }

	students := []*models.Student{
		{
			USN: "4SF22CS001", Name: "Rakshith V", Email: "rakshith.cs22@sahyadri.edu.in",
			YearOfPassing: 2026, BeCGPA: 8.7, TenthPercentage: 92.4, TwelfthPercentage: 88.1,
			HasInternship: true, InternshipCount: 2, HasProjects: true, ProjectCount: 3,
			Placed: true, PackageOffered: pkg(12.5), CompanyPlaced: company("Acme"), NumberOfOffers: 2,
		},
		{
			USN: "4SF22IS042", Name: "Ananya Rao", Email: "ananya.is22@sahyadri.edu.in",
			YearOfPassing: 2026, BeCGPA: 9.1, TenthPercentage: 95.0, TwelfthPercentage: 91.2,
			HasProjects: true, ProjectCount: 2,
			Placed: true, PackageOffered: pkg(18.0), CompanyPlaced: company("Initech"), NumberOfOffers: 1,
		},
		{
			USN: "4SF22EC105", Name: "Mohammed Faiz", Email: "faiz.ec22@sahyadri.edu.in",
			YearOfPassing: 2026, BeCGPA: 7.4, TenthPercentage: 84.3, TwelfthPercentage: 79.8,
			HasInternship: true, InternshipCount: 1,
		},
	}
	for _, s := range students {
		s.Branch = validation.BranchFromUSN(s.USN)
		s.YearOfAdmission = validation.AdmissionYearFromPassing(s.YearOfPassing)
		s.PasswordHash = hash
		if err := store.Students.Create(ctx, s); err != nil && !errors.Is(err, apperrors.ErrUSNAlreadyExists) {
			lgr.Error().Err(err).Str("usn", s.USN).Msg("Error creating default student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	companies := []*models.Company{
		{Name: "Acme", Industry: "Technology", Location: "Bangalore", Contact: "John Doe", Email: "recruiting@acme.com", Status: models.CompanyStatusActive},
		{Name: "Initech", Industry: "Finance", Location: "Mangalore", Contact: "Jane Roe", Email: "campus@initech.com", Status: models.CompanyStatusActive},
	}
	for _, c := range companies {
		if err := store.Companies.Create(ctx, c); err != nil && !errors.Is(err, apperrors.ErrCompanyAlreadyExists) {
			lgr.Error().Err(err).Str("name", c.Name).Msg("Error creating default company")
			finalErr = errors.Join(finalErr, err)
		}
	}

	existing, err := store.Drives.List(ctx)
	if err != nil {
		return errors.Join(finalErr, err)
	}
	if len(existing) == 0 {
		driveDate := time.Now().AddDate(0, 1, 0)
		deadline := time.Now().AddDate(0, 0, 14)
		drive := &models.PlacementDrive{
			Company:              "Acme",
			Title:                "Software Engineer Recruitment 2026",
			Position:             "Software Engineer",
			DriveDate:            &driveDate,
			RegistrationDeadline: &deadline,
			Location:             "Campus",
			Eligibility:          "CGPA >= 7.0, no active backlogs",
			Roles:                "SDE-1, QA Engineer",
			Package:              "10-18 LPA",
			Status:               models.DriveStatusUpcoming,
		}
		if err := store.Drives.Create(ctx, drive); err != nil {
			lgr.Error().Err(err).Msg("Error creating default drive")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check complete")
	return finalErr
}
