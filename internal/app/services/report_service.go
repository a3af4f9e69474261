package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/app/repositories"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
	"github.com/rakshithv/placemate/internal/pkg/helpers"
	"github.com/rakshithv/placemate/internal/pkg/report"
)

// ReportService renders placement data into downloadable PDF documents.
type ReportService struct {
	students  repositories.StudentRepository
	analytics *AnalyticsService
}

// NewReportService creates a new report service instance.
func NewReportService(students repositories.StudentRepository, analytics *AnalyticsService) *ReportService {
	return &ReportService{students: students, analytics: analytics}
}

// GenerateReport builds the requested report type as PDF bytes.
func (s *ReportService) GenerateReport(ctx context.Context, req *dto.ReportRequest) ([]byte, string, error) {
	students, err := s.filteredStudents(ctx, req.Filters)
	if err != nil {
		return nil, "", err
	}

	var b *report.Builder
	switch req.ReportType {
	case dto.ReportTypeAnnual:
		b = report.NewBuilder("Annual Placement Report", filterSubtitle(req.Filters))
		s.addSummary(b, students)
		addDepartmentTable(b, students)
	case dto.ReportTypeDepartment:
		b = report.NewBuilder("Department Placement Report", filterSubtitle(req.Filters))
		addDepartmentTable(b, students)
	case dto.ReportTypeDetailed:
		b = report.NewBuilder("Detailed Student Report", filterSubtitle(req.Filters))
		addStudentTable(b, students)
	case dto.ReportTypeAnalytics:
		b = report.NewBuilder("Placement Analytics Report", filterSubtitle(req.Filters))
		s.addSummary(b, students)
		addCGPATable(b, students)
	default:
		return nil, "", apperrors.ErrUnknownReportType
	}

	out, err := b.Output()
	if err != nil {
		return nil, "", err
	}
	return out, fmt.Sprintf("%s-placement-report.pdf", req.ReportType), nil
}

// GenerateChart renders one dashboard chart as a PDF table.
func (s *ReportService) GenerateChart(ctx context.Context, chartType string) ([]byte, string, error) {
	var b *report.Builder
	switch chartType {
	case dto.ChartTypeDepartmentRate:
		rows, err := s.analytics.DepartmentChart(ctx)
		if err != nil {
			return nil, "", err
		}
		b = report.NewBuilder("Department Placement Rate", "")
		tableRows := make([][]string, 0, len(rows))
		for _, r := range rows {
			tableRows = append(tableRows, []string{
				r.Name,
				strconv.Itoa(r.Total),
				strconv.Itoa(r.Placed),
				fmt.Sprintf("%.1f", r.PlacementRate),
			})
		}
		b.AddTable(report.Table{
			Columns: []report.Column{
				{Header: "Department", Width: 60},
				{Header: "Total", Width: 35},
				{Header: "Placed", Width: 35},
				{Header: "Rate %", Width: 35},
			},
			Rows: tableRows,
		})
	case dto.ChartTypeSalaryDistribution:
		rows, err := s.analytics.SalaryChart(ctx)
		if err != nil {
			return nil, "", err
		}
		b = report.NewBuilder("Salary Distribution", "")
		tableRows := make([][]string, 0, len(rows))
		for _, r := range rows {
			tableRows = append(tableRows, []string{r.Name, strconv.Itoa(r.Value)})
		}
		b.AddTable(report.Table{
			Columns: []report.Column{
				{Header: "Package Range", Width: 80},
				{Header: "Students", Width: 50},
			},
			Rows: tableRows,
		})
	default:
		return nil, "", apperrors.ErrUnknownChartType
	}

	out, err := b.Output()
	if err != nil {
		return nil, "", err
	}
	return out, chartType + ".pdf", nil
}

func (s *ReportService) filteredStudents(ctx context.Context, f dto.ReportFilters) ([]*models.Student, error) {
	var (
		students []*models.Student
		err      error
	)
	if f.Department != "" && f.Department != "all" {
		students, err = s.students.ListByBranch(ctx, f.Department)
	} else {
		students, err = s.students.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	min, max, bounded := cgpaBounds(f.CGPARange)
	year := 0
	if f.Year != "" && f.Year != "all" {
		year, err = strconv.Atoi(f.Year)
		if err != nil {
			return nil, apperrors.ErrValidationFailed
		}
	}

	filtered := []*models.Student{}
	for _, st := range students {
		if bounded && (st.BeCGPA < min || st.BeCGPA >= max) {
			continue
		}
		if year != 0 && st.YearOfPassing != year {
			continue
		}
		filtered = append(filtered, st)
	}
	return filtered, nil
}

// cgpaBounds maps a filter label to a [min,max) interval. Unknown labels
// and "all" leave the range unbounded.
func cgpaBounds(label string) (float64, float64, bool) {
	switch label {
	case "9-10":
		return 9, 10.01, true
	case "8-9":
		return 8, 9, true
	case "7-8":
		return 7, 8, true
	case "6-7":
		return 6, 7, true
	case "5-6":
		return 5, 6, true
	case "below-5":
		return 0, 5, true
	}
	return 0, 0, false
}

func filterSubtitle(f dto.ReportFilters) string {
	parts := []string{}
	if f.Department != "" && f.Department != "all" {
		parts = append(parts, "Department: "+f.Department)
	}
	if f.CGPARange != "" && f.CGPARange != "all" {
		parts = append(parts, "CGPA: "+f.CGPARange)
	}
	if f.Year != "" && f.Year != "all" {
		parts = append(parts, "Year: "+f.Year)
	}
	return strings.Join(parts, "  |  ")
}

func (s *ReportService) addSummary(b *report.Builder, students []*models.Student) {
	total := len(students)
	placed := 0
	var sum, highest float64
	for _, st := range students {
		if !st.Placed {
			continue
		}
		placed++
		if st.PackageOffered != nil {
			sum += *st.PackageOffered
			if *st.PackageOffered > highest {
				highest = *st.PackageOffered
			}
		}
	}

	rate := 0.0
	if total > 0 {
		rate = helpers.Round1(100 * float64(placed) / float64(total))
	}
	avg := 0.0
	if placed > 0 {
		avg = helpers.Round1(sum / float64(placed))
	}

	b.AddKeyValues("Summary", [][2]string{
		{"Total Students", strconv.Itoa(total)},
		{"Placed", strconv.Itoa(placed)},
		{"Placement Rate", fmt.Sprintf("%.1f%%", rate)},
		{"Average Package", fmt.Sprintf("%.1f LPA", avg)},
		{"Highest Package", fmt.Sprintf("%.1f LPA", highest)},
	})
}

func addDepartmentTable(b *report.Builder, students []*models.Student) {
	type stat struct {
		total, placed int
	}
	byBranch := map[string]*stat{}
	order := []string{}
	for _, st := range students {
		s, ok := byBranch[st.Branch]
		if !ok {
			s = &stat{}
			byBranch[st.Branch] = s
			order = append(order, st.Branch)
		}
		s.total++
		if st.Placed {
			s.placed++
		}
	}

	rows := make([][]string, 0, len(order))
	for _, branch := range order {
		s := byBranch[branch]
		rows = append(rows, []string{
			branch,
			strconv.Itoa(s.total),
			strconv.Itoa(s.placed),
			fmt.Sprintf("%.1f", helpers.Round1(100*float64(s.placed)/float64(s.total))),
		})
	}
	b.AddTable(report.Table{
		Title: "Department Statistics",
		Columns: []report.Column{
			{Header: "Department", Width: 60},
			{Header: "Total", Width: 35},
			{Header: "Placed", Width: 35},
			{Header: "Rate %", Width: 35},
		},
		Rows: rows,
	})
}

func addStudentTable(b *report.Builder, students []*models.Student) {
	rows := make([][]string, 0, len(students))
	for _, st := range students {
		placedText := "No"
		pkg := "-"
		if st.Placed {
			placedText = "Yes"
			if st.PackageOffered != nil {
				pkg = fmt.Sprintf("%.1f", *st.PackageOffered)
			}
		}
		rows = append(rows, []string{
			st.USN,
			st.Name,
			st.Branch,
			fmt.Sprintf("%.2f", st.BeCGPA),
			placedText,
			pkg,
		})
	}
	b.AddTable(report.Table{
		Title: "Students",
		Columns: []report.Column{
			{Header: "USN", Width: 32},
			{Header: "Name", Width: 58},
			{Header: "Branch", Width: 26},
			{Header: "CGPA", Width: 20},
			{Header: "Placed", Width: 20},
			{Header: "Package", Width: 24},
		},
		Rows: rows,
	})
}

func addCGPATable(b *report.Builder, students []*models.Student) {
	labels := []string{"9-10", "8-9", "7-8", "6-7", "5-6", "below-5"}
	counts := make(map[string]int, len(labels))
	for _, st := range students {
		for _, label := range labels {
			min, max, _ := cgpaBounds(label)
			if st.BeCGPA >= min && st.BeCGPA < max {
				counts[label]++
				break
			}
		}
	}

	rows := make([][]string, 0, len(labels))
	for _, label := range labels {
		rows = append(rows, []string{label, strconv.Itoa(counts[label])})
	}
	b.AddTable(report.Table{
		Title: "CGPA Distribution",
		Columns: []report.Column{
			{Header: "CGPA Range", Width: 80},
			{Header: "Students", Width: 50},
		},
		Rows: rows,
	})
}
