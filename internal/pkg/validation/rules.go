package validation

import (
	"regexp"
	"strconv"
)

// Username patterns per role. Students carry a campus USN
// (4SF<yy><branch><nnn>); placement officers use FA<nnn>.
var (
	USNPattern     = `^4SF\d{2}(CS|CI|IS|CD|ME|RA|EC|BA)\d{3}$`
	OfficerPattern = `^FA\d{3}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	USN     *regexp.Regexp
	Officer *regexp.Regexp
}{
	USN:     regexp.MustCompile(USNPattern),
	Officer: regexp.MustCompile(OfficerPattern),
}

// branchNames maps the two-letter USN branch code to the department name.
var branchNames = map[string]string{
	"CS": "CSE",
	"CI": "CSE AIML",
	"IS": "ISE",
	"CD": "CSE DS",
	"ME": "ME",
	"RA": "RA",
	"EC": "ECE",
	"BA": "MBA",
}

// PasswordMinLength is the minimum accepted password length for registration.
const PasswordMinLength = 8

// ValidateUsername reports whether username matches the pattern for role.
// Unknown roles never validate.
func ValidateUsername(username, role string) bool {
	switch role {
	case "student":
		return CompiledPatterns.USN.MatchString(username)
	case "placement":
		return CompiledPatterns.Officer.MatchString(username)
	}
	return false
}

// BranchFromUSN extracts the department name from a valid USN.
// Returns "Unknown" when the branch code is not recognized.
func BranchFromUSN(usn string) string {
	if len(usn) < 7 {
		return "Unknown"
	}
	if name, ok := branchNames[usn[5:7]]; ok {
		return name
	}
	return "Unknown"
}

// AdmissionYearFromUSN derives the admission year from the two-digit year
// embedded in the USN. Returns 0 for malformed input.
func AdmissionYearFromUSN(usn string) int {
	if len(usn) < 5 {
		return 0
	}
	yy, err := strconv.Atoi(usn[3:5])
	if err != nil {
		return 0
	}
	return 2000 + yy
}

// AdmissionYearFromPassing derives year_of_admission for a four-year course.
func AdmissionYearFromPassing(yearOfPassing int) int {
	if yearOfPassing <= 0 {
		return 0
	}
	return yearOfPassing - 4
}
