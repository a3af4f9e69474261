package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	t.Run("ValidStudentUSNs", func(t *testing.T) {
		for _, usn := range []string{
			"4SF22CS001",
			"4SF21IS135",
			"4SF23CI042",
			"4SF20BA999",
		} {
			assert.True(t, ValidateUsername(usn, "student"), usn)
		}
	})

	t.Run("InvalidStudentUSNs", func(t *testing.T) {
		for _, usn := range []string{
			"",
			"4SF22XX001",   // unknown branch code
			"4SF2CS001",    // one digit year
			"4sf22cs001",   // lowercase
			"5SF22CS001",   // wrong campus prefix
			"4SF22CS01",    // short serial
			"4SF22CS0011",  // long serial
			" 4SF22CS001",  // leading space
		} {
			assert.False(t, ValidateUsername(usn, "student"), usn)
		}
	})

	t.Run("OfficerUsernames", func(t *testing.T) {
		assert.True(t, ValidateUsername("FA001", "placement"))
		assert.True(t, ValidateUsername("FA999", "placement"))
		assert.False(t, ValidateUsername("FA01", "placement"))
		assert.False(t, ValidateUsername("FB001", "placement"))
		assert.False(t, ValidateUsername("FA0001", "placement"))
	})

	t.Run("UnknownRoleNeverValidates", func(t *testing.T) {
		assert.False(t, ValidateUsername("4SF22CS001", "admin"))
		assert.False(t, ValidateUsername("FA001", ""))
	})

	t.Run("CrossRolePatternsRejected", func(t *testing.T) {
		assert.False(t, ValidateUsername("FA001", "student"))
		assert.False(t, ValidateUsername("4SF22CS001", "placement"))
	})
}

func TestBranchFromUSN(t *testing.T) {
	cases := map[string]string{
		"4SF22CS001": "CSE",
		"4SF22CI001": "CSE AIML",
		"4SF22IS001": "ISE",
		"4SF22CD001": "CSE DS",
		"4SF22ME001": "ME",
		"4SF22RA001": "RA",
		"4SF22EC001": "ECE",
		"4SF22BA001": "MBA",
	}
	for usn, want := range cases {
		assert.Equal(t, want, BranchFromUSN(usn))
	}

	assert.Equal(t, "Unknown", BranchFromUSN("4SF22XX001"))
	assert.Equal(t, "Unknown", BranchFromUSN("short"))
}

func TestAdmissionYear(t *testing.T) {
	assert.Equal(t, 2022, AdmissionYearFromUSN("4SF22CS001"))
	assert.Equal(t, 2019, AdmissionYearFromUSN("4SF19EC042"))
	assert.Equal(t, 0, AdmissionYearFromUSN("4SF"))

	assert.Equal(t, 2022, AdmissionYearFromPassing(2026))
	assert.Equal(t, 0, AdmissionYearFromPassing(0))
	assert.Equal(t, 0, AdmissionYearFromPassing(-1))
}
