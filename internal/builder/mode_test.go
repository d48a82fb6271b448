package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"repos", RepositoryAnalysis},
		{"org", OrganizationAnalysis},
		{"rank", RepositoryRanking},
		{"contributors", ContributorRanking},
		{" Monthly ", MonthlyAnalysis},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()))
		})
	}

	_, err := ParseMode("weekly")
	assert.Error(t, err)
}

func mustParse(t *testing.T, s string) Mode {
	t.Helper()
	m, err := ParseMode(s)
	require.NoError(t, err)
	return m
}

func TestModeTables(t *testing.T) {
	for _, mode := range Modes() {
		t.Run(mode.String(), func(t *testing.T) {
			flags := mode.Flags()
			require.NotEmpty(t, flags)
			assert.NotEmpty(t, mode.Title())

			required := 0
			for _, f := range flags {
				if f.Required {
					required++
					assert.Empty(t, f.CLIFlag, "required fields are positional")
				}
			}
			assert.Equal(t, 1, required)
		})
	}
}

func TestModeDefaults(t *testing.T) {
	tests := []struct {
		mode  Mode
		field string
		want  string
	}{
		{OrganizationAnalysis, FieldTop, "15"},
		{RepositoryRanking, FieldTop, "10"},
		{ContributorRanking, FieldTop, "20"},
		{ContributorRanking, FieldMonths, "18"},
		{ContributorRanking, FieldMinContributions, "1"},
		{ContributorRanking, FieldType, "all"},
	}
	for _, tt := range tests {
		f, ok := tt.mode.Lookup(tt.field)
		require.True(t, ok, "%s/%s", tt.mode, tt.field)
		assert.Equal(t, tt.want, f.Default, "%s/%s", tt.mode, tt.field)
	}

	_, ok := MonthlyAnalysis.Lookup(FieldOutput)
	assert.False(t, ok, "monthly output is computed, not a field")
}

func TestFlagsReturnsCopy(t *testing.T) {
	flags := OrganizationAnalysis.Flags()
	flags[0].Name = "changed"
	assert.Equal(t, FieldOrganization, OrganizationAnalysis.Flags()[0].Name)
}
