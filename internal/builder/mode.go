package builder

import (
	"strings"

	"emperror.dev/errors"
)

// Mode selects the command grammar to synthesize.
type Mode int

const (
	RepositoryAnalysis Mode = iota
	OrganizationAnalysis
	RepositoryRanking
	ContributorRanking
	// MonthlyAnalysis reuses part of ContributorRanking's fields but targets
	// the monthly program.
	MonthlyAnalysis
)

// Field names shared by the mode tables and the hosting form.
const (
	FieldRepositories     = "repositories"
	FieldOrganization     = "organization"
	FieldToken            = "token"
	FieldType             = "type"
	FieldTop              = "top"
	FieldMonths           = "months"
	FieldMinContributions = "min_contributions"
	FieldOutput           = "output"
	FieldNoSummary        = "no_summary"
	FieldCompany          = "company"
)

// Kind tells the builder how a field value turns into arguments.
type Kind int

const (
	KindRepoList Kind = iota
	KindPositional
	KindText
	KindSelect
	KindNumber
	KindBool
)

// RepoTypes are the repository type filters the external program accepts.
// The first entry is the default and is never emitted.
var RepoTypes = []string{"all", "public", "private", "sources", "forks", "member"}

// FlagDefinition describes one field of a mode.
type FlagDefinition struct {
	Name     string
	CLIFlag  string
	Kind     Kind
	Default  string
	Required bool
	Quoted   bool
	Options  []string

	// Title and Help are what the hosting form shows for the field.
	Title string
	Help  string
}

type modeSpec struct {
	key     string
	title   string
	keyword string
	monthly bool
	flags   []FlagDefinition
}

var (
	repositoriesFlag = FlagDefinition{
		Name:     FieldRepositories,
		Kind:     KindRepoList,
		Required: true,
		Title:    "Repositories",
		Help:     "One owner/repo per line",
	}
	organizationFlag = FlagDefinition{
		Name:     FieldOrganization,
		Kind:     KindPositional,
		Required: true,
		Title:    "Organization",
	}
	tokenFlag = FlagDefinition{
		Name:    FieldToken,
		CLIFlag: "--token",
		Kind:    KindText,
		Title:   "GitHub token",
		Help:    "Optional; GITHUB_TOKEN works too",
	}
	typeFlag = FlagDefinition{
		Name:    FieldType,
		CLIFlag: "--type",
		Kind:    KindSelect,
		Default: "all",
		Options: RepoTypes,
		Title:   "Repository type",
	}
	outputFlag = FlagDefinition{
		Name:    FieldOutput,
		CLIFlag: "--output",
		Kind:    KindText,
		Title:   "Output file",
	}
	noSummaryFlag = FlagDefinition{
		Name:    FieldNoSummary,
		CLIFlag: "--no-summary",
		Kind:    KindBool,
		Title:   "Skip console summary",
	}
	companyFlag = FlagDefinition{
		Name:    FieldCompany,
		CLIFlag: "--company",
		Kind:    KindText,
		Quoted:  true,
		Title:   "Company filter",
	}
)

func topFlag(def string) FlagDefinition {
	return FlagDefinition{
		Name:    FieldTop,
		CLIFlag: "--top",
		Kind:    KindNumber,
		Default: def,
		Title:   "Top N",
	}
}

var modes = map[Mode]modeSpec{
	RepositoryAnalysis: {
		key:     "repos",
		title:   "Repository analysis",
		keyword: "repos",
		flags:   []FlagDefinition{repositoriesFlag, tokenFlag, outputFlag, noSummaryFlag},
	},
	OrganizationAnalysis: {
		key:     "org",
		title:   "Organization analysis",
		keyword: "org",
		flags:   []FlagDefinition{organizationFlag, tokenFlag, typeFlag, topFlag("15"), outputFlag, noSummaryFlag},
	},
	RepositoryRanking: {
		key:     "rank",
		title:   "Repository ranking",
		keyword: "rank",
		flags:   []FlagDefinition{repositoriesFlag, tokenFlag, topFlag("10"), outputFlag},
	},
	ContributorRanking: {
		key:     "contributors",
		title:   "Contributor ranking",
		keyword: "contributors",
		flags: []FlagDefinition{
			organizationFlag,
			tokenFlag,
			companyFlag,
			typeFlag,
			{
				Name:    FieldMonths,
				CLIFlag: "--months",
				Kind:    KindNumber,
				Default: "18",
				Title:   "Months of history",
				Help:    "Blank means all time",
			},
			{
				Name:    FieldMinContributions,
				CLIFlag: "--min-contributions",
				Kind:    KindNumber,
				Default: "1",
				Title:   "Minimum contributions",
			},
			topFlag("20"),
			outputFlag,
			noSummaryFlag,
		},
	},
	MonthlyAnalysis: {
		key:     "monthly",
		title:   "Monthly contributor analysis",
		monthly: true,
		flags:   []FlagDefinition{organizationFlag, tokenFlag, companyFlag, typeFlag},
	},
}

var modeOrder = []Mode{
	RepositoryAnalysis,
	OrganizationAnalysis,
	RepositoryRanking,
	ContributorRanking,
	MonthlyAnalysis,
}

// Modes returns every mode in menu order.
func Modes() []Mode {
	out := make([]Mode, len(modeOrder))
	copy(out, modeOrder)
	return out
}

// ParseMode maps a mode key such as "repos" or "monthly" to its Mode.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, m := range modeOrder {
		if modes[m].key == key {
			return m, nil
		}
	}
	return 0, errors.Errorf("unknown mode %q", s)
}

// String returns the mode key, as accepted by ParseMode.
func (m Mode) String() string {
	if spec, ok := modes[m]; ok {
		return spec.key
	}
	return "unknown"
}

// Title is the human readable name of the mode.
func (m Mode) Title() string {
	return modes[m].title
}

// Flags returns the mode's flag table in declared order.
func (m Mode) Flags() []FlagDefinition {
	flags := modes[m].flags
	out := make([]FlagDefinition, len(flags))
	copy(out, flags)
	return out
}

// Lookup returns the definition of the named field for this mode.
func (m Mode) Lookup(name string) (FlagDefinition, bool) {
	for _, f := range modes[m].flags {
		if f.Name == name {
			return f, true
		}
	}
	return FlagDefinition{}, false
}
