// Package builder synthesizes the command line for the GitHub statistics
// scripts from a mode and a set of raw field values.
//
// Build is a pure function of its inputs and the Builder's clock: no flag is
// emitted when its value is empty or equal to the documented default, and the
// only failure is an empty required field.
package builder

import (
	"strconv"
	"strings"
	"time"

	"github.com/crazywolf132/fstr"
)

const (
	DefaultInterpreter   = "python"
	DefaultStatsScript   = "github_stats.py"
	DefaultMonthlyScript = "org_contributor.py"

	// RedactedToken replaces token values in Redacted output.
	RedactedToken = "***"
)

// FieldValues maps a field name to the raw value the user entered.
// Booleans are "true" or "false".
type FieldValues map[string]string

// Get returns the trimmed value of a field.
func (v FieldValues) Get(name string) string {
	return strings.TrimSpace(v[name])
}

// SetBool stores a checkbox value.
func (v FieldValues) SetBool(name string, b bool) {
	v[name] = strconv.FormatBool(b)
}

// Command is a synthesized invocation.
type Command struct {
	Mode    Mode
	Program string
	Args    []string
	// Suppressed lists the fields that were left out because they were
	// empty or at their default.
	Suppressed []string
}

// String renders the command as one space separated line.
func (c *Command) String() string {
	if len(c.Args) == 0 {
		return c.Program
	}
	return c.Program + " " + strings.Join(c.Args, " ")
}

// Builder holds the program names and clock used to build commands.
type Builder struct {
	interpreter   string
	statsScript   string
	monthlyScript string
	now           func() time.Time
}

type Option func(*Builder)

// WithInterpreter overrides the interpreter prefix. Empty keeps the default.
func WithInterpreter(name string) Option {
	return func(b *Builder) {
		if name != "" {
			b.interpreter = name
		}
	}
}

// WithStatsScript overrides the script used by the four analysis modes.
func WithStatsScript(name string) Option {
	return func(b *Builder) {
		if name != "" {
			b.statsScript = name
		}
	}
}

// WithMonthlyScript overrides the monthly analysis script.
func WithMonthlyScript(name string) Option {
	return func(b *Builder) {
		if name != "" {
			b.monthlyScript = name
		}
	}
}

// WithClock sets the clock used for the monthly output file name.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

func New(opts ...Option) *Builder {
	b := &Builder{
		interpreter:   DefaultInterpreter,
		statsScript:   DefaultStatsScript,
		monthlyScript: DefaultMonthlyScript,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build synthesizes the command string with the default Builder.
func Build(mode Mode, values FieldValues) (string, error) {
	return New().Build(mode, values)
}

// Build synthesizes the command string for mode.
func (b *Builder) Build(mode Mode, values FieldValues) (string, error) {
	cmd, err := b.Assemble(mode, values)
	if err != nil {
		return "", err
	}
	return cmd.String(), nil
}

// Assemble validates values and returns the structured command.
func (b *Builder) Assemble(mode Mode, values FieldValues) (*Command, error) {
	spec, ok := modes[mode]
	if !ok {
		return nil, errUnknownMode(mode)
	}
	if values == nil {
		values = FieldValues{}
	}

	for _, f := range spec.flags {
		if f.Required && f.Kind == KindRepoList && len(SplitRepositories(values[f.Name])) == 0 {
			return nil, &ValidationError{Kind: MissingRequiredField, Field: f.Name}
		}
		if f.Required && values.Get(f.Name) == "" {
			return nil, &ValidationError{Kind: MissingRequiredField, Field: f.Name}
		}
	}

	cmd := &Command{Mode: mode, Program: b.program(spec)}
	if spec.keyword != "" {
		cmd.Args = append(cmd.Args, spec.keyword)
	}

	for _, f := range spec.flags {
		args := render(f, values)
		if args == nil {
			cmd.Suppressed = append(cmd.Suppressed, f.Name)
			continue
		}
		cmd.Args = append(cmd.Args, args...)
	}

	if spec.monthly {
		cmd.Args = append(cmd.Args, "--output", MonthlyOutput(b.now()))
	}
	return cmd, nil
}

// MonthlyOutput is the report file name the monthly program writes for t.
func MonthlyOutput(t time.Time) string {
	return fstr.F("monthly_analysis_{}.json", t.Format("2006-01"))
}

// SplitRepositories turns the multi-line repository field into entries,
// trimming each line and dropping blank ones.
func SplitRepositories(raw string) []string {
	var repos []string
	for _, line := range strings.Split(raw, "\n") {
		if repo := strings.TrimSpace(line); repo != "" {
			repos = append(repos, repo)
		}
	}
	return repos
}

func (b *Builder) program(spec modeSpec) string {
	script := b.statsScript
	if spec.monthly {
		script = b.monthlyScript
	}
	return b.interpreter + " " + script
}

// render returns the arguments for one field, or nil when the field is
// suppressed.
func render(f FlagDefinition, values FieldValues) []string {
	value := values.Get(f.Name)

	switch f.Kind {
	case KindRepoList:
		return SplitRepositories(values[f.Name])
	case KindPositional:
		if value == "" {
			return nil
		}
		return []string{value}
	case KindBool:
		on, err := strconv.ParseBool(value)
		if err != nil || !on {
			return nil
		}
		return []string{f.CLIFlag}
	case KindSelect, KindNumber:
		if value == "" || value == f.Default {
			return nil
		}
		return []string{f.CLIFlag, value}
	default:
		if value == "" {
			return nil
		}
		// Free text goes in as typed; embedded double quotes are not escaped.
		raw := values[f.Name]
		if f.Quoted {
			raw = `"` + raw + `"`
		}
		return []string{f.CLIFlag, raw}
	}
}

// Redacted renders the command with the token value replaced by ***.
func (c *Command) Redacted() string {
	args := make([]string, len(c.Args))
	copy(args, c.Args)
	for i := 0; i < len(args)-1; i++ {
		if args[i] == tokenFlag.CLIFlag {
			args[i+1] = RedactedToken
		}
	}
	r := Command{Mode: c.Mode, Program: c.Program, Args: args}
	return r.String()
}
