package cmd_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/crazywolf132/statscmd/cmd"
	"github.com/crazywolf132/statscmd/internal/builder"
	"github.com/crazywolf132/statscmd/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	copied []string
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.copied = append(f.copied, text)
	return nil
}

// testEnv isolates the config directory, environment and terminal output.
type testEnv struct {
	clip   *fakeClipboard
	stderr *bytes.Buffer
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("APPDATA", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, key := range []string{"STATSCMD_PYTHON", "STATSCMD_COPY", "STATSCMD_EXPLAIN", "STATSCMD_SCRIPT_STATS", "STATSCMD_SCRIPT_MONTHLY", "STATSCMD_INTERACTIVE", "STATSCMD_NO_COPY"} {
		t.Setenv(key, "")
	}

	env := &testEnv{clip: &fakeClipboard{}, stderr: &bytes.Buffer{}}
	t.Cleanup(cmd.SetClipboard(env.clip))

	oldOut, oldErr := ui.Stdout, ui.Stderr
	ui.Stdout, ui.Stderr = env.stderr, env.stderr
	t.Cleanup(func() { ui.Stdout, ui.Stderr = oldOut, oldErr })
	return env
}

// run executes statscmd with args on a fresh command tree and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd := cmd.NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnalysisCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "repos",
			args: []string{"repos", "microsoft/vscode", "facebook/react", "--output", "stats.json"},
			want: "python github_stats.py repos microsoft/vscode facebook/react --output stats.json",
		},
		{
			name: "org with changed top",
			args: []string{"org", "microsoft", "--top", "25"},
			want: "python github_stats.py org microsoft --top 25",
		},
		{
			name: "org with explicit defaults",
			args: []string{"org", "microsoft", "--top", "15", "--type", "all"},
			want: "python github_stats.py org microsoft",
		},
		{
			name: "org everything",
			args: []string{"org", "microsoft", "--type", "forks", "--no-summary", "--output", "o.json", "--token", "t"},
			want: "python github_stats.py org microsoft --token t --type forks --output o.json --no-summary",
		},
		{
			name: "rank",
			args: []string{"rank", "a/b", "c/d", "--top", "3"},
			want: "python github_stats.py rank a/b c/d --top 3",
		},
		{
			name: "contributors with company",
			args: []string{"contributors", "tarento", "--company", "Tarento"},
			want: `python github_stats.py contributors tarento --company "Tarento"`,
		},
		{
			name: "contributors alias and numbers",
			args: []string{"contrib", "tarento", "--months", "6", "--min-contributions", "1", "--top", "20"},
			want: "python github_stats.py contributors tarento --months 6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setup(t)

			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
			assert.Equal(t, []string{tt.want}, env.clip.copied)
		})
	}
}

func TestMonthlyCommand(t *testing.T) {
	setup(t)

	out, err := run(t, "monthly", "tarento", "--company", "Tarento")
	require.NoError(t, err)
	want := `python org_contributor.py tarento --company "Tarento" --output ` + builder.MonthlyOutput(time.Now())
	assert.Equal(t, want+"\n", out)
}

func TestMissingRequiredField(t *testing.T) {
	for _, args := range [][]string{{"org"}, {"repos"}, {"rank", "--top", "5"}, {"contributors"}, {"monthly"}} {
		t.Run(args[0], func(t *testing.T) {
			env := setup(t)

			out, err := run(t, args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, builder.ErrMissingRequiredField))
			assert.Empty(t, out)
			assert.Empty(t, env.clip.copied)
		})
	}
}

func TestNumbersPassThrough(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"leading zero", []string{"org", "acme", "--top", "015"}, "python github_stats.py org acme --top 015"},
		{"hex stays text", []string{"org", "acme", "--top", "0x10"}, "python github_stats.py org acme --top 0x10"},
		{"malformed", []string{"org", "acme", "--top", "25x"}, "python github_stats.py org acme --top 25x"},
		{"blank months", []string{"contributors", "acme", "--months", ""}, "python github_stats.py contributors acme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup(t)
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestCopySettings(t *testing.T) {
	t.Run("no-copy flag", func(t *testing.T) {
		env := setup(t)
		_, err := run(t, "org", "acme", "--no-copy")
		require.NoError(t, err)
		assert.Empty(t, env.clip.copied)
	})

	t.Run("environment", func(t *testing.T) {
		env := setup(t)
		t.Setenv("STATSCMD_COPY", "false")
		_, err := run(t, "org", "acme")
		require.NoError(t, err)
		assert.Empty(t, env.clip.copied)
	})

	t.Run("config file", func(t *testing.T) {
		env := setup(t)
		_, err := run(t, "config", "set", "copy", "false")
		require.NoError(t, err)
		_, err = run(t, "org", "acme")
		require.NoError(t, err)
		assert.Empty(t, env.clip.copied)
	})
}

func TestInterpreterResolution(t *testing.T) {
	t.Run("config file", func(t *testing.T) {
		setup(t)
		_, err := run(t, "config", "set", "python", "py")
		require.NoError(t, err)

		out, err := run(t, "org", "acme")
		require.NoError(t, err)
		assert.Equal(t, "py github_stats.py org acme\n", out)
	})

	t.Run("environment beats config", func(t *testing.T) {
		setup(t)
		_, err := run(t, "config", "set", "python", "py")
		require.NoError(t, err)
		t.Setenv("STATSCMD_PYTHON", "python3")

		out, err := run(t, "org", "acme")
		require.NoError(t, err)
		assert.Equal(t, "python3 github_stats.py org acme\n", out)
	})

	t.Run("flag beats environment", func(t *testing.T) {
		setup(t)
		t.Setenv("STATSCMD_PYTHON", "python3")

		out, err := run(t, "org", "acme", "--python", "pypy")
		require.NoError(t, err)
		assert.Equal(t, "pypy github_stats.py org acme\n", out)
	})

	t.Run("scripts from config", func(t *testing.T) {
		setup(t)
		_, err := run(t, "config", "set", "script.monthly", "monthly.py")
		require.NoError(t, err)

		out, err := run(t, "monthly", "acme")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "python monthly.py acme --output "), out)
	})
}

func TestInteractiveFlag(t *testing.T) {
	env := setup(t)

	origAsk := ui.AskFields
	t.Cleanup(func() { ui.AskFields = origAsk })
	var seeded builder.FieldValues
	ui.AskFields = func(mode builder.Mode, initial builder.FieldValues, notes map[string]string) (builder.FieldValues, error) {
		seeded = initial
		return builder.FieldValues{builder.FieldOrganization: "tarento", builder.FieldCompany: "Tarento"}, nil
	}

	out, err := run(t, "contributors", "--top", "30", "-i")
	require.NoError(t, err)
	assert.Equal(t, "30", seeded[builder.FieldTop])
	assert.Equal(t, "python github_stats.py contributors tarento --company \"Tarento\"\n", out)
	assert.Len(t, env.clip.copied, 1)
}

func TestRootRunsInteractiveFlow(t *testing.T) {
	setup(t)

	origMode, origFields := ui.AskMode, ui.AskFields
	t.Cleanup(func() { ui.AskMode, ui.AskFields = origMode, origFields })
	ui.AskMode = func() (builder.Mode, error) { return builder.RepositoryRanking, nil }
	ui.AskFields = func(mode builder.Mode, initial builder.FieldValues, notes map[string]string) (builder.FieldValues, error) {
		assert.Equal(t, builder.RepositoryRanking, mode)
		return builder.FieldValues{builder.FieldRepositories: "a/b\nc/d", builder.FieldTop: "10"}, nil
	}

	out, err := run(t)
	require.NoError(t, err)
	assert.Equal(t, "python github_stats.py rank a/b c/d\n", out)
}

func TestConfigCommands(t *testing.T) {
	setup(t)

	out, err := run(t, "config", "get", "python")
	require.NoError(t, err)
	assert.Contains(t, out, "not set")

	_, err = run(t, "config", "set", "python", "python3")
	require.NoError(t, err)
	out, err = run(t, "config", "get", "python")
	require.NoError(t, err)
	assert.Equal(t, "python3\n", out)

	out, err = run(t, "config", "set", "github.token", "ghp_secret")
	require.NoError(t, err)
	assert.NotContains(t, out, "ghp_secret")

	out, err = run(t, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "python3")
	assert.Contains(t, out, "script.monthly")
	assert.NotContains(t, out, "ghp_secret")

	_, err = run(t, "config", "unset", "python")
	require.NoError(t, err)
	out, err = run(t, "config", "get", "python")
	require.NoError(t, err)
	assert.Contains(t, out, "not set")

	_, err = run(t, "config", "set", "copy", "sometimes")
	assert.Error(t, err)
}

func TestConfiguredTokenIsNotInserted(t *testing.T) {
	setup(t)
	_, err := run(t, "config", "set", "github.token", "ghp_secret")
	require.NoError(t, err)

	out, err := run(t, "org", "acme")
	require.NoError(t, err)
	assert.Equal(t, "python github_stats.py org acme\n", out)
}

func TestHistoryCommands(t *testing.T) {
	env := setup(t)

	out, err := run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No commands generated yet")

	_, err = run(t, "org", "acme", "--token", "ghp_secret", "--no-copy")
	require.NoError(t, err)
	_, err = run(t, "repos", "a/b", "--no-copy")
	require.NoError(t, err)

	out, err = run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "python github_stats.py repos a/b")
	assert.Contains(t, out, "python github_stats.py org acme --token ***")
	assert.NotContains(t, out, "ghp_secret")

	out, err = run(t, "history", "--mode", "org")
	require.NoError(t, err)
	assert.NotContains(t, out, "repos a/b")

	_, err = run(t, "history", "--mode", "weekly")
	assert.Error(t, err)

	out, err = run(t, "history", "copy", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "org acme --token ***")
	assert.Equal(t, []string{"python github_stats.py org acme --token ***"}, env.clip.copied)
	assert.Contains(t, env.stderr.String(), "token was not saved")

	_, err = run(t, "history", "copy", "7")
	assert.Error(t, err)
	_, err = run(t, "history", "copy", "first")
	assert.Error(t, err)

	_, err = run(t, "history", "clear", "--yes")
	require.NoError(t, err)
	out, err = run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No commands generated yet")
}

func TestHistoryClearDeclined(t *testing.T) {
	setup(t)
	_, err := run(t, "org", "acme", "--no-copy")
	require.NoError(t, err)

	origConfirm := ui.Confirm
	t.Cleanup(func() { ui.Confirm = origConfirm })
	ui.Confirm = func(string, bool) (bool, error) { return false, nil }

	_, err = run(t, "history", "clear")
	require.NoError(t, err)

	out, err := run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "org acme")
}

func TestVersionCommand(t *testing.T) {
	setup(t)
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "statscmd "), out)
}

func TestRootCommand(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		setup(t)
		out, err := run(t, "--help")
		assert.NoError(t, err)
		assert.Contains(t, out, "contributors")
	})

	t.Run("unknown command", func(t *testing.T) {
		setup(t)
		_, err := run(t, "unknown")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown command")
	})

	t.Run("unknown flag", func(t *testing.T) {
		setup(t)
		_, err := run(t, "--unknown")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown flag")
	})

	t.Run("explain", func(t *testing.T) {
		setup(t)
		out, err := run(t, "org", "acme", "--explain", "--no-copy")
		require.NoError(t, err)
		assert.Equal(t, "python github_stats.py org acme\n", out)
	})
}
