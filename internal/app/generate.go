// Package app provides the core application logic for the statscmd command
// generator: it gathers field values, builds the command and hands it to the
// user.
package app

import (
	"fmt"
	"io"

	"emperror.dev/errors"
	"github.com/charmbracelet/huh"
	"github.com/crazywolf132/statscmd/internal/builder"
	"github.com/crazywolf132/statscmd/internal/git"
	"github.com/crazywolf132/statscmd/internal/githubutils"
	"github.com/crazywolf132/statscmd/internal/history"
	"github.com/crazywolf132/statscmd/internal/ui"
	"github.com/sirupsen/logrus"
)

// ErrAborted is returned when the user quits the form.
var ErrAborted = errors.New("aborted")

// Recorder stores generated commands.
type Recorder interface {
	Append(e history.Entry) error
}

// Deps are the collaborators of the use cases.
type Deps struct {
	Builder   *builder.Builder
	Clipboard ui.Clipboard
	History   Recorder
	Out       io.Writer
}

// GenerateOptions defines one command generation.
type GenerateOptions struct {
	// Mode selects the command grammar
	Mode builder.Mode
	// Values are the fields supplied on the command line
	Values builder.FieldValues
	// Interactive shows the form, starting from Values
	Interactive bool
	// Copy puts the result on the clipboard
	Copy bool
	// Explain logs every flag that was left out
	Explain bool
	// Dir is where the form looks for a git origin to prefill. Empty skips
	// detection.
	Dir string
	// Token prefills the form's token field
	Token string
}

// GenerateResult contains the outcome of a generation.
type GenerateResult struct {
	Command *builder.Command
	Copied  bool
}

// Generate builds the command for opts, prints it to deps.Out, and copies and
// records it. Only a missing required field or an aborted form is an error;
// clipboard and history problems are reported as warnings.
func Generate(deps Deps, opts GenerateOptions) (*GenerateResult, error) {
	values := builder.FieldValues{}
	for k, v := range opts.Values {
		values[k] = v
	}

	if opts.Interactive {
		initial := prefill(opts.Mode, values, opts)
		notes := map[string]string{builder.FieldToken: githubutils.TokenNote()}

		answers, err := ui.AskFields(opts.Mode, initial, notes)
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrAborted
		}
		if err != nil {
			return nil, errors.Wrap(err, "form failed")
		}
		values = answers
	}

	cmd, err := deps.Builder.Assemble(opts.Mode, values)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot build %s command", opts.Mode)
	}

	log := logrus.WithField("mode", opts.Mode.String())
	if opts.Explain {
		log.Debugf("program: %s", cmd.Program)
		for _, name := range cmd.Suppressed {
			log.WithField("field", name).Debug("left out (empty or default)")
		}
	}

	ui.PrintCommand(deps.Out, cmd.String())

	res := &GenerateResult{Command: cmd}
	if opts.Copy && deps.Clipboard != nil {
		if err := deps.Clipboard.WriteAll(cmd.String()); err != nil {
			log.WithError(err).Debug("clipboard write failed")
			ui.Warnf("could not copy to clipboard: %v\n", err)
		} else {
			res.Copied = true
			fmt.Fprintf(ui.Stderr, "%s Copied to clipboard\n", ui.Green("✓"))
		}
	}

	if deps.History != nil {
		redacted := cmd.Redacted()
		err := deps.History.Append(history.Entry{
			Mode:     opts.Mode.String(),
			Command:  redacted,
			Redacted: redacted != cmd.String(),
		})
		if err != nil {
			ui.Warnf("could not save history: %v\n", err)
		}
	}

	return res, nil
}

// prefill fills empty required fields from the current checkout and the
// token field from settings.
func prefill(mode builder.Mode, values builder.FieldValues, opts GenerateOptions) builder.FieldValues {
	initial := builder.FieldValues{}
	for k, v := range values {
		initial[k] = v
	}

	if values.Get(builder.FieldToken) == "" && opts.Token != "" {
		initial[builder.FieldToken] = opts.Token
	}

	if opts.Dir == "" {
		return initial
	}
	_, wantsRepos := mode.Lookup(builder.FieldRepositories)
	_, wantsOrg := mode.Lookup(builder.FieldOrganization)
	if (!wantsRepos || values.Get(builder.FieldRepositories) != "") &&
		(!wantsOrg || values.Get(builder.FieldOrganization) != "") {
		return initial
	}

	origin, err := git.DetectOrigin(opts.Dir)
	if err != nil {
		logrus.WithError(err).Debug("no origin to prefill from")
		return initial
	}
	if wantsRepos && values.Get(builder.FieldRepositories) == "" {
		initial[builder.FieldRepositories] = origin.Slug()
	}
	if wantsOrg && values.Get(builder.FieldOrganization) == "" {
		initial[builder.FieldOrganization] = origin.Owner
	}
	return initial
}
