package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"
	"github.com/crazywolf132/statscmd/internal/builder"
)

// AskModeFunc is the function type for picking a mode
type AskModeFunc func() (builder.Mode, error)

// AskFieldsFunc is the function type for filling in a mode's fields
type AskFieldsFunc func(mode builder.Mode, initial builder.FieldValues, notes map[string]string) (builder.FieldValues, error)

// AskMode and AskFields can be reassigned for testing.
var (
	AskMode   AskModeFunc   = askMode
	AskFields AskFieldsFunc = askFields
	Confirm                 = confirm
)

func askMode() (builder.Mode, error) {
	modes := builder.Modes()
	titles := make([]string, len(modes))
	for i, m := range modes {
		titles[i] = m.Title()
	}

	var idx int
	err := survey.AskOne(&survey.Select{
		Message: "What do you want to analyze?",
		Options: titles,
	}, &idx)
	if err != nil {
		return 0, err
	}
	return modes[idx], nil
}

// askFields shows one form group with every field of the mode. Fields start
// at initial, or at the field default when initial has no value.
func askFields(mode builder.Mode, initial builder.FieldValues, notes map[string]string) (builder.FieldValues, error) {
	strs := map[string]*string{}
	bools := map[string]*bool{}
	var fields []huh.Field

	for _, f := range mode.Flags() {
		description := strings.TrimSpace(f.Help + " " + notes[f.Name])

		switch f.Kind {
		case builder.KindBool:
			v, _ := strconv.ParseBool(initial[f.Name])
			bools[f.Name] = &v
			fields = append(fields, huh.NewConfirm().
				Title(f.Title).
				Description(description).
				Value(&v))
		case builder.KindSelect:
			v := initialValue(f, initial)
			strs[f.Name] = &v
			fields = append(fields, huh.NewSelect[string]().
				Title(f.Title).
				Description(description).
				Options(huh.NewOptions(f.Options...)...).
				Value(&v))
		case builder.KindRepoList:
			v := initial[f.Name]
			strs[f.Name] = &v
			fields = append(fields, huh.NewText().
				Title(f.Title).
				Description(description).
				Placeholder("owner/repo").
				Value(&v).
				Validate(func(s string) error {
					if len(builder.SplitRepositories(s)) == 0 {
						return fmt.Errorf("at least one repository is required")
					}
					return nil
				}))
		default:
			v := initialValue(f, initial)
			strs[f.Name] = &v
			input := huh.NewInput().
				Title(f.Title).
				Description(description).
				Value(&v)
			if f.Name == builder.FieldToken {
				input.EchoMode(huh.EchoModePassword)
			}
			if f.Kind == builder.KindNumber && f.Default != "" {
				input.Placeholder(f.Default)
			}
			if f.Required {
				name := f.Title
				input.Validate(func(s string) error {
					if nonEmpty(s) != nil {
						return fmt.Errorf("%s cannot be empty", strings.ToLower(name))
					}
					return nil
				})
			}
			fields = append(fields, input)
		}
	}

	err := huh.NewForm(huh.NewGroup(fields...).Title(mode.Title())).Run()
	if err != nil {
		return nil, err
	}

	values := builder.FieldValues{}
	for name, v := range strs {
		values[name] = *v
	}
	for name, v := range bools {
		values.SetBool(name, *v)
	}
	return values, nil
}

func confirm(message string, def bool) (bool, error) {
	ok := def
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &ok)
	return ok, err
}

// initialValue is what an input starts with. Number inputs start blank so
// their default shows as the placeholder and blank stays a visible choice.
func initialValue(f builder.FlagDefinition, initial builder.FieldValues) string {
	if f.Kind == builder.KindNumber {
		return initial[f.Name]
	}
	return nonEmptyOr(initial[f.Name], f.Default)
}

func nonEmptyOr(val, fallback string) string {
	v := strings.TrimSpace(val)
	if v == "" {
		return fallback
	}
	return v
}
