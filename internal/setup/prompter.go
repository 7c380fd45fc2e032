package setup

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Option is a single entry of a selection prompt.
type Option struct {
	Label string
	Value string
}

// InputOpts configures a free-text prompt.
type InputOpts struct {
	Title       string
	Description string
	Placeholder string
	Suggestions []string
	Secret      bool
	Validate    func(string) error
}

// Prompter collects answers from the user. The production implementation
// is huh-backed; tests substitute a scripted one.
type Prompter interface {
	Input(opts InputOpts) (string, error)
	Select(title string, options []Option) (string, error)
	Confirm(title, affirmative, negative string) (bool, error)
}

type huhPrompter struct {
	accessible bool
}

// NewPrompter returns the interactive terminal prompter. Without a TTY
// (or with GOHANDS_ACCESSIBLE set) forms run in accessible mode.
func NewPrompter() Prompter {
	accessible := os.Getenv("GOHANDS_ACCESSIBLE") != "" ||
		!term.IsTerminal(int(os.Stdin.Fd()))
	return &huhPrompter{accessible: accessible}
}

func (p *huhPrompter) newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).
		WithShowHelp(true).
		WithAccessible(p.accessible)
}

// run executes a form and maps aborts to ErrCancelled.
func (p *huhPrompter) run(groups ...*huh.Group) error {
	if err := p.newForm(groups...).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, io.EOF) {
			return ErrCancelled
		}
		return err
	}
	return nil
}

func (p *huhPrompter) Input(opts InputOpts) (string, error) {
	var value string

	field := huh.NewInput().
		Title(opts.Title).
		Value(&value)
	if opts.Description != "" {
		field = field.Description(opts.Description)
	}
	if opts.Placeholder != "" {
		field = field.Placeholder(opts.Placeholder)
	}
	if len(opts.Suggestions) > 0 {
		field = field.Suggestions(opts.Suggestions)
	}
	if opts.Secret {
		field = field.EchoMode(huh.EchoModePassword)
	}
	if opts.Validate != nil {
		field = field.Validate(opts.Validate)
	}

	if err := p.run(huh.NewGroup(field)); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (p *huhPrompter) Select(title string, options []Option) (string, error) {
	var value string

	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o.Label, o.Value))
	}

	field := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&value)

	if err := p.run(huh.NewGroup(field)); err != nil {
		return "", err
	}
	return value, nil
}

func (p *huhPrompter) Confirm(title, affirmative, negative string) (bool, error) {
	var ok bool

	field := huh.NewConfirm().
		Title(title).
		Affirmative(affirmative).
		Negative(negative).
		Value(&ok)

	if err := p.run(huh.NewGroup(field)); err != nil {
		return false, err
	}
	return ok, nil
}
