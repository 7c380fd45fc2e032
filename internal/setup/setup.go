// Package setup implements the interactive settings flows: the guided
// and advanced LLM wizards, the search API key flow and the settings
// display. Flows collect every answer first and only mutate the
// configuration root and the settings store after the user confirms the
// save.
package setup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gohands/gohands/internal/config"
	. "github.com/gohands/gohands/internal/logging"
	"github.com/gohands/gohands/internal/settings"
)

// Flows bundles the pieces every settings flow needs.
type Flows struct {
	cfg    *config.Config
	store  settings.Store
	prompt Prompter
	verify VerifyFunc
}

// NewFlows wires the flows against the live configuration root and
// settings store.
func NewFlows(cfg *config.Config, store settings.Store) *Flows {
	return &Flows{
		cfg:    cfg,
		store:  store,
		prompt: NewPrompter(),
		verify: VerifyCredentials,
	}
}

// abort maps a user cancellation to a clean exit. Any other prompt error
// propagates.
func abort(err error) error {
	if isCancel(err) {
		fmt.Println()
		fmt.Println("Cancelled. No changes were made.")
		return nil
	}
	return err
}

// confirmSave is the single commit gate of every flow.
func (f *Flows) confirmSave() (bool, error) {
	return f.prompt.Confirm("Save new settings?", "Yes, save", "No, discard")
}

// persist loads the stored record (or starts a fresh one), applies the
// flow's changes and writes it back.
func (f *Flows) persist(apply func(*settings.Settings)) error {
	st, err := f.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load existing settings: %w", err)
	}
	if st == nil {
		st = settings.New()
	}

	apply(st)

	if err := f.store.Store(st); err != nil {
		return err
	}
	fmt.Println("✓ Settings saved.")
	return nil
}

// checkCredentials probes the API key before the save confirmation. A
// failed probe warns and lets the user decide; it never blocks the flow.
func (f *Flows) checkCredentials(provider, apiKey, baseURL string) {
	if f.verify == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := f.verify(ctx, provider, apiKey, baseURL)
	switch {
	case errors.Is(err, ErrVerifyUnsupported):
		L_debug("setup: skipping credential check", "provider", provider)
	case err != nil:
		fmt.Printf("⚠ Credential check failed: %v\n", err)
		fmt.Println("  You can still save, but double-check the API key.")
	default:
		fmt.Printf("✓ Credentials verified (%d models available)\n", n)
	}
}

// nonEmpty validates that a required field was filled in.
func nonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

// oneOf validates membership in a fixed set of values.
func oneOf(field string, allowed []string) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
		return fmt.Errorf("unknown %s: %q", field, s)
	}
}
