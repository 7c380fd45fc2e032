package setup

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/gohands/gohands/internal/config"
	"github.com/gohands/gohands/internal/settings"
)

// scripted answers for the test prompter
type answer struct {
	kind string // "input", "select", "confirm", "cancel"
	text string
	ok   bool
}

func in(s string) answer     { return answer{kind: "input", text: s} }
func sel(s string) answer    { return answer{kind: "select", text: s} }
func confirm(ok bool) answer { return answer{kind: "confirm", ok: ok} }
func cancel() answer         { return answer{kind: "cancel"} }

// scriptPrompter replays a fixed script. Running past the end of the
// script counts as a cancel, which keeps prefix-truncated scripts valid
// cancellation cases.
type scriptPrompter struct {
	t       *testing.T
	answers []answer
	pos     int
}

func (p *scriptPrompter) next(kind string) (answer, error) {
	if p.pos >= len(p.answers) {
		return answer{}, ErrCancelled
	}
	a := p.answers[p.pos]
	p.pos++
	if a.kind == "cancel" {
		return answer{}, ErrCancelled
	}
	if a.kind != kind {
		p.t.Fatalf("script answer %d is %q, prompt asked for %q", p.pos-1, a.kind, kind)
	}
	return a, nil
}

func (p *scriptPrompter) Input(opts InputOpts) (string, error) {
	for {
		a, err := p.next("input")
		if err != nil {
			return "", err
		}
		if opts.Validate != nil && opts.Validate(a.text) != nil {
			continue // rejected, consume the next scripted answer
		}
		return strings.TrimSpace(a.text), nil
	}
}

func (p *scriptPrompter) Select(title string, options []Option) (string, error) {
	a, err := p.next("select")
	if err != nil {
		return "", err
	}
	for _, o := range options {
		if o.Value == a.text {
			return a.text, nil
		}
	}
	p.t.Fatalf("scripted choice %q not offered by %q", a.text, title)
	return "", nil
}

func (p *scriptPrompter) Confirm(title, affirmative, negative string) (bool, error) {
	a, err := p.next("confirm")
	if err != nil {
		return false, err
	}
	return a.ok, nil
}

// memStore is an in-memory settings.Store.
type memStore struct {
	st     *settings.Settings
	writes int
}

func (m *memStore) Load() (*settings.Settings, error) {
	if m.st == nil {
		return nil, nil
	}
	cp := *m.st
	return &cp, nil
}

func (m *memStore) Store(st *settings.Settings) error {
	cp := *st
	m.st = &cp
	m.writes++
	return nil
}

func newTestFlows(t *testing.T, script ...answer) (*Flows, *memStore) {
	store := &memStore{}
	f := &Flows{
		cfg:    config.New(),
		store:  store,
		prompt: &scriptPrompter{t: t, answers: script},
	}
	return f, store
}

func TestBasicFlowSavesComposedModel(t *testing.T) {
	f, store := newTestFlows(t,
		sel("anthropic"),
		sel("recommended"),
		in("sk-ant-test"),
		confirm(true),
	)

	if err := f.BasicLLM(); err != nil {
		t.Fatal(err)
	}

	want := "anthropic/claude-sonnet-4-20250514"
	if store.st == nil || store.st.LLMModel != want {
		t.Fatalf("stored model = %+v, want %q", store.st, want)
	}
	if store.st.LLMAPIKey.Reveal() != "sk-ant-test" {
		t.Errorf("stored key = %q", store.st.LLMAPIKey.Reveal())
	}
	if store.st.Agent != config.DefaultAgent {
		t.Errorf("stored agent = %q", store.st.Agent)
	}
	if !store.st.EnableDefaultCondenser {
		t.Error("condenser flag not set")
	}

	llm := f.cfg.GetLLMConfig("")
	if llm.Model != want || llm.BaseURL != "" {
		t.Errorf("config llm = %+v", llm)
	}
	ac := f.cfg.GetAgentConfig(config.DefaultAgent)
	if ac.Condenser.Type != config.CondenserLLMSummarizing {
		t.Errorf("condenser type = %q", ac.Condenser.Type)
	}
	if ac.Condenser.LLMProfile != config.DefaultLLMProfile {
		t.Errorf("condenser llm profile = %q", ac.Condenser.LLMProfile)
	}
}

func TestBasicFlowCustomModelComposition(t *testing.T) {
	f, store := newTestFlows(t,
		sel("openai"),
		sel("custom"),
		in("gpt-4o-mini"),
		in("sk-test"),
		confirm(true),
	)

	if err := f.BasicLLM(); err != nil {
		t.Fatal(err)
	}

	// Saved id is exactly provider + separator + model
	if got, want := store.st.LLMModel, "openai/gpt-4o-mini"; got != want {
		t.Errorf("stored model = %q, want %q", got, want)
	}
}

func TestBasicFlowOtherProviderCompletion(t *testing.T) {
	f, store := newTestFlows(t,
		sel(otherProvider),
		in("not-a-provider"), // rejected, prompts again
		in("ollama"),
		sel("custom"),
		in("llama3.2"),
		in("dummy-key"),
		confirm(true),
	)

	if err := f.BasicLLM(); err != nil {
		t.Fatal(err)
	}

	if got, want := store.st.LLMModel, "ollama/llama3.2"; got != want {
		t.Errorf("stored model = %q, want %q", got, want)
	}
}

func TestBasicFlowCancelAnywhereLeavesStateUnchanged(t *testing.T) {
	full := []answer{
		sel("anthropic"),
		sel("recommended"),
		in("sk-ant-test"),
		confirm(true),
	}

	// Cancel at every prompt position before the final confirm.
	for i := 0; i < len(full); i++ {
		t.Run(fmt.Sprintf("cancel_at_%d", i), func(t *testing.T) {
			script := append(append([]answer{}, full[:i]...), cancel())
			f, store := newTestFlows(t, script...)

			if err := f.BasicLLM(); err != nil {
				t.Fatal(err)
			}
			if store.writes != 0 {
				t.Errorf("store written %d times on cancel", store.writes)
			}
			if !reflect.DeepEqual(f.cfg, config.New()) {
				t.Error("config mutated on cancel")
			}
		})
	}
}

func TestBasicFlowDeclineSaveLeavesStateUnchanged(t *testing.T) {
	f, store := newTestFlows(t,
		sel("anthropic"),
		sel("recommended"),
		in("sk-ant-test"),
		confirm(false),
	)

	if err := f.BasicLLM(); err != nil {
		t.Fatal(err)
	}
	if store.writes != 0 {
		t.Error("store written despite declined save")
	}
	if !reflect.DeepEqual(f.cfg, config.New()) {
		t.Error("config mutated despite declined save")
	}
}

func TestAdvancedFlowSavesEverything(t *testing.T) {
	f, store := newTestFlows(t,
		in("my-provider/my-model"),
		in("http://localhost:8000/v1"),
		in("sk-local"),
		in("ReadOnlyAgent"),
		sel("enable"),  // confirmation mode
		sel("disable"), // memory condensation
		confirm(true),
	)

	if err := f.AdvancedLLM(); err != nil {
		t.Fatal(err)
	}

	st := store.st
	if st.LLMModel != "my-provider/my-model" || st.LLMBaseURL != "http://localhost:8000/v1" {
		t.Errorf("stored llm = %+v", st)
	}
	if st.Agent != "ReadOnlyAgent" || !st.ConfirmationMode || st.EnableDefaultCondenser {
		t.Errorf("stored flags = %+v", st)
	}

	if f.cfg.DefaultAgent != "ReadOnlyAgent" {
		t.Errorf("default agent = %q", f.cfg.DefaultAgent)
	}
	if !f.cfg.Security.ConfirmationMode {
		t.Error("confirmation mode not enabled")
	}
	ac := f.cfg.GetAgentConfig("ReadOnlyAgent")
	if ac.Condenser.Type != config.CondenserConversationWindow {
		t.Errorf("condenser type = %q", ac.Condenser.Type)
	}
}

func TestAdvancedFlowCondenserPipeline(t *testing.T) {
	f, _ := newTestFlows(t,
		in("my/model"),
		in("http://localhost:11434/v1"),
		in("key"),
		in("CodeActAgent"),
		sel("disable"),
		sel("enable"), // memory condensation on
		confirm(true),
	)

	if err := f.AdvancedLLM(); err != nil {
		t.Fatal(err)
	}

	ac := f.cfg.GetAgentConfig("CodeActAgent")
	if ac.Condenser.Type != config.CondenserPipeline {
		t.Fatalf("condenser type = %q", ac.Condenser.Type)
	}
	if len(ac.Condenser.Condensers) != 2 {
		t.Fatalf("pipeline stages = %d", len(ac.Condenser.Condensers))
	}
	sum := ac.Condenser.Condensers[1]
	if sum.Type != config.CondenserLLMSummarizing || sum.KeepFirst != 4 || sum.MaxSize != 120 {
		t.Errorf("summarizer stage = %+v", sum)
	}
}

func TestAdvancedFlowRejectsUnknownAgent(t *testing.T) {
	f, store := newTestFlows(t,
		in("my/model"),
		in("http://localhost:8000/v1"),
		in("key"),
		in("NoSuchAgent"),  // rejected
		in("CodeActAgent"), // accepted on re-prompt
		sel("disable"),
		sel("disable"),
		confirm(true),
	)

	if err := f.AdvancedLLM(); err != nil {
		t.Fatal(err)
	}
	if store.st.Agent != "CodeActAgent" {
		t.Errorf("stored agent = %q", store.st.Agent)
	}
}

func TestSearchFlowSetKey(t *testing.T) {
	f, store := newTestFlows(t,
		sel("set"),
		in("bad-key"), // rejected, tvly- prefix required
		in("tvly-abc123"),
		confirm(true),
	)

	if err := f.SearchAPI(); err != nil {
		t.Fatal(err)
	}
	if f.cfg.SearchAPIKey.Reveal() != "tvly-abc123" {
		t.Errorf("config key = %q", f.cfg.SearchAPIKey.Reveal())
	}
	if store.st.SearchAPIKey.Reveal() != "tvly-abc123" {
		t.Errorf("stored key = %q", store.st.SearchAPIKey.Reveal())
	}
}

func TestSearchFlowRemoveKey(t *testing.T) {
	f, store := newTestFlows(t,
		sel("remove"),
		confirm(true),
	)
	f.cfg.SearchAPIKey = "tvly-old"
	store.st = &settings.Settings{SearchAPIKey: "tvly-old"}

	if err := f.SearchAPI(); err != nil {
		t.Fatal(err)
	}
	if f.cfg.SearchAPIKey.IsSet() {
		t.Error("config key not cleared")
	}
	if store.st.SearchAPIKey.IsSet() {
		t.Error("stored key not cleared")
	}
}

func TestSearchFlowKeepDoesNothing(t *testing.T) {
	f, store := newTestFlows(t, sel("keep"))
	f.cfg.SearchAPIKey = "tvly-old"

	if err := f.SearchAPI(); err != nil {
		t.Fatal(err)
	}
	if store.writes != 0 {
		t.Error("store written on keep")
	}
	if f.cfg.SearchAPIKey.Reveal() != "tvly-old" {
		t.Error("config key changed on keep")
	}
}

func TestSearchFlowDeclineSave(t *testing.T) {
	f, store := newTestFlows(t,
		sel("set"),
		in("tvly-new"),
		confirm(false),
	)

	if err := f.SearchAPI(); err != nil {
		t.Fatal(err)
	}
	if store.writes != 0 || f.cfg.SearchAPIKey.IsSet() {
		t.Error("state changed despite declined save")
	}
}

func TestPersistKeepsExistingFields(t *testing.T) {
	f, store := newTestFlows(t,
		sel("set"),
		in("tvly-abc"),
		confirm(true),
	)
	store.st = &settings.Settings{
		InstallID: "existing-id",
		LLMModel:  "anthropic/claude-sonnet-4-20250514",
	}

	if err := f.SearchAPI(); err != nil {
		t.Fatal(err)
	}
	if store.st.InstallID != "existing-id" {
		t.Errorf("install id = %q", store.st.InstallID)
	}
	if store.st.LLMModel != "anthropic/claude-sonnet-4-20250514" {
		t.Errorf("llm model clobbered: %q", store.st.LLMModel)
	}
}
