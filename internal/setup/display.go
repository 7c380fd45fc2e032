package setup

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gohands/gohands/internal/config"
	"github.com/gohands/gohands/internal/metadata"
	"github.com/gohands/gohands/internal/settings"
)

var (
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)

	titleStyle = lipgloss.NewStyle().Bold(true)
)

// ShowSettings prints the current configuration in a framed table.
func (f *Flows) ShowSettings() error {
	var path string
	if fs, ok := f.store.(*settings.FileStore); ok {
		path = fs.Path()
	}
	fmt.Println(renderSettings(f.cfg, path))
	return nil
}

// renderSettings builds the settings display. A configured base URL
// switches to the custom-model presentation; otherwise the model id is
// split into provider and model rows.
func renderSettings(cfg *config.Config, settingsPath string) string {
	llm := cfg.GetLLMConfig("")

	type row struct{ label, value string }
	var rows []row

	if llm.BaseURL == "" {
		provider, model, _ := metadata.SplitModelID(llm.Model)
		if provider == "other" {
			provider = "-"
		}
		rows = append(rows,
			row{"LLM Provider", provider},
			row{"LLM Model", model},
		)
	} else {
		rows = append(rows,
			row{"Custom Model", llm.Model},
			row{"Base URL", llm.BaseURL},
		)
	}

	rows = append(rows,
		row{"API Key", maskValue(llm.APIKey)},
		row{"Agent", cfg.DefaultAgent},
		row{"Confirmation Mode", enabledDisabled(cfg.Security.ConfirmationMode)},
		row{"Memory Condensation", enabledDisabled(cfg.EnableDefaultCondenser)},
		row{"Search API Key", maskValue(cfg.SearchAPIKey)},
	)
	if settingsPath != "" {
		rows = append(rows, row{"Settings File", settingsPath})
	}

	width := 0
	for _, r := range rows {
		if len(r.label) > width {
			width = len(r.label)
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Current Settings"))
	b.WriteString("\n\n")
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-*s  %s", width+1, r.label+":", r.value)
	}

	return frameStyle.Render(b.String())
}

func maskValue(s config.Secret) string {
	if s.IsSet() {
		return config.Masked
	}
	return "Not set"
}

func enabledDisabled(v bool) string {
	if v {
		return "Enabled"
	}
	return "Disabled"
}
