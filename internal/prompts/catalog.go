package prompts

import (
	"bytes"
	"fmt"
	"sort"
	"text/template"

	"github.com/atamiles/vlures-bench/pkg/models"
)

// NumTasks is the number of benchmark tasks per language. Tasks 1-5 are
// image-only, tasks 6-8 pair the image with its associated text.
const NumTasks = 8

// FirstImageTextTask is the lowest task number that requires the paired text.
const FirstImageTextTask = 6

// IsImageTextTask reports whether the task consumes the paired text file.
func IsImageTextTask(task int) bool {
	return task >= FirstImageTextTask
}

// LanguageConfig holds everything needed to prompt one language: the short
// directory code, the system prompt, the two user-prompt templates and the
// per-task descriptions.
type LanguageConfig struct {
	Code              string
	SystemPrompt      string
	ImageOnlyTemplate string
	ImageTextTemplate string
	Tasks             map[int]string
}

// Catalog is the full prompt table for one prompting setting.
type Catalog struct {
	Setting   models.PromptSetting
	Languages map[string]LanguageConfig
}

// ForSetting returns the catalog for a prompting setting.
func ForSetting(setting models.PromptSetting) (*Catalog, error) {
	switch setting {
	case models.SettingZeroShot:
		return &zeroShotCatalog, nil
	case models.SettingZeroShotRationales:
		return &rationalesCatalog, nil
	}
	return nil, fmt.Errorf("unknown prompting setting %q", setting)
}

// Language returns the config for a language name.
func (c *Catalog) Language(name string) (LanguageConfig, error) {
	lc, ok := c.Languages[name]
	if !ok {
		return LanguageConfig{}, fmt.Errorf("language %q not configured for setting %s", name, c.Setting)
	}
	return lc, nil
}

// LanguageNames returns the configured language names in sorted order.
func (c *Catalog) LanguageNames() []string {
	names := make([]string, 0, len(c.Languages))
	for name := range c.Languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the catalog for completeness: every declared language must
// carry a directory code, a system prompt, both templates and all tasks.
// Catalogs are validated once at startup so a missing entry fails the run
// before any dispatch, not at first lookup.
func (c *Catalog) Validate() error {
	if len(c.Languages) == 0 {
		return fmt.Errorf("catalog %s declares no languages", c.Setting)
	}
	for name, lc := range c.Languages {
		if lc.Code == "" {
			return fmt.Errorf("%s/%s: missing language code", c.Setting, name)
		}
		if lc.SystemPrompt == "" {
			return fmt.Errorf("%s/%s: missing system prompt", c.Setting, name)
		}
		if lc.ImageOnlyTemplate == "" {
			return fmt.Errorf("%s/%s: missing image-only template", c.Setting, name)
		}
		if lc.ImageTextTemplate == "" {
			return fmt.Errorf("%s/%s: missing image-text template", c.Setting, name)
		}
		for task := 1; task <= NumTasks; task++ {
			if lc.Tasks[task] == "" {
				return fmt.Errorf("%s/%s: missing task %d description", c.Setting, name, task)
			}
		}
	}
	return nil
}

// ValidateAll validates every built-in catalog.
func ValidateAll() error {
	for _, c := range []*Catalog{&zeroShotCatalog, &rationalesCatalog} {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ImageOnlyPrompt renders the user prompt for an image-only task.
func (c *Catalog) ImageOnlyPrompt(language string, task int) (string, error) {
	lc, err := c.Language(language)
	if err != nil {
		return "", err
	}
	desc, ok := lc.Tasks[task]
	if !ok {
		return "", fmt.Errorf("task %d not configured for language %q", task, language)
	}
	return render(lc.ImageOnlyTemplate, map[string]any{
		"TaskDescription": desc,
	})
}

// ImageTextPrompt renders the user prompt for an image-text task.
func (c *Catalog) ImageTextPrompt(language string, task int, textContent string) (string, error) {
	lc, err := c.Language(language)
	if err != nil {
		return "", err
	}
	desc, ok := lc.Tasks[task]
	if !ok {
		return "", fmt.Errorf("task %d not configured for language %q", task, language)
	}
	return render(lc.ImageTextTemplate, map[string]any{
		"TaskDescription": desc,
		"TextContent":     textContent,
	})
}

// render executes a template string with missing keys treated as errors, so
// a template referencing a field the caller did not supply fails loudly.
func render(tmpl string, data map[string]any) (string, error) {
	t, err := template.New("prompt").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
