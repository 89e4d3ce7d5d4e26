package evaluation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/atamiles/vlures-bench/pkg/models"
)

var taskPattern = regexp.MustCompile(`task(\d+)`)

// ParseFilename recovers the run scope from an inference output filename of
// the form <model>_<language>_task<n>_<setting>.json. Model names must not
// contain underscores; everything after the task segment is the setting.
func ParseFilename(path string) (models.RunScope, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	parts := strings.Split(name, "_")
	if len(parts) < 4 {
		return models.RunScope{}, fmt.Errorf("unrecognized output filename %q", name)
	}

	m := taskPattern.FindStringSubmatch(name)
	if m == nil {
		return models.RunScope{}, fmt.Errorf("no task number in output filename %q", name)
	}
	task, err := strconv.Atoi(m[1])
	if err != nil {
		return models.RunScope{}, fmt.Errorf("invalid task number in %q: %w", name, err)
	}

	return models.RunScope{
		Model:    parts[0],
		Language: parts[1],
		Task:     task,
		Setting:  models.PromptSetting(strings.Join(parts[3:], "_")),
	}, nil
}
