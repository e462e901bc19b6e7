package levels

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var defaultLevelsYAML []byte

// Table is the complete, read-only content set for a session.
type Table struct {
	Levels   []Level           `yaml:"levels"`
	Scripts  map[string]Script `yaml:"scripts,omitempty"`
	Cutscene []Line            `yaml:"cutscene,omitempty"`

	// Source is the file the table was read from, empty for the built-in table.
	Source string `yaml:"-"`
}

// Len returns the number of levels.
func (t *Table) Len() int {
	return len(t.Levels)
}

// Level returns the level at index i. The index must be in range.
func (t *Table) Level(i int) Level {
	return t.Levels[i]
}

// Script looks up a dialogue script by name.
func (t *Table) Script(name string) (Script, bool) {
	s, ok := t.Scripts[name]
	return s, ok
}

// ScriptNames returns all script names in sorted order.
func (t *Table) ScriptNames() []string {
	names := make([]string, 0, len(t.Scripts))
	for name := range t.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse decodes and validates a YAML level table.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadFile reads a level table from disk.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	t.Source = path
	return t, nil
}

// Load returns the table at path, or the built-in table when path is empty.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// Default returns the built-in level table.
func Default() *Table {
	t, err := Parse(defaultLevelsYAML)
	if err != nil {
		panic(fmt.Sprintf("levels: built-in table is invalid: %v", err))
	}
	return t
}

// DefaultYAML returns the embedded level table source.
func DefaultYAML() []byte {
	return defaultLevelsYAML
}

// ValidationError contains details about one validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the table for content the simulation cannot play.
// All failures are reported together.
func (t *Table) Validate() error {
	var errs []error

	if len(t.Levels) == 0 {
		errs = append(errs, invalid("NO_LEVELS", "table has no levels"))
	}

	for i, l := range t.Levels {
		errs = append(errs, t.validateLevel(i, l)...)
	}

	for _, name := range t.ScriptNames() {
		s := t.Scripts[name]
		if len(s.Lines) == 0 {
			errs = append(errs, invalid("EMPTY_SCRIPT", "script %q has no lines", name))
		}
		for _, c := range s.Choices {
			if _, ok := t.Scripts[c.Response]; !ok {
				errs = append(errs, invalid("UNKNOWN_SCRIPT", "script %q choice %q responds with unknown script %q", name, c.Text, c.Response))
			}
		}
	}

	for i, line := range t.Cutscene {
		if line.Text == "" {
			errs = append(errs, invalid("EMPTY_LINE", "cutscene message %d is empty", i))
		}
	}

	return errors.Join(errs...)
}

func (t *Table) validateLevel(i int, l Level) []error {
	var errs []error
	where := fmt.Sprintf("level %d (%s)", i, l.Name)

	checkPlatforms := func(label string, ps []Platform) {
		for j, p := range ps {
			if p.W <= 0 || p.H <= 0 {
				errs = append(errs, invalid("BAD_PLATFORM", "%s %s platform %d has non-positive size %vx%v", where, label, j, p.W, p.H))
			}
		}
	}
	checkPlatforms("", l.Platforms)

	if l.HasStages {
		if l.Stage1 == nil || l.Stage2 == nil {
			errs = append(errs, invalid("MISSING_STAGE", "%s has stages but lacks stage1 or stage2", where))
		} else {
			checkPlatforms("stage1", l.Stage1.Platforms)
			checkPlatforms("stage2", l.Stage2.Platforms)
			if l.Stage2.Goal == nil {
				errs = append(errs, invalid("NO_GOAL", "%s stage2 has no goal", where))
			}
		}
	} else if l.Goal == nil && l.Chase == nil {
		errs = append(errs, invalid("NO_GOAL", "%s has no goal and no chase", where))
	}

	if l.HasKey && l.Key == nil {
		errs = append(errs, invalid("MISSING_KEY", "%s has_key without key position", where))
	}
	if l.HasDoor && l.Door == nil {
		errs = append(errs, invalid("MISSING_DOOR", "%s has_door without door position", where))
	}

	scriptRefs := []string{l.Call}
	for _, b := range l.Beats {
		scriptRefs = append(scriptRefs, b.Script)
		if b.W <= 0 || b.H <= 0 || b.Script == "" {
			errs = append(errs, invalid("BAD_TRIGGER", "%s beat %q needs a positive size and a script", where, b.Script))
		}
	}
	for _, p := range l.Peeks {
		scriptRefs = append(scriptRefs, p.Script)
		if p.W <= 0 || p.H <= 0 || p.Script == "" {
			errs = append(errs, invalid("BAD_TRIGGER", "%s peek %q needs a positive size and a script", where, p.Script))
		}
	}
	for _, name := range scriptRefs {
		if name == "" {
			continue
		}
		if _, ok := t.Scripts[name]; !ok {
			errs = append(errs, invalid("UNKNOWN_SCRIPT", "%s references unknown script %q", where, name))
		}
	}

	if l.Chase != nil && l.Chase.Speed < 0 {
		errs = append(errs, invalid("BAD_CHASE", "%s chase speed is negative", where))
	}

	return errs
}
