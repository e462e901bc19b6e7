package levels

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultTable(t *testing.T) {
	tbl := Default()

	if tbl.Len() != 9 {
		t.Fatalf("Len() = %d, expected 9", tbl.Len())
	}
	if tbl.Level(0).Name != "Getting Started" {
		t.Errorf("level 0 = %q", tbl.Level(0).Name)
	}

	run := tbl.Level(6)
	if !run.TriggerCutscene || run.Chase == nil {
		t.Errorf("level 6 should trigger the cutscene and carry a chase: %+v", run)
	}

	lock := tbl.Level(8)
	if !lock.HasStage2() {
		t.Fatal("Lock & Key should have a stage 2")
	}
	if lock.StartGoal() != nil {
		t.Error("multi-stage level should start without a goal")
	}
	if got := lock.Stage2.Goal; got == nil || got.X != 720 || got.Y != 470 {
		t.Errorf("stage2 goal = %+v, expected (720,470)", got)
	}
	if len(lock.StartPlatforms()) != 7 {
		t.Errorf("stage1 platforms = %d, expected 7", len(lock.StartPlatforms()))
	}

	if len(tbl.Cutscene) != 4 {
		t.Errorf("cutscene messages = %d, expected 4", len(tbl.Cutscene))
	}
	intro, ok := tbl.Script("intro")
	if !ok || len(intro.Choices) != 2 {
		t.Errorf("intro script = %+v, ok=%v", intro, ok)
	}
}

func TestLineTicks(t *testing.T) {
	if got := (Line{Text: "abc", Duration: 90}).Ticks(); got != 90 {
		t.Errorf("explicit Ticks() = %d, expected 90", got)
	}
	if got := (Line{Text: "That's a bug."}).Ticks(); got != 126 {
		t.Errorf("derived Ticks() = %d, expected 126", got)
	}
}

func TestSpeakerOf(t *testing.T) {
	s := Script{
		Speaker: "Narrator",
		Lines:   []Line{{Text: "a"}, {Speaker: "Mia", Text: "b"}},
	}
	if s.SpeakerOf(0) != "Narrator" || s.SpeakerOf(1) != "Mia" {
		t.Errorf("SpeakerOf = %q, %q", s.SpeakerOf(0), s.SpeakerOf(1))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
	}{
		{
			name: "empty table",
			yaml: "levels: []\n",
			code: "NO_LEVELS",
		},
		{
			name: "no goal",
			yaml: "levels:\n  - name: a\n    player_start: {x: 0, y: 0}\n",
			code: "NO_GOAL",
		},
		{
			name: "bad platform",
			yaml: "levels:\n  - name: a\n    goal: {x: 1, y: 1}\n    platforms:\n      - {x: 0, y: 0, w: 0, h: 5}\n",
			code: "BAD_PLATFORM",
		},
		{
			name: "stages without stage2",
			yaml: "levels:\n  - name: a\n    has_stages: true\n    stage1:\n      platforms: []\n",
			code: "MISSING_STAGE",
		},
		{
			name: "unknown call script",
			yaml: "levels:\n  - name: a\n    goal: {x: 1, y: 1}\n    call: nope\n",
			code: "UNKNOWN_SCRIPT",
		},
		{
			name: "key flag without position",
			yaml: "levels:\n  - name: a\n    goal: {x: 1, y: 1}\n    has_key: true\n",
			code: "MISSING_KEY",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !hasCode(err, tc.code) {
				t.Errorf("error %v does not carry code %s", err, tc.code)
			}
		})
	}
}

func hasCode(err error, code string) bool {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			if hasCode(e, code) {
				return true
			}
		}
		return false
	}
	var ve ValidationError
	return errors.As(err, &ve) && ve.Code == code
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yaml")
	data := "levels:\n  - name: Solo\n    player_start: {x: 10, y: 10}\n    goal: {x: 100, y: 10}\n    platforms:\n      - {x: 0, y: 100, w: 200, h: 20}\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	tbl, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if tbl.Len() != 1 || tbl.Source != path {
		t.Errorf("Load() = %d levels from %q", tbl.Len(), tbl.Source)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	builtin, err := Load("")
	if err != nil || builtin.Source != "" {
		t.Errorf("Load(\"\") = %v, %v", builtin.Source, err)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("levels: [\n"))
	if err == nil || !strings.Contains(err.Error(), "yaml unmarshal") {
		t.Errorf("Parse() error = %v", err)
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	// Writes to other files in the directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, DefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "levels.yaml" {
			t.Errorf("event for %q, expected levels.yaml", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event within 2s")
	}
}
