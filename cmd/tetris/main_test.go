package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Cleanup(func() {
		flagConfig, flagDifficulty = "", ""
		flagDefaults, flagNoColor = false, false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"tetris", "tetris_marathon", "Tetris (Marathon)"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommandAppliesPreset(t *testing.T) {
	out, err := execute(t, "config", "--difficulty", "hard")
	if err != nil {
		t.Fatal(err)
	}

	var cfg config.TetrisConfig
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("config output is not YAML: %v\n%s", err, out)
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("initial_level = %v, expected 0.7", cfg.Difficulty.InitialLevel)
	}
	if len(cfg.Gravity.EveryTicks) != config.SpeedLevels {
		t.Errorf("every_ticks has %d entries, expected %d", len(cfg.Gravity.EveryTicks), config.SpeedLevels)
	}
}

func TestConfigCommandDefaults(t *testing.T) {
	out, err := execute(t, "config", "--defaults")
	if err != nil {
		t.Fatal(err)
	}
	if out != string(config.GetDefaultYAML("tetris")) {
		t.Errorf("--defaults should print the embedded YAML, got:\n%s", out)
	}
}

func TestConfigCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown preset", []string{"config", "--difficulty", "insane"}},
		{"missing file", []string{"config", "--config", "/nonexistent/tetris.yaml"}},
		{"unknown mode defaults", []string{"config", "--defaults", "pong"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := execute(t, tc.args...); err == nil {
				t.Errorf("%v should fail", tc.args)
			}
		})
	}
}

func TestShapesCommand(t *testing.T) {
	out, err := execute(t, "shapes", "--no-color")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[]", "cyan", "orange"} {
		if !strings.Contains(out, want) {
			t.Errorf("shapes output missing %q", want)
		}
	}
}

func TestPlayRejectsUnknownInput(t *testing.T) {
	if _, err := execute(t, "play", "pong"); err == nil {
		t.Error("unknown mode should fail")
	}
	if _, err := execute(t, "play", "--difficulty", "insane"); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = "info" })
	if _, _, err := newLogger(); err == nil {
		t.Error("bad log level should fail")
	}
}

func TestRootAcceptsGameFlags(t *testing.T) {
	_, err := execute(t, "--difficulty", "insane")
	if err == nil || !strings.Contains(err.Error(), "unknown difficulty") {
		t.Errorf("root --difficulty insane error = %v, expected unknown difficulty", err)
	}
	for _, name := range []string{"config", "difficulty"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("--%s should be a persistent root flag", name)
		}
	}
}

func TestConfigFlagBeforeSubcommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	custom := "gravity:\n  every_ticks: [9, 8, 7, 6, 5]\ndifficulty:\n  progression:\n    type: none\n"
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", path, "config")
	if err != nil {
		t.Fatal(err)
	}
	var cfg config.TetrisConfig
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("config output is not YAML: %v", err)
	}
	if cfg.Gravity.IntervalFor(1) != 9 {
		t.Errorf("IntervalFor(1) = %d, expected 9 from the custom file", cfg.Gravity.IntervalFor(1))
	}
}

func TestRuntimeConfigDefaults(t *testing.T) {
	flagFPS, flagSeed = 0, 7
	t.Cleanup(func() { flagFPS, flagSeed = 60, 0 })

	cfg := runtimeConfig()
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, expected 60", cfg.TickRate)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, expected 7", cfg.Seed)
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		t.Errorf("screen size = %dx%d, expected positive", cfg.ScreenW, cfg.ScreenH)
	}
}
