package app_test

import (
	"errors"
	"testing"

	"github.com/pika-lang/pika/internal/app"
)

func TestProcessUserInput_Defaults(t *testing.T) {
	config, err := app.ProcessUserInput(nil)
	if err != nil {
		t.Fatalf("ProcessUserInput: %v", err)
	}

	if config.ScriptPath != "" {
		t.Errorf("ScriptPath = %q, want empty (interactive session)", config.ScriptPath)
	}
	if config.OutputPath != "" {
		t.Errorf("OutputPath = %q, want empty (stdout)", config.OutputPath)
	}
	if config.HistoryPath != "" {
		t.Errorf("HistoryPath = %q, want empty (disabled)", config.HistoryPath)
	}
	if config.NoColor {
		t.Error("NoColor = true, want false")
	}
}

func TestProcessUserInput_ScriptPath(t *testing.T) {
	config, err := app.ProcessUserInput([]string{"docs/example.pika"})
	if err != nil {
		t.Fatalf("ProcessUserInput: %v", err)
	}

	if config.ScriptPath != "docs/example.pika" {
		t.Errorf("ScriptPath = %q, want %q", config.ScriptPath, "docs/example.pika")
	}
}

func TestProcessUserInput_Flags(t *testing.T) {
	args := []string{"-o", "out.py", "-history", "session", "-no-color", "script.pika"}

	config, err := app.ProcessUserInput(args)
	if err != nil {
		t.Fatalf("ProcessUserInput: %v", err)
	}

	if config.OutputPath != "out.py" {
		t.Errorf("OutputPath = %q, want %q", config.OutputPath, "out.py")
	}
	if config.HistoryPath != "session" {
		t.Errorf("HistoryPath = %q, want %q", config.HistoryPath, "session")
	}
	if !config.NoColor {
		t.Error("NoColor = false, want true")
	}
	if config.ScriptPath != "script.pika" {
		t.Errorf("ScriptPath = %q, want %q", config.ScriptPath, "script.pika")
	}
}

func TestProcessUserInput_SentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{
			name: "version flag",
			args: []string{"-v"},
			want: app.ErrVersionRequested,
		},
		{
			name: "update check flag",
			args: []string{"-u"},
			want: app.ErrUpdateCheckRequested,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := app.ProcessUserInput(tt.args)
			if !errors.Is(err, tt.want) {
				t.Errorf("ProcessUserInput(%v) error = %v, want %v", tt.args, err, tt.want)
			}
		})
	}
}

func TestProcessUserInput_TooManyArguments(t *testing.T) {
	_, err := app.ProcessUserInput([]string{"one.pika", "two.pika"})
	if err == nil {
		t.Fatal("ProcessUserInput accepted two script paths")
	}
}
