package llogs

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/blogbuster/metal/env"
)

func TestFilesLogs(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	dir := t.TempDir()
	e := &env.Environment{
		App:  env.AppEnvironment{Name: "blogbuster", Type: "production"},
		Logs: env.LogsEnvironment{Level: "warn", Dir: dir + "/log-%s.txt", DateFormat: "2006"},
	}

	d, err := MakeFilesLogs(e)
	if err != nil {
		t.Fatalf("make logs: %v", err)
	}

	fl := d.(*FilesLogs)
	if !strings.HasPrefix(fl.path, dir) {
		t.Fatalf("path not in dir")
	}

	slog.Info("dropped")
	slog.Warn("kept")

	if err := d.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	raw, err := os.ReadFile(fl.path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	out := string(raw)
	if strings.Contains(out, "dropped") || !strings.Contains(out, `"msg":"kept"`) {
		t.Fatalf("unexpected log output %q", out)
	}
}

func TestDefaultPath(t *testing.T) {
	e := &env.Environment{Logs: env.LogsEnvironment{Dir: "foo-%s", DateFormat: "2006"}}
	fl := FilesLogs{env: e}

	if p := fl.DefaultPath(); !strings.HasPrefix(p, "foo-") {
		t.Fatalf("path prefix")
	}
}
