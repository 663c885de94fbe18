package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinterColours(t *testing.T) {
	tests := []struct {
		name   string
		print  func(p Printer)
		colour string
	}{
		{"success", func(p Printer) { p.Success("ok") }, GreenColour},
		{"warning", func(p Printer) { p.Warning("careful") }, YellowColour},
		{"error", func(p Printer) { p.Error("boom") }, RedColour},
		{"info", func(p Printer) { p.Info("fyi") }, CyanColour},
		{"muted", func(p Printer) { p.Muted("quiet") }, GrayColour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(NewPrinter(&buf))

			out := buf.String()
			if !strings.HasPrefix(out, tt.colour) || !strings.HasSuffix(out, Reset+"\n") {
				t.Fatalf("unexpected output %q", out)
			}
		})
	}
}

func TestPrinterStep(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).Step(2, 5, "seeding tags")

	if !strings.Contains(buf.String(), "[2/5] seeding tags") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
