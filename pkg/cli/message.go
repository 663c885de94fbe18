package cli

import (
	"fmt"
	"io"
	"os"
)

// Printer writes coloured, line-oriented progress messages for the console
// commands.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) Printer {
	if out == nil {
		out = os.Stdout
	}

	return Printer{out: out}
}

func (p Printer) line(colour, message string) {
	fmt.Fprintln(p.out, colour+message+Reset)
}

func (p Printer) Success(message string) { p.line(GreenColour, message) }
func (p Printer) Warning(message string) { p.line(YellowColour, message) }
func (p Printer) Error(message string)   { p.line(RedColour, message) }
func (p Printer) Info(message string)    { p.line(CyanColour, message) }
func (p Printer) Muted(message string)   { p.line(GrayColour, message) }

// Step prints "[n/total] message" in blue.
func (p Printer) Step(n, total int, message string) {
	p.line(BlueColour, fmt.Sprintf("[%d/%d] %s", n, total, message))
}

func Successln(message string) { NewPrinter(os.Stdout).Success(message) }
func Warningln(message string) { NewPrinter(os.Stdout).Warning(message) }
func Errorln(message string)   { NewPrinter(os.Stdout).Error(message) }
