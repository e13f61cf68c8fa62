package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
)

func Header(format string, a ...interface{}) {
	HeaderColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Info(format string, a ...interface{}) {
	InfoColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(os.Stderr, format+"\n", a...)
}

// PrintSummary is the headless rendering of a run: the raw reply goes to
// stdout, everything else to stderr.
func PrintSummary(reply string, diffFiles []string, outputDir, message string) {
	if reply != "" {
		Header("LLM Response:")
		fmt.Println(reply)
	}
	if message != "" {
		Warning("%s", message)
	}
	if len(diffFiles) > 0 {
		Success("Diff files saved to %s.", outputDir)
		for _, f := range diffFiles {
			fmt.Fprintf(os.Stderr, "  - %s\n", f)
		}
	}
}
