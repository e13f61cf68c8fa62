package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/pflag"

	"github.com/sokinpui/askcode/internal/collector"
	"github.com/sokinpui/askcode/internal/payload"
	"github.com/sokinpui/askcode/internal/ui"
)

func main() {
	copyToClipboard := pflag.Bool("copy", false, "Copy the payload to the clipboard instead of printing it.")

	pflag.Usage = func() {
		fmt.Println("Usage: catcode [flags] <directory> <extension>...")
		fmt.Println("\nRecursively concatenate code files with specified extensions.")
		fmt.Println("\nExample: catcode . .py .js .html")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	args := pflag.Args()
	if len(args) < 2 {
		pflag.Usage()
		os.Exit(1)
	}
	directory, extensions := args[0], args[1:]

	files, err := collector.Collect(directory, extensions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	output, err := payload.Build(directory, files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *copyToClipboard {
		if err := clipboard.WriteAll(output); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to copy to clipboard: %v\n", err)
			os.Exit(1)
		}
		ui.Success("Copied payload for %d file(s) to the clipboard.", len(files))
		return
	}

	fmt.Println(output)
}
