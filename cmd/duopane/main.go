package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/duopane/internal/app"
)

func printHelp() {
	fmt.Print(`duopane - Two-pane terminal file browser

USAGE:
    duopane [OPTIONS]

OPTIONS:
    -h, --help    Show this help message and exit

KEYS:
    Up/Down       Move selection / scroll the file viewer
    Enter         Enter directory, open file, retry a failed load
    q, Escape     Close the viewer / quit
`)
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-h", "--help":
			printHelp()
			os.Exit(0)
		default:
			fmt.Fprintf(os.Stderr, "unknown option: %s\n", os.Args[1])
			os.Exit(2)
		}
	}

	app, err := apppkg.NewApplication()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
}
