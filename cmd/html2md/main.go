package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/htmlmd"
	"github.com/fwojciec/htmlmd/convert"
	"github.com/fwojciec/htmlmd/htmltomarkdown"
	htmlmdslog "github.com/fwojciec/htmlmd/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read when no file arguments are given. Set before calling Run().
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Paths       []string `arg:"" optional:"" type:"existingfile" help:"HTML files to convert to sibling .md files (reads stdin when omitted)"`
	Concurrency int      `short:"c" default:"0" help:"Concurrent conversion limit (0 = unbounded)"`
	Verbose     bool     `short:"v" help:"Log conversions to stderr"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("html2md"),
		kong.Description("Convert HTML to Markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Wire the conversion service
	var boundary htmlmd.Boundary = htmltomarkdown.NewConverter()
	if cli.Verbose {
		logger := stdslog.New(stdslog.NewTextHandler(stderr, nil))
		boundary = htmlmdslog.NewLoggingBoundary(boundary, logger)
	}

	svc, err := convert.NewService(boundary, convert.WithMaxConcurrent(cli.Concurrency))
	if err != nil {
		return err
	}

	if len(cli.Paths) == 0 {
		return m.convertStdin(svc, stdout)
	}
	return m.convertFiles(svc, cli.Paths, stdout)
}

// convertStdin converts HTML read from stdin and writes Markdown to stdout.
func (m *Main) convertStdin(svc htmlmd.Converter, stdout io.Writer) error {
	html, err := io.ReadAll(m.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	markdown, err := svc.ConvertSync(string(html))
	if err != nil {
		return err
	}

	_, err = io.WriteString(stdout, markdown)
	return err
}

// convertFiles converts each file concurrently through the asynchronous
// path, writing a sibling .md file next to each input.
func (m *Main) convertFiles(svc htmlmd.Converter, paths []string, stdout io.Writer) error {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		failed int
	)

	for _, path := range paths {
		html, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", path, err)
		}

		outPath := markdownPath(path)

		wg.Add(1)
		err = svc.Convert(string(html), func(err error, markdown string) {
			defer wg.Done()

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				failed++
				fmt.Fprintf(stdout, "%s: %s\n", path, htmlmd.ErrorMessage(err))
				return
			}
			if err := os.WriteFile(outPath, []byte(markdown), 0644); err != nil {
				failed++
				fmt.Fprintf(stdout, "%s: %v\n", path, err)
				return
			}
			fmt.Fprintf(stdout, "%s -> %s\n", path, outPath)
		})
		if err != nil {
			wg.Done()
			return err
		}
	}
	wg.Wait()

	if failed > 0 {
		return fmt.Errorf("%d of %d conversions failed", failed, len(paths))
	}
	return nil
}

// markdownPath returns the output path for an input file, replacing the
// extension with .md.
func markdownPath(path string) string {
	if ext := strings.LastIndexByte(path, '.'); ext > strings.LastIndexByte(path, '/') {
		return path[:ext] + ".md"
	}
	return path + ".md"
}
