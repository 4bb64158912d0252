package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/structlens/structlens"
	"github.com/structlens/structlens/errors"
	"github.com/structlens/structlens/layout"
	"github.com/structlens/structlens/report"
	"github.com/structlens/structlens/source"
)

func main() {
	var (
		archName    = flag.String("arch", "amd64", "Target architecture (amd64, arm64, 386)")
		format      = flag.String("format", "text", "Output format (text, md, json, csv)")
		typeName    = flag.String("type", "", "Restrict the report to one struct")
		optimize    = flag.Bool("optimize", false, "Include proposed field reordering")
		threshold   = flag.Int64("threshold", 8, "Highlight fields wasting at least N padding bytes (text format)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: structlens [flags] <file.go|dir>...")
		fmt.Fprintln(os.Stderr, "       structlens -i <file.go|dir>  (interactive mode)")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			layout.SetLogger(logger)
			defer logger.Sync()
		}
	}

	arch, ok := layout.ParseArch(*archName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %v\n", errors.InvalidInput(errors.PhaseRun,
			fmt.Sprintf("unknown architecture %q", *archName)))
		os.Exit(1)
	}

	defs, err := collect(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(defs, arch); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(defs, arch, *format, *typeName, *optimize, *threshold); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func collect(paths []string) ([]layout.StructDefinition, error) {
	var defs []layout.StructDefinition
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.IOFailure(errors.PhaseScan, path, err)
		}
		var batch []layout.StructDefinition
		if info.IsDir() {
			batch, err = source.Dir(path)
		} else {
			batch, err = source.File(path)
		}
		if err != nil {
			return nil, err
		}
		defs = append(defs, batch...)
	}
	return defs, nil
}

func run(defs []layout.StructDefinition, arch layout.Arch, format, typeName string, optimize bool, threshold int64) error {
	r := structlens.NewRun(arch)
	r.RegisterAll(defs)

	var names []string
	if typeName != "" {
		if _, ok := r.Registry().Get(typeName); !ok {
			return errors.NotFound(errors.PhaseRun, "struct "+typeName)
		}
		names = []string{typeName}
	} else {
		names = r.Registry().Names()
	}

	entries := make([]report.Entry, 0, len(names))
	for _, name := range names {
		lay, ok := r.Layout(name)
		if !ok {
			continue
		}
		e := report.Entry{Layout: lay}
		if optimize {
			if res, ok := r.Optimize(name); ok {
				e.Opt = &res
			}
		}
		entries = append(entries, e)
	}

	switch strings.ToLower(format) {
	case "text":
		styled := term.IsTerminal(int(os.Stdout.Fd()))
		fmt.Print(report.Text(entries, report.Options{
			Arch:             arch,
			PaddingThreshold: threshold,
			Styled:           styled,
		}))
	case "md", "markdown":
		fmt.Print(report.Markdown(entries, arch))
	case "json":
		data, err := report.JSON(entries, arch)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "csv":
		data, err := report.CSV(entries)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	default:
		return errors.Unsupported(errors.PhaseRun, fmt.Sprintf("format %q", format))
	}
	return nil
}
