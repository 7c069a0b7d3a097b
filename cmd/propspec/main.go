package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/propspec/propspec/pkg/analyzer"
	"github.com/propspec/propspec/pkg/mcp"
	"github.com/propspec/propspec/pkg/parser"
	"github.com/propspec/propspec/pkg/registry"
	"github.com/propspec/propspec/pkg/scanner"
	"github.com/propspec/propspec/pkg/util"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "analyze":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: propspec analyze <file>")
			os.Exit(1)
		}
		if err := runAnalyze(os.Args[2], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "analyze failed: %v\n", err)
			os.Exit(1)
		}

	case "scan":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: propspec scan <dir>")
			os.Exit(1)
		}
		if err := runScan(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "scan failed: %v\n", err)
			os.Exit(1)
		}

	case "serve":
		dir := ""
		if len(os.Args) > 2 {
			dir = os.Args[2]
		}
		if err := runServe(dir); err != nil {
			fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}

	case "version":
		fmt.Printf("propspec %s\n", version)

	case "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runAnalyze(path string, out io.Writer) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	logger := util.NewLogger(util.DefaultLoggerConfig())
	pm := parser.NewManager(logger)
	defer pm.Close()

	a := analyzer.New(pm, logger)
	sch := a.Analyze(analyzer.Input{
		Name:       registry.ComponentNameFromPath(path),
		SourceText: string(source),
		Path:       path,
	})

	data, err := sch.MarshalIndent()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func runScan(dir string) error {
	logger := util.NewLogger(util.DefaultLoggerConfig())
	pm := parser.NewManager(logger)
	defer pm.Close()

	reg, err := registry.New(analyzer.New(pm, logger), registry.DefaultCacheSize, logger)
	if err != nil {
		return err
	}

	stats, err := scanner.Scan(context.Background(), dir, scanner.DefaultScanConfig(), reg, logger)
	if err != nil {
		return err
	}

	for _, name := range reg.List() {
		out, err := reg.Export(name)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	}
	fmt.Fprintf(os.Stderr, "scanned %d files, registered %d components (%d fallbacks)\n",
		stats.FilesDiscovered, stats.Registered, stats.Fallbacks)
	return nil
}

func runServe(dir string) error {
	logger := util.NewLogger(util.DefaultLoggerConfig())
	pm := parser.NewManager(logger)
	defer pm.Close()

	reg, err := registry.New(analyzer.New(pm, logger), registry.DefaultCacheSize, logger)
	if err != nil {
		return err
	}

	if dir != "" {
		if _, err := scanner.Scan(context.Background(), dir, scanner.DefaultScanConfig(), reg, logger); err != nil {
			return err
		}

		watcher, err := registry.NewWatcher(reg, registry.DefaultWatchOptions(), logger)
		if err != nil {
			return err
		}
		if err := watcher.Start(dir); err != nil {
			return err
		}
		defer watcher.Stop()
	}

	return mcp.NewServer(reg, logger).ServeStdio()
}

func printUsage() {
	fmt.Println("Usage: propspec <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  analyze <file>   Analyze one component source file and print its schema")
	fmt.Println("  scan <dir>       Scan a directory and print all extracted schemas")
	fmt.Println("  serve [dir]      Start the MCP server (optionally pre-scan and watch dir)")
	fmt.Println("  version          Print version")
	fmt.Println("  help             Show this help message")
}
