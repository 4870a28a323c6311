// Command xrbridge-log is a tool for viewing and analyzing xrbridge trace
// files.
//
// Trace files are written by the runtime when a file logger is configured,
// for example by running xrbridge-sim with the -trace flag.
//
// Usage:
//
//	xrbridge-log <command> [flags] <file.xlog>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSON or CSV format
//	filter   Filter trace file and write to new file
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	xrbridge-log view session.xlog
//
//	# View only failed calls
//	xrbridge-log view --failed session.xlog
//
//	# View only state changes
//	xrbridge-log view --category state session.xlog
//
//	# Export to JSONL
//	xrbridge-log export --format jsonl session.xlog
//
//	# Keep only xrSyncActions calls
//	xrbridge-log filter --function syncactions -o sync.xlog session.xlog
//
//	# Show statistics
//	xrbridge-log stats session.xlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xrbridge/xrbridge-go/cmd/xrbridge-log/commands"
)

const usage = `xrbridge-log - xrbridge Trace Analyzer

Usage:
  xrbridge-log <command> [flags] <file.xlog>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSON or CSV format
  filter   Filter trace file and write to new file
  stats    Show statistics about the trace file

Use "xrbridge-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `xrbridge-log view - View trace file in human-readable format

Usage:
  xrbridge-log view [flags] <file.xlog>

Flags:
`)
		fs.PrintDefaults()
	}

	category := fs.String("category", "", "Filter by category (call, snapshot, state, binding, error)")
	function := fs.String("function", "", "Filter calls by function name substring")
	failed := fs.Bool("failed", false, "Show only failed calls and errors")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	filter := commands.ViewFilter{Function: *function, FailedOnly: *failed}
	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filter.Category = &c
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `xrbridge-log export - Export trace file to JSON or CSV format

Usage:
  xrbridge-log export [flags] <file.xlog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunExport(fs.Arg(0), *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `xrbridge-log filter - Filter trace file and write to new file

Usage:
  xrbridge-log filter [flags] <file.xlog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	sessionID := fs.String("session-id", "", "Filter by session ID")
	function := fs.String("function", "", "Filter calls by function name substring")
	failed := fs.Bool("failed", false, "Keep only failed calls and errors")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")
	category := fs.String("category", "", "Filter by category (call, snapshot, state, binding, error)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:     *output,
		SessionID:  *sessionID,
		Function:   *function,
		FailedOnly: *failed,
		TimeStart:  *timeStart,
		TimeEnd:    *timeEnd,
		Category:   *category,
	}

	count, err := commands.RunFilter(fs.Arg(0), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Filtered %d events to %s\n", count, opts.Output)
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `xrbridge-log stats - Show statistics about the trace file

Usage:
  xrbridge-log stats <file.xlog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
