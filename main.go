package main

import (
	"fmt"
	"os"
	"strings"

	"rosalind_go/benchmark"
	"rosalind_go/config"
	"rosalind_go/tools/gc_content"
	"rosalind_go/tools/sanity_check"
	"rosalind_go/tools/seq_generator"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Rosalind - Custom Help Menu
Usage:
  rosalind <tool> [options]

Tools:
  gc_content		Report GC content per FASTA record and the GC-richest record
  seq_generator		Generate random GC-biased DNA records in FASTA form
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Logs computational resource usage and
			pertinent operating system information to stderr
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Rosalind - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tRosalind:\t\t%s\n", config.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tGC Content:\t\t%s\n", config.GC_Content)
	fmt.Printf("\tSequence Generator:\t%s\n", config.Seq_Generator)
	fmt.Printf("\tSanity Check:\t\t%s\n", config.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", config.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Help and version are only global when they come first
	switch os.Args[1] {
	case "-h", "-help":
		printCustomHelp()
	case "-v", "-version":
		printVersion()
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "gc_content":
			gc_content.Run(cleanedArgs)
		case "seq_generator":
			seq_generator.Run(cleanedArgs)
		case "check":
			if err := sanity_check.Run(os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		default:
			fmt.Fprintf(os.Stderr, "Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("rosalind %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
