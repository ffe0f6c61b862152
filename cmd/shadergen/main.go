// Command shadergen generates the C shader glue of the engine.
//
// Usage:
//
//	shadergen [options]
//
// Examples:
//
//	shadergen                            # Built-in table, write shaders.gen.{h,c} here
//	shadergen -dir src                   # Write into src/
//	shadergen -table shaders.json        # Use a table file
//	shadergen -txtar                     # Print both files as a txtar archive
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/shadergen"
	"github.com/gogpu/shadergen/table"
)

var (
	tablePath = flag.String("table", "", "shader table JSON file (default: built-in table)")
	dir       = flag.String("dir", ".", "output directory")
	header    = flag.String("header", "shaders.gen.h", "declarations file name")
	source    = flag.String("source", "shaders.gen.c", "definitions file name")
	archive   = flag.Bool("txtar", false, "print both files as a txtar archive to stdout instead of writing them")
	validate  = flag.Bool("validate", true, "validate IR")
	version   = flag.Bool("version", false, "print version")
)

const shadergenVersion = "0.1.0-dev"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Printf("shadergen version %s\n", shadergenVersion)
		return
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %v\n", flag.Args())
		usage()
		os.Exit(1)
	}

	// Read table
	tbl := table.Default()
	if *tablePath != "" {
		var err error
		tbl, err = table.Load(*tablePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading table: %v\n", err)
			os.Exit(1)
		}
	}

	// Generate C
	opts := shadergen.DefaultOptions()
	opts.C.HeaderName = *header
	opts.SourceName = *source
	opts.Validate = *validate
	artifacts, err := shadergen.Generate(tbl, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generation error: %v\n", err)
		os.Exit(1)
	}

	// Write output
	if *archive {
		_, err = os.Stdout.Write(artifacts.Archive())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := artifacts.WriteFiles(*dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %s and %s in %s (%d shaders, %d handles)\n",
		artifacts.HeaderName, artifacts.SourceName, *dir, artifacts.Records, artifacts.Handles)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: shadergen [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  shadergen                      Generate from the built-in table\n")
	fmt.Fprintf(os.Stderr, "  shadergen -table shaders.json  Generate from a table file\n")
	fmt.Fprintf(os.Stderr, "  shadergen -txtar               Print both files to stdout\n")
}
