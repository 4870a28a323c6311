// Command xrbridge-profilegen generates the interaction profile tables of
// pkg/profile from profiles.yaml.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	input := flag.String("input", "", "Path to profiles.yaml")
	output := flag.String("output", "", "Output path for the generated Go file")
	pkg := flag.String("package", "profile", "Package name of the generated file")
	flag.Parse()

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: xrbridge-profilegen -input <profiles.yaml> -output <file.go> [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*input, *output, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output, pkg string) error {
	catalog, err := LoadCatalog(input)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	code, err := Generate(catalog, pkg, filepath.Base(input))
	if err != nil {
		return fmt.Errorf("generating tables: %w", err)
	}

	if err := writeFormatted(output, code); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(output), err)
	}
	fmt.Printf("  generated %s\n", output)
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
