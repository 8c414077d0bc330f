package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/sdv-model/vss-go/pkg/schema"
)

func main() {
	schemaPath := flag.String("schema", "", "Path to the schema YAML (default: embedded vehicle schema)")
	output := flag.String("output", "", "Output path for the generated Go file")
	pkg := flag.String("package", "vehicle", "Package name of the generated file")
	flag.Parse()

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Usage: vss-gen -output <file> [-schema <path>] [-package <name>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*schemaPath, *output, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(schemaPath, output, pkg string) error {
	def, err := loadSchema(schemaPath)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	code, err := Generate(def, pkg)
	if err != nil {
		return fmt.Errorf("generating %s: %w", filepath.Base(output), err)
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := writeFormatted(output, code); err != nil {
		return err
	}
	fmt.Printf("  generated %s\n", output)
	return nil
}

func loadSchema(path string) (*schema.Definition, error) {
	if path == "" {
		return schema.Default()
	}
	return schema.Load(path)
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
