package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"newsgeo/internal/diagnostic"
)

var errInvalidCatalog = errors.New("catalog has errors")

func runCheck(_ context.Context, args []string, _ io.Reader, stdout, stderr io.Writer) error {
	var common commonFlags

	fs := newFlagSet("check", stderr)
	common.register(fs)

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cfg, err := setup(fs, &common, stderr, nil)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg.Catalog.Paths)
	if err != nil {
		return err
	}

	diags := cat.Validate()
	printDiagnostics(stdout, &diags)

	fmt.Fprintf(stdout, "%d districts in %d files, %d regions: %d errors, %d warnings\n",
		cat.Len(), len(cat.Files), len(cat.Regions()), len(diags.Errors), len(diags.Warnings))

	if diags.HasErrors() {
		return errInvalidCatalog
	}

	return nil
}

func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%-7s %s\n", d.Severity, d)
	}
}
