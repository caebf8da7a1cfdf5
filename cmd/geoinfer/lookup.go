package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"newsgeo/internal/geo"
)

const suggestMinScore = 0.6

func runLookup(_ context.Context, args []string, _ io.Reader, stdout, stderr io.Writer) error {
	var common commonFlags

	fs := newFlagSet("lookup", stderr)
	common.register(fs)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: geoinfer lookup [flags] <name>")
		fs.PrintDefaults()
	}

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	cfg, err := setup(fs, &common, stderr, nil)
	if err != nil {
		return err
	}

	table := geo.DefaultAliases()

	var districts []geo.DistrictCandidate

	if len(cfg.Catalog.Paths) > 0 {
		cat, err := loadCatalog(cfg.Catalog.Paths)
		if err != nil {
			return err
		}

		table = cat.AliasTable(table)
		districts = cat.Candidates()
	}

	name := strings.Join(fs.Args(), " ")

	canon, ok := table.Canonical(name)
	if !ok {
		suggestions := geo.Suggest(name, table, districts, suggestMinScore).Top(3)
		for _, s := range suggestions {
			fmt.Fprintf(stdout, "did you mean %s (%s, %.2f)?\n", s.Name, s.Canonical, s.Score)
		}

		return fmt.Errorf("no alias entry for %q", name)
	}

	fmt.Fprintf(stdout, "canonical: %s\n", canon)
	fmt.Fprintf(stdout, "aliases:   %s\n", strings.Join(table.Aliases(canon), ", "))

	return nil
}
