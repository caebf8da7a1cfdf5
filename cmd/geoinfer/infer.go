package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"newsgeo/internal/batch"
	"newsgeo/internal/config"
	"newsgeo/internal/geo"
	"newsgeo/internal/logging"
	"newsgeo/internal/metrics"
)

func runInfer(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var (
		common   commonFlags
		inPath   string
		outPath  string
		workers  int
		textfile string
	)

	fs := newFlagSet("infer", stderr)
	common.register(fs)
	fs.StringVar(&inPath, "in", "-", "input JSONL file, - for stdin")
	fs.StringVar(&outPath, "out", "-", "output JSONL file, - for stdout")
	fs.IntVar(&workers, "workers", 0, "concurrent workers (default from config)")
	fs.StringVar(&textfile, "metrics-textfile", "", "write Prometheus metrics to this file when done")

	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cfg, err := setup(fs, &common, stderr, func(f *flag.Flag, cfg *config.Config) {
		switch f.Name {
		case "workers":
			cfg.Batch.Workers = workers
		case "metrics-textfile":
			cfg.Metrics.TextfilePath = textfile
		}
	})
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg.Catalog.Paths)
	if err != nil {
		return err
	}

	diags := cat.Validate()
	for _, d := range diags.Warnings {
		logging.Warn().Str("code", d.Code).Str("source", d.Source).Str("path", d.Path).Msg(d.Message)
	}

	if diags.HasErrors() {
		return fmt.Errorf("catalog is invalid: %w", diags.Error())
	}

	opts := append(cfg.Matcher.Options(),
		geo.WithAliases(cat.AliasTable(geo.DefaultAliases())),
		geo.WithLogger(logging.Component("matcher")),
	)

	m := geo.NewMatcher(opts...)
	defer m.Close()

	resolver, err := batch.NewResolver(m, cat,
		batch.WithWorkers(cfg.Batch.Workers),
		batch.WithLogger(logging.Component("batch")),
	)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(inPath, stdin)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(outPath, stdout)
	if err != nil {
		return err
	}

	if _, err := resolver.Run(ctx, in, out); err != nil {
		_ = closeOut()
		return err
	}

	if err := closeOut(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	if cfg.Metrics.TextfilePath != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			return err
		}
	}

	return nil
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}

func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output: %w", err)
	}

	return f, f.Close, nil
}
