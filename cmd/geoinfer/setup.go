package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"newsgeo/internal/catalog"
	"newsgeo/internal/config"
	"newsgeo/internal/logging"
)

// errUsage reports a flag or argument error already printed by the flag set.
var errUsage = errors.New("usage")

func isUsage(err error) bool {
	return errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp)
}

// commonFlags are accepted by every command.
type commonFlags struct {
	configPath string
	catalogs   string
	logLevel   string
	logFormat  string
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&c.configPath, "config", "", "config file (default: geoinfer.yaml or $CONFIG_PATH)")
	fs.StringVar(&c.catalogs, "catalog", "", "comma-separated catalog files")
	fs.StringVar(&c.logLevel, "log-level", "", "log level: trace, debug, info, warn, error, disabled")
	fs.StringVar(&c.logFormat, "log-format", "", "log format: json or console")
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("geoinfer "+name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}

		return errUsage
	}

	return nil
}

// setup loads the configuration, applies the flags the user set and
// initializes logging to stderr.
func setup(fs *flag.FlagSet, common *commonFlags, stderr io.Writer, apply func(f *flag.Flag, cfg *config.Config)) (*config.Config, error) {
	cfg, err := config.Load(common.configPath)
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "catalog":
			cfg.Catalog.Paths = config.SplitList(common.catalogs)
		case "log-level":
			cfg.Logging.Level = common.logLevel
		case "log-format":
			cfg.Logging.Format = common.logFormat
		default:
			if apply != nil {
				apply(f, cfg)
			}
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}

	lc := cfg.Logging.Logging()
	lc.Output = stderr
	logging.Init(lc)

	return cfg, nil
}

func loadCatalog(paths []string) (*catalog.Catalog, error) {
	if len(paths) == 0 {
		return nil, errors.New("no catalog files given (use -catalog or GEO_CATALOG)")
	}

	c, err := catalog.LoadFiles(paths...)
	if err != nil {
		return nil, err
	}

	logging.Info().Strs("paths", paths).Int("districts", c.Len()).Msg("catalog loaded")

	return c, nil
}
