package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/woozymasta/csv2geojson/internal/config"
	"github.com/woozymasta/csv2geojson/internal/convert"
	"github.com/woozymasta/csv2geojson/internal/logger"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input      string   `short:"i" long:"in"     env:"INPUT_FILE"  description:"Input table (CSV with longitude and latitude columns)" default:"data.csv"`
	Output     string   `short:"o" long:"out"    env:"OUTPUT_FILE" description:"Output file path, overwritten if it exists"           default:"data.geojson"`
	Format     string   `short:"f" long:"format" env:"FORMAT"      description:"Output format" choice:"json" choice:"yaml"               default:"json"`
	ConfigFile string   `short:"c" long:"config" env:"CONFIG_FILE" description:"Batch configuration file, overrides --in and --out"`
	Limit      []string `short:"l" long:"limit"  env:"LIMIT_JOBS"  description:"Limit batch processing to specific job names"`
	Indent     bool     `long:"indent"           env:"INDENT"      description:"Indent JSON output"`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error reading .env: %v\n", err)
		os.Exit(1)
	}

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if err := run(opts); err != nil {
		log.Error().Err(err).Msg("Conversion failed")
		os.Exit(1)
	}
}

func run(opts Options) error {
	if opts.ConfigFile == "" {
		_, err := convert.File(opts.Input, opts.Output, convert.WriteOptions{
			Format: convert.Format(opts.Format),
			Indent: opts.Indent,
		})
		return err
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	jobs, unknown := cfg.Select(opts.Limit)
	if len(unknown) > 0 {
		return fmt.Errorf("jobs specified in --limit not found in configuration: %v", unknown)
	}

	log.Info().
		Int("jobs_total", len(cfg.Jobs)).
		Int("jobs_queued", len(jobs)).
		Msg("Starting batch conversion")

	total := 0
	for _, job := range jobs {
		n, err := convert.File(job.Input, job.Output, cfg.Options(job))
		if err != nil {
			return fmt.Errorf("job %q: %w", job.Name, err)
		}
		total += n
	}

	log.Info().
		Int("jobs", len(jobs)).
		Int("features", total).
		Msg("Batch conversion finished")

	return nil
}
