// Command zxfontgen converts ZX81 glyph sheets into C font tables.
//
// With no flags it reads zx81_font.png and zx81_ascii_font.png from the
// current directory and writes zx81.h and zx81_ascii.h:
//
//	zxfontgen
//	zxfontgen -target zx81_ascii_font -histogram -dump
//	zxfontgen -config fonts.json -dir fonts -preview 4
//
// Defaults for -dir, -log-level and -log-file may be placed in .env or
// .env.local as GLYPHSHEET_DIR, GLYPHSHEET_LOG_LEVEL and GLYPHSHEET_LOG_FILE.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/glyphsheet"
	"github.com/gogpu/glyphsheet/internal/config"
	"github.com/gogpu/glyphsheet/internal/preview"
)

// options are the parsed command line settings.
type options struct {
	config    string
	targets   []string
	dir       string
	order     string
	dump      bool
	histogram bool
	preview   int
}

func main() {
	envFile, envErr := config.LoadEnv(".")
	env := config.FromEnv()

	var (
		configPath = flag.String("config", "", "JSON targets file (default: built-in ZX81 variants)")
		targets    = flag.String("target", "", "comma separated targets to build (default: all)")
		dir        = flag.String("dir", env.Dir, "directory holding sheets and headers")
		order      = flag.String("order", "", "table order override: line or code")
		dump       = flag.Bool("dump", false, "print a text rendering of every table")
		histogram  = flag.Bool("histogram", false, "print the raw pixel value histogram of every sheet")
		scale      = flag.Int("preview", 0, "also write <output>_preview.png images at this scale")
		logLevel   = flag.String("log-level", env.LogLevel, "debug, info, warn or error")
		logFile    = flag.String("log-file", env.LogFile, "write JSON logs to this rotating file")
	)
	flag.Parse()

	logger, closer, err := newLogger(*logLevel, *logFile, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	glyphsheet.SetLogger(logger)
	if envErr != nil {
		logger.Warn("ignoring env file", slog.Any("error", envErr))
	} else if envFile != "" {
		logger.Debug("env file loaded", slog.String("path", envFile))
	}

	opts := options{
		config:    *configPath,
		dir:       *dir,
		order:     *order,
		dump:      *dump,
		histogram: *histogram,
		preview:   *scale,
	}
	if *targets != "" {
		opts.targets = strings.Split(*targets, ",")
	}

	err = run(opts, os.Stdout)
	_ = closer.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "zxfontgen:", err)
		os.Exit(1)
	}
}

// run builds every selected target, stages every output file and only
// then renames them into place, so any failure leaves no output behind.
func run(opts options, stdout io.Writer) error {
	variants, err := loadVariants(opts)
	if err != nil {
		return err
	}

	results := make([]*glyphsheet.Result, len(variants))
	var eg errgroup.Group
	for i, v := range variants {
		eg.Go(func() error {
			res, err := glyphsheet.Build(v)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	var out staged
	defer func() {
		if aerr := out.abort(); aerr != nil {
			glyphsheet.Logger().Warn("removing staged files", slog.Any("error", aerr))
		}
	}()
	for _, res := range results {
		if err := stage(&out, res, opts); err != nil {
			return err
		}
	}
	if err := out.commit(); err != nil {
		return err
	}

	for _, res := range results {
		if err := report(res, opts, stdout); err != nil {
			return err
		}
	}
	return nil
}

func loadVariants(opts options) ([]glyphsheet.Variant, error) {
	variants := glyphsheet.Variants()
	if opts.config != "" {
		var err error
		if variants, err = config.Load(opts.config); err != nil {
			return nil, err
		}
	}

	variants, err := config.Select(variants, opts.targets)
	if err != nil {
		return nil, err
	}
	variants = config.Resolve(variants, opts.dir)

	if opts.order != "" {
		order, err := glyphsheet.ParseOrder(opts.order)
		if err != nil {
			return nil, err
		}
		for i := range variants {
			variants[i].Order = order
		}
	}
	return variants, nil
}

// stage writes the header and optional preview of res to temporary files.
func stage(out *staged, res *glyphsheet.Result, opts options) error {
	v := res.Variant
	if err := out.addBytes(v.Output, res.Header); err != nil {
		return fmt.Errorf("%s: %w", v.Name, err)
	}
	if opts.preview > 0 {
		err := out.add(previewPath(v.Output), func(w io.Writer) error {
			return preview.Encode(w, "png", res.Table, v.Layout, preview.Options{Scale: opts.preview, Labels: true})
		})
		if err != nil {
			return fmt.Errorf("%s: preview: %w", v.Name, err)
		}
	}
	return nil
}

// report logs the written files of res and prints the requested
// diagnostics.
func report(res *glyphsheet.Result, opts options, stdout io.Writer) error {
	v := res.Variant
	glyphsheet.Logger().Info("header written",
		slog.String("name", v.Name),
		slog.String("path", v.Output),
		slog.Int("bytes", len(res.Header)))
	if opts.preview > 0 {
		glyphsheet.Logger().Info("preview written",
			slog.String("name", v.Name),
			slog.String("path", previewPath(v.Output)),
			slog.Int("scale", opts.preview))
	}

	if opts.histogram {
		fmt.Fprintf(stdout, "%s: %s\n", v.Name, res.Histogram)
	}
	if opts.dump {
		fmt.Fprintf(stdout, "%s:\n", v.Name)
		if err := glyphsheet.Dump(stdout, res.Table, v.Charset); err != nil {
			return err
		}
	}
	return nil
}

func previewPath(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + "_preview.png"
}
