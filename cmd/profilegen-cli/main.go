package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-profilegen/internal/config"
	"github.com/goliatone/go-profilegen/pkg/orchestrator"
	"github.com/goliatone/go-profilegen/pkg/pagemap"
	"github.com/goliatone/go-profilegen/pkg/profile"
	"github.com/goliatone/go-profilegen/pkg/sanitize"
	"github.com/goliatone/go-profilegen/pkg/sections"
)

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("load configuration")
	}

	data := flag.String("data", cfg.DataPath, "profile document path or URL")
	pagePath := flag.String("page", cfg.PagePath, "host HTML page to populate")
	output := flag.String("output", cfg.OutputPath, "output file (stdout if empty)")
	mapDir := flag.String("map", cfg.MapPath, "directory of page-map documents replacing the embedded defaults")
	force := flag.Bool("force", false, "overwrite the output file without asking")
	logLevel := flag.String("log-level", cfg.LogLevel, "log verbosity: debug, info, warn, error")
	flag.Parse()

	if level, err := logrus.ParseLevel(*logLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.WithField("level", *logLevel).Warn("unknown log level, keeping default")
	}

	if err := run(logger, cfg, *data, *pagePath, *output, *mapDir, *force); err != nil {
		logger.WithError(err).Fatal("generate page")
	}
}

func run(logger *logrus.Logger, cfg *config.Config, data, pagePath, output, mapDir string, force bool) error {
	ctx := context.Background()

	src := parseSource(data)
	if src == nil {
		return fmt.Errorf("invalid profile source %q", data)
	}

	pageHTML, err := os.ReadFile(pagePath)
	if err != nil {
		return fmt.Errorf("read page: %w", err)
	}

	sectionOpts := sections.Options{
		Logger:       logger,
		ThemeName:    cfg.Theme,
		ThemeVariant: cfg.ThemeVariant,
	}
	if cfg.Sanitize {
		sectionOpts.RichText = sanitize.NewRichText()
	}

	options := []orchestrator.Option{
		orchestrator.WithLogger(logger),
		orchestrator.WithSectionOptions(sectionOpts),
		orchestrator.WithLoaderOptions(
			profile.WithHTTPFallback(time.Duration(cfg.HTTPTimeoutSeconds) * time.Second),
		),
	}
	if mapDir != "" {
		pageMap, err := pagemap.LoadFS(os.DirFS(mapDir))
		if err != nil {
			return fmt.Errorf("load page map: %w", err)
		}
		options = append(options, orchestrator.WithPageMap(pageMap))
	}

	gen := orchestrator.New(options...)
	result, err := gen.Run(ctx, orchestrator.Request{
		Source:   src,
		PageHTML: pageHTML,
	})
	if err != nil {
		return err
	}
	if !result.Rendered() {
		logger.Warn("profile document unavailable, writing page unchanged")
	}

	rendered, err := result.HTML()
	if err != nil {
		return fmt.Errorf("serialize page: %w", err)
	}

	if output == "" {
		fmt.Println(string(rendered))
		return nil
	}

	if !force {
		ok, err := confirmOverwrite(output)
		if err != nil {
			return err
		}
		if !ok {
			logger.WithField("output", output).Info("write cancelled")
			return nil
		}
	}

	if err := os.WriteFile(output, rendered, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.WithField("output", output).Info("page written")
	return nil
}

// confirmOverwrite asks before clobbering an existing output file. A missing
// file needs no confirmation.
func confirmOverwrite(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf("stat output: %w", err)
	}

	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%s exists, overwrite?", path),
	}
	var out bool
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, fmt.Errorf("confirm overwrite: %w", err)
	}
	return out, nil
}

func parseSource(raw string) profile.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return profile.SourceFromURL(path)
	}
	return profile.SourceFromFile(path)
}
