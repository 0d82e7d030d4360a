package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/tombowditch/patisserie/client"
	"github.com/tombowditch/patisserie/internal/config"
	"github.com/tombowditch/patisserie/internal/duration"
	"github.com/tombowditch/patisserie/internal/language"
	"github.com/tombowditch/patisserie/internal/paste"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.LookupEnv))
}

// run creates one paste and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, lookup config.Lookup) int {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "patisserie"
	parser.ShortDescription = "A CLI for https://www.pastery.net, the sweetest pastebin in the world."
	parser.LongDescription = parser.ShortDescription

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, ferr.Message)
			return exitOK
		}
		fmt.Fprintf(stderr, "patisserie: %v\n", err)
		return exitUsage
	}
	if len(rest) > 0 {
		fmt.Fprintf(stderr, "patisserie: unexpected arguments: %s\n", strings.Join(rest, " "))
		return exitUsage
	}

	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	switch {
	case opts.Version:
		fmt.Fprintln(stdout, config.UserAgent)
		return exitOK
	case opts.ListLanguages:
		fmt.Fprintln(stdout, language.Autodetect)
		for _, l := range language.Known() {
			fmt.Fprintf(stdout, "%-14s %s\n", l.Name, l.Title)
		}
		return exitOK
	}

	url, err := create(ctx, &opts, parser.FindOptionByLongName("title").IsSet(), stdin, lookup, logger)
	if err != nil {
		logger.Debug("paste failed", "error", err)
		fmt.Fprintf(stderr, "patisserie: %v\n", err)
		return exitError
	}

	fmt.Fprintln(stdout, url)
	return exitOK
}

func create(ctx context.Context, opts *options, titleSet bool, stdin io.Reader, lookup config.Lookup, logger *slog.Logger) (string, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = config.DefaultEnvFile()
	}
	apiKey, err := config.APIKey(opts.APIKey, lookup, envFile)
	if err != nil {
		return "", err
	}

	content, err := paste.ReadContent(opts.Args.Path, stdin)
	if err != nil {
		return "", err
	}

	var title *string
	if titleSet {
		title = &opts.Title
	}

	p := paste.Options{
		APIKey:   apiKey,
		Duration: duration.Minutes(opts.Duration),
		Language: string(opts.Language),
		Title:    title,
		MaxViews: uint32(opts.MaxViews),
		Path:     opts.Args.Path,
		Content:  content,
	}

	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = client.DefaultEndpoint
	}

	req, err := p.Request(endpoint)
	if err != nil {
		return "", err
	}

	logger.Debug("resolved paste",
		"duration", p.Duration,
		"language", req.URL.Query().Get("language"),
		"title", req.URL.Query().Get("title"),
		"bytes", len(content),
	)

	c := client.New(client.WithEndpoint(endpoint), client.WithLogger(logger))
	url, err := c.Create(ctx, req)
	if err != nil {
		return "", err
	}
	logger.Info("paste created", "url", url)
	return url, nil
}
