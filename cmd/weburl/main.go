// Command weburl parses, validates, and optionally probes a list of URLs
// given on the command line, printing one normalized result per input.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/slicingmelon/weburl"
	"github.com/slicingmelon/weburl/internal/cliopts"
	"github.com/slicingmelon/weburl/internal/logger"
	"github.com/slicingmelon/weburl/internal/probe"
)

func main() {
	opts, err := cliopts.ParseFlags()
	if err != nil {
		logger.Error().Msgf("%v", err)
		os.Exit(1)
	}
	if opts.Verbose {
		logger.EnableVerbose()
	}
	if opts.Debug {
		logger.EnableDebug()
	}

	logger.Info().Msgf("parsing %d URL(s)...", len(opts.URLs))

	var base *weburl.URL
	if opts.Base != "" {
		base, err = weburl.Parse(opts.Base)
		if err != nil {
			logger.Error().Msgf("invalid base URL %q: %v", opts.Base, err)
			os.Exit(1)
		}
	}

	var prober *probe.Prober
	if opts.Probe {
		prober, err = probe.NewProber()
		if err != nil {
			logger.Error().Msgf("failed to initialize prober: %v", err)
			os.Exit(1)
		}
		defer prober.Close()
	}

	exitCode := 0
	for _, raw := range opts.URLs {
		u, err := weburl.ParseWithValidation(raw, base, func(ve weburl.ValidationError) {
			logger.Verbose().Validation(ve).Msgf("%s: %s", raw, ve.Message)
		})
		if err != nil {
			logger.Error().Msgf("%s: %v", raw, err)
			exitCode = 1
			continue
		}
		report(u, prober, opts.Format)
	}
	os.Exit(exitCode)
}

type record struct {
	Input     string `json:"input"`
	Scheme    string `json:"scheme"`
	Hostname  string `json:"hostname,omitempty"`
	Port      string `json:"port,omitempty"`
	Path      string `json:"path"`
	Query     string `json:"query,omitempty"`
	Fragment  string `json:"fragment,omitempty"`
	Reachable []string `json:"reachable_schemes,omitempty"`
}

func report(u *weburl.URL, prober *probe.Prober, format string) {
	rec := record{Input: u.String(), Scheme: u.Scheme(), Path: u.Path()}
	if hn, ok := u.Hostname(); ok {
		rec.Hostname = hn
	}
	if port, ok := u.Port(); ok {
		rec.Port = port
	}
	if q, ok := u.Query(); ok {
		rec.Query = q
	}
	if f, ok := u.Fragment(); ok {
		rec.Fragment = f
	}

	if prober != nil {
		result, err := prober.Probe(context.Background(), u)
		if err != nil {
			logger.Warning().Msgf("probe failed for %s: %v", u.String(), err)
		} else {
			rec.Reachable = result.Schemes
		}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		_ = enc.Encode(rec)
	default:
		fmt.Println(u.String())
	}
}
