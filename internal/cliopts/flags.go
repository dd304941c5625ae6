package cliopts

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
)

// Options holds cmd/weburl's resolved CLI configuration. Grounded on
// internal/cli/flags.go's Options/multiFlag table shape, narrowed to the
// parser's own surface (targets, base, output format, verbosity).
type Options struct {
	URLs    goflags.StringSlice
	Base    string
	Format  string
	Verbose bool
	Debug   bool
	Probe   bool
}

// stringSliceFlag accumulates repeated -u/-url occurrences into a
// goflags.StringSlice, the same conversion target utils.go feeds to
// httpx's runner.Options.InputTargetHost.
type stringSliceFlag struct {
	dst *goflags.StringSlice
}

func (f *stringSliceFlag) String() string {
	if f == nil || f.dst == nil {
		return ""
	}
	return strings.Join(*f.dst, ",")
}

func (f *stringSliceFlag) Set(v string) error {
	*f.dst = append(*f.dst, v)
	return nil
}

type multiFlag struct {
	name   string
	usage  string
	value  interface{}
	defVal interface{}
}

// ParseFlags parses os.Args[1:] into Options, following the multiFlag
// table + custom flag.Usage pattern of internal/cli/flags.go.
func ParseFlags() (*Options, error) {
	opts := &Options{}

	urlFlag := &stringSliceFlag{dst: &opts.URLs}

	flags := []multiFlag{
		{name: "u,url", usage: "URL to parse (repeatable)", value: urlFlag},
		{name: "b,base", usage: "Base URL used to resolve relative references", value: &opts.Base},
		{name: "f,format", usage: "Output format: text or json", value: &opts.Format, defVal: "text"},
		{name: "probe", usage: "Reachability-probe each parsed URL's host", value: &opts.Probe},
		{name: "v,verbose", usage: "Verbose output", value: &opts.Verbose},
		{name: "d,debug", usage: "Debug output", value: &opts.Debug},
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "weburl\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		for _, f := range flags {
			names := strings.Split(f.name, ",")
			if len(names) > 1 {
				fmt.Fprintf(os.Stderr, "  -%s, -%s\n", names[0], names[1])
			} else {
				fmt.Fprintf(os.Stderr, "  -%s\n", names[0])
			}
			if f.defVal != nil {
				fmt.Fprintf(os.Stderr, "        %s (Default: %v)\n", f.usage, f.defVal)
			} else {
				fmt.Fprintf(os.Stderr, "        %s\n", f.usage)
			}
		}
	}

	for _, f := range flags {
		for _, name := range strings.Split(f.name, ",") {
			name = strings.TrimSpace(name)
			switch v := f.value.(type) {
			case *string:
				def, _ := f.defVal.(string)
				flag.StringVar(v, name, def, f.usage)
			case *bool:
				def, _ := f.defVal.(bool)
				flag.BoolVar(v, name, def, f.usage)
			case flag.Value:
				flag.Var(v, name, f.usage)
			}
		}
	}

	flag.Parse()
	opts.URLs = append(opts.URLs, flag.Args()...)

	if err := opts.validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func (o *Options) validate() error {
	if len(o.URLs) == 0 {
		return fmt.Errorf("at least one URL required (via -u or a positional argument)")
	}
	switch o.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown format %q: want text or json", o.Format)
	}
	return nil
}
