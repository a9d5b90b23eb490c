package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/timharek/wcarbon/internal/domain"
)

var (
	// ErrUsage signals that usage was printed and the process should exit 1.
	ErrUsage = errors.New("usage requested")
	// ErrInvalidBytes is returned when --bytes is not a non-negative integer.
	ErrInvalidBytes = errors.New("--bytes must be a non-negative integer")
	// ErrInvalidOutput is returned for an unsupported --output encoding.
	ErrInvalidOutput = errors.New("--output must be json or yaml")
)

type flagValues struct {
	help    bool
	version bool
	short   bool
	long    bool
	green   bool
	url     string
	bytes   string
	output  string
}

func newFlagSet(v *flagValues) *pflag.FlagSet {
	fs := pflag.NewFlagSet("wcarbon", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.BoolVarP(&v.help, "help", "h", false, "Prints this help message.")
	fs.BoolVarP(&v.version, "version", "V", false, "Prints version.")
	fs.BoolVarP(&v.short, "short", "s", false, "Give the output in the short-format.")
	fs.BoolVarP(&v.long, "long", "l", false, "Give the output in the long-format (default).")
	fs.StringVarP(&v.url, "url", "u", "", "Calculate the carbon emissions generated by the provided <url>.")
	fs.StringVarP(&v.bytes, "bytes", "b", "", "Calculate the emissions of a page by manually passing the bytes and whether or not it is powered by green hosting.")
	fs.BoolVarP(&v.green, "green", "g", false, "If a page is green or not (boolean), works only in conjunction with --bytes.")
	fs.StringVarP(&v.output, "output", "o", string(domain.EncodingJSON), "Record encoding: json or yaml.")
	return fs
}

func helpIntent() domain.RequestIntent {
	return domain.RequestIntent{
		Mode:     domain.ModeHelp,
		Format:   domain.FormatLong,
		Encoding: domain.EncodingJSON,
	}
}

// ParseIntent turns raw command-line arguments into a RequestIntent.
//
// No arguments, --help, or flags that select nothing to do resolve to
// ModeHelp. On a parse error the returned intent is also ModeHelp, so callers
// can report the error and fall through to usage.
func ParseIntent(args []string) (domain.RequestIntent, error) {
	if len(args) == 0 {
		return helpIntent(), nil
	}

	var v flagValues
	if err := newFlagSet(&v).Parse(args); err != nil {
		return helpIntent(), err
	}
	if v.help {
		return helpIntent(), nil
	}

	intent := domain.RequestIntent{
		Mode:        domain.ModeQuery,
		Format:      domain.FormatLong,
		Encoding:    domain.EncodingJSON,
		ShowVersion: v.version,
	}
	// --short wins over --long when both are given.
	if v.short {
		intent.Format = domain.FormatShort
	}

	switch strings.ToLower(strings.TrimSpace(v.output)) {
	case "", "json":
	case "yaml", "yml":
		intent.Encoding = domain.EncodingYAML
	default:
		return helpIntent(), fmt.Errorf("%w: %q", ErrInvalidOutput, v.output)
	}

	if v.url != "" {
		intent.Queries = append(intent.Queries, domain.Query{Kind: domain.SiteQuery, URL: v.url})
	}
	if v.bytes != "" {
		n, err := strconv.ParseUint(strings.TrimSpace(v.bytes), 10, 64)
		if err != nil {
			return helpIntent(), fmt.Errorf("%w: %q", ErrInvalidBytes, v.bytes)
		}
		intent.Queries = append(intent.Queries, domain.Query{Kind: domain.DataQuery, Bytes: n, Green: v.green})
	}

	if len(intent.Queries) == 0 {
		if v.version {
			intent.Mode = domain.ModeNoOp
			return intent, nil
		}
		return helpIntent(), nil
	}
	return intent, nil
}

// flagUsages renders the option table shown in the help text.
func flagUsages() string {
	var v flagValues
	return newFlagSet(&v).FlagUsages()
}
