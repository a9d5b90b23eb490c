package domain

// Mode is the top-level action resolved from the command line.
type Mode int

const (
	// ModeHelp prints usage and exits non-zero.
	ModeHelp Mode = iota
	// ModeQuery executes one or more queries.
	ModeQuery
	// ModeNoOp runs nothing beyond the version line.
	ModeNoOp
)

// Format selects how a successful query is rendered.
type Format string

const (
	FormatLong  Format = "long"
	FormatShort Format = "short"
)

// Encoding selects the record encoding written to stdout.
type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
)

// QueryKind identifies the remote endpoint a query targets.
type QueryKind string

const (
	SiteQuery QueryKind = "site"
	DataQuery QueryKind = "data"
)

// Query is a single request against the remote service.
type Query struct {
	Kind  QueryKind
	URL   string
	Bytes uint64
	Green bool
}

// Target describes what the query measures, for log lines and error markers.
func (q Query) Target() string {
	if q.Kind == SiteQuery {
		return q.URL
	}
	return formatUint(q.Bytes) + " bytes"
}

// GreenParam is the numeric form the data endpoint expects.
func (q Query) GreenParam() string {
	return GreenFlag(q.Green)
}

// GreenFlag renders a green-hosting flag as "1" or "0".
func GreenFlag(green bool) string {
	if green {
		return "1"
	}
	return "0"
}

// RequestIntent is the normalized command-line request. It is built once per
// invocation and passed by value.
type RequestIntent struct {
	Mode        Mode
	Queries     []Query
	Format      Format
	Encoding    Encoding
	ShowVersion bool
}

// Outcome is the result of one executed query: either a decoded payload or
// the reason it failed.
type Outcome struct {
	Query Query
	Long  any
	Short any
	Raw   []byte
	Err   error
}

// Failed reports whether the query produced no payload.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Value returns the projection selected by format.
func (o Outcome) Value(format Format) any {
	if format == FormatShort {
		return o.Short
	}
	return o.Long
}
