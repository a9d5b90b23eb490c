package domain

import "time"

// Remote service constants
const (
	// DefaultBaseURL is the Website Carbon API host
	DefaultBaseURL = "https://api.websitecarbon.com"
	// SitePath estimates emissions for a webpage URL
	SitePath = "/site"
	// DataPath estimates emissions for a manual byte count
	DataPath = "/data"
)

// Timeout and duration constants
const (
	// DefaultHTTPClientTimeout bounds a single request/response cycle
	DefaultHTTPClientTimeout = 30 * time.Second
)

// Formatting constants
const (
	// BytesPerKilobyte is the divisor used for the short-format size
	BytesPerKilobyte = 1024
	// SizeDecimals is the number of decimals in the short-format size
	SizeDecimals = 1
	// GramsDecimals is the number of decimals for co2 grams in the short format
	GramsDecimals = 4
)
