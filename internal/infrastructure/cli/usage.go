package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/timharek/wcarbon/internal/version"
)

const (
	appName        = "wcarbon"
	appDescription = "Query webpages (URLs) via Website Carbons API."
	appAuthor      = "Tim Hårek Andreassen <tim@harek.no>"
	appSource      = "https://github.com/timharek/wcarbon"
)

var usageExamples = []string{
	"wcarbon -u https://timharek.no",
	"wcarbon -su https://timharek.no",
	"wcarbon -b 1195673",
	"wcarbon -sgb 1195673",
}

// writeVersion prints the version line, followed by build metadata when the
// binary was built with it.
func writeVersion(out io.Writer) {
	fmt.Fprintf(out, "%s %s\n", appName, version.Version)
	if version.Commit != "" {
		fmt.Fprintf(out, "Commit: %s\n", version.Commit)
	}
	if version.BuildDate != "" {
		fmt.Fprintf(out, "Built: %s\n", version.BuildDate)
	}
}

// writeUsage prints the help text.
func writeUsage(out io.Writer) {
	fmt.Fprintf(out, "%s %s\n", appName, version.Version)
	fmt.Fprintln(out, appDescription)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "AUTHOR %s\n", appAuthor)
	fmt.Fprintf(out, "SOURCE %s\n", appSource)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "USAGE\n\t%s [OPTIONS]\n", appName)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "OPTIONS")
	for _, line := range strings.Split(strings.TrimRight(flagUsages(), "\n"), "\n") {
		fmt.Fprintf(out, "\t%s\n", strings.TrimSpace(line))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "EXAMPLES")
	for _, example := range usageExamples {
		fmt.Fprintf(out, "\t$ %s\n", example)
	}
}
