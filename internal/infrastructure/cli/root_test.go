package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const siteJSON = `{"url":"https://example.com","green":false,"bytes":1195673,"cleanerThan":0.57,"statistics":{"adjustedBy":0.7519,"energy":0.0021,"co2":{"grid":{"grams":0.98765432,"litres":0.5493},"renewable":{"grams":0.03125,"litres":0.0526}}}}`

const dataJSON = `{"cleanerThan":0.83,"statistics":{"adjustedBy":0.7519,"energy":0.5,"co2":{"grid":{"grams":1.23456,"litres":0.6},"renewable":{"grams":0.1,"litres":0.05}}}}`

type fakeService struct {
	mu       sync.Mutex
	requests []string
	failSite bool
}

func (f *fakeService) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.URL.Path+"?"+r.URL.RawQuery)
		f.mu.Unlock()

		switch r.URL.Path {
		case "/site":
			if f.failSite {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			w.Write([]byte(siteJSON))
		case "/data":
			w.Write([]byte(dataJSON))
		default:
			http.NotFound(w, r)
		}
	})
}

func execute(t *testing.T, opts Options, args ...string) (string, string, error) {
	t.Helper()
	root, err := NewRootCmd(context.Background(), opts)
	if err != nil {
		t.Fatalf("NewRootCmd error: %v", err)
	}
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func newFake(t *testing.T) (*fakeService, Options) {
	t.Helper()
	fake := &fakeService{}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	return fake, Options{BaseURL: srv.URL}
}

func TestNoArgumentsPrintsUsage(t *testing.T) {
	fake, opts := newFake(t)

	stdout, _, err := execute(t, opts)
	if !IsUsage(err) || ExitCode(err) != 1 {
		t.Fatalf("expected usage error with exit 1, got %v", err)
	}
	if !strings.Contains(stdout, "USAGE") || !strings.Contains(stdout, "--bytes") {
		t.Fatalf("usage text missing sections:\n%s", stdout)
	}
	if len(fake.requests) != 0 {
		t.Fatalf("expected no requests, got %v", fake.requests)
	}
}

func TestHelpIgnoresOtherFlags(t *testing.T) {
	fake, opts := newFake(t)

	stdout, _, err := execute(t, opts, "-u", "https://example.com", "-h")
	if ExitCode(err) != 1 || !strings.Contains(stdout, "EXAMPLES") {
		t.Fatalf("expected help, got err=%v out=%q", err, stdout)
	}
	if len(fake.requests) != 0 {
		t.Fatalf("expected no requests, got %v", fake.requests)
	}
}

func TestVersionFlag(t *testing.T) {
	_, opts := newFake(t)

	stdout, _, err := execute(t, opts, "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(stdout, "wcarbon ") {
		t.Fatalf("unexpected version output %q", stdout)
	}
}

func TestLongSitePassesBodyThrough(t *testing.T) {
	fake, opts := newFake(t)

	stdout, _, err := execute(t, opts, "--url", "https://example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got, want map[string]any
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if err := json.Unmarshal([]byte(siteJSON), &want); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("long output mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/site?url=https%3A%2F%2Fexample.com"}, fake.requests); diff != "" {
		t.Errorf("requests mismatch (-want +got):\n%s", diff)
	}
}

func TestShortSiteRoundsFields(t *testing.T) {
	_, opts := newFake(t)

	stdout, _, err := execute(t, opts, "--short", "--url", "https://example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	want := map[string]any{
		"green":          false,
		"size":           "1167.6 kB",
		"cleanerThan":    "56.99999999999999%",
		"energy_pr_load": "0.0021 kW_g",
		"co2": map[string]any{
			"grid":      "0.9877 g",
			"renewable": "0.0313 g",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("short output mismatch (-want +got):\n%s", diff)
	}
}

func TestBytesQueryGreenParam(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"--bytes", "1195673"}, want: "/data?bytes=1195673&green=0"},
		{args: []string{"--bytes", "1195673", "--green"}, want: "/data?bytes=1195673&green=1"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			fake, opts := newFake(t)
			if _, _, err := execute(t, opts, tt.args...); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff([]string{tt.want}, fake.requests); diff != "" {
				t.Errorf("requests mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestShortDataOmitsSiteFields(t *testing.T) {
	_, opts := newFake(t)

	stdout, _, err := execute(t, opts, "-sb", "100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if _, ok := got["size"]; ok {
		t.Error("data short output must not contain size")
	}
	if _, ok := got["green"]; ok {
		t.Error("data short output must not contain green")
	}
	if got["cleanerThan"] != "83%" {
		t.Errorf("cleanerThan = %v", got["cleanerThan"])
	}
}

func TestURLAndBytesRunInOrder(t *testing.T) {
	fake, opts := newFake(t)

	stdout, _, err := execute(t, opts, "-b", "42", "-u", "https://example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"/site?url=https%3A%2F%2Fexample.com",
		"/data?bytes=42&green=0",
	}
	if diff := cmp.Diff(want, fake.requests); diff != "" {
		t.Errorf("requests mismatch (-want +got):\n%s", diff)
	}

	dec := json.NewDecoder(strings.NewReader(stdout))
	var first, second map[string]any
	if err := dec.Decode(&first); err != nil {
		t.Fatalf("decode first record: %v", err)
	}
	if err := dec.Decode(&second); err != nil {
		t.Fatalf("decode second record: %v", err)
	}
	if first["url"] != "https://example.com" {
		t.Errorf("first record should be the site result, got %v", first)
	}
	if _, ok := second["url"]; ok {
		t.Errorf("second record should be the data result, got %v", second)
	}
}

func TestSiteFailureDoesNotBlockDataQuery(t *testing.T) {
	fake, opts := newFake(t)
	fake.failSite = true

	stdout, stderr, err := execute(t, opts, "-u", "https://example.com", "-b", "42")
	if err != nil || ExitCode(err) != 0 {
		t.Fatalf("expected exit 0, got %v", err)
	}
	if !strings.Contains(stderr, "error: site query https://example.com") {
		t.Errorf("missing error marker in stderr %q", stderr)
	}
	if !strings.Contains(stdout, `"cleanerThan": 0.83`) {
		t.Errorf("data result missing from stdout %q", stdout)
	}
	if len(fake.requests) != 2 {
		t.Errorf("expected 2 requests, got %v", fake.requests)
	}
}

type failingTransport struct {
	next http.RoundTripper
}

func (f failingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Path == "/site" {
		return nil, errors.New("dial tcp: connection refused")
	}
	return f.next.RoundTrip(req)
}

func TestTransportFailureIsReported(t *testing.T) {
	fake, opts := newFake(t)
	opts.HTTPClient = &http.Client{Transport: failingTransport{next: http.DefaultTransport}}

	stdout, stderr, err := execute(t, opts, "-su", "https://example.com", "-b", "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "connection refused") {
		t.Errorf("stderr = %q", stderr)
	}
	if !strings.Contains(stdout, `"cleanerThan": "83%"`) {
		t.Errorf("stdout = %q", stdout)
	}
	if diff := cmp.Diff([]string{"/data?bytes=7&green=0"}, fake.requests); diff != "" {
		t.Errorf("requests mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLOutput(t *testing.T) {
	_, opts := newFake(t)

	stdout, _, err := execute(t, opts, "-s", "-o", "yaml", "-u", "https://example.com", "-b", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"green: false", "size: 1167.6 kB", "---", "energy_pr_load: 0.5 kW_g"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("yaml output missing %q:\n%s", want, stdout)
		}
	}
}

func TestInvalidBytesShowsUsage(t *testing.T) {
	fake, opts := newFake(t)

	stdout, stderr, err := execute(t, opts, "--bytes", "lots")
	if ExitCode(err) != 1 || !strings.Contains(stdout, "USAGE") {
		t.Fatalf("expected usage, got err=%v", err)
	}
	if !strings.Contains(stderr, "non-negative integer") {
		t.Errorf("stderr = %q", stderr)
	}
	if len(fake.requests) != 0 {
		t.Errorf("expected no requests, got %v", fake.requests)
	}
}
