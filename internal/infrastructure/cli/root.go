package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/timharek/wcarbon/internal/app"
	"github.com/timharek/wcarbon/internal/application/query"
	"github.com/timharek/wcarbon/internal/domain"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
	// BaseURL and HTTPClient override the remote service, mainly for tests.
	BaseURL    string
	HTTPClient *http.Client
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, app.Settings{
		Verbose:    opts.Verbose,
		BaseURL:    opts.BaseURL,
		HTTPClient: opts.HTTPClient,
	})
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   appName + " [OPTIONS]",
		Short: appDescription,
		// Flags are interpreted by ParseIntent so that help exits non-zero.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), container.QueryService, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	return root, nil
}

func run(ctx context.Context, out, errOut io.Writer, svc *query.Service, args []string) error {
	intent, err := ParseIntent(args)
	if err != nil {
		fmt.Fprintln(errOut, "error:", err)
	}

	if intent.Mode == domain.ModeHelp {
		writeUsage(out)
		return ErrUsage
	}
	if intent.ShowVersion {
		writeVersion(out)
	}
	if intent.Mode == domain.ModeNoOp {
		return nil
	}

	renderer := NewRenderer(out, errOut, intent.Format, intent.Encoding)
	var renderErr error
	runErr := svc.Run(ctx, intent, func(outcome domain.Outcome) {
		if err := renderer.Render(outcome); err != nil && renderErr == nil {
			renderErr = err
		}
	})
	return errors.Join(runErr, renderErr)
}

// ExitCode maps the error returned by the root command to a process status.
// Failed queries are reported per query and do not change the status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// IsUsage reports whether err only signals that usage was shown.
func IsUsage(err error) bool {
	return errors.Is(err, ErrUsage)
}
