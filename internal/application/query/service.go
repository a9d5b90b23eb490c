package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/timharek/wcarbon/internal/domain"
	"github.com/timharek/wcarbon/internal/ports"
)

// Service runs the queries of a RequestIntent against the carbon API.
type Service struct {
	API    ports.CarbonAPI
	Logger ports.Logger
}

// Run executes every query in intent order and hands each outcome to emit
// before starting the next one. A failed query never stops the ones after it.
func (s *Service) Run(ctx context.Context, intent domain.RequestIntent, emit func(domain.Outcome)) error {
	if s.API == nil || s.Logger == nil {
		return errors.New("query.Service dependencies not satisfied")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	for _, q := range intent.Queries {
		outcome := s.Execute(ctx, q)
		if outcome.Failed() {
			s.Logger.Error("query failed", outcome.Err, map[string]interface{}{
				"kind":   string(q.Kind),
				"target": q.Target(),
			})
		}
		emit(outcome)
	}
	return nil
}

// Execute performs a single query and builds both projections of the result.
func (s *Service) Execute(ctx context.Context, q domain.Query) domain.Outcome {
	s.Logger.Info("querying", map[string]interface{}{
		"kind":   string(q.Kind),
		"target": q.Target(),
	})

	switch q.Kind {
	case domain.SiteQuery:
		result, raw, err := s.API.Site(ctx, q.URL)
		if err != nil {
			return domain.Outcome{Query: q, Err: fmt.Errorf("site query %s: %w", q.Target(), err)}
		}
		return domain.Outcome{Query: q, Long: result, Short: result.Short(), Raw: raw}
	case domain.DataQuery:
		result, raw, err := s.API.Data(ctx, q.Bytes, q.Green)
		if err != nil {
			return domain.Outcome{Query: q, Err: fmt.Errorf("data query %s: %w", q.Target(), err)}
		}
		return domain.Outcome{Query: q, Long: result, Short: result.Short(), Raw: raw}
	default:
		return domain.Outcome{Query: q, Err: fmt.Errorf("unknown query kind %q", q.Kind)}
	}
}
