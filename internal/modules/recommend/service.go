package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mflix-space/core/internal/metrics"
	"github.com/mflix-space/core/internal/models"
	"go.uber.org/zap"
)

// catalogScanLimit bounds how many summaries are loaded per request. The
// store already skips ineligible movies, so this leaves room for the few
// the digest still drops.
const catalogScanLimit = 4 * MaxDigestEntries

// Catalog supplies movie summaries for the digest.
type Catalog interface {
	Summaries(ctx context.Context, limit int64) ([]models.MovieSummary, error)
}

type Service struct {
	catalog   Catalog
	completer Completer
	log       *zap.Logger
}

func NewService(catalog Catalog, completer Completer, log *zap.Logger) *Service {
	return &Service{catalog: catalog, completer: completer, log: log.Named("recommend")}
}

// Recommend validates req, builds the digest, sends one completion request
// and parses the reply. Validation failures never reach the catalog or the
// completer.
func (s *Service) Recommend(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	res, err := s.recommend(ctx, req)

	persona := personaLabel(req.Persona)
	metrics.Recommendations.WithLabelValues(persona, outcome(err)).Inc()
	metrics.RecommendationDuration.WithLabelValues(persona).Observe(time.Since(start).Seconds())
	return res, err
}

func (s *Service) recommend(ctx context.Context, req Request) (*Result, error) {
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, ErrPromptRequired
	}
	_, instruction, err := ResolvePersona(string(req.Persona))
	if err != nil {
		return nil, err
	}

	movies, err := s.catalog.Summaries(ctx, catalogScanLimit)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}
	digest := BuildDigest(movies)

	raw, err := s.completer.Complete(ctx, instruction, buildUserMessage(digest, prompt))
	if err != nil {
		return nil, err
	}

	res, err := ParseRecommendation(raw)
	if err != nil {
		s.log.Warn("model output rejected",
			zap.String("persona", string(req.Persona)),
			zap.String("raw", raw),
			zap.Error(err),
		)
		return nil, err
	}
	return res, nil
}

func personaLabel(p Persona) string {
	if _, ok := personaInstructions[p]; ok {
		return string(p)
	}
	return "unknown"
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrPromptRequired), errors.Is(err, ErrInvalidPersona):
		return "invalid"
	case errors.Is(err, ErrEmptyCatalog):
		return "empty_catalog"
	case errors.Is(err, ErrConfiguration):
		return "config"
	case errors.Is(err, ErrUpstream):
		return "upstream"
	case errors.Is(err, ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, ErrMalformedOutput):
		return "malformed"
	}
	return "error"
}
