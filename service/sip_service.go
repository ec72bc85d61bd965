package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"sip-planner/domain"
	"sip-planner/repository"
)

type Options struct {
	Currency string
	CacheTTL time.Duration
}

type SIPService struct {
	history   repository.HistoryRepository
	cache     repository.CacheRepository
	explainer Explainer
	opts      Options
	now       func() time.Time
}

// NewSIPService creates a SIPService. explainer may be nil.
func NewSIPService(
	history repository.HistoryRepository,
	cache repository.CacheRepository,
	explainer Explainer,
	opts Options,
) *SIPService {
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}
	return &SIPService{
		history:   history,
		cache:     cache,
		explainer: explainer,
		opts:      opts,
		now:       time.Now,
	}
}

// Calculate validates the request, runs the simulation and builds the report shown to the user.
func (s *SIPService) Calculate(
	ctx context.Context,
	req domain.CalculationRequest,
) (domain.Report, error) {

	if err := validateStruct("calculate", req); err != nil {
		return domain.Report{}, err
	}

	input := req.Input()
	key := cacheKey(input)

	result, cached := s.lookup(ctx, key)
	if !cached {
		var err error
		result, err = Simulate(input)
		if err != nil {
			return domain.Report{}, fmt.Errorf("calculate: %w", err)
		}
		s.store(ctx, key, result)
	}

	summary := result.Summary()
	report := domain.Report{
		ID:      uuid.NewString(),
		Request: req,
		Result:  result,
		Lines:   SummaryLines(s.opts.Currency, summary),
		Note:    CalculatorNote,
		Cached:  cached,
	}
	if s.explainer != nil {
		report.Explanation = s.explainer.ExplainPlan(ctx, req, summary)
	}

	// History is best effort.
	if err := s.history.Save(domain.Record{
		ID:        report.ID,
		CreatedAt: s.now().UTC(),
		Request:   req,
		Summary:   summary,
	}); err != nil {
		slog.Warn("failed to save calculation", "id", report.ID, "error", err)
	}

	slog.Debug("sip calculated",
		"id", report.ID,
		"years", req.Years,
		"cached", cached,
		"final_value", summary.FinalValue)

	return report, nil
}

// Series returns the simulated sequences for a request without recording it in the history.
// The chart page calls it right after Calculate, so it is normally a cache hit.
func (s *SIPService) Series(
	ctx context.Context,
	req domain.CalculationRequest,
) (domain.SimulationResult, error) {

	if err := validateStruct("series", req); err != nil {
		return domain.SimulationResult{}, err
	}

	input := req.Input()
	key := cacheKey(input)
	if result, ok := s.lookup(ctx, key); ok {
		return result, nil
	}

	result, err := Simulate(input)
	if err != nil {
		return domain.SimulationResult{}, fmt.Errorf("series: %w", err)
	}
	s.store(ctx, key, result)
	return result, nil
}

// History returns the most recent calculations, newest first.
func (s *SIPService) History(limit int) ([]domain.Record, error) {
	if limit <= 0 || limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.history.Recent(limit)
}

func (s *SIPService) lookup(ctx context.Context, key string) (domain.SimulationResult, bool) {
	if s.cache == nil {
		return domain.SimulationResult{}, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.SimulationResult{}, false
	}

	var result domain.SimulationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		slog.Warn("discarding unreadable cache entry", "key", key, "error", err)
		return domain.SimulationResult{}, false
	}
	return result, true
}

func (s *SIPService) store(ctx context.Context, key string, result domain.SimulationResult) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		slog.Warn("failed to encode result for cache", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.opts.CacheTTL); err != nil {
		slog.Warn("failed to cache result", "key", key, "error", err)
	}
}

// cacheKey identifies an input exactly; %g prints the shortest form that round-trips.
func cacheKey(in domain.SimulationInput) string {
	canonical := fmt.Sprintf("v1|%g|%d|%g|%g|%g",
		in.AnnualRate, in.Years, in.InitialContribution, in.ContributionGrowthRate, in.LumpSum)
	return strconv.FormatUint(xxhash.Sum64String(canonical), 16)
}
