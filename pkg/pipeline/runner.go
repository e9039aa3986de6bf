package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wjlenhart/minLPsolver/pkg/cache"
	"github.com/wjlenhart/minLPsolver/pkg/check"
	"github.com/wjlenhart/minLPsolver/pkg/encode"
	"github.com/wjlenhart/minLPsolver/pkg/lp"
	"github.com/wjlenhart/minLPsolver/pkg/perm"
	"github.com/wjlenhart/minLPsolver/pkg/solve"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete encode → solve → check pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Encode
	encodeStart := time.Now()
	doc, encodeHit, err := r.EncodeWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Document = doc
	result.Stats.EncodeTime = time.Since(encodeStart)
	result.Stats.VariableCount = doc.NumVariables()
	result.Stats.ConstraintCount = len(doc.Inequalities) + len(doc.Equalities)
	result.CacheInfo.EncodeHit = encodeHit

	// Compute document hash for cache keys and API responses
	if data, err := doc.Marshal(); err == nil {
		result.DocumentHash = cache.Hash(data)
	}

	r.Logger.Info("encoded system",
		"variables", result.Stats.VariableCount,
		"constraints", result.Stats.ConstraintCount,
		"duration", result.Stats.EncodeTime)

	if opts.SkipSolve {
		return result, nil
	}

	// Stage 2: Solve
	solveStart := time.Now()
	solution, solveHit, err := r.SolveWithCacheInfo(ctx, doc, result.DocumentHash, opts)
	if err != nil {
		return nil, err
	}
	result.Solution = solution
	result.Stats.SolveTime = time.Since(solveStart)
	result.CacheInfo.SolveHit = solveHit

	r.Logger.Info("solved system",
		"success", solution.Success,
		"status", solution.Status,
		"duration", result.Stats.SolveTime)

	if opts.SkipCheck || !solution.Success {
		return result, nil
	}

	// Stage 3: Check
	checkStart := time.Now()
	report, checkHit, err := r.CheckWithCacheInfo(ctx, doc, result.DocumentHash, solution.VariableValues, opts)
	if err != nil {
		return nil, err
	}
	result.Report = report
	result.Stats.CheckTime = time.Since(checkStart)
	result.CacheInfo.CheckHit = checkHit

	r.Logger.Info("checked solution",
		"satisfied", report.AllSatisfied,
		"violations", len(report.Violations),
		"duration", result.Stats.CheckTime)

	return result, nil
}

// EncodeWithCacheInfo encodes the permutation pair with caching and returns
// cache hit info.
func (r *Runner) EncodeWithCacheInfo(ctx context.Context, opts Options) (*lp.Document, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	cacheKey := r.Keyer.DocumentKey(opts.P1, opts.P2, opts.Objective)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			doc, err := lp.ReadJSON(bytes.NewReader(data))
			if err == nil {
				return doc, true, nil // Cache hit
			}
		}
	}

	doc, err := encode.Encode(perm.Permutation(opts.P1), perm.Permutation(opts.P2), opts.Objective)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if data, err := doc.Marshal(); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLDocument)
	}

	return doc, false, nil // Cache miss
}

// Encode is a convenience wrapper that calls EncodeWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Encode(ctx context.Context, opts Options) (*lp.Document, error) {
	doc, _, err := r.EncodeWithCacheInfo(ctx, opts)
	return doc, err
}

// SolveWithCacheInfo minimizes the document with caching and returns cache
// hit info. The docHash keys the cache entry; pass "" to have it computed.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, doc *lp.Document, docHash string, opts Options) (*solve.Result, bool, error) {
	if docHash == "" {
		data, err := doc.Marshal()
		if err != nil {
			return nil, false, err
		}
		docHash = cache.Hash(data)
	}
	cacheKey := r.Keyer.SolutionKey(docHash)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			cached, err := solve.ReadJSON(bytes.NewReader(data))
			if err == nil {
				return cached, true, nil // Cache hit
			}
		}
	}

	result, err := solve.Minimize(doc)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(result); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLSolution)
	}

	return result, false, nil // Cache miss
}

// Solve is a convenience wrapper that calls SolveWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Solve(ctx context.Context, doc *lp.Document, opts Options) (*solve.Result, error) {
	result, _, err := r.SolveWithCacheInfo(ctx, doc, "", opts)
	return result, err
}

// CheckWithCacheInfo verifies the assignment with caching and returns cache
// hit info.
func (r *Runner) CheckWithCacheInfo(ctx context.Context, doc *lp.Document, docHash string, values map[string]float64, opts Options) (*check.Report, bool, error) {
	if docHash == "" {
		data, err := doc.Marshal()
		if err != nil {
			return nil, false, err
		}
		docHash = cache.Hash(data)
	}

	// Map keys marshal in sorted order, so the hash is deterministic.
	valuesData, err := json.Marshal(values)
	if err != nil {
		return nil, false, err
	}
	cacheKey := r.Keyer.ReportKey(docHash, cache.Hash(valuesData))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached check.Report
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, true, nil // Cache hit
			}
		}
	}

	report, err := check.Check(doc, values)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(report); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLReport)
	}

	return report, false, nil // Cache miss
}

// Check is a convenience wrapper that calls CheckWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Check(ctx context.Context, doc *lp.Document, values map[string]float64, opts Options) (*check.Report, error) {
	report, _, err := r.CheckWithCacheInfo(ctx, doc, "", values, opts)
	return report, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
