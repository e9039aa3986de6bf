// Package pipeline provides the core encode → solve → check pipeline.
//
// This package implements the complete flow from a permutation pair to a
// verified LP solution, usable by both the CLI and the HTTP server. By
// centralizing this logic, every entry point gets the same caching and the
// same semantics.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Encode: Translate the permutation pair and objective into an LP document
//  2. Solve: Minimize the document with the CLP simplex solver
//  3. Check: Verify the solver's assignment against every constraint
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    P1:        []int{1, 3, 2},
//	    P2:        []int{2, 1, 3},
//	    Objective: "x_3 + y_3",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Solution.ObjectiveValue)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wjlenhart/minLPsolver/pkg/check"
	"github.com/wjlenhart/minLPsolver/pkg/errors"
	"github.com/wjlenhart/minLPsolver/pkg/lp"
	"github.com/wjlenhart/minLPsolver/pkg/perm"
	"github.com/wjlenhart/minLPsolver/pkg/solve"
)

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Encode options
	P1        []int  `json:"p1"`
	P2        []int  `json:"p2"`
	Objective string `json:"objective,omitempty"`

	// Stage selection
	SkipSolve bool `json:"skip_solve,omitempty"`
	SkipCheck bool `json:"skip_check,omitempty"`

	// Refresh bypasses the cache on reads (results are still stored).
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the encoded LP document.
	Document *lp.Document

	// DocumentHash is the content hash of the document.
	DocumentHash string

	// Solution is the solver outcome, nil when solving was skipped.
	Solution *solve.Result

	// Report is the feasibility report for the solution, nil when checking
	// was skipped or no solution was available to check.
	Report *check.Report

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VariableCount   int
	ConstraintCount int
	EncodeTime      time.Duration
	SolveTime       time.Duration
	CheckTime       time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	EncodeHit bool // Whether the document came from cache
	SolveHit  bool // Whether the solver result came from cache
	CheckHit  bool // Whether the feasibility report came from cache
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.P1) == 0 || len(o.P2) == 0 {
		return errors.New(errors.ErrCodeInvalidPermutation, "both permutations are required")
	}
	if err := perm.Permutation(o.P1).Validate(); err != nil {
		return err
	}
	if err := perm.Permutation(o.P2).Validate(); err != nil {
		return err
	}
	if err := perm.SameLength(perm.Permutation(o.P1), perm.Permutation(o.P2)); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
