package service

import (
	"context"

	"github.com/neurotab/neurotab/extract"
	"github.com/neurotab/neurotab/matching"
	"github.com/neurotab/neurotab/matching/option"
)

// Extract converts every PDF under the source location into its JSON
// companion.
func (s *Service) Extract(ctx context.Context, req *ExtractRequest) (*ExtractResult, error) {
	opts := []extract.Option{
		extract.WithLogf(ensureLogf(req.Logf)),
	}
	if req.Workers > 0 {
		opts = append(opts, extract.WithWorkers(req.Workers))
	}
	var matchOpts []option.Option
	if len(req.Include) > 0 {
		matchOpts = append(matchOpts, option.WithInclusionPatterns(req.Include...))
	}
	if len(req.Exclude) > 0 {
		matchOpts = append(matchOpts, option.WithExclusionPatterns(req.Exclude...))
	}
	if req.MaxSizeBytes > 0 {
		matchOpts = append(matchOpts, option.WithMaxFileSize(int(req.MaxSizeBytes)))
	}
	if len(matchOpts) > 0 {
		opts = append(opts, extract.WithMatcher(matching.New(matchOpts...)))
	}

	stats := &extract.Stats{}
	summary, err := extract.New(opts...).Run(extract.WithStats(ctx, stats), req.SourceURL, req.DestURL)
	if err != nil {
		return nil, err
	}
	return &ExtractResult{Summary: summary, Stats: *stats}, nil
}
