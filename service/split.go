package service

import (
	"context"

	"github.com/neurotab/neurotab/sections"
)

// Article splits the revised article JSON into one file per section.
func (s *Service) Article(ctx context.Context, req *SplitRequest) (*SplitResult, error) {
	splitter := sections.New(sections.WithLogf(ensureLogf(req.Logf)))
	split, err := splitter.SplitArticleFile(ctx, req.SourceURL, req.DestURL)
	if err != nil {
		return nil, err
	}
	return splitResult(split), nil
}

// Reviews splits the decision letter JSON into reviewer blocks and one file
// per numbered comment.
func (s *Service) Reviews(ctx context.Context, req *SplitRequest) (*SplitResult, error) {
	splitter := sections.New(sections.WithLogf(ensureLogf(req.Logf)))
	split, err := splitter.SplitReviewsFile(ctx, req.SourceURL, req.DestURL)
	if err != nil {
		return nil, err
	}
	return splitResult(split), nil
}

func splitResult(split []sections.Section) *SplitResult {
	ret := &SplitResult{}
	for _, section := range split {
		ret.Files = append(ret.Files, section.FileName())
	}
	return ret
}
