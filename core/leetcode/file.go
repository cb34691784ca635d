package leetcode

import (
	"context"
	"os"
)

// FileFetcher serves a saved favoriteQuestionList response from disk, for
// offline reconciliation and debugging.
type FileFetcher struct {
	Path string
}

var _ Fetcher = (*FileFetcher)(nil)

// FetchFavoriteQuestions decodes the saved response. The slug is only used
// for error reporting.
func (f *FileFetcher) FetchFavoriteQuestions(ctx context.Context, slug FavoriteSlug) ([]Question, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, &FetchError{Slug: slug, Reason: "open saved response " + f.Path, Err: err}
	}
	defer file.Close()

	questions, decodeErr := decodeQuestions(file)
	if decodeErr != nil {
		decodeErr.Slug = slug
		return nil, decodeErr
	}
	return questions, nil
}
