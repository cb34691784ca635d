package mocks

import (
	"context"

	"leetcode-tracker/core/leetcode"

	"github.com/stretchr/testify/mock"
)

// Fetcher is a mock implementation of leetcode.Fetcher
type Fetcher struct {
	mock.Mock
}

var _ leetcode.Fetcher = (*Fetcher)(nil)

func (m *Fetcher) FetchFavoriteQuestions(ctx context.Context, slug leetcode.FavoriteSlug) ([]leetcode.Question, error) {
	args := m.Called(ctx, slug)
	if questions, ok := args.Get(0).([]leetcode.Question); ok {
		return questions, args.Error(1)
	}
	return nil, args.Error(1)
}
