package leetcode_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"leetcode-tracker/core/leetcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFetcher(t *testing.T) {
	dir := t.TempDir()

	t.Run("Saved", func(t *testing.T) {
		path := filepath.Join(dir, "saved.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"data":{"favoriteQuestionList":{"questions":[{"title":"A","titleSlug":"a","difficulty":"Hard"}]}}}`), 0o644))

		f := &leetcode.FileFetcher{Path: path}
		questions, err := f.FetchFavoriteQuestions(context.Background(), "x")
		require.NoError(t, err)
		assert.Equal(t, []leetcode.Question{{Title: "A", TitleSlug: "a", Difficulty: "Hard"}}, questions)
	})

	t.Run("Missing", func(t *testing.T) {
		f := &leetcode.FileFetcher{Path: filepath.Join(dir, "nope.json")}
		_, err := f.FetchFavoriteQuestions(context.Background(), "x")

		var fetchErr *leetcode.FetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestDecodeFavoriteQuestionList(t *testing.T) {
	_, err := leetcode.DecodeFavoriteQuestionList(strings.NewReader(`{"data":{}}`))
	assert.Error(t, err)

	questions, err := leetcode.DecodeFavoriteQuestionList(strings.NewReader(`{"data":{"favoriteQuestionList":{"questions":[]}}}`))
	require.NoError(t, err)
	assert.NotNil(t, questions)
	assert.Empty(t, questions)
}
