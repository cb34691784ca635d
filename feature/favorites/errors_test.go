package favorites

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"leetcode-tracker/core/leetcode"
	"leetcode-tracker/core/snapshot"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"Nil", nil, ""},
		{"Wrapped", &Error{Kind: KindWrite, Op: "write", Err: errors.New("disk full")}, KindWrite},
		{"FetchError", fmt.Errorf("outer: %w", &leetcode.FetchError{Reason: "x"}), KindFetch},
		{"ReadError", &snapshot.ReadError{Path: "p", Err: errors.New("bad")}, KindSnapshotRead},
		{"WriteError", &snapshot.WriteError{Path: "p", Err: errors.New("bad")}, KindWrite},
		{"Plain", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKind_StatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindInvalidInput.StatusCode())
	assert.Equal(t, http.StatusBadGateway, KindFetch.StatusCode())
	assert.Equal(t, http.StatusUnprocessableEntity, KindSnapshotRead.StatusCode())
	assert.Equal(t, http.StatusInternalServerError, KindWrite.StatusCode())
	assert.Equal(t, http.StatusInternalServerError, KindUnknown.StatusCode())
}

func TestError_Message(t *testing.T) {
	err := &Error{Kind: KindFetch, Op: "fetch questions", Err: errors.New("timeout")}
	assert.Equal(t, "fetch questions: timeout", err.Error())
	assert.Equal(t, "timeout", errors.Unwrap(err).Error())
}
