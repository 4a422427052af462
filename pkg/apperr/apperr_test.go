package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	t.Run("typed error", func(t *testing.T) {
		assert.Equal(t, CodeNotFound, CodeOf(NotFound("booking not found")))
	})

	t.Run("wrapped typed error", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", InvalidTransition("already completed"))
		assert.Equal(t, CodeInvalidTransition, CodeOf(err))
	})

	t.Run("untyped error", func(t *testing.T) {
		assert.Equal(t, CodeUnknown, CodeOf(errors.New("boom")))
	})

	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, CodeUnknown, CodeOf(nil))
	})
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{InvalidRequest("bad input"), http.StatusBadRequest},
		{Unauthorized("not yours"), http.StatusForbidden},
		{NotFound("missing"), http.StatusNotFound},
		{InvalidTransition("already rejected"), http.StatusConflict},
		{StoreUnavailable(errors.New("conn refused")), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), "for %v", tc.err)
	}
}

func TestSafeMessage(t *testing.T) {
	t.Run("typed message passes through", func(t *testing.T) {
		assert.Equal(t, "invalid credentials", SafeMessage(Unauthorized("invalid credentials")))
	})

	t.Run("cause never leaks", func(t *testing.T) {
		err := StoreUnavailable(errors.New("dial tcp 10.0.0.3:5432: connection refused"))
		assert.Equal(t, "storage is temporarily unavailable", SafeMessage(err))
		assert.NotContains(t, SafeMessage(err), "10.0.0.3")
	})

	t.Run("untyped collapses to generic", func(t *testing.T) {
		assert.Equal(t, "something went wrong", SafeMessage(errors.New("pq: duplicate key")))
	})
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(CodeStoreUnavailable, "storage is temporarily unavailable", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "underlying")
}
