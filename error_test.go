package wpsignals_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/wpsignals"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := wpsignals.Errorf(wpsignals.ENOTFOUND, "file %q not found", "index.html")

	assert.Equal(t, wpsignals.ENOTFOUND, wpsignals.ErrorCode(err))
	assert.Equal(t, "file \"index.html\" not found", wpsignals.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wpsignals.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wpsignals.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("analyzing: %w", wpsignals.Errorf(wpsignals.EINVALID, "bad url"))

	assert.Equal(t, wpsignals.EINVALID, wpsignals.ErrorCode(err))
	assert.Equal(t, "bad url", wpsignals.ErrorMessage(err))
}

func TestErrorCode_InfrastructureError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection reset")

	assert.Equal(t, wpsignals.EINTERNAL, wpsignals.ErrorCode(err))
	assert.Equal(t, "Internal error.", wpsignals.ErrorMessage(err))
}
