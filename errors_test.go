package htmlmd_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/htmlmd"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := htmlmd.Errorf(htmlmd.ECONVERSION, "conversion failed: %v", "unbalanced markup")

	assert.Equal(t, htmlmd.ECONVERSION, htmlmd.ErrorCode(err))
	assert.Equal(t, "conversion failed: unbalanced markup", htmlmd.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, htmlmd.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, htmlmd.EINTERNAL, htmlmd.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, htmlmd.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", htmlmd.ErrorMessage(errors.New("boom")))
}
