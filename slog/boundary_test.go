package slog_test

import (
	"bytes"
	"errors"
	stdslog "log/slog"
	"testing"

	"github.com/fwojciec/htmlmd"
	"github.com/fwojciec/htmlmd/mock"
	htmlmdslog "github.com/fwojciec/htmlmd/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingBoundary_Convert(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the conversion", func(t *testing.T) {
		t.Parallel()

		next := &mock.Boundary{
			ConvertFn: func(html string) (*htmlmd.Buffer, error) {
				return htmlmd.NewBuffer([]byte("# Hi"), nil), nil
			},
		}

		var out bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&out, nil))
		boundary := htmlmdslog.NewLoggingBoundary(next, logger)

		buf, err := boundary.Convert("<h1>Hi</h1>")

		require.NoError(t, err)
		require.NotNil(t, buf)
		assert.Equal(t, "# Hi", buf.String())
		require.NoError(t, buf.Release())

		assert.Contains(t, out.String(), "conversion")
		assert.Contains(t, out.String(), "in_bytes=11")
		assert.Contains(t, out.String(), "out_bytes=4")
	})

	t.Run("logs failures and passes them through", func(t *testing.T) {
		t.Parallel()

		next := &mock.Boundary{
			ConvertFn: func(html string) (*htmlmd.Buffer, error) {
				return nil, errors.New("boom")
			},
		}

		var out bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&out, nil))
		boundary := htmlmdslog.NewLoggingBoundary(next, logger)

		buf, err := boundary.Convert("<h1>Hi</h1>")

		require.Error(t, err)
		assert.Nil(t, buf)
		assert.Contains(t, out.String(), "err=boom")
	})
}
