package errors_test

import (
	"testing"

	"github.com/chris-alexander-pop/rstartree/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestWrapWithCause(t *testing.T) {
	cause := errors.New(errors.CodeInternal, "boom")
	err := errors.InvalidArgument("bad rect", cause)

	require.Equal(t, errors.CodeInvalidArgument, errors.CodeOf(err))
	require.NotNil(t, err.Unwrap())
	require.Contains(t, err.Error(), "bad rect")
}

func TestWrapNilCauseBehavesLikeNew(t *testing.T) {
	err := errors.InvalidConfiguration("m must be >= 1", nil)
	require.Equal(t, errors.CodeInvalidConfiguration, errors.CodeOf(err))
}

func TestCodeOfNonAppError(t *testing.T) {
	require.Equal(t, errors.Code(""), errors.CodeOf(nil))
}
