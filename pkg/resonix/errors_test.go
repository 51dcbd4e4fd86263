package resonix_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resonix-audio/resonix-go/pkg/resonix"
	"github.com/resonix-audio/resonix-go/pkg/resonix/internal/backend"
)

func TestStatusErrPreservesSpecificCode(t *testing.T) {
	require.NoError(t, resonix.StatusErr(backend.StatusOK))

	err := resonix.StatusErr(backend.StatusChannelStolen)
	require.Error(t, err)
	var e resonix.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, resonix.CodeChannelStolen, e.Code)
}

func TestSentinelComparison(t *testing.T) {
	err := resonix.StatusErr(backend.StatusNotReady)
	assert.ErrorIs(t, err, resonix.ErrNotReady)
	assert.NotErrorIs(t, err, resonix.ErrTruncated)

	wrapped := fmt.Errorf("polling open state: %w", err)
	assert.ErrorIs(t, wrapped, resonix.ErrNotReady)
}

func TestErrorMessageNamesCondition(t *testing.T) {
	assert.Equal(t, "resonix: invalid resource handle", resonix.ErrInvalidHandle.Error())
	assert.Equal(t, "resonix: native engine not built into this binary",
		resonix.ErrNotBuilt.Error())
}

func TestResultStatusRoundTrip(t *testing.T) {
	assert.Equal(t, backend.StatusOK, resonix.ResultStatus(nil))
	assert.Equal(t, backend.StatusFileEOF, resonix.ResultStatus(resonix.ErrFileEOF))
	assert.Equal(t, backend.StatusNotReady,
		resonix.ResultStatus(fmt.Errorf("wrapped: %w", resonix.ErrNotReady)))

	// Errors with no native code collapse to the nearest member of the
	// closed set.
	assert.Equal(t, backend.StatusInvalidParam,
		resonix.ResultStatus(errors.New("handler-local failure")))
}

func TestEveryStatusHasDistinctMessage(t *testing.T) {
	seen := map[string]backend.Status{}
	for st := backend.Status(0); int32(st) < backend.Count(); st++ {
		msg := st.String()
		assert.NotContains(t, msg, "Status(", "status %d has no message", st)
		prev, dup := seen[msg]
		assert.False(t, dup, "status %d repeats the message of %d", st, prev)
		seen[msg] = st
	}
}

func TestInvalidEnumErrorMessage(t *testing.T) {
	err := &resonix.InvalidEnumError{Name: "OpenState", Value: 99}
	assert.Equal(t, "resonix: no discriminant in OpenState matches value 99", err.Error())
}
