package assert

import (
	"testing"

	"github.com/oomph-ac/oshape/oerror"
	"github.com/stretchr/testify/require"
)

func TestIsTrue(t *testing.T) {
	require.NotPanics(t, func() { IsTrue(true, "unreachable %d", 1) })

	defer func() {
		r := recover()
		err, ok := r.(*oerror.OomphError)
		require.True(t, ok, "expected *oerror.OomphError, got %T", r)
		require.Equal(t, "box min 2 > max 1", err.Error())
	}()
	IsTrue(false, "box min %v > max %v", 2, 1)
}
