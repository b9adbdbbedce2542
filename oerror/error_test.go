package oerror

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	require.Equal(t, "100% literal", New("100% literal").Error())
	require.Equal(t, "size 3 != 4", New("size %d != %d", 3, 4).Error())
}
