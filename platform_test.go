package rapidhex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKernelReporting(t *testing.T) {
	require.NotEmpty(t, Kernel())
	require.Contains(t, []int{8, 16, 32, 64, 128}, Width())
	t.Logf("kernel=%s width=%d", Kernel(), Width())
}
