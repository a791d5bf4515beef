package cmd

import (
	"strconv"
	"testing"

	"github.com/huangsam/gad/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoDetectFlagOptionalValue(t *testing.T) {
	f := rootCmd.Flags().Lookup("auto-detect")
	require.NotNil(t, f)

	// The bare -A form falls back to the default count, and the help text
	// spells out the -A[=N] syntax that pflag requires for the valued form.
	assert.Equal(t, strconv.Itoa(contract.DefaultAutoDetectCount), f.NoOptDefVal)
	assert.Contains(t, f.Usage, "-A[=N]")
}
