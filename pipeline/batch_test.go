package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-seis/well"
)

func TestRunBatch(t *testing.T) {
	p := well.NewProject("batch")

	good := layeredWell(t, "RHOB", "DT")
	require.NoError(t, p.AddWell(good))

	bad := layeredWell(t, "RHOB", "DT")
	bad.Header.Name = "NO-SHOTS-1"
	bad.Checkshots = nil
	require.NoError(t, p.AddWell(bad))

	results := RunBatch(p, baseConfig(), 4)
	require.Len(t, results, 2)

	// Names() sorts, so LAYERED-1 comes first.
	assert.Equal(t, "LAYERED-1", results[0].Well)
	require.NoError(t, results[0].Err)
	assert.NotNil(t, results[0].Result.Trace)

	assert.Equal(t, "NO-SHOTS-1", results[1].Well)
	assert.ErrorIs(t, results[1].Err, ErrNoCheckshots)
	assert.Nil(t, results[1].Result)
}

func TestRunBatchSingleWorker(t *testing.T) {
	p := well.NewProject("serial")
	require.NoError(t, p.AddWell(layeredWell(t, "RHOB", "DT")))

	results := RunBatch(p, baseConfig(), 0)
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
}
