package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobonovski/bhmm/matrix"
)

func rowSum(row []float64) float64 {
	sum := 0.0
	for _, p := range row {
		sum += p
	}
	return sum
}

func TestTransitionProbs(t *testing.T) {
	m := newTestModel(t, 8)
	m.Sweep()

	probs := m.TransitionProbs()
	r, c := probs.Shape()
	assert.Equal(t, m.tagNum, r)
	assert.Equal(t, m.tagNum, c)
	for a := uint32(0); a < r; a += 1 {
		assert.InDelta(t, 1, rowSum(probs.GetRow(a)), 1e-9, "row %d", a)
	}
}

func TestEmissionProbs(t *testing.T) {
	m := newTestModel(t, 8)
	m.Sweep()

	probs := m.EmissionProbs()
	r, c := probs.Shape()
	assert.Equal(t, m.tagNum, r)
	assert.Equal(t, m.wordNum, c)
	assert.Equal(t, 0.0, rowSum(probs.GetRow(0)))
	for tag := uint32(1); tag < r; tag += 1 {
		assert.InDelta(t, 1, rowSum(probs.GetRow(tag)), 1e-9, "row %d", tag)
	}
}

func TestSaveCountsAndEstimates(t *testing.T) {
	m := newTestModel(t, 8)
	m.Sweep()
	prefix := filepath.Join(t.TempDir(), "bhmm")

	require.NoError(t, m.SaveCounts(prefix))
	require.NoError(t, m.SaveEstimates(prefix))

	tt, err := matrix.Uint32Deserialize(prefix + ".trans")
	require.NoError(t, err)
	assert.True(t, m.tt.Equal(tt))

	tw, err := matrix.Uint32Deserialize(prefix + ".emit")
	require.NoError(t, err)
	assert.True(t, m.tw.Equal(tw))

	ptrans, err := matrix.Float64Deserialize(prefix + ".ptrans")
	require.NoError(t, err)
	assert.Equal(t, m.TransitionProbs().GetRow(1), ptrans.GetRow(1))

	pemit, err := matrix.Float64Deserialize(prefix + ".pemit")
	require.NoError(t, err)
	assert.Equal(t, m.EmissionProbs().GetRow(2), pemit.GetRow(2))
}

func TestLoadCounts(t *testing.T) {
	m := newTestModel(t, 8)
	m.Sweep()
	prefix := filepath.Join(t.TempDir(), "bhmm")
	require.NoError(t, m.SaveCounts(prefix))
	require.NoError(t, m.SaveEstimates(prefix))

	c, err := LoadCounts(m.data, prefix)
	require.NoError(t, err)
	assert.True(t, m.tt.Equal(c.Trans))
	assert.True(t, m.tw.Equal(c.Emit))
	assert.Equal(t, m.TransitionProbs().GetRow(1), c.TransProbs.GetRow(1))

	other := loadCorpus(t, "a\n", "a - N\n", "")
	_, err = LoadCounts(other, prefix)
	assert.ErrorIs(t, err, ErrCountsShape)

	_, err = LoadCounts(m.data, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
