package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateGoldAgainstItself(t *testing.T) {
	dat := loadCorpus(t, testText, testLexicon, testGold)
	tagNum := uint32(dat.Tags.Len() + 1)

	assert.Equal(t, float64(100), Accuracy(dat, dat.Gold))
	assert.InDelta(t, 0, VariationOfInformation(dat.Gold, dat.Gold, tagNum), 1e-12)
}

func TestAccuracy(t *testing.T) {
	dat := loadCorpus(t, "a b b\n", "a - N\nb - N V\n", "N V N\n")
	n, _ := dat.Tags.Lookup("N")
	v, _ := dat.Tags.Lookup("V")

	// the unambiguous word is left out
	assert.Equal(t, float64(50), Accuracy(dat, []uint32{0, n, v, v, 0}))
	assert.Equal(t, float64(0), Accuracy(dat, []uint32{0, n, n, v, 0}))

	dat.Gold = nil
	assert.True(t, math.IsNaN(Accuracy(dat, []uint32{0, n, v, n, 0})))
}

func TestAccuracyFraction(t *testing.T) {
	dat := loadCorpus(t, "b b b\n", "b - N V\n", "N N N\n")
	n, _ := dat.Tags.Lookup("N")
	v, _ := dat.Tags.Lookup("V")

	assert.InDelta(t, 200.0/3, Accuracy(dat, []uint32{0, n, n, v, 0}), 1e-12)
}

func TestVariationOfInformation(t *testing.T) {
	gold := []uint32{0, 1, 1, 2, 3, 0, 2, 0}

	// relabeling
	relabeled := []uint32{0, 3, 3, 1, 2, 0, 1, 0}
	assert.InDelta(t, 0, VariationOfInformation(gold, relabeled, 4), 1e-12)

	// one cluster against two equally sized ones
	gold = []uint32{0, 1, 1, 2, 2, 0}
	merged := []uint32{0, 1, 1, 1, 1, 0}
	assert.InDelta(t, 1, VariationOfInformation(gold, merged, 3), 1e-12)
	assert.InDelta(t, 1, VariationOfInformation(merged, gold, 3), 1e-12)

	// independent clusterings
	gold = []uint32{0, 1, 1, 2, 2, 0}
	crossed := []uint32{0, 1, 2, 1, 2, 0}
	assert.InDelta(t, 2, VariationOfInformation(gold, crossed, 3), 1e-12)

	assert.Equal(t, float64(0), VariationOfInformation([]uint32{0}, []uint32{0}, 1))
	assert.True(t, math.IsNaN(VariationOfInformation(nil, crossed, 3)))
}

func TestVariationOfInformationNonNegative(t *testing.T) {
	m := newTestModel(t, 17)
	for iter := 0; iter < 10; iter += 1 {
		m.Sweep()
		assert.True(t, VariationOfInformation(m.data.Gold, m.tags, m.tagNum) >= 0)
	}
}

func TestLikelihoodDoesNotMutate(t *testing.T) {
	m := newTestModel(t, 2)
	m.Sweep()
	tags := append([]uint32(nil), m.Tags()...)

	first := m.Likelihood()
	p := m.Evaluate(1)

	require.Equal(t, tags, m.Tags())
	assertConsistent(t, m)
	assert.Equal(t, first, p.Likelihood)
	assert.False(t, math.IsInf(first, 0) || math.IsNaN(first))
	assert.Equal(t, 1, p.Iteration)
	assert.Equal(t, m.Temperature(), p.Temperature)
}
