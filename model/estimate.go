package model

import (
	"fmt"

	"github.com/bobonovski/bhmm/corpus"
	"github.com/bobonovski/bhmm/matrix"
)

// Counts holds the tables written by SaveCounts and SaveEstimates.
type Counts struct {
	Trans      *matrix.Uint32Matrix  // tag-tag transition counts
	Emit       *matrix.Uint32Matrix  // tag-word emission counts
	TransProbs *matrix.Float64Matrix // transition point estimates
}

// compute the posterior point estimation of tag-tag transitions
// alpha (Dirichlet prior) + data -> transition distribution
func (this *BHMM) TransitionProbs() *matrix.Float64Matrix {
	probs := matrix.NewFloat64Matrix(this.tagNum, this.tagNum)
	for a := uint32(0); a < this.tagNum; a += 1 {
		for b := uint32(0); b < this.tagNum; b += 1 {
			probs.Set(a, b, this.transition(a, b))
		}
	}
	return probs
}

// compute the posterior point estimation of tag-word emissions
// beta (Dirichlet prior) + data -> emission distribution. Words a
// tag cannot emit according to the lexicon get 0.
func (this *BHMM) EmissionProbs() *matrix.Float64Matrix {
	probs := matrix.NewFloat64Matrix(this.tagNum, this.wordNum)
	for t := uint32(1); t < this.tagNum; t += 1 {
		for _, w := range this.data.WordsOf[t] {
			probs.Set(t, w, this.emission(t, w))
		}
	}
	return probs
}

// serialize transition and emission count tables
func (this *BHMM) SaveCounts(prefix string) error {
	if err := matrix.Uint32Serialize(this.tt, prefix+".trans"); err != nil {
		return err
	}
	return matrix.Uint32Serialize(this.tw, prefix+".emit")
}

// serialize transition and emission point estimates
func (this *BHMM) SaveEstimates(prefix string) error {
	if err := matrix.Float64Serialize(this.TransitionProbs(), prefix+".ptrans"); err != nil {
		return err
	}
	return matrix.Float64Serialize(this.EmissionProbs(), prefix+".pemit")
}

// LoadCounts reads back the count tables and transition estimates saved
// under prefix and checks that their shapes fit the vocabularies of dat.
func LoadCounts(dat *corpus.Corpus, prefix string) (*Counts, error) {
	var c Counts
	var err error
	if c.Trans, err = matrix.Uint32Deserialize(prefix + ".trans"); err != nil {
		return nil, err
	}
	if c.Emit, err = matrix.Uint32Deserialize(prefix + ".emit"); err != nil {
		return nil, err
	}
	if c.TransProbs, err = matrix.Float64Deserialize(prefix + ".ptrans"); err != nil {
		return nil, err
	}

	tagNum := uint32(dat.Tags.Len() + 1)
	wordNum := uint32(dat.Words.Len() + 1)
	if r, cols := c.Trans.Shape(); r != tagNum || cols != tagNum {
		return nil, fmt.Errorf("%w: transitions %dx%d, %d tags", ErrCountsShape, r, cols, tagNum)
	}
	if r, cols := c.Emit.Shape(); r != tagNum || cols != wordNum {
		return nil, fmt.Errorf("%w: emissions %dx%d, %d tags, %d words", ErrCountsShape, r, cols, tagNum, wordNum)
	}
	if r, cols := c.TransProbs.Shape(); r != tagNum || cols != tagNum {
		return nil, fmt.Errorf("%w: transition estimates %dx%d, %d tags", ErrCountsShape, r, cols, tagNum)
	}
	return &c, nil
}
