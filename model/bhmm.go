package model

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	log "github.com/golang/glog"

	"github.com/bobonovski/bhmm/corpus"
	"github.com/bobonovski/bhmm/matrix"
)

// BHMM is the bigram Bayesian HMM of Goldwater & Griffiths (2007)
// trained with a collapsed gibbs sampler under simulated annealing.
// Words with a single admissible tag keep it; all other tokens are
// resampled once per sweep.
type BHMM struct {
	data    *corpus.Corpus
	alpha   float64 // transition hyperparameter
	beta    float64 // emission hyperparameter
	tagNum  uint32  // number of tags, boundary included
	wordNum uint32  // number of words, boundary included

	schedule   *Schedule
	debug      int
	onProgress func(Progress)
	rng        *rand.Rand

	tags  []uint32
	tt    *matrix.Uint32Matrix // tag-tag transition count table
	tts   *matrix.Uint32Matrix // transition count sum of each preceding tag
	tw    *matrix.Uint32Matrix // tag-word emission count table
	tws   *matrix.Uint32Matrix // emission count sum of each tag
	probs []float64            // candidate masses of the current position
}

// NewBHMM checks that the corpus can be tagged and draws the initial
// tag sequence.
func NewBHMM(dat *corpus.Corpus, opts Options) (*BHMM, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if err := checkCorpus(dat); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.V(1).Infof("alpha %f, beta %f, seed %d", opts.Alpha, opts.Beta, seed)
	log.V(1).Infof("decrease %d, rate %f, temperature %f, minimum %f",
		opts.Decrease, opts.Rate, opts.MaxTemp, opts.MinTemp)

	m := &BHMM{
		data:       dat,
		alpha:      opts.Alpha,
		beta:       opts.Beta,
		tagNum:     uint32(dat.Tags.Len() + 1),
		wordNum:    uint32(dat.Words.Len() + 1),
		schedule:   NewSchedule(opts.MaxTemp, opts.MinTemp, opts.Rate, opts.Decrease),
		debug:      opts.Debug,
		onProgress: opts.OnProgress,
		rng:        rand.New(rand.NewSource(seed)),
	}
	m.Init()
	return m, nil
}

func checkCorpus(dat *corpus.Corpus) error {
	n := len(dat.Tokens)
	if n == 0 || !corpus.IsBoundary(dat.Tokens[0]) || !corpus.IsBoundary(dat.Tokens[n-1]) {
		return ErrNoBoundary
	}
	for _, w := range dat.Tokens {
		if !corpus.IsBoundary(w) && len(dat.TagsOf[w]) == 0 {
			return fmt.Errorf("%w: %q", ErrUnknownWord, dat.Words.Resolve(w))
		}
	}
	if dat.Gold == nil {
		return nil
	}
	if len(dat.Gold) != n {
		return fmt.Errorf("%w: %d gold tags, %d tokens", ErrGoldLength, len(dat.Gold), n)
	}
	for i, g := range dat.Gold {
		if corpus.IsBoundary(g) != corpus.IsBoundary(dat.Tokens[i]) {
			return fmt.Errorf("%w: position %d", ErrGoldAlignment, i)
		}
	}
	return nil
}

// Init randomly assigns an admissible tag to every token and builds
// the sufficient statistics from that assignment.
func (this *BHMM) Init() {
	tokens := this.data.Tokens
	this.tags = make([]uint32, len(tokens))
	maxAmbiguity := 1
	for i, w := range tokens {
		if corpus.IsBoundary(w) {
			this.tags[i] = corpus.Boundary
			continue
		}
		admissible := this.data.TagsOf[w]
		if len(admissible) == 1 {
			this.tags[i] = admissible[0]
			continue
		}
		this.tags[i] = admissible[this.rng.Intn(len(admissible))]
		if len(admissible) > maxAmbiguity {
			maxAmbiguity = len(admissible)
		}
	}
	this.probs = make([]float64, maxAmbiguity)

	this.tt, this.tw = countTables(this.tags, tokens, this.tagNum, this.wordNum)
	this.tts = matrix.RowSums(this.tt)
	this.tws = matrix.RowSums(this.tw)

	log.V(1).Infof("tags %d, words %d, tokens %d", this.tagNum-1, this.wordNum-1, len(tokens))
}

// countTables builds the transition and emission count tables implied
// by a tag sequence in one pass.
func countTables(tags, tokens []uint32, tagNum, wordNum uint32) (tt, tw *matrix.Uint32Matrix) {
	tt = matrix.NewUint32Matrix(tagNum, tagNum)
	tw = matrix.NewUint32Matrix(tagNum, wordNum)
	for i, t := range tags {
		if i > 0 {
			tt.Incr(tags[i-1], t, uint32(1))
		}
		tw.Incr(t, tokens[i], uint32(1))
	}
	return tt, tw
}

// Train runs iter sweeps. After every sweep the annealing schedule is
// advanced, and every debug sweeps as well as after the last one the
// evaluation metrics are reported.
func (this *BHMM) Train(iter int) {
	if this.debug != 0 {
		log.V(2).Infof("iteration\taccuracy\tlikelihood\tvi\ttemperature")
	}
	for iterIdx := 0; iterIdx < iter; iterIdx += 1 {
		this.Sweep()
		this.schedule.Step(iterIdx)

		if this.debug != 0 && iterIdx%this.debug == 0 || iterIdx == iter-1 {
			p := this.Evaluate(iterIdx + 1)
			log.V(2).Infof("#%d\t%f\t%f\t%f\t%f",
				p.Iteration, p.Accuracy, p.Likelihood, p.VI, p.Temperature)
			if this.onProgress != nil {
				this.onProgress(p)
			}
		}
	}
}

// Sweep resamples every ambiguous token once, left to right. Each
// draw sees the tags its neighbours received earlier in the sweep.
func (this *BHMM) Sweep() {
	tokens := this.data.Tokens
	for i := 1; i < len(tokens)-1; i += 1 {
		w := tokens[i]
		if corpus.IsBoundary(w) || !this.data.IsAmbiguous(w) {
			continue
		}
		this.resample(i)
	}
}

func (this *BHMM) resample(i int) {
	admissible := this.data.TagsOf[this.data.Tokens[i]]

	// decrease corresponding sufficient statistics
	this.changeCount(i, false)

	probs := this.tempered(i, admissible)
	this.tags[i] = admissible[this.sampleIndex(probs)]

	// increase corresponding sufficient statistics
	this.changeCount(i, true)
}

// tempered fills the masses of the candidates at position i raised to
// 1/temperature. Powers are taken in log space and shifted so that the
// most probable candidate gets mass 1, which keeps low temperatures
// from underflowing every mass to 0.
func (this *BHMM) tempered(i int, admissible []uint32) []float64 {
	exponent := 1 / this.schedule.Temperature
	probs := this.probs[:len(admissible)]
	top := math.Inf(-1)
	for j, c := range admissible {
		probs[j] = math.Log(this.probability(i, c)) * exponent
		if probs[j] > top {
			top = probs[j]
		}
	}
	for j := range probs {
		probs[j] = math.Exp(probs[j] - top)
	}
	return probs
}

// changeCount adds or removes the two transitions and the emission
// position i takes part in.
func (this *BHMM) changeCount(i int, incr bool) {
	prev, cur, next := this.tags[i-1], this.tags[i], this.tags[i+1]
	w := this.data.Tokens[i]
	if incr {
		this.tt.Incr(prev, cur, uint32(1))
		this.tts.Incr(prev, uint32(0), uint32(1))
		this.tt.Incr(cur, next, uint32(1))
		this.tts.Incr(cur, uint32(0), uint32(1))
		this.tw.Incr(cur, w, uint32(1))
		this.tws.Incr(cur, uint32(0), uint32(1))
		return
	}
	this.tt.Decr(prev, cur, uint32(1))
	this.tts.Decr(prev, uint32(0), uint32(1))
	this.tt.Decr(cur, next, uint32(1))
	this.tts.Decr(cur, uint32(0), uint32(1))
	this.tw.Decr(cur, w, uint32(1))
	this.tws.Decr(cur, uint32(0), uint32(1))
}

// probability is the unnormalized conditional probability of tag c at
// position i, whose own counts must already be removed. When c equals
// a neighbour, the transition the candidate itself would add is
// counted in the outgoing transition term.
func (this *BHMM) probability(i int, c uint32) float64 {
	prev, next := this.tags[i-1], this.tags[i+1]
	i1, i2 := 0.0, 0.0
	if c == next {
		i1 = 1
	}
	if c == prev {
		i2 = 1
	}

	p := this.emission(c, this.data.Tokens[i])
	p *= this.transition(prev, c)
	p *= (float64(this.tt.Get(c, next)) + i1 + this.alpha) /
		(float64(this.tts.Get(c, uint32(0))) + i2 + this.alpha*float64(this.tagNum))
	return p
}

// posterior predictive probability of word w given tag t
func (this *BHMM) emission(t, w uint32) float64 {
	n := len(this.data.WordsOf[t])
	if n == 0 {
		n = 1
	}
	return (float64(this.tw.Get(t, w)) + this.beta) /
		(float64(this.tws.Get(t, uint32(0))) + this.beta*float64(n))
}

// posterior predictive probability of tag b following tag a
func (this *BHMM) transition(a, b uint32) float64 {
	return (float64(this.tt.Get(a, b)) + this.alpha) /
		(float64(this.tts.Get(a, uint32(0))) + this.alpha*float64(this.tagNum))
}

// sampleIndex draws an index with probability proportional to its
// mass. masses is overwritten with its cumulative sum. When the total
// is not a positive finite number every index is equally likely.
func (this *BHMM) sampleIndex(masses []float64) int {
	for j := 1; j < len(masses); j += 1 {
		masses[j] += masses[j-1]
	}
	last := len(masses) - 1
	total := masses[last]
	if !(total > 0) || math.IsInf(total, 1) {
		return this.rng.Intn(len(masses))
	}
	u := this.rng.Float64() * total
	for j := 0; j < last; j += 1 {
		if u < masses[j] {
			return j
		}
	}
	return last
}

// Tags returns the current tag sequence. It is owned by the sampler
// and must not be modified.
func (this *BHMM) Tags() []uint32 {
	return this.tags
}

// Temperature returns the current annealing temperature.
func (this *BHMM) Temperature() float64 {
	return this.schedule.Temperature
}
