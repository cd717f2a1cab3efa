package model

import (
	"math"

	"github.com/bobonovski/bhmm/corpus"
	"github.com/bobonovski/bhmm/matrix"
)

// Evaluate computes the metrics of the current state without changing it.
func (this *BHMM) Evaluate(iteration int) Progress {
	return Progress{
		Iteration:   iteration,
		Accuracy:    Accuracy(this.data, this.tags),
		Likelihood:  this.Likelihood(),
		VI:          VariationOfInformation(this.data.Gold, this.tags, this.tagNum),
		Temperature: this.schedule.Temperature,
	}
}

// Likelihood is the log probability of the current tag sequence. Each
// non-boundary position contributes its emission and incoming
// transition probability under the current counts, its own included.
func (this *BHMM) Likelihood() float64 {
	tokens := this.data.Tokens
	sum := float64(0.0)
	for i := 1; i < len(tokens); i += 1 {
		if corpus.IsBoundary(tokens[i]) {
			continue
		}
		t := this.tags[i]
		sum += math.Log(this.emission(t, tokens[i]) * this.transition(this.tags[i-1], t))
	}
	return sum
}

// Accuracy is the percentage of ambiguous tokens whose predicted tag
// matches the gold standard. Unambiguous words are left out since they
// cannot be wrong. It is NaN when there is no gold standard or no
// ambiguous token.
func Accuracy(dat *corpus.Corpus, predicted []uint32) float64 {
	if dat.Gold == nil {
		return math.NaN()
	}
	correct, total := 0, 0
	for i, w := range dat.Tokens {
		if corpus.IsBoundary(w) || !dat.IsAmbiguous(w) {
			continue
		}
		if predicted[i] == dat.Gold[i] {
			correct += 1
		}
		total += 1
	}
	if total == 0 {
		return math.NaN()
	}
	return 100 * float64(correct) / float64(total)
}

// VariationOfInformation is the distance between the gold and the
// predicted clustering of tokens (Meila 2003), in bits. Boundary
// positions are tabulated but left out of the marginals and of the
// token count. It is 0 when one clustering is a relabeling of the
// other, and NaN without a gold standard.
func VariationOfInformation(gold, predicted []uint32, tagNum uint32) float64 {
	if gold == nil {
		return math.NaN()
	}
	cross := matrix.NewUint32Matrix(tagNum, tagNum)
	tokenNum := 0.0
	for i, p := range predicted {
		cross.Incr(gold[i], p, uint32(1))
		if !corpus.IsBoundary(p) {
			tokenNum += 1
		}
	}
	if tokenNum == 0 {
		return 0
	}

	goldMarginal := make([]float64, tagNum)
	predMarginal := make([]float64, tagNum)
	for g := uint32(1); g < tagNum; g += 1 {
		for p := uint32(1); p < tagNum; p += 1 {
			n := float64(cross.Get(g, p))
			goldMarginal[g] += n
			predMarginal[p] += n
		}
	}

	h := entropy(goldMarginal, tokenNum) + entropy(predMarginal, tokenNum)

	mi := 0.0
	for g := uint32(0); g < tagNum; g += 1 {
		for p := uint32(0); p < tagNum; p += 1 {
			joint := float64(cross.Get(g, p)) / tokenNum
			gRel := goldMarginal[g] / tokenNum
			pRel := predMarginal[p] / tokenNum
			if joint != 0 && gRel != 0 && pRel != 0 {
				mi += joint * math.Log2(joint/(gRel*pRel))
			}
		}
	}

	return math.Max(0, h-2*mi)
}

// entropy of the distribution given by counts, in bits
func entropy(counts []float64, total float64) float64 {
	h := 0.0
	for _, n := range counts {
		if n != 0 {
			p := n / total
			h -= p * math.Log2(p)
		}
	}
	return h
}
