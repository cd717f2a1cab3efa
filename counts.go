package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	log "github.com/golang/glog"

	"github.com/bobonovski/bhmm/config"
	"github.com/bobonovski/bhmm/corpus"
	"github.com/bobonovski/bhmm/matrix"
	"github.com/bobonovski/bhmm/model"
)

var errNoCounts = errors.New("no counts prefix configured")

// summarize prints one line per tag with its token count, the number
// of distinct words it was given to and its most probable successor,
// then the tag counts of every word in words.
func summarize(w io.Writer, configFile string, words []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if cfg.Counts == "" {
		return errNoCounts
	}
	dat, err := corpus.Load(cfg.Corpus, cfg.Lexicon, "")
	if err != nil {
		return err
	}
	log.Infof("reading count tables from %s.*", cfg.Counts)
	c, err := model.LoadCounts(dat, cfg.Counts)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(w)
	fmt.Fprintln(out, "tag\ttokens\twords\tnext")
	for t := uint32(1); t <= uint32(dat.Tags.Len()); t += 1 {
		row := c.Emit.GetRow(t)
		types := 0
		for _, n := range row {
			if n > 0 {
				types += 1
			}
		}
		next := argmax(c.TransProbs.GetRow(t))
		fmt.Fprintf(out, "%s\t%d\t%d\t%s\n",
			dat.Tags.Resolve(t), matrix.Uint32VectorSum(row), types, tagName(dat, next))
	}

	for _, word := range words {
		id, ok := dat.Words.Lookup(word)
		if !ok {
			return fmt.Errorf("unknown word %q", word)
		}
		column := c.Emit.GetCol(id)
		fmt.Fprint(out, word)
		for _, t := range dat.TagsOf[id] {
			fmt.Fprintf(out, "\t%s:%d", dat.Tags.Resolve(t), column[t])
		}
		fmt.Fprintln(out)
	}
	return out.Flush()
}

// first index of the largest element
func argmax(row []float64) uint32 {
	best := 0
	for i, p := range row {
		if p > row[best] {
			best = i
		}
	}
	return uint32(best)
}

func tagName(dat *corpus.Corpus, t uint32) string {
	if corpus.IsBoundary(t) {
		return "-"
	}
	return dat.Tags.Resolve(t)
}
