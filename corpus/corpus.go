package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/golang/glog"
	"github.com/unixpickle/essentials"
)

// Boundary is the id marking sentence edges in token, tag and gold
// sequences. Vocab never hands it out.
const Boundary = uint32(0)

var (
	ErrBadLexiconEntry = errors.New("corpus: malformed lexicon entry")
	ErrUnknownGoldTag  = errors.New("corpus: gold tag not in lexicon")
)

// IsBoundary reports whether id is the sentence boundary marker.
func IsBoundary(id uint32) bool {
	return id == Boundary
}

// Corpus is the integer encoded input of the tagger.
type Corpus struct {
	Words *Vocab
	Tags  *Vocab
	// word ids, each sentence surrounded by Boundary
	Tokens []uint32
	// gold tag ids aligned with Tokens, nil when no gold standard is loaded
	Gold []uint32
	// admissible tags of a word, in lexicon order
	TagsOf map[uint32][]uint32
	// words a tag can be emitted for
	WordsOf map[uint32][]uint32
}

func New() *Corpus {
	return &Corpus{
		Words:   NewVocab(),
		Tags:    NewVocab(),
		TagsOf:  make(map[uint32][]uint32),
		WordsOf: make(map[uint32][]uint32),
	}
}

// Load reads the corpus, the lexicon and, if goldFn is not empty, the
// gold standard.
func Load(corpusFn, lexiconFn, goldFn string) (*Corpus, error) {
	c := New()
	if err := c.LoadText(corpusFn); err != nil {
		return nil, err
	}
	if err := c.LoadLexicon(lexiconFn); err != nil {
		return nil, err
	}
	if goldFn != "" {
		if err := c.LoadGold(goldFn); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadText reads one whitespace tokenized sentence per line. Blank
// lines are skipped. The result is a flat token sequence with a
// Boundary before every sentence and after the last one.
func (this *Corpus) LoadText(fn string) (err error) {
	defer essentials.AddCtxTo("load corpus", &err)

	sentences := 0
	err = scanLines(fn, func(lineIdx int, fields []string) error {
		this.Tokens = append(this.Tokens, Boundary)
		for _, w := range fields {
			this.Tokens = append(this.Tokens, this.Words.Internalize(w))
		}
		sentences += 1
		return nil
	})
	if err != nil {
		return err
	}
	this.Tokens = append(this.Tokens, Boundary)

	log.Infof("number of sentences %d", sentences)
	log.Infof("number of tokens %d", len(this.Tokens)-sentences-1)
	log.Infof("vocabulary size %d", this.Words.Len())
	return nil
}

// LoadLexicon reads lines of the form "word - tag1 tag2 ...". Repeated
// entries for a word are merged.
func (this *Corpus) LoadLexicon(fn string) (err error) {
	defer essentials.AddCtxTo("load lexicon", &err)

	err = scanLines(fn, func(lineIdx int, fields []string) error {
		if len(fields) < 3 || fields[1] != "-" {
			return fmt.Errorf("%w: line %d: %s", ErrBadLexiconEntry,
				lineIdx, strings.Join(fields, " "))
		}
		w := this.Words.Internalize(fields[0])
		for _, name := range fields[2:] {
			this.addEntry(w, this.Tags.Internalize(name))
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Infof("number of tags %d", this.Tags.Len())
	log.V(1).Infof("lexicon entries %d", len(this.TagsOf))
	return nil
}

// LoadGold reads the gold standard: one sentence per line, tokens either
// "tag" or "word/tag". Only the part after the last "/" is used.
func (this *Corpus) LoadGold(fn string) (err error) {
	defer essentials.AddCtxTo("load gold standard", &err)

	this.Gold = nil
	err = scanLines(fn, func(lineIdx int, fields []string) error {
		this.Gold = append(this.Gold, Boundary)
		for _, tok := range fields {
			name := tok[strings.LastIndex(tok, "/")+1:]
			t, ok := this.Tags.Lookup(name)
			if !ok {
				return fmt.Errorf("%w: line %d: %q", ErrUnknownGoldTag, lineIdx, name)
			}
			this.Gold = append(this.Gold, t)
		}
		return nil
	})
	if err != nil {
		return err
	}
	this.Gold = append(this.Gold, Boundary)

	log.V(1).Infof("gold tags %d", len(this.Gold))
	return nil
}

// IsAmbiguous reports whether word w admits more than one tag.
func (this *Corpus) IsAmbiguous(w uint32) bool {
	return len(this.TagsOf[w]) > 1
}

func (this *Corpus) addEntry(w, t uint32) {
	for _, known := range this.TagsOf[w] {
		if known == t {
			return
		}
	}
	this.TagsOf[w] = append(this.TagsOf[w], t)
	this.WordsOf[t] = append(this.WordsOf[t], w)
}

// scanLines calls fn with the fields of every non-blank line of the file.
func scanLines(fn string, f func(lineIdx int, fields []string) error) error {
	file, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer file.Close()

	lineIdx := 0
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lineIdx += 1
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := f(lineIdx, fields); err != nil {
			return err
		}
	}
	return scanner.Err()
}
