package corpus

import (
	"bufio"
	"io"
	"os"

	"github.com/unixpickle/essentials"
)

// WriteTagged writes the tag sequence to fn as "word/tag" tokens, one
// sentence per line.
func (this *Corpus) WriteTagged(fn string, tags []uint32) (err error) {
	defer essentials.AddCtxTo("write tagged corpus", &err)

	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := this.FormatTagged(f, tags); err != nil {
		return err
	}
	return f.Close()
}

// FormatTagged writes the tagged sentences to w. Every Boundary after
// the leading one ends a line.
func (this *Corpus) FormatTagged(w io.Writer, tags []uint32) error {
	bw := bufio.NewWriter(w)
	lineStart := true
	for i := 1; i < len(tags) && i < len(this.Tokens); i += 1 {
		if IsBoundary(tags[i]) {
			bw.WriteByte('\n')
			lineStart = true
			continue
		}
		if !lineStart {
			bw.WriteByte(' ')
		}
		bw.WriteString(this.Words.Resolve(this.Tokens[i]))
		bw.WriteByte('/')
		bw.WriteString(this.Tags.Resolve(tags[i]))
		lineStart = false
	}
	return bw.Flush()
}
