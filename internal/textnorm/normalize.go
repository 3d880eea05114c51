// Package textnorm cleans complaint narratives into a normalized token form.
//
// Cleaning applies, in order: lower-casing, removal of every rune that is
// neither a word character nor whitespace, whitespace tokenization, English
// stopword removal, and dictionary lemmatization. Surviving tokens are
// rejoined with single spaces.
//
// A Normalizer is safe for concurrent use by multiple goroutines.
package textnorm

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// nonWord matches every run of characters that is neither a word character
// nor whitespace. Digits survive cleaning; only punctuation is stripped.
var nonWord = regexp.MustCompile(`[^\w\s]+`)

// Normalizer holds the lemmatizer dictionary shared across Clean calls.
type Normalizer struct {
	lemmatizer *golem.Lemmatizer
}

// New creates a Normalizer backed by the English lemma dictionary.
func New() (*Normalizer, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load lemma dictionary: %w", err)
	}
	return &Normalizer{lemmatizer: lemmatizer}, nil
}

// Clean normalizes a single narrative. Empty input cleans to the empty
// string; it is never an error.
func (n *Normalizer) Clean(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(text)
	text = nonWord.ReplaceAllString(text, "")

	tokens := strings.Fields(text)
	kept := tokens[:0]
	for _, token := range tokens {
		if IsStopword(token) {
			continue
		}
		kept = append(kept, n.lemmatizer.Lemma(token))
	}

	return strings.Join(kept, " ")
}

// CleanAll normalizes every record text in place, reporting each row to
// progress if non-nil.
func (n *Normalizer) CleanAll(texts []string, progress func()) {
	for i := range texts {
		texts[i] = n.Clean(texts[i])
		if progress != nil {
			progress()
		}
	}
}
