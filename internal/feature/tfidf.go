// Package feature builds sparse TF-IDF representations of cleaned narratives.
//
// The vectorizer follows the usual fit/transform contract: Fit learns the
// vocabulary and document frequencies from the training partition only, and
// Transform maps any text onto that frozen vocabulary. Out-of-vocabulary
// terms are dropped from their row.
package feature

import (
	"math"
	"sort"
	"strings"

	"github.com/kgrange/tagwise/internal/common"
	"github.com/kgrange/tagwise/internal/textnorm"
)

// Options configures a Vectorizer.
type Options struct {
	// MinDF drops terms appearing in fewer than this many training documents.
	MinDF int
	// MaxDFRatio drops terms appearing in more than this fraction of
	// training documents.
	MaxDFRatio float64
	// MaxFeatures bounds the vocabulary size; the most frequent terms win.
	MaxFeatures int
	// NgramMax is the largest n-gram length; 2 means unigrams and bigrams.
	NgramMax int
	// Sublinear replaces raw term frequency with 1 + ln(tf).
	Sublinear bool
}

// DefaultOptions returns the vectorizer settings used by the pipeline.
func DefaultOptions() Options {
	return Options{
		MinDF:       5,
		MaxDFRatio:  0.50,
		MaxFeatures: 10000,
		NgramMax:    2,
		Sublinear:   true,
	}
}

// Vectorizer converts text into L2-normalized TF-IDF vectors over a
// vocabulary learned once from training text.
type Vectorizer struct {
	vocab  map[string]int
	terms  []string
	idf    []float64
	opts   Options
	fitted bool
}

// NewVectorizer creates an unfitted vectorizer.
func NewVectorizer(opts Options) *Vectorizer {
	return &Vectorizer{opts: opts}
}

// Fit learns the vocabulary and inverse document frequencies from docs.
// Fitting twice is an error; the vocabulary is frozen after the first call.
func (v *Vectorizer) Fit(docs []string) error {
	if v.fitted {
		return common.ErrAlreadyFitted
	}
	if len(docs) == 0 {
		return common.ErrEmptyDataset
	}

	docFreq := make(map[string]int)
	termCount := make(map[string]int)
	for _, doc := range docs {
		terms := v.ngrams(doc)
		seen := make(map[string]struct{}, len(terms))
		for _, term := range terms {
			termCount[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				docFreq[term]++
			}
		}
	}

	maxDF := int(v.opts.MaxDFRatio * float64(len(docs)))
	candidates := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if df < v.opts.MinDF || df > maxDF {
			continue
		}
		candidates = append(candidates, term)
	}

	if v.opts.MaxFeatures > 0 && len(candidates) > v.opts.MaxFeatures {
		// Keep the most frequent terms; ties break alphabetically so the
		// vocabulary is deterministic.
		sort.Slice(candidates, func(i, j int) bool {
			ci, cj := termCount[candidates[i]], termCount[candidates[j]]
			if ci != cj {
				return ci > cj
			}
			return candidates[i] < candidates[j]
		})
		candidates = candidates[:v.opts.MaxFeatures]
	}
	sort.Strings(candidates)

	v.terms = candidates
	v.vocab = make(map[string]int, len(candidates))
	v.idf = make([]float64, len(candidates))
	n := float64(len(docs))
	for i, term := range candidates {
		v.vocab[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
	v.fitted = true

	return nil
}

// Transform maps docs onto the fitted vocabulary. Each row is L2-normalized;
// rows with no in-vocabulary terms come out empty.
func (v *Vectorizer) Transform(docs []string) ([]Vector, error) {
	if !v.fitted {
		return nil, common.ErrNotFitted
	}

	rows := make([]Vector, len(docs))
	for i, doc := range docs {
		counts := make(map[int]float64)
		for _, term := range v.ngrams(doc) {
			if col, ok := v.vocab[term]; ok {
				counts[col]++
			}
		}
		for col, tf := range counts {
			if v.opts.Sublinear {
				tf = 1 + math.Log(tf)
			}
			counts[col] = tf * v.idf[col]
		}
		row := NewVector(counts)
		if norm := row.Norm(); norm > 0 {
			row.scale(1 / norm)
		}
		rows[i] = row
	}

	return rows, nil
}

// FitTransform fits on docs and returns their vectors.
func (v *Vectorizer) FitTransform(docs []string) ([]Vector, error) {
	if err := v.Fit(docs); err != nil {
		return nil, err
	}
	return v.Transform(docs)
}

// Vocabulary returns the fitted terms in column order.
func (v *Vectorizer) Vocabulary() []string {
	return v.terms
}

// ngrams tokenizes a cleaned document and expands it into n-gram terms up to
// NgramMax. Stopwords are filtered again here so the vectorizer holds its
// own contract even on text that skipped normalization.
func (v *Vectorizer) ngrams(doc string) []string {
	fields := strings.Fields(strings.ToLower(doc))
	tokens := fields[:0]
	for _, tok := range fields {
		if !textnorm.IsStopword(tok) {
			tokens = append(tokens, tok)
		}
	}

	terms := make([]string, 0, len(tokens)*v.opts.NgramMax)
	for n := 1; n <= v.opts.NgramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}
