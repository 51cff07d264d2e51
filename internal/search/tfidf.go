package search

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// vectorizer is a small TF-IDF model fit once on the corpus documents.
// Query vectors are produced against the same vocabulary; terms unseen
// in the corpus contribute nothing.
type vectorizer struct {
	vocabulary   map[string]int
	idf          []float64
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
}

func newVectorizer(docs []string) *vectorizer {
	v := &vectorizer{
		tokenPattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
		stopwords:    defaultStopwords(),
	}

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range v.tokenize(doc) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		v.vocabulary[term] = i
		// Smoothed IDF keeps corpus-wide terms from zeroing out.
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	return v
}

// vector computes the L2-normalized TF-IDF vector of text.
func (v *vectorizer) vector(text string) []float64 {
	vec := make([]float64, len(v.idf))
	tf := make(map[int]int)
	total := 0
	for _, tok := range v.tokenize(text) {
		if idx, ok := v.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec
	}
	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * v.idf[idx]
	}

	norm := 0.0
	for _, x := range vec {
		norm += x * x
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func (v *vectorizer) tokenize(text string) []string {
	raw := v.tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0]
	for _, t := range raw {
		if _, stop := v.stopwords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// cosine is the dot product of two vectors of equal length; with
// L2-normalized inputs this is cosine similarity.
func cosine(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else",
		"for", "to", "of", "in", "on", "at", "by", "with", "as", "is",
		"are", "was", "were", "be", "been", "being", "it", "this",
		"that", "these", "those", "from", "into", "about", "between",
		"through", "during", "before", "after", "above", "below",
		"over", "under", "than", "such", "can", "will", "not", "no",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
