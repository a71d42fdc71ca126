// Package wordcloud builds the token-frequency surface behind the word
// cloud. Frequencies are single-token only; multi-word phrase detection is
// deliberately disabled.
package wordcloud

import (
	"sort"
	"strings"
	"unicode"

	"github.com/sudhansukumar01234-source/twitter-analysis/pkg/models"
)

// Builder counts token frequencies over a set of texts, excluding a
// stopword set.
type Builder struct {
	stopwords map[string]struct{}
}

// NewBuilder returns a builder with the standard English stopword set.
func NewBuilder() *Builder {
	return &Builder{stopwords: defaultStopwords}
}

// NewBuilderWithStopwords returns a builder with a caller-supplied set.
func NewBuilderWithStopwords(words []string) *Builder {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Builder{stopwords: set}
}

// Build joins all texts with a single separator, tokenizes, and counts each
// surviving token.
func (b *Builder) Build(texts []string) map[string]int {
	joined := strings.Join(texts, " ")

	counts := make(map[string]int)
	for _, token := range tokenize(joined) {
		if _, skip := b.stopwords[token]; skip {
			continue
		}
		counts[token]++
	}
	return counts
}

// Top returns the n most frequent tokens in descending order, ties broken
// lexically. n <= 0 returns all tokens.
func (b *Builder) Top(texts []string, n int) []models.WordCount {
	counts := b.Build(texts)

	words := make([]models.WordCount, 0, len(counts))
	for word, count := range counts {
		words = append(words, models.WordCount{Word: word, Count: count})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})

	if n > 0 && len(words) > n {
		words = words[:n]
	}
	return words
}

// tokenize lowercases and splits on anything that is not a letter, digit,
// apostrophe or hashtag marker. Single-rune tokens and pure numbers are
// dropped.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '#'
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if len([]rune(f)) < 2 {
			continue
		}
		if isNumeric(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
