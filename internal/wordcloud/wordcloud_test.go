package wordcloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCountsSingleTokens(t *testing.T) {
	b := NewBuilder()
	counts := b.Build([]string{
		"Monsoon rains hit Mumbai",
		"monsoon flooding in Mumbai again",
	})

	assert.Equal(t, 2, counts["monsoon"])
	assert.Equal(t, 2, counts["mumbai"])
	assert.Equal(t, 1, counts["rains"])
	// "in" and "again" are stopwords
	assert.Zero(t, counts["in"])
	assert.Zero(t, counts["again"])
}

func TestBuildExcludesStopwordsAndNumbers(t *testing.T) {
	b := NewBuilder()
	counts := b.Build([]string{"the quick 42 fox and the 7 dogs"})

	assert.Zero(t, counts["the"])
	assert.Zero(t, counts["and"])
	assert.Zero(t, counts["42"])
	assert.Equal(t, 1, counts["quick"])
	assert.Equal(t, 1, counts["fox"])
}

func TestBuildLowercasesAndKeepsHashtags(t *testing.T) {
	b := NewBuilder()
	counts := b.Build([]string{"Loving #GoLang, loving GOLANG"})

	assert.Equal(t, 1, counts["#golang"])
	assert.Equal(t, 1, counts["golang"])
	assert.Equal(t, 2, counts["loving"])
}

func TestTopOrdersByCountThenWord(t *testing.T) {
	b := NewBuilderWithStopwords(nil)
	top := b.Top([]string{"bb aa bb cc aa dd"}, 3)

	require.Len(t, top, 3)
	// aa and bb tie at 2; lexical order breaks the tie
	assert.Equal(t, "aa", top[0].Word)
	assert.Equal(t, 2, top[0].Count)
	assert.Equal(t, "bb", top[1].Word)
	assert.Equal(t, "cc", top[2].Word)
}

func TestTopWithNonPositiveLimitReturnsAll(t *testing.T) {
	b := NewBuilderWithStopwords(nil)
	top := b.Top([]string{"aa bb cc"}, 0)
	assert.Len(t, top, 3)
}

func TestTokenizeDropsShortTokens(t *testing.T) {
	tokens := tokenize("a I go x yz")
	assert.ElementsMatch(t, []string{"go", "yz"}, tokens)
}
