package source

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMockProperties(t *testing.T) {
	for _, count := range []int{1, 5, 10, 20} {
		records := GenerateMock("golang", count)
		require.Len(t, records, count)

		for i, r := range records {
			assert.Contains(t, r.Text, "golang")
			assert.Contains(t, r.Text, fmt.Sprintf("#%d", i))
			assert.Equal(t, "en", r.Lang)
			assert.Equal(t, 2*i, r.Retweets)
			assert.Equal(t, 3*i, r.Likes)
			if i > 0 {
				assert.True(t, r.CreatedAt.Before(records[i-1].CreatedAt),
					"timestamps must be strictly decreasing")
			}
		}
	}
}

func TestGenerateMockNonPositiveCount(t *testing.T) {
	assert.Empty(t, GenerateMock("golang", 0))
	assert.Empty(t, GenerateMock("golang", -3))
}

func TestGenerateMockEmbedsQueryVerbatim(t *testing.T) {
	records := GenerateMock("rain in Mumbai", 1)
	require.Len(t, records, 1)
	assert.True(t, strings.Contains(records[0].Text, "rain in Mumbai"))
}
