package engine

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectWordCloud_Filtering(t *testing.T) {
	opts := DefaultOptions()
	freq := map[string]int{
		"education":  5,
		"tax":        9, // three letters, too short
		"with":       9, // stop word
		"committee":  9, // domain term
		"covid-19":   9, // non-letter characters
		"assessment": 2,
	}

	cloud := ProjectWordCloud(freq, opts)

	require.Len(t, cloud, 2)
	assert.Equal(t, "education", cloud[0].Word)
	assert.Equal(t, "assessment", cloud[1].Word)
}

func TestProjectWordCloud_Weights(t *testing.T) {
	opts := DefaultOptions()
	cloud := ProjectWordCloud(map[string]int{"education": 5}, opts)

	require.Len(t, cloud, 1)
	assert.InDelta(t, math.Log(6)*20, cloud[0].Weight, 0.0001)
}

func TestProjectWordCloud_OrderAndCap(t *testing.T) {
	opts := DefaultOptions()
	freq := make(map[string]int)
	base := "abcdefghijklmnopqrstuvwxyz"
	for i := 0; i < 40; i++ {
		word := fmt.Sprintf("item%c%c", base[i/26], base[i%26])
		freq[word] = i + 1
	}

	cloud := ProjectWordCloud(freq, opts)

	require.Len(t, cloud, opts.WordCloudMaxWords)
	for i := 1; i < len(cloud); i++ {
		assert.GreaterOrEqual(t, cloud[i-1].Weight, cloud[i].Weight)
	}
}

func TestProjectWordCloud_TiesSortByWord(t *testing.T) {
	opts := DefaultOptions()
	cloud := ProjectWordCloud(map[string]int{"zebra": 3, "apple": 3, "mango": 3}, opts)

	require.Len(t, cloud, 3)
	assert.Equal(t, []string{"apple", "mango", "zebra"}, []string{cloud[0].Word, cloud[1].Word, cloud[2].Word})
}

func TestProjectWordCloud_Empty(t *testing.T) {
	opts := DefaultOptions()

	assert.Empty(t, ProjectWordCloud(nil, opts))
	assert.Empty(t, ProjectWordCloud(map[string]int{"the": 100}, opts))
}
