// internal/scoring/textmatch_test.go
package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsKeyword(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		keyword  string
		expected bool
	}{
		{name: "whole word match", haystack: "fitness coach and trainer", keyword: "fitness", expected: true},
		{name: "embedded in longer word", haystack: "wearing my favorite sandal today", keyword: "scandal", expected: false},
		{name: "substring of longer word rejected", haystack: "love a good adventure", keyword: "ad", expected: false},
		{name: "short word at boundary", haystack: "paid ad below", keyword: "ad", expected: true},
		{name: "match at start of text", haystack: "gym rat since 2015", keyword: "gym", expected: true},
		{name: "match at end of text", haystack: "i live for the gym", keyword: "gym", expected: true},
		{name: "punctuation is a boundary", haystack: "tech, food, travel", keyword: "food", expected: true},
		{name: "hashtag prefix is a boundary", haystack: "posting #fitness daily", keyword: "fitness", expected: true},
		{name: "digit blocks the boundary", haystack: "fitness2023 journey", keyword: "fitness", expected: false},
		{name: "later occurrence still found", haystack: "badminton and an actual ad", keyword: "ad", expected: true},
		{name: "empty keyword", haystack: "anything", keyword: "", expected: false},
		{name: "empty haystack", haystack: "", keyword: "gym", expected: false},
		{name: "multi-word keyword", haystack: "open for a brand deal anytime", keyword: "brand deal", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, containsKeyword(tt.haystack, tt.keyword))
		})
	}
}
