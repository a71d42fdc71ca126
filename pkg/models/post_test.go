package models

import "testing"

func TestLabelForPolarity(t *testing.T) {
	cases := []struct {
		polarity float64
		want     string
	}{
		{0, SentimentNeutral},
		{0.5, SentimentPositive},
		{-0.3, SentimentNegative},
		{1, SentimentPositive},
		{-1, SentimentNegative},
		{0.0000001, SentimentPositive},
	}
	for _, tc := range cases {
		if got := LabelForPolarity(tc.polarity); got != tc.want {
			t.Fatalf("LabelForPolarity(%v) = %s, want %s", tc.polarity, got, tc.want)
		}
	}
}
