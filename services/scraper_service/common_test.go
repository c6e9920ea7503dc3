package scraper_service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	cases := map[string]float64{
		"$24.99":        24.99,
		"US$ 1,299.00":  1299.00,
		"€18,50":        1850, // 欧式小数写法不做特殊处理，逗号当千分位剥掉
		"价格: $5":        5,
		"":              0,
		"Currently unavailable": 0,
	}
	for input, expected := range cases {
		assert.InDelta(t, expected, parsePrice(input), 0.001, "input=%q", input)
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 1234, parseCount("1,234 reviews"))
	assert.Equal(t, 7, parseCount("(7)"))
	assert.Equal(t, 0, parseCount("no reviews yet"))
	assert.Equal(t, 0, parseCount(""))
}

func TestTopWordsFiltersStopWordsAndShortTokens(t *testing.T) {
	titles := []string{
		"Handmade Wooden Phone Stand for Desk",
		"Wooden Phone Holder and Stand",
		"The Best Phone Stand",
	}
	words := topWords(titles, 3)
	assert.Equal(t, []string{"phone", "stand", "wooden"}, words)
}

func TestTopWordsTiesKeepFirstSeenOrder(t *testing.T) {
	titles := []string{"alpha beta", "beta alpha", "gamma alpha"}
	// alpha 3 次，beta 2 次，gamma 1 次
	for i := 0; i < 10; i++ {
		assert.Equal(t, []string{"alpha", "beta", "gamma"}, topWords(titles, 5))
	}
}

func TestTopWordsStripsPunctuation(t *testing.T) {
	words := topWords([]string{`"Handmade" Gift, (Handmade)!`}, 5)
	assert.Equal(t, []string{"handmade", "gift"}, words)
}

func TestPriceStats(t *testing.T) {
	avg, minP, maxP := priceStats([]float64{10, 0, 30, 20, -5})
	assert.InDelta(t, 20.0, avg, 0.001, "非正价格不参与统计")
	assert.InDelta(t, 10.0, minP, 0.001)
	assert.InDelta(t, 30.0, maxP, 0.001)
}

func TestPriceStatsEmpty(t *testing.T) {
	avg, minP, maxP := priceStats(nil)
	assert.Zero(t, avg)
	assert.Zero(t, minP)
	assert.Zero(t, maxP)
}
