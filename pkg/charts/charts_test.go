package charts

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"ecommerce-manager/model/store_model"
)

func TestRenderDailyRevenue(t *testing.T) {
	today := time.Now()
	series := []store_model.DailyRevenue{
		{Date: today.AddDate(0, 0, -2), Revenue: decimal.RequireFromString("10.00")},
		{Date: today.AddDate(0, 0, -1), Revenue: decimal.RequireFromString("25.50")},
		{Date: today, Revenue: decimal.Zero},
	}

	out := string(RenderDailyRevenue(series, 800, 400))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "polyline")
}

func TestRenderDailyRevenueEmpty(t *testing.T) {
	out := string(RenderDailyRevenue(nil, 800, 400))
	assert.Contains(t, out, "<svg")
	assert.NotContains(t, out, "polyline", "没有数据点就不画折线")
}

func TestRenderTopSellers(t *testing.T) {
	sellers := []store_model.ProductPerformance{
		{ProductId: "1001", Title: "Handmade Wooden Phone Stand", Revenue: decimal.RequireFromString("500.00"), UnitsSold: 20},
		{ProductId: "1002", Title: "Custom Name Necklace", Revenue: decimal.RequireFromString("120.00"), UnitsSold: 4},
	}

	out := string(RenderTopSellers(sellers, 800, 400))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Handmade Wooden Phone Stand")
	assert.Contains(t, out, "$500.00")
}

func TestRenderTopSellersEmpty(t *testing.T) {
	out := string(RenderTopSellers(nil, 800, 400))
	assert.Contains(t, out, "暂无数据")
}

func TestRenderTopSellersTruncatesLongTitle(t *testing.T) {
	long := "This Is An Extremely Long Product Title That Goes On And On"
	sellers := []store_model.ProductPerformance{
		{ProductId: "x", Title: long, Revenue: decimal.RequireFromString("10.00")},
	}
	out := string(RenderTopSellers(sellers, 800, 200))
	assert.NotContains(t, out, long)
	assert.Contains(t, out, "…")
}

func TestRenderCountryPie(t *testing.T) {
	countries := []store_model.CountryCount{
		{Country: "US", Orders: 40},
		{Country: "UK", Orders: 15},
		{Country: "DE", Orders: 5},
	}

	out := string(RenderCountryPie(countries, 600, 400))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "US (40)")
	assert.Contains(t, out, "UK (15)")
	assert.Contains(t, out, "<path")
}

func TestRenderCountryPieSingleCountryFullCircle(t *testing.T) {
	countries := []store_model.CountryCount{{Country: "US", Orders: 10}}

	out := string(RenderCountryPie(countries, 600, 400))
	// 独占 100% 时扇形退化，必须画成整圆而不是看不见的弧
	assert.Contains(t, out, "<circle")
	assert.NotContains(t, out, "<path")
	assert.Contains(t, out, "US (10)")
}

func TestRenderCountryPieEmpty(t *testing.T) {
	out := string(RenderCountryPie(nil, 600, 400))
	assert.Contains(t, out, "暂无数据")
	assert.NotContains(t, out, "<path")
}
