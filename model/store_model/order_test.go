package store_model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestOrderDerivedFields(t *testing.T) {
	order := Order{
		OrderId:   "3001000",
		Platform:  PlatformEtsy,
		OrderDate: time.Now(),
		Status:    OrderStatusDelivered,
		Items: []OrderItem{
			{ProductId: "1001", ProductTitle: "Wooden Stand", Quantity: 2, UnitPrice: d("24.99")},
			{ProductId: "1002", ProductTitle: "Necklace", Quantity: 1, UnitPrice: d("34.50")},
		},
		Subtotal:             d("84.48"),
		ShippingCost:         d("5.99"),
		Tax:                  d("6.76"),
		Discount:             d("8.45"),
		PlatformFee:          d("5.50"),
		PaymentProcessingFee: d("2.80"),
	}

	assert.True(t, order.GrossRevenue().Equal(d("90.47")))
	assert.True(t, order.TotalFees().Equal(d("8.30")))
	// 净收入 = 毛收入 - 扣费 - 税 + 折扣
	assert.True(t, order.NetRevenue().Equal(d("83.86")))
	assert.Equal(t, 3, order.ItemCount())
}

func TestOrderItemTotalPrice(t *testing.T) {
	item := OrderItem{Quantity: 3, UnitPrice: d("15.50")}
	assert.True(t, item.TotalPrice().Equal(d("46.50")))
}

func TestNetRevenueCanGoNegative(t *testing.T) {
	order := Order{
		Subtotal:    d("10.00"),
		PlatformFee: d("12.00"),
		Tax:         d("1.00"),
	}
	assert.True(t, order.NetRevenue().LessThan(decimal.Zero))
}

func TestProductRates(t *testing.T) {
	p := Product{Views: 400, Favorites: 40, TotalSold: 8}
	assert.InDelta(t, 2.0, p.ConversionRate(), 1e-9)
	assert.InDelta(t, 10.0, p.FavoriteRate(), 1e-9)

	// 零浏览量回落到 0，不做除法
	empty := Product{}
	assert.Equal(t, 0.0, empty.ConversionRate())
	assert.Equal(t, 0.0, empty.FavoriteRate())
}

func TestProductProfitMargin(t *testing.T) {
	cost := d("10.00")
	p := Product{Price: d("25.00"), CostPrice: &cost}
	margin, ok := p.ProfitMargin()
	assert.True(t, ok)
	assert.InDelta(t, 60.0, margin, 1e-9)

	// 没有成本价时利润率未定义
	noCost := Product{Price: d("25.00")}
	_, ok = noCost.ProfitMargin()
	assert.False(t, ok)
}

func TestSEOScoreGrades(t *testing.T) {
	cases := []struct {
		title, tags, desc, engagement int
		grade                         string
	}{
		{25, 25, 25, 25, "A"},
		{25, 20, 20, 20, "A"},
		{20, 20, 20, 15, "B"},
		{15, 15, 15, 10, "C"},
		{10, 10, 10, 10, "D"},
		{5, 10, 0, 5, "F"},
	}
	for _, tc := range cases {
		s := SEOScore{
			TitleScore:       tc.title,
			TagsScore:        tc.tags,
			DescriptionScore: tc.desc,
			EngagementScore:  tc.engagement,
		}
		s.CalculateTotal()
		assert.Equal(t, tc.title+tc.tags+tc.desc+tc.engagement, s.TotalScore)
		assert.Equal(t, tc.grade, s.Grade)
	}
}

func TestRevenueChangeUndefined(t *testing.T) {
	// 没有上一周期数据
	s := StoreSummary{}
	_, ok := s.RevenueChange()
	assert.False(t, ok)

	// 上一周期毛收入为 0
	s = StoreSummary{
		CurrentPeriod:  &PeriodMetrics{GrossRevenue: d("100.00")},
		PreviousPeriod: &PeriodMetrics{GrossRevenue: decimal.Zero},
	}
	_, ok = s.RevenueChange()
	assert.False(t, ok)
}

func TestRevenueChange(t *testing.T) {
	s := StoreSummary{
		CurrentPeriod:  &PeriodMetrics{GrossRevenue: d("150.00")},
		PreviousPeriod: &PeriodMetrics{GrossRevenue: d("100.00")},
	}
	change, ok := s.RevenueChange()
	assert.True(t, ok)
	assert.InDelta(t, 50.0, change, 1e-9)
}

func TestFeePercentage(t *testing.T) {
	m := PeriodMetrics{GrossRevenue: d("200.00"), TotalFees: d("30.00")}
	assert.InDelta(t, 15.0, m.FeePercentage(), 1e-9)

	zero := PeriodMetrics{}
	assert.Equal(t, 0.0, zero.FeePercentage())
}
