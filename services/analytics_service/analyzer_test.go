package analytics_service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-manager/model/store_model"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func makeOrder(id string, date time.Time, buyer, country string, subtotal, shipping string, items ...store_model.OrderItem) store_model.Order {
	return store_model.Order{
		OrderId:      id,
		Platform:     store_model.PlatformEtsy,
		OrderDate:    date,
		Status:       store_model.OrderStatusDelivered,
		Items:        items,
		BuyerName:    buyer,
		BuyerCountry: country,
		Subtotal:     d(subtotal),
		ShippingCost: d(shipping),
	}
}

func TestCalculatePeriodMetrics(t *testing.T) {
	svc := &AnalyticsService{}
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.Local)

	orders := []store_model.Order{
		makeOrder("1", time.Date(2025, 6, 1, 23, 0, 0, 0, time.Local), "Emma Smith", "US", "50.00", "5.00",
			store_model.OrderItem{ProductId: "p1", Quantity: 2, UnitPrice: d("25.00")}),
		makeOrder("2", time.Date(2025, 6, 30, 1, 0, 0, 0, time.Local), "Emma Smith", "UK", "30.00", "0.00",
			store_model.OrderItem{ProductId: "p2", Quantity: 1, UnitPrice: d("30.00")}),
		// 区间外的订单不参与统计
		makeOrder("3", time.Date(2025, 5, 31, 12, 0, 0, 0, time.Local), "John Clark", "US", "99.00", "0.00"),
		makeOrder("4", time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local), "Anna Jones", "US", "99.00", "0.00"),
	}

	m := svc.CalculatePeriodMetrics(orders, start, end)

	assert.Equal(t, 2, m.TotalOrders)
	assert.Equal(t, 3, m.TotalItemsSold)
	assert.True(t, m.GrossRevenue.Equal(d("85.00")), "毛收入 = 小计 + 运费")
	assert.True(t, m.ShippingCollected.Equal(d("5.00")))
	// 同名买家只算一个
	assert.Equal(t, 1, m.UniqueBuyers)
	assert.True(t, m.AvgOrderValue.Equal(d("42.50")))
}

func TestCalculatePeriodMetricsEmpty(t *testing.T) {
	svc := &AnalyticsService{}
	m := svc.CalculatePeriodMetrics(nil, time.Now().AddDate(0, 0, -30), time.Now())

	assert.Equal(t, 0, m.TotalOrders)
	assert.True(t, m.AvgOrderValue.IsZero(), "没有订单时平均订单金额为 0，不做除法")
	assert.True(t, m.GrossRevenue.IsZero())
}

func TestCalculatePeriodMetricsPartitionAdditivity(t *testing.T) {
	svc := &AnalyticsService{}
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	mid := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.Local)

	orders := []store_model.Order{
		makeOrder("1", time.Date(2025, 6, 3, 10, 0, 0, 0, time.Local), "Emma Smith", "US", "50.00", "5.00",
			store_model.OrderItem{ProductId: "p1", Quantity: 2, UnitPrice: d("25.00")}),
		makeOrder("2", time.Date(2025, 6, 15, 23, 0, 0, 0, time.Local), "John Clark", "UK", "30.00", "0.00",
			store_model.OrderItem{ProductId: "p2", Quantity: 1, UnitPrice: d("30.00")}),
		makeOrder("3", time.Date(2025, 6, 16, 0, 30, 0, 0, time.Local), "Anna Jones", "DE", "20.00", "3.99",
			store_model.OrderItem{ProductId: "p3", Quantity: 3, UnitPrice: d("6.50")}),
		makeOrder("4", time.Date(2025, 6, 28, 12, 0, 0, 0, time.Local), "Mia Davis", "US", "12.50", "0.00",
			store_model.OrderItem{ProductId: "p1", Quantity: 1, UnitPrice: d("12.50")}),
	}

	first := svc.CalculatePeriodMetrics(orders, start, mid)
	second := svc.CalculatePeriodMetrics(orders, mid.AddDate(0, 0, 1), end)
	whole := svc.CalculatePeriodMetrics(orders, start, end)

	// 两个相邻区间拼起来必须等于整段：每天恰好落进一个区间
	assert.Equal(t, whole.TotalOrders, first.TotalOrders+second.TotalOrders)
	assert.Equal(t, whole.TotalItemsSold, first.TotalItemsSold+second.TotalItemsSold)
	assert.True(t, whole.GrossRevenue.Equal(first.GrossRevenue.Add(second.GrossRevenue)))
	assert.True(t, whole.NetRevenue.Equal(first.NetRevenue.Add(second.NetRevenue)))
	assert.True(t, whole.ShippingCollected.Equal(first.ShippingCollected.Add(second.ShippingCollected)))
}

func TestUniqueBuyersSkipsEmptyAndIsCaseSensitive(t *testing.T) {
	svc := &AnalyticsService{}
	now := time.Now()
	orders := []store_model.Order{
		makeOrder("1", now, "emma smith", "US", "10.00", "0.00"),
		makeOrder("2", now, "Emma Smith", "US", "10.00", "0.00"),
		makeOrder("3", now, "", "US", "10.00", "0.00"),
	}

	m := svc.CalculatePeriodMetrics(orders, now.AddDate(0, 0, -1), now)
	assert.Equal(t, 2, m.UniqueBuyers)
	assert.Equal(t, 3, m.TotalOrders)
}

func TestGetTopSellersAggregation(t *testing.T) {
	svc := &AnalyticsService{}
	now := time.Now()

	orders := []store_model.Order{
		makeOrder("1", now, "A", "US", "0", "0",
			store_model.OrderItem{ProductId: "p1", ProductTitle: "Old Title", Quantity: 2, UnitPrice: d("10.00")},
			store_model.OrderItem{ProductId: "p2", ProductTitle: "Mug", Quantity: 1, UnitPrice: d("50.00")}),
		makeOrder("2", now, "B", "US", "0", "0",
			store_model.OrderItem{ProductId: "p1", ProductTitle: "New Title", Quantity: 1, UnitPrice: d("10.00")}),
	}

	top := svc.GetTopSellers(orders, 10)
	require.Len(t, top, 2)

	// p2 营收 50 > p1 营收 30
	assert.Equal(t, "p2", top[0].ProductId)
	assert.True(t, top[0].Revenue.Equal(d("50.00")))
	assert.Equal(t, "p1", top[1].ProductId)
	assert.Equal(t, 3, top[1].UnitsSold)
	assert.True(t, top[1].Revenue.Equal(d("30.00")))
	// 标题不一致时保留最后一次出现的
	assert.Equal(t, "New Title", top[1].Title)
}

func TestGetTopSellersTiesKeepFirstSeenOrder(t *testing.T) {
	svc := &AnalyticsService{}
	now := time.Now()

	orders := []store_model.Order{
		makeOrder("1", now, "A", "US", "0", "0",
			store_model.OrderItem{ProductId: "first", ProductTitle: "F", Quantity: 1, UnitPrice: d("20.00")},
			store_model.OrderItem{ProductId: "second", ProductTitle: "S", Quantity: 1, UnitPrice: d("20.00")},
			store_model.OrderItem{ProductId: "third", ProductTitle: "T", Quantity: 1, UnitPrice: d("20.00")}),
	}

	// 多跑几次确保顺序不受 map 遍历影响
	for i := 0; i < 10; i++ {
		top := svc.GetTopSellers(orders, 10)
		require.Len(t, top, 3)
		assert.Equal(t, "first", top[0].ProductId)
		assert.Equal(t, "second", top[1].ProductId)
		assert.Equal(t, "third", top[2].ProductId)
	}
}

func TestGetTopSellersLimit(t *testing.T) {
	svc := &AnalyticsService{}
	now := time.Now()

	items := make([]store_model.OrderItem, 0, 15)
	for i := 0; i < 15; i++ {
		items = append(items, store_model.OrderItem{
			ProductId: string(rune('a' + i)), Quantity: 1, UnitPrice: d("10.00"),
		})
	}
	orders := []store_model.Order{makeOrder("1", now, "A", "US", "0", "0", items...)}

	assert.Len(t, svc.GetTopSellers(orders, 3), 3)
	// limit <= 0 回落到默认 10
	assert.Len(t, svc.GetTopSellers(orders, 0), 10)
	assert.Len(t, svc.GetTopSellers(orders, -1), 10)
}

func TestGetCountryBreakdown(t *testing.T) {
	svc := &AnalyticsService{}
	now := time.Now()

	orders := []store_model.Order{
		makeOrder("1", now, "A", "US", "10", "0"),
		makeOrder("2", now, "B", "UK", "10", "0"),
		makeOrder("3", now, "C", "US", "10", "0"),
		makeOrder("4", now, "D", "", "10", "0"),
		makeOrder("5", now, "E", "DE", "10", "0"),
	}

	countries := svc.GetCountryBreakdown(orders)
	require.Len(t, countries, 3, "国家为空的订单不出现在结果里")
	assert.Equal(t, store_model.CountryCount{Country: "US", Orders: 2}, countries[0])
	// UK 和 DE 都是 1 单，保持首次出现顺序
	assert.Equal(t, "UK", countries[1].Country)
	assert.Equal(t, "DE", countries[2].Country)
}

func TestGetDailyRevenueDenseSeries(t *testing.T) {
	svc := &AnalyticsService{}
	today := time.Now()

	orders := []store_model.Order{
		makeOrder("1", today, "A", "US", "40.00", "5.00"),
		makeOrder("2", today.AddDate(0, 0, -3), "B", "US", "20.00", "0.00"),
		// 窗口之外的订单被丢弃
		makeOrder("3", today.AddDate(0, 0, -30), "C", "US", "99.00", "0.00"),
	}

	daily := svc.GetDailyRevenue(orders, 7)
	// [今天-7, 今天] 一共 8 天，每天都有条目
	require.Len(t, daily, 8)

	total := decimal.Zero
	for i, day := range daily {
		if i > 0 {
			assert.True(t, daily[i-1].Date.AddDate(0, 0, 1).Equal(day.Date), "日期连续无空洞")
		}
		total = total.Add(day.Revenue)
	}
	assert.True(t, total.Equal(d("65.00")))
	assert.True(t, daily[len(daily)-1].Revenue.Equal(d("45.00")), "今天的订单计入最后一天")
}

func TestGetDailyRevenueNoOrders(t *testing.T) {
	svc := &AnalyticsService{}

	daily := svc.GetDailyRevenue(nil, 7)
	// 没有订单也要给出完整的零值序列，前端折线图不缺点
	require.Len(t, daily, 8)
	for _, day := range daily {
		assert.True(t, day.Revenue.IsZero())
	}
}
