package analytics_service

import (
	"sort"
	"time"

	"ecommerce-manager/model/store_model"
	"ecommerce-manager/utils"

	"github.com/shopspring/decimal"
)

// AnalyticsService 订单/商品数据分析引擎
// 所有方法都是纯计算：不做 IO、不持有状态、不修改入参
type AnalyticsService struct{}

// CalculatePeriodMetrics 计算 [start, end] 闭区间内的订单汇总指标
// 只按日历日期过滤，不看具体时分秒
func (s *AnalyticsService) CalculatePeriodMetrics(orders []store_model.Order, start, end time.Time) store_model.PeriodMetrics {
	gross := decimal.Zero
	fees := decimal.Zero
	net := decimal.Zero
	shipping := decimal.Zero
	totalOrders := 0
	totalItems := 0

	// 买家按名字字符串去重，大小写敏感
	// 同名不同人会被并成一个，这里只要求近似的独立买家数
	buyers := make(map[string]struct{})

	for _, o := range orders {
		if !utils.WithinDates(o.OrderDate, start, end) {
			continue
		}
		totalOrders++
		totalItems += o.ItemCount()
		gross = gross.Add(o.GrossRevenue())
		fees = fees.Add(o.TotalFees())
		net = net.Add(o.NetRevenue())
		shipping = shipping.Add(o.ShippingCost)
		if o.BuyerName != "" {
			buyers[o.BuyerName] = struct{}{}
		}
	}

	avg := decimal.Zero
	if totalOrders > 0 {
		avg = gross.Div(decimal.NewFromInt(int64(totalOrders)))
	}

	return store_model.PeriodMetrics{
		PeriodStart:       utils.DateOnly(start),
		PeriodEnd:         utils.DateOnly(end),
		TotalOrders:       totalOrders,
		TotalItemsSold:    totalItems,
		GrossRevenue:      gross,
		TotalFees:         fees,
		NetRevenue:        net,
		ShippingCollected: shipping,
		AvgOrderValue:     avg,
		UniqueBuyers:      len(buyers),
	}
}

type productStat struct {
	title   string
	units   int
	revenue decimal.Decimal
}

// GetTopSellers 按商品汇总销量并按营收降序返回前 limit 个
// 同一 product_id 出现多个标题时保留最后一次出现的标题（上游数据不一致时的既定行为，不要改）
// 营收相同的商品保持首次出现的先后顺序
func (s *AnalyticsService) GetTopSellers(orders []store_model.Order, limit int) []store_model.ProductPerformance {
	if limit <= 0 {
		limit = 10
	}

	stats := make(map[string]*productStat)
	seen := make([]string, 0)

	for _, order := range orders {
		for _, item := range order.Items {
			st, ok := stats[item.ProductId]
			if !ok {
				st = &productStat{revenue: decimal.Zero}
				stats[item.ProductId] = st
				seen = append(seen, item.ProductId)
			}
			st.title = item.ProductTitle
			st.units += item.Quantity
			st.revenue = st.revenue.Add(item.TotalPrice())
		}
	}

	// 稳定排序保证同营收商品的相对顺序不变
	sort.SliceStable(seen, func(i, j int) bool {
		return stats[seen[i]].revenue.GreaterThan(stats[seen[j]].revenue)
	})

	if len(seen) > limit {
		seen = seen[:limit]
	}

	result := make([]store_model.ProductPerformance, 0, len(seen))
	for _, pid := range seen {
		st := stats[pid]
		result = append(result, store_model.ProductPerformance{
			ProductId: pid,
			Title:     st.title,
			UnitsSold: st.units,
			Revenue:   st.revenue,
		})
	}
	return result
}

// GetCountryBreakdown 按国家统计订单数
// 国家为空的订单直接跳过；结果按订单数降序，数量相同时按首次出现顺序
func (s *AnalyticsService) GetCountryBreakdown(orders []store_model.Order) []store_model.CountryCount {
	counts := make(map[string]int)
	seen := make([]string, 0)

	for _, o := range orders {
		if o.BuyerCountry == "" {
			continue
		}
		if _, ok := counts[o.BuyerCountry]; !ok {
			seen = append(seen, o.BuyerCountry)
		}
		counts[o.BuyerCountry]++
	}

	sort.SliceStable(seen, func(i, j int) bool {
		return counts[seen[i]] > counts[seen[j]]
	})

	result := make([]store_model.CountryCount, 0, len(seen))
	for _, country := range seen {
		result = append(result, store_model.CountryCount{Country: country, Orders: counts[country]})
	}
	return result
}

// GetDailyRevenue 最近 days 天的每日毛收入
// 返回 [今天-days, 今天] 的稠密序列，没有订单的日期也会出现且为 0
// 落在窗口之外的订单静默丢弃
func (s *AnalyticsService) GetDailyRevenue(orders []store_model.Order, days int) []store_model.DailyRevenue {
	end := utils.DateOnly(time.Now())
	start := end.AddDate(0, 0, -days)

	index := make(map[string]int)
	daily := make([]store_model.DailyRevenue, 0, days+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		index[utils.FormatDate(d)] = len(daily)
		daily = append(daily, store_model.DailyRevenue{Date: d, Revenue: decimal.Zero})
	}

	for _, o := range orders {
		key := utils.FormatDate(utils.DateOnly(o.OrderDate))
		if i, ok := index[key]; ok {
			daily[i].Revenue = daily[i].Revenue.Add(o.GrossRevenue())
		}
	}

	return daily
}
