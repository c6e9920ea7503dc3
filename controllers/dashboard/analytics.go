package dashboard

import (
	"time"

	"github.com/gin-gonic/gin"

	"ecommerce-manager/inout"
	"ecommerce-manager/model/store_model"
	"ecommerce-manager/utils"
)

func toPeriodRep(m *store_model.PeriodMetrics) *inout.PeriodMetricsRep {
	if m == nil {
		return nil
	}
	return &inout.PeriodMetricsRep{
		PeriodStart:       utils.FormatDate(m.PeriodStart),
		PeriodEnd:         utils.FormatDate(m.PeriodEnd),
		TotalOrders:       m.TotalOrders,
		TotalItemsSold:    m.TotalItemsSold,
		GrossRevenue:      m.GrossRevenue.InexactFloat64(),
		TotalFees:         m.TotalFees.InexactFloat64(),
		NetRevenue:        m.NetRevenue.InexactFloat64(),
		ShippingCollected: m.ShippingCollected.InexactFloat64(),
		AvgOrderValue:     m.AvgOrderValue.InexactFloat64(),
		UniqueBuyers:      m.UniqueBuyers,
		FeePercentage:     m.FeePercentage(),
	}
}

func toSummaryRep(s store_model.StoreSummary) inout.SummaryRep {
	rep := inout.SummaryRep{
		Platform:              string(s.Platform),
		StoreName:             s.StoreName,
		ReportDate:            utils.FormatDate(s.ReportDate),
		CurrentPeriod:         toPeriodRep(s.CurrentPeriod),
		PreviousPeriod:        toPeriodRep(s.PreviousPeriod),
		TopSellers:            make([]inout.TopSellerRep, 0, len(s.TopSellers)),
		LowStockProducts:      s.LowStockProducts,
		OutOfStockProducts:    s.OutOfStockProducts,
		TotalActiveListings:   s.TotalActiveListings,
		TotalViews:            s.TotalViews,
		OverallConversionRate: s.OverallConversionRate,
	}
	if change, ok := s.RevenueChange(); ok {
		rep.RevenueChange = &change
	}
	for _, ts := range s.TopSellers {
		rep.TopSellers = append(rep.TopSellers, inout.TopSellerRep{
			ProductId: ts.ProductId,
			Title:     ts.Title,
			UnitsSold: ts.UnitsSold,
			Revenue:   ts.Revenue.InexactFloat64(),
		})
	}
	return rep
}

// GetSummary 获取店铺周期对比汇总
func GetSummary(c *gin.Context) {
	var params inout.DashboardReq
	if err := c.ShouldBind(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	days := normalizeDays(params.Days)

	store := params.Store
	if store == "" {
		store = "我的店铺"
	}

	// 汇总结果按天数/平台维度缓存
	cacheKey := summaryCacheKey(params.Platform, store, days)
	if cacheManager != nil {
		var cached inout.SummaryRep
		if err := cacheManager.Get(c.Request.Context(), cacheKey, &cached); err == nil {
			Resp.Succ(c, cached)
			return
		}
	}

	ds := loadDataset()
	summary := analyticsService.BuildStoreSummary(
		ds.Orders, ds.Products, store_model.Platform(params.Platform), store, days)
	rep := toSummaryRep(summary)

	if cacheManager != nil {
		cacheManager.Set(c.Request.Context(), cacheKey, rep, 5*time.Minute)
	}
	Resp.Succ(c, rep)
}

// GetDailyRevenue 获取逐日收入序列（无空洞）
func GetDailyRevenue(c *gin.Context) {
	var params inout.DashboardReq
	if err := c.ShouldBind(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	days := normalizeDays(params.Days)

	ds := loadDataset()
	orders, _ := filterByPlatform(ds, params.Platform)

	daily := analyticsService.GetDailyRevenue(orders, days)
	items := make([]inout.DailyRevenueRep, 0, len(daily))
	for _, d := range daily {
		items = append(items, inout.DailyRevenueRep{
			Date:    utils.FormatDate(d.Date),
			Revenue: d.Revenue.InexactFloat64(),
		})
	}
	Resp.Succ(c, items)
}

// GetTopSellers 获取销量排行
func GetTopSellers(c *gin.Context) {
	var params inout.TopSellersReq
	if err := c.ShouldBind(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 10
	}

	ds := loadDataset()
	orders, _ := filterByPlatform(ds, params.Platform)

	sellers := analyticsService.GetTopSellers(orders, limit)
	items := make([]inout.TopSellerRep, 0, len(sellers))
	for _, ts := range sellers {
		items = append(items, inout.TopSellerRep{
			ProductId: ts.ProductId,
			Title:     ts.Title,
			UnitsSold: ts.UnitsSold,
			Revenue:   ts.Revenue.InexactFloat64(),
		})
	}
	Resp.Succ(c, items)
}

// GetCountries 获取国家订单分布，按订单数降序
func GetCountries(c *gin.Context) {
	var params inout.DashboardReq
	if err := c.ShouldBind(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	ds := loadDataset()
	orders, _ := filterByPlatform(ds, params.Platform)

	countries := analyticsService.GetCountryBreakdown(orders)
	items := make([]inout.CountryRep, 0, len(countries))
	for _, cc := range countries {
		items = append(items, inout.CountryRep{Country: cc.Country, Orders: cc.Orders})
	}
	Resp.Succ(c, items)
}
