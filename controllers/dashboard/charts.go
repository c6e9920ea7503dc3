package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecommerce-manager/inout"
	"ecommerce-manager/pkg/charts"
)

const svgContentType = "image/svg+xml"

// GetDailyRevenueChart 日收入折线图（SVG）
func GetDailyRevenueChart(c *gin.Context) {
	var params inout.DashboardReq
	if err := c.ShouldBind(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	days := normalizeDays(params.Days)

	ds := loadDataset()
	orders, _ := filterByPlatform(ds, params.Platform)
	daily := analyticsService.GetDailyRevenue(orders, days)

	c.Data(http.StatusOK, svgContentType, charts.RenderDailyRevenue(daily, 720, 320))
}

// GetTopSellersChart 销量排行条形图（SVG）
func GetTopSellersChart(c *gin.Context) {
	var params inout.TopSellersReq
	if err := c.ShouldBind(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 8
	}

	ds := loadDataset()
	orders, _ := filterByPlatform(ds, params.Platform)
	sellers := analyticsService.GetTopSellers(orders, limit)

	c.Data(http.StatusOK, svgContentType, charts.RenderTopSellers(sellers, 720, 400))
}

// GetCountryChart 国家分布饼图（SVG）
func GetCountryChart(c *gin.Context) {
	var params inout.DashboardReq
	if err := c.ShouldBind(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	ds := loadDataset()
	orders, _ := filterByPlatform(ds, params.Platform)
	countries := analyticsService.GetCountryBreakdown(orders)

	c.Data(http.StatusOK, svgContentType, charts.RenderCountryPie(countries, 560, 400))
}
