package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ecommerce-manager/controllers/dashboard"
	"ecommerce-manager/controllers/health"
	"ecommerce-manager/middleware"
	"ecommerce-manager/pkg/monitoring"
)

// Init 注册全部路由
func Init(r *gin.Engine) {
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())
	r.Use(middleware.ErrorHandler())
	r.Use(monitoring.PrometheusMiddleware())

	healthController := health.NewHealthController()
	r.GET("/health", healthController.CheckHealth)
	r.GET("/health/live", healthController.CheckLiveness)
	r.GET("/health/ready", healthController.CheckReadiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		dashboardGroup := api.Group("/dashboard")
		{
			dashboardGroup.GET("/summary", dashboard.GetSummary)
			dashboardGroup.GET("/daily-revenue", dashboard.GetDailyRevenue)
			dashboardGroup.GET("/top-sellers", dashboard.GetTopSellers)
			dashboardGroup.GET("/countries", dashboard.GetCountries)
			dashboardGroup.GET("/alerts", dashboard.GetAlerts)
			dashboardGroup.POST("/refresh", dashboard.RefreshData)

			dashboardGroup.GET("/charts/daily-revenue.svg", dashboard.GetDailyRevenueChart)
			dashboardGroup.GET("/charts/top-sellers.svg", dashboard.GetTopSellersChart)
			dashboardGroup.GET("/charts/countries.svg", dashboard.GetCountryChart)
		}

		seoGroup := api.Group("/seo")
		{
			seoGroup.GET("/scores", dashboard.GetSEOScores)
			seoGroup.GET("/scores/:id", dashboard.GetSEOScore)
			seoGroup.GET("/optimize/:id", dashboard.OptimizeListing)
		}

		api.GET("/scrape/search", dashboard.ScrapeSearch)
	}
}
