package dashboard

import (
	"time"

	"github.com/gin-gonic/gin"

	"ecommerce-manager/config"
	"ecommerce-manager/inout"
	"ecommerce-manager/services/scraper_service"
)

// ScrapeSearch 竞品搜索：抓取平台搜索结果并返回价格/关键词统计
func ScrapeSearch(c *gin.Context) {
	var params inout.ScrapeReq
	if err := c.ShouldBind(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	maxPages := params.MaxPages
	delay := 2 * time.Second
	if config.AppConfig != nil {
		if maxPages <= 0 {
			maxPages = config.AppConfig.Scraper.MaxPages
		}
		delay = config.AppConfig.Scraper.Delay
	}
	if maxPages <= 0 {
		maxPages = 2
	}

	switch params.Platform {
	case "amazon":
		Resp.Succ(c, scraper_service.SearchAmazon(params.Keyword, maxPages, delay))
	case "", "etsy":
		Resp.Succ(c, scraper_service.SearchEtsy(params.Keyword, maxPages, delay))
	default:
		Resp.Err(c, 20001, "不支持的平台: "+params.Platform)
	}
}
