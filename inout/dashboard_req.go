package inout

// DashboardReq 看板通用查询参数
// days 为统计周期（天），platform 为空时表示全部平台
type DashboardReq struct {
	Days     int    `form:"days"`
	Platform string `form:"platform"`
	Store    string `form:"store"`
}

// TopSellersReq 销量排行查询参数
type TopSellersReq struct {
	Days     int    `form:"days"`
	Limit    int    `form:"limit"`
	Platform string `form:"platform"`
}

// SEOScoresReq SEO 评分列表查询参数
type SEOScoresReq struct {
	Platform string `form:"platform"`
}

// ScrapeReq 竞品搜索参数
type ScrapeReq struct {
	Keyword  string `form:"keyword" binding:"required"`
	Platform string `form:"platform"`
	MaxPages int    `form:"max_pages"`
}
