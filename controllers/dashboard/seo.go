package dashboard

import (
	"sort"

	"github.com/gin-gonic/gin"

	"ecommerce-manager/inout"
	"ecommerce-manager/model/store_model"
	"ecommerce-manager/pkg/monitoring"
)

// GetSEOScores 为全部商品打 SEO 分，按总分升序（最差的排前面）
func GetSEOScores(c *gin.Context) {
	var params inout.SEOScoresReq
	if err := c.ShouldBind(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	ds := loadDataset()
	_, products := filterByPlatform(ds, params.Platform)

	scores := make([]store_model.SEOScore, 0, len(products))
	for _, p := range products {
		scores = append(scores, seoService.ScoreListing(p, p.Platform))
		monitoring.RecordListingScored()
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].TotalScore < scores[j].TotalScore
	})
	Resp.Succ(c, scores)
}

// GetSEOScore 单个商品的 SEO 评分
func GetSEOScore(c *gin.Context) {
	productId := c.Param("id")

	ds := loadDataset()
	for _, p := range ds.Products {
		if p.ProductId == productId {
			monitoring.RecordListingScored()
			Resp.Succ(c, seoService.ScoreListing(p, p.Platform))
			return
		}
	}
	Resp.Err(c, 20404, "商品不存在: "+productId)
}

// OptimizeListing 生成单个商品的优化建议（标题/标签/描述/价格）
func OptimizeListing(c *gin.Context) {
	productId := c.Param("id")

	ds := loadDataset()
	for _, p := range ds.Products {
		if p.ProductId == productId {
			Resp.Succ(c, seoService.OptimizeListing(p, p.Platform))
			return
		}
	}
	Resp.Err(c, 20404, "商品不存在: "+productId)
}
