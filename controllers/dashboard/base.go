package dashboard

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"ecommerce-manager/config"
	"ecommerce-manager/model/store_model"
	"ecommerce-manager/pkg/cache"
	"ecommerce-manager/pkg/monitoring"
	"ecommerce-manager/pkg/response"
	"ecommerce-manager/services/analytics_service"
	"ecommerce-manager/services/parser_service"
	"ecommerce-manager/services/seo_service"
)

// Resp 为了兼容性保留，但推荐直接使用 response 包
var Resp = &rps{}

type rps struct{}

// Succ 成功响应 - 兼容旧接口
func (rps) Succ(c *gin.Context, data interface{}) {
	response.Success(c, data)
}

// Err 错误响应 - 兼容旧接口
func (rps) Err(c *gin.Context, errCode int, message string) {
	response.Error(c, errCode, message)
}

var (
	analyticsService = &analytics_service.AnalyticsService{}
	seoService       = seo_service.NewSEOService(nil)

	cacheManager *cache.CacheManager

	dataMu   sync.Mutex
	dataset  *parser_service.Dataset
	loadedAt time.Time

	// 汇总缓存的版本号，手动刷新时整体升版，旧 key 自然过期
	summaryVersion atomic.Int64
)

// summaryCacheKey 汇总响应的缓存 key，带版本号
func summaryCacheKey(platform, store string, days int) string {
	return fmt.Sprintf("dashboard:summary:v%d:%s:%s:%d", summaryVersion.Load(), platform, store, days)
}

// Init 注入缓存管理器，服务启动时调用一次
func Init(cm *cache.CacheManager) {
	cacheManager = cm
}

// loadDataset 加载订单/商品数据，带 TTL 的进程内缓存
// 与报表端共用同一批磁盘文件，过期后按需重读
func loadDataset() *parser_service.Dataset {
	ttl := 5 * time.Minute
	if config.AppConfig != nil {
		ttl = config.AppConfig.Cache.TTL
	}

	dataMu.Lock()
	defer dataMu.Unlock()

	if dataset != nil && time.Since(loadedAt) < ttl {
		monitoring.RecordCacheHit()
		return dataset
	}
	monitoring.RecordCacheMiss()

	start := time.Now()
	dataset = parser_service.LoadAllData(config.AppConfig.Data)
	loadedAt = time.Now()
	monitoring.RecordDatasetLoad(time.Since(start))
	log.Printf("数据集已加载: %d 订单, %d 商品", len(dataset.Orders), len(dataset.Products))
	return dataset
}

// InvalidateDataset 强制下一次请求重新读盘，并让已缓存的汇总响应失效
func InvalidateDataset() {
	dataMu.Lock()
	dataset = nil
	dataMu.Unlock()
	summaryVersion.Add(1)
}

// RefreshData 手动刷新数据集，对应看板上的刷新按钮
func RefreshData(c *gin.Context) {
	InvalidateDataset()
	ds := loadDataset()
	Resp.Succ(c, gin.H{
		"orders":   len(ds.Orders),
		"products": len(ds.Products),
	})
}

// filterByPlatform 按平台过滤订单与商品，platform 为空时原样返回
func filterByPlatform(ds *parser_service.Dataset, platform string) ([]store_model.Order, []store_model.Product) {
	if platform == "" {
		return ds.Orders, ds.Products
	}
	p := store_model.Platform(platform)
	var orders []store_model.Order
	for _, o := range ds.Orders {
		if o.Platform == p {
			orders = append(orders, o)
		}
	}
	var products []store_model.Product
	for _, prod := range ds.Products {
		if prod.Platform == p {
			products = append(products, prod)
		}
	}
	return orders, products
}

// normalizeDays 周期参数兜底，缺省 30 天
func normalizeDays(days int) int {
	if days <= 0 {
		return 30
	}
	return days
}
