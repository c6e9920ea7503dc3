package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus 指标定义
var (
	// HTTP 请求相关指标
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时分布",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// 数据解析相关指标
	ordersParsedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_parsed_total",
			Help: "解析出的订单总数",
		},
		[]string{"platform"},
	)

	productsParsedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "products_parsed_total",
			Help: "解析出的商品总数",
		},
		[]string{"platform"},
	)

	datasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "全量数据加载耗时分布",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 2.5, 5.0},
		},
	)

	// 缓存相关指标
	cacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dataset_cache_hits_total",
			Help: "数据集缓存命中次数",
		},
	)

	cacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dataset_cache_misses_total",
			Help: "数据集缓存未命中次数",
		},
	)

	// SEO 打分相关指标
	listingsScoredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "seo_listings_scored_total",
			Help: "SEO 打分执行次数",
		},
	)
)

// PrometheusMiddleware HTTP 指标采集中间件
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}

		httpRequestsTotal.WithLabelValues(
			c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status()),
		).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(duration)
	}
}

// RecordParsed 记录一次数据加载的解析量
func RecordParsed(platform string, orders, products int) {
	ordersParsedTotal.WithLabelValues(platform).Add(float64(orders))
	productsParsedTotal.WithLabelValues(platform).Add(float64(products))
}

// RecordDatasetLoad 记录一次全量加载耗时
func RecordDatasetLoad(duration time.Duration) {
	datasetLoadDuration.Observe(duration.Seconds())
}

// RecordCacheHit 记录缓存命中
func RecordCacheHit() {
	cacheHitsTotal.Inc()
}

// RecordCacheMiss 记录缓存未命中
func RecordCacheMiss() {
	cacheMissesTotal.Inc()
}

// RecordListingScored 记录一次 SEO 打分
func RecordListingScored() {
	listingsScoredTotal.Inc()
}
