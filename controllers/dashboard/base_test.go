package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryCacheKeyStableBetweenRequests(t *testing.T) {
	k1 := summaryCacheKey("etsy", "我的店铺", 30)
	k2 := summaryCacheKey("etsy", "我的店铺", 30)
	assert.Equal(t, k1, k2)

	// 不同维度各自成 key
	assert.NotEqual(t, k1, summaryCacheKey("amazon", "我的店铺", 30))
	assert.NotEqual(t, k1, summaryCacheKey("etsy", "我的店铺", 7))
}

func TestInvalidateDatasetBumpsSummaryCacheVersion(t *testing.T) {
	before := summaryCacheKey("etsy", "我的店铺", 30)
	InvalidateDataset()
	after := summaryCacheKey("etsy", "我的店铺", 30)

	// 手动刷新后旧的汇总缓存必须整体失效，不能再被命中
	assert.NotEqual(t, before, after)
}

func TestNormalizeDays(t *testing.T) {
	assert.Equal(t, 30, normalizeDays(0))
	assert.Equal(t, 30, normalizeDays(-5))
	assert.Equal(t, 7, normalizeDays(7))
}
