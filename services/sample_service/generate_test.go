package sample_service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-manager/config"
	"ecommerce-manager/model/store_model"
	"ecommerce-manager/services/parser_service"
)

// 生成的四个文件必须能被解析端原样读回来
func TestGenerateAllRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DataConfig{
		EtsyDir:   filepath.Join(dir, "etsy"),
		AmazonDir: filepath.Join(dir, "amazon"),
	}

	svc := NewSampleService(42)
	require.NoError(t, svc.GenerateAll(cfg, 20, 30))

	etsyOrders, err := parser_service.ParseEtsyOrders(filepath.Join(cfg.EtsyDir, "EtsySoldOrders2025.csv"))
	require.NoError(t, err)
	assert.Len(t, etsyOrders, 20, "Etsy 订单 ID 不重复，一行一单")
	for _, o := range etsyOrders {
		assert.Equal(t, store_model.PlatformEtsy, o.Platform)
		assert.NotEmpty(t, o.BuyerName)
		assert.True(t, o.Subtotal.IsPositive())
		assert.False(t, o.OrderDate.IsZero())
		require.Len(t, o.Items, 1)
		assert.NotEmpty(t, o.Items[0].ProductId)
	}

	listings, err := parser_service.ParseEtsyListings(filepath.Join(cfg.EtsyDir, "EtsyListingsDownload.csv"))
	require.NoError(t, err)
	assert.Len(t, listings, 10)
	for _, p := range listings {
		assert.Equal(t, store_model.PlatformEtsy, p.Platform)
		assert.True(t, p.Price.IsPositive())
		assert.NotEmpty(t, p.Tags)
		assert.GreaterOrEqual(t, p.Views, 100)
		if p.Quantity == 0 {
			assert.Equal(t, store_model.ProductStatusSoldOut, p.Status)
		} else {
			assert.Equal(t, store_model.ProductStatusActive, p.Status)
		}
	}

	amazonOrders, err := parser_service.ParseAmazonOrders(filepath.Join(cfg.AmazonDir, "All_Orders_Report.txt"))
	require.NoError(t, err)
	// 订单号随机生成，撞号时会归并，条数只会少不会多
	assert.NotEmpty(t, amazonOrders)
	assert.LessOrEqual(t, len(amazonOrders), 30)
	now := time.Now()
	for _, o := range amazonOrders {
		assert.Equal(t, store_model.PlatformAmazon, o.Platform)
		// 报表里的时间戳按 +00:00 写死，本地时区不同会整体偏移，窗口放宽一天
		assert.True(t, o.OrderDate.Before(now.AddDate(0, 0, 1)))
		assert.True(t, o.OrderDate.After(now.AddDate(0, 0, -92)))
	}

	products, err := parser_service.ParseAmazonBusinessReport(filepath.Join(cfg.AmazonDir, "BusinessReport.csv"))
	require.NoError(t, err)
	assert.Len(t, products, 10)
	for _, p := range products {
		assert.Equal(t, store_model.PlatformAmazon, p.Platform)
		assert.Greater(t, p.Views, 0)
		assert.True(t, p.Price.IsZero())
	}
}

func TestWeightedChoiceCoversAllIndexes(t *testing.T) {
	svc := NewSampleService(7)
	weights := []int{40, 15, 10, 5, 5, 5, 5, 5, 5, 5}
	hits := make(map[int]int)
	for i := 0; i < 5000; i++ {
		idx := svc.weightedChoice(weights)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(weights))
		hits[idx]++
	}
	// 权重最高的下标出现最多
	for i := 1; i < len(weights); i++ {
		assert.Greater(t, hits[0], hits[i])
	}
}

func TestRandomDateWithinWindow(t *testing.T) {
	svc := NewSampleService(1)
	now := time.Now()
	for i := 0; i < 100; i++ {
		d := svc.randomDate(90)
		assert.True(t, d.After(now.AddDate(0, 0, -91)))
		assert.True(t, d.Before(now.Add(26*time.Hour)))
	}
}
