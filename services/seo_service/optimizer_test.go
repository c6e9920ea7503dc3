package seo_service

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"ecommerce-manager/model/store_model"
)

func TestDetectCategory(t *testing.T) {
	assert.Equal(t, "jewelry", detectCategory("Custom Name Necklace Gold Jewelry", store_model.PlatformEtsy))
	assert.Equal(t, "kitchen", detectCategory("Bamboo Cutting Board Set for Kitchen", store_model.PlatformAmazon))
	// 什么都不匹配时兜底 home
	assert.Equal(t, "home", detectCategory("Zzz Qqq", store_model.PlatformEtsy))
}

func TestDetectCategoryTiesAreStable(t *testing.T) {
	// "craft home" 让 home 和 craft 都靠分类名命中得 3 分，
	// 平分时必须固定取遍历顺序靠前的 home，不能跟着 map 顺序漂
	for i := 0; i < 500; i++ {
		assert.Equal(t, "home", detectCategory("craft home", store_model.PlatformEtsy))
		assert.Equal(t, "kitchen", detectCategory("kitchen eco", store_model.PlatformAmazon))
	}
}

func TestSuggestTagsFillsToThirteen(t *testing.T) {
	p := store_model.Product{
		ProductId: "1001",
		Platform:  store_model.PlatformEtsy,
		Title:     "Custom Name Necklace Gold Jewelry",
		Tags:      []string{"necklace", "gold"},
	}
	tags := suggestTags(p, store_model.PlatformEtsy)

	assert.NotEmpty(t, tags)
	assert.LessOrEqual(t, len(tags)+len(p.Tags), 13, "已有标签加建议标签不超过 13 个")
	for _, tag := range tags {
		assert.LessOrEqual(t, len(tag), 20, "单个标签不超过 20 字符")
		// 已有标签不重复建议
		for _, old := range p.Tags {
			assert.NotEqual(t, strings.ToLower(old), strings.ToLower(tag))
		}
	}
}

func TestSuggestTitleEtsy(t *testing.T) {
	p := store_model.Product{
		Title:    "Wooden Stand",
		Platform: store_model.PlatformEtsy,
	}
	suggested, tips := suggestTitle(p, store_model.PlatformEtsy)

	assert.True(t, strings.HasPrefix(suggested, "Wooden Stand"), "建议标题以原标题开头")
	assert.LessOrEqual(t, len([]rune(suggested)), 200)
	assert.NotEmpty(t, tips)
	// 过短和缺送礼词都应该被提出来
	joined := strings.Join(tips, " ")
	assert.Contains(t, joined, "60-80")
}

func TestSuggestDescriptionTemplates(t *testing.T) {
	p := store_model.Product{Title: "Wooden Stand"}

	etsy := suggestDescription(p, store_model.PlatformEtsy)
	assert.Contains(t, etsy, "Wooden Stand")
	assert.Contains(t, etsy, "SHIPPING")

	amazon := suggestDescription(p, store_model.PlatformAmazon)
	assert.Contains(t, amazon, "WOODEN STAND")
	assert.Contains(t, amazon, "SPECIFICATIONS")
}

func TestOptimizeListingPriceTips(t *testing.T) {
	svc := NewSEOService(nil)

	p := store_model.Product{
		ProductId: "1001",
		Platform:  store_model.PlatformEtsy,
		Title:     "Handmade Wooden Phone Stand",
		Price:     decimal.NewFromInt(25), // 整数价格触发心理定价提示
		Quantity:  3,
		Views:     300,
		TotalSold: 1,
	}
	result := svc.OptimizeListing(p, "")

	assert.Equal(t, store_model.PlatformEtsy, result.Platform, "平台为空时取商品自身平台")
	joined := strings.Join(result.GeneralTips, " ")
	assert.Contains(t, joined, "心理定价")
	assert.Contains(t, joined, "库存告急")
	assert.Contains(t, joined, "流量高但成交低")
}

func TestOptimizeListingNonIntegerPriceNoTip(t *testing.T) {
	svc := NewSEOService(nil)
	p := store_model.Product{
		ProductId: "1002",
		Platform:  store_model.PlatformEtsy,
		Title:     "Handmade Wooden Phone Stand",
		Price:     decimal.RequireFromString("24.99"),
		Quantity:  50,
		Views:     500,
	}
	result := svc.OptimizeListing(p, store_model.PlatformEtsy)
	for _, tip := range result.GeneralTips {
		assert.NotContains(t, tip, "心理定价")
	}
}

func TestOptimizeListingOutOfStock(t *testing.T) {
	svc := NewSEOService(nil)
	p := store_model.Product{
		ProductId: "1003",
		Platform:  store_model.PlatformEtsy,
		Title:     "Macrame Wall Hanging",
		Price:     decimal.RequireFromString("55.00"),
		Quantity:  0,
		Views:     10,
	}
	result := svc.OptimizeListing(p, store_model.PlatformEtsy)
	joined := strings.Join(result.GeneralTips, " ")
	assert.Contains(t, joined, "没货")
	assert.Contains(t, joined, "浏览量太低")
}
