package store_model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus 商品上架状态
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusSoldOut  ProductStatus = "sold_out"
)

// Product 平台无关的统一商品模型
type Product struct {
	ProductId string          `json:"product_id"`
	Platform  Platform        `json:"platform"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`

	// 详情
	Sku         string        `json:"sku,omitempty"`
	Description string        `json:"description,omitempty"`
	Category    string        `json:"category,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Status      ProductStatus `json:"status"`

	// 库存
	Quantity int `json:"quantity"`

	// 平台上报的表现数据快照，不从订单反算
	Views        int             `json:"views"`
	Favorites    int             `json:"favorites"`
	TotalSold    int             `json:"total_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`

	// 日期
	CreatedDate  time.Time `json:"created_date,omitempty"`
	LastModified time.Time `json:"last_modified,omitempty"`

	// 成本，用于计算利润率，未知时为 nil
	CostPrice            *decimal.Decimal `json:"cost_price,omitempty"`
	ShippingCostEstimate *decimal.Decimal `json:"shipping_cost_estimate,omitempty"`
}

// ConversionRate 浏览 → 成交转化率（%），无浏览时为 0
func (p Product) ConversionRate() float64 {
	if p.Views == 0 {
		return 0.0
	}
	return float64(p.TotalSold) / float64(p.Views) * 100
}

// FavoriteRate 浏览 → 收藏率（%），无浏览时为 0
func (p Product) FavoriteRate() float64 {
	if p.Views == 0 {
		return 0.0
	}
	return float64(p.Favorites) / float64(p.Views) * 100
}

// ProfitMargin 利润率（%），未录入成本或价格为 0 时第二个返回值为 false
func (p Product) ProfitMargin() (float64, bool) {
	if p.CostPrice == nil || p.Price.IsZero() {
		return 0, false
	}
	margin := p.Price.Sub(*p.CostPrice).Div(p.Price).InexactFloat64() * 100
	return margin, true
}
