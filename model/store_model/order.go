package store_model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Platform 订单/商品来源平台
type Platform string

const (
	PlatformEtsy   Platform = "etsy"
	PlatformAmazon Platform = "amazon"
)

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

// OrderItem 订单中的单个商品行
type OrderItem struct {
	ProductId    string          `json:"product_id"`
	ProductTitle string          `json:"product_title"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Sku          string          `json:"sku,omitempty"`
	Variation    string          `json:"variation,omitempty"`
}

// TotalPrice 行小计 = 数量 × 单价
func (i OrderItem) TotalPrice() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order 平台无关的统一订单模型
// 全局唯一键是 (Platform, OrderId)，平台之间订单号可能重复
type Order struct {
	OrderId   string      `json:"order_id"`
	Platform  Platform    `json:"platform"`
	OrderDate time.Time   `json:"order_date"`
	Status    OrderStatus `json:"status"`
	Items     []OrderItem `json:"items"`
	Currency  string      `json:"currency"`

	// 买家信息
	BuyerName    string `json:"buyer_name,omitempty"`
	BuyerCountry string `json:"buyer_country,omitempty"`

	// 金额字段，全部为非负数，币种见 Currency
	Subtotal             decimal.Decimal `json:"subtotal"`
	ShippingCost         decimal.Decimal `json:"shipping_cost"`
	Tax                  decimal.Decimal `json:"tax"`
	Discount             decimal.Decimal `json:"discount"`
	PlatformFee          decimal.Decimal `json:"platform_fee"`
	PaymentProcessingFee decimal.Decimal `json:"payment_processing_fee"`

	// 物流
	TrackingNumber string `json:"tracking_number,omitempty"`
	ShippingMethod string `json:"shipping_method,omitempty"`
}

// GrossRevenue 毛收入（商品 + 运费）
func (o Order) GrossRevenue() decimal.Decimal {
	return o.Subtotal.Add(o.ShippingCost)
}

// TotalFees 平台扣费合计
func (o Order) TotalFees() decimal.Decimal {
	return o.PlatformFee.Add(o.PaymentProcessingFee)
}

// NetRevenue 净收入，折扣力度大时可能为负数，属于合法值
func (o Order) NetRevenue() decimal.Decimal {
	return o.GrossRevenue().Sub(o.TotalFees()).Sub(o.Tax).Add(o.Discount)
}

// ItemCount 商品件数合计
func (o Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}
