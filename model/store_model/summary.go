package store_model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PeriodMetrics 某个闭区间 [PeriodStart, PeriodEnd] 内的订单汇总指标
// 每次调用重新计算，构造后不再修改
type PeriodMetrics struct {
	PeriodStart       time.Time       `json:"period_start"`
	PeriodEnd         time.Time       `json:"period_end"`
	TotalOrders       int             `json:"total_orders"`
	TotalItemsSold    int             `json:"total_items_sold"`
	GrossRevenue      decimal.Decimal `json:"gross_revenue"`
	TotalFees         decimal.Decimal `json:"total_fees"`
	NetRevenue        decimal.Decimal `json:"net_revenue"`
	ShippingCollected decimal.Decimal `json:"shipping_collected"`
	AvgOrderValue     decimal.Decimal `json:"avg_order_value"`
	UniqueBuyers      int             `json:"unique_buyers"`
}

// FeePercentage 扣费占毛收入的比例（%），毛收入为 0 时返回 0
func (m PeriodMetrics) FeePercentage() float64 {
	if m.GrossRevenue.IsZero() {
		return 0.0
	}
	return m.TotalFees.Div(m.GrossRevenue).InexactFloat64() * 100
}

// ProductPerformance 商品销量排行条目
type ProductPerformance struct {
	ProductId      string          `json:"product_id"`
	Title          string          `json:"title"`
	UnitsSold      int             `json:"units_sold"`
	Revenue        decimal.Decimal `json:"revenue"`
	Views          int             `json:"views"`
	ConversionRate float64         `json:"conversion_rate"`
}

// CountryCount 按国家的订单数，切片整体按订单数降序排列
type CountryCount struct {
	Country string `json:"country"`
	Orders  int    `json:"orders"`
}

// DailyRevenue 单日毛收入，切片整体按日期升序、无空洞
type DailyRevenue struct {
	Date    time.Time       `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// StoreSummary 单个店铺某次报表运行的快照
type StoreSummary struct {
	Platform   Platform  `json:"platform"`
	StoreName  string    `json:"store_name"`
	ReportDate time.Time `json:"report_date"`

	// 周期指标：当前周期 vs 前一等长周期
	CurrentPeriod  *PeriodMetrics `json:"current_period,omitempty"`
	PreviousPeriod *PeriodMetrics `json:"previous_period,omitempty"`

	// 商品表现
	TopSellers []ProductPerformance `json:"top_sellers"`

	// 库存预警，仅保留标题用于展示
	LowStockProducts   []string `json:"low_stock_products"`
	OutOfStockProducts []string `json:"out_of_stock_products"`

	// 整体统计
	TotalActiveListings   int     `json:"total_active_listings"`
	TotalViews            int     `json:"total_views"`
	OverallConversionRate float64 `json:"overall_conversion_rate"`
}

// RevenueChange 毛收入环比变化（%）
// 前一周期毛收入为 0 时无法定义，第二个返回值为 false
func (s StoreSummary) RevenueChange() (float64, bool) {
	if s.PreviousPeriod == nil || s.CurrentPeriod == nil || s.PreviousPeriod.GrossRevenue.IsZero() {
		return 0, false
	}
	curr := s.CurrentPeriod.GrossRevenue
	prev := s.PreviousPeriod.GrossRevenue
	return curr.Sub(prev).Div(prev).InexactFloat64() * 100, true
}
