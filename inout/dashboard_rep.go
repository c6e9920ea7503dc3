package inout

// PeriodMetricsRep 周期指标，金额统一转为 float64 便于前端展示
type PeriodMetricsRep struct {
	PeriodStart       string  `json:"period_start"`
	PeriodEnd         string  `json:"period_end"`
	TotalOrders       int     `json:"total_orders"`
	TotalItemsSold    int     `json:"total_items_sold"`
	GrossRevenue      float64 `json:"gross_revenue"`
	TotalFees         float64 `json:"total_fees"`
	NetRevenue        float64 `json:"net_revenue"`
	ShippingCollected float64 `json:"shipping_collected"`
	AvgOrderValue     float64 `json:"avg_order_value"`
	UniqueBuyers      int     `json:"unique_buyers"`
	FeePercentage     float64 `json:"fee_percentage"`
}

// TopSellerRep 销量排行条目
type TopSellerRep struct {
	ProductId string  `json:"product_id"`
	Title     string  `json:"title"`
	UnitsSold int     `json:"units_sold"`
	Revenue   float64 `json:"revenue"`
}

// DailyRevenueRep 单日收入
type DailyRevenueRep struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// CountryRep 国家订单数
type CountryRep struct {
	Country string `json:"country"`
	Orders  int    `json:"orders"`
}

// SummaryRep 店铺汇总响应
type SummaryRep struct {
	Platform              string            `json:"platform"`
	StoreName             string            `json:"store_name"`
	ReportDate            string            `json:"report_date"`
	CurrentPeriod         *PeriodMetricsRep `json:"current_period,omitempty"`
	PreviousPeriod        *PeriodMetricsRep `json:"previous_period,omitempty"`
	RevenueChange         *float64          `json:"revenue_change,omitempty"`
	TopSellers            []TopSellerRep    `json:"top_sellers"`
	LowStockProducts      []string          `json:"low_stock_products"`
	OutOfStockProducts    []string          `json:"out_of_stock_products"`
	TotalActiveListings   int               `json:"total_active_listings"`
	TotalViews            int               `json:"total_views"`
	OverallConversionRate float64           `json:"overall_conversion_rate"`
}

// AlertRep 单条预警
// level 取值: error / warning / info / success
type AlertRep struct {
	Level   string `json:"level"`
	Group   string `json:"group"`
	Message string `json:"message"`
}

// AlertsRep 预警列表响应
type AlertsRep struct {
	Total   int        `json:"total"`
	Alerts  []AlertRep `json:"alerts"`
	Actions []string   `json:"actions"`
}
