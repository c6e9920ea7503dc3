package analytics_service

import (
	"time"

	"ecommerce-manager/model/store_model"
	"ecommerce-manager/utils"
)

// BuildStoreSummary 生成单个店铺的周期对比快照
// 先按平台过滤订单和商品，之后所有计算只看过滤后的子集
func (s *AnalyticsService) BuildStoreSummary(
	orders []store_model.Order,
	products []store_model.Product,
	platform store_model.Platform,
	storeName string,
	periodDays int,
) store_model.StoreSummary {
	if periodDays <= 0 {
		periodDays = 30
	}

	today := utils.DateOnly(time.Now())
	currentStart := today.AddDate(0, 0, -periodDays)
	// 前一周期与当前周期等长、不重叠，结束于当前周期开始的前一天
	previousStart := currentStart.AddDate(0, 0, -periodDays)
	previousEnd := currentStart.AddDate(0, 0, -1)

	platformOrders := make([]store_model.Order, 0)
	for _, o := range orders {
		if o.Platform == platform {
			platformOrders = append(platformOrders, o)
		}
	}
	platformProducts := make([]store_model.Product, 0)
	for _, p := range products {
		if p.Platform == platform {
			platformProducts = append(platformProducts, p)
		}
	}

	current := s.CalculatePeriodMetrics(platformOrders, currentStart, today)
	previous := s.CalculatePeriodMetrics(platformOrders, previousStart, previousEnd)

	lowStock := make([]string, 0)
	outOfStock := make([]string, 0)
	activeCount := 0
	totalViews := 0
	totalSold := 0
	for _, p := range platformProducts {
		if p.Quantity == 0 {
			outOfStock = append(outOfStock, p.Title)
		} else if p.Quantity <= 5 {
			lowStock = append(lowStock, p.Title)
		}
		if p.Status == store_model.ProductStatusActive {
			activeCount++
		}
		totalViews += p.Views
		totalSold += p.TotalSold
	}

	// 按总量加权的整体转化率，不是各商品转化率的算术平均
	overallConversion := 0.0
	if totalViews > 0 {
		overallConversion = float64(totalSold) / float64(totalViews) * 100
	}

	return store_model.StoreSummary{
		Platform:              platform,
		StoreName:             storeName,
		ReportDate:            today,
		CurrentPeriod:         &current,
		PreviousPeriod:        &previous,
		TopSellers:            s.GetTopSellers(platformOrders, 10),
		LowStockProducts:      lowStock,
		OutOfStockProducts:    outOfStock,
		TotalActiveListings:   activeCount,
		TotalViews:            totalViews,
		OverallConversionRate: overallConversion,
	}
}
