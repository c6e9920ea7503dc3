package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"ecommerce-manager/inout"
	"ecommerce-manager/model/store_model"
	"ecommerce-manager/utils"
)

var lowAOVThreshold = decimal.NewFromInt(20)

func truncateTitle(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// GetAlerts 汇总库存、收入、商品三类预警和待办清单
func GetAlerts(c *gin.Context) {
	var params inout.DashboardReq
	if err := c.ShouldBind(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	days := normalizeDays(params.Days)

	ds := loadDataset()
	orders, products := filterByPlatform(ds, params.Platform)

	today := utils.DateOnly(time.Now())
	periodStart := today.AddDate(0, 0, -days)
	prevStart := periodStart.AddDate(0, 0, -days)
	prevEnd := periodStart.AddDate(0, 0, -1)

	current := analyticsService.CalculatePeriodMetrics(orders, periodStart, today)
	previous := analyticsService.CalculatePeriodMetrics(orders, prevStart, prevEnd)

	rep := inout.AlertsRep{Alerts: []inout.AlertRep{}, Actions: []string{}}
	add := func(level, group, msg string) {
		rep.Alerts = append(rep.Alerts, inout.AlertRep{Level: level, Group: group, Message: msg})
	}

	// 库存预警
	var outOfStock, lowStock []store_model.Product
	for _, p := range products {
		switch {
		case p.Quantity == 0 && p.Status != store_model.ProductStatusSoldOut:
			outOfStock = append(outOfStock, p)
		case p.Quantity > 0 && p.Quantity <= 5:
			lowStock = append(lowStock, p)
		}
	}
	for _, p := range outOfStock {
		add("error", "stock", fmt.Sprintf("库存售罄: %s (%s)，请尽快补货", p.Title, strings.ToUpper(string(p.Platform))))
	}
	for _, p := range lowStock {
		add("warning", "stock", fmt.Sprintf("库存不足: %s (%s)，剩余 %d 件", p.Title, strings.ToUpper(string(p.Platform)), p.Quantity))
	}
	if len(outOfStock) == 0 && len(lowStock) == 0 {
		add("success", "stock", "所有商品库存充足")
	}

	// 收入走势预警
	if previous.GrossRevenue.GreaterThan(decimal.Zero) {
		change := current.GrossRevenue.Sub(previous.GrossRevenue).
			Div(previous.GrossRevenue).InexactFloat64() * 100
		switch {
		case change < -20:
			add("error", "revenue", fmt.Sprintf("收入骤降: 最近 %d 天收入下降 %.0f%%，请检查价格和 listing", days, -change))
		case change < -5:
			add("warning", "revenue", fmt.Sprintf("收入预警: 最近 %d 天收入下降 %.0f%%", days, -change))
		case change > 20:
			add("success", "revenue", fmt.Sprintf("表现优异: 最近 %d 天收入增长 %.0f%%", days, change))
		default:
			add("info", "revenue", fmt.Sprintf("收入变化: %+.1f%%（相比上一周期）", change))
		}
	}
	if current.TotalOrders > 0 && current.AvgOrderValue.LessThan(lowAOVThreshold) {
		add("warning", "revenue", fmt.Sprintf("客单价偏低: 平均订单 $%s，可尝试捆绑销售或加购策略", current.AvgOrderValue.StringFixed(2)))
	}

	// 商品维度建议
	for _, p := range products {
		if p.Views > 100 && p.ConversionRate() < 1.0 {
			add("warning", "product", fmt.Sprintf("转化率偏低: %s — %d 次浏览但转化率仅 %.1f%%，建议优化价格、图片或描述",
				truncateTitle(p.Title, 40), p.Views, p.ConversionRate()))
		}
	}
	for _, p := range products {
		if p.Favorites > 20 && p.TotalSold < 3 {
			add("info", "product", fmt.Sprintf("收藏多但不出单: %s — %d 次收藏仅 %d 次成交，可尝试降价或促销",
				truncateTitle(p.Title, 40), p.Favorites, p.TotalSold))
		}
	}
	var zeroSales []store_model.Product
	for _, p := range products {
		if p.TotalSold == 0 && p.Views > 50 {
			zeroSales = append(zeroSales, p)
			add("error", "product", fmt.Sprintf("零成交: %s (%s) — %d 次浏览 0 成交，请检查标签、价格和图片",
				truncateTitle(p.Title, 40), strings.ToUpper(string(p.Platform)), p.Views))
		}
	}

	// 待办清单
	if len(outOfStock) > 0 {
		rep.Actions = append(rep.Actions, fmt.Sprintf("为 %d 个商品补货", len(outOfStock)))
	}
	if len(lowStock) > 0 {
		rep.Actions = append(rep.Actions, fmt.Sprintf("%d 个商品库存告急，尽快下采购单", len(lowStock)))
	}
	if len(zeroSales) > 0 {
		rep.Actions = append(rep.Actions, fmt.Sprintf("优化 %d 个零成交商品的 listing", len(zeroSales)))
	}

	// 成功/提示类不计入预警数
	for _, a := range rep.Alerts {
		if a.Level == "error" || a.Level == "warning" || (a.Level == "info" && a.Group == "product") {
			rep.Total++
		}
	}
	Resp.Succ(c, rep)
}
