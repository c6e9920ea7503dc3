package report_service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"ecommerce-manager/model/store_model"
	"ecommerce-manager/services/analytics_service"
	"ecommerce-manager/utils"
)

// 工作表名称
const (
	sheetSummary   = "汇总"
	sheetOrders    = "订单明细"
	sheetProducts  = "商品表现"
	sheetCountries = "国家分布"
)

const (
	colorHeader  = "2E86AB"
	moneyFormat  = "#,##0.00 $"
	pctFormat    = "0.0%"
	maxColWidth  = 40
	titleMaxRune = 50
)

// ReportService Excel 销售报表服务
type ReportService struct {
	analytics *analytics_service.AnalyticsService
}

func NewReportService() *ReportService {
	return &ReportService{analytics: &analytics_service.AnalyticsService{}}
}

// reportStyles 预先注册好的单元格样式 ID
type reportStyles struct {
	header     int
	title      int
	subtitle   int
	data       int
	money      int
	percent    int
	totalRow   int
	totalMoney int
	etsy       int
	amazon     int
	alertBad   int
	alertWarn  int
	kpi        map[string]int
	kpiMoney   map[string]int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "CCCCCC", Style: 1},
		{Type: "right", Color: "CCCCCC", Style: 1},
		{Type: "top", Color: "CCCCCC", Style: 1},
		{Type: "bottom", Color: "CCCCCC", Style: 1},
	}
}

func fill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func buildStyles(f *excelize.File) (*reportStyles, error) {
	st := &reportStyles{kpi: map[string]int{}, kpiMoney: map[string]int{}}
	var err error

	st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill:      fill(colorHeader),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}
	st.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: colorHeader},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	st.subtitle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "444444"},
	})
	if err != nil {
		return nil, err
	}
	st.data, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorder(),
	})
	if err != nil {
		return nil, err
	}
	mf := moneyFormat
	st.money, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Size: 10},
		Border:       thinBorder(),
		CustomNumFmt: &mf,
	})
	if err != nil {
		return nil, err
	}
	pf := pctFormat
	st.percent, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Size: 10},
		Border:       thinBorder(),
		CustomNumFmt: &pf,
	})
	if err != nil {
		return nil, err
	}
	st.totalRow, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   fill("E0E0E0"),
		Border: thinBorder(),
	})
	if err != nil {
		return nil, err
	}
	st.totalMoney, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 11},
		Fill:         fill("E0E0E0"),
		Border:       thinBorder(),
		CustomNumFmt: &mf,
	})
	if err != nil {
		return nil, err
	}
	st.etsy, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Fill:   fill("FFF0E6"),
		Border: thinBorder(),
	})
	if err != nil {
		return nil, err
	}
	st.amazon, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Fill:   fill("FFF8E1"),
		Border: thinBorder(),
	})
	if err != nil {
		return nil, err
	}
	st.alertBad, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10, Color: "C62828"},
		Fill:   fill("FFCDD2"),
		Border: thinBorder(),
	})
	if err != nil {
		return nil, err
	}
	st.alertWarn, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10, Color: "E65100"},
		Fill:   fill("FFF9C4"),
		Border: thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	// KPI 卡片底色，与金额格式各注册一份
	kpiColors := map[string]string{
		"green":  "E8F5E9",
		"blue":   "E3F2FD",
		"orange": "FFF3E0",
		"purple": "F3E5F5",
	}
	for name, color := range kpiColors {
		plain, err := f.NewStyle(&excelize.Style{
			Font:   &excelize.Font{Size: 10},
			Fill:   fill(color),
			Border: thinBorder(),
		})
		if err != nil {
			return nil, err
		}
		st.kpi[name] = plain
		money, err := f.NewStyle(&excelize.Style{
			Font:         &excelize.Font{Size: 10},
			Fill:         fill(color),
			Border:       thinBorder(),
			CustomNumFmt: &mf,
		})
		if err != nil {
			return nil, err
		}
		st.kpiMoney[name] = money
	}
	return st, nil
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// GenerateReport 生成四个工作表的 Excel 销售报表，返回输出文件路径
// 工作表：汇总（KPI + 平台拆分 + 日收入折线图）、订单明细、商品表现、国家分布
func (s *ReportService) GenerateReport(
	orders []store_model.Order,
	products []store_model.Product,
	outputPath string,
	periodDays int,
	storeName string,
) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	st, err := buildStyles(f)
	if err != nil {
		return "", fmt.Errorf("注册样式失败: %w", err)
	}

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return "", err
	}
	if _, err := f.NewSheet(sheetOrders); err != nil {
		return "", err
	}
	if _, err := f.NewSheet(sheetProducts); err != nil {
		return "", err
	}
	if _, err := f.NewSheet(sheetCountries); err != nil {
		return "", err
	}

	s.writeSummarySheet(f, st, orders, periodDays, storeName)
	s.writeOrdersSheet(f, st, orders)
	s.writeProductSheet(f, st, orders, products)
	s.writeCountrySheet(f, st, orders)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return "", fmt.Errorf("创建报表目录失败: %w", err)
	}
	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("保存报表失败: %w", err)
	}
	return outputPath, nil
}

func setTabColor(f *excelize.File, sheet, color string) {
	f.SetSheetProps(sheet, &excelize.SheetPropsOptions{TabColorRGB: &color})
}

// writeSummarySheet 汇总页：KPI 对比、平台拆分、Top5、日收入折线图
func (s *ReportService) writeSummarySheet(f *excelize.File, st *reportStyles, orders []store_model.Order, periodDays int, storeName string) {
	ws := sheetSummary
	setTabColor(f, ws, colorHeader)

	today := utils.DateOnly(time.Now())
	periodStart := today.AddDate(0, 0, -periodDays)
	prevStart := periodStart.AddDate(0, 0, -periodDays)
	prevEnd := periodStart.AddDate(0, 0, -1)

	current := s.analytics.CalculatePeriodMetrics(orders, periodStart, today)
	previous := s.analytics.CalculatePeriodMetrics(orders, prevStart, prevEnd)

	f.MergeCell(ws, "A1", "F1")
	f.SetCellValue(ws, "A1", fmt.Sprintf("%s - 销售报表", storeName))
	f.SetCellStyle(ws, "A1", "A1", st.title)

	f.MergeCell(ws, "A2", "F2")
	f.SetCellValue(ws, "A2", fmt.Sprintf("报表日期: %s | 周期: 最近 %d 天", utils.FormatDate(today), periodDays))
	f.SetCellStyle(ws, "A2", "A2", st.subtitle)

	// KPI 卡片
	row := 4
	kpiHeaders := []string{"指标", "本周期", "上一周期", "变化"}
	for i, h := range kpiHeaders {
		f.SetCellValue(ws, cell(i+1, row), h)
	}
	f.SetCellStyle(ws, cell(1, row), cell(4, row), st.header)

	type kpiRow struct {
		name       string
		curr, prev float64
		color      string
		isMoney    bool
	}
	kpis := []kpiRow{
		{"总订单数", float64(current.TotalOrders), float64(previous.TotalOrders), "green", false},
		{"毛收入", current.GrossRevenue.InexactFloat64(), previous.GrossRevenue.InexactFloat64(), "blue", true},
		{"净收入", current.NetRevenue.InexactFloat64(), previous.NetRevenue.InexactFloat64(), "orange", true},
		{"平均订单金额", current.AvgOrderValue.InexactFloat64(), previous.AvgOrderValue.InexactFloat64(), "purple", true},
		{"已售件数", float64(current.TotalItemsSold), float64(previous.TotalItemsSold), "green", false},
		{"独立买家数", float64(current.UniqueBuyers), float64(previous.UniqueBuyers), "blue", false},
	}
	for _, k := range kpis {
		row++
		f.SetCellValue(ws, cell(1, row), k.name)
		f.SetCellValue(ws, cell(2, row), k.curr)
		f.SetCellValue(ws, cell(3, row), k.prev)
		if k.prev > 0 {
			f.SetCellValue(ws, cell(4, row), (k.curr-k.prev)/k.prev)
		} else {
			f.SetCellValue(ws, cell(4, row), "-")
		}
		valStyle := st.kpi[k.color]
		if k.isMoney {
			valStyle = st.kpiMoney[k.color]
		}
		f.SetCellStyle(ws, cell(1, row), cell(1, row), st.kpi[k.color])
		f.SetCellStyle(ws, cell(2, row), cell(3, row), valStyle)
		f.SetCellStyle(ws, cell(4, row), cell(4, row), st.percent)
	}

	// 平台拆分
	row += 2
	f.SetCellValue(ws, cell(1, row), "平台拆分")
	f.SetCellStyle(ws, cell(1, row), cell(1, row), st.subtitle)
	row++
	platformHeaders := []string{"平台", "订单数", "毛收入", "净收入", "平均订单"}
	for i, h := range platformHeaders {
		f.SetCellValue(ws, cell(i+1, row), h)
	}
	f.SetCellStyle(ws, cell(1, row), cell(5, row), st.header)

	for _, platform := range []store_model.Platform{store_model.PlatformEtsy, store_model.PlatformAmazon} {
		var pOrders []store_model.Order
		for _, o := range orders {
			if o.Platform == platform {
				pOrders = append(pOrders, o)
			}
		}
		if len(pOrders) == 0 {
			continue
		}
		row++
		pm := s.analytics.CalculatePeriodMetrics(pOrders, periodStart, today)
		f.SetCellValue(ws, cell(1, row), strings.ToUpper(string(platform)))
		f.SetCellValue(ws, cell(2, row), pm.TotalOrders)
		f.SetCellValue(ws, cell(3, row), pm.GrossRevenue.InexactFloat64())
		f.SetCellValue(ws, cell(4, row), pm.NetRevenue.InexactFloat64())
		f.SetCellValue(ws, cell(5, row), pm.AvgOrderValue.InexactFloat64())
		platStyle := st.etsy
		if platform == store_model.PlatformAmazon {
			platStyle = st.amazon
		}
		f.SetCellStyle(ws, cell(1, row), cell(1, row), platStyle)
		f.SetCellStyle(ws, cell(2, row), cell(2, row), st.data)
		f.SetCellStyle(ws, cell(3, row), cell(5, row), st.money)
	}

	// 最高销量 Top5
	row += 2
	f.SetCellValue(ws, cell(1, row), "销量前 5 商品")
	f.SetCellStyle(ws, cell(1, row), cell(1, row), st.subtitle)
	row++
	topHeaders := []string{"#", "商品", "件数", "收入"}
	for i, h := range topHeaders {
		f.SetCellValue(ws, cell(i+1, row), h)
	}
	f.SetCellStyle(ws, cell(1, row), cell(4, row), st.header)

	for rank, ts := range s.analytics.GetTopSellers(orders, 5) {
		row++
		f.SetCellValue(ws, cell(1, row), rank+1)
		f.SetCellValue(ws, cell(2, row), truncateRunes(ts.Title, titleMaxRune))
		f.SetCellValue(ws, cell(3, row), ts.UnitsSold)
		f.SetCellValue(ws, cell(4, row), ts.Revenue.InexactFloat64())
		f.SetCellStyle(ws, cell(1, row), cell(3, row), st.data)
		f.SetCellStyle(ws, cell(4, row), cell(4, row), st.money)
	}

	// 日收入明细 + 折线图
	row += 2
	f.SetCellValue(ws, cell(1, row), fmt.Sprintf("日收入（最近 %d 天）", periodDays))
	f.SetCellStyle(ws, cell(1, row), cell(1, row), st.subtitle)
	row++
	chartHeaderRow := row
	f.SetCellValue(ws, cell(1, row), "日期")
	f.SetCellValue(ws, cell(2, row), "收入 ($)")
	f.SetCellStyle(ws, cell(1, row), cell(2, row), st.header)

	daily := s.analytics.GetDailyRevenue(orders, periodDays)
	for _, d := range daily {
		row++
		f.SetCellValue(ws, cell(1, row), d.Date.Format("01-02"))
		f.SetCellValue(ws, cell(2, row), d.Revenue.InexactFloat64())
		f.SetCellStyle(ws, cell(1, row), cell(1, row), st.data)
		f.SetCellStyle(ws, cell(2, row), cell(2, row), st.money)
	}

	if len(daily) > 0 {
		f.AddChart(ws, cell(4, chartHeaderRow), &excelize.Chart{
			Type: excelize.Line,
			Series: []excelize.ChartSeries{{
				Name:       fmt.Sprintf("%s!%s", ws, cell(2, chartHeaderRow)),
				Categories: fmt.Sprintf("%s!%s:%s", ws, cell(1, chartHeaderRow+1), cell(1, row)),
				Values:     fmt.Sprintf("%s!%s:%s", ws, cell(2, chartHeaderRow+1), cell(2, row)),
			}},
			Title:     []excelize.RichTextRun{{Text: "日收入趋势"}},
			Dimension: excelize.ChartDimension{Width: 640, Height: 320},
			Legend:    excelize.ChartLegend{Position: "bottom"},
		})
	}

	f.SetColWidth(ws, "A", "A", 24)
	f.SetColWidth(ws, "B", "F", 16)
}

// writeOrdersSheet 订单明细页，按下单时间倒序，末行为合计
func (s *ReportService) writeOrdersSheet(f *excelize.File, st *reportStyles, orders []store_model.Order) {
	ws := sheetOrders
	setTabColor(f, ws, "4CAF50")

	headers := []string{
		"日期", "平台", "订单号", "买家", "国家",
		"商品", "件数", "毛收入", "运费", "税费",
		"折扣", "平台扣费", "净收入", "状态",
	}
	for i, h := range headers {
		f.SetCellValue(ws, cell(i+1, 1), h)
	}
	f.SetCellStyle(ws, cell(1, 1), cell(len(headers), 1), st.header)

	sorted := make([]store_model.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderDate.After(sorted[j].OrderDate)
	})

	totalItems := 0
	totalGross := decimal.Zero
	totalNet := decimal.Zero

	for idx, o := range sorted {
		row := idx + 2

		var parts []string
		for i, item := range o.Items {
			if i >= 3 {
				parts = append(parts, fmt.Sprintf("+%d 更多", len(o.Items)-3))
				break
			}
			parts = append(parts, truncateRunes(item.ProductTitle, 30))
		}

		buyer := o.BuyerName
		if buyer == "" {
			buyer = "-"
		}
		country := o.BuyerCountry
		if country == "" {
			country = "-"
		}

		f.SetCellValue(ws, cell(1, row), utils.FormatDateTime(o.OrderDate))
		f.SetCellValue(ws, cell(2, row), strings.ToUpper(string(o.Platform)))
		f.SetCellValue(ws, cell(3, row), o.OrderId)
		f.SetCellValue(ws, cell(4, row), buyer)
		f.SetCellValue(ws, cell(5, row), country)
		f.SetCellValue(ws, cell(6, row), strings.Join(parts, ", "))
		f.SetCellValue(ws, cell(7, row), o.ItemCount())
		f.SetCellValue(ws, cell(8, row), o.GrossRevenue().InexactFloat64())
		f.SetCellValue(ws, cell(9, row), o.ShippingCost.InexactFloat64())
		f.SetCellValue(ws, cell(10, row), o.Tax.InexactFloat64())
		f.SetCellValue(ws, cell(11, row), o.Discount.InexactFloat64())
		f.SetCellValue(ws, cell(12, row), o.TotalFees().InexactFloat64())
		f.SetCellValue(ws, cell(13, row), o.NetRevenue().InexactFloat64())
		f.SetCellValue(ws, cell(14, row), string(o.Status))

		f.SetCellStyle(ws, cell(1, row), cell(7, row), st.data)
		f.SetCellStyle(ws, cell(8, row), cell(13, row), st.money)
		f.SetCellStyle(ws, cell(14, row), cell(14, row), st.data)
		platStyle := st.etsy
		if o.Platform == store_model.PlatformAmazon {
			platStyle = st.amazon
		}
		f.SetCellStyle(ws, cell(2, row), cell(2, row), platStyle)

		totalItems += o.ItemCount()
		totalGross = totalGross.Add(o.GrossRevenue())
		totalNet = totalNet.Add(o.NetRevenue())
	}

	totalRow := len(sorted) + 2
	f.SetCellValue(ws, cell(1, totalRow), "合计")
	f.SetCellValue(ws, cell(7, totalRow), totalItems)
	f.SetCellValue(ws, cell(8, totalRow), totalGross.InexactFloat64())
	f.SetCellValue(ws, cell(13, totalRow), totalNet.InexactFloat64())
	f.SetCellStyle(ws, cell(1, totalRow), cell(len(headers), totalRow), st.totalRow)
	f.SetCellStyle(ws, cell(8, totalRow), cell(8, totalRow), st.totalMoney)
	f.SetCellStyle(ws, cell(13, totalRow), cell(13, totalRow), st.totalMoney)

	if len(sorted) > 0 {
		f.AutoFilter(ws, fmt.Sprintf("A1:%s", cell(len(headers), totalRow-1)), nil)
	}
	f.SetPanes(ws, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
	f.SetColWidth(ws, "A", "A", 18)
	f.SetColWidth(ws, "F", "F", 40)
	f.SetColWidth(ws, "B", "E", 14)
	f.SetColWidth(ws, "G", "N", 13)
}

// writeProductSheet 商品表现页：逐商品指标 + 柱状图
func (s *ReportService) writeProductSheet(f *excelize.File, st *reportStyles, orders []store_model.Order, products []store_model.Product) {
	ws := sheetProducts
	setTabColor(f, ws, "FF9800")

	headers := []string{
		"平台", "商品", "价格", "库存", "浏览量",
		"收藏", "累计销量", "累计收入", "转化率",
		"收藏率", "状态", "预警",
	}
	for i, h := range headers {
		f.SetCellValue(ws, cell(i+1, 1), h)
	}
	f.SetCellStyle(ws, cell(1, 1), cell(len(headers), 1), st.header)

	// 从订单侧聚合各商品的实际销量与收入
	type saleInfo struct {
		units   int
		revenue decimal.Decimal
	}
	sales := map[string]*saleInfo{}
	for _, o := range orders {
		for _, item := range o.Items {
			info, ok := sales[item.ProductId]
			if !ok {
				info = &saleInfo{}
				sales[item.ProductId] = info
			}
			info.units += item.Quantity
			info.revenue = info.revenue.Add(item.TotalPrice())
		}
	}

	for idx, p := range products {
		row := idx + 2
		info := sales[p.ProductId]
		units := 0
		revenue := decimal.Zero
		if info != nil {
			units = info.units
			revenue = info.revenue
		}

		alert := ""
		switch {
		case p.Quantity == 0:
			alert = "库存售罄!"
		case p.Quantity <= 5:
			alert = "库存不足"
		case p.Views > 100 && p.ConversionRate() < 1.0:
			alert = "转化率偏低"
		case p.Favorites > 20 && units < 3:
			alert = "收藏多但不出单"
		}

		f.SetCellValue(ws, cell(1, row), strings.ToUpper(string(p.Platform)))
		f.SetCellValue(ws, cell(2, row), truncateRunes(p.Title, titleMaxRune))
		f.SetCellValue(ws, cell(3, row), p.Price.InexactFloat64())
		f.SetCellValue(ws, cell(4, row), p.Quantity)
		f.SetCellValue(ws, cell(5, row), p.Views)
		f.SetCellValue(ws, cell(6, row), p.Favorites)
		f.SetCellValue(ws, cell(7, row), units)
		f.SetCellValue(ws, cell(8, row), revenue.InexactFloat64())
		f.SetCellValue(ws, cell(9, row), p.ConversionRate()/100)
		f.SetCellValue(ws, cell(10, row), p.FavoriteRate()/100)
		f.SetCellValue(ws, cell(11, row), string(p.Status))
		f.SetCellValue(ws, cell(12, row), alert)

		platStyle := st.etsy
		if p.Platform == store_model.PlatformAmazon {
			platStyle = st.amazon
		}
		f.SetCellStyle(ws, cell(1, row), cell(1, row), platStyle)
		f.SetCellStyle(ws, cell(2, row), cell(2, row), st.data)
		f.SetCellStyle(ws, cell(3, row), cell(3, row), st.money)
		f.SetCellStyle(ws, cell(4, row), cell(7, row), st.data)
		f.SetCellStyle(ws, cell(8, row), cell(8, row), st.money)
		f.SetCellStyle(ws, cell(9, row), cell(10, row), st.percent)
		f.SetCellStyle(ws, cell(11, row), cell(11, row), st.data)
		switch {
		case strings.Contains(alert, "售罄"):
			f.SetCellStyle(ws, cell(12, row), cell(12, row), st.alertBad)
		case alert != "":
			f.SetCellStyle(ws, cell(12, row), cell(12, row), st.alertWarn)
		default:
			f.SetCellStyle(ws, cell(12, row), cell(12, row), st.data)
		}
	}

	top := s.analytics.GetTopSellers(orders, 8)
	if len(top) > 0 {
		chartRow := len(products) + 3
		f.SetCellValue(ws, cell(1, chartRow), "商品")
		f.SetCellValue(ws, cell(2, chartRow), "收入 ($)")
		f.SetCellValue(ws, cell(3, chartRow), "件数")
		for i, ts := range top {
			r := chartRow + 1 + i
			f.SetCellValue(ws, cell(1, r), truncateRunes(ts.Title, 25))
			f.SetCellValue(ws, cell(2, r), ts.Revenue.InexactFloat64())
			f.SetCellValue(ws, cell(3, r), ts.UnitsSold)
		}

		f.AddChart(ws, cell(5, chartRow), &excelize.Chart{
			Type: excelize.Col,
			Series: []excelize.ChartSeries{{
				Name:       fmt.Sprintf("%s!%s", ws, cell(2, chartRow)),
				Categories: fmt.Sprintf("%s!%s:%s", ws, cell(1, chartRow+1), cell(1, chartRow+len(top))),
				Values:     fmt.Sprintf("%s!%s:%s", ws, cell(2, chartRow+1), cell(2, chartRow+len(top))),
			}},
			Title:     []excelize.RichTextRun{{Text: "最高销量商品"}},
			Dimension: excelize.ChartDimension{Width: 640, Height: 360},
			Legend:    excelize.ChartLegend{Position: "bottom"},
		})
	}

	if len(products) > 0 {
		f.AutoFilter(ws, fmt.Sprintf("A1:%s", cell(len(headers), len(products)+1)), nil)
	}
	f.SetPanes(ws, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
	f.SetColWidth(ws, "B", "B", 40)
	f.SetColWidth(ws, "A", "A", 10)
	f.SetColWidth(ws, "C", "L", 12)
}

// writeCountrySheet 国家分布页：逐国家的订单数/收入/份额 + 饼图
func (s *ReportService) writeCountrySheet(f *excelize.File, st *reportStyles, orders []store_model.Order) {
	ws := sheetCountries
	setTabColor(f, ws, "9C27B0")

	headers := []string{"国家", "订单数", "总收入", "平均订单", "占比"}
	for i, h := range headers {
		f.SetCellValue(ws, cell(i+1, 1), h)
	}
	f.SetCellStyle(ws, cell(1, 1), cell(len(headers), 1), st.header)

	countries := s.analytics.GetCountryBreakdown(orders)
	totalOrders := len(orders)
	totalRevenue := decimal.Zero
	revenueByCountry := map[string]decimal.Decimal{}
	for _, o := range orders {
		totalRevenue = totalRevenue.Add(o.GrossRevenue())
		if o.BuyerCountry != "" {
			revenueByCountry[o.BuyerCountry] = revenueByCountry[o.BuyerCountry].Add(o.GrossRevenue())
		}
	}

	row := 1
	for _, c := range countries {
		row++
		countryRevenue := revenueByCountry[c.Country]
		avgOrder := decimal.Zero
		if c.Orders > 0 {
			avgOrder = countryRevenue.Div(decimal.NewFromInt(int64(c.Orders)))
		}
		share := 0.0
		if totalOrders > 0 {
			share = float64(c.Orders) / float64(totalOrders)
		}

		f.SetCellValue(ws, cell(1, row), c.Country)
		f.SetCellValue(ws, cell(2, row), c.Orders)
		f.SetCellValue(ws, cell(3, row), countryRevenue.InexactFloat64())
		f.SetCellValue(ws, cell(4, row), avgOrder.InexactFloat64())
		f.SetCellValue(ws, cell(5, row), share)
		f.SetCellStyle(ws, cell(1, row), cell(2, row), st.data)
		f.SetCellStyle(ws, cell(3, row), cell(4, row), st.money)
		f.SetCellStyle(ws, cell(5, row), cell(5, row), st.percent)
	}
	lastDataRow := row

	row++
	f.SetCellValue(ws, cell(1, row), "合计")
	f.SetCellValue(ws, cell(2, row), totalOrders)
	f.SetCellValue(ws, cell(3, row), totalRevenue.InexactFloat64())
	f.SetCellValue(ws, cell(5, row), 1.0)
	f.SetCellStyle(ws, cell(1, row), cell(len(headers), row), st.totalRow)
	f.SetCellStyle(ws, cell(3, row), cell(3, row), st.totalMoney)

	if len(countries) > 1 {
		// 饼图最多展示前 10 个国家
		maxRow := min(lastDataRow, 11)
		f.AddChart(ws, "G2", &excelize.Chart{
			Type: excelize.Pie,
			Series: []excelize.ChartSeries{{
				Name:       fmt.Sprintf("%s!%s", ws, cell(2, 1)),
				Categories: fmt.Sprintf("%s!%s:%s", ws, cell(1, 2), cell(1, maxRow)),
				Values:     fmt.Sprintf("%s!%s:%s", ws, cell(2, 2), cell(2, maxRow)),
			}},
			Title:     []excelize.RichTextRun{{Text: "国家分布"}},
			Dimension: excelize.ChartDimension{Width: 480, Height: 360},
			PlotArea:  excelize.ChartPlotArea{ShowPercent: true},
			Legend:    excelize.ChartLegend{Position: "right"},
		})
	}

	f.SetColWidth(ws, "A", "E", 14)
}
