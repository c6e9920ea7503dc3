package charts

import (
	"bytes"
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"

	"ecommerce-manager/model/store_model"
	"ecommerce-manager/utils"
)

// 平台配色，跟各平台官方色一致
const (
	colorPrimary = "#2E86AB"
	colorEtsy    = "#F56400"
	colorAmazon  = "#FF9900"
	colorGrid    = "#DDDDDD"
	colorText    = "#444444"
)

var pieColors = []string{"#2E86AB", "#F56400", "#FF9900", "#6A994E", "#BC4749", "#7209B7", "#F4A261", "#606C38"}

// RenderDailyRevenue 日营收折线图
func RenderDailyRevenue(series []store_model.DailyRevenue, width, height int) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	marginLeft, marginRight := 60, 20
	marginTop, marginBottom := 20, 40
	plotW := width - marginLeft - marginRight
	plotH := height - marginTop - marginBottom

	maxVal := 0.0
	for _, d := range series {
		if v := d.Revenue.InexactFloat64(); v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// 横向网格线和刻度
	for i := 0; i <= 4; i++ {
		y := marginTop + plotH*i/4
		canvas.Line(marginLeft, y, width-marginRight, y, fmt.Sprintf("stroke:%s;stroke-width:1", colorGrid))
		label := maxVal * float64(4-i) / 4
		canvas.Text(marginLeft-8, y+4, fmt.Sprintf("$%.0f", label),
			fmt.Sprintf("text-anchor:end;font-size:10px;fill:%s", colorText))
	}

	if len(series) > 1 {
		xs := make([]int, len(series))
		ys := make([]int, len(series))
		for i, d := range series {
			xs[i] = marginLeft + plotW*i/(len(series)-1)
			ys[i] = marginTop + plotH - int(float64(plotH)*d.Revenue.InexactFloat64()/maxVal)
		}
		canvas.Polyline(xs, ys, fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", colorPrimary))

		// 首尾日期标签
		canvas.Text(xs[0], height-marginBottom+16, utils.FormatDate(series[0].Date),
			fmt.Sprintf("text-anchor:start;font-size:10px;fill:%s", colorText))
		canvas.Text(xs[len(xs)-1], height-marginBottom+16, utils.FormatDate(series[len(series)-1].Date),
			fmt.Sprintf("text-anchor:end;font-size:10px;fill:%s", colorText))
	}

	canvas.End()
	return buf.Bytes()
}

// RenderTopSellers 商品营收横向柱状图
func RenderTopSellers(sellers []store_model.ProductPerformance, width, height int) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	if len(sellers) == 0 {
		canvas.Text(width/2, height/2, "暂无数据",
			fmt.Sprintf("text-anchor:middle;font-size:14px;fill:%s", colorText))
		canvas.End()
		return buf.Bytes()
	}

	maxVal := sellers[0].Revenue.InexactFloat64()
	if maxVal == 0 {
		maxVal = 1
	}

	marginLeft := 220
	barAreaW := width - marginLeft - 80
	rowH := height / len(sellers)
	barH := rowH * 6 / 10

	for i, s := range sellers {
		y := i*rowH + (rowH-barH)/2
		barW := int(float64(barAreaW) * s.Revenue.InexactFloat64() / maxVal)
		title := s.Title
		if len([]rune(title)) > 28 {
			title = string([]rune(title)[:28]) + "…"
		}
		canvas.Text(marginLeft-8, y+barH/2+4, title,
			fmt.Sprintf("text-anchor:end;font-size:11px;fill:%s", colorText))
		canvas.Rect(marginLeft, y, barW, barH, fmt.Sprintf("fill:%s", colorPrimary))
		canvas.Text(marginLeft+barW+6, y+barH/2+4, fmt.Sprintf("$%s", s.Revenue.StringFixed(2)),
			fmt.Sprintf("text-anchor:start;font-size:10px;fill:%s", colorText))
	}

	canvas.End()
	return buf.Bytes()
}

// RenderCountryPie 国家订单占比饼图
func RenderCountryPie(countries []store_model.CountryCount, width, height int) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	total := 0
	for _, c := range countries {
		total += c.Orders
	}
	if total == 0 {
		canvas.Text(width/2, height/2, "暂无数据",
			fmt.Sprintf("text-anchor:middle;font-size:14px;fill:%s", colorText))
		canvas.End()
		return buf.Bytes()
	}

	cx, cy := width/2-60, height/2
	radius := float64(min(width, height))/2 - 30

	angle := -math.Pi / 2
	for i, c := range countries {
		frac := float64(c.Orders) / float64(total)
		next := angle + frac*2*math.Pi
		color := pieColors[i%len(pieColors)]

		// 占比 100% 时弧线起点终点重合，画不出扇形，直接画整圆
		if frac >= 1.0 {
			canvas.Circle(cx, cy, int(radius), fmt.Sprintf("fill:%s;stroke:white;stroke-width:1", color))

			ly := 30 + i*20
			canvas.Rect(width-140, ly-10, 12, 12, fmt.Sprintf("fill:%s", color))
			canvas.Text(width-122, ly, fmt.Sprintf("%s (%d)", c.Country, c.Orders),
				fmt.Sprintf("text-anchor:start;font-size:11px;fill:%s", colorText))
			angle = next
			continue
		}

		x1 := float64(cx) + radius*math.Cos(angle)
		y1 := float64(cy) + radius*math.Sin(angle)
		x2 := float64(cx) + radius*math.Cos(next)
		y2 := float64(cy) + radius*math.Sin(next)

		largeArc := 0
		if frac > 0.5 {
			largeArc = 1
		}

		path := fmt.Sprintf("M%d,%d L%.2f,%.2f A%.2f,%.2f 0 %d 1 %.2f,%.2f Z",
			cx, cy, x1, y1, radius, radius, largeArc, x2, y2)
		canvas.Path(path, fmt.Sprintf("fill:%s;stroke:white;stroke-width:1", color))

		// 图例
		ly := 30 + i*20
		canvas.Rect(width-140, ly-10, 12, 12, fmt.Sprintf("fill:%s", color))
		canvas.Text(width-122, ly, fmt.Sprintf("%s (%d)", c.Country, c.Orders),
			fmt.Sprintf("text-anchor:start;font-size:11px;fill:%s", colorText))

		angle = next
	}

	canvas.End()
	return buf.Bytes()
}
