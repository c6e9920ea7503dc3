package parser_service

import (
	"fmt"
	"io"
	"time"

	"ecommerce-manager/model/store_model"
)

// Amazon 报表里出现过的日期格式
var amazonDateFormats = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"Jan 2, 2006",
	"02/01/2006",
}

// Amazon 订单状态 → 统一状态，映射不到的落 pending
var amazonStatusMap = map[string]store_model.OrderStatus{
	"pending":   store_model.OrderStatusPending,
	"unshipped": store_model.OrderStatusPaid,
	"shipped":   store_model.OrderStatusShipped,
	"cancelled": store_model.OrderStatusCancelled,
	"refunded":  store_model.OrderStatusRefunded,
}

func mapAmazonStatus(status string) store_model.OrderStatus {
	if s, ok := amazonStatusMap[normalizeKey(status)]; ok {
		return s
	}
	return store_model.OrderStatusPending
}

// ParseAmazonOrders 解析 Amazon All Orders Report
// Seller Central 的导出可能是 tab 分隔也可能是逗号分隔，按内容探测
func ParseAmazonOrders(path string) ([]store_model.Order, error) {
	reader, f, err := openDelimited(path, true)
	if err != nil {
		return nil, fmt.Errorf("打开 Amazon 订单文件失败: %w", err)
	}
	defer f.Close()

	header, err := readHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("读取表头失败: %w", err)
	}

	orders := make(map[string]*store_model.Order)
	orderIds := make([]string, 0)

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("读取数据行失败: %w", err)
		}
		row := rowReader{header: header, row: record}

		orderId := row.get("amazon-order-id")
		if orderId == "" {
			continue
		}

		item := store_model.OrderItem{
			ProductId:    row.get("asin"),
			ProductTitle: row.get("product-name"),
			Quantity:     parseInt(row.get("quantity-purchased"), 1),
			UnitPrice:    parseMoney(row.get("item-price")),
			Sku:          row.get("sku"),
		}

		if existing, ok := orders[orderId]; ok {
			existing.Items = append(existing.Items, item)
			existing.Subtotal = existing.Subtotal.Add(parseMoney(row.get("item-price")))
			continue
		}

		orderDate, ok := parseDateFormats(row.get("purchase-date"), amazonDateFormats)
		if !ok {
			orderDate = time.Now()
		}
		currency := row.get("currency")
		if currency == "" {
			currency = "USD"
		}

		orders[orderId] = &store_model.Order{
			OrderId:        orderId,
			Platform:       store_model.PlatformAmazon,
			OrderDate:      orderDate,
			Status:         mapAmazonStatus(row.get("order-status")),
			Items:          []store_model.OrderItem{item},
			Currency:       currency,
			BuyerName:      row.get("buyer-name"),
			BuyerCountry:   row.get("ship-country"),
			Subtotal:       parseMoney(row.get("item-price")),
			ShippingCost:   parseMoney(row.get("shipping-price")),
			Tax:            parseMoney(row.get("item-tax")),
			TrackingNumber: row.get("tracking-number"),
		}
		orderIds = append(orderIds, orderId)
	}

	result := make([]store_model.Order, 0, len(orderIds))
	for _, id := range orderIds {
		result = append(result, *orders[id])
	}
	return result, nil
}

// ParseAmazonBusinessReport 解析 Business Report（Detail Page Sales and Traffic）
// 报表里没有价格，Price 保持 0；浏览量、销量、销售额用于引擎侧的互动分析
func ParseAmazonBusinessReport(path string) ([]store_model.Product, error) {
	reader, f, err := openDelimited(path, true)
	if err != nil {
		return nil, fmt.Errorf("打开 business report 失败: %w", err)
	}
	defer f.Close()

	header, err := readHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("读取表头失败: %w", err)
	}

	products := make([]store_model.Product, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("读取数据行失败: %w", err)
		}
		row := rowReader{header: header, row: record}

		asin := row.get("(Child) ASIN")
		if asin == "" {
			asin = row.get("ASIN")
		}
		if asin == "" {
			continue
		}

		products = append(products, store_model.Product{
			ProductId:    asin,
			Platform:     store_model.PlatformAmazon,
			Title:        row.get("Title"),
			Currency:     "USD",
			Status:       store_model.ProductStatusActive,
			Views:        parseInt(row.get("Page Views"), 0),
			TotalSold:    parseInt(row.get("Units Ordered"), 0),
			TotalRevenue: parseMoney(row.get("Ordered Product Sales")),
		})
	}
	return products, nil
}
