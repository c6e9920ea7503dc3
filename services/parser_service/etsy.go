package parser_service

import (
	"fmt"
	"io"
	"time"

	"ecommerce-manager/model/store_model"
)

// Etsy 导出文件里出现过的日期格式
var etsyDateFormats = []string{
	"Jan 2, 2006",
	"01/02/2006",
	"2006-01-02",
	"2 Jan 2006",
}

// Etsy 订单状态 → 统一状态，映射不到的落 pending
var etsyStatusMap = map[string]store_model.OrderStatus{
	"paid":      store_model.OrderStatusPaid,
	"completed": store_model.OrderStatusDelivered,
	"shipped":   store_model.OrderStatusShipped,
	"cancelled": store_model.OrderStatusCancelled,
	"refunded":  store_model.OrderStatusRefunded,
	"open":      store_model.OrderStatusPending,
}

func mapEtsyStatus(status string) store_model.OrderStatus {
	if s, ok := etsyStatusMap[normalizeKey(status)]; ok {
		return s
	}
	return store_model.OrderStatusPending
}

// ParseEtsyOrders 解析 Etsy 订单导出 CSV（EtsySoldOrders*.csv）
// 同一订单多件商品在导出里是多行，按 Order ID 归并，小计逐行累加
func ParseEtsyOrders(path string) ([]store_model.Order, error) {
	reader, f, err := openDelimited(path, false)
	if err != nil {
		return nil, fmt.Errorf("打开 Etsy 订单文件失败: %w", err)
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

		orderId := row.get("Order ID")
		if orderId == "" {
			continue
		}

		item := store_model.OrderItem{
			ProductId:    row.get("Listing ID"),
			ProductTitle: row.get("Item Name"),
			Quantity:     parseInt(row.get("Quantity"), 1),
			UnitPrice:    parseMoney(row.get("Price")),
			Variation:    row.get("Variations"),
		}

		if existing, ok := orders[orderId]; ok {
			existing.Items = append(existing.Items, item)
			existing.Subtotal = existing.Subtotal.Add(parseMoney(row.get("Item Total")))
			continue
		}

		orderDate, ok := parseDateFormats(row.get("Sale Date"), etsyDateFormats)
		if !ok {
			orderDate = time.Now()
		}
		currency := row.get("Currency")
		if currency == "" {
			currency = "USD"
		}

		orders[orderId] = &store_model.Order{
			OrderId:        orderId,
			Platform:       store_model.PlatformEtsy,
			OrderDate:      orderDate,
			Status:         mapEtsyStatus(row.get("Order Type")),
			Items:          []store_model.OrderItem{item},
			Currency:       currency,
			BuyerName:      row.get("Full Name"),
			BuyerCountry:   row.get("Ship Country"),
			Subtotal:       parseMoney(row.get("Item Total")),
			ShippingCost:   parseMoney(row.get("Order Shipping")),
			Tax:            parseMoney(row.get("Order Sales Tax")),
			Discount:       parseMoney(row.get("Discount Amount")),
			TrackingNumber: row.get("Tracking Number"),
		}
		orderIds = append(orderIds, orderId)
	}

	result := make([]store_model.Order, 0, len(orderIds))
	for _, id := range orderIds {
		result = append(result, *orders[id])
	}
	return result, nil
}

// Etsy listing 状态映射
var etsyListingStatusMap = map[string]store_model.ProductStatus{
	"active":   store_model.ProductStatusActive,
	"inactive": store_model.ProductStatusInactive,
	"draft":    store_model.ProductStatusDraft,
	"sold_out": store_model.ProductStatusSoldOut,
}

// ParseEtsyListings 解析 Etsy listing 导出 CSV（EtsyListings*.csv）
func ParseEtsyListings(path string) ([]store_model.Product, error) {
	reader, f, err := openDelimited(path, false)
	if err != nil {
		return nil, fmt.Errorf("打开 Etsy listing 文件失败: %w", err)
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

		tags := splitTags(row.get("TAGS"))

		status, ok := etsyListingStatusMap[normalizeKey(row.get("STATE"))]
		if !ok {
			status = store_model.ProductStatusActive
		}
		currency := row.get("CURRENCY_CODE")
		if currency == "" {
			currency = "USD"
		}

		products = append(products, store_model.Product{
			ProductId:   row.get("LISTING_ID"),
			Platform:    store_model.PlatformEtsy,
			Title:       row.get("TITLE"),
			Price:       parseMoney(row.get("PRICE")),
			Currency:    currency,
			Description: row.get("DESCRIPTION"),
			Tags:        tags,
			Status:      status,
			Quantity:    parseInt(row.get("QUANTITY"), 0),
			Views:       parseInt(row.get("VIEWS"), 0),
			Favorites:   parseInt(row.get("NUM_FAVORERS"), 0),
		})
	}
	return products, nil
}
