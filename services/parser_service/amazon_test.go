package parser_service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-manager/model/store_model"
)

const amazonOrdersTSV = "amazon-order-id\tpurchase-date\torder-status\tbuyer-name\tship-country\tsku\tasin\tproduct-name\tquantity-purchased\titem-price\titem-tax\tshipping-price\tcurrency\n" +
	"111-0000001-0000001\t2025-06-15T10:30:00+00:00\tShipped\tLiam Brown\tUS\tSKU-001\tB08XYZ1001\tStainless Steel Water Bottle\t1\t19.99\t1.60\t0.00\tUSD\n" +
	"111-0000001-0000001\t2025-06-15T10:30:00+00:00\tShipped\tLiam Brown\tUS\tSKU-002\tB08XYZ1002\tBamboo Cutting Board\t2\t45.98\t3.68\t0.00\tUSD\n" +
	"111-0000002-0000002\t2025-06-16T08:00:00+00:00\tUnshipped\tMia Davis\tDE\tSKU-003\tB08XYZ1003\tYoga Mat\t1\t25.99\t0.00\t4.99\tEUR\n"

func TestParseAmazonOrdersTabDelimited(t *testing.T) {
	path := writeFixture(t, "All_Orders_Report.txt", amazonOrdersTSV)

	orders, err := ParseAmazonOrders(path)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	first := orders[0]
	assert.Equal(t, "111-0000001-0000001", first.OrderId)
	assert.Equal(t, store_model.PlatformAmazon, first.Platform)
	assert.Equal(t, store_model.OrderStatusShipped, first.Status)
	require.Len(t, first.Items, 2)
	assert.Equal(t, "B08XYZ1001", first.Items[0].ProductId)
	assert.Equal(t, "SKU-002", first.Items[1].Sku)
	assert.Equal(t, 2, first.Items[1].Quantity)
	// item-price 逐行累加
	assert.True(t, first.Subtotal.Equal(decimal.RequireFromString("65.97")))
	assert.Equal(t, 2025, first.OrderDate.Year())
	assert.Equal(t, 15, first.OrderDate.Day())

	second := orders[1]
	assert.Equal(t, store_model.OrderStatusPaid, second.Status, "unshipped 视为已付款")
	assert.Equal(t, "EUR", second.Currency)
	assert.Equal(t, "DE", second.BuyerCountry)
	assert.True(t, second.ShippingCost.Equal(decimal.RequireFromString("4.99")))
}

func TestParseAmazonOrdersCommaDelimited(t *testing.T) {
	csv := "amazon-order-id,purchase-date,order-status,asin,product-name,quantity-purchased,item-price\n" +
		"111-1,2025-06-15,Pending,B001,Widget,1,10.00\n"
	path := writeFixture(t, "orders.csv", csv)

	orders, err := ParseAmazonOrders(path)
	require.NoError(t, err)
	require.Len(t, orders, 1, "没有 tab 时按逗号解析")
	assert.Equal(t, store_model.OrderStatusPending, orders[0].Status)
	assert.Equal(t, "USD", orders[0].Currency)
}

const amazonBusinessCSV = `(Child) ASIN,Title,Page Views,Units Ordered,Ordered Product Sales
B08XYZ1001,Stainless Steel Water Bottle,"1,250",48,"$959.52"
,Missing ASIN Row,100,1,$10.00
B08XYZ1003,Yoga Mat,860,22,$571.78
`

func TestParseAmazonBusinessReport(t *testing.T) {
	path := writeFixture(t, "BusinessReport.csv", amazonBusinessCSV)

	products, err := ParseAmazonBusinessReport(path)
	require.NoError(t, err)
	require.Len(t, products, 2, "没有 ASIN 的行跳过")

	first := products[0]
	assert.Equal(t, "B08XYZ1001", first.ProductId)
	assert.Equal(t, store_model.PlatformAmazon, first.Platform)
	assert.Equal(t, 1250, first.Views)
	assert.Equal(t, 48, first.TotalSold)
	assert.True(t, first.TotalRevenue.Equal(decimal.RequireFromString("959.52")))
	assert.True(t, first.Price.IsZero(), "business report 里没有单价")
	assert.Equal(t, store_model.ProductStatusActive, first.Status)
}

func TestParseAmazonBusinessReportASINFallback(t *testing.T) {
	csv := `ASIN,Title,Page Views,Units Ordered,Ordered Product Sales
B09AAA0001,Desk Lamp,300,5,$120.00
`
	path := writeFixture(t, "report.csv", csv)

	products, err := ParseAmazonBusinessReport(path)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "B09AAA0001", products[0].ProductId)
}
