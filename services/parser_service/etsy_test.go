package parser_service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-manager/model/store_model"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const etsyOrdersCSV = `Sale Date,Order ID,Full Name,Item Name,Quantity,Price,Discount Amount,Order Shipping,Order Sales Tax,Item Total,Currency,Listing ID,Ship Country,Order Type,Tracking Number
"Jun 15, 2025",3001000,Emma Smith,Handmade Wooden Phone Stand,2,$24.99,$0.00,$5.99,$2.00,$49.98,USD,1001,US,completed,TRK123
"Jun 15, 2025",3001000,Emma Smith,Resin Earrings - Floral,1,$15.50,$0.00,$5.99,$2.00,$15.50,USD,1009,US,completed,TRK123
"Jun 16, 2025",3001001,John Clark,Ceramic Coffee Mug,1,$18.00,$1.80,$0.00,$0.00,$18.00,USD,1006,UK,paid,TRK456
`

func TestParseEtsyOrdersMultiRowGrouping(t *testing.T) {
	path := writeFixture(t, "EtsySoldOrders2025.csv", etsyOrdersCSV)

	orders, err := ParseEtsyOrders(path)
	require.NoError(t, err)
	require.Len(t, orders, 2, "同一 Order ID 的多行归并成一个订单")

	first := orders[0]
	assert.Equal(t, "3001000", first.OrderId)
	assert.Equal(t, store_model.PlatformEtsy, first.Platform)
	assert.Equal(t, store_model.OrderStatusDelivered, first.Status, "completed 映射成 delivered")
	require.Len(t, first.Items, 2)
	assert.Equal(t, "1001", first.Items[0].ProductId)
	assert.Equal(t, 2, first.Items[0].Quantity)
	assert.True(t, first.Items[0].UnitPrice.Equal(decimal.RequireFromString("24.99")))
	// 小计按行累加
	assert.True(t, first.Subtotal.Equal(decimal.RequireFromString("65.48")))
	assert.Equal(t, "Emma Smith", first.BuyerName)
	assert.Equal(t, "US", first.BuyerCountry)
	assert.Equal(t, 2025, first.OrderDate.Year())
	assert.Equal(t, 15, first.OrderDate.Day())

	second := orders[1]
	assert.Equal(t, store_model.OrderStatusPaid, second.Status)
	assert.True(t, second.Discount.Equal(decimal.RequireFromString("1.80")))
	assert.True(t, second.ShippingCost.IsZero())
}

func TestParseEtsyOrdersWithBOM(t *testing.T) {
	path := writeFixture(t, "orders.csv", "\xEF\xBB\xBF"+etsyOrdersCSV)

	orders, err := ParseEtsyOrders(path)
	require.NoError(t, err)
	assert.Len(t, orders, 2, "带 BOM 的文件第一列列名也能匹配上")
	assert.Equal(t, "3001000", orders[0].OrderId)
}

func TestParseEtsyOrdersUnknownStatusFallsBack(t *testing.T) {
	csv := `Sale Date,Order ID,Full Name,Item Name,Quantity,Price,Item Total,Order Type
"Jun 15, 2025",1,A,Item,1,$10.00,$10.00,weird_status
`
	path := writeFixture(t, "orders.csv", csv)
	orders, err := ParseEtsyOrders(path)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, store_model.OrderStatusPending, orders[0].Status)
	assert.Equal(t, "USD", orders[0].Currency, "缺币种时兜底 USD")
}

const etsyListingsCSV = `TITLE,DESCRIPTION,PRICE,CURRENCY_CODE,QUANTITY,TAGS,LISTING_ID,STATE,VIEWS,NUM_FAVORERS
Handmade Wooden Phone Stand,Beautiful stand.,24.99,USD,12,"handmade,gift, wooden stand",1001,active,1500,120
Macrame Wall Hanging,,55.00,USD,0,,1005,sold_out,800,60
`

func TestParseEtsyListings(t *testing.T) {
	path := writeFixture(t, "EtsyListingsDownload.csv", etsyListingsCSV)

	products, err := ParseEtsyListings(path)
	require.NoError(t, err)
	require.Len(t, products, 2)

	first := products[0]
	assert.Equal(t, "1001", first.ProductId)
	assert.Equal(t, store_model.ProductStatusActive, first.Status)
	assert.Equal(t, []string{"handmade", "gift", "wooden stand"}, first.Tags, "标签去掉空白")
	assert.Equal(t, 1500, first.Views)
	assert.Equal(t, 120, first.Favorites)
	assert.True(t, first.Price.Equal(decimal.RequireFromString("24.99")))

	second := products[1]
	assert.Equal(t, store_model.ProductStatusSoldOut, second.Status)
	assert.Empty(t, second.Tags)
	assert.Equal(t, 0, second.Quantity)
}

func TestParseMoney(t *testing.T) {
	cases := map[string]string{
		"$12.50":    "12.50",
		"1,299.00":  "1299.00",
		"€30":       "30",
		"£5.99":     "5.99",
		"":          "0",
		"not-money": "0",
	}
	for input, expected := range cases {
		assert.True(t, parseMoney(input).Equal(decimal.RequireFromString(expected)), "input=%q", input)
	}
}

func TestParseIntFallback(t *testing.T) {
	assert.Equal(t, 42, parseInt("42", 0))
	assert.Equal(t, 1299, parseInt("1,299", 0))
	assert.Equal(t, 7, parseInt("", 7))
	assert.Equal(t, 7, parseInt("abc", 7))
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b c", "d"}, splitTags("a, b c ,d,"))
	assert.Empty(t, splitTags(""))
	assert.Empty(t, splitTags(" , , "))
}
