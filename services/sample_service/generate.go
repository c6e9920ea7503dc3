package sample_service

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"ecommerce-manager/config"
)

// sampleProduct 示例商品（商品 ID、标题、单价、类目）
type sampleProduct struct {
	id       string
	title    string
	price    float64
	category string
}

var etsyProducts = []sampleProduct{
	{"1001", "Handmade Wooden Phone Stand", 24.99, "Home & Living"},
	{"1002", "Custom Name Necklace - Gold", 34.50, "Jewelry"},
	{"1003", "Vintage Style Leather Journal", 29.00, "Paper & Party"},
	{"1004", "Personalized Family Portrait", 45.00, "Art & Collectibles"},
	{"1005", "Macrame Wall Hanging - Large", 55.00, "Home & Living"},
	{"1006", "Ceramic Coffee Mug - Handmade", 18.00, "Home & Living"},
	{"1007", "Digital Wedding Invitation", 12.99, "Paper & Party"},
	{"1008", "Knitted Baby Blanket", 38.00, "Toys & Baby"},
	{"1009", "Resin Earrings - Floral", 15.50, "Jewelry"},
	{"1010", "Custom Pet Portrait Digital", 35.00, "Art & Collectibles"},
}

var amazonProducts = []sampleProduct{
	{"B0A1111", "Bamboo Cutting Board Set (3 Pack)", 28.99, ""},
	{"B0A2222", "LED Desk Lamp with USB Charging", 32.50, ""},
	{"B0A3333", "Stainless Steel Water Bottle 750ml", 19.99, ""},
	{"B0A4444", "Organic Cotton Tote Bag - 5 Pack", 22.00, ""},
	{"B0A5555", "Silicone Kitchen Utensil Set", 24.99, ""},
	{"B0A6666", "Yoga Mat with Carrying Strap", 35.00, ""},
	{"B0A7777", "Portable Phone Charger 10000mAh", 27.50, ""},
	{"B0A8888", "Bamboo Toothbrush Set (8 Pack)", 12.99, ""},
	{"B0A9999", "Reusable Beeswax Food Wraps", 16.50, ""},
	{"B0A0000", "Essential Oil Diffuser - Wood Grain", 29.99, ""},
}

var (
	sampleCountries = []string{"US", "UK", "CA", "AU", "DE", "FR", "TR", "NL", "JP", "IT"}
	countryWeights  = []int{40, 15, 10, 5, 5, 5, 5, 5, 5, 5}
	firstNames      = []string{"Emma", "James", "Sarah", "Michael", "Lisa", "David", "Anna", "John", "Maria", "Robert"}
	lastNames       = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller", "Davis", "Wilson", "Taylor", "Clark"}
)

// SampleService 生成用于演示和测试的样例订单/商品文件
type SampleService struct {
	rng *rand.Rand
}

func NewSampleService(seed int64) *SampleService {
	return &SampleService{rng: rand.New(rand.NewSource(seed))}
}

func (s *SampleService) randomDate(daysBack int) time.Time {
	start := time.Now().AddDate(0, 0, -daysBack)
	return start.Add(time.Duration(s.rng.Intn(daysBack))*24*time.Hour +
		time.Duration(s.rng.Intn(24))*time.Hour +
		time.Duration(s.rng.Intn(60))*time.Minute)
}

func (s *SampleService) randomName() string {
	return firstNames[s.rng.Intn(len(firstNames))] + " " + lastNames[s.rng.Intn(len(lastNames))]
}

// weightedChoice 按权重随机取一个下标
func (s *SampleService) weightedChoice(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	n := s.rng.Intn(total)
	for i, w := range weights {
		if n < w {
			return i
		}
		n -= w
	}
	return len(weights) - 1
}

func writeCSVFile(path string, delimiter rune, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建样例数据目录失败: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建样例文件失败: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = delimiter
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// GenerateAll 在配置的数据目录下生成全部四个样例文件
func (s *SampleService) GenerateAll(cfg config.DataConfig, etsyOrders, amazonOrders int) error {
	if err := s.GenerateEtsyOrders(filepath.Join(cfg.EtsyDir, "EtsySoldOrders2025.csv"), etsyOrders); err != nil {
		return err
	}
	if err := s.GenerateEtsyListings(filepath.Join(cfg.EtsyDir, "EtsyListingsDownload.csv")); err != nil {
		return err
	}
	if err := s.GenerateAmazonOrders(filepath.Join(cfg.AmazonDir, "All_Orders_Report.txt"), amazonOrders); err != nil {
		return err
	}
	return s.GenerateAmazonBusinessReport(filepath.Join(cfg.AmazonDir, "BusinessReport.csv"))
}

// GenerateEtsyOrders 生成 Etsy 订单 CSV
func (s *SampleService) GenerateEtsyOrders(path string, count int) error {
	header := []string{
		"Sale Date", "Order ID", "Buyer User ID", "Full Name",
		"Item Name", "Quantity", "Price", "Coupon Code", "Coupon Details",
		"Discount Amount", "Shipping Discount", "Order Shipping",
		"Order Sales Tax", "Item Total", "Currency", "Transaction ID",
		"Listing ID", "Date Shipped", "Ship City", "Ship State",
		"Ship Zipcode", "Ship Country", "Variations", "Order Type",
		"Tracking Number",
	}

	qtyWeights := []int{70, 20, 10}
	orderTypes := []string{"paid", "completed", "completed", "completed"}
	shippingChoices := []float64{0, 3.99, 5.99, 7.99}

	rows := make([][]string, 0, count)
	for i := 0; i < count; i++ {
		p := etsyProducts[s.rng.Intn(len(etsyProducts))]
		qty := s.weightedChoice(qtyWeights) + 1
		total := p.price * float64(qty)
		date := s.randomDate(90)

		discount := 0.0
		switch s.rng.Intn(5) {
		case 3:
			discount = total * 0.10
		case 4:
			discount = total * 0.15
		}
		shipping := shippingChoices[s.rng.Intn(len(shippingChoices))]
		tax := 0.0
		switch s.rng.Intn(4) {
		case 2:
			tax = total * 0.08
		case 3:
			tax = total * 0.10
		}

		rows = append(rows, []string{
			date.Format("Jan 2, 2006"),
			strconv.Itoa(3001000 + i),
			fmt.Sprintf("buyer_%d", 10000+s.rng.Intn(90000)),
			s.randomName(),
			p.title,
			strconv.Itoa(qty),
			fmt.Sprintf("$%.2f", p.price),
			"",
			"",
			fmt.Sprintf("$%.2f", discount),
			"$0.00",
			fmt.Sprintf("$%.2f", shipping),
			fmt.Sprintf("$%.2f", tax),
			fmt.Sprintf("$%.2f", total),
			"USD",
			uuid.NewString(),
			p.id,
			date.AddDate(0, 0, 1+s.rng.Intn(5)).Format("Jan 2, 2006"),
			"Some City",
			"CA",
			strconv.Itoa(10000 + s.rng.Intn(90000)),
			sampleCountries[s.rng.Intn(len(sampleCountries))],
			"",
			orderTypes[s.rng.Intn(len(orderTypes))],
			fmt.Sprintf("TRK%09d", s.rng.Intn(1000000000)),
		})
	}
	return writeCSVFile(path, ',', header, rows)
}

// GenerateEtsyListings 生成 Etsy 商品 CSV
func (s *SampleService) GenerateEtsyListings(path string) error {
	header := []string{
		"TITLE", "DESCRIPTION", "PRICE", "CURRENCY_CODE", "QUANTITY",
		"TAGS", "MATERIALS", "LISTING_ID", "STATE", "URL",
		"VIEWS", "NUM_FAVORERS",
	}

	rows := make([][]string, 0, len(etsyProducts))
	for _, p := range etsyProducts {
		tags := []string{"handmade", "gift", strings.ReplaceAll(strings.ToLower(p.category), " & ", ",")}
		views := 100 + s.rng.Intn(4900)
		favs := int(float64(views) * (0.02 + s.rng.Float64()*0.13))
		qty := s.rng.Intn(51)

		state := "active"
		if qty == 0 {
			state = "sold_out"
		}

		rows = append(rows, []string{
			p.title,
			fmt.Sprintf("Beautiful %s. Handmade with love.", p.title),
			fmt.Sprintf("%.2f", p.price),
			"USD",
			strconv.Itoa(qty),
			strings.Join(tags, ","),
			"mixed",
			p.id,
			state,
			fmt.Sprintf("https://www.etsy.com/listing/%s", p.id),
			strconv.Itoa(views),
			strconv.Itoa(favs),
		})
	}
	return writeCSVFile(path, ',', header, rows)
}

// GenerateAmazonOrders 生成 Amazon 订单报表（tab 分隔）
func (s *SampleService) GenerateAmazonOrders(path string, count int) error {
	header := []string{
		"amazon-order-id", "purchase-date", "order-status",
		"product-name", "quantity-purchased", "item-price",
		"item-tax", "shipping-price", "shipping-tax",
		"sku", "asin", "buyer-name", "ship-country",
		"currency", "tracking-number",
	}

	qtyWeights := []int{60, 25, 10, 5}
	statuses := []string{"Shipped", "Shipped", "Shipped", "Pending", "Cancelled"}
	shippingChoices := []float64{0, 0, 3.99, 5.99}

	rows := make([][]string, 0, count)
	for i := 0; i < count; i++ {
		p := amazonProducts[s.rng.Intn(len(amazonProducts))]
		qty := s.weightedChoice(qtyWeights) + 1
		price := p.price * float64(qty)
		date := s.randomDate(90)

		rows = append(rows, []string{
			fmt.Sprintf("111-%07d-%07d", 1000000+s.rng.Intn(9000000), 1000000+s.rng.Intn(9000000)),
			date.Format("2006-01-02T15:04:05+00:00"),
			statuses[s.rng.Intn(len(statuses))],
			p.title,
			strconv.Itoa(qty),
			fmt.Sprintf("$%.2f", price),
			fmt.Sprintf("$%.2f", price*0.08),
			fmt.Sprintf("$%.2f", shippingChoices[s.rng.Intn(len(shippingChoices))]),
			"$0.00",
			"SKU-" + p.id[len(p.id)-4:],
			p.id,
			s.randomName(),
			sampleCountries[s.weightedChoice(countryWeights)],
			"USD",
			fmt.Sprintf("AMZ%09d", s.rng.Intn(1000000000)),
		})
	}
	return writeCSVFile(path, '\t', header, rows)
}

// GenerateAmazonBusinessReport 生成 Amazon Business Report CSV
func (s *SampleService) GenerateAmazonBusinessReport(path string) error {
	header := []string{
		"(Child) ASIN", "Title", "Sessions", "Session Percentage",
		"Page Views", "Page Views Percentage", "Buy Box Percentage",
		"Units Ordered", "Unit Session Percentage",
		"Ordered Product Sales", "Total Order Items",
	}

	rows := make([][]string, 0, len(amazonProducts))
	for _, p := range amazonProducts {
		sessions := 50 + s.rng.Intn(1950)
		pageViews := int(float64(sessions) * (1.2 + s.rng.Float64()*1.3))
		units := int(float64(sessions) * (0.02 + s.rng.Float64()*0.13))
		revenue := float64(units) * p.price

		rows = append(rows, []string{
			p.id,
			p.title,
			strconv.Itoa(sessions),
			fmt.Sprintf("%.2f%%", 1+s.rng.Float64()*14),
			strconv.Itoa(pageViews),
			fmt.Sprintf("%.2f%%", 1+s.rng.Float64()*14),
			fmt.Sprintf("%.0f%%", 80+s.rng.Float64()*20),
			strconv.Itoa(units),
			fmt.Sprintf("%.2f%%", float64(units)/float64(sessions)*100),
			fmt.Sprintf("$%.2f", revenue),
			strconv.Itoa(units),
		})
	}
	return writeCSVFile(path, ',', header, rows)
}
