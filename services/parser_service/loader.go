package parser_service

import (
	"log"
	"path/filepath"
	"sort"

	"ecommerce-manager/config"
	"ecommerce-manager/model/store_model"
	"ecommerce-manager/pkg/monitoring"
)

// Dataset 一次加载得到的全量数据
type Dataset struct {
	Orders   []store_model.Order   `json:"orders"`
	Products []store_model.Product `json:"products"`
}

// globSorted 按文件名排序的 glob，保证多文件加载顺序稳定
func globSorted(dir, pattern string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

// LoadAllData 扫描数据目录，解析所有 Etsy/Amazon 导出文件
// 单个文件解析失败只记日志跳过，不影响其他文件
func LoadAllData(cfg config.DataConfig) *Dataset {
	ds := &Dataset{
		Orders:   make([]store_model.Order, 0),
		Products: make([]store_model.Product, 0),
	}

	etsyOrders, etsyProducts := 0, 0
	amazonOrders, amazonProducts := 0, 0

	for _, f := range globSorted(cfg.EtsyDir, "*[Oo]rder*.*sv") {
		orders, err := ParseEtsyOrders(f)
		if err != nil {
			log.Printf("Etsy 订单文件解析失败 %s: %v", f, err)
			continue
		}
		ds.Orders = append(ds.Orders, orders...)
		etsyOrders += len(orders)
	}

	for _, f := range globSorted(cfg.EtsyDir, "*[Ll]isting*.*sv") {
		products, err := ParseEtsyListings(f)
		if err != nil {
			log.Printf("Etsy listing 文件解析失败 %s: %v", f, err)
			continue
		}
		ds.Products = append(ds.Products, products...)
		etsyProducts += len(products)
	}

	for _, f := range globSorted(cfg.AmazonDir, "*[Oo]rder*.*") {
		orders, err := ParseAmazonOrders(f)
		if err != nil {
			log.Printf("Amazon 订单文件解析失败 %s: %v", f, err)
			continue
		}
		ds.Orders = append(ds.Orders, orders...)
		amazonOrders += len(orders)
	}

	for _, f := range globSorted(cfg.AmazonDir, "*[Bb]usiness*.*sv") {
		products, err := ParseAmazonBusinessReport(f)
		if err != nil {
			log.Printf("Amazon business report 解析失败 %s: %v", f, err)
			continue
		}
		ds.Products = append(ds.Products, products...)
		amazonProducts += len(products)
	}

	monitoring.RecordParsed(string(store_model.PlatformEtsy), etsyOrders, etsyProducts)
	monitoring.RecordParsed(string(store_model.PlatformAmazon), amazonOrders, amazonProducts)

	return ds
}
