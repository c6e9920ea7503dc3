package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"ecommerce-manager/config"
	"ecommerce-manager/controllers/dashboard"
	"ecommerce-manager/middleware"
	"ecommerce-manager/model/store_model"
	"ecommerce-manager/pkg/cache"
	"ecommerce-manager/redis"
	"ecommerce-manager/router"
	"ecommerce-manager/services/analytics_service"
	"ecommerce-manager/services/parser_service"
	"ecommerce-manager/services/report_service"
	"ecommerce-manager/services/sample_service"
	"ecommerce-manager/services/scraper_service"
	"ecommerce-manager/services/seo_service"
)

// 构建时注入的变量
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "-version", "--version", "-v":
		fmt.Printf("Ecommerce Manager\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Build Time: %s\n", BuildTime)
		fmt.Printf("Git Commit: %s\n", GitCommit)
	case "sample":
		runSample()
	case "analyze":
		runAnalyze()
	case "report":
		runReport(os.Args[2:])
	case "optimize":
		runOptimize()
	case "scrape":
		runScrape(os.Args[2:])
	case "serve":
		runServe()
	default:
		printHelp()
	}
}

func printHelp() {
	fmt.Printf("Ecommerce Manager - Etsy & Amazon 店铺管理系统\n\n")
	fmt.Printf("Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Printf("Commands:\n")
	fmt.Printf("  sample           生成示例数据\n")
	fmt.Printf("  analyze          分析店铺数据并输出汇总\n")
	fmt.Printf("  report           生成 Excel 销售报表 (--days, --name)\n")
	fmt.Printf("  optimize         Listing SEO 分析与优化建议\n")
	fmt.Printf("  scrape <词>      竞品搜索 (--platform, --pages)\n")
	fmt.Printf("  serve            启动看板 HTTP 服务\n\n")
	fmt.Printf("  -version, -v     显示版本信息\n")
}

func runSample() {
	cfg := config.InitConfig()
	fmt.Println("正在生成示例数据...")

	svc := sample_service.NewSampleService(time.Now().UnixNano())
	if err := svc.GenerateAll(cfg.Data, 80, 100); err != nil {
		log.Fatalf("生成示例数据失败: %v", err)
	}
	fmt.Printf("完成！请查看 %s 和 %s\n", cfg.Data.EtsyDir, cfg.Data.AmazonDir)
}

func runAnalyze() {
	cfg := config.InitConfig()
	ds := parser_service.LoadAllData(cfg.Data)

	if len(ds.Orders) == 0 && len(ds.Products) == 0 {
		fmt.Println("\n  没有找到数据！")
		fmt.Println("  先运行 sample 命令生成示例数据，或把 CSV 文件放入：")
		fmt.Printf("    Etsy:   %s\n", cfg.Data.EtsyDir)
		fmt.Printf("    Amazon: %s\n", cfg.Data.AmazonDir)
		return
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Println("  店铺分析报告")
	fmt.Printf("%s\n\n", strings.Repeat("=", 60))

	analytics := &analytics_service.AnalyticsService{}
	for _, platform := range []store_model.Platform{store_model.PlatformEtsy, store_model.PlatformAmazon} {
		hasOrders := false
		for _, o := range ds.Orders {
			if o.Platform == platform {
				hasOrders = true
				break
			}
		}
		if !hasOrders {
			continue
		}
		name := strings.ToUpper(string(platform)) + " Store"
		summary := analytics.BuildStoreSummary(ds.Orders, ds.Products, platform, name, 30)
		printSummary(strings.ToUpper(string(platform)), summary)
	}

	fmt.Printf("\n%s\n", strings.Repeat("-", 60))
	fmt.Println("  合计 (Etsy + Amazon)")
	fmt.Printf("%s\n", strings.Repeat("-", 60))
	fmt.Printf("  总订单数: %d\n", len(ds.Orders))
	totalRev := decimal.Zero
	for _, o := range ds.Orders {
		totalRev = totalRev.Add(o.GrossRevenue())
	}
	fmt.Printf("  总营业额: $%s\n", totalRev.StringFixed(2))
	fmt.Printf("  总商品数: %d\n", len(ds.Products))

	countries := analytics.GetCountryBreakdown(ds.Orders)
	fmt.Println("\n  国家分布:")
	for i, c := range countries {
		if i >= 5 {
			break
		}
		fmt.Printf("    %s: %d 单\n", c.Country, c.Orders)
	}
}

func printSummary(name string, summary store_model.StoreSummary) {
	fmt.Printf("  --- %s ---\n", name)

	if cp := summary.CurrentPeriod; cp != nil {
		fmt.Println("  最近 30 天:")
		fmt.Printf("    订单:     %d\n", cp.TotalOrders)
		fmt.Printf("    毛收入:   $%s\n", cp.GrossRevenue.StringFixed(2))
		fmt.Printf("    扣费:     $%s (%.1f%%)\n", cp.TotalFees.StringFixed(2), cp.FeePercentage())
		fmt.Printf("    净收入:   $%s\n", cp.NetRevenue.StringFixed(2))
		fmt.Printf("    平均订单: $%s\n", cp.AvgOrderValue.StringFixed(2))
	}

	if change, ok := summary.RevenueChange(); ok {
		fmt.Printf("    环比变化: %+.1f%% (相比前 30 天)\n", change)
	}

	if len(summary.TopSellers) > 0 {
		fmt.Println("\n  热销商品:")
		for i, ts := range summary.TopSellers {
			if i >= 5 {
				break
			}
			fmt.Printf("    %d. %-40s %3d 件  $%s\n", i+1, truncate(ts.Title, 40), ts.UnitsSold, ts.Revenue.StringFixed(2))
		}
	}

	if len(summary.LowStockProducts) > 0 {
		fmt.Println("\n  库存紧张:")
		for i, p := range summary.LowStockProducts {
			if i >= 5 {
				break
			}
			fmt.Printf("    - %s\n", p)
		}
	}

	if len(summary.OutOfStockProducts) > 0 {
		fmt.Println("\n  库存售罄:")
		for i, p := range summary.OutOfStockProducts {
			if i >= 5 {
				break
			}
			fmt.Printf("    - %s\n", p)
		}
	}
	fmt.Println()
}

func runReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	days := fs.Int("days", 30, "报表周期（天）")
	name := fs.String("name", "我的店铺", "店铺名称")
	fs.Parse(args)

	cfg := config.InitConfig()
	ds := parser_service.LoadAllData(cfg.Data)
	if len(ds.Orders) == 0 {
		fmt.Println("没有找到数据！请先运行 sample 命令。")
		return
	}

	output := filepath.Join(cfg.Data.ReportsDir,
		fmt.Sprintf("sales_report_%s.xlsx", time.Now().Format("20060102")))
	svc := report_service.NewReportService()
	result, err := svc.GenerateReport(ds.Orders, ds.Products, output, *days, *name)
	if err != nil {
		log.Fatalf("生成报表失败: %v", err)
	}
	fmt.Printf("\n  报表已生成: %s\n", result)
	fmt.Printf("  订单数: %d\n", len(ds.Orders))
	fmt.Printf("  商品数: %d\n", len(ds.Products))
}

func runOptimize() {
	cfg := config.InitConfig()
	ds := parser_service.LoadAllData(cfg.Data)
	if len(ds.Products) == 0 {
		fmt.Println("没有找到商品数据！")
		return
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 60))
	fmt.Printf("  LISTING SEO 分析 - %d 个商品\n", len(ds.Products))
	fmt.Printf("%s\n\n", strings.Repeat("=", 60))

	seo := seo_service.NewSEOService(nil)
	type scored struct {
		product store_model.Product
		score   store_model.SEOScore
	}
	scores := make([]scored, 0, len(ds.Products))
	for _, p := range ds.Products {
		scores = append(scores, scored{p, seo.ScoreListing(p, p.Platform)})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score.TotalScore < scores[j].score.TotalScore
	})

	sum := 0
	good, weak := 0, 0
	for _, sc := range scores {
		fmt.Printf("  [%s] %3d/100  %-6s  %s\n",
			sc.score.Grade, sc.score.TotalScore,
			strings.ToUpper(string(sc.product.Platform)), truncate(sc.product.Title, 45))
		for _, issue := range sc.score.Issues {
			icon := "i"
			switch issue.Severity {
			case store_model.SeverityCritical:
				icon = "!!"
			case store_model.SeverityWarning:
				icon = "!"
			}
			fmt.Printf("        [%s] %s\n", icon, issue.Message)
		}
		fmt.Println()

		sum += sc.score.TotalScore
		if sc.score.TotalScore >= 70 {
			good++
		}
		if sc.score.TotalScore < 40 {
			weak++
		}
	}

	fmt.Printf("%s\n", strings.Repeat("-", 60))
	fmt.Printf("  平均 SEO 得分: %.0f/100\n", float64(sum)/float64(len(scores)))
	fmt.Printf("  良好 (70+): %d\n", good)
	fmt.Printf("  较差 (<40): %d\n", weak)
}

func runScrape(args []string) {
	fs := flag.NewFlagSet("scrape", flag.ExitOnError)
	platform := fs.String("platform", "both", "平台: etsy / amazon / both")
	pages := fs.Int("pages", 1, "抓取页数")

	keyword := ""
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		keyword = args[0]
		args = args[1:]
	}
	fs.Parse(args)

	if keyword == "" {
		fmt.Println("用法: scrape <关键词> [--platform etsy|amazon|both] [--pages N]")
		return
	}

	cfg := config.InitConfig()
	delay := cfg.Scraper.Delay

	fmt.Printf("\n  搜索中: %q | 平台: %s | 页数: %d\n", keyword, *platform, *pages)
	fmt.Println("  请耐心等待，为避免触发反爬会放慢速度...")

	if *platform == "etsy" || *platform == "both" {
		printEtsyReport(scraper_service.SearchEtsy(keyword, *pages, delay))
	}
	if *platform == "amazon" || *platform == "both" {
		printAmazonReport(scraper_service.SearchAmazon(keyword, *pages, delay))
	}
}

func printEtsyReport(report *scraper_service.EtsySearchReport) {
	fmt.Printf("\n  === ETSY: %q (%d 个结果) ===\n", report.Keyword, report.TotalResults)
	if report.TotalResults == 0 {
		fmt.Println("  没有抓到结果，可能被反爬拦截")
		return
	}
	fmt.Printf("  价格区间: $%.2f - $%.2f (均价 $%.2f)\n", report.MinPrice, report.MaxPrice, report.AvgPrice)
	if len(report.TopTags) > 0 {
		fmt.Printf("  高频词: %s\n", strings.Join(report.TopTags, ", "))
	}
	for i, r := range report.Results {
		if i >= 10 {
			break
		}
		fmt.Printf("    %2d. $%-8.2f %s\n", i+1, r.Price, truncate(r.Title, 55))
	}
}

func printAmazonReport(report *scraper_service.AmazonSearchReport) {
	fmt.Printf("\n  === AMAZON: %q (%d 个结果) ===\n", report.Keyword, report.TotalResults)
	if report.TotalResults == 0 {
		fmt.Println("  没有抓到结果，可能被反爬拦截")
		return
	}
	fmt.Printf("  价格区间: $%.2f - $%.2f (均价 $%.2f)\n", report.MinPrice, report.MaxPrice, report.AvgPrice)
	fmt.Printf("  平均评分: %.1f | 平均评论数: %.0f | Prime 占比: %.0f%%\n",
		report.AvgRating, report.AvgReviews, report.PrimePercentage)
	if len(report.TopKeywords) > 0 {
		fmt.Printf("  高频词: %s\n", strings.Join(report.TopKeywords, ", "))
	}
	for i, r := range report.Results {
		if i >= 10 {
			break
		}
		fmt.Printf("    %2d. $%-8.2f %s\n", i+1, r.Price, truncate(r.Title, 55))
	}
}

func runServe() {
	cfg := config.InitConfig()

	redisClient := redis.InitRedis(cfg.Redis)
	cacheManager := cache.NewCacheManager(redisClient)
	dashboard.Init(cacheManager)

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RequestLogger("logs"))
	router.Init(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
	}

	go func() {
		log.Printf("看板服务启动: http://localhost:%s (数据目录: %s, %s)",
			cfg.Server.Port, cfg.Data.EtsyDir, cfg.Data.AmazonDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("收到退出信号，正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("服务关闭异常: %v", err)
	}
	log.Println("服务已退出")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
