package scraper_service

import (
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// AmazonSearchResult 单条 Amazon 搜索结果
type AmazonSearchResult struct {
	Asin        string  `json:"asin"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Url         string  `json:"url"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	IsPrime     bool    `json:"is_prime"`
	IsSponsored bool    `json:"is_sponsored"`
}

// AmazonSearchReport 一次关键词搜索的汇总报告
type AmazonSearchReport struct {
	Keyword         string               `json:"keyword"`
	TotalResults    int                  `json:"total_results"`
	Results         []AmazonSearchResult `json:"results"`
	AvgPrice        float64              `json:"avg_price"`
	MinPrice        float64              `json:"min_price"`
	MaxPrice        float64              `json:"max_price"`
	AvgRating       float64              `json:"avg_rating"`
	AvgReviews      float64              `json:"avg_reviews"`
	PrimePercentage float64              `json:"prime_percentage"`
	TopKeywords     []string             `json:"top_keywords"`
}

var ratingRe = regexp.MustCompile(`([\d.]+)`)

// SearchAmazon 在 Amazon 搜索关键词并汇总竞品情况，广告位结果会被过滤掉
func SearchAmazon(keyword string, maxPages int, delay time.Duration) *AmazonSearchReport {
	if maxPages <= 0 {
		maxPages = 2
	}
	report := &AmazonSearchReport{Keyword: keyword, Results: make([]AmazonSearchResult, 0)}
	client := newClient()

	for page := 1; page <= maxPages; page++ {
		url := fmt.Sprintf("https://www.amazon.com/s?k=%s&page=%d",
			strings.ReplaceAll(keyword, " ", "+"), page)

		req, err := newRequest(url)
		if err != nil {
			continue
		}
		resp, err := client.Do(req)
		if err != nil {
			log.Printf("第 %d 页请求失败: %v", page, err)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			log.Printf("第 %d 页: HTTP %d", page, resp.StatusCode)
			if resp.StatusCode == http.StatusServiceUnavailable {
				log.Printf("Amazon 风控已触发，建议过几分钟再试")
			}
			resp.Body.Close()
			continue
		}

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		resp.Body.Close()
		if err != nil {
			continue
		}

		doc.Find("div[data-component-type='s-search-result']").Each(func(_ int, card *goquery.Selection) {
			if result, ok := parseAmazonCard(card); ok && !result.IsSponsored {
				report.Results = append(report.Results, result)
			}
		})

		if page < maxPages {
			politeSleep(delay)
		}
	}

	report.TotalResults = len(report.Results)
	if report.TotalResults == 0 {
		return report
	}

	prices := make([]float64, 0, len(report.Results))
	titles := make([]string, 0, len(report.Results))
	ratingSum, ratingCount := 0.0, 0
	reviewSum, reviewCount := 0, 0
	primeCount := 0
	for _, r := range report.Results {
		prices = append(prices, r.Price)
		titles = append(titles, r.Title)
		if r.Rating > 0 {
			ratingSum += r.Rating
			ratingCount++
		}
		if r.Reviews > 0 {
			reviewSum += r.Reviews
			reviewCount++
		}
		if r.IsPrime {
			primeCount++
		}
	}
	report.AvgPrice, report.MinPrice, report.MaxPrice = priceStats(prices)
	if ratingCount > 0 {
		report.AvgRating = ratingSum / float64(ratingCount)
	}
	if reviewCount > 0 {
		report.AvgReviews = float64(reviewSum) / float64(reviewCount)
	}
	report.PrimePercentage = float64(primeCount) / float64(report.TotalResults) * 100
	report.TopKeywords = topWords(titles, 20)

	return report
}

// parseAmazonCard 解析单个商品卡片
func parseAmazonCard(card *goquery.Selection) (AmazonSearchResult, bool) {
	asin := card.AttrOr("data-asin", "")
	if asin == "" {
		return AmazonSearchResult{}, false
	}

	title := strings.TrimSpace(card.Find("h2 a span").First().Text())
	if title == "" {
		title = strings.TrimSpace(card.Find("h2 span").First().Text())
	}
	if title == "" {
		return AmazonSearchResult{}, false
	}

	result := AmazonSearchResult{
		Asin:        asin,
		Title:       title,
		IsSponsored: card.Find("span.puis-label-popover-default").Length() > 0,
		IsPrime:     card.Find("i.a-icon-prime").Length() > 0,
	}

	if href, ok := card.Find("h2 a").First().Attr("href"); ok {
		result.Url = "https://www.amazon.com" + href
	}

	// 价格拆成整数和小数两段展示
	whole := strings.TrimSpace(card.Find("span.a-price-whole").First().Text())
	if whole != "" {
		whole = strings.NewReplacer(",", "", ".", "").Replace(whole)
		frac := strings.TrimSpace(card.Find("span.a-price-fraction").First().Text())
		if frac == "" {
			frac = "00"
		}
		if v, err := strconv.ParseFloat(whole+"."+frac, 64); err == nil {
			result.Price = v
		}
	}

	if m := ratingRe.FindString(card.Find("span.a-icon-alt").First().Text()); m != "" {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			result.Rating = v
		}
	}
	result.Reviews = parseCount(card.Find("span.a-size-base.s-underline-text").First().Text())

	return result, true
}
