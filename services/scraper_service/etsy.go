package scraper_service

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// EtsySearchResult 单条 Etsy 搜索结果
type EtsySearchResult struct {
	ListingId      string  `json:"listing_id"`
	Title          string  `json:"title"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency"`
	ShopName       string  `json:"shop_name"`
	Url            string  `json:"url"`
	ImageUrl       string  `json:"image_url"`
	Reviews        int     `json:"reviews"`
	IsBestseller   bool    `json:"is_bestseller"`
	IsFreeShipping bool    `json:"is_free_shipping"`
}

// EtsySearchReport 一次关键词搜索的汇总报告
type EtsySearchReport struct {
	Keyword      string             `json:"keyword"`
	TotalResults int                `json:"total_results"`
	Results      []EtsySearchResult `json:"results"`
	AvgPrice     float64            `json:"avg_price"`
	MinPrice     float64            `json:"min_price"`
	MaxPrice     float64            `json:"max_price"`
	AvgReviews   float64            `json:"avg_reviews"`
	TopTags      []string           `json:"top_tags"`
}

// SearchEtsy 在 Etsy 搜索关键词并汇总竞品情况
// 页面结构随时可能变，抓不到就是抓不到，这里只保证不报错
func SearchEtsy(keyword string, maxPages int, delay time.Duration) *EtsySearchReport {
	if maxPages <= 0 {
		maxPages = 2
	}
	report := &EtsySearchReport{Keyword: keyword, Results: make([]EtsySearchResult, 0)}
	client := newClient()

	for page := 1; page <= maxPages; page++ {
		url := fmt.Sprintf("https://www.etsy.com/search?q=%s&page=%d",
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
			resp.Body.Close()
			continue
		}

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		resp.Body.Close()
		if err != nil {
			continue
		}

		cards := doc.Find("div.search-listings-group div.js-merch-stash-check-listing")
		if cards.Length() == 0 {
			cards = doc.Find("li.wt-list-unstyled div[data-listing-id]")
		}
		if cards.Length() == 0 {
			cards = doc.Find("div[data-listing-id]")
		}

		cards.Each(func(_ int, card *goquery.Selection) {
			if result, ok := parseEtsyCard(card); ok {
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
	reviewSum, reviewCount := 0, 0
	for _, r := range report.Results {
		prices = append(prices, r.Price)
		titles = append(titles, r.Title)
		if r.Reviews > 0 {
			reviewSum += r.Reviews
			reviewCount++
		}
	}
	report.AvgPrice, report.MinPrice, report.MaxPrice = priceStats(prices)
	if reviewCount > 0 {
		report.AvgReviews = float64(reviewSum) / float64(reviewCount)
	}
	report.TopTags = topWords(titles, 20)

	return report
}

// parseEtsyCard 解析单个 listing 卡片
func parseEtsyCard(card *goquery.Selection) (EtsySearchResult, bool) {
	title := strings.TrimSpace(card.Find("h3").First().Text())
	if title == "" {
		title = strings.TrimSpace(card.Find(".v2-listing-card__title").First().Text())
	}
	if title == "" {
		return EtsySearchResult{}, false
	}

	priceText := strings.TrimSpace(card.Find("span.currency-value").First().Text())
	if priceText == "" {
		priceText = strings.TrimSpace(card.Find(".lc-price span").First().Text())
	}

	shopName := strings.TrimSpace(card.Find("p.shop-name").First().Text())
	url, _ := card.Find("a.listing-link").First().Attr("href")
	if url == "" {
		url, _ = card.Find("a").First().Attr("href")
	}
	imageUrl, _ := card.Find("img").First().Attr("src")

	cardText := strings.ToLower(card.Text())

	return EtsySearchResult{
		ListingId:      card.AttrOr("data-listing-id", ""),
		Title:          title,
		Price:          parsePrice(priceText),
		Currency:       "USD",
		ShopName:       shopName,
		Url:            url,
		ImageUrl:       imageUrl,
		Reviews:        parseCount(card.Find("span.review-count").First().Text()),
		IsBestseller:   strings.Contains(cardText, "bestseller"),
		IsFreeShipping: strings.Contains(cardText, "free shipping"),
	}, true
}
