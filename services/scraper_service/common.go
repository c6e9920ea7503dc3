package scraper_service

import (
	"math/rand"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// 轮换 UA，降低被风控拦截的概率
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
}

// newClient 带超时的 HTTP 客户端
func newClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}

// newRequest 构造带浏览器头的请求
func newRequest(url string) (*http.Request, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgents[rand.Intn(len(userAgents))])
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	return req, nil
}

// politeSleep 翻页之间随机等待，防止触发限流
func politeSleep(base time.Duration) {
	jitter := time.Duration(500+rand.Intn(1000)) * time.Millisecond
	time.Sleep(base + jitter)
}

var nonNumericRe = regexp.MustCompile(`[^\d.,]`)

// parsePrice 从页面文本里抠出价格数字
func parsePrice(text string) float64 {
	if text == "" {
		return 0
	}
	cleaned := strings.ReplaceAll(nonNumericRe.ReplaceAllString(text, ""), ",", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

var numberRe = regexp.MustCompile(`[\d,]+`)

// parseCount 从 "1,234 reviews" 这类文本里抠出整数
func parseCount(text string) int {
	m := numberRe.FindString(text)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return 0
	}
	return n
}

// 标题分词时丢掉的虚词
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "for": {},
	"to": {}, "in": {}, "on": {}, "with": {}, "of": {}, "-": {}, "|": {}, ",": {}, "&": {},
}

// topWords 统计标题里出现最多的词，按出现次数降序取前 limit 个
// 次数相同的词保持首次出现顺序
func topWords(titles []string, limit int) []string {
	counts := make(map[string]int)
	seen := make([]string, 0)

	for _, title := range titles {
		for _, word := range strings.Fields(strings.ToLower(title)) {
			word = strings.Trim(word, ".,!?()[]{}\"'")
			if word == "" || len(word) <= 2 {
				continue
			}
			if _, skip := stopWords[word]; skip {
				continue
			}
			if _, ok := counts[word]; !ok {
				seen = append(seen, word)
			}
			counts[word]++
		}
	}

	sort.SliceStable(seen, func(i, j int) bool {
		return counts[seen[i]] > counts[seen[j]]
	})
	if len(seen) > limit {
		seen = seen[:limit]
	}
	return seen
}

// priceStats 价格聚合，只统计大于 0 的价格
func priceStats(prices []float64) (avg, minP, maxP float64) {
	valid := make([]float64, 0, len(prices))
	for _, p := range prices {
		if p > 0 {
			valid = append(valid, p)
		}
	}
	if len(valid) == 0 {
		return 0, 0, 0
	}
	minP, maxP = valid[0], valid[0]
	sum := 0.0
	for _, p := range valid {
		sum += p
		if p < minP {
			minP = p
		}
		if p > maxP {
			maxP = p
		}
	}
	return sum / float64(len(valid)), minP, maxP
}
