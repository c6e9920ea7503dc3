package seo_service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ecommerce-manager/model/store_model"

	"github.com/shopspring/decimal"
)

// OptimizationResult 单个商品的优化建议
type OptimizationResult struct {
	ProductId     string               `json:"product_id"`
	OriginalTitle string               `json:"original_title"`
	Platform      store_model.Platform `json:"platform"`

	SuggestedTitle       string   `json:"suggested_title,omitempty"`
	SuggestedTags        []string `json:"suggested_tags,omitempty"`
	SuggestedDescription string   `json:"suggested_description,omitempty"`
	TitleTips            []string `json:"title_tips,omitempty"`
	GeneralTips          []string `json:"general_tips,omitempty"`
}

// Etsy 分类关键词库，用于标题/标签补全
var etsyCategoryKeywords = map[string][]string{
	"jewelry": {
		"handmade jewelry", "minimalist jewelry", "gold jewelry",
		"silver jewelry", "custom jewelry", "personalized jewelry",
		"dainty jewelry", "boho jewelry", "statement jewelry",
		"gift for her", "bridesmaid gift", "wedding jewelry",
		"birthstone jewelry", "name necklace", "initial necklace",
	},
	"home": {
		"home decor", "wall art", "wall hanging", "farmhouse decor",
		"rustic decor", "modern decor", "minimalist home", "boho decor",
		"housewarming gift", "living room decor", "bedroom decor",
		"shelf decor", "table decor", "handmade decor", "custom sign",
	},
	"clothing": {
		"handmade clothing", "custom clothing", "vintage style",
		"boho clothing", "minimalist fashion", "sustainable fashion",
		"organic cotton", "linen clothing", "plus size", "unisex",
		"loungewear", "activewear", "streetwear", "casual wear",
	},
	"art": {
		"wall art", "digital download", "printable art", "custom portrait",
		"pet portrait", "family portrait", "watercolor art", "oil painting",
		"abstract art", "modern art", "minimalist art", "gallery wall",
		"art print", "poster", "illustration",
	},
	"craft": {
		"craft supplies", "DIY kit", "sewing pattern", "knitting pattern",
		"crochet pattern", "embroidery kit", "beading supplies",
		"jewelry making", "scrapbooking", "sticker", "stamp",
	},
	"wedding": {
		"wedding gift", "bridal shower", "bridesmaid gift", "groomsmen gift",
		"wedding decor", "wedding invitation", "save the date",
		"wedding favor", "engagement gift", "anniversary gift",
		"wedding sign", "cake topper", "guest book",
	},
	"baby": {
		"baby gift", "baby shower", "nursery decor", "baby blanket",
		"baby clothes", "personalized baby", "newborn gift",
		"first birthday", "baby milestone", "toddler gift",
	},
	"digital": {
		"digital download", "printable", "instant download", "PDF",
		"SVG file", "template", "planner", "wall art print",
		"invitation template", "resume template", "social media template",
	},
}

// Amazon 分类关键词库
var amazonCategoryKeywords = map[string][]string{
	"kitchen": {
		"kitchen accessories", "cooking utensils", "BPA free",
		"dishwasher safe", "eco friendly", "food grade", "non toxic",
		"set", "pack", "premium quality", "durable", "easy to clean",
	},
	"home": {
		"home decor", "room decor", "LED", "USB charging",
		"portable", "compact", "modern design", "energy saving",
		"gift idea", "premium", "durable", "easy to use",
	},
	"fitness": {
		"workout", "exercise", "yoga", "gym", "fitness",
		"non slip", "eco friendly", "portable", "lightweight",
		"carrying strap", "thick", "comfortable", "durable",
	},
	"electronics": {
		"fast charging", "portable", "compact", "high capacity",
		"lightweight", "USB-C", "LED indicator", "compatible",
		"travel", "backup", "power bank", "wireless",
	},
	"eco": {
		"eco friendly", "sustainable", "reusable", "organic",
		"biodegradable", "zero waste", "plastic free", "natural",
		"bamboo", "cotton", "recyclable", "green",
	},
}

// 分类遍历顺序固定，平分时取靠前的分类
var (
	etsyCategoryOrder   = []string{"jewelry", "home", "clothing", "art", "craft", "wedding", "baby", "digital"}
	amazonCategoryOrder = []string{"kitchen", "home", "fitness", "electronics", "eco"}
)

// detectCategory 根据标题猜商品分类，没有命中时兜底 home
func detectCategory(title string, platform store_model.Platform) string {
	titleLower := strings.ToLower(title)

	keywordsDb := amazonCategoryKeywords
	order := amazonCategoryOrder
	if platform == store_model.PlatformEtsy {
		keywordsDb = etsyCategoryKeywords
		order = etsyCategoryOrder
	}

	bestMatch := ""
	bestScore := 0
	for _, category := range order {
		matchScore := 0
		for _, kw := range keywordsDb[category] {
			if strings.Contains(titleLower, strings.ToLower(kw)) {
				matchScore++
			}
		}
		// 分类名本身出现在标题里时加权
		if strings.Contains(titleLower, category) {
			matchScore += 3
		}
		if matchScore > bestScore {
			bestScore = matchScore
			bestMatch = category
		}
	}

	if bestMatch == "" {
		return "home"
	}
	return bestMatch
}

// categoryKeywords 取分类关键词列表，保证顺序稳定
func categoryKeywords(category string, platform store_model.Platform) []string {
	if platform == store_model.PlatformEtsy {
		return etsyCategoryKeywords[category]
	}
	return amazonCategoryKeywords[category]
}

// suggestTitle 规则化标题建议和提示
func suggestTitle(product store_model.Product, platform store_model.Platform) (string, []string) {
	title := product.Title
	titleLower := strings.ToLower(title)
	tips := make([]string, 0)
	words := strings.Fields(title)

	category := detectCategory(title, platform)
	catKeywords := categoryKeywords(category, platform)

	// 前 5 个分类词里还没用到的
	unused := make([]string, 0)
	for _, kw := range catKeywords[:min(5, len(catKeywords))] {
		if !strings.Contains(titleLower, strings.ToLower(kw)) {
			unused = append(unused, kw)
		}
	}

	var suggested string
	if platform == store_model.PlatformEtsy {
		// Etsy：关键词前置，用分隔符分段
		if utf8.RuneCountInString(title) < 40 {
			tips = append(tips, "标题拉长一点，60-80 个字符比较理想")
		}
		if !strings.ContainsAny(title, "-|,") {
			tips = append(tips, "用分隔符分段：'商品名 - 材质 - 用途 - 送礼场景'")
		}
		if isAllUpper(title) {
			tips = append(tips, "标题格式改成每个单词首字母大写")
		}
		if len(unused) > 0 {
			tips = append(tips, fmt.Sprintf("可以补这些关键词：%s", strings.Join(unused[:min(3, len(unused))], ", ")))
		}
		if !strings.Contains(titleLower, "gift") {
			tips = append(tips, "加上 'Gift for Her/Him' 或 'Birthday Gift' 这类送礼词")
		}

		parts := []string{title}
		if len(unused) > 0 {
			parts = append(parts, strings.Title(unused[0]))
		}
		if !strings.Contains(titleLower, "gift") {
			parts = append(parts, "Gift Idea")
		}
		suggested = strings.Join(parts, " | ")
	} else {
		// Amazon：品牌 + 关键词 + 规格
		if utf8.RuneCountInString(title) < 80 {
			tips = append(tips, "Amazon 标题至少写到 80 个字符")
		}
		if len(words) < 8 {
			tips = append(tips, "多堆几个搜索关键词")
		}
		if len(unused) > 0 {
			tips = append(tips, fmt.Sprintf("试试加上：%s", strings.Join(unused[:min(3, len(unused))], ", ")))
		}

		parts := []string{title}
		if len(unused) >= 2 {
			parts = append(parts, unused[0], unused[1])
		} else {
			parts = append(parts, unused...)
		}
		suggested = strings.Join(parts, " - ")
	}

	// 统一截断到 200 个字符
	if utf8.RuneCountInString(suggested) > 200 {
		suggested = string([]rune(suggested)[:200])
	}
	return suggested, tips
}

// suggestTags 根据分类补齐标签，最多补到 13 个
func suggestTags(product store_model.Product, platform store_model.Platform) []string {
	existing := make(map[string]struct{}, len(product.Tags))
	for _, t := range product.Tags {
		existing[strings.ToLower(t)] = struct{}{}
	}

	category := detectCategory(product.Title, platform)
	suggested := make([]string, 0)
	for _, kw := range categoryKeywords(category, platform) {
		if _, ok := existing[strings.ToLower(kw)]; !ok && len(kw) <= 20 {
			suggested = append(suggested, kw)
		}
		if len(suggested)+len(existing) >= 13 {
			break
		}
	}
	return suggested
}

// suggestDescription 模板化描述
func suggestDescription(product store_model.Product, platform store_model.Platform) string {
	title := product.Title

	if platform == store_model.PlatformEtsy {
		return fmt.Sprintf(`✨ %s ✨

🎁 PERFECT GIFT - This %s makes a wonderful gift for birthdays, anniversaries, holidays, and special occasions.

📦 WHAT YOU GET:
• 1x %s
• [补充尺寸信息]
• [补充材质信息]

💎 FEATURES:
• Handmade with care and attention to detail
• [特性 1]
• [特性 2]
• [特性 3]

🚚 SHIPPING:
• Processing time: [X] business days
• Tracking number provided

💌 Have questions? Send us a message, we'd love to help!`, title, strings.ToLower(title), title)
	}

	return fmt.Sprintf(`【%s】

PRODUCT DESCRIPTION:
%s - [补充商品描述]. Perfect for [使用场景].

KEY FEATURES:
✅ [特性 1]
✅ [特性 2]
✅ [特性 3]

SPECIFICATIONS:
• Material: [材质]
• Size: [尺寸]
• Package Includes: 1x %s

SATISFACTION GUARANTEE:
We stand behind our products. If you're not 100%% satisfied, contact us for a full refund.`, strings.ToUpper(title), title, title)
}

// OptimizeListing 规则化 listing 优化，输出标题/标签/描述建议和通用提示
func (s *SEOService) OptimizeListing(product store_model.Product, platform store_model.Platform) OptimizationResult {
	if platform == "" {
		platform = product.Platform
	}

	suggestedTitle, titleTips := suggestTitle(product, platform)

	generalTips := make([]string, 0)

	// 价格提示
	if product.Price.GreaterThan(decimal.Zero) && product.Price.LessThan(decimal.NewFromInt(10)) {
		generalTips = append(generalTips, "定价偏低，$15 以上的价格空间利润更好。")
	}
	if product.Price.GreaterThan(decimal.Zero) && product.Price.Equal(product.Price.Truncate(0)) {
		generalTips = append(generalTips, "用心理定价：$24.99 比 $25.00 好卖。")
	}

	// 库存提示
	if product.Quantity > 0 && product.Quantity <= 5 {
		generalTips = append(generalTips, fmt.Sprintf("库存告急（剩 %d 件），尽快补货。", product.Quantity))
	}
	if product.Quantity == 0 {
		generalTips = append(generalTips, "已经没货了！马上补库存，否则会掉出搜索列表。")
	}

	// 互动提示
	if product.Views > 200 && product.ConversionRate() < 1.0 {
		generalTips = append(generalTips, "流量高但成交低 → 重新检查图片和价格。")
	}
	if product.Favorites > 10 && product.TotalSold == 0 {
		generalTips = append(generalTips, "有人收藏但没人买 → 试试限时折扣。")
	}
	if product.Views < 50 {
		generalTips = append(generalTips, "浏览量太低 → 优化 SEO，到社交媒体引流。")
	}

	return OptimizationResult{
		ProductId:            product.ProductId,
		OriginalTitle:        product.Title,
		Platform:             platform,
		SuggestedTitle:       suggestedTitle,
		SuggestedTags:        suggestTags(product, platform),
		SuggestedDescription: suggestDescription(product, platform),
		TitleTips:            titleTips,
		GeneralTips:          generalTips,
	}
}
