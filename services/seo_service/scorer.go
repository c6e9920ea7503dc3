package seo_service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"ecommerce-manager/model/store_model"
)

// SEOService 基于规则表的 listing 打分服务
type SEOService struct {
	rules *RuleSet
}

// NewSEOService 创建打分服务，rules 为 nil 时使用默认规则表
func NewSEOService(rules *RuleSet) *SEOService {
	if rules == nil {
		rules = DefaultRules()
	}
	return &SEOService{rules: rules}
}

// ScoreListing 对单个 listing 打分
// 四个维度各自从 25 分起扣（互动分按档位定基数），问题列表按规则命中顺序追加
// platform 传空时取商品自身的平台
func (s *SEOService) ScoreListing(product store_model.Product, platform store_model.Platform) store_model.SEOScore {
	if platform == "" {
		platform = product.Platform
	}
	score := store_model.SEOScore{
		ProductId: product.ProductId,
		Title:     product.Title,
		Platform:  platform,
		Issues:    make([]store_model.SEOIssue, 0),
	}

	s.scoreTitle(&score, product, platform)
	s.scoreTags(&score, product, platform)
	s.scoreDescription(&score, product)
	s.scoreEngagement(&score, product)
	score.CalculateTotal()

	return score
}

// scoreTitle 标题打分
func (s *SEOService) scoreTitle(score *store_model.SEOScore, product store_model.Product, platform store_model.Platform) {
	title := product.Title
	titleLen := utf8.RuneCountInString(title)
	words := strings.Fields(title)
	points := 25

	rules, ok := s.rules.Title[platform]
	if !ok {
		rules = s.rules.Title[store_model.PlatformAmazon]
	}

	// 长度检查，过短和过长互斥
	if titleLen < rules.MinLength {
		points -= 8
		score.Issues = append(score.Issues, store_model.SEOIssue{
			Category:   "title",
			Severity:   store_model.SeverityCritical,
			Message:    fmt.Sprintf("标题太短（%d 个字符）", titleLen),
			Suggestion: fmt.Sprintf("至少写到 %d 个字符，把搜索关键词补进去。", rules.MinLength),
		})
	} else if titleLen > rules.MaxLength {
		points -= 5
		score.Issues = append(score.Issues, store_model.SEOIssue{
			Category:   "title",
			Severity:   store_model.SeverityWarning,
			Message:    fmt.Sprintf("标题太长（%d 个字符）", titleLen),
			Suggestion: fmt.Sprintf("建议不超过 %d 个字符。", rules.MaxLength),
		})
	}

	// 词数检查
	if len(words) < rules.MinWords {
		points -= 5
		score.Issues = append(score.Issues, store_model.SEOIssue{
			Category:   "title",
			Severity:   store_model.SeverityWarning,
			Message:    fmt.Sprintf("标题词数太少（%d 个）", len(words)),
			Suggestion: fmt.Sprintf("至少用 %d 个词。", rules.MinWords),
		})
	}
	// 词数落在理想区间 [IdealWordsMin, IdealWordsMax] 时不扣分也不加分

	// 全大写检查
	if isAllUpper(title) {
		points -= 5
		score.Issues = append(score.Issues, store_model.SEOIssue{
			Category:   "title",
			Severity:   store_model.SeverityWarning,
			Message:    "标题全部是大写字母",
			Suggestion: "改成首字母大写、其余小写的写法。",
		})
	}

	// 加分词检查：子串匹配，命中加 3 分、封顶 25，不记 issue
	titleLower := strings.ToLower(title)
	hasPower := false
	for _, pw := range s.rules.PowerWords {
		if strings.Contains(titleLower, pw) {
			hasPower = true
			break
		}
	}
	if hasPower {
		points = min(points+3, 25)
	} else {
		score.Issues = append(score.Issues, store_model.SEOIssue{
			Category:   "title",
			Severity:   store_model.SeverityInfo,
			Message:    "标题里没有高热度关键词",
			Suggestion: fmt.Sprintf("可以尝试加入：%s", strings.Join(s.rules.PowerWords[:5], ", ")),
		})
	}

	// 减分词检查：整词匹配
	lowerWords := strings.Fields(titleLower)
	hasWeak := false
	for _, ww := range s.rules.WeakWords {
		for _, w := range lowerWords {
			if w == ww {
				hasWeak = true
				break
			}
		}
		if hasWeak {
			break
		}
	}
	if hasWeak {
		points -= 3
		score.Issues = append(score.Issues, store_model.SEOIssue{
			Category:   "title",
			Severity:   store_model.SeverityInfo,
			Message:    "标题里有泛泛的形容词",
			Suggestion: "把 \"nice\"、\"good\"、\"beautiful\" 这类词换成具体的材质、尺寸、用途描述。",
		})
	}

	// 多项扣分叠加可能把分数扣成负数，最终落 0
	score.TitleScore = max(0, points)
}

// scoreTags 标签打分
func (s *SEOService) scoreTags(score *store_model.SEOScore, product store_model.Product, platform store_model.Platform) {
	tags := product.Tags
	points := 25

	if platform == store_model.PlatformEtsy {
		rules := s.rules.Tags[store_model.PlatformEtsy]

		if len(tags) < rules.MinTags {
			points -= 10
			score.Issues = append(score.Issues, store_model.SEOIssue{
				Category:   "tags",
				Severity:   store_model.SeverityCritical,
				Message:    fmt.Sprintf("标签数量不足（%d/%d）", len(tags), rules.MaxTags),
				Suggestion: fmt.Sprintf("Etsy 有 %d 个标签额度，至少用 %d 个。", rules.MaxTags, rules.MinTags),
			})
		} else if len(tags) < rules.MaxTags {
			points -= 3
			score.Issues = append(score.Issues, store_model.SEOIssue{
				Category:   "tags",
				Severity:   store_model.SeverityWarning,
				Message:    fmt.Sprintf("标签没用满（%d/%d）", len(tags), rules.MaxTags),
				Suggestion: fmt.Sprintf("把 %d 个标签额度全部用掉。", rules.MaxTags),
			})
		}

		// 多词标签占比检查，只在有标签时评估
		multiWord := 0
		for _, t := range tags {
			if strings.Contains(t, " ") {
				multiWord++
			}
		}
		if len(tags) > 0 && float64(multiWord)/float64(len(tags)) < 0.5 {
			points -= 5
			score.Issues = append(score.Issues, store_model.SEOIssue{
				Category:   "tags",
				Severity:   store_model.SeverityWarning,
				Message:    "大部分标签是单个词",
				Suggestion: "用多词标签（比如 'wooden phone stand' 而不是 'wooden'）。",
			})
		}
	} else {
		// Amazon 的 backend keywords 机制不同，只检查有没有
		if len(tags) == 0 {
			points -= 10
			score.Issues = append(score.Issues, store_model.SEOIssue{
				Category:   "tags",
				Severity:   store_model.SeverityWarning,
				Message:    "没有填 backend keyword",
				Suggestion: "把 Amazon 后台的 backend keywords 填起来。",
			})
		}
	}

	// 重复标签检查，平台通用，不区分大小写
	unique := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		unique[strings.ToLower(t)] = struct{}{}
	}
	if len(tags) != len(unique) {
		points -= 5
		score.Issues = append(score.Issues, store_model.SEOIssue{
			Category:   "tags",
			Severity:   store_model.SeverityWarning,
			Message:    "存在重复标签",
			Suggestion: "每个标签都应该是唯一的。",
		})
	}

	score.TagsScore = max(0, points)
}

// scoreDescription 描述打分
func (s *SEOService) scoreDescription(score *store_model.SEOScore, product store_model.Product) {
	desc := product.Description
	descLen := utf8.RuneCountInString(desc)
	points := 25

	if desc == "" {
		// 没有描述直接归零，不是扣分
		points = 0
		score.Issues = append(score.Issues, store_model.SEOIssue{
			Category:   "description",
			Severity:   store_model.SeverityCritical,
			Message:    "商品没有描述",
			Suggestion: "写一段完整的商品描述（至少 200 个字符）。",
		})
	} else if descLen < 100 {
		points -= 15
		score.Issues = append(score.Issues, store_model.SEOIssue{
			Category:   "description",
			Severity:   store_model.SeverityCritical,
			Message:    fmt.Sprintf("描述太短（%d 个字符）", descLen),
			Suggestion: "写 200-500 个字符，把材质、尺寸、功能都写进去。",
		})
	} else if descLen < 300 {
		points -= 8
		score.Issues = append(score.Issues, store_model.SEOIssue{
			Category:   "description",
			Severity:   store_model.SeverityWarning,
			Message:    fmt.Sprintf("描述偏短（%d 个字符）", descLen),
			Suggestion: "更详细的描述有助于转化，补充使用场景、送礼建议。",
		})
	}

	// 整段不分行检查，与长度扣分相互独立、可叠加
	if desc != "" && !strings.Contains(desc, "\n") && descLen > 200 {
		points -= 3
		score.Issues = append(score.Issues, store_model.SEOIssue{
			Category:   "description",
			Severity:   store_model.SeverityInfo,
			Message:    "描述只有一个段落",
			Suggestion: "用小标题和分段拆开，提升可读性。",
		})
	}

	score.DescriptionScore = max(0, points)
}

// scoreEngagement 互动数据打分
// 基础档位互斥、按优先级从高到低取第一个命中的
func (s *SEOService) scoreEngagement(score *store_model.SEOScore, product store_model.Product) {
	conversion := product.ConversionRate()
	var points int

	switch {
	case product.Views > 500 && conversion > 2.0:
		points = 25
	case product.Views > 200 && conversion > 1.0:
		points = 20
	case product.Views > 100:
		points = 15
	case product.Views > 0:
		points = 10
	default:
		points = 5
		score.Issues = append(score.Issues, store_model.SEOIssue{
			Category:   "engagement",
			Severity:   store_model.SeverityWarning,
			Message:    "没有任何浏览量",
			Suggestion: "优化 SEO，到社交媒体上推一推。",
		})
	}

	// 高流量低转化的附加扣分，在档位之后判定，可叠加
	if product.Views > 200 && conversion < 1.0 {
		points -= 5
		score.Issues = append(score.Issues, store_model.SEOIssue{
			Category:   "engagement",
			Severity:   store_model.SeverityWarning,
			Message:    fmt.Sprintf("转化率偏低（%.1f%%）", conversion),
			Suggestion: "浏览多但是不成交，检查价格、图片和描述。",
		})
	}

	// 只提示不扣分：收藏多但卖不动
	if product.Favorites > 20 && product.TotalSold < 3 {
		score.Issues = append(score.Issues, store_model.SEOIssue{
			Category:   "engagement",
			Severity:   store_model.SeverityInfo,
			Message:    fmt.Sprintf("收藏多（%d）但销量低（%d）", product.Favorites, product.TotalSold),
			Suggestion: "用折扣或活动把收藏转化成订单。",
		})
	}

	score.EngagementScore = max(0, min(25, points))
}

// isAllUpper 标题全为大写字母（至少包含一个字母）
func isAllUpper(s string) bool {
	return s != strings.ToLower(s) && s == strings.ToUpper(s)
}
