package seo_service

import "ecommerce-manager/model/store_model"

// TitleRules 标题打分规则
type TitleRules struct {
	MinLength     int `yaml:"min_length"`
	MaxLength     int `yaml:"max_length"`
	MinWords      int `yaml:"min_words"`
	IdealWordsMin int `yaml:"ideal_words_min"`
	IdealWordsMax int `yaml:"ideal_words_max"`
}

// TagRules 标签打分规则
type TagRules struct {
	MinTags        int `yaml:"min_tags"`
	MaxTags        int `yaml:"max_tags"`
	MaxCharsPerTag int `yaml:"max_chars_per_tag"`
}

// RuleSet 按平台组织的完整规则表
// 启动时构造一份，显式传入打分服务，方便测试时注入自定义规则
type RuleSet struct {
	Title map[store_model.Platform]TitleRules
	Tags  map[store_model.Platform]TagRules

	// 加分词：在标题里出现任意一个即加分，子串匹配、不区分大小写
	PowerWords []string
	// 减分词：按空格切词后整词匹配
	WeakWords []string
}

// DefaultRules 默认规则表
func DefaultRules() *RuleSet {
	return &RuleSet{
		Title: map[store_model.Platform]TitleRules{
			store_model.PlatformEtsy: {
				MinLength:     40,
				MaxLength:     140,
				MinWords:      5,
				IdealWordsMin: 8,
				IdealWordsMax: 15,
			},
			store_model.PlatformAmazon: {
				MinLength:     80,
				MaxLength:     200,
				MinWords:      8,
				IdealWordsMin: 10,
				IdealWordsMax: 25,
			},
		},
		Tags: map[store_model.Platform]TagRules{
			store_model.PlatformEtsy: {
				MinTags:        10,
				MaxTags:        13,
				MaxCharsPerTag: 20,
			},
		},
		PowerWords: []string{
			"handmade", "custom", "personalized", "organic", "vintage",
			"premium", "luxury", "eco-friendly", "sustainable", "artisan",
			"minimalist", "boho", "rustic", "modern", "gift",
			"wedding", "birthday", "christmas", "mothers day", "fathers day",
		},
		WeakWords: []string{
			"nice", "good", "great", "beautiful", "amazing", "awesome",
			"best", "perfect", "unique", "special", "cute", "lovely",
			"pretty", "wonderful", "excellent", "fantastic", "gorgeous",
		},
	}
}
