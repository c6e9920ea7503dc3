package store_model

// SEOIssue 单条 SEO 问题，纯建议性质，不阻断任何流程
type SEOIssue struct {
	Category   string `json:"category"`   // title / tags / description / engagement
	Severity   string `json:"severity"`   // critical / warning / info
	Message    string `json:"message"`    // 问题描述
	Suggestion string `json:"suggestion"` // 改进建议
}

// 问题严重级别
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// SEOScore 单个 listing 一次打分的完整结果
// 每次重新计算，不携带历史
type SEOScore struct {
	ProductId string   `json:"product_id"`
	Title     string   `json:"title"`
	Platform  Platform `json:"platform"`

	TotalScore       int `json:"total_score"`       // 0-100
	TitleScore       int `json:"title_score"`       // 0-25
	TagsScore        int `json:"tags_score"`        // 0-25
	DescriptionScore int `json:"description_score"` // 0-25
	EngagementScore  int `json:"engagement_score"`  // 0-25

	Issues []SEOIssue `json:"issues"`
	Grade  string     `json:"grade"` // A / B / C / D / F
}

// CalculateTotal 汇总四项子分并换算等级
// 等级下界：85→A 70→B 55→C 40→D，其余 F
func (s *SEOScore) CalculateTotal() {
	s.TotalScore = s.TitleScore + s.TagsScore + s.DescriptionScore + s.EngagementScore
	switch {
	case s.TotalScore >= 85:
		s.Grade = "A"
	case s.TotalScore >= 70:
		s.Grade = "B"
	case s.TotalScore >= 55:
		s.Grade = "C"
	case s.TotalScore >= 40:
		s.Grade = "D"
	default:
		s.Grade = "F"
	}
}
