package category

import (
	"strings"

	"estimate-srv/internal/catalog"
)

// rule fires a category when any of its keywords occurs in the case-folded
// topic+deliverable text. Rules are independent; slice order fixes the output
// ordering when several fire.
type rule struct {
	categoryID string
	keywords   []string
}

var rules = []rule{
	{
		categoryID: catalog.CategoryPlatform,
		keywords:   []string{"웹", "사이트", "홈페이지", "플랫폼", "web", "site", "platform"},
	},
	{
		categoryID: catalog.CategoryMobileApp,
		keywords:   []string{"앱", "어플", "모바일", "안드로이드", "app", "mobile", "ios", "android"},
	},
	{
		categoryID: catalog.CategoryChatbot,
		keywords:   []string{"챗봇", "인공지능", "대화", "상담봇", "chatbot", "ai"},
	},
	{
		categoryID: catalog.CategoryVisualization,
		keywords:   []string{"대시보드", "시각화", "분석", "리포트", "dashboard", "analytics", "report"},
	},
	{
		categoryID: catalog.CategoryDataEngineering,
		keywords:   []string{"데이터", "파이프라인", "크롤링", "수집", "data", "pipeline", "crawling"},
	},
}

// Infer maps the filled topic and deliverable to one or more category ids.
// Pure: identical inputs always yield the identical set and ordering.
// The result is never empty; catalog.DefaultCategoryID is the fallback.
func Infer(topic, deliverable string) []string {
	text := strings.ToLower(topic + " " + deliverable)

	var ids []string
	seen := make(map[string]bool)
	for _, r := range rules {
		if seen[r.categoryID] {
			continue
		}
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				ids = append(ids, r.categoryID)
				seen[r.categoryID] = true
				break
			}
		}
	}

	if len(ids) == 0 {
		ids = []string{catalog.DefaultCategoryID}
	}
	return ids
}
