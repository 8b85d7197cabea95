package category

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"estimate-srv/internal/catalog"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name        string
		topic       string
		deliverable string
		want        []string
	}{
		{
			name:        "web deliverable",
			topic:       "쇼핑몰",
			deliverable: "웹",
			want:        []string{catalog.CategoryPlatform},
		},
		{
			name:        "mobile app",
			topic:       "헬스케어",
			deliverable: "앱",
			want:        []string{catalog.CategoryMobileApp},
		},
		{
			name:        "chatbot",
			topic:       "고객 상담",
			deliverable: "챗봇",
			want:        []string{catalog.CategoryChatbot},
		},
		{
			name:        "dashboard",
			topic:       "매출 분석",
			deliverable: "대시보드",
			want:        []string{catalog.CategoryVisualization},
		},
		{
			name:        "multiple rules fire, order stable",
			topic:       "데이터 분석",
			deliverable: "웹,대시보드",
			want:        []string{catalog.CategoryPlatform, catalog.CategoryVisualization, catalog.CategoryDataEngineering},
		},
		{
			name:        "no rule fires falls back to default",
			topic:       "교육",
			deliverable: "컨설팅",
			want:        []string{catalog.DefaultCategoryID},
		},
		{
			name:        "case folded english",
			topic:       "fitness",
			deliverable: "Mobile App",
			want:        []string{catalog.CategoryMobileApp},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Infer(tt.topic, tt.deliverable))
		})
	}
}

func TestInferIsPure(t *testing.T) {
	first := Infer("쇼핑몰 데이터", "앱,대시보드")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Infer("쇼핑몰 데이터", "앱,대시보드"))
	}
}

func TestInferDeduplicates(t *testing.T) {
	// 앱 and 모바일 both hit the mobile rule; the id must appear once.
	got := Infer("모바일", "앱")
	assert.Equal(t, []string{catalog.CategoryMobileApp}, got)
}
