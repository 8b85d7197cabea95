package slot

// deliverableVocab lists artifact-type indicator terms. Entries are matched
// case-folded with whitespace stripped, so multi-word forms are written
// without spaces. Must stay disjoint from topicVocab.
var deliverableVocab = []string{
	"웹", "홈페이지", "사이트",
	"앱", "어플", "모바일",
	"시스템", "플랫폼", "솔루션",
	"대시보드", "리포트", "보고서",
	"챗봇",
	"api", "ui", "관리자페이지", "어드민",
	"자동화", "크롤러", "파이프라인",
	"web", "website", "app", "dashboard", "admin", "chatbot",
}

// topicVocab lists business-domain indicator terms for the topic slot.
var topicVocab = []string{
	"쇼핑몰", "커머스", "이커머스", "유통",
	"헬스", "헬스케어", "건강", "의료", "병원", "피트니스",
	"교육", "학원", "강의",
	"금융", "핀테크", "보험", "투자",
	"물류", "배송", "운송",
	"여행", "숙박", "예약",
	"부동산", "음식", "배달", "식당",
	"패션", "뷰티", "중고거래",
	"채용", "구인", "인사",
	"게임", "콘텐츠", "미디어", "커뮤니티",
	"제조", "공장", "농업", "환경",
}
