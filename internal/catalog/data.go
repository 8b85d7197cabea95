package catalog

// categories is the reference catalog. Order is part of the contract: the
// renderer and inference output follow it, so keep it stable.
var categories = []Category{
	{
		ID: CategoryVisualization,
		Stages: []Stage{
			{
				Name:     "기획_요구사항_정의",
				Features: []string{"분석 목적 및 주요 KPI 정의", "사용자 요구 정리", "데이터 시각화 방향 수립"},
				Outputs:  []string{"대시보드 기획서", "KPI 정의서", "와이어프레임"},
				Cost:     400000,
			},
			{
				Name:     "데이터_수집_전처리",
				Features: []string{"내부/외부 데이터 수집", "데이터 정제 및 가공", "Power BI/Tableau 적재"},
				Outputs:  []string{"전처리된 데이터셋", "테이블 구조 설계"},
				Cost:     800000,
			},
			{
				Name:     "대시보드_프로토타입_제작",
				Features: []string{"핵심 KPI 위주의 시각화 모듈 개발", "피드백 반영 구조 구성"},
				Outputs:  []string{"초기 대시보드 MVP", "페이지별 기능 설명서"},
				Cost:     1000000,
			},
			{
				Name:     "사용자_맞춤형_기능_추가",
				Features: []string{"필터", "Drill-Down", "권한별 뷰", "주간/월간 리포트 자동화"},
				Outputs:  []string{"사용자 인터랙션 기능 적용된 완성형 대시보드"},
				Cost:     1000000,
			},
			{
				Name:     "자동화_운영_연동",
				Features: []string{"데이터 자동 업데이트", "배치 스케줄링(Airflow)", "알림/리포트 자동화"},
				Outputs:  []string{"자동 리포트 PDF", "Airflow DAG", "메일 발송 연동"},
				Cost:     1000000,
			},
			{
				Name:     "관리자_교육_전달",
				Features: []string{"사용자 가이드 작성", "관리자 교육 세션", "유지보수 문서 전달"},
				Outputs:  []string{"운영 매뉴얼", "대시보드 사용법 PDF"},
				Cost:     0,
			},
		},
	},
	{
		ID: CategoryChatbot,
		Stages: []Stage{
			{
				Name:     "기획_조사",
				Features: []string{"요구사항 분석", "유즈케이스 정의", "경쟁 분석", "AI 활용방안 설계"},
				Cost:     500000,
			},
			{
				Name:     "데이터_수집_전처리",
				Features: []string{"크롤링", "정제", "레이블링", "토크나이징", "이미지/음성/텍스트 데이터셋 구성"},
				Cost:     500000,
			},
			{
				Name:     "AI_모델_개발_API고도화",
				Features: []string{"음성/이미지/언어 생성 또는 인식 모델 개발", "프롬프트 엔지니어링"},
				Cost:     2000000,
			},
			{
				Name:     "AI_모델_개발_파인튜닝",
				Features: []string{"오픈소스 LLM (LLaMA, Mistral 등) Fine-tuning", "데이터 기반 학습 스크립트 구성"},
				Cost:     3000000,
			},
			{
				Name:     "모델_평가_개선",
				Features: []string{"정확도/정밀도/F1 Score", "실제 QA 시나리오 성능 평가", "실패 케이스 분석"},
				Cost:     1500000,
			},
			{
				Name:     "플랫폼_MVP_구현",
				Features: []string{"백엔드 API", "챗봇 UI(웹/앱)", "인증/권한 시스템", "대화 흐름 구현"},
				Cost:     3000000,
			},
			{
				Name:     "운영_자동화_모니터링",
				Features: []string{"모델 재학습 파이프라인", "로그 수집", "성능 모니터링 대시보드"},
				Cost:     1000000,
			},
			{
				Name:     "교육_전달",
				Features: []string{"관리자 및 사용자 매뉴얼 제공", "유지보수 가이드", "기술 이전"},
				Cost:     0,
			},
		},
	},
	{
		ID: CategoryDataEngineering,
		Stages: []Stage{
			{
				Name:     "요구사항_정의_설계",
				Features: []string{"수집 대상 정의", "스키마 설계", "파이프라인 구조 설계"},
				Cost:     500000,
			},
			{
				Name:     "데이터_수집_모듈_개발",
				Features: []string{"Public API", "웹 크롤링", "DB 추출 등 데이터 수집 자동화 구현"},
				Cost:     500000,
			},
			{
				Name:     "데이터_처리_정제",
				Features: []string{"결측치 처리", "중복 제거", "포맷 변환", "컬럼 정리 등 전처리 로직 개발"},
				Cost:     500000,
			},
			{
				Name:     "저장_적재_자동화",
				Features: []string{"정제 데이터의 저장 (SQL, Data Lake, Warehouse 등) 및 버전 관리"},
				Cost:     500000,
			},
			{
				Name:     "파이프라인_자동화",
				Features: []string{"Apache Airflow", "Python 스케줄러", "CI/CD 등 활용한 자동화 구성"},
				Cost:     700000,
			},
			{
				Name:     "모니터링_오류_알림",
				Features: []string{"실패 로그 수집", "작업 성공 여부 시각화", "슬랙/메일 알림 연동"},
				Cost:     500000,
			},
			{
				Name:     "문서화_전달",
				Features: []string{"전체 데이터 흐름도", "운영 가이드", "유지보수 문서 제공"},
				Cost:     0,
			},
		},
	},
	{
		ID: CategoryPlatform,
		Stages: []Stage{
			{
				Name:     "기획_요구사항_정의",
				Features: []string{"고객 요구사항 분석", "핵심 기능 도출", "경쟁 벤치마킹", "플랫폼 구조 설계", "기술 스택 선정", "클라우드 인프라 초안 수립"},
				Cost:     1000000,
			},
			{
				Name:     "플랫폼_프론트엔드_개발",
				Features: []string{"사용자 UI/UX 구현 (React/Vue 기반)", "반응형 디자인 적용"},
				Cost:     2000000,
			},
			{
				Name:     "플랫폼_백엔드_개발",
				Features: []string{"API 서버", "인증 시스템", "DB 연동", "알림 시스템 등 구현"},
				Cost:     3000000,
			},
			{
				Name:     "운영자_관리_시스템",
				Features: []string{"관리자 페이지", "권한 관리", "사용자/데이터 모니터링 기능"},
				Cost:     2000000,
			},
			{
				Name:     "배포_통합_유지보수",
				Features: []string{"도메인 연동", "서버 배포", "초기 오류 대응 및 유지보수 가이드 제공"},
				Cost:     1000000,
			},
		},
	},
	{
		ID: CategoryMobileApp,
		Stages: []Stage{
			{
				Name:     "기획_요구사항_정의",
				Features: []string{"핵심 사용자 시나리오 정의", "화면 흐름 설계", "스토어 정책 검토"},
				Outputs:  []string{"앱 기획서", "화면 설계서"},
				Cost:     800000,
			},
			{
				Name:     "앱_UI_UX_디자인",
				Features: []string{"iOS/Android 디자인 가이드 적용", "프로토타입 제작"},
				Outputs:  []string{"디자인 시안", "클릭 가능한 프로토타입"},
				Cost:     1500000,
			},
			{
				Name:     "앱_개발",
				Features: []string{"크로스플랫폼(Flutter/React Native) 개발", "푸시 알림", "로그인/결제 연동"},
				Cost:     3000000,
			},
			{
				Name:     "백엔드_API_개발",
				Features: []string{"API 서버", "DB 설계", "관리자 기능"},
				Cost:     2000000,
			},
			{
				Name:     "스토어_배포_유지보수",
				Features: []string{"앱스토어/플레이스토어 심사 대응", "초기 오류 대응"},
				Cost:     500000,
			},
		},
	},
}
