package i18n

var ko = map[string]string{
	"app.name":     "LexDesk",
	"nav.analyze":  "계약서 분석",
	"nav.docs":     "내 문서",
	"nav.chat":     "법률 Q&A",
	"nav.logout":   "로그아웃",
	"nav.language": "언어",

	"login.title":    "로그인",
	"login.subtitle": "계약서를 분석하고 위험 요소를 확인하세요.",
	"login.google":   "Google 계정으로 로그인",
	"login.disabled": "Google 로그인이 설정되지 않았습니다.",
	"login.token":    "ID 토큰",
	"login.submit":   "토큰으로 로그인",

	"tab.summary": "요약",
	"tab.risk":    "위험 분석",
	"tab.clauses": "조항",
	"tab.terms":   "용어",
	"tab.raw":     "원본 JSON",

	"risk.낮음":  "낮음",
	"risk.중간":  "중간",
	"risk.높음":  "높음",
	"risk.치명적": "치명적",

	"detail.loading":             "문서를 불러오는 중...",
	"detail.not_found":           "문서를 찾을 수 없습니다.",
	"detail.not_found_hint":      "삭제되었거나 접근 권한이 없는 문서입니다.",
	"detail.back":                "목록으로",
	"detail.untitled":            "제목 없음",
	"detail.favorite_add":        "즐겨찾기 추가",
	"detail.favorite_remove":     "즐겨찾기 해제",
	"detail.rename":              "이름 변경",
	"detail.export":              "PDF 내보내기",
	"detail.rename_alert":        "이름 변경 기능은 준비 중입니다.",
	"detail.export_alert":        "PDF 내보내기 기능은 준비 중입니다.",
	"detail.created":             "생성일",
	"detail.language":            "언어",
	"detail.parties":             "당사자",
	"detail.governing_law":       "준거법",
	"detail.domain_tags":         "분야",
	"detail.one_line":            "한 줄 요약",
	"detail.overall":             "전체 요약",
	"detail.key_points":          "핵심 포인트",
	"detail.main_risks":          "주요 위험",
	"detail.main_protections":    "주요 보호 장치",
	"detail.recommended_actions": "권장 조치",
	"detail.none":                "없음",
	"detail.risk_level":          "위험 등급",
	"detail.risk_score":          "위험 점수",
	"detail.dimensions":          "위험 항목별 점수",
	"detail.comments":            "코멘트",
	"detail.no_clauses":          "조항이 없습니다.",
	"detail.no_terms":            "용어가 없습니다.",
	"detail.raw_collapse":        "접기",
	"detail.raw_expand":          "펼치기",
	"detail.causal":              "조항 관계",

	"clause.summary":       "요약",
	"clause.key_points":    "핵심 포인트",
	"clause.risk_factors":  "위험 요소",
	"clause.red_flags":     "주의 사항",
	"clause.protections":   "보호 장치",
	"clause.action_guides": "행동 가이드",
	"clause.tags":          "태그",
	"clause.raw_text":      "원문",

	"term.term":    "용어",
	"term.korean":  "한국어",
	"term.english": "영어",
	"term.source":  "출처",

	"docs.title":          "내 문서",
	"docs.search":         "제목 또는 요약 검색",
	"docs.filter_all":     "전체",
	"docs.apply":          "적용",
	"docs.empty":          "문서가 없습니다.",
	"docs.count":          "%d개 문서",
	"docs.delete":         "삭제",
	"docs.delete_confirm": "이 문서를 삭제하시겠습니까?",
	"docs.confirm":        "확인",
	"docs.cancel":         "취소",
	"docs.open":           "열기",

	"analyze.title":           "계약서 분석",
	"analyze.file":            "계약서 파일 (PDF, DOCX, TXT)",
	"analyze.extract":         "텍스트 추출",
	"analyze.interpret":       "AI 분석",
	"analyze.preview":         "추출 미리보기",
	"analyze.chars":           "%d자",
	"analyze.step.idle":       "대기",
	"analyze.step.extracting": "텍스트 추출 중",
	"analyze.step.analyzing":  "AI 분석 중",
	"analyze.step.done":       "완료",
	"analyze.open_detail":     "상세 보기",
	"analyze.no_file":         "파일을 선택하세요.",

	"chat.title":          "법률 Q&A",
	"chat.placeholder":    "법률 질문을 입력하세요",
	"chat.send":           "질문하기",
	"chat.empty":          "아직 질문이 없습니다.",
	"chat.empty_question": "질문을 입력하세요.",

	"error.title":   "오류",
	"error.dismiss": "닫기",
}

var en = map[string]string{
	"nav.analyze":  "Analyze",
	"nav.docs":     "My documents",
	"nav.chat":     "Legal Q&A",
	"nav.logout":   "Sign out",
	"nav.language": "Language",

	"login.title":    "Sign in",
	"login.subtitle": "Analyze contracts and review their risks.",
	"login.google":   "Sign in with Google",
	"login.disabled": "Google sign-in is not configured.",
	"login.token":    "ID token",
	"login.submit":   "Sign in with token",

	"tab.summary": "Summary",
	"tab.risk":    "Risk",
	"tab.clauses": "Clauses",
	"tab.terms":   "Terms",
	"tab.raw":     "Raw JSON",

	"risk.낮음":  "Low",
	"risk.중간":  "Medium",
	"risk.높음":  "High",
	"risk.치명적": "Critical",

	"detail.loading":             "Loading document...",
	"detail.not_found":           "Document not found.",
	"detail.not_found_hint":      "It may have been deleted, or you may not have access.",
	"detail.back":                "Back to list",
	"detail.untitled":            "Untitled",
	"detail.favorite_add":        "Add to favorites",
	"detail.favorite_remove":     "Remove from favorites",
	"detail.rename":              "Rename",
	"detail.export":              "Export PDF",
	"detail.rename_alert":        "Renaming is coming soon.",
	"detail.export_alert":        "PDF export is coming soon.",
	"detail.created":             "Created",
	"detail.language":            "Language",
	"detail.parties":             "Parties",
	"detail.governing_law":       "Governing law",
	"detail.domain_tags":         "Domains",
	"detail.one_line":            "One-line summary",
	"detail.overall":             "Overall summary",
	"detail.key_points":          "Key points",
	"detail.main_risks":          "Main risks",
	"detail.main_protections":    "Main protections",
	"detail.recommended_actions": "Recommended actions",
	"detail.none":                "None",
	"detail.risk_level":          "Risk level",
	"detail.risk_score":          "Risk score",
	"detail.dimensions":          "Risk by dimension",
	"detail.comments":            "Comments",
	"detail.no_clauses":          "No clauses.",
	"detail.no_terms":            "No terms.",
	"detail.raw_collapse":        "Collapse",
	"detail.raw_expand":          "Expand",
	"detail.causal":              "Clause relationships",

	"clause.summary":       "Summary",
	"clause.key_points":    "Key points",
	"clause.risk_factors":  "Risk factors",
	"clause.red_flags":     "Red flags",
	"clause.protections":   "Protections",
	"clause.action_guides": "Action guides",
	"clause.tags":          "Tags",
	"clause.raw_text":      "Original text",

	"term.term":    "Term",
	"term.korean":  "Korean",
	"term.english": "English",
	"term.source":  "Source",

	"docs.title":          "My documents",
	"docs.search":         "Search title or summary",
	"docs.filter_all":     "All",
	"docs.apply":          "Apply",
	"docs.empty":          "No documents.",
	"docs.count":          "%d documents",
	"docs.delete":         "Delete",
	"docs.delete_confirm": "Delete this document?",
	"docs.confirm":        "Confirm",
	"docs.cancel":         "Cancel",
	"docs.open":           "Open",

	"analyze.title":           "Analyze a contract",
	"analyze.file":            "Contract file (PDF, DOCX, TXT)",
	"analyze.extract":         "Extract text",
	"analyze.interpret":       "Analyze with AI",
	"analyze.preview":         "Extracted preview",
	"analyze.chars":           "%d characters",
	"analyze.step.idle":       "Idle",
	"analyze.step.extracting": "Extracting text",
	"analyze.step.analyzing":  "Analyzing",
	"analyze.step.done":       "Done",
	"analyze.open_detail":     "Open details",
	"analyze.no_file":         "Choose a file.",

	"chat.title":          "Legal Q&A",
	"chat.placeholder":    "Ask a legal question",
	"chat.send":           "Ask",
	"chat.empty":          "No questions yet.",
	"chat.empty_question": "Enter a question.",

	"error.title":   "Error",
	"error.dismiss": "Dismiss",
}

// vi is partial; missing keys fall back to Korean.
var vi = map[string]string{
	"nav.analyze":  "Phân tích",
	"nav.docs":     "Tài liệu của tôi",
	"nav.chat":     "Hỏi đáp pháp lý",
	"nav.logout":   "Đăng xuất",
	"nav.language": "Ngôn ngữ",

	"login.title":  "Đăng nhập",
	"login.google": "Đăng nhập bằng Google",

	"tab.summary": "Tóm tắt",
	"tab.risk":    "Rủi ro",
	"tab.clauses": "Điều khoản",
	"tab.terms":   "Thuật ngữ",
	"tab.raw":     "JSON gốc",

	"risk.낮음":  "Thấp",
	"risk.중간":  "Trung bình",
	"risk.높음":  "Cao",
	"risk.치명적": "Nghiêm trọng",

	"detail.loading":    "Đang tải tài liệu...",
	"detail.not_found":  "Không tìm thấy tài liệu.",
	"detail.back":       "Quay lại",
	"detail.untitled":   "Không có tiêu đề",
	"detail.key_points": "Điểm chính",
	"detail.main_risks": "Rủi ro chính",
	"detail.risk_level": "Mức rủi ro",
	"detail.risk_score": "Điểm rủi ro",
	"detail.no_clauses": "Không có điều khoản.",
	"detail.no_terms":   "Không có thuật ngữ.",

	"docs.title":  "Tài liệu của tôi",
	"docs.empty":  "Không có tài liệu.",
	"docs.delete": "Xóa",

	"chat.title": "Hỏi đáp pháp lý",
	"chat.send":  "Gửi câu hỏi",

	"error.title":   "Lỗi",
	"error.dismiss": "Đóng",
}
