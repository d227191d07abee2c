package service

import "fortune-api/internal/domain"

func match(code, reason string) domain.MatchEntry {
	return domain.MatchEntry{Type: domain.TypeCode(code), Reason: reason}
}

var typeProfiles = map[domain.TypeCode]domain.TypeProfile{
	"INTJ": {
		Type:       "INTJ",
		Name:       "용의주도한 전략가",
		Nickname:   "전략가",
		Summary:    "상상력이 풍부하면서도 철저한 계획을 세우는 전략가입니다.",
		Strengths:  []string{"장기적인 비전과 계획 수립", "독립적인 문제 해결", "높은 기준과 집중력"},
		Weaknesses: []string{"감정 표현에 서툼", "타인에게 지나치게 비판적", "융통성 부족"},
		Careers:    []string{"전략 컨설턴트", "소프트웨어 아키텍트", "연구원", "투자 분석가"},
		BestMatches: []domain.MatchEntry{
			match("ENFP", "ENFP의 열정이 INTJ의 계획에 생기를 불어넣습니다."),
			match("ENTP", "끝없는 아이디어 토론으로 서로를 성장시킵니다."),
		},
		GoodMatches: []domain.MatchEntry{
			match("INTP", "논리적인 대화가 잘 통합니다."),
			match("ENTJ", "목표 지향적인 성향이 닮았습니다."),
			match("INFJ", "깊이 있는 대화를 함께 즐깁니다."),
		},
		WorstMatches: []domain.MatchEntry{
			match("ESFP", "즉흥적인 생활 방식이 INTJ에게 피로감을 줍니다."),
			match("ESFJ", "관계 중심의 기대가 부담으로 느껴질 수 있습니다."),
		},
	},
	"INTP": {
		Type:       "INTP",
		Name:       "논리적인 사색가",
		Nickname:   "사색가",
		Summary:    "끊임없이 새로운 지식을 탐구하는 혁신적인 사색가입니다.",
		Strengths:  []string{"분석력과 논리적 사고", "독창적인 아이디어", "객관적인 판단"},
		Weaknesses: []string{"실행력 부족", "사회적 신호에 둔감", "지나친 생각으로 결정 지연"},
		Careers:    []string{"개발자", "수학자", "데이터 과학자", "철학자"},
		BestMatches: []domain.MatchEntry{
			match("ENTJ", "ENTJ가 INTP의 아이디어를 현실로 옮겨 줍니다."),
			match("ESTJ", "체계적인 ESTJ가 INTP의 빈틈을 채워 줍니다."),
		},
		GoodMatches: []domain.MatchEntry{
			match("INTJ", "지적인 호기심을 함께 나눕니다."),
			match("ENTP", "가설과 토론을 즐기는 대화 상대입니다."),
			match("INFJ", "서로의 내면 세계를 존중합니다."),
		},
		WorstMatches: []domain.MatchEntry{
			match("ESFJ", "감정적 교류에 대한 기대 차이가 큽니다."),
			match("ESFP", "관심사와 생활 리듬이 크게 다릅니다."),
		},
	},
	"ENTJ": {
		Type:       "ENTJ",
		Name:       "대담한 통솔자",
		Nickname:   "통솔자",
		Summary:    "대담하고 상상력이 풍부하며 강한 의지로 길을 개척하는 리더입니다.",
		Strengths:  []string{"결단력과 추진력", "효율적인 조직 운영", "자신감 있는 리더십"},
		Weaknesses: []string{"고집이 셈", "참을성 부족", "감정을 소홀히 여김"},
		Careers:    []string{"경영자", "변호사", "프로젝트 매니저", "창업가"},
		BestMatches: []domain.MatchEntry{
			match("INFP", "INFP의 따뜻함이 ENTJ의 날카로움을 부드럽게 해 줍니다."),
			match("INTP", "INTP의 통찰이 ENTJ의 전략을 완성합니다."),
		},
		GoodMatches: []domain.MatchEntry{
			match("INTJ", "같은 목표를 향해 효율적으로 협력합니다."),
			match("ENTP", "도전적인 아이디어를 즐겁게 주고받습니다."),
			match("ENFP", "에너지 넘치는 시너지를 냅니다."),
		},
		WorstMatches: []domain.MatchEntry{
			match("ISFP", "직설적인 태도가 ISFP에게 상처가 될 수 있습니다."),
			match("ISFJ", "속도 차이로 답답함을 느끼기 쉽습니다."),
		},
	},
	"ENTP": {
		Type:       "ENTP",
		Name:       "뜨거운 논쟁을 즐기는 변론가",
		Nickname:   "변론가",
		Summary:    "지적인 도전을 즐기며 기발한 아이디어가 넘치는 변론가입니다.",
		Strengths:  []string{"빠른 두뇌 회전", "창의적인 문제 해결", "뛰어난 말솜씨"},
		Weaknesses: []string{"논쟁을 즐겨 갈등 유발", "꾸준함 부족", "규칙을 지루해함"},
		Careers:    []string{"기획자", "마케터", "변호사", "스타트업 창업가"},
		BestMatches: []domain.MatchEntry{
			match("INFJ", "INFJ의 깊이가 ENTP의 아이디어에 방향을 줍니다."),
			match("INTJ", "서로의 지적 자극이 끊이지 않습니다."),
		},
		GoodMatches: []domain.MatchEntry{
			match("ENFP", "함께라면 지루할 틈이 없습니다."),
			match("INTP", "엉뚱한 상상도 진지하게 들어 줍니다."),
			match("ENTJ", "아이디어를 실행으로 연결해 줍니다."),
		},
		WorstMatches: []domain.MatchEntry{
			match("ISFJ", "전통과 안정을 중시하는 성향과 부딪힙니다."),
			match("ISTJ", "규칙에 대한 생각이 정반대입니다."),
		},
	},
	"INFJ": {
		Type:       "INFJ",
		Name:       "선의의 옹호자",
		Nickname:   "옹호자",
		Summary:    "조용하지만 신념이 강하고 타인을 돕는 데서 의미를 찾는 이상주의자입니다.",
		Strengths:  []string{"깊은 통찰력", "강한 신념", "타인에 대한 배려"},
		Weaknesses: []string{"완벽주의", "쉽게 지침", "마음을 잘 열지 않음"},
		Careers:    []string{"상담사", "작가", "교사", "심리학자"},
		BestMatches: []domain.MatchEntry{
			match("ENFP", "ENFP의 밝은 에너지가 INFJ를 세상 밖으로 이끕니다."),
			match("ENTP", "ENTP와의 대화에서 새로운 영감을 얻습니다."),
		},
		GoodMatches: []domain.MatchEntry{
			match("INFP", "서로의 감성을 깊이 이해합니다."),
			match("INTJ", "미래를 그리는 방식이 닮았습니다."),
			match("ENFJ", "같은 가치를 위해 함께 움직입니다."),
		},
		WorstMatches: []domain.MatchEntry{
			match("ESTP", "현재 중심의 태도가 가볍게 느껴질 수 있습니다."),
			match("ESFP", "깊은 대화를 나누기 어렵습니다."),
		},
	},
	"INFP": {
		Type:       "INFP",
		Name:       "열정적인 중재자",
		Nickname:   "중재자",
		Summary:    "상냥하고 이타적이며 자신만의 가치와 이상을 소중히 여기는 중재자입니다.",
		Strengths:  []string{"풍부한 공감 능력", "창의성과 상상력", "진정성"},
		Weaknesses: []string{"현실 감각 부족", "상처를 잘 받음", "결정을 미룸"},
		Careers:    []string{"작가", "일러스트레이터", "사회복지사", "상담사"},
		BestMatches: []domain.MatchEntry{
			match("ENFJ", "ENFJ가 INFP의 꿈을 진심으로 응원합니다."),
			match("ENTJ", "ENTJ의 추진력이 INFP의 이상을 현실로 만듭니다."),
		},
		GoodMatches: []domain.MatchEntry{
			match("INFJ", "말하지 않아도 마음이 통합니다."),
			match("ENFP", "감성과 상상력을 함께 나눕니다."),
			match("INTP", "서로의 세계를 간섭하지 않고 존중합니다."),
		},
		WorstMatches: []domain.MatchEntry{
			match("ESTJ", "엄격한 기준이 INFP를 위축시킵니다."),
			match("ISTJ", "감정보다 규칙을 앞세우는 태도에 상처받기 쉽습니다."),
		},
	},
	"ENFJ": {
		Type:       "ENFJ",
		Name:       "정의로운 사회운동가",
		Nickname:   "선도자",
		Summary:    "카리스마와 공감 능력으로 사람들을 이끄는 타고난 리더입니다.",
		Strengths:  []string{"뛰어난 소통 능력", "타인을 성장시키는 힘", "책임감"},
		Weaknesses: []string{"지나친 희생", "거절을 못 함", "비판에 민감"},
		Careers:    []string{"교사", "HR 매니저", "코치", "홍보 전문가"},
		BestMatches: []domain.MatchEntry{
			match("INFP", "INFP의 순수함을 누구보다 아껴 줍니다."),
			match("ISFP", "ISFP의 섬세함과 ENFJ의 따뜻함이 잘 어우러집니다."),
		},
		GoodMatches: []domain.MatchEntry{
			match("ENFP", "함께 있으면 긍정 에너지가 넘칩니다."),
			match("INFJ", "가치관이 잘 맞는 동반자입니다."),
			match("INTP", "ENFJ가 INTP의 생각을 세상과 연결해 줍니다."),
		},
		WorstMatches: []domain.MatchEntry{
			match("ISTP", "감정 표현의 온도 차이가 큽니다."),
			match("ESTP", "관계를 대하는 진지함이 다릅니다."),
		},
	},
	"ENFP": {
		Type:       "ENFP",
		Name:       "재기발랄한 활동가",
		Nickname:   "활동가",
		Summary:    "창의적이고 사교적이며 언제나 웃을 거리를 찾아내는 자유로운 영혼입니다.",
		Strengths:  []string{"열정과 호기심", "뛰어난 친화력", "아이디어 발상"},
		Weaknesses: []string{"집중력 부족", "감정 기복", "마무리가 약함"},
		Careers:    []string{"크리에이터", "광고 기획자", "배우", "여행 작가"},
		BestMatches: []domain.MatchEntry{
			match("INFJ", "INFJ가 ENFP의 마음 깊은 곳까지 이해해 줍니다."),
			match("INTJ", "INTJ의 안정감이 ENFP의 에너지를 잡아 줍니다."),
		},
		GoodMatches: []domain.MatchEntry{
			match("INFP", "서로의 꿈을 응원하는 친구 같은 관계입니다."),
			match("ENTP", "함께 모험을 떠나기 좋은 짝입니다."),
			match("ENFJ", "따뜻한 에너지를 주고받습니다."),
		},
		WorstMatches: []domain.MatchEntry{
			match("ISTJ", "자유로운 성향이 통제받는다고 느끼기 쉽습니다."),
			match("ISFJ", "생활 리듬이 크게 다릅니다."),
		},
	},
	"ISTJ": {
		Type:       "ISTJ",
		Name:       "청렴결백한 논리주의자",
		Nickname:   "현실주의자",
		Summary:    "사실에 근거해 사고하며 맡은 일을 끝까지 책임지는 현실주의자입니다.",
		Strengths:  []string{"성실함과 책임감", "꼼꼼한 일 처리", "신뢰할 수 있음"},
		Weaknesses: []string{"변화에 대한 거부감", "융통성 부족", "감정 표현이 적음"},
		Careers:    []string{"회계사", "공무원", "품질 관리자", "군인"},
		BestMatches: []domain.MatchEntry{
			match("ESFP", "ESFP가 ISTJ의 일상에 즐거움을 더해 줍니다."),
			match("ESTP", "ESTP의 행동력과 ISTJ의 계획이 균형을 이룹니다."),
		},
		GoodMatches: []domain.MatchEntry{
			match("ISFJ", "안정적인 관계를 함께 쌓아 갑니다."),
			match("ESTJ", "원칙을 중시하는 점이 같습니다."),
			match("ISTP", "말보다 행동으로 신뢰를 쌓습니다."),
		},
		WorstMatches: []domain.MatchEntry{
			match("ENFP", "즉흥적인 변화가 ISTJ를 불안하게 만듭니다."),
			match("INFP", "추상적인 대화가 답답하게 느껴집니다."),
		},
	},
	"ISFJ": {
		Type:       "ISFJ",
		Name:       "용감한 수호자",
		Nickname:   "수호자",
		Summary:    "소중한 사람들을 지키기 위해 언제든 헌신하는 따뜻한 수호자입니다.",
		Strengths:  []string{"세심한 배려", "성실함", "뛰어난 기억력"},
		Weaknesses: []string{"자기 희생이 지나침", "변화를 두려워함", "속마음을 숨김"},
		Careers:    []string{"간호사", "초등교사", "사무 관리자", "사회복지사"},
		BestMatches: []domain.MatchEntry{
			match("ESFP", "ESFP의 밝음이 ISFJ를 웃게 합니다."),
			match("ESTP", "ESTP가 ISFJ에게 새로운 경험을 선물합니다."),
		},
		GoodMatches: []domain.MatchEntry{
			match("ISTJ", "서로를 믿고 의지할 수 있습니다."),
			match("ESFJ", "배려하는 마음이 닮았습니다."),
			match("ISFP", "조용하고 따뜻한 시간을 함께 보냅니다."),
		},
		WorstMatches: []domain.MatchEntry{
			match("ENTP", "도발적인 논쟁이 ISFJ를 지치게 합니다."),
			match("ENFP", "예측할 수 없는 행동이 부담스럽습니다."),
		},
	},
	"ESTJ": {
		Type:       "ESTJ",
		Name:       "엄격한 관리자",
		Nickname:   "경영자",
		Summary:    "질서와 규칙을 중시하며 사람과 일을 효율적으로 관리하는 관리자입니다.",
		Strengths:  []string{"뛰어난 조직력", "결단력", "정직함"},
		Weaknesses: []string{"고집스러움", "감정에 무심함", "권위적인 태도"},
		Careers:    []string{"관리자", "판사", "은행원", "군 간부"},
		BestMatches: []domain.MatchEntry{
			match("INTP", "INTP의 창의성이 ESTJ의 시야를 넓혀 줍니다."),
			match("ISFP", "ISFP의 부드러움이 ESTJ를 편안하게 합니다."),
			match("ISTP", "실용적인 두 사람이 손발이 척척 맞습니다."),
		},
		GoodMatches: []domain.MatchEntry{
			match("ISTJ", "책임감 있는 태도를 서로 존중합니다."),
			match("ESFJ", "함께 체계적인 생활을 꾸립니다."),
			match("ESTP", "현실적인 목표를 향해 빠르게 움직입니다."),
		},
		WorstMatches: []domain.MatchEntry{
			match("INFP", "이상과 현실의 간극이 큽니다."),
			match("ENFP", "규칙을 대하는 태도가 정반대입니다."),
		},
	},
	"ESFJ": {
		Type:       "ESFJ",
		Name:       "사교적인 외교관",
		Nickname:   "집정관",
		Summary:    "배려심이 넘치고 주변 사람들을 챙기는 인기 많은 외교관입니다.",
		Strengths:  []string{"따뜻한 배려", "협동심", "강한 책임감"},
		Weaknesses: []string{"인정 욕구가 강함", "비판에 약함", "변화에 소극적"},
		Careers:    []string{"간호사", "이벤트 플래너", "영업 관리자", "교사"},
		BestMatches: []domain.MatchEntry{
			match("ISFP", "ISFP의 진심을 ESFJ가 가장 먼저 알아봅니다."),
			match("ISTP", "ISTP의 담백함이 ESFJ에게 안정감을 줍니다."),
		},
		GoodMatches: []domain.MatchEntry{
			match("ISFJ", "서로를 챙기는 다정한 관계입니다."),
			match("ESTJ", "현실적인 목표를 공유합니다."),
			match("ESFP", "함께하면 늘 즐겁습니다."),
		},
		WorstMatches: []domain.MatchEntry{
			match("INTP", "감정 표현 방식이 매우 다릅니다."),
			match("INTJ", "냉철한 태도가 차갑게 느껴질 수 있습니다."),
		},
	},
	"ISTP": {
		Type:       "ISTP",
		Name:       "만능 재주꾼",
		Nickname:   "장인",
		Summary:    "대담하고 현실적이며 손으로 직접 해 보며 배우는 만능 재주꾼입니다.",
		Strengths:  []string{"위기 대처 능력", "실용적인 문제 해결", "침착함"},
		Weaknesses: []string{"무심해 보임", "약속에 얽매이기 싫어함", "감정 표현이 서툼"},
		Careers:    []string{"엔지니어", "정비사", "파일럿", "보안 전문가"},
		BestMatches: []domain.MatchEntry{
			match("ESFJ", "ESFJ의 다정함이 ISTP의 마음을 엽니다."),
			match("ESTJ", "서로의 실용성을 높이 평가합니다."),
		},
		GoodMatches: []domain.MatchEntry{
			match("ISTJ", "조용히 신뢰를 쌓아 갑니다."),
			match("ESTP", "함께 활동적인 취미를 즐깁니다."),
			match("ISFP", "서로의 자유를 존중합니다."),
		},
		WorstMatches: []domain.MatchEntry{
			match("ENFJ", "깊은 감정 교류를 원하는 기대가 부담스럽습니다."),
			match("INFJ", "대화의 온도와 방향이 다릅니다."),
		},
	},
	"ISFP": {
		Type:       "ISFP",
		Name:       "호기심 많은 예술가",
		Nickname:   "모험가",
		Summary:    "항상 새로운 것을 찾아 나서는 유연하고 매력 넘치는 예술가입니다.",
		Strengths:  []string{"뛰어난 미적 감각", "따뜻한 마음", "유연함"},
		Weaknesses: []string{"계획성 부족", "갈등 회피", "자존감이 흔들리기 쉬움"},
		Careers:    []string{"디자이너", "사진작가", "요리사", "플로리스트"},
		BestMatches: []domain.MatchEntry{
			match("ENFJ", "ENFJ가 ISFP의 재능을 알아보고 키워 줍니다."),
			match("ESFJ", "ESFJ의 배려 속에서 ISFP가 편안해집니다."),
			match("ESTJ", "ESTJ의 든든함이 ISFP를 지켜 줍니다."),
		},
		GoodMatches: []domain.MatchEntry{
			match("ISFJ", "잔잔하고 다정한 관계입니다."),
			match("ESFP", "감각적인 즐거움을 함께 나눕니다."),
			match("ISTP", "부담 없이 편안한 사이입니다."),
		},
		WorstMatches: []domain.MatchEntry{
			match("ENTJ", "강한 주장에 ISFP가 위축됩니다."),
			match("INTJ", "감성보다 논리를 앞세워 거리감을 느낍니다."),
		},
	},
	"ESTP": {
		Type:       "ESTP",
		Name:       "모험을 즐기는 사업가",
		Nickname:   "사업가",
		Summary:    "위험을 즐기며 에너지와 센스로 주변을 사로잡는 사업가입니다.",
		Strengths:  []string{"뛰어난 순발력", "사교성", "실행력"},
		Weaknesses: []string{"충동적인 결정", "참을성 부족", "장기 계획에 약함"},
		Careers:    []string{"영업 전문가", "사업가", "스포츠 선수", "응급 구조사"},
		BestMatches: []domain.MatchEntry{
			match("ISFJ", "ISFJ의 세심함이 ESTP를 든든하게 받쳐 줍니다."),
			match("ISTJ", "ISTJ의 계획성이 ESTP의 행동력을 완성합니다."),
		},
		GoodMatches: []domain.MatchEntry{
			match("ESTJ", "목표를 향해 함께 달립니다."),
			match("ISTP", "모험을 함께 즐기는 파트너입니다."),
			match("ESFP", "어디서든 분위기 메이커 듀오입니다."),
		},
		WorstMatches: []domain.MatchEntry{
			match("INFJ", "깊은 의미를 찾는 대화가 지루하게 느껴집니다."),
			match("ENFJ", "관계에 대한 기대치가 다릅니다."),
		},
	},
	"ESFP": {
		Type:       "ESFP",
		Name:       "자유로운 영혼의 연예인",
		Nickname:   "연예인",
		Summary:    "주변을 즐겁게 만드는 재능을 가진 즉흥적이고 열정적인 연예인입니다.",
		Strengths:  []string{"긍정적인 에너지", "뛰어난 관찰력", "친화력"},
		Weaknesses: []string{"지루함을 못 견딤", "장기 계획 부족", "갈등 회피"},
		Careers:    []string{"배우", "MC", "이벤트 기획자", "여행 가이드"},
		BestMatches: []domain.MatchEntry{
			match("ISFJ", "ISFJ가 ESFP를 묵묵히 챙겨 줍니다."),
			match("ISTJ", "ISTJ의 안정감이 ESFP에게 쉼터가 됩니다."),
		},
		GoodMatches: []domain.MatchEntry{
			match("ESFJ", "함께 사람들과 어울리기를 좋아합니다."),
			match("ISFP", "감각과 취향이 잘 맞습니다."),
			match("ESTP", "에너지 넘치는 일상을 함께합니다."),
		},
		WorstMatches: []domain.MatchEntry{
			match("INTJ", "계획과 분석 위주의 태도가 답답합니다."),
			match("INFJ", "진지한 분위기가 부담스럽습니다."),
		},
	},
}
