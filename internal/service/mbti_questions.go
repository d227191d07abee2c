package service

import "fortune-api/internal/domain"

func q(id int, dim domain.Dimension, prompt, textA string, poleA domain.Pole, textB string, poleB domain.Pole) domain.Question {
	return domain.Question{
		ID:        id,
		Dimension: dim,
		Prompt:    prompt,
		Options: [2]domain.QuestionOption{
			{Text: textA, Pole: poleA},
			{Text: textB, Pole: poleB},
		},
	}
}

// questionBank is the fixed questionnaire. Some items list the second pole first on purpose;
// the option's pole, not its position, decides what gets tallied.
var questionBank = [...]domain.Question{
	q(1, domain.DimensionEI, "주말에 에너지를 충전하는 방법은?",
		"친구들과 약속을 잡고 밖에서 논다", domain.PoleE,
		"집에서 혼자 쉬면서 시간을 보낸다", domain.PoleI),
	q(2, domain.DimensionSN, "새로운 일을 배울 때 나는?",
		"구체적인 예시와 순서를 먼저 익힌다", domain.PoleS,
		"전체 원리와 큰 그림을 먼저 이해한다", domain.PoleN),
	q(3, domain.DimensionTF, "친구가 고민을 털어놓으면?",
		"현실적인 해결책을 제시한다", domain.PoleT,
		"먼저 마음을 공감하고 위로한다", domain.PoleF),
	q(4, domain.DimensionJP, "여행을 떠나기 전 나는?",
		"일정과 동선을 미리 꼼꼼히 짠다", domain.PoleJ,
		"큰 틀만 정하고 현지에서 즉흥적으로 움직인다", domain.PoleP),
	q(5, domain.DimensionEI, "처음 보는 사람들이 많은 모임에서 나는?",
		"먼저 말을 걸고 분위기를 띄운다", domain.PoleE,
		"누가 말을 걸어 줄 때까지 조용히 지켜본다", domain.PoleI),
	q(6, domain.DimensionSN, "대화할 때 더 흥미로운 주제는?",
		"상상, 가능성, 미래에 대한 이야기", domain.PoleN,
		"실제 있었던 일과 경험담", domain.PoleS),
	q(7, domain.DimensionTF, "중요한 결정을 내릴 때 더 중요한 것은?",
		"논리와 객관적인 사실", domain.PoleT,
		"관련된 사람들의 감정과 관계", domain.PoleF),
	q(8, domain.DimensionJP, "마감이 있는 과제를 할 때 나는?",
		"미리미리 나눠서 끝내 둔다", domain.PoleJ,
		"마감 직전에 집중해서 몰아친다", domain.PoleP),
	q(9, domain.DimensionEI, "생각을 정리하는 방식은?",
		"말하면서 생각이 정리된다", domain.PoleE,
		"혼자 곰곰이 생각한 뒤에 말한다", domain.PoleI),
	q(10, domain.DimensionSN, "길을 설명할 때 나는?",
		"몇 미터 직진 후 편의점에서 우회전처럼 정확히 말한다", domain.PoleS,
		"저기 분위기 좋은 동네 쪽으로 쭉 가면 된다고 말한다", domain.PoleN),
	q(11, domain.DimensionTF, "친구가 새로 산 옷이 어울리지 않을 때 나는?",
		"기분 상하지 않게 좋은 점부터 이야기한다", domain.PoleF,
		"솔직하게 다른 옷이 더 낫다고 말한다", domain.PoleT),
	q(12, domain.DimensionJP, "내 책상이나 방의 상태는?",
		"물건마다 제자리가 정해져 있다", domain.PoleJ,
		"어질러져 있어도 어디에 뭐가 있는지 안다", domain.PoleP),
	q(13, domain.DimensionEI, "하루 종일 사람을 만난 뒤 나는?",
		"지쳐서 혼자만의 시간이 꼭 필요하다", domain.PoleI,
		"오히려 기분이 들떠서 더 놀고 싶다", domain.PoleE),
	q(14, domain.DimensionSN, "영화를 보고 난 뒤 나는?",
		"배우의 연기나 장면의 디테일을 이야기한다", domain.PoleS,
		"숨겨진 의미와 결말 해석을 이야기한다", domain.PoleN),
	q(15, domain.DimensionTF, "팀 프로젝트에서 갈등이 생기면?",
		"누가 맞는지 따져서 빠르게 정리한다", domain.PoleT,
		"모두가 서운하지 않도록 중재한다", domain.PoleF),
	q(16, domain.DimensionJP, "갑자기 약속이 취소되면?",
		"오히려 자유 시간이 생겨서 좋다", domain.PoleP,
		"계획이 틀어져서 조금 불편하다", domain.PoleJ),
}

var (
	questionIndex         = buildQuestionIndex()
	questionsPerDimension = countQuestionsPerDimension()
)

func buildQuestionIndex() map[int]domain.Question {
	idx := make(map[int]domain.Question, len(questionBank))
	for _, question := range questionBank {
		idx[question.ID] = question
	}
	return idx
}

func countQuestionsPerDimension() [4]int {
	var counts [4]int
	for _, question := range questionBank {
		counts[question.Dimension]++
	}
	return counts
}

// Questions returns a copy of the questionnaire in presentation order.
func Questions() []domain.Question {
	out := make([]domain.Question, len(questionBank))
	copy(out, questionBank[:])
	return out
}

// QuestionByID looks up a question in the bank.
func QuestionByID(id int) (domain.Question, bool) {
	question, ok := questionIndex[id]
	return question, ok
}

// QuestionsFor returns how many bank questions measure dimension d.
func QuestionsFor(d domain.Dimension) int {
	if !d.Valid() {
		return 0
	}
	return questionsPerDimension[d]
}
