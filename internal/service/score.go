package service

import "math"

// Score counts exact, case-sensitive matches. Unanswered questions and answers beyond the question list
// count as incorrect.
func Score(questions []MCQ, answers []*string) int {
	correct := 0
	for i, q := range questions {
		if i >= len(answers) || answers[i] == nil {
			continue
		}
		if *answers[i] == q.CorrectAnswer {
			correct++
		}
	}
	return correct
}

// Percent rounds score/total to the nearest whole percent. An empty test scores 0.
func Percent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) * 100 / float64(total)))
}
