package service

import "testing"

func TestScore(t *testing.T) {
	qs := sampleQuestions(4, "S")
	beta, alpha, lower := "Beta", "Alpha", "beta"

	tests := []struct {
		name    string
		answers []*string
		want    int
	}{
		{"all correct", []*string{&beta, &beta, &beta, &beta}, 4},
		{"mixed", []*string{&beta, &alpha, &beta, &alpha}, 2},
		{"unanswered counts wrong", []*string{&beta, nil, nil, &beta}, 2},
		{"case sensitive", []*string{&lower, &lower, &beta, &lower}, 1},
		{"short answers", []*string{&beta}, 1},
		{"none", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(qs, tt.answers); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
			if again := Score(qs, tt.answers); again != tt.want {
				t.Errorf("Score() is not idempotent: %d then %d", tt.want, again)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	cases := []struct{ score, total, want int }{
		{7, 10, 70},
		{2, 3, 67},
		{1, 3, 33},
		{0, 0, 0},
		{10, 10, 100},
	}
	for _, c := range cases {
		if got := Percent(c.score, c.total); got != c.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", c.score, c.total, got, c.want)
		}
	}
}
