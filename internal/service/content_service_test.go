package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
)

func TestGenerateTestReturnsValidatedQuestions(t *testing.T) {
	m := &fakeModel{}
	m.reply = "```json\n" + questionsJSON(t, sampleQuestions(3, "Math")) + "\n```"
	svc := NewContentService(m, 3)

	got, err := svc.GenerateTest(context.Background(), 8, []string{"Mathematics", "Science"}, "Hindi")
	if err != nil {
		t.Fatalf("GenerateTest() error = %v", err)
	}
	if len(got) != 3 || got[2].Question != "Math question 3?" {
		t.Errorf("GenerateTest() = %+v", got)
	}
	if m.calls != 1 {
		t.Fatalf("model called %d times, want 1", m.calls)
	}
	if m.schemas[0] == nil || m.schemas[0].Type != genai.TypeArray {
		t.Errorf("test requests must declare the MCQ array schema")
	}

	prompt := m.prompts[0]
	for _, want := range []string{"exactly 3", "Hindi", "class 8", "Mathematics, Science", "exactly 4", "correctAnswer", "JSON array"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q: %s", want, prompt)
		}
	}
}

func TestGenerateNotesPrompt(t *testing.T) {
	m := &fakeModel{reply: "  # Fractions\n\n- **Numerator** is the top part  "}
	svc := NewContentService(m, 10)

	notes, err := svc.GenerateNotes(context.Background(), 6, "Mathematics", "Fractions", "Tamil")
	if err != nil {
		t.Fatalf("GenerateNotes() error = %v", err)
	}
	if notes != "# Fractions\n\n- **Numerator** is the top part" {
		t.Errorf("notes = %q", notes)
	}
	if m.schemas[0] != nil {
		t.Errorf("notes must not declare a response schema")
	}
	for _, want := range []string{`"Fractions"`, `"Mathematics"`, "class 6", "Tamil", "markdown"} {
		if !strings.Contains(m.prompts[0], want) {
			t.Errorf("notes prompt missing %q", want)
		}
	}
}

func TestInvalidRequestsNeverReachTheModel(t *testing.T) {
	cases := map[string]GenerationRequest{
		"zero class":     {Kind: KindTest, StudentClass: 0, Subjects: []string{"Science"}, TargetLanguage: "English"},
		"no subjects":    {Kind: KindTest, StudentClass: 5, TargetLanguage: "English"},
		"blank subject":  {Kind: KindTest, StudentClass: 5, Subjects: []string{"Science", "  "}, TargetLanguage: "English"},
		"blank language": {Kind: KindTest, StudentClass: 5, Subjects: []string{"Science"}, TargetLanguage: " "},
		"notes chapter":  {Kind: KindNotes, StudentClass: 5, Subjects: []string{"Science"}, TargetLanguage: "English"},
		"notes subjects": {Kind: KindNotes, StudentClass: 5, Subjects: []string{"Science", "English"}, TargetLanguage: "English", Chapter: "Cells"},
		"unknown kind":   {Kind: "quiz", StudentClass: 5, Subjects: []string{"Science"}, TargetLanguage: "English"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			m := &fakeModel{}
			_, err := NewContentService(m, 10).Generate(context.Background(), req)
			if !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("error = %v, want ErrInvalidRequest", err)
			}
			if m.calls != 0 {
				t.Errorf("model was called for an invalid request")
			}
		})
	}
}

func TestMalformedResponses(t *testing.T) {
	good := sampleQuestions(2, "Sci")
	mutate := func(fn func(qs []MCQ)) []MCQ {
		qs := sampleQuestions(2, "Sci")
		fn(qs)
		return qs
	}

	cases := map[string]string{
		"not json":          "Here are your questions!",
		"object not array":  `{"question":"x"}`,
		"empty array":       "[]",
		"too few":           questionsJSON(t, good[:1]),
		"too many":          questionsJSON(t, sampleQuestions(3, "Sci")),
		"three options":     questionsJSON(t, mutate(func(qs []MCQ) { qs[1].Options = qs[1].Options[:3] })),
		"duplicate options": questionsJSON(t, mutate(func(qs []MCQ) { qs[0].Options[2] = "Alpha" })),
		"blank option":      questionsJSON(t, mutate(func(qs []MCQ) { qs[0].Options[3] = " " })),
		"blank question":    questionsJSON(t, mutate(func(qs []MCQ) { qs[0].Question = "" })),
		"answer not option": questionsJSON(t, mutate(func(qs []MCQ) { qs[1].CorrectAnswer = "beta" })),
	}
	for name, reply := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewContentService(&fakeModel{reply: reply}, 2).GenerateTest(context.Background(), 7, []string{"Science"}, "English")
			if !errors.Is(err, ErrMalformedResponse) {
				t.Fatalf("error = %v, want ErrMalformedResponse", err)
			}
			if UserMessage(err) != "Received an invalid response from the AI. Please try again." {
				t.Errorf("UserMessage = %q", UserMessage(err))
			}
		})
	}

	if _, err := NewContentService(&fakeModel{reply: "\n\n"}, 2).GenerateNotes(context.Background(), 7, "Science", "Cells", "English"); !errors.Is(err, ErrMalformedResponse) {
		t.Errorf("empty notes error = %v, want ErrMalformedResponse", err)
	}
}

func TestModelErrorsKeepTheirKind(t *testing.T) {
	for _, kind := range []error{ErrTransport, ErrService} {
		m := &fakeModel{err: &GenerationError{Kind: kind, Err: fmt.Errorf("boom")}}
		_, err := NewContentService(m, 10).GenerateTest(context.Background(), 7, []string{"Science"}, "English")
		if !errors.Is(err, kind) {
			t.Errorf("error = %v, want %v", err, kind)
		}
	}
}

func TestClassifyGeminiError(t *testing.T) {
	if err := classifyGeminiError(&googleapi.Error{Code: 403, Message: "API key not valid"}); !errors.Is(err, ErrService) {
		t.Errorf("googleapi error classified as %v", err)
	}
	if err := classifyGeminiError(context.DeadlineExceeded); !errors.Is(err, ErrTransport) || !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("deadline classified as %v", err)
	}
}

func TestUnconfiguredGeminiIsServiceError(t *testing.T) {
	m := &GeminiModel{modelName: "gemini-2.5-flash"}
	if _, err := m.Generate(context.Background(), "hi", nil); !errors.Is(err, ErrService) {
		t.Errorf("error = %v, want ErrService", err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
