package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
)

type ContentKind string

const (
	KindTest  ContentKind = "test"
	KindNotes ContentKind = "notes"

	OptionsPerQuestion = 4
)

// GenerationRequest is built fresh for every call. Notes requests use exactly one subject and a chapter.
type GenerationRequest struct {
	Kind           ContentKind
	StudentClass   int
	Subjects       []string
	TargetLanguage string
	Chapter        string
}

type MCQ struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type GenerationResult struct {
	Questions []MCQ
	Notes     string
}

// ContentModel is the external generative endpoint. The schema is nil for free-form text.
type ContentModel interface {
	Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

type ContentService interface {
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error)
	GenerateTest(ctx context.Context, studentClass int, subjects []string, language string) ([]MCQ, error)
	GenerateNotes(ctx context.Context, studentClass int, subject, chapter, language string) (string, error)
}

type contentService struct {
	model         ContentModel
	questionCount int
}

func NewContentService(model ContentModel, questionCount int) ContentService {
	if questionCount <= 0 {
		questionCount = 10
	}
	return &contentService{model: model, questionCount: questionCount}
}

var mcqSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"question": {Type: genai.TypeString, Description: "The question text."},
			"options": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "An array of 4 possible answers.",
			},
			"correctAnswer": {Type: genai.TypeString, Description: "The correct answer, must match one of the options."},
		},
		Required: []string{"question", "options", "correctAnswer"},
	},
}

func (s *contentService) GenerateTest(ctx context.Context, studentClass int, subjects []string, language string) ([]MCQ, error) {
	res, err := s.Generate(ctx, GenerationRequest{
		Kind:           KindTest,
		StudentClass:   studentClass,
		Subjects:       subjects,
		TargetLanguage: language,
	})
	if err != nil {
		return nil, err
	}
	return res.Questions, nil
}

func (s *contentService) GenerateNotes(ctx context.Context, studentClass int, subject, chapter, language string) (string, error) {
	res, err := s.Generate(ctx, GenerationRequest{
		Kind:           KindNotes,
		StudentClass:   studentClass,
		Subjects:       []string{subject},
		TargetLanguage: language,
		Chapter:        chapter,
	})
	if err != nil {
		return "", err
	}
	return res.Notes, nil
}

func (s *contentService) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	if err := req.Validate(); err != nil {
		log.Warn().Err(err).Str("kind", string(req.Kind)).Msg("Rejected generation request")
		return nil, err
	}

	prompt := req.Prompt(s.questionCount)
	var schema *genai.Schema
	if req.Kind == KindTest {
		schema = mcqSchema
	}

	raw, err := s.model.Generate(ctx, prompt, schema)
	if err != nil {
		log.Error().Err(err).Str("kind", string(req.Kind)).Int("class", req.StudentClass).Msg("Error generating content")
		return nil, err
	}

	switch req.Kind {
	case KindTest:
		questions, err := ParseQuestions(raw, s.questionCount)
		if err != nil {
			log.Error().Err(err).Msg("Generated JSON does not match expected MCQ structure")
			return nil, err
		}
		return &GenerationResult{Questions: questions}, nil
	default:
		notes := strings.TrimSpace(raw)
		if notes == "" {
			return nil, malformed("notes document is empty")
		}
		return &GenerationResult{Notes: notes}, nil
	}
}

// Validate checks preconditions. Failures never reach the network.
func (r GenerationRequest) Validate() error {
	if r.Kind != KindTest && r.Kind != KindNotes {
		return invalidRequest("unknown kind %q", r.Kind)
	}
	if r.StudentClass <= 0 {
		return invalidRequest("student class must be positive, got %d", r.StudentClass)
	}
	if len(r.Subjects) == 0 {
		return invalidRequest("at least one subject is required")
	}
	for i, subject := range r.Subjects {
		if strings.TrimSpace(subject) == "" {
			return invalidRequest("subject %d is empty", i)
		}
	}
	if strings.TrimSpace(r.TargetLanguage) == "" {
		return invalidRequest("target language is required")
	}
	if r.Kind == KindNotes {
		if len(r.Subjects) != 1 {
			return invalidRequest("notes take exactly one subject, got %d", len(r.Subjects))
		}
		if strings.TrimSpace(r.Chapter) == "" {
			return invalidRequest("chapter is required for notes")
		}
	}
	return nil
}

// Prompt renders the natural-language instruction sent to the model.
func (r GenerationRequest) Prompt(questionCount int) string {
	language := strings.TrimSpace(r.TargetLanguage)
	if r.Kind == KindNotes {
		return fmt.Sprintf(`Generate simple and easy-to-understand study notes in the %s language for a class %d student on the chapter "%s" from the subject "%s". The notes should cover the key concepts in a concise manner, using simple language. Use markdown for formatting, like headings, subheadings, bullet points, and bold text for important terms. All text must be in %s.`,
			language, r.StudentClass, strings.TrimSpace(r.Chapter), strings.TrimSpace(r.Subjects[0]), language)
	}

	subjects := make([]string, len(r.Subjects))
	for i, s := range r.Subjects {
		subjects[i] = strings.TrimSpace(s)
	}
	return fmt.Sprintf(`Generate exactly %d multiple-choice questions in the %s language for a class %d student. The questions should cover fundamental concepts from the following subjects: %s. The difficulty should be appropriate for a student of that class. Each question must have exactly %d distinct options. Ensure the 'correctAnswer' is one of the strings from the 'options' array, copied exactly. Provide the output as a JSON array. All text (question, options, correctAnswer) must be in %s.`,
		questionCount, language, r.StudentClass, strings.Join(subjects, ", "), OptionsPerQuestion, language)
}

// ParseQuestions decodes and validates a test payload. Validation is all-or-nothing.
func ParseQuestions(raw string, want int) ([]MCQ, error) {
	var questions []MCQ
	if err := json.Unmarshal([]byte(cleanModelOutput(raw)), &questions); err != nil {
		return nil, &GenerationError{Kind: ErrMalformedResponse, Detail: "payload is not a JSON array of questions", Err: err}
	}
	if len(questions) == 0 {
		return nil, malformed("no questions returned")
	}
	if want > 0 && len(questions) != want {
		return nil, malformed("expected %d questions, got %d", want, len(questions))
	}
	for i, q := range questions {
		if err := validateMCQ(q); err != nil {
			return nil, malformed("question %d: %s", i+1, err)
		}
	}
	return questions, nil
}

func validateMCQ(q MCQ) error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) != OptionsPerQuestion {
		return fmt.Errorf("expected %d options, got %d", OptionsPerQuestion, len(q.Options))
	}
	seen := make(map[string]bool, len(q.Options))
	found := false
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("option is empty")
		}
		if seen[opt] {
			return fmt.Errorf("duplicate option %q", opt)
		}
		seen[opt] = true
		if opt == q.CorrectAnswer {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("correct answer %q is not one of the options", q.CorrectAnswer)
	}
	return nil
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
