package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"github.com/lshigami/Shiksha/database"
	"github.com/lshigami/Shiksha/internal/model"
	"github.com/lshigami/Shiksha/internal/session"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeModel records every prompt and answers with a canned reply.
type fakeModel struct {
	mu      sync.Mutex
	calls   int
	prompts []string
	schemas []*genai.Schema
	reply   string
	err     error
}

func (m *fakeModel) Generate(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.prompts = append(m.prompts, prompt)
	m.schemas = append(m.schemas, schema)
	return m.reply, m.err
}

type funcGenerator func(ctx context.Context, studentClass int, subjects []string, language string) ([]MCQ, error)

func (g funcGenerator) GenerateTest(ctx context.Context, studentClass int, subjects []string, language string) ([]MCQ, error) {
	return g(ctx, studentClass, subjects, language)
}

// fakeContent satisfies ContentService for tests above the content layer.
type fakeContent struct {
	test  funcGenerator
	notes func(ctx context.Context, subject, chapter, language string) (string, error)
}

func (c *fakeContent) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	return nil, fmt.Errorf("not used")
}

func (c *fakeContent) GenerateTest(ctx context.Context, studentClass int, subjects []string, language string) ([]MCQ, error) {
	return c.test(ctx, studentClass, subjects, language)
}

func (c *fakeContent) GenerateNotes(ctx context.Context, studentClass int, subject, chapter, language string) (string, error) {
	return c.notes(ctx, subject, chapter, language)
}

type completionFlag struct {
	calls int
	err   error
}

func (c *completionFlag) SetAssessmentComplete(ctx context.Context) error {
	c.calls++
	return c.err
}

func sampleQuestions(n int, prefix string) []MCQ {
	out := make([]MCQ, n)
	for i := range out {
		out[i] = MCQ{
			Question:      fmt.Sprintf("%s question %d?", prefix, i+1),
			Options:       []string{"Alpha", "Beta", "Gamma", "Delta"},
			CorrectAnswer: "Beta",
		}
	}
	return out
}

func questionsJSON(t *testing.T, qs []MCQ) string {
	t.Helper()
	b, err := json.Marshal(qs)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func testProfile() model.UserProfile {
	return model.UserProfile{
		Name:         "Asha",
		Age:          13,
		StudentClass: 8,
		Email:        "asha@example.com",
		Phone:        "9999999999",
		WeakSubjects: []string{"Mathematics", "Science"},
	}
}

// onboardedSession returns a logged-in session with a stored profile.
func onboardedSession(t *testing.T) *session.Session {
	t.Helper()
	ctx := context.Background()
	sess, err := session.Create(ctx, session.NewMemoryStore())
	if err != nil {
		t.Fatal(err)
	}
	if err := sess.Login(ctx, "asha@example.com"); err != nil {
		t.Fatal(err)
	}
	if err := sess.SetProfile(ctx, testProfile()); err != nil {
		t.Fatal(err)
	}
	return sess
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
