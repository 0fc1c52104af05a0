package service

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/lshigami/Shiksha/internal/model"
	"github.com/rs/zerolog/log"
)

type FlowState string

const (
	FlowIdle       FlowState = "idle"
	FlowLoading    FlowState = "loading"
	FlowReady      FlowState = "ready"
	FlowLoadFailed FlowState = "load_failed"
	FlowScored     FlowState = "scored"
	FlowCompleted  FlowState = "completed"
)

var (
	ErrInvalidState     = errors.New("action not allowed in the current state")
	ErrUnknownOption    = errors.New("option is not one of the current question's options")
	ErrNoAnswerSelected = errors.New("select an answer before continuing")
	ErrSuperseded       = errors.New("request superseded by a newer one")
)

const interruptedMessage = "The previous request was interrupted. Please try again."

type TestGenerator interface {
	GenerateTest(ctx context.Context, studentClass int, subjects []string, language string) ([]MCQ, error)
}

// CompletionRecorder persists the "assessment finished" flag.
type CompletionRecorder interface {
	SetAssessmentComplete(ctx context.Context) error
}

// FlowSnapshot is a deep copy of the flow's state.
type FlowSnapshot struct {
	State        FlowState
	StudentClass int
	WeakSubjects []string
	Language     string
	Questions    []MCQ
	Answers      []*string
	CurrentIndex int
	Score        *int
	ErrorMessage string
}

// AssessmentFlow walks a student through one generated test.
//
// Every start and retry takes a new sequence number; a generation result is applied only if its sequence is
// still the latest, so a slow superseded request can never overwrite newer state.
type AssessmentFlow struct {
	mu  sync.Mutex
	gen TestGenerator
	seq uint64

	state        FlowState
	studentClass int
	weakSubjects []string
	language     string
	questions    []MCQ
	answers      []*string
	current      int
	score        *int
	errMsg       string
}

func NewAssessmentFlow(gen TestGenerator) *AssessmentFlow {
	return &AssessmentFlow{gen: gen, state: FlowIdle}
}

// RestoreAssessmentFlow rebuilds a flow from a snapshot. A snapshot taken while loading comes back as
// load_failed because its request no longer exists.
func RestoreAssessmentFlow(gen TestGenerator, snap FlowSnapshot) *AssessmentFlow {
	f := &AssessmentFlow{
		gen:          gen,
		state:        snap.State,
		studentClass: snap.StudentClass,
		weakSubjects: slices.Clone(snap.WeakSubjects),
		language:     snap.Language,
		questions:    cloneMCQs(snap.Questions),
		answers:      cloneAnswers(snap.Answers),
		current:      snap.CurrentIndex,
		score:        cloneInt(snap.Score),
		errMsg:       snap.ErrorMessage,
	}
	if f.state == "" {
		f.state = FlowIdle
	}
	if f.state == FlowLoading {
		f.state = FlowLoadFailed
		f.errMsg = interruptedMessage
	}
	if f.state == FlowReady && (f.current < 0 || f.current >= len(f.questions)) {
		f.state = FlowLoadFailed
		f.errMsg = interruptedMessage
	}
	if len(f.answers) != len(f.questions) {
		answers := make([]*string, len(f.questions))
		copy(answers, f.answers)
		f.answers = answers
	}
	return f
}

// Start generates a fresh test for the profile's class and weak subjects in the given display language.
func (f *AssessmentFlow) Start(ctx context.Context, profile model.UserProfile, language string) error {
	f.mu.Lock()
	if f.state == FlowCompleted {
		f.mu.Unlock()
		return ErrInvalidState
	}
	f.studentClass = profile.StudentClass
	f.weakSubjects = slices.Clone(profile.WeakSubjects)
	f.language = language
	req := f.beginLoadLocked()
	f.mu.Unlock()

	return f.load(ctx, req)
}

// Retry re-runs the last start after a failed load.
func (f *AssessmentFlow) Retry(ctx context.Context) error {
	f.mu.Lock()
	if f.state != FlowLoadFailed {
		f.mu.Unlock()
		return ErrInvalidState
	}
	req := f.beginLoadLocked()
	f.mu.Unlock()

	return f.load(ctx, req)
}

type flowLoad struct {
	seq          uint64
	studentClass int
	subjects     []string
	language     string
}

func (f *AssessmentFlow) beginLoadLocked() flowLoad {
	f.seq++
	f.state = FlowLoading
	f.questions = nil
	f.answers = nil
	f.current = 0
	f.score = nil
	f.errMsg = ""
	return flowLoad{
		seq:          f.seq,
		studentClass: f.studentClass,
		subjects:     slices.Clone(f.weakSubjects),
		language:     f.language,
	}
}

func (f *AssessmentFlow) load(ctx context.Context, req flowLoad) error {
	questions, err := f.gen.GenerateTest(ctx, req.studentClass, req.subjects, req.language)

	f.mu.Lock()
	defer f.mu.Unlock()
	if req.seq != f.seq {
		log.Info().Uint64("seq", req.seq).Uint64("latest", f.seq).Msg("Discarding superseded assessment result")
		return ErrSuperseded
	}
	if err == nil && len(questions) == 0 {
		err = malformed("no questions returned")
	}
	if err != nil {
		f.state = FlowLoadFailed
		f.errMsg = UserMessage(err)
		return err
	}
	f.questions = cloneMCQs(questions)
	f.answers = make([]*string, len(questions))
	f.current = 0
	f.state = FlowReady
	return nil
}

// SelectAnswer records the option for the current question without advancing. The latest choice wins.
func (f *AssessmentFlow) SelectAnswer(option string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != FlowReady {
		return ErrInvalidState
	}
	if !slices.Contains(f.questions[f.current].Options, option) {
		return ErrUnknownOption
	}
	f.answers[f.current] = &option
	return nil
}

// Advance moves to the next question, or scores the test when the last question is answered.
func (f *AssessmentFlow) Advance() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != FlowReady {
		return ErrInvalidState
	}
	if f.answers[f.current] == nil {
		return ErrNoAnswerSelected
	}
	if f.current < len(f.questions)-1 {
		f.current++
		return nil
	}
	score := Score(f.questions, f.answers)
	f.score = &score
	f.state = FlowScored
	return nil
}

// Finish records completion. Calling it again after completion only rewrites the flag.
// The flag is written without holding the flow lock.
func (f *AssessmentFlow) Finish(ctx context.Context, rec CompletionRecorder) error {
	f.mu.Lock()
	if f.state != FlowScored && f.state != FlowCompleted {
		f.mu.Unlock()
		return ErrInvalidState
	}
	seq := f.seq
	f.mu.Unlock()

	if err := rec.SetAssessmentComplete(ctx); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if seq != f.seq {
		return ErrSuperseded
	}
	f.state = FlowCompleted
	return nil
}

// Invalidate makes any in-flight load return ErrSuperseded without touching the flow.
func (f *AssessmentFlow) Invalidate() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
}

func (f *AssessmentFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *AssessmentFlow) Snapshot() FlowSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FlowSnapshot{
		State:        f.state,
		StudentClass: f.studentClass,
		WeakSubjects: slices.Clone(f.weakSubjects),
		Language:     f.language,
		Questions:    cloneMCQs(f.questions),
		Answers:      cloneAnswers(f.answers),
		CurrentIndex: f.current,
		Score:        cloneInt(f.score),
		ErrorMessage: f.errMsg,
	}
}

func cloneMCQs(in []MCQ) []MCQ {
	if in == nil {
		return nil
	}
	out := make([]MCQ, len(in))
	for i, q := range in {
		out[i] = MCQ{Question: q.Question, Options: slices.Clone(q.Options), CorrectAnswer: q.CorrectAnswer}
	}
	return out
}

func cloneAnswers(in []*string) []*string {
	if in == nil {
		return nil
	}
	out := make([]*string, len(in))
	for i, a := range in {
		if a != nil {
			v := *a
			out[i] = &v
		}
	}
	return out
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
