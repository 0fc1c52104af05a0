package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/lshigami/Shiksha/internal/dto"
	"github.com/lshigami/Shiksha/internal/model"
	"github.com/lshigami/Shiksha/internal/repository"
	"github.com/lshigami/Shiksha/internal/session"
	"github.com/rs/zerolog/log"
)

// AssessmentService drives one AssessmentFlow per session and persists a snapshot after every transition.
type AssessmentService interface {
	Start(ctx context.Context, sess *session.Session) (*dto.AssessmentViewDTO, error)
	Get(ctx context.Context, sess *session.Session) (*dto.AssessmentViewDTO, error)
	SelectAnswer(ctx context.Context, sess *session.Session, option string) (*dto.AssessmentViewDTO, error)
	Advance(ctx context.Context, sess *session.Session) (*dto.AssessmentViewDTO, error)
	Retry(ctx context.Context, sess *session.Session) (*dto.AssessmentViewDTO, error)
	Finish(ctx context.Context, sess *session.Session) (*dto.AssessmentViewDTO, error)
	// Reset forgets the session's assessment so a new login starts over.
	Reset(ctx context.Context, sess *session.Session) error
}

type assessmentService struct {
	content ContentService
	repo    repository.AssessmentRepository

	mu    sync.Mutex
	flows map[string]*AssessmentFlow

	// serialises snapshot+save so a stale snapshot is never written after a newer one
	persistMu sync.Mutex
}

func NewAssessmentService(content ContentService, repo repository.AssessmentRepository) AssessmentService {
	return &assessmentService{
		content: content,
		repo:    repo,
		flows:   make(map[string]*AssessmentFlow),
	}
}

// flowFor returns the live flow for a session, rehydrating it from the database after a restart.
func (s *assessmentService) flowFor(sessionID string) (*AssessmentFlow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.flows[sessionID]; ok {
		return f, nil
	}

	stored, err := s.repo.FindBySession(sessionID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		f := NewAssessmentFlow(s.content)
		s.flows[sessionID] = f
		return f, nil
	case err != nil:
		return nil, fmt.Errorf("error loading assessment: %w", err)
	}

	f := RestoreAssessmentFlow(s.content, snapshotFromModel(stored))
	s.flows[sessionID] = f
	return f, nil
}

func (s *assessmentService) Start(ctx context.Context, sess *session.Session) (*dto.AssessmentViewDTO, error) {
	profile, err := sess.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileRequired
	}
	lang, _, err := sess.Language(ctx)
	if err != nil {
		return nil, err
	}
	f, err := s.flowFor(sess.ID())
	if err != nil {
		return nil, err
	}

	log.Info().Str("sessionID", sess.ID()).Int("class", profile.StudentClass).Str("language", lang.Name).Msg("Starting assessment")
	return s.runLoad(sess.ID(), f, func() error { return f.Start(ctx, *profile, lang.Name) })
}

func (s *assessmentService) Retry(ctx context.Context, sess *session.Session) (*dto.AssessmentViewDTO, error) {
	f, err := s.flowFor(sess.ID())
	if err != nil {
		return nil, err
	}
	log.Info().Str("sessionID", sess.ID()).Msg("Retrying assessment generation")
	return s.runLoad(sess.ID(), f, func() error { return f.Retry(ctx) })
}

// runLoad executes a start or retry. Generation failures leave the flow in load_failed and are reported
// through the view, not as an error.
func (s *assessmentService) runLoad(sessionID string, f *AssessmentFlow, load func() error) (*dto.AssessmentViewDTO, error) {
	err := load()
	var genErr *GenerationError
	switch {
	case err == nil:
	case errors.As(err, &genErr):
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("Assessment generation failed")
	default:
		return nil, err
	}
	return s.persist(sessionID, f)
}

func (s *assessmentService) Get(ctx context.Context, sess *session.Session) (*dto.AssessmentViewDTO, error) {
	f, err := s.flowFor(sess.ID())
	if err != nil {
		return nil, err
	}
	return AssessmentView(f.Snapshot()), nil
}

func (s *assessmentService) SelectAnswer(ctx context.Context, sess *session.Session, option string) (*dto.AssessmentViewDTO, error) {
	f, err := s.flowFor(sess.ID())
	if err != nil {
		return nil, err
	}
	if err := f.SelectAnswer(option); err != nil {
		return nil, err
	}
	return s.persist(sess.ID(), f)
}

func (s *assessmentService) Advance(ctx context.Context, sess *session.Session) (*dto.AssessmentViewDTO, error) {
	f, err := s.flowFor(sess.ID())
	if err != nil {
		return nil, err
	}
	if err := f.Advance(); err != nil {
		return nil, err
	}
	if f.State() == FlowScored {
		log.Info().Str("sessionID", sess.ID()).Msg("Assessment scored")
	}
	return s.persist(sess.ID(), f)
}

func (s *assessmentService) Finish(ctx context.Context, sess *session.Session) (*dto.AssessmentViewDTO, error) {
	f, err := s.flowFor(sess.ID())
	if err != nil {
		return nil, err
	}
	if err := f.Finish(ctx, sess); err != nil {
		return nil, err
	}
	return s.persist(sess.ID(), f)
}

func (s *assessmentService) Reset(ctx context.Context, sess *session.Session) error {
	s.mu.Lock()
	f := s.flows[sess.ID()]
	delete(s.flows, sess.ID())
	s.mu.Unlock()
	if f != nil {
		f.Invalidate()
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	if err := s.repo.Delete(sess.ID()); err != nil {
		log.Error().Err(err).Str("sessionID", sess.ID()).Msg("Failed to delete assessment")
		return fmt.Errorf("error resetting assessment: %w", err)
	}
	return nil
}

// persist saves the flow's snapshot unless the flow has been reset in the meantime.
func (s *assessmentService) persist(sessionID string, f *AssessmentFlow) (*dto.AssessmentViewDTO, error) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	current := s.flows[sessionID] == f
	s.mu.Unlock()
	if !current {
		log.Info().Str("sessionID", sessionID).Msg("Dropping snapshot of a reset assessment")
		return nil, ErrSuperseded
	}

	snap := f.Snapshot()
	if err := s.repo.Save(snapshotToModel(sessionID, snap)); err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to persist assessment snapshot")
		return nil, fmt.Errorf("error saving assessment: %w", err)
	}
	return AssessmentView(snap), nil
}

// AssessmentView renders a snapshot for the client. Correct answers stay hidden until the test is scored.
func AssessmentView(snap FlowSnapshot) *dto.AssessmentViewDTO {
	view := &dto.AssessmentViewDTO{
		State:        string(snap.State),
		Language:     snap.Language,
		Total:        len(snap.Questions),
		CurrentIndex: snap.CurrentIndex,
	}

	switch snap.State {
	case FlowReady:
		q := snap.Questions[snap.CurrentIndex]
		view.Current = &dto.QuestionViewDTO{
			Position: snap.CurrentIndex,
			Question: q.Question,
			Options:  q.Options,
			Answer:   snap.Answers[snap.CurrentIndex],
		}
		view.CanAdvance = snap.Answers[snap.CurrentIndex] != nil
		view.IsLast = snap.CurrentIndex == len(snap.Questions)-1
	case FlowScored, FlowCompleted:
		view.Score = snap.Score
		if snap.Score != nil {
			percent := Percent(*snap.Score, len(snap.Questions))
			view.Percent = &percent
		}
		view.Review = make([]dto.QuestionViewDTO, len(snap.Questions))
		for i, q := range snap.Questions {
			view.Review[i] = dto.QuestionViewDTO{
				Position:      i,
				Question:      q.Question,
				Options:       q.Options,
				Answer:        snap.Answers[i],
				CorrectAnswer: q.CorrectAnswer,
			}
		}
	case FlowLoadFailed:
		view.Error = snap.ErrorMessage
	}
	return view
}

func snapshotToModel(sessionID string, snap FlowSnapshot) *model.Assessment {
	a := &model.Assessment{
		SessionID:    sessionID,
		State:        string(snap.State),
		Language:     snap.Language,
		StudentClass: snap.StudentClass,
		WeakSubjects: snap.WeakSubjects,
		CurrentIndex: snap.CurrentIndex,
		Score:        snap.Score,
		ErrorMessage: snap.ErrorMessage,
	}
	for i, q := range snap.Questions {
		var answer *string
		if i < len(snap.Answers) {
			answer = snap.Answers[i]
		}
		a.Questions = append(a.Questions, model.AssessmentQuestion{
			AssessmentID:  sessionID,
			Position:      i,
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Answer:        answer,
		})
	}
	return a
}

func snapshotFromModel(a *model.Assessment) FlowSnapshot {
	snap := FlowSnapshot{
		State:        FlowState(a.State),
		StudentClass: a.StudentClass,
		WeakSubjects: a.WeakSubjects,
		Language:     a.Language,
		CurrentIndex: a.CurrentIndex,
		Score:        a.Score,
		ErrorMessage: a.ErrorMessage,
	}
	for _, q := range a.Questions {
		snap.Questions = append(snap.Questions, MCQ{Question: q.Question, Options: q.Options, CorrectAnswer: q.CorrectAnswer})
		snap.Answers = append(snap.Answers, q.Answer)
	}
	return snap
}
