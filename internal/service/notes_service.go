package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Shiksha/internal/catalog"
	"github.com/lshigami/Shiksha/internal/dto"
	"github.com/lshigami/Shiksha/internal/model"
	"github.com/lshigami/Shiksha/internal/repository"
	"github.com/lshigami/Shiksha/internal/session"
	"github.com/rs/zerolog/log"
)

type NotesService interface {
	Request(ctx context.Context, sess *session.Session, subject, chapter string) (*dto.NotesViewDTO, error)
	Get(ctx context.Context, sess *session.Session) (*dto.NotesViewDTO, error)
	// Reset drops the session's notes. Requests still in flight are discarded.
	Reset(ctx context.Context, sess *session.Session) error
}

// notesBoard is the chapter-notes panel of one session. Only the latest request may write to it.
type notesBoard struct {
	mu        sync.Mutex
	seq       uint64
	state     FlowState
	subject   string
	chapter   string
	language  string
	content   string
	errMsg    string
	updatedAt *time.Time
}

type notesService struct {
	content ContentService
	repo    repository.NotesRepository
	catalog *catalog.Catalog

	mu     sync.Mutex
	boards map[string]*notesBoard
}

func NewNotesService(content ContentService, repo repository.NotesRepository, c *catalog.Catalog) NotesService {
	return &notesService{
		content: content,
		repo:    repo,
		catalog: c,
		boards:  make(map[string]*notesBoard),
	}
}

func (s *notesService) board(sessionID string) *notesBoard {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.boards[sessionID]
	if !ok {
		b = &notesBoard{state: FlowIdle}
		s.boards[sessionID] = b
	}
	return b
}

func (s *notesService) Request(ctx context.Context, sess *session.Session, subject, chapter string) (*dto.NotesViewDTO, error) {
	profile, err := sess.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileRequired
	}
	subj, ch, ok := s.catalog.FindChapter(subject, chapter)
	if !ok {
		return nil, fmt.Errorf("%w: %s / %s", ErrUnknownChapter, subject, chapter)
	}
	if !ch.HasNotes {
		return nil, fmt.Errorf("%w: %s", ErrNotesUnavailable, ch.Title)
	}
	lang, _, err := sess.Language(ctx)
	if err != nil {
		return nil, err
	}

	b := s.board(sess.ID())
	b.mu.Lock()
	b.seq++
	seq := b.seq
	b.state = FlowLoading
	b.subject, b.chapter, b.language = subj.Name, ch.Title, lang.Name
	b.content, b.errMsg, b.updatedAt = "", "", nil
	b.mu.Unlock()

	log.Info().Str("sessionID", sess.ID()).Str("subject", subj.Name).Str("chapter", ch.Title).Uint64("seq", seq).Msg("Requesting chapter notes")
	notes, genErr := s.content.GenerateNotes(ctx, profile.StudentClass, subj.Name, ch.Title, lang.Name)

	b.mu.Lock()
	defer b.mu.Unlock()
	if seq != b.seq {
		log.Info().Str("sessionID", sess.ID()).Uint64("seq", seq).Uint64("latest", b.seq).Msg("Discarding superseded notes result")
		return nil, ErrSuperseded
	}
	if genErr != nil {
		log.Warn().Err(genErr).Str("sessionID", sess.ID()).Msg("Notes generation failed")
		b.state = FlowLoadFailed
		b.errMsg = UserMessage(genErr)
		return b.viewLocked(), nil
	}

	doc := &model.NotesDocument{
		SessionID: sess.ID(),
		Subject:   subj.Name,
		Chapter:   ch.Title,
		Language:  lang.Name,
		Content:   notes,
	}
	if err := s.repo.Replace(doc); err != nil {
		log.Error().Err(err).Str("sessionID", sess.ID()).Msg("Failed to persist notes document")
		b.state = FlowLoadFailed
		b.errMsg = "Failed to save study notes. Please try again."
		return nil, fmt.Errorf("error saving notes: %w", err)
	}
	now := time.Now()
	b.state = FlowReady
	b.content = notes
	b.updatedAt = &now
	return b.viewLocked(), nil
}

func (s *notesService) Get(ctx context.Context, sess *session.Session) (*dto.NotesViewDTO, error) {
	s.mu.Lock()
	b, live := s.boards[sess.ID()]
	s.mu.Unlock()
	if live {
		b.mu.Lock()
		defer b.mu.Unlock()
		return b.viewLocked(), nil
	}

	doc, err := s.repo.FindBySession(sess.ID())
	if errors.Is(err, repository.ErrNotFound) {
		return &dto.NotesViewDTO{State: string(FlowIdle)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading notes: %w", err)
	}
	var view dto.NotesViewDTO
	if err := copier.Copy(&view, doc); err != nil {
		return nil, fmt.Errorf("error preparing notes response: %w", err)
	}
	view.State = string(FlowReady)
	updated := doc.UpdatedAt
	view.UpdatedAt = &updated
	return &view, nil
}

func (s *notesService) Reset(ctx context.Context, sess *session.Session) error {
	s.mu.Lock()
	b := s.boards[sess.ID()]
	delete(s.boards, sess.ID())
	s.mu.Unlock()
	if b != nil {
		b.mu.Lock()
		b.seq++
		b.mu.Unlock()
	}
	if err := s.repo.Delete(sess.ID()); err != nil {
		log.Error().Err(err).Str("sessionID", sess.ID()).Msg("Failed to delete notes")
		return fmt.Errorf("error resetting notes: %w", err)
	}
	return nil
}

func (b *notesBoard) viewLocked() *dto.NotesViewDTO {
	return &dto.NotesViewDTO{
		State:     string(b.state),
		Subject:   b.subject,
		Chapter:   b.chapter,
		Language:  b.language,
		Content:   b.content,
		Error:     b.errMsg,
		UpdatedAt: b.updatedAt,
	}
}
