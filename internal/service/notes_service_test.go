package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/lshigami/Shiksha/internal/catalog"
	"github.com/lshigami/Shiksha/internal/repository"
)

func newNotesFixture(t *testing.T, notes func(ctx context.Context, subject, chapter, language string) (string, error)) (NotesService, repository.NotesRepository, *catalog.Catalog) {
	t.Helper()
	c, err := catalog.Load()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewNotesRepository(testDB(t))
	return NewNotesService(&fakeContent{notes: notes}, repo, c), repo, c
}

func TestNotesRequestPersists(t *testing.T) {
	ctx := context.Background()
	svc, repo, c := newNotesFixture(t, func(ctx context.Context, subject, chapter, language string) (string, error) {
		return "# " + chapter + " (" + subject + ", " + language + ")", nil
	})
	sess := onboardedSession(t)

	view, err := svc.Request(ctx, sess, "math", "m3")
	if err != nil {
		t.Fatalf("Request() = %v", err)
	}
	if view.State != string(FlowReady) || view.Content != "# Geometry (Mathematics, English)" || view.UpdatedAt == nil {
		t.Errorf("view = %+v", view)
	}

	fresh := NewNotesService(&fakeContent{}, repo, c)
	got, err := fresh.Get(ctx, sess)
	if err != nil {
		t.Fatal(err)
	}
	if got.State != string(FlowReady) || got.Chapter != "Geometry" || got.Content != view.Content {
		t.Errorf("stored view = %+v", got)
	}
}

func TestNotesRequestValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newNotesFixture(t, func(ctx context.Context, subject, chapter, language string) (string, error) {
		t.Fatal("content should not be requested")
		return "", nil
	})
	sess := onboardedSession(t)

	if _, err := svc.Request(ctx, sess, "Mathematics", "Calculus"); !errors.Is(err, ErrUnknownChapter) {
		t.Errorf("unknown chapter = %v", err)
	}
	if _, err := svc.Request(ctx, sess, "Physics", "Light and Optics"); !errors.Is(err, ErrNotesUnavailable) {
		t.Errorf("chapter without notes = %v", err)
	}

	view, err := svc.Get(ctx, sess)
	if err != nil || view.State != string(FlowIdle) {
		t.Errorf("Get() on empty board = %+v, %v", view, err)
	}
}

func TestNotesFailureShowsMessage(t *testing.T) {
	svc, _, _ := newNotesFixture(t, func(ctx context.Context, subject, chapter, language string) (string, error) {
		return "", &GenerationError{Kind: ErrService, Detail: "http status 403"}
	})
	view, err := svc.Request(context.Background(), onboardedSession(t), "science", "s1")
	if err != nil {
		t.Fatalf("Request() = %v", err)
	}
	if view.State != string(FlowLoadFailed) || view.Error == "" || view.Content != "" {
		t.Errorf("view = %+v", view)
	}
}

func TestNotesLatestRequestWins(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	svc, _, _ := newNotesFixture(t, func(ctx context.Context, subject, chapter, language string) (string, error) {
		if calls.Add(1) == 1 {
			close(entered)
			<-release
		}
		return "notes for " + chapter, nil
	})
	ctx := context.Background()
	sess := onboardedSession(t)

	errc := make(chan error, 1)
	go func() {
		_, err := svc.Request(ctx, sess, "science", "s1")
		errc <- err
	}()
	<-entered

	view, err := svc.Request(ctx, sess, "english", "e1")
	if err != nil {
		t.Fatal(err)
	}
	close(release)
	if err := <-errc; !errors.Is(err, ErrSuperseded) {
		t.Fatalf("first request = %v, want ErrSuperseded", err)
	}

	got, err := svc.Get(ctx, sess)
	if err != nil {
		t.Fatal(err)
	}
	if got.Content != "notes for Grammar Basics" || got.Content != view.Content {
		t.Errorf("board shows %q", got.Content)
	}
}

func TestLogoutClearsNotes(t *testing.T) {
	ctx := context.Background()
	svc, repo, c := newNotesFixture(t, func(ctx context.Context, subject, chapter, language string) (string, error) {
		return "# " + chapter, nil
	})
	auth := NewAuthService(nil, svc)
	sess := onboardedSession(t)

	if _, err := svc.Request(ctx, sess, "science", "s2"); err != nil {
		t.Fatal(err)
	}
	if err := auth.Logout(ctx, sess); err != nil {
		t.Fatal(err)
	}

	for name, notes := range map[string]NotesService{"live": svc, "restarted": NewNotesService(&fakeContent{}, repo, c)} {
		view, err := notes.Get(ctx, sess)
		if err != nil || view.State != string(FlowIdle) || view.Content != "" {
			t.Errorf("%s: Get() after logout = %+v, %v", name, view, err)
		}
	}
}

func TestNotesResetDiscardsInFlightRequest(t *testing.T) {
	ctx := context.Background()
	entered := make(chan struct{})
	release := make(chan struct{})
	svc, repo, _ := newNotesFixture(t, func(ctx context.Context, subject, chapter, language string) (string, error) {
		close(entered)
		<-release
		return "# late", nil
	})
	sess := onboardedSession(t)

	errc := make(chan error, 1)
	go func() {
		_, err := svc.Request(ctx, sess, "english", "e2")
		errc <- err
	}()
	<-entered
	if err := svc.Reset(ctx, sess); err != nil {
		t.Fatal(err)
	}
	close(release)
	if err := <-errc; !errors.Is(err, ErrSuperseded) {
		t.Fatalf("Request() = %v, want ErrSuperseded", err)
	}
	if _, err := repo.FindBySession(sess.ID()); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("late notes were stored: %v", err)
	}
}
