package session

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/lshigami/Shiksha/internal/language"
	"github.com/lshigami/Shiksha/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func gormStore(t *testing.T) Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&model.SessionEntry{}); err != nil {
		t.Fatal(err)
	}
	return NewGormStore(db)
}

func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"gorm":   gormStore(t),
	}
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			id := uuid.NewString()
			if _, ok, err := store.Get(ctx, id, KeyUserEmail); err != nil || ok {
				t.Fatalf("Get on empty store = %v, %v", ok, err)
			}
			if err := store.Set(ctx, id, KeyUserEmail, "a@b.c"); err != nil {
				t.Fatal(err)
			}
			if err := store.Set(ctx, id, KeyUserEmail, "x@y.z"); err != nil {
				t.Fatal(err)
			}
			if v, ok, err := store.Get(ctx, id, KeyUserEmail); err != nil || !ok || v != "x@y.z" {
				t.Errorf("Get after overwrite = %q %v %v", v, ok, err)
			}
			if err := store.Set(ctx, id, KeyLoggedIn, "true"); err != nil {
				t.Fatal(err)
			}
			if err := store.Delete(ctx, id, KeyUserEmail); err != nil {
				t.Fatal(err)
			}
			if _, ok, _ := store.Get(ctx, id, KeyUserEmail); ok {
				t.Errorf("deleted key still present")
			}
			if _, ok, _ := store.Get(ctx, id, KeyLoggedIn); !ok {
				t.Errorf("Delete removed an unrelated key")
			}
			if err := store.Clear(ctx, id); err != nil {
				t.Fatal(err)
			}
			if _, ok, _ := store.Get(ctx, id, KeyLoggedIn); ok {
				t.Errorf("Clear left keys behind")
			}
		})
	}
}

func TestOpenUnknownSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	for _, id := range []string{"", "not-a-uuid", uuid.NewString()} {
		if _, err := Open(ctx, store, id); !errors.Is(err, ErrUnknownSession) {
			t.Errorf("Open(%q) = %v, want ErrUnknownSession", id, err)
		}
	}
}

func TestOpenResetsOldSchema(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sess, err := Create(ctx, store)
	if err != nil {
		t.Fatal(err)
	}
	if err := sess.Login(ctx, "a@b.c"); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(ctx, sess.ID(), KeySchemaVersion, "0"); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(ctx, store, sess.ID())
	if err != nil {
		t.Fatal(err)
	}
	if ok, _ := reopened.LoggedIn(ctx); ok {
		t.Errorf("old-schema session kept its login")
	}
	if v, _, _ := store.Get(ctx, sess.ID(), KeySchemaVersion); v != SchemaVersion {
		t.Errorf("schema version = %q", v)
	}
}

func TestViewProgression(t *testing.T) {
	ctx := context.Background()
	sess, err := Create(ctx, gormStore(t))
	if err != nil {
		t.Fatal(err)
	}
	expect := func(want View) {
		t.Helper()
		got, err := sess.View(ctx)
		if err != nil || got != want {
			t.Fatalf("View() = %s, %v; want %s", got, err, want)
		}
	}

	expect(ViewLanguageSelection)
	lang, _, _ := sess.Language(ctx)
	if lang.Code != language.Default {
		t.Errorf("default language = %s", lang.Code)
	}
	if _, err := sess.SetLanguage(ctx, "klingon"); !errors.Is(err, language.ErrUnsupported) {
		t.Errorf("SetLanguage(klingon) = %v", err)
	}
	if _, err := sess.SetLanguage(ctx, "te"); err != nil {
		t.Fatal(err)
	}
	expect(ViewAuth)
	if err := sess.Login(ctx, "a@b.c"); err != nil {
		t.Fatal(err)
	}
	expect(ViewOnboarding)
	if err := sess.SetProfile(ctx, model.UserProfile{Name: "A", StudentClass: 5, WeakSubjects: []string{"English"}}); err != nil {
		t.Fatal(err)
	}
	expect(ViewAssessment)
	if err := sess.SetAssessmentComplete(ctx); err != nil {
		t.Fatal(err)
	}
	expect(ViewDashboard)

	if err := sess.Logout(ctx); err != nil {
		t.Fatal(err)
	}
	expect(ViewAuth)
	if p, _ := sess.Profile(ctx); p != nil {
		t.Errorf("profile survived logout")
	}
	if lang, selected, _ := sess.Language(ctx); !selected || lang.Name != "Telugu" {
		t.Errorf("language after logout = %v selected=%v", lang, selected)
	}
}
