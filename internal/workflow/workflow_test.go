package workflow

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/quoteforge/quoteforge/internal/db"
	"github.com/quoteforge/quoteforge/internal/generate"
	"gorm.io/gorm"
)

type fakeGenerator struct {
	failStep string
}

func (f *fakeGenerator) Background(_ context.Context, _ string, _ generate.BackgroundParams) (generate.BackgroundResult, error) {
	if f.failStep == "background" {
		return generate.BackgroundResult{}, fmt.Errorf("background boom")
	}
	return generate.BackgroundResult{ImageURL: "generated-background-1.png"}, nil
}

func (f *fakeGenerator) Music(_ context.Context, _ string, _ generate.MusicParams) (generate.MusicResult, error) {
	if f.failStep == "music" {
		return generate.MusicResult{}, fmt.Errorf("music boom")
	}
	return generate.MusicResult{MusicURL: "generated-music-1.mp3"}, nil
}

func (f *fakeGenerator) Video(_ context.Context, _ string, params generate.VideoParams) (generate.VideoResult, error) {
	if f.failStep == "video" {
		return generate.VideoResult{}, fmt.Errorf("video boom")
	}
	if params.BackgroundURL != "generated-background-1.png" {
		return generate.VideoResult{}, fmt.Errorf("missing background url, got %q", params.BackgroundURL)
	}
	return generate.VideoResult{VideoURL: "generated-video-1.mp4"}, nil
}

// blockingGenerator parks the background step until release closes.
type blockingGenerator struct {
	fakeGenerator
	release chan struct{}
}

func (b *blockingGenerator) Background(ctx context.Context, apiKey string, params generate.BackgroundParams) (generate.BackgroundResult, error) {
	<-b.release
	return b.fakeGenerator.Background(ctx, apiKey, params)
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, errOpen := db.Open(filepath.Join(t.TempDir(), "workflows.db"))
	if errOpen != nil {
		t.Fatalf("open db: %v", errOpen)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}
	return conn
}

func waitTerminal(t *testing.T, r *Runner, id string) State {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		state, errGet := r.Get(context.Background(), id)
		if errGet != nil {
			t.Fatalf("get: %v", errGet)
		}
		if state.Status == StatusCompleted || state.Status == StatusFailed {
			return state
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("workflow did not reach a terminal state")
	return State{}
}

func TestRunner_CompletesAllSteps(t *testing.T) {
	r := NewRunner(testDB(t), &fakeGenerator{})

	state, errStart := r.Start(context.Background(), Request{
		Quote:     "The obstacle is the way.",
		Platforms: []string{"youtube", "tiktok"},
	})
	if errStart != nil {
		t.Fatalf("start: %v", errStart)
	}
	if state.Status != StatusQueued {
		t.Fatalf("expected queued snapshot, got %q", state.Status)
	}
	if state.TotalSteps != 5 {
		t.Fatalf("expected 5 steps, got %d", state.TotalSteps)
	}
	if state.Steps[0].Status != StepCompleted {
		t.Fatal("quote step starts completed")
	}

	final := waitTerminal(t, r, state.ID)
	if final.Status != StatusCompleted {
		t.Fatalf("expected completed, got %+v", final)
	}
	for _, step := range final.Steps {
		if step.Status != StepCompleted {
			t.Fatalf("step %s not completed: %+v", step.ID, step)
		}
	}
	if final.CompletedAt == nil {
		t.Fatal("expected completion timestamp")
	}
	if final.Steps[3].Output != "generated-video-1.mp4" {
		t.Fatalf("expected video output recorded, got %q", final.Steps[3].Output)
	}
}

func TestRunner_SnapshotsDoNotShareStepState(t *testing.T) {
	r := NewRunner(testDB(t), &fakeGenerator{})

	queued, errStart := r.Start(context.Background(), Request{
		Quote:     "q",
		Platforms: []string{"youtube"},
	})
	if errStart != nil {
		t.Fatalf("start: %v", errStart)
	}

	// Poll continuously while the run transitions; each snapshot must be
	// independent of the runner's mutable state.
	stop := make(chan struct{})
	polled := make(chan struct{})
	go func() {
		defer close(polled)
		for {
			select {
			case <-stop:
				return
			default:
			}
			state, errGet := r.Get(context.Background(), queued.ID)
			if errGet != nil {
				return
			}
			for _, step := range state.Steps {
				_ = step.Status
			}
		}
	}()

	final := waitTerminal(t, r, queued.ID)
	close(stop)
	<-polled

	if final.Status != StatusCompleted {
		t.Fatalf("expected completed, got %+v", final)
	}
	// The queued snapshot handed out by Start must not have been mutated
	// by the transitions that ran after it.
	if queued.Status != StatusQueued {
		t.Fatalf("queued snapshot status mutated to %q", queued.Status)
	}
	if queued.Steps[1].Status != StepPending {
		t.Fatalf("queued snapshot step mutated to %q", queued.Steps[1].Status)
	}
}

func TestRunner_GetReturnsIndependentCopy(t *testing.T) {
	gen := &blockingGenerator{release: make(chan struct{})}
	r := NewRunner(testDB(t), gen)

	state, errStart := r.Start(context.Background(), Request{Quote: "q", Platforms: []string{"youtube"}})
	if errStart != nil {
		t.Fatalf("start: %v", errStart)
	}

	// The run is parked in the background step, so Get reads the
	// in-memory mirror.
	snap, errGet := r.Get(context.Background(), state.ID)
	if errGet != nil {
		t.Fatalf("get: %v", errGet)
	}
	snap.Steps[0].Status = "tampered"
	snap.Platforms[0] = "tampered"

	again, errGet := r.Get(context.Background(), state.ID)
	if errGet != nil {
		t.Fatalf("get: %v", errGet)
	}
	if again.Steps[0].Status == "tampered" {
		t.Fatal("mutating a snapshot leaked into the runner's state")
	}
	if again.Platforms[0] == "tampered" {
		t.Fatal("mutating snapshot platforms leaked into the runner's state")
	}

	close(gen.release)
	waitTerminal(t, r, state.ID)
}

func TestRunner_StepFailureFailsRun(t *testing.T) {
	r := NewRunner(testDB(t), &fakeGenerator{failStep: "music"})

	state, errStart := r.Start(context.Background(), Request{Quote: "q"})
	if errStart != nil {
		t.Fatalf("start: %v", errStart)
	}

	final := waitTerminal(t, r, state.ID)
	if final.Status != StatusFailed {
		t.Fatalf("expected failed, got %+v", final)
	}
	if final.Error == "" {
		t.Fatal("expected failure detail")
	}
	musicStep := final.Steps[2]
	if musicStep.Status != StepFailed || musicStep.Error == "" {
		t.Fatalf("expected failed music step, got %+v", musicStep)
	}
	videoStep := final.Steps[3]
	if videoStep.Status != StepPending {
		t.Fatalf("later steps must stay pending, got %+v", videoStep)
	}
}

func TestRunner_RequiresQuote(t *testing.T) {
	r := NewRunner(testDB(t), &fakeGenerator{})
	if _, errStart := r.Start(context.Background(), Request{Quote: "   "}); errStart == nil {
		t.Fatal("expected error for missing quote")
	}
}

func TestRunner_GetUnknownID(t *testing.T) {
	r := NewRunner(testDB(t), &fakeGenerator{})
	if _, errGet := r.Get(context.Background(), "no-such-id"); errGet == nil {
		t.Fatal("expected error for unknown workflow id")
	}
}

func TestRunner_PersistedStateSurvivesMemoryEviction(t *testing.T) {
	conn := testDB(t)
	r := NewRunner(conn, &fakeGenerator{})

	state, errStart := r.Start(context.Background(), Request{Quote: "q", Platforms: []string{"youtube"}})
	if errStart != nil {
		t.Fatalf("start: %v", errStart)
	}
	final := waitTerminal(t, r, state.ID)

	// A fresh runner has no memory mirror; the read must come from the DB.
	fresh := NewRunner(conn, &fakeGenerator{})
	loaded, errGet := fresh.Get(context.Background(), final.ID)
	if errGet != nil {
		t.Fatalf("get from db: %v", errGet)
	}
	if loaded.Status != StatusCompleted || len(loaded.Steps) != 5 {
		t.Fatalf("unexpected persisted state %+v", loaded)
	}
	if len(loaded.Platforms) != 1 || loaded.Platforms[0] != "youtube" {
		t.Fatalf("unexpected platforms %v", loaded.Platforms)
	}
}
