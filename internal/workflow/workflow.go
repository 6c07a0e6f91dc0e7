// Package workflow runs the multi-step video production pipeline and
// tracks its real progress, persisting every transition.
package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/quoteforge/quoteforge/internal/generate"
	"github.com/quoteforge/quoteforge/internal/models"
)

// Workflow statuses.
const (
	StatusQueued    = "queued"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Step statuses.
const (
	StepPending    = "pending"
	StepProcessing = "processing"
	StepCompleted  = "completed"
	StepFailed     = "failed"
)

// Step is one unit of the pipeline with its live status.
type Step struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// BackgroundConfig selects the background generation step inputs. The
// API key is used in flight and never persisted.
type BackgroundConfig struct {
	Provider string `json:"provider"`
	Style    string `json:"style"`
	APIKey   string `json:"apiKey"`
}

// MusicConfig selects the music generation step inputs.
type MusicConfig struct {
	Provider string `json:"provider"`
	Genre    string `json:"genre"`
	Mood     string `json:"mood"`
	Duration int    `json:"duration"`
	APIKey   string `json:"apiKey"`
}

// VideoConfig selects the video generation step inputs.
type VideoConfig struct {
	Provider string `json:"provider"`
	Style    string `json:"style"`
	Quality  string `json:"quality"`
	Duration int    `json:"duration"`
	APIKey   string `json:"apiKey"`
}

// Request starts one pipeline run.
type Request struct {
	Quote      string           `json:"quote"`
	Background BackgroundConfig `json:"backgroundConfig"`
	Music      MusicConfig      `json:"musicConfig"`
	Video      VideoConfig      `json:"videoConfig"`
	Platforms  []string         `json:"platforms"`
}

// State is the externally visible snapshot of one run.
type State struct {
	ID          string     `json:"workflowId"`
	Status      string     `json:"status"`
	CurrentStep int        `json:"currentStep"`
	TotalSteps  int        `json:"totalSteps"`
	Steps       []Step     `json:"steps"`
	Platforms   []string   `json:"platforms,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// clone deep-copies a snapshot. Steps and Platforms are slices, so a
// plain struct copy would share their backing arrays with the runner's
// mutable state and race with in-place step transitions.
func (s State) clone() State {
	out := s
	out.Steps = append([]Step(nil), s.Steps...)
	out.Platforms = append([]string(nil), s.Platforms...)
	if s.CompletedAt != nil {
		done := *s.CompletedAt
		out.CompletedAt = &done
	}
	return out
}

// Generator is the pipeline's generation dependency.
type Generator interface {
	Background(ctx context.Context, apiKey string, params generate.BackgroundParams) (generate.BackgroundResult, error)
	Music(ctx context.Context, apiKey string, params generate.MusicParams) (generate.MusicResult, error)
	Video(ctx context.Context, apiKey string, params generate.VideoParams) (generate.VideoResult, error)
}

// Runner starts workflows and serves status reads. Active runs are
// mirrored in memory; finished ones are read back from the database.
type Runner struct {
	db  *gorm.DB
	gen Generator

	mu     sync.RWMutex
	active map[string]State
}

// NewRunner builds a runner on the given database and generator.
func NewRunner(db *gorm.DB, gen Generator) *Runner {
	return &Runner{db: db, gen: gen, active: make(map[string]State)}
}

func initialSteps() []Step {
	return []Step{
		{ID: "quote", Name: "Quote Processing", Status: StepCompleted},
		{ID: "background", Name: "Background Generation", Status: StepPending},
		{ID: "music", Name: "Music Composition", Status: StepPending},
		{ID: "video", Name: "Video Production", Status: StepPending},
		{ID: "social", Name: "Social Media Setup", Status: StepPending},
	}
}

// Start validates the request, persists the queued run, and launches
// the pipeline in the background. The returned state is the queued
// snapshot; progress is read through Get.
func (r *Runner) Start(ctx context.Context, req Request) (State, error) {
	if strings.TrimSpace(req.Quote) == "" {
		return State{}, fmt.Errorf("workflow: quote is required")
	}

	state := State{
		ID:          uuid.NewString(),
		Status:      StatusQueued,
		CurrentStep: 1,
		Steps:       initialSteps(),
		Platforms:   req.Platforms,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	state.TotalSteps = len(state.Steps)

	if errCreate := r.db.WithContext(ctx).Create(recordFromState(state, req.Quote)).Error; errCreate != nil {
		return State{}, fmt.Errorf("workflow: persist: %w", errCreate)
	}

	r.mu.Lock()
	r.active[state.ID] = state.clone()
	r.mu.Unlock()

	go r.run(state.ID, req)
	return state, nil
}

// Get returns the current state of a run, preferring the in-memory
// mirror and falling back to the database for finished runs.
func (r *Runner) Get(ctx context.Context, id string) (State, error) {
	r.mu.RLock()
	state, ok := r.active[id]
	if ok {
		// Copied under the lock; transitions mutate steps in place.
		state = state.clone()
	}
	r.mu.RUnlock()
	if ok {
		return state, nil
	}

	var record models.Workflow
	if errFind := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; errFind != nil {
		return State{}, errFind
	}
	return stateFromRecord(record)
}

// run executes the pipeline steps sequentially, persisting after every
// transition. A step failure fails the whole run.
func (r *Runner) run(id string, req Request) {
	ctx := context.Background()
	r.transition(ctx, id, func(s *State) { s.Status = StatusRunning })

	var backgroundURL, musicURL string

	errStep := r.step(ctx, id, "background", func(stepCtx context.Context) (string, error) {
		result, errGen := r.gen.Background(stepCtx, req.Background.APIKey, generate.BackgroundParams{
			Provider: req.Background.Provider,
			Style:    req.Background.Style,
			Quote:    req.Quote,
		})
		backgroundURL = result.ImageURL
		return result.ImageURL, errGen
	})
	if errStep == nil {
		errStep = r.step(ctx, id, "music", func(stepCtx context.Context) (string, error) {
			result, errGen := r.gen.Music(stepCtx, req.Music.APIKey, generate.MusicParams{
				Provider: req.Music.Provider,
				Genre:    req.Music.Genre,
				Mood:     req.Music.Mood,
				Duration: req.Music.Duration,
				Quote:    req.Quote,
			})
			musicURL = result.MusicURL
			return result.MusicURL, errGen
		})
	}
	if errStep == nil {
		errStep = r.step(ctx, id, "video", func(stepCtx context.Context) (string, error) {
			result, errGen := r.gen.Video(stepCtx, req.Video.APIKey, generate.VideoParams{
				Provider:      req.Video.Provider,
				Style:         req.Video.Style,
				Quote:         req.Quote,
				BackgroundURL: backgroundURL,
				MusicURL:      musicURL,
				Quality:       req.Video.Quality,
				Duration:      req.Video.Duration,
			})
			return result.VideoURL, errGen
		})
	}
	if errStep == nil {
		errStep = r.step(ctx, id, "social", func(context.Context) (string, error) {
			// Captions and per-platform sizing are assembled locally.
			return "prepared for " + strings.Join(req.Platforms, ", "), nil
		})
	}

	now := time.Now()
	if errStep != nil {
		log.WithError(errStep).Warnf("workflow %s failed", id)
		r.transition(ctx, id, func(s *State) {
			s.Status = StatusFailed
			s.Error = errStep.Error()
			s.CompletedAt = &now
		})
	} else {
		r.transition(ctx, id, func(s *State) {
			s.Status = StatusCompleted
			s.CompletedAt = &now
		})
	}

	// The terminal snapshot is already persisted; Get serves it from
	// the database from here on.
	r.mu.Lock()
	delete(r.active, id)
	r.mu.Unlock()
}

// step runs one pipeline unit, moving it processing -> completed or
// processing -> failed, persisting both transitions.
func (r *Runner) step(ctx context.Context, id, stepID string, fn func(context.Context) (string, error)) error {
	r.transition(ctx, id, func(s *State) {
		idx := stepIndex(s.Steps, stepID)
		s.Steps[idx].Status = StepProcessing
		s.CurrentStep = idx + 1
	})

	output, errRun := fn(ctx)

	r.transition(ctx, id, func(s *State) {
		idx := stepIndex(s.Steps, stepID)
		if errRun != nil {
			s.Steps[idx].Status = StepFailed
			s.Steps[idx].Error = errRun.Error()
			return
		}
		s.Steps[idx].Status = StepCompleted
		s.Steps[idx].Output = output
	})
	return errRun
}

func stepIndex(steps []Step, id string) int {
	for i := range steps {
		if steps[i].ID == id {
			return i
		}
	}
	return 0
}

// transition applies fn to the in-memory state and writes the result
// through to the database.
func (r *Runner) transition(ctx context.Context, id string, fn func(*State)) {
	r.mu.Lock()
	state, ok := r.active[id]
	if !ok {
		r.mu.Unlock()
		return
	}
	fn(&state)
	state.UpdatedAt = time.Now()
	r.active[id] = state
	r.mu.Unlock()

	record := recordFromState(state, "")
	errSave := r.db.WithContext(ctx).Model(&models.Workflow{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       record.Status,
		"current_step": record.CurrentStep,
		"error":        record.Error,
		"steps":        record.Steps,
		"updated_at":   state.UpdatedAt,
		"completed_at": state.CompletedAt,
	}).Error
	if errSave != nil {
		log.WithError(errSave).Warnf("failed to persist workflow %s transition", id)
	}
}

func recordFromState(state State, quote string) *models.Workflow {
	stepsJSON, _ := json.Marshal(state.Steps)
	platformsJSON, _ := json.Marshal(state.Platforms)
	return &models.Workflow{
		ID:          state.ID,
		Status:      state.Status,
		CurrentStep: state.CurrentStep,
		Quote:       quote,
		Error:       state.Error,
		Steps:       stepsJSON,
		Platforms:   platformsJSON,
		CreatedAt:   state.CreatedAt,
		UpdatedAt:   state.UpdatedAt,
		CompletedAt: state.CompletedAt,
	}
}

func stateFromRecord(record models.Workflow) (State, error) {
	state := State{
		ID:          record.ID,
		Status:      record.Status,
		CurrentStep: record.CurrentStep,
		Error:       record.Error,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
		CompletedAt: record.CompletedAt,
	}
	if len(record.Steps) > 0 {
		if errDecode := json.Unmarshal(record.Steps, &state.Steps); errDecode != nil {
			return State{}, fmt.Errorf("workflow: decode steps: %w", errDecode)
		}
	}
	if len(record.Platforms) > 0 {
		if errDecode := json.Unmarshal(record.Platforms, &state.Platforms); errDecode != nil {
			return State{}, fmt.Errorf("workflow: decode platforms: %w", errDecode)
		}
	}
	state.TotalSteps = len(state.Steps)
	return state, nil
}
