// Package usage records per-call generation metadata. Only token
// counts and timings are stored, never prompts or keys.
package usage

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/quoteforge/quoteforge/internal/models"
)

// Recorder persists usage rows.
type Recorder struct {
	db *gorm.DB
}

// NewRecorder constructs a Recorder backed by GORM.
func NewRecorder(db *gorm.DB) *Recorder { return &Recorder{db: db} }

// Call is one provider invocation's measurable outcome.
type Call struct {
	Capability   string        // quote, background, music, video, probe.
	Provider     string        // Provider identifier.
	Model        string        // Upstream model name.
	InputTokens  int           // Prompt tokens reported by the provider.
	OutputTokens int           // Completion tokens reported by the provider.
	Duration     time.Duration // Wall time of the call.
	Success      bool          // Whether the call succeeded.
}

// Record writes one usage row. Recording failures are logged and
// swallowed; usage accounting never fails a user request. The write
// uses its own deadline so a cancelled request still gets counted.
func (r *Recorder) Record(_ context.Context, call Call) {
	if r == nil || r.db == nil {
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row := models.UsageRecord{
		Capability:   call.Capability,
		Provider:     call.Provider,
		Model:        call.Model,
		InputTokens:  call.InputTokens,
		OutputTokens: call.OutputTokens,
		DurationMS:   call.Duration.Milliseconds(),
		Success:      call.Success,
		CreatedAt:    time.Now().UTC(),
	}
	if errCreate := r.db.WithContext(dbCtx).Create(&row).Error; errCreate != nil {
		log.WithError(errCreate).Warn("failed to record usage")
	}
}

// Summary aggregates usage per capability.
type Summary struct {
	Capability   string `json:"capability"`
	Calls        int64  `json:"calls"`
	Failures     int64  `json:"failures"`
	InputTokens  int64  `json:"inputTokens"`
	OutputTokens int64  `json:"outputTokens"`
}

// Summarize returns per-capability totals since the given time.
func (r *Recorder) Summarize(ctx context.Context, since time.Time) ([]Summary, error) {
	var out []Summary
	errQuery := r.db.WithContext(ctx).
		Model(&models.UsageRecord{}).
		Select(`capability,
			COUNT(*) AS calls,
			SUM(CASE WHEN success THEN 0 ELSE 1 END) AS failures,
			SUM(input_tokens) AS input_tokens,
			SUM(output_tokens) AS output_tokens`).
		Where("created_at >= ?", since).
		Group("capability").
		Order("capability ASC").
		Scan(&out).Error
	if errQuery != nil {
		return nil, errQuery
	}
	return out, nil
}
