package brand

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	goredis "github.com/redis/go-redis/v9"

	"github.com/NurisJAkbar/omni-vibe/modules/common/config"
	"github.com/NurisJAkbar/omni-vibe/modules/common/database"
	"github.com/NurisJAkbar/omni-vibe/modules/common/media"
	"github.com/NurisJAkbar/omni-vibe/modules/common/model"
	"github.com/NurisJAkbar/omni-vibe/modules/common/progress"
	redisutil "github.com/NurisJAkbar/omni-vibe/modules/common/redis"
	"github.com/NurisJAkbar/omni-vibe/modules/common/storage"
)

// WorkerDeps - shared clients handed down by the queue worker
type WorkerDeps struct {
	DB    *database.Client
	Store *storage.Client
	Redis *goredis.Client
	Hub   *progress.Hub
}

// ProcessJob - run an async brand analysis job
func ProcessJob(ctx context.Context, job *model.BrandJob, deps WorkerDeps) {
	log.Printf("🚀 [Brand] Processing analyze job: %s", job.JobID)

	cfg := config.GetConfig()
	service := NewService()

	deps.DB.UpdateJobStatus(ctx, job.JobID, model.StatusProcessing)
	deps.Hub.Publish(progress.Event{Type: "job_started", JobID: job.JobID, Stage: "analyze"})

	fail := func(message string, err error) {
		log.Printf("❌ [Brand] Job %s failed: %v", job.JobID, err)
		deps.DB.SetJobError(ctx, job.JobID, message+": "+err.Error())
		deps.DB.UpdateJobStatus(ctx, job.JobID, model.StatusFailed)
		deps.Hub.Publish(progress.Event{Type: "job_failed", JobID: job.JobID, Message: message})
	}

	if job.MediaPath == nil || *job.MediaPath == "" {
		fail("no media attached to job", fmt.Errorf("media_path is empty"))
		return
	}

	data, mimeType, err := deps.Store.DownloadMedia(ctx, *job.MediaPath)
	if err != nil {
		fail("failed to download source media", err)
		return
	}

	src, err := media.Normalize(data, mimeType, cfg.MaxMediaBytes, cfg.MaxImageEdge)
	if err != nil {
		fail("failed to normalize source media", err)
		return
	}

	if redisutil.IsJobCancelled(deps.Redis, job.JobID) {
		log.Printf("🛑 [Brand] Job %s cancelled before analysis", job.JobID)
		deps.DB.UpdateJobStatus(ctx, job.JobID, model.StatusUserCancelled)
		deps.Hub.Publish(progress.Event{Type: "job_cancelled", JobID: job.JobID})
		return
	}

	deps.Hub.Publish(progress.Event{Type: "stage_update", JobID: job.JobID, Stage: "analyze", Message: "calling model waterfall"})

	var actionTrigger string
	if job.ActionTrigger != nil {
		actionTrigger = *job.ActionTrigger
	}

	identity, modelUsed, err := service.Analyze(ctx, src, job.TargetVibe, actionTrigger)
	if err != nil {
		fail("brand analysis failed", err)
		return
	}

	identityJSON, err := json.Marshal(identity)
	if err != nil {
		fail("failed to encode identity", err)
		return
	}

	if err := deps.DB.SaveIdentity(ctx, job.JobID, identityJSON); err != nil {
		fail("failed to persist identity", err)
		return
	}

	deps.DB.UpdateJobStatus(ctx, job.JobID, model.StatusCompleted)
	deps.Hub.Publish(progress.Event{
		Type:    "job_completed",
		JobID:   job.JobID,
		Stage:   "analyze",
		Message: "identity derived by " + modelUsed,
	})

	log.Printf("✅ [Brand] Job %s completed (model: %s)", job.JobID, modelUsed)
}
