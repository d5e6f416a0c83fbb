package assets

import (
	"context"
	"encoding/json"
	"log"

	"github.com/NurisJAkbar/omni-vibe/modules/brand"
	"github.com/NurisJAkbar/omni-vibe/modules/common/config"
	"github.com/NurisJAkbar/omni-vibe/modules/common/media"
	"github.com/NurisJAkbar/omni-vibe/modules/common/model"
	"github.com/NurisJAkbar/omni-vibe/modules/common/progress"
	redisutil "github.com/NurisJAkbar/omni-vibe/modules/common/redis"
)

// ProcessJob - run an async asset batch job. Each asset failure is isolated;
// the batch completes with whatever succeeded. Cancellation is honored
// between assets and keeps already generated assets.
func ProcessJob(ctx context.Context, job *model.BrandJob, deps brand.WorkerDeps) {
	log.Printf("🚀 [Assets] Processing asset batch job: %s", job.JobID)

	cfg := config.GetConfig()
	service := NewService()

	deps.DB.UpdateJobStatus(ctx, job.JobID, model.StatusProcessing)

	if len(job.Identity) == 0 {
		message := "job has no identity: run analysis first"
		log.Printf("❌ [Assets] %s (job: %s)", message, job.JobID)
		deps.DB.SetJobError(ctx, job.JobID, message)
		deps.DB.UpdateJobStatus(ctx, job.JobID, model.StatusFailed)
		deps.Hub.Publish(progress.Event{Type: "job_failed", JobID: job.JobID, Message: message})
		return
	}

	var identity brand.BrandIdentity
	if err := json.Unmarshal(job.Identity, &identity); err != nil {
		message := "stored identity is not valid JSON"
		log.Printf("❌ [Assets] %s (job: %s): %v", message, job.JobID, err)
		deps.DB.SetJobError(ctx, job.JobID, message)
		deps.DB.UpdateJobStatus(ctx, job.JobID, model.StatusFailed)
		deps.Hub.Publish(progress.Event{Type: "job_failed", JobID: job.JobID, Message: message})
		return
	}
	identity.Normalize()

	assetTypes := job.AssetTypes
	if len(assetTypes) == 0 {
		assetTypes = make([]string, 0, len(DefaultAssetTypes))
		for _, t := range DefaultAssetTypes {
			assetTypes = append(assetTypes, string(t))
		}
	}

	// optional reference media for product mockups
	var ref *media.NormalizedMedia
	if job.MediaPath != nil && *job.MediaPath != "" {
		data, mimeType, err := deps.Store.DownloadMedia(ctx, *job.MediaPath)
		if err != nil {
			log.Printf("⚠️ [Assets] Reference media unavailable, continuing without it: %v", err)
		} else if normalized, err := media.Normalize(data, mimeType, cfg.MaxMediaBytes, cfg.MaxImageEdge); err != nil {
			log.Printf("⚠️ [Assets] Reference media rejected, continuing without it: %v", err)
		} else {
			ref = normalized
		}
	}

	total := len(assetTypes)
	deps.Hub.Publish(progress.Event{Type: "job_started", JobID: job.JobID, Stage: "assets", Total: total})

	completed := 0
	failed := 0
	assetIDs := []string{}

	for i, rawType := range assetTypes {
		if redisutil.IsJobCancelled(deps.Redis, job.JobID) {
			log.Printf("🛑 [Assets] Job %s cancelled, stopping after %d/%d assets", job.JobID, completed, total)
			deps.DB.UpdateJobProgress(ctx, job.JobID, completed, failed, assetIDs)
			deps.DB.UpdateJobStatus(ctx, job.JobID, model.StatusUserCancelled)
			deps.Hub.Publish(progress.Event{Type: "job_cancelled", JobID: job.JobID, Completed: completed, Total: total})
			return
		}

		if !IsValidAssetType(rawType) {
			log.Printf("⚠️ [Assets] Skipping unknown asset type: %s", rawType)
			failed++
			continue
		}
		assetType := AssetType(rawType)

		deps.Hub.Publish(progress.Event{
			Type:      "stage_update",
			JobID:     job.JobID,
			Stage:     "assets",
			AssetType: rawType,
			Completed: completed,
			Total:     total,
		})

		asset, modelUsed, err := service.Generate(ctx, &identity, assetType, ref)
		if err != nil {
			log.Printf("❌ [Assets] Asset %d/%d (%s) failed: %v", i+1, total, rawType, err)
			failed++
			deps.Hub.Publish(progress.Event{Type: "asset_failed", JobID: job.JobID, AssetType: rawType, Message: err.Error()})
			continue
		}

		// persist: WebP to storage, row in omni_assets
		_, pngData, err := media.ParseDataURL(asset.DataURL)
		if err != nil {
			log.Printf("❌ [Assets] Generated asset has malformed data URL: %v", err)
			failed++
			continue
		}

		filePath, fileSize, err := deps.Store.UploadAsset(ctx, pngData, rawType)
		if err != nil {
			log.Printf("⚠️ [Assets] Upload failed for %s, keeping asset in job payload only: %v", asset.ID, err)
		} else if err := deps.DB.InsertAssetRecord(ctx, asset.ID, job.JobID, rawType, filePath, fileSize, modelUsed); err != nil {
			log.Printf("⚠️ [Assets] Failed to record asset %s: %v", asset.ID, err)
		}

		completed++
		assetIDs = append(assetIDs, asset.ID)

		deps.DB.UpdateJobProgress(ctx, job.JobID, completed, failed, assetIDs)
		deps.Hub.Publish(progress.Event{
			Type:      "asset_completed",
			JobID:     job.JobID,
			AssetType: rawType,
			AssetID:   asset.ID,
			Completed: completed,
			Total:     total,
		})
	}

	finalStatus := model.StatusCompleted
	if completed == 0 {
		finalStatus = model.StatusFailed
		deps.DB.SetJobError(ctx, job.JobID, "no assets could be generated")
	}

	deps.DB.UpdateJobProgress(ctx, job.JobID, completed, failed, assetIDs)
	deps.DB.UpdateJobStatus(ctx, job.JobID, finalStatus)

	eventType := "job_completed"
	if finalStatus == model.StatusFailed {
		eventType = "job_failed"
	}
	deps.Hub.Publish(progress.Event{Type: eventType, JobID: job.JobID, Completed: completed, Total: total})

	log.Printf("✅ [Assets] Job %s finished: %d completed, %d failed", job.JobID, completed, failed)
}
