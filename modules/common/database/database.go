package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/supabase-community/supabase-go"

	"github.com/NurisJAkbar/omni-vibe/modules/common/config"
	"github.com/NurisJAkbar/omni-vibe/modules/common/model"
)

type Client struct {
	supabase *supabase.Client
}

// NewClient - database client over Supabase
func NewClient() *Client {
	cfg := config.GetConfig()

	supabaseClient, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, &supabase.ClientOptions{})
	if err != nil {
		log.Printf("❌ Failed to create Supabase client: %v", err)
		return nil
	}

	return &Client{
		supabase: supabaseClient,
	}
}

// FetchJob - load a job row
func (c *Client) FetchJob(jobID string) (*model.BrandJob, error) {
	log.Printf("🔍 Fetching job: %s", jobID)

	var jobs []model.BrandJob

	data, _, err := c.supabase.From("omni_jobs").
		Select("*", "exact", false).
		Eq("job_id", jobID).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to query omni_jobs: %w", err)
	}

	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse job response: %w", err)
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("job not found: %s", jobID)
	}

	job := &jobs[0]
	log.Printf("✅ Job fetched: %s (type: %s, status: %s, assets: %d)",
		job.JobID, job.JobType, job.JobStatus, job.TotalAssets)

	return job, nil
}

// UpdateJobStatus - move a job through its lifecycle
func (c *Client) UpdateJobStatus(ctx context.Context, jobID string, status string) error {
	log.Printf("📝 Updating job %s status to: %s", jobID, status)

	updateData := map[string]interface{}{
		"job_status": status,
		"updated_at": "now()",
	}

	if status == model.StatusProcessing {
		updateData["started_at"] = "now()"
	} else if status == model.StatusCompleted || status == model.StatusFailed {
		updateData["completed_at"] = "now()"
	}

	_, _, err := c.supabase.From("omni_jobs").
		Update(updateData, "", "").
		Eq("job_id", jobID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}

	log.Printf("✅ Job %s status updated to: %s", jobID, status)
	return nil
}

// SetJobError - record an error message on the job row
func (c *Client) SetJobError(ctx context.Context, jobID string, message string) error {
	updateData := map[string]interface{}{
		"error_message": message,
		"updated_at":    "now()",
	}

	_, _, err := c.supabase.From("omni_jobs").
		Update(updateData, "", "").
		Eq("job_id", jobID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to set job error: %w", err)
	}
	return nil
}

// SaveIdentity - persist the derived brand identity JSONB on the job
func (c *Client) SaveIdentity(ctx context.Context, jobID string, identity json.RawMessage) error {
	log.Printf("💾 Saving brand identity for job: %s (%d bytes)", jobID, len(identity))

	updateData := map[string]interface{}{
		"identity":   json.RawMessage(identity),
		"updated_at": "now()",
	}

	_, _, err := c.supabase.From("omni_jobs").
		Update(updateData, "", "").
		Eq("job_id", jobID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to save identity: %w", err)
	}

	log.Printf("✅ Brand identity saved for job: %s", jobID)
	return nil
}

// UpdateJobProgress - per-asset counters and generated asset ids
func (c *Client) UpdateJobProgress(ctx context.Context, jobID string, completed int, failed int, assetIDs []string) error {
	log.Printf("📊 Updating job progress: %d completed, %d failed", completed, failed)

	ids := make([]interface{}, 0, len(assetIDs))
	for _, id := range assetIDs {
		ids = append(ids, id)
	}

	updateData := map[string]interface{}{
		"completed_assets": completed,
		"failed_assets":    failed,
		"asset_ids":        ids,
		"updated_at":       "now()",
	}

	_, _, err := c.supabase.From("omni_jobs").
		Update(updateData, "", "").
		Eq("job_id", jobID).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update job progress: %w", err)
	}

	log.Printf("✅ Job progress updated: %d assets completed", completed)
	return nil
}

// InsertAssetRecord - omni_assets row for an uploaded asset
func (c *Client) InsertAssetRecord(ctx context.Context, assetID string, jobID string, assetType string, filePath string, fileSize int64, modelUsed string) error {
	log.Printf("💾 Creating asset record: %s (%s)", assetID, assetType)

	insertData := map[string]interface{}{
		"asset_id":   assetID,
		"asset_type": assetType,
		"file_path":  filePath,
		"file_size":  fileSize,
		"file_type":  "image/webp",
		"model_used": modelUsed,
	}
	if jobID != "" {
		insertData["job_id"] = jobID
	}

	_, _, err := c.supabase.From("omni_assets").
		Insert(insertData, false, "", "", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to insert asset record: %w", err)
	}

	log.Printf("✅ Asset record created: %s", assetID)
	return nil
}
