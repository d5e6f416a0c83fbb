package model

import (
	"encoding/json"
	"time"
)

// BrandJob - omni_jobs table row
type BrandJob struct {
	JobID           string          `json:"job_id"`
	JobType         string          `json:"job_type"` // analyze | asset_batch
	JobStatus       string          `json:"job_status"`
	TargetVibe      string          `json:"target_vibe"`
	ActionTrigger   *string         `json:"action_trigger"`
	MediaPath       *string         `json:"media_path"` // storage path of the uploaded source media
	Identity        json.RawMessage `json:"identity"`   // BrandIdentity JSONB, set once analysis completes
	AssetTypes      []string        `json:"asset_types"`
	TotalAssets     int             `json:"total_assets"`
	CompletedAssets int             `json:"completed_assets"`
	FailedAssets    int             `json:"failed_assets"`
	AssetIDs        []interface{}   `json:"asset_ids"`
	ErrorMessage    *string         `json:"error_message"`
	RetryCount      int             `json:"retry_count"`
	CreatedAt       time.Time       `json:"created_at"`
	StartedAt       *time.Time      `json:"started_at"`
	CompletedAt     *time.Time      `json:"completed_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	MemberID        *string         `json:"member_id"`
}

// AssetRecord - omni_assets table row
type AssetRecord struct {
	AssetID   string    `json:"asset_id"`
	JobID     *string   `json:"job_id"`
	AssetType string    `json:"asset_type"`
	FilePath  *string   `json:"file_path"`
	FileSize  *int64    `json:"file_size"`
	FileType  *string   `json:"file_type"`
	ModelUsed *string   `json:"model_used"`
	CreatedAt time.Time `json:"created_at"`
}

// Job types
const (
	JobTypeAnalyze    = "analyze"
	JobTypeAssetBatch = "asset_batch"
)

const (
	StatusPending       = "pending"
	StatusProcessing    = "processing"
	StatusCompleted     = "completed"
	StatusFailed        = "failed"
	StatusUserCancelled = "user_cancelled"
)
