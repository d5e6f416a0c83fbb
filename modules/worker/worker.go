package worker

import (
	"context"
	"log"
	"time"

	"github.com/NurisJAkbar/omni-vibe/modules/assets"
	"github.com/NurisJAkbar/omni-vibe/modules/brand"
	"github.com/NurisJAkbar/omni-vibe/modules/common/config"
	"github.com/NurisJAkbar/omni-vibe/modules/common/database"
	"github.com/NurisJAkbar/omni-vibe/modules/common/model"
	"github.com/NurisJAkbar/omni-vibe/modules/common/progress"
	redisClient "github.com/NurisJAkbar/omni-vibe/modules/common/redis"
	"github.com/NurisJAkbar/omni-vibe/modules/common/storage"
)

// StartWorker - Redis queue worker loop
func StartWorker(hub *progress.Hub) {
	log.Println("🔄 Redis Queue Worker starting...")

	cfg := config.GetConfig()

	rdb := redisClient.Connect(cfg)
	if rdb == nil {
		log.Fatal("❌ Failed to connect to Redis")
		return
	}
	log.Println("✅ Redis connected successfully")

	dbClient := database.NewClient()
	if dbClient == nil {
		log.Fatal("❌ Failed to initialize Database client")
		return
	}

	deps := brand.WorkerDeps{
		DB:    dbClient,
		Store: storage.NewClient(),
		Redis: rdb,
		Hub:   hub,
	}

	log.Printf("👀 Watching queue: %s", redisClient.QueueKey)

	ctx := context.Background()

	for {
		// BRPOP blocks until a job id arrives
		result, err := rdb.BRPop(ctx, 0, redisClient.QueueKey).Result()
		if err != nil {
			log.Printf("❌ Redis BRPOP error: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		// result[0] is the queue key, result[1] the job id
		jobID := result[1]
		log.Printf("🎯 Received new job: %s", jobID)

		go processJob(ctx, deps, jobID)
	}
}

// processJob - route a job to its module by job_type
func processJob(ctx context.Context, deps brand.WorkerDeps, jobID string) {
	log.Printf("🚀 Processing job: %s", jobID)

	job, err := deps.DB.FetchJob(jobID)
	if err != nil {
		log.Printf("❌ Failed to fetch job %s: %v", jobID, err)
		return
	}

	log.Printf("📦 Job Data:")
	log.Printf("   JobID: %s", job.JobID)
	log.Printf("   JobType: %s", job.JobType)
	log.Printf("   Status: %s", job.JobStatus)
	log.Printf("   TargetVibe: %s", job.TargetVibe)
	log.Printf("   AssetTypes: %v", job.AssetTypes)

	switch job.JobType {
	case model.JobTypeAnalyze:
		log.Printf("🧭 Routing to Brand module")
		brand.ProcessJob(ctx, job, deps)

	case model.JobTypeAssetBatch:
		log.Printf("🖼️  Routing to Assets module")
		assets.ProcessJob(ctx, job, deps)

	default:
		log.Printf("⚠️  Unknown job_type: %s, using Brand as default", job.JobType)
		brand.ProcessJob(ctx, job, deps)
	}

	log.Printf("✅ Job %s processing completed", jobID)
}
