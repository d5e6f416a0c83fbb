package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T) *goredis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestEnqueueJobFIFO(t *testing.T) {
	rdb := testClient(t)
	ctx := context.Background()

	pos, err := EnqueueJob(ctx, rdb, "job-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), pos)

	pos, err = EnqueueJob(ctx, rdb, "job-2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), pos)

	// the worker pops from the right, so job-1 must come out first
	first, err := rdb.RPop(ctx, QueueKey).Result()
	require.NoError(t, err)
	assert.Equal(t, "job-1", first)

	second, err := rdb.RPop(ctx, QueueKey).Result()
	require.NoError(t, err)
	assert.Equal(t, "job-2", second)
}

func TestCancelFlagLifecycle(t *testing.T) {
	rdb := testClient(t)

	assert.False(t, IsJobCancelled(rdb, "job-9"))

	require.NoError(t, SetJobCancelled(rdb, "job-9"))
	assert.True(t, IsJobCancelled(rdb, "job-9"))

	// other jobs are unaffected
	assert.False(t, IsJobCancelled(rdb, "job-10"))

	ClearJobCancelled(rdb, "job-9")
	assert.False(t, IsJobCancelled(rdb, "job-9"))
}

func TestCancelFlagExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	require.NoError(t, SetJobCancelled(rdb, "job-ttl"))
	assert.True(t, IsJobCancelled(rdb, "job-ttl"))

	mr.FastForward(cancelFlagTTL * 2)
	assert.False(t, IsJobCancelled(rdb, "job-ttl"))
}
