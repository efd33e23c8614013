package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/videoforge/ai-video-generator/internal/models"
	"github.com/videoforge/ai-video-generator/internal/videogen"
	"github.com/videoforge/ai-video-generator/internal/videogen/stats"
	"github.com/videoforge/ai-video-generator/pkg/logger"
)

const (
	videosKey   = "videos"
	settingsKey = "settings"
	statsKey    = "stats"
)

// videoRedisRepo keeps the three collections as JSON blobs under a single
// key prefix. Read-modify-write sequences are serialized with a process
// local mutex: the store assumes a single writing process.
type videoRedisRepo struct {
	redisClient *redis.Client
	keyPrefix   string
	logger      logger.Logger
	mu          sync.Mutex
}

func NewVideoRedisRepo(redisClient *redis.Client, keyPrefix string, log logger.Logger) videogen.Repository {
	return &videoRedisRepo{
		redisClient: redisClient,
		keyPrefix:   keyPrefix,
		logger:      log,
	}
}

func (r *videoRedisRepo) key(name string) string {
	return r.keyPrefix + ":" + name
}

// GetVideos returns the collection newest-first. A missing or unreadable
// blob yields an empty slice, never an error.
func (r *videoRedisRepo) GetVideos(ctx context.Context) ([]*models.Video, error) {
	raw, err := r.redisClient.Get(ctx, r.key(videosKey)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Errorf("videoRedisRepo.GetVideos - redis get: %v", err)
		}
		return []*models.Video{}, nil
	}
	var videos []*models.Video
	if err = json.Unmarshal([]byte(raw), &videos); err != nil {
		r.logger.Errorf("videoRedisRepo.GetVideos - unmarshal: %v", err)
		return []*models.Video{}, nil
	}
	return videos, nil
}

// SaveVideo replaces an existing record in place by id, otherwise prepends.
// Every save recomputes the stats aggregate from the full collection.
func (r *videoRedisRepo) SaveVideo(ctx context.Context, video *models.Video) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	videos, _ := r.GetVideos(ctx)
	replaced := false
	for i, v := range videos {
		if v.ID == video.ID {
			videos[i] = video
			replaced = true
			break
		}
	}
	if !replaced {
		videos = append([]*models.Video{video}, videos...)
	}

	if err := r.writeJSON(ctx, videosKey, videos); err != nil {
		return errors.Wrap(err, "videoRedisRepo.SaveVideo")
	}
	if err := r.writeJSON(ctx, statsKey, stats.Compute(videos, video)); err != nil {
		r.logger.Errorf("videoRedisRepo.SaveVideo - stats write: %v", err)
	}
	return nil
}

// DeleteVideo removes the matching record. An absent id is a no-op.
func (r *videoRedisRepo) DeleteVideo(ctx context.Context, videoID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	videos, _ := r.GetVideos(ctx)
	filtered := videos[:0]
	for _, v := range videos {
		if v.ID != videoID {
			filtered = append(filtered, v)
		}
	}
	if len(filtered) == len(videos) {
		return nil
	}
	if err := r.writeJSON(ctx, videosKey, filtered); err != nil {
		return errors.Wrap(err, "videoRedisRepo.DeleteVideo")
	}
	return nil
}

func (r *videoRedisRepo) GetVideo(ctx context.Context, videoID string) (*models.Video, error) {
	videos, _ := r.GetVideos(ctx)
	for _, v := range videos {
		if v.ID == videoID {
			return v, nil
		}
	}
	return nil, videogen.ErrVideoNotFound
}

// GetSettings shallow-merges the stored override over the hardcoded
// defaults, so a partial blob still yields a fully populated value.
func (r *videoRedisRepo) GetSettings(ctx context.Context) (*models.Settings, error) {
	settings := models.DefaultSettings()
	raw, err := r.redisClient.Get(ctx, r.key(settingsKey)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Errorf("videoRedisRepo.GetSettings - redis get: %v", err)
		}
		return settings, nil
	}
	var patch models.SettingsPatch
	if err = json.Unmarshal([]byte(raw), &patch); err != nil {
		r.logger.Errorf("videoRedisRepo.GetSettings - unmarshal: %v", err)
		return settings, nil
	}
	settings.Apply(&patch)
	return settings, nil
}

func (r *videoRedisRepo) SaveSettings(ctx context.Context, patch *models.SettingsPatch) (*models.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings, _ := r.GetSettings(ctx)
	settings.Apply(patch)
	if err := r.writeJSON(ctx, settingsKey, settings); err != nil {
		return nil, errors.Wrap(err, "videoRedisRepo.SaveSettings")
	}
	return settings, nil
}

func (r *videoRedisRepo) GetStats(ctx context.Context) (*models.Stats, error) {
	raw, err := r.redisClient.Get(ctx, r.key(statsKey)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Errorf("videoRedisRepo.GetStats - redis get: %v", err)
		}
		return &models.Stats{}, nil
	}
	var s models.Stats
	if err = json.Unmarshal([]byte(raw), &s); err != nil {
		r.logger.Errorf("videoRedisRepo.GetStats - unmarshal: %v", err)
		return &models.Stats{}, nil
	}
	return &s, nil
}

// ExportData dumps all three collections in one envelope stamped with the
// export time.
func (r *videoRedisRepo) ExportData(ctx context.Context) (*models.ExportEnvelope, error) {
	videos, _ := r.GetVideos(ctx)
	settings, _ := r.GetSettings(ctx)
	statsData, _ := r.GetStats(ctx)
	return &models.ExportEnvelope{
		Videos:     videos,
		Settings:   settings,
		Stats:      statsData,
		ExportedAt: time.Now(),
	}, nil
}

// ImportData restores whichever collections are present in the input and
// leaves missing keys untouched.
func (r *videoRedisRepo) ImportData(ctx context.Context, data []byte) error {
	var envelope struct {
		Videos   json.RawMessage `json:"videos"`
		Settings json.RawMessage `json:"settings"`
		Stats    json.RawMessage `json:"stats"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return errors.Wrap(err, "videoRedisRepo.ImportData - unmarshal")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	pipe := r.redisClient.Pipeline()
	if len(envelope.Videos) > 0 {
		var videos []*models.Video
		if err := json.Unmarshal(envelope.Videos, &videos); err != nil {
			return errors.Wrap(err, "videoRedisRepo.ImportData - videos")
		}
		pipe.Set(ctx, r.key(videosKey), string(envelope.Videos), 0)
	}
	if len(envelope.Settings) > 0 {
		var settings models.Settings
		if err := json.Unmarshal(envelope.Settings, &settings); err != nil {
			return errors.Wrap(err, "videoRedisRepo.ImportData - settings")
		}
		pipe.Set(ctx, r.key(settingsKey), string(envelope.Settings), 0)
	}
	if len(envelope.Stats) > 0 {
		var s models.Stats
		if err := json.Unmarshal(envelope.Stats, &s); err != nil {
			return errors.Wrap(err, "videoRedisRepo.ImportData - stats")
		}
		pipe.Set(ctx, r.key(statsKey), string(envelope.Stats), 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "videoRedisRepo.ImportData - exec")
	}
	return nil
}

// ClearAllData removes all three collections unconditionally.
func (r *videoRedisRepo) ClearAllData(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.redisClient.Del(ctx, r.key(videosKey), r.key(settingsKey), r.key(statsKey)).Err(); err != nil {
		return errors.Wrap(err, "videoRedisRepo.ClearAllData")
	}
	return nil
}

func (r *videoRedisRepo) writeJSON(ctx context.Context, name string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		r.logger.Errorf("videoRedisRepo.writeJSON - marshal %s: %v", name, err)
		return nil
	}
	return r.redisClient.Set(ctx, r.key(name), raw, 0).Err()
}
