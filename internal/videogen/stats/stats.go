package stats

import (
	"github.com/videoforge/ai-video-generator/internal/models"
)

// Compute derives the aggregate metrics from the full video collection.
// It is a pure function: the store calls it after every video write instead
// of maintaining the aggregate incrementally. trigger is the record whose
// write caused the recomputation; its creation time becomes LastGenerated.
func Compute(videos []*models.Video, trigger *models.Video) *models.Stats {
	s := &models.Stats{
		TotalGenerated:      len(videos),
		TotalProcessingTime: totalProcessingTime(videos),
		StorageUsed:         storageUsed(videos),
	}
	if len(videos) > 0 {
		completed := 0
		for _, v := range videos {
			if v.Status == models.StatusCompleted {
				completed++
			}
		}
		s.SuccessRate = float64(completed) / float64(len(videos)) * 100
	}
	if trigger != nil {
		created := trigger.CreatedAt
		s.LastGenerated = &created
	}
	return s
}

func totalProcessingTime(videos []*models.Video) float64 {
	var total float64
	for _, v := range videos {
		if v.CompletedAt == nil || v.CreatedAt.IsZero() {
			continue
		}
		elapsed := v.CompletedAt.Sub(v.CreatedAt).Seconds()
		if elapsed > 0 {
			total += elapsed
		}
	}
	return total
}

func storageUsed(videos []*models.Video) int64 {
	var total int64
	for _, v := range videos {
		total += v.FileSize
	}
	return total
}
