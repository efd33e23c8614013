package poller

import (
	"context"
	"sync"
	"time"

	"github.com/videoforge/ai-video-generator/internal/models"
	"github.com/videoforge/ai-video-generator/internal/videogen"
	"github.com/videoforge/ai-video-generator/pkg/logger"
)

const DefaultInterval = 3 * time.Second

// Poller repeatedly checks a generation's status until it observes a
// terminal state, then fires exactly one callback and stops. The ticker is
// released on every exit path: terminal status, checker failure or context
// cancellation.
type Poller struct {
	checker  videogen.StatusChecker
	interval time.Duration
	logger   logger.Logger

	mu       sync.RWMutex
	progress map[string]int
}

func New(checker videogen.StatusChecker, interval time.Duration, log logger.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		checker:  checker,
		interval: interval,
		logger:   log,
		progress: make(map[string]int),
	}
}

var _ videogen.Tracker = (*Poller)(nil)

// Track blocks until the generation reaches a terminal status or ctx is
// cancelled. The first check happens immediately, subsequent checks on the
// fixed interval. Checks run one at a time inside the loop; a slow check
// delays the next tick instead of overlapping it.
func (p *Poller) Track(ctx context.Context, videoID string, onCompleted func(*models.GenerationResponse), onError func(string)) {
	defer p.forget(videoID)

	if p.checkOnce(ctx, videoID, onCompleted, onError) {
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Infof("polling cancelled for video %s", videoID)
			return
		case <-ticker.C:
			if p.checkOnce(ctx, videoID, onCompleted, onError) {
				return
			}
		}
	}
}

// checkOnce performs a single status check. It reports true when polling
// must stop because a terminal state was observed.
func (p *Poller) checkOnce(ctx context.Context, videoID string, onCompleted func(*models.GenerationResponse), onError func(string)) bool {
	if ctx.Err() != nil {
		return true
	}

	status := p.checker.CheckVideoStatus(ctx, videoID)

	switch status.Status {
	case models.StatusCompleted:
		p.logger.Infof("video %s completed", videoID)
		onCompleted(status)
		return true
	case models.StatusFailed:
		msg := status.Error
		if msg == "" {
			msg = "Video generation failed"
		}
		p.logger.Warnf("video %s failed: %s", videoID, msg)
		onError(msg)
		return true
	default:
		p.setProgress(videoID, status.Progress)
		return false
	}
}

// Progress returns the last observed progress for a tracked video.
func (p *Poller) Progress(videoID string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.progress[videoID]
}

func (p *Poller) setProgress(videoID string, progress int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.progress[videoID] = progress
}

func (p *Poller) forget(videoID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.progress, videoID)
}
