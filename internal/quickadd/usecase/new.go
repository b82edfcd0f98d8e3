package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"smart-quick-add/internal/category"
	"smart-quick-add/internal/datetime"
	"smart-quick-add/internal/detector"
	"smart-quick-add/pkg/log"
)

const (
	DefaultEventDuration = time.Hour
	DefaultSessionSize   = 1000
	DefaultSessionTTL    = 30 * time.Minute
)

// Config tunes the use case. Zero values fall back to the defaults above.
type Config struct {
	EventDuration time.Duration
	SessionSize   int
	SessionTTL    time.Duration
}

// implUseCase is the private implementation of quickadd.UseCase.
type implUseCase struct {
	detector   *detector.Detector
	extractor  *datetime.Extractor
	categories category.Source
	sessions   *expirable.LRU[string, *session]
	cfg        Config
	now        func() time.Time
	l          log.Logger
}

// New creates a new quickadd UseCase implementation.
func New(
	det *detector.Detector,
	ext *datetime.Extractor,
	categories category.Source,
	cfg Config,
	l log.Logger,
) *implUseCase {
	if cfg.EventDuration <= 0 {
		cfg.EventDuration = DefaultEventDuration
	}
	if cfg.SessionSize <= 0 {
		cfg.SessionSize = DefaultSessionSize
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = DefaultSessionTTL
	}

	return &implUseCase{
		detector:   det,
		extractor:  ext,
		categories: categories,
		sessions:   expirable.NewLRU[string, *session](cfg.SessionSize, nil, cfg.SessionTTL),
		cfg:        cfg,
		now:        time.Now,
		l:          l,
	}
}
