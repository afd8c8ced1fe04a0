package scoringService

import (
	"YogaPoseAPI/internal/api/scoring"
	scoringRepository "YogaPoseAPI/internal/api/scoring/repository"
	"YogaPoseAPI/internal/config/settings"
	"YogaPoseAPI/internal/entity"
	"YogaPoseAPI/internal/poseconfig"
	"YogaPoseAPI/pkg/detector"
	"YogaPoseAPI/pkg/redis"
	"YogaPoseAPI/pkg/utils"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IScoringService interface {
	Score(ctx context.Context, poseName string, view string, keypoints entity.KeypointSet) (*entity.ScoreRecord, error)
	ScoreFrame(ctx context.Context, poseID string, frame []byte) (*entity.ScoreRecord, error)
	GetReport(ctx context.Context, reportID string) (*entity.ScoreRecord, error)
	GetHistory(ctx context.Context, poseID string, limit int) ([]entity.ScoreRecord, error)
	ListConfiguredPoses() []string
	HasConfig(poseID string) bool
	GetPoseSummary(poseID string) (scoring.PoseConfigSummary, error)
}

type scoringService struct {
	log        *logrus.Logger
	registry   *poseconfig.Registry
	settings   settings.ScoringSettings
	repository scoringRepository.Repository
	cache      redis.IRedis
	detector   detector.IDetector
	utils      utils.IUtils
	cacheTTL   time.Duration
}

func New(
	log *logrus.Logger,
	registry *poseconfig.Registry,
	settings settings.ScoringSettings,
	repository scoringRepository.Repository,
	cache redis.IRedis,
	poseDetector detector.IDetector,
	utils utils.IUtils,
) IScoringService {
	cacheTTL := time.Hour
	if raw := os.Getenv("REPORT_CACHE_TTL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			cacheTTL = parsed
		} else {
			log.Warnf("Invalid REPORT_CACHE_TTL %q, using default %v", raw, cacheTTL)
		}
	}

	return &scoringService{
		log:        log,
		registry:   registry,
		settings:   settings,
		repository: repository,
		cache:      cache,
		detector:   poseDetector,
		utils:      utils,
		cacheTTL:   cacheTTL,
	}
}
