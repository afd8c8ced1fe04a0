package scoringService

import (
	"YogaPoseAPI/internal/api/scoring"
	"YogaPoseAPI/internal/config/settings"
	"YogaPoseAPI/internal/entity"
	"YogaPoseAPI/internal/poseconfig"
	"YogaPoseAPI/pkg/log"
	"errors"
	"time"

	"golang.org/x/net/context"
)

// evaluate is the scoring engine proper: a pure function of the pose
// configuration, one keypoint snapshot, and the scoring settings. It performs
// no I/O and identical inputs produce identical reports.
func evaluate(
	poseID string,
	cfg poseconfig.PoseAngleConfig,
	keypoints entity.KeypointSet,
	settings settings.ScoringSettings,
) *entity.AccuracyReport {
	res := resolveKeypoints(cfg.RequiredKeypoints, keypoints, settings.MinConfidence)
	missing := make(map[string]struct{})

	angleResults := scoreAngles(cfg.RequiredAngles, res, settings, missing)
	connectionResults := scoreConnections(cfg.RequiredConnections, res, missing)

	return aggregate(poseID, angleResults, connectionResults, len(cfg.RequiredConnections) > 0, settings, missing)
}

func (s *scoringService) Score(ctx context.Context, poseName string, view string, keypoints entity.KeypointSet) (*entity.ScoreRecord, error) {
	return s.scorePose(ctx, poseName+view, keypoints)
}

func (s *scoringService) scorePose(ctx context.Context, poseID string, keypoints entity.KeypointSet) (*entity.ScoreRecord, error) {
	cfg, err := s.registry.GetPoseConfig(poseID)
	if err != nil {
		if errors.Is(err, poseconfig.ErrUnknownPose) {
			return nil, scoring.ErrUnknownPose
		}
		return nil, err
	}

	report := evaluate(poseID, cfg, keypoints, s.settings)

	reportID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		log.WithRequestID(ctx).WithField("error", err.Error()).Error("Failed to generate report ID")
		return nil, err
	}

	record := &entity.ScoreRecord{
		ID:        reportID,
		PoseID:    poseID,
		View:      cfg.View,
		Report:    *report,
		CreatedAt: time.Now().UTC(),
	}

	s.persistRecord(ctx, record)

	log.WithRequestID(ctx).WithFields(log.Fields{
		"pose_id":       poseID,
		"report_id":     record.ID,
		"overall_score": report.OverallScore,
		"missing":       len(report.MissingKeypoints),
	}).Info("Pose scored")

	return record, nil
}

// persistRecord writes the record to history and the cache. Both are best
// effort: the score was already computed and a storage hiccup must not turn
// a successful scoring call into an error.
func (s *scoringService) persistRecord(ctx context.Context, record *entity.ScoreRecord) {
	if s.repository != nil {
		client, err := s.repository.NewClient(false)
		if err != nil {
			log.WithRequestID(ctx).WithField("error", err.Error()).Warn("Failed to open repository client for score history")
		} else if err := client.Report.SaveReport(ctx, *record); err != nil {
			log.WithRequestID(ctx).WithField("error", err.Error()).Warn("Failed to persist score report")
		}
	}

	if s.cache != nil {
		if err := s.cache.SetReport(ctx, record, s.cacheTTL); err != nil {
			log.WithRequestID(ctx).WithField("error", err.Error()).Warn("Failed to cache score report")
		}
	}
}

func (s *scoringService) ScoreFrame(ctx context.Context, poseID string, frame []byte) (*entity.ScoreRecord, error) {
	if !s.registry.HasConfig(poseID) {
		return nil, scoring.ErrUnknownPose
	}

	detection, err := s.detector.ProcessPoseFrame(frame)
	if err != nil {
		log.WithRequestID(ctx).WithField("error", err.Error()).Error("Pose detector call failed")
		return nil, scoring.ErrDetectorUnavailable
	}

	if len(detection.Keypoints) == 0 {
		return nil, scoring.ErrNoKeypointsDetected
	}

	return s.scorePose(ctx, poseID, detection.Keypoints)
}

func (s *scoringService) GetReport(ctx context.Context, reportID string) (*entity.ScoreRecord, error) {
	if s.cache != nil {
		if record, err := s.cache.GetReport(ctx, reportID); err == nil {
			return record, nil
		}
	}

	if s.repository == nil {
		return nil, scoring.ErrReportNotFound
	}

	client, err := s.repository.NewClient(false)
	if err != nil {
		return nil, err
	}

	record, err := client.Report.GetReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetReport(ctx, &record, s.cacheTTL); err != nil {
			log.WithRequestID(ctx).WithField("error", err.Error()).Warn("Failed to backfill report cache")
		}
	}

	return &record, nil
}

func (s *scoringService) GetHistory(ctx context.Context, poseID string, limit int) ([]entity.ScoreRecord, error) {
	if !s.registry.HasConfig(poseID) {
		return nil, scoring.ErrUnknownPose
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}

	client, err := s.repository.NewClient(false)
	if err != nil {
		return nil, err
	}

	return client.Report.GetReportsByPose(ctx, poseID, limit)
}

func (s *scoringService) ListConfiguredPoses() []string {
	return s.registry.ListConfiguredPoses()
}

func (s *scoringService) HasConfig(poseID string) bool {
	return s.registry.HasConfig(poseID)
}

func (s *scoringService) GetPoseSummary(poseID string) (scoring.PoseConfigSummary, error) {
	cfg, err := s.registry.GetPoseConfig(poseID)
	if err != nil {
		return scoring.PoseConfigSummary{}, scoring.ErrUnknownPose
	}

	return scoring.PoseConfigSummary{
		PoseID:            poseID,
		PoseName:          cfg.PoseName,
		View:              cfg.View,
		AngleCount:        len(cfg.RequiredAngles),
		ConnectionCount:   len(cfg.RequiredConnections),
		RequiredKeypoints: cfg.RequiredKeypoints,
	}, nil
}
