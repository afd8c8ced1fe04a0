package scoringService

import (
	"YogaPoseAPI/internal/config/settings"
	"YogaPoseAPI/internal/entity"
	"math"
	"sort"
)

// aggregate blends the per-measurement scores into the final report. Weights
// are renormalized over usable measurements only, so missing data shrinks the
// denominator instead of dragging the score toward zero.
func aggregate(
	poseID string,
	angleResults []entity.MeasurementResult,
	connectionResults []entity.MeasurementResult,
	hasConnections bool,
	settings settings.ScoringSettings,
	missing map[string]struct{},
) *entity.AccuracyReport {
	angleScore := 0.0
	if weighted := weightedScore(angleResults); weighted != nil {
		angleScore = roundScore(*weighted * 100)
	}

	// Nil both when the pose defines no connections and when none were
	// usable; the caller tells the cases apart via missing_keypoints.
	var connectionScore *float64
	if hasConnections {
		if weighted := weightedScore(connectionResults); weighted != nil {
			rounded := roundScore(*weighted * 100)
			connectionScore = &rounded
		}
	}

	// Without a connection score the distance term falls back to the angle
	// score, so poses without contact checks are scored purely on posture.
	distanceTerm := angleScore
	if connectionScore != nil {
		distanceTerm = *connectionScore
	}

	overall := roundScore(settings.AngleWeight*angleScore + settings.DistanceWeight*distanceTerm)

	missingList := make([]string, 0, len(missing))
	for name := range missing {
		missingList = append(missingList, name)
	}
	sort.Strings(missingList)

	return &entity.AccuracyReport{
		PoseID:           poseID,
		OverallScore:     overall,
		AngleScore:       angleScore,
		ConnectionScore:  connectionScore,
		Angles:           angleResults,
		Connections:      connectionResults,
		MissingKeypoints: missingList,
	}
}

// weightedScore renormalizes over usable measurements; nil when none are
// usable.
func weightedScore(results []entity.MeasurementResult) *float64 {
	var sumWeights, sumWeighted float64

	for _, r := range results {
		if !r.Usable {
			continue
		}
		sumWeights += r.Weight
		sumWeighted += r.Weight * *r.Score
	}

	if sumWeights == 0 {
		return nil
	}

	value := sumWeighted / sumWeights
	return &value
}

func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
