package settings

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// ScoringSettings are the process-wide scoring knobs. Loaded once at startup
// and passed into the service by value; nothing mutates them afterwards, so
// concurrent scoring calls share them safely.
type ScoringSettings struct {
	// AngleWeight and DistanceWeight blend the angle and connection category
	// scores into the overall score. They are expected to sum to 1.0 by
	// convention; the aggregator does not enforce it.
	AngleWeight    float64
	DistanceWeight float64

	// AnglePenaltyFactor scales the per-degree score decay relative to each
	// angle's tolerance.
	AnglePenaltyFactor float64

	// MinConfidence is the confidence floor below which a detected keypoint
	// counts as missing.
	MinConfidence float64
}

func NewScoringSettings(logger *logrus.Logger) ScoringSettings {
	settings := ScoringSettings{
		AngleWeight:        envFloat("ANGLE_WEIGHT", 0.6),
		DistanceWeight:     envFloat("DISTANCE_WEIGHT", 0.4),
		AnglePenaltyFactor: envFloat("ANGLE_PENALTY_FACTOR", 0.5),
		MinConfidence:      envFloat("MIN_KEYPOINT_CONFIDENCE", 0.5),
	}

	sum := settings.AngleWeight + settings.DistanceWeight
	if sum < 0.999 || sum > 1.001 {
		logger.Warnf("ANGLE_WEIGHT + DISTANCE_WEIGHT = %v, expected 1.0; overall scores will be skewed", sum)
	}

	return settings
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.Warnf("Invalid value %q for %s, using default %v", raw, key, fallback)
		return fallback
	}

	return value
}
