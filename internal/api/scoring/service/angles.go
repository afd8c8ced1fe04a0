package scoringService

import (
	"YogaPoseAPI/internal/config/settings"
	"YogaPoseAPI/internal/entity"
	"YogaPoseAPI/internal/poseconfig"
	"YogaPoseAPI/pkg/geometry"
	"math"
)

// scoreAngles measures every required angle in definition order. A
// measurement whose keypoints are unresolved, or whose limb vectors collapse
// to zero length, is marked unusable and excluded from aggregation; the
// responsible keypoints are added to missing.
func scoreAngles(
	angles []poseconfig.AngleDefinition,
	res resolution,
	settings settings.ScoringSettings,
	missing map[string]struct{},
) []entity.MeasurementResult {
	results := make([]entity.MeasurementResult, 0, len(angles))

	for _, def := range angles {
		result := entity.MeasurementResult{
			Name:   def.Name,
			Weight: def.Weight,
		}

		var points [3]*entity.Point
		usable := true
		for i, name := range def.Points {
			points[i] = res[name]
			if points[i] == nil {
				missing[name] = struct{}{}
				usable = false
			}
		}

		if !usable {
			results = append(results, result)
			continue
		}

		actual, err := geometry.AngleAtVertex(*points[0], *points[1], *points[2])
		if err != nil {
			// Zero-length limb: the vertex coincides with an endpoint, so the
			// angle is undefined. Same treatment as missing data.
			missing[def.Points[1]] = struct{}{}
			results = append(results, result)
			continue
		}

		deviation := math.Abs(actual - def.TargetAngle)
		score := clampUnit(1 - (deviation/def.Tolerance)*settings.AnglePenaltyFactor)

		result.Usable = true
		result.Value = &actual
		result.Deviation = &deviation
		result.Score = &score

		results = append(results, result)
	}

	return results
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
