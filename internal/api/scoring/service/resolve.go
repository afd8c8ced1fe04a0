package scoringService

import "YogaPoseAPI/internal/entity"

// resolution maps each required keypoint name to its detected point, or nil
// when the keypoint is missing from the snapshot or below the confidence
// floor. Computed once per scoring call and shared by both scorers so they
// agree on what counts as missing.
type resolution map[string]*entity.Point

func resolveKeypoints(required []string, keypoints entity.KeypointSet, minConfidence float64) resolution {
	res := make(resolution, len(required))

	for _, name := range required {
		point, ok := keypoints[name]
		if !ok {
			res[name] = nil
			continue
		}
		if point.Confidence != nil && *point.Confidence < minConfidence {
			res[name] = nil
			continue
		}

		p := point
		res[name] = &p
	}

	return res
}
