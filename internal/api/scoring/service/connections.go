package scoringService

import (
	"YogaPoseAPI/internal/entity"
	"YogaPoseAPI/internal/poseconfig"
	"YogaPoseAPI/pkg/geometry"
)

// scoreConnections checks every required body-part contact in definition
// order. Missing endpoints mark the measurement unusable with the same
// weight-exclusion policy as angles. Deviation records the distance in
// excess of the allowed maximum (negative while within it).
func scoreConnections(
	connections []poseconfig.ConnectionDefinition,
	res resolution,
	missing map[string]struct{},
) []entity.MeasurementResult {
	results := make([]entity.MeasurementResult, 0, len(connections))

	for _, def := range connections {
		result := entity.MeasurementResult{
			Name:   def.Name,
			Weight: def.Weight,
		}

		p1 := res[def.Point1]
		p2 := res[def.Point2]

		usable := true
		if p1 == nil {
			missing[def.Point1] = struct{}{}
			usable = false
		}
		if p2 == nil {
			missing[def.Point2] = struct{}{}
			usable = false
		}

		if !usable {
			results = append(results, result)
			continue
		}

		dist := geometry.Distance(*p1, *p2)
		excess := dist - def.MaxDistance
		score := clampUnit(1 - dist/def.MaxDistance)

		result.Usable = true
		result.Value = &dist
		result.Deviation = &excess
		result.Score = &score

		results = append(results, result)
	}

	return results
}
