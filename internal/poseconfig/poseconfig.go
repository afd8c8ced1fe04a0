package poseconfig

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownPose = errors.New("no angle configuration found for pose")

// AngleDefinition describes one joint angle to measure: the angle formed at
// Points[1] (the vertex) by Points[0] and Points[2].
type AngleDefinition struct {
	Name        string
	Points      [3]string
	TargetAngle float64
	Tolerance   float64
	Weight      float64
}

// ConnectionDefinition describes a body-part contact check, e.g. a hand
// holding a foot. The two keypoints must sit within MaxDistance of each other
// in normalized space.
type ConnectionDefinition struct {
	Name        string
	Point1      string
	Point2      string
	MaxDistance float64
	Weight      float64
}

// PoseAngleConfig is the declarative correctness spec for one (pose, view)
// pair, looked up under the composite key PoseName + View.
type PoseAngleConfig struct {
	PoseName            string
	View                string
	RequiredAngles      []AngleDefinition
	RequiredKeypoints   []string
	RequiredConnections []ConnectionDefinition
}

// Registry holds every configured pose. It is populated and validated once at
// startup and never mutated afterwards, so lookups are safe from any
// goroutine without locking.
type Registry struct {
	configs map[string]PoseAngleConfig
	ids     []string
}

// New builds the registry from the static pose table and validates every
// entry. A malformed entry fails construction; callers are expected to abort
// startup on error.
func New() (*Registry, error) {
	r := &Registry{
		configs: make(map[string]PoseAngleConfig, len(poseAngleDefinitions)),
		ids:     make([]string, 0, len(poseAngleDefinitions)),
	}

	for id, cfg := range poseAngleDefinitions {
		if err := validateConfig(id, cfg); err != nil {
			return nil, err
		}
		r.configs[id] = cfg
		r.ids = append(r.ids, id)
	}

	sort.Strings(r.ids)

	return r, nil
}

// GetPoseConfig returns the configuration registered under poseID, e.g.
// "Tree_Pose_or_Vrksasana_side". Fails with ErrUnknownPose when absent.
func (r *Registry) GetPoseConfig(poseID string) (PoseAngleConfig, error) {
	cfg, ok := r.configs[poseID]
	if !ok {
		return PoseAngleConfig{}, fmt.Errorf("%w: %s", ErrUnknownPose, poseID)
	}
	return cfg, nil
}

// ListConfiguredPoses returns every registered pose ID in lexicographic
// order.
func (r *Registry) ListConfiguredPoses() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// HasConfig reports whether poseID is registered.
func (r *Registry) HasConfig(poseID string) bool {
	_, ok := r.configs[poseID]
	return ok
}

func validateConfig(id string, cfg PoseAngleConfig) error {
	if cfg.View != "front" && cfg.View != "side" {
		return fmt.Errorf("pose %s: invalid view %q", id, cfg.View)
	}
	if id != cfg.PoseName+cfg.View {
		return fmt.Errorf("pose %s: key does not match pose_name+view %q", id, cfg.PoseName+cfg.View)
	}
	if len(cfg.RequiredAngles) == 0 {
		return fmt.Errorf("pose %s: no required angles", id)
	}

	required := make(map[string]struct{}, len(cfg.RequiredKeypoints))
	for _, name := range cfg.RequiredKeypoints {
		required[name] = struct{}{}
	}

	seen := make(map[string]struct{})

	for _, angle := range cfg.RequiredAngles {
		if _, dup := seen[angle.Name]; dup {
			return fmt.Errorf("pose %s: duplicate measurement name %q", id, angle.Name)
		}
		seen[angle.Name] = struct{}{}

		if angle.TargetAngle < 0 || angle.TargetAngle > 180 {
			return fmt.Errorf("pose %s: angle %q target %v outside [0, 180]", id, angle.Name, angle.TargetAngle)
		}
		if angle.Tolerance <= 0 {
			return fmt.Errorf("pose %s: angle %q tolerance must be positive", id, angle.Name)
		}
		if angle.Weight <= 0 {
			return fmt.Errorf("pose %s: angle %q weight must be positive", id, angle.Name)
		}
		if angle.Points[0] == angle.Points[1] || angle.Points[1] == angle.Points[2] || angle.Points[0] == angle.Points[2] {
			return fmt.Errorf("pose %s: angle %q references non-distinct keypoints", id, angle.Name)
		}
		for _, point := range angle.Points {
			if _, ok := required[point]; !ok {
				return fmt.Errorf("pose %s: angle %q references keypoint %q not in required_keypoints", id, angle.Name, point)
			}
		}
	}

	for _, conn := range cfg.RequiredConnections {
		if _, dup := seen[conn.Name]; dup {
			return fmt.Errorf("pose %s: duplicate measurement name %q", id, conn.Name)
		}
		seen[conn.Name] = struct{}{}

		if conn.MaxDistance <= 0 {
			return fmt.Errorf("pose %s: connection %q max distance must be positive", id, conn.Name)
		}
		if conn.Weight <= 0 {
			return fmt.Errorf("pose %s: connection %q weight must be positive", id, conn.Name)
		}
		if conn.Point1 == conn.Point2 {
			return fmt.Errorf("pose %s: connection %q references non-distinct keypoints", id, conn.Name)
		}
		for _, point := range []string{conn.Point1, conn.Point2} {
			if _, ok := required[point]; !ok {
				return fmt.Errorf("pose %s: connection %q references keypoint %q not in required_keypoints", id, conn.Name, point)
			}
		}
	}

	return nil
}
