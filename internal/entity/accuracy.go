package entity

import "time"

// MeasurementResult is one scored angle or connection. When Usable is false
// the value fields stay nil and the measurement is excluded from aggregation.
type MeasurementResult struct {
	Name      string   `json:"name"`
	Weight    float64  `json:"weight"`
	Usable    bool     `json:"usable"`
	Value     *float64 `json:"value,omitempty"`
	Deviation *float64 `json:"deviation,omitempty"`
	Score     *float64 `json:"score,omitempty"`
}

// AccuracyReport is the full scoring result for one keypoint snapshot.
// ConnectionScore is nil both when the pose defines no connections and when
// every defined connection was unusable; the two cases are told apart by
// MissingKeypoints.
type AccuracyReport struct {
	PoseID           string              `json:"pose_id"`
	OverallScore     float64             `json:"overall_score"`
	AngleScore       float64             `json:"angle_score"`
	ConnectionScore  *float64            `json:"connection_score,omitempty"`
	Angles           []MeasurementResult `json:"angles"`
	Connections      []MeasurementResult `json:"connections,omitempty"`
	MissingKeypoints []string            `json:"missing_keypoints"`
}

// ScoreRecord wraps an AccuracyReport with the identity and timestamp it is
// persisted and cached under. The report itself stays a pure function of the
// inputs; only the record carries state.
type ScoreRecord struct {
	ID        string         `json:"id"`
	PoseID    string         `json:"pose_id"`
	View      string         `json:"view"`
	Report    AccuracyReport `json:"report"`
	CreatedAt time.Time      `json:"created_at"`
}
