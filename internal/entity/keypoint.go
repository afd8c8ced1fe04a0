package entity

// Keypoint names follow the detector's landmark vocabulary. Unknown names in
// an incoming KeypointSet are simply never looked up.
const (
	Nose          = "nose"
	LeftShoulder  = "left_shoulder"
	RightShoulder = "right_shoulder"
	LeftElbow     = "left_elbow"
	RightElbow    = "right_elbow"
	LeftWrist     = "left_wrist"
	RightWrist    = "right_wrist"
	LeftHip       = "left_hip"
	RightHip      = "right_hip"
	LeftKnee      = "left_knee"
	RightKnee     = "right_knee"
	LeftAnkle     = "left_ankle"
	RightAnkle    = "right_ankle"
)

// Point is a detected landmark in the detector's normalized frame.
// Z and Confidence are optional: 2D detectors omit Z, and not every
// backend reports per-point confidence.
type Point struct {
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Z          *float64 `json:"z,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// KeypointSet is one detection snapshot, keyed by keypoint name.
type KeypointSet map[string]Point

type KeypointDetectionResult struct {
	Status    string      `json:"status"`
	Message   string      `json:"message,omitempty"`
	Keypoints KeypointSet `json:"keypoints"`
}
