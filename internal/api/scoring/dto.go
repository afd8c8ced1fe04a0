package scoring

import "YogaPoseAPI/internal/entity"

type KeypointPayload struct {
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Z          *float64 `json:"z,omitempty"`
	Confidence *float64 `json:"confidence,omitempty" validate:"omitempty,min=0,max=1"`
}

type ScoreRequest struct {
	PoseName  string                     `json:"pose_name" validate:"required"`
	View      string                     `json:"view" validate:"required,oneof=front side"`
	Keypoints map[string]KeypointPayload `json:"keypoints" validate:"required,min=1,dive"`
}

func (r ScoreRequest) ToKeypointSet() entity.KeypointSet {
	set := make(entity.KeypointSet, len(r.Keypoints))
	for name, kp := range r.Keypoints {
		set[name] = entity.Point{
			X:          kp.X,
			Y:          kp.Y,
			Z:          kp.Z,
			Confidence: kp.Confidence,
		}
	}
	return set
}

type FrameScoreRequest struct {
	PoseID      string `json:"pose_id" validate:"required"`
	ImageBase64 string `json:"image_base64" validate:"required"`
}

type ScoreResponse struct {
	Data entity.ScoreRecord `json:"data"`
}

type HistoryResponse struct {
	Data []entity.ScoreRecord `json:"data"`
}

type PoseListResponse struct {
	Data []string `json:"data"`
}

type PoseConfigSummary struct {
	PoseID            string   `json:"pose_id"`
	PoseName          string   `json:"pose_name"`
	View              string   `json:"view"`
	AngleCount        int      `json:"angle_count"`
	ConnectionCount   int      `json:"connection_count"`
	RequiredKeypoints []string `json:"required_keypoints"`
}

type PoseConfigResponse struct {
	Data PoseConfigSummary `json:"data"`
}

// LiveTargetMessage retargets an open live-scoring session to another pose.
type LiveTargetMessage struct {
	PoseID string `json:"pose_id"`
}
