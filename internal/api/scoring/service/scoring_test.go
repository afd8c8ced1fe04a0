package scoringService

import (
	"YogaPoseAPI/internal/api/scoring"
	"YogaPoseAPI/internal/config/settings"
	"YogaPoseAPI/internal/entity"
	"YogaPoseAPI/internal/poseconfig"
	"YogaPoseAPI/pkg/log"
	"errors"
	"math"
	"mime/multipart"
	"os"
	"reflect"
	"testing"
	"time"

	"golang.org/x/net/context"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	log.NewLogger()
	os.Exit(m.Run())
}

func defaultSettings() settings.ScoringSettings {
	return settings.ScoringSettings{
		AngleWeight:        0.6,
		DistanceWeight:     0.4,
		AnglePenaltyFactor: 0.5,
		MinConfidence:      0.5,
	}
}

func fptr(v float64) *float64 { return &v }

func point(x, y float64) entity.Point {
	return entity.Point{X: x, Y: y}
}

// pointAtAngle places a point one unit from the origin so that the angle at
// the origin between (1, 0) and the point is deg degrees.
func pointAtAngle(deg float64) entity.Point {
	rad := deg * math.Pi / 180
	return point(math.Cos(rad), math.Sin(rad))
}

func elbowConfig(target, tolerance, weight float64) poseconfig.PoseAngleConfig {
	return poseconfig.PoseAngleConfig{
		PoseName: "Test_Pose_",
		View:     "front",
		RequiredAngles: []poseconfig.AngleDefinition{
			{
				Name:        "left_elbow",
				Points:      [3]string{entity.LeftShoulder, entity.LeftElbow, entity.LeftWrist},
				TargetAngle: target,
				Tolerance:   tolerance,
				Weight:      weight,
			},
		},
		RequiredKeypoints: []string{entity.LeftShoulder, entity.LeftElbow, entity.LeftWrist},
	}
}

func TestEvaluatePerfectAngle(t *testing.T) {
	cfg := elbowConfig(90, 10, 1)
	keypoints := entity.KeypointSet{
		entity.LeftShoulder: point(1, 0),
		entity.LeftElbow:    point(0, 0),
		entity.LeftWrist:    point(0, 1),
	}

	report := evaluate("Test_Pose_front", cfg, keypoints, defaultSettings())

	if report.AngleScore != 100 {
		t.Errorf("angle score = %v, want 100", report.AngleScore)
	}
	if report.OverallScore != 100 {
		t.Errorf("overall score = %v, want 100", report.OverallScore)
	}
	if report.ConnectionScore != nil {
		t.Errorf("connection score = %v, want nil for pose without connections", *report.ConnectionScore)
	}
	if len(report.MissingKeypoints) != 0 {
		t.Errorf("missing keypoints = %v, want none", report.MissingKeypoints)
	}
}

func TestEvaluateDeviationWithinTolerance(t *testing.T) {
	// Deviation 5 with tolerance 10 and penalty factor 0.5 leaves a
	// measurement score of 0.75, so angle and overall land on 75.0.
	cfg := elbowConfig(180, 10, 1)
	keypoints := entity.KeypointSet{
		entity.LeftShoulder: point(1, 0),
		entity.LeftElbow:    point(0, 0),
		entity.LeftWrist:    pointAtAngle(175),
	}

	report := evaluate("Test_Pose_front", cfg, keypoints, defaultSettings())

	if report.AngleScore != 75 {
		t.Errorf("angle score = %v, want 75", report.AngleScore)
	}
	if report.OverallScore != 75 {
		t.Errorf("overall score = %v, want 75", report.OverallScore)
	}

	angle := report.Angles[0]
	if !angle.Usable {
		t.Fatal("measurement should be usable")
	}
	if math.Abs(*angle.Deviation-5) > 1e-6 {
		t.Errorf("deviation = %v, want 5", *angle.Deviation)
	}
}

func TestEvaluateScoreFloorsAtZero(t *testing.T) {
	// Deviation 90 with tolerance 10 pushes the raw score far below zero.
	cfg := elbowConfig(180, 10, 1)
	keypoints := entity.KeypointSet{
		entity.LeftShoulder: point(1, 0),
		entity.LeftElbow:    point(0, 0),
		entity.LeftWrist:    point(0, 1),
	}

	report := evaluate("Test_Pose_front", cfg, keypoints, defaultSettings())

	if report.AngleScore != 0 {
		t.Errorf("angle score = %v, want 0", report.AngleScore)
	}
	if report.OverallScore != 0 {
		t.Errorf("overall score = %v, want 0", report.OverallScore)
	}
	if *report.Angles[0].Score != 0 {
		t.Errorf("measurement score = %v, want 0", *report.Angles[0].Score)
	}
}

func TestEvaluateMissingKeypointExclusion(t *testing.T) {
	cfg := poseconfig.PoseAngleConfig{
		PoseName: "Test_Pose_",
		View:     "front",
		RequiredAngles: []poseconfig.AngleDefinition{
			{
				Name:        "left_elbow",
				Points:      [3]string{entity.LeftShoulder, entity.LeftElbow, entity.LeftWrist},
				TargetAngle: 90,
				Tolerance:   10,
				Weight:      1,
			},
			{
				Name:        "right_elbow",
				Points:      [3]string{entity.RightShoulder, entity.RightElbow, entity.RightWrist},
				TargetAngle: 90,
				Tolerance:   10,
				Weight:      3,
			},
		},
		RequiredKeypoints: []string{
			entity.LeftShoulder, entity.LeftElbow, entity.LeftWrist,
			entity.RightShoulder, entity.RightElbow, entity.RightWrist,
		},
	}

	// Right wrist absent: the heavier measurement drops out and the score
	// comes entirely from the perfect left elbow.
	keypoints := entity.KeypointSet{
		entity.LeftShoulder:  point(1, 0),
		entity.LeftElbow:     point(0, 0),
		entity.LeftWrist:     point(0, 1),
		entity.RightShoulder: point(3, 0),
		entity.RightElbow:    point(2, 0),
	}

	report := evaluate("Test_Pose_front", cfg, keypoints, defaultSettings())

	if report.AngleScore != 100 {
		t.Errorf("angle score = %v, want 100 after excluding the unusable measurement", report.AngleScore)
	}
	if !reflect.DeepEqual(report.MissingKeypoints, []string{entity.RightWrist}) {
		t.Errorf("missing keypoints = %v, want [%s]", report.MissingKeypoints, entity.RightWrist)
	}

	var unusable *entity.MeasurementResult
	for i := range report.Angles {
		if report.Angles[i].Name == "right_elbow" {
			unusable = &report.Angles[i]
		}
	}
	if unusable == nil {
		t.Fatal("right_elbow measurement missing from report")
	}
	if unusable.Usable || unusable.Score != nil || unusable.Value != nil {
		t.Errorf("unusable measurement should carry no values, got %+v", *unusable)
	}
}

func TestEvaluateWeightSensitivity(t *testing.T) {
	// Two angles, one perfect and one far off. Losing the off-target
	// measurement must move the aggregate more when its weight is higher.
	makeConfig := func(offWeight float64) poseconfig.PoseAngleConfig {
		return poseconfig.PoseAngleConfig{
			PoseName: "Test_Pose_",
			View:     "front",
			RequiredAngles: []poseconfig.AngleDefinition{
				{
					Name:        "left_elbow",
					Points:      [3]string{entity.LeftShoulder, entity.LeftElbow, entity.LeftWrist},
					TargetAngle: 90,
					Tolerance:   10,
					Weight:      1,
				},
				{
					Name:        "left_knee",
					Points:      [3]string{entity.LeftHip, entity.LeftKnee, entity.LeftAnkle},
					TargetAngle: 180,
					Tolerance:   10,
					Weight:      offWeight,
				},
			},
			RequiredKeypoints: []string{
				entity.LeftShoulder, entity.LeftElbow, entity.LeftWrist,
				entity.LeftHip, entity.LeftKnee, entity.LeftAnkle,
			},
		}
	}

	full := entity.KeypointSet{
		entity.LeftShoulder: point(1, 0),
		entity.LeftElbow:    point(0, 0),
		entity.LeftWrist:    point(0, 1),
		entity.LeftHip:      point(3, 0),
		entity.LeftKnee:     point(2, 0),
		entity.LeftAnkle:    point(2, 1),
	}

	withoutKnee := entity.KeypointSet{}
	for name, p := range full {
		if name != entity.LeftAnkle {
			withoutKnee[name] = p
		}
	}

	delta := func(weight float64) float64 {
		cfg := makeConfig(weight)
		before := evaluate("Test_Pose_front", cfg, full, defaultSettings()).AngleScore
		after := evaluate("Test_Pose_front", cfg, withoutKnee, defaultSettings()).AngleScore
		return math.Abs(after - before)
	}

	if low, high := delta(1), delta(4); low >= high {
		t.Errorf("dropping a weight-1 measurement shifted the score by %v, weight-4 by %v; want the heavier loss to shift more", low, high)
	}
}

func TestEvaluateLowConfidenceTreatedAsMissing(t *testing.T) {
	cfg := elbowConfig(90, 10, 1)
	keypoints := entity.KeypointSet{
		entity.LeftShoulder: point(1, 0),
		entity.LeftElbow:    point(0, 0),
		entity.LeftWrist:    {X: 0, Y: 1, Confidence: fptr(0.2)},
	}

	report := evaluate("Test_Pose_front", cfg, keypoints, defaultSettings())

	if report.AngleScore != 0 {
		t.Errorf("angle score = %v, want 0 with no usable measurement", report.AngleScore)
	}
	if !reflect.DeepEqual(report.MissingKeypoints, []string{entity.LeftWrist}) {
		t.Errorf("missing keypoints = %v, want [%s]", report.MissingKeypoints, entity.LeftWrist)
	}
}

func TestEvaluateDegenerateAngleUnusable(t *testing.T) {
	cfg := elbowConfig(90, 10, 1)
	keypoints := entity.KeypointSet{
		entity.LeftShoulder: point(0, 0),
		entity.LeftElbow:    point(0, 0),
		entity.LeftWrist:    point(0, 1),
	}

	report := evaluate("Test_Pose_front", cfg, keypoints, defaultSettings())

	if report.Angles[0].Usable {
		t.Error("coincident vertex should make the measurement unusable")
	}
	if !reflect.DeepEqual(report.MissingKeypoints, []string{entity.LeftElbow}) {
		t.Errorf("missing keypoints = %v, want the vertex %s", report.MissingKeypoints, entity.LeftElbow)
	}
}

func TestEvaluateConnectionScoring(t *testing.T) {
	cfg := elbowConfig(90, 10, 1)
	cfg.RequiredKeypoints = append(cfg.RequiredKeypoints, entity.RightWrist, entity.RightAnkle)
	cfg.RequiredConnections = []poseconfig.ConnectionDefinition{
		{
			Name:        "right_hand_to_right_foot",
			Point1:      entity.RightWrist,
			Point2:      entity.RightAnkle,
			MaxDistance: 0.35,
			Weight:      2,
		},
	}

	perfectElbow := entity.KeypointSet{
		entity.LeftShoulder: point(1, 0),
		entity.LeftElbow:    point(0, 0),
		entity.LeftWrist:    point(0, 1),
	}

	tests := []struct {
		name           string
		wrist, ankle   entity.Point
		wantConnection float64
		wantOverall    float64
	}{
		{
			name:           "touching",
			wrist:          point(5, 5),
			ankle:          point(5, 5),
			wantConnection: 100,
			wantOverall:    100,
		},
		{
			name:  "at the boundary",
			wrist: point(5, 5),
			ankle: point(5.35, 5),
			// Distance equals the maximum, so 1 - d/max is exactly zero.
			wantConnection: 0,
			wantOverall:    60,
		},
		{
			name:           "halfway",
			wrist:          point(5, 5),
			ankle:          point(5.175, 5),
			wantConnection: 50,
			wantOverall:    80,
		},
		{
			name:           "far beyond",
			wrist:          point(5, 5),
			ankle:          point(9, 5),
			wantConnection: 0,
			wantOverall:    60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keypoints := entity.KeypointSet{
				entity.RightWrist: tt.wrist,
				entity.RightAnkle: tt.ankle,
			}
			for name, p := range perfectElbow {
				keypoints[name] = p
			}

			report := evaluate("Test_Pose_front", cfg, keypoints, defaultSettings())

			if report.ConnectionScore == nil {
				t.Fatal("connection score missing")
			}
			if *report.ConnectionScore != tt.wantConnection {
				t.Errorf("connection score = %v, want %v", *report.ConnectionScore, tt.wantConnection)
			}
			if report.OverallScore != tt.wantOverall {
				t.Errorf("overall score = %v, want %v", report.OverallScore, tt.wantOverall)
			}
		})
	}
}

func TestEvaluateConnectionFallsBackToAngleScore(t *testing.T) {
	cfg := elbowConfig(90, 10, 1)
	cfg.RequiredKeypoints = append(cfg.RequiredKeypoints, entity.RightWrist, entity.RightAnkle)
	cfg.RequiredConnections = []poseconfig.ConnectionDefinition{
		{
			Name:        "right_hand_to_right_foot",
			Point1:      entity.RightWrist,
			Point2:      entity.RightAnkle,
			MaxDistance: 0.35,
			Weight:      2,
		},
	}

	// Connection endpoints absent: the distance term falls back to the angle
	// score instead of dragging the blend down.
	keypoints := entity.KeypointSet{
		entity.LeftShoulder: point(1, 0),
		entity.LeftElbow:    point(0, 0),
		entity.LeftWrist:    point(0, 1),
	}

	report := evaluate("Test_Pose_front", cfg, keypoints, defaultSettings())

	if report.ConnectionScore != nil {
		t.Errorf("connection score = %v, want nil when no connection is usable", *report.ConnectionScore)
	}
	if report.OverallScore != 100 {
		t.Errorf("overall score = %v, want 100", report.OverallScore)
	}
	want := []string{entity.RightAnkle, entity.RightWrist}
	if !reflect.DeepEqual(report.MissingKeypoints, want) {
		t.Errorf("missing keypoints = %v, want %v", report.MissingKeypoints, want)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	cfg := elbowConfig(120, 15, 2)
	keypoints := entity.KeypointSet{
		entity.LeftShoulder: point(1, 0),
		entity.LeftElbow:    point(0, 0),
		entity.LeftWrist:    pointAtAngle(111),
	}

	first := evaluate("Test_Pose_front", cfg, keypoints, defaultSettings())
	second := evaluate("Test_Pose_front", cfg, keypoints, defaultSettings())

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different reports")
	}
}

func TestEvaluateScoresWithinRangeForAllPoses(t *testing.T) {
	registry, err := poseconfig.New()
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}

	// A deliberately sloppy full-body snapshot: every landmark present but
	// nowhere near any pose. Scores must still stay inside [0, 100].
	keypoints := entity.KeypointSet{}
	for i, name := range []string{
		entity.Nose,
		entity.LeftShoulder, entity.RightShoulder,
		entity.LeftElbow, entity.RightElbow,
		entity.LeftWrist, entity.RightWrist,
		entity.LeftHip, entity.RightHip,
		entity.LeftKnee, entity.RightKnee,
		entity.LeftAnkle, entity.RightAnkle,
	} {
		keypoints[name] = point(float64(i)*0.07, float64(i%5)*0.13)
	}

	for _, poseID := range registry.ListConfiguredPoses() {
		cfg, err := registry.GetPoseConfig(poseID)
		if err != nil {
			t.Fatalf("GetPoseConfig(%s): %v", poseID, err)
		}

		report := evaluate(poseID, cfg, keypoints, defaultSettings())

		for _, score := range []float64{report.OverallScore, report.AngleScore} {
			if score < 0 || score > 100 {
				t.Errorf("pose %s: score %v outside [0, 100]", poseID, score)
			}
		}
		if report.ConnectionScore != nil && (*report.ConnectionScore < 0 || *report.ConnectionScore > 100) {
			t.Errorf("pose %s: connection score %v outside [0, 100]", poseID, *report.ConnectionScore)
		}
	}
}

type stubUtils struct{}

func (stubUtils) NewULIDFromTimestamp(t time.Time) (string, error) {
	return "01K3FIXEDULIDFORSERVICETESTS", nil
}

func (stubUtils) ValidateImageFile(file *multipart.FileHeader) error { return nil }

func (stubUtils) ConvertFileToBase64(file multipart.File) (string, error) { return "", nil }

func newTestService(t *testing.T) IScoringService {
	t.Helper()

	registry, err := poseconfig.New()
	if err != nil {
		t.Fatalf("failed to build registry: %v", err)
	}

	return New(log.NewLogger(), registry, defaultSettings(), nil, nil, nil, stubUtils{})
}

func TestServiceScoreUnknownPose(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Score(context.Background(), "Nonexistent_Pose_", "front", entity.KeypointSet{})
	if !errors.Is(err, scoring.ErrUnknownPose) {
		t.Errorf("error = %v, want ErrUnknownPose", err)
	}
}

func TestServiceScoreBuildsRecord(t *testing.T) {
	svc := newTestService(t)

	keypoints := entity.KeypointSet{}
	for i, name := range []string{
		entity.LeftShoulder, entity.RightShoulder,
		entity.LeftHip, entity.RightHip,
		entity.LeftKnee, entity.RightKnee,
		entity.LeftAnkle, entity.RightAnkle,
	} {
		keypoints[name] = point(float64(i)*0.1, float64(i)*0.05)
	}

	record, err := svc.Score(context.Background(), "Tree_Pose_or_Vrksasana_", "side", keypoints)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if record.ID == "" {
		t.Error("record ID not set")
	}
	if record.PoseID != "Tree_Pose_or_Vrksasana_side" {
		t.Errorf("pose ID = %q, want Tree_Pose_or_Vrksasana_side", record.PoseID)
	}
	if record.View != "side" {
		t.Errorf("view = %q, want side", record.View)
	}
	if record.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
	if record.Report.PoseID != record.PoseID {
		t.Errorf("report pose ID = %q, want %q", record.Report.PoseID, record.PoseID)
	}
}

func TestServicePoseSummary(t *testing.T) {
	svc := newTestService(t)

	summary, err := svc.GetPoseSummary("Akarna_Dhanurasana_front")
	if err != nil {
		t.Fatalf("GetPoseSummary failed: %v", err)
	}

	if summary.PoseName != "Akarna_Dhanurasana_" {
		t.Errorf("pose name = %q, want Akarna_Dhanurasana_", summary.PoseName)
	}
	if summary.View != "front" {
		t.Errorf("view = %q, want front", summary.View)
	}
	if summary.AngleCount != 3 {
		t.Errorf("angle count = %d, want 3", summary.AngleCount)
	}
	if summary.ConnectionCount != 2 {
		t.Errorf("connection count = %d, want 2", summary.ConnectionCount)
	}

	if _, err := svc.GetPoseSummary("Nonexistent_front"); !errors.Is(err, scoring.ErrUnknownPose) {
		t.Errorf("error = %v, want ErrUnknownPose", err)
	}
}
