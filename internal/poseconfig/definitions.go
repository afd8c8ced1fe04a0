package poseconfig

import "YogaPoseAPI/internal/entity"

// poseAngleDefinitions is the static pose table. Target angles were measured
// from the reference images; tolerances widen on joints that vary a lot
// between practitioners.
var poseAngleDefinitions = map[string]PoseAngleConfig{

	// Archer pose: each hand pulls the opposite foot toward the ear.
	"Akarna_Dhanurasana_front": {
		PoseName: "Akarna_Dhanurasana_",
		View:     "front",
		RequiredKeypoints: []string{
			entity.Nose, entity.LeftShoulder, entity.RightShoulder,
			entity.LeftElbow, entity.RightElbow,
			entity.LeftWrist, entity.RightWrist,
			entity.LeftHip, entity.RightHip,
			entity.LeftKnee, entity.RightKnee,
			entity.LeftAnkle, entity.RightAnkle,
		},
		RequiredConnections: []ConnectionDefinition{
			{
				Name:        "Left hand holds right foot",
				Point1:      entity.LeftWrist,
				Point2:      entity.RightAnkle,
				MaxDistance: 0.35,
				Weight:      2.0,
			},
			{
				Name:        "Right hand holds left foot",
				Point1:      entity.RightWrist,
				Point2:      entity.LeftAnkle,
				MaxDistance: 0.35,
				Weight:      2.0,
			},
		},
		RequiredAngles: []AngleDefinition{
			{
				Name:        "Standing Leg (Right Knee)",
				Points:      [3]string{entity.RightHip, entity.RightKnee, entity.RightAnkle},
				TargetAngle: 56.2,
				Tolerance:   25.0,
				Weight:      5.0, // most critical
			},
			{
				Name:        "right hand",
				Points:      [3]string{entity.RightShoulder, entity.RightElbow, entity.RightWrist},
				TargetAngle: 173.9,
				Tolerance:   20.0,
				Weight:      2.0,
			},
			{
				Name:        "left hand",
				Points:      [3]string{entity.LeftShoulder, entity.LeftElbow, entity.LeftWrist},
				TargetAngle: 39.3,
				Tolerance:   25.0,
				Weight:      2.0,
			},
		},
	},

	"Tree_Pose_or_Vrksasana_side": {
		PoseName: "Tree_Pose_or_Vrksasana_",
		View:     "side",
		RequiredKeypoints: []string{
			entity.Nose, entity.LeftShoulder, entity.LeftElbow, entity.LeftWrist,
			entity.LeftHip, entity.LeftKnee, entity.LeftAnkle,
		},
		RequiredAngles: []AngleDefinition{
			{
				Name:        "Body Alignment",
				Points:      [3]string{entity.LeftShoulder, entity.LeftHip, entity.LeftAnkle},
				TargetAngle: 180.0, // straight vertical line
				Tolerance:   10.0,
				Weight:      3.0,
			},
			{
				Name:        "Hip Angle",
				Points:      [3]string{entity.LeftShoulder, entity.LeftHip, entity.LeftKnee},
				TargetAngle: 160.0, // slight backward lean
				Tolerance:   15.0,
				Weight:      2.0,
			},
			{
				Name:        "Standing Leg",
				Points:      [3]string{entity.LeftHip, entity.LeftKnee, entity.LeftAnkle},
				TargetAngle: 180.0,
				Tolerance:   5.0,
				Weight:      2.5,
			},
		},
	},

	"Warrior_I_Pose_or_Virabhadrasana_I_front": {
		PoseName: "Warrior_I_Pose_or_Virabhadrasana_I_",
		View:     "front",
		RequiredKeypoints: []string{
			entity.LeftShoulder, entity.RightShoulder,
			entity.LeftElbow, entity.RightElbow,
			entity.LeftWrist, entity.RightWrist,
			entity.LeftHip, entity.RightHip,
			entity.LeftKnee, entity.RightKnee,
			entity.LeftAnkle, entity.RightAnkle,
		},
		RequiredAngles: []AngleDefinition{
			{
				Name:        "Front Knee (Left)",
				Points:      [3]string{entity.LeftHip, entity.LeftKnee, entity.LeftAnkle},
				TargetAngle: 90.0, // bent at 90 degrees
				Tolerance:   15.0,
				Weight:      3.0,
			},
			{
				Name:        "Back Leg (Right)",
				Points:      [3]string{entity.RightHip, entity.RightKnee, entity.RightAnkle},
				TargetAngle: 180.0,
				Tolerance:   10.0,
				Weight:      2.5,
			},
			{
				Name:        "Left Arm Raised",
				Points:      [3]string{entity.LeftShoulder, entity.LeftElbow, entity.LeftWrist},
				TargetAngle: 180.0,
				Tolerance:   10.0,
				Weight:      1.5,
			},
			{
				Name:        "Right Arm Raised",
				Points:      [3]string{entity.RightShoulder, entity.RightElbow, entity.RightWrist},
				TargetAngle: 180.0,
				Tolerance:   10.0,
				Weight:      1.5,
			},
			{
				Name:        "Shoulders Level",
				Points:      [3]string{entity.LeftShoulder, entity.LeftHip, entity.RightShoulder},
				TargetAngle: 180.0,
				Tolerance:   10.0,
				Weight:      1.5,
			},
			{
				Name:        "Arms Overhead (Left)",
				Points:      [3]string{entity.LeftElbow, entity.LeftShoulder, entity.LeftHip},
				TargetAngle: 180.0,
				Tolerance:   15.0,
				Weight:      2.0,
			},
			{
				Name:        "Arms Overhead (Right)",
				Points:      [3]string{entity.RightElbow, entity.RightShoulder, entity.RightHip},
				TargetAngle: 180.0,
				Tolerance:   15.0,
				Weight:      2.0,
			},
		},
	},

	"Warrior_I_Pose_or_Virabhadrasana_I_side": {
		PoseName: "Warrior_I_Pose_or_Virabhadrasana_I_",
		View:     "side",
		RequiredKeypoints: []string{
			entity.Nose, entity.LeftShoulder, entity.LeftElbow, entity.LeftWrist,
			entity.LeftHip, entity.LeftKnee, entity.LeftAnkle,
		},
		RequiredAngles: []AngleDefinition{
			{
				Name:        "Front Knee",
				Points:      [3]string{entity.LeftHip, entity.LeftKnee, entity.LeftAnkle},
				TargetAngle: 90.0,
				Tolerance:   15.0,
				Weight:      3.0,
			},
			{
				Name:        "Torso Upright",
				Points:      [3]string{entity.LeftShoulder, entity.LeftHip, entity.LeftKnee},
				TargetAngle: 160.0, // slight forward lean
				Tolerance:   15.0,
				Weight:      2.5,
			},
			{
				Name:        "Arm Overhead",
				Points:      [3]string{entity.LeftElbow, entity.LeftShoulder, entity.LeftHip},
				TargetAngle: 180.0,
				Tolerance:   15.0,
				Weight:      2.0,
			},
			{
				Name:        "Arm Straight",
				Points:      [3]string{entity.LeftShoulder, entity.LeftElbow, entity.LeftWrist},
				TargetAngle: 180.0,
				Tolerance:   10.0,
				Weight:      1.5,
			},
		},
	},

	"Downward-Facing_Dog_pose_or_Adho_Mukha_Svanasana_side": {
		PoseName: "Downward-Facing_Dog_pose_or_Adho_Mukha_Svanasana_",
		View:     "side",
		RequiredKeypoints: []string{
			entity.LeftWrist, entity.LeftElbow, entity.LeftShoulder,
			entity.LeftHip, entity.LeftKnee, entity.LeftAnkle,
		},
		RequiredAngles: []AngleDefinition{
			{
				Name:        "Inverted V (Shoulder Angle)",
				Points:      [3]string{entity.LeftWrist, entity.LeftShoulder, entity.LeftHip},
				TargetAngle: 90.0,
				Tolerance:   15.0,
				Weight:      3.0,
			},
			{
				Name:        "Hip Angle",
				Points:      [3]string{entity.LeftShoulder, entity.LeftHip, entity.LeftKnee},
				TargetAngle: 90.0,
				Tolerance:   15.0,
				Weight:      3.0,
			},
			{
				Name:        "Arm Straight",
				Points:      [3]string{entity.LeftWrist, entity.LeftElbow, entity.LeftShoulder},
				TargetAngle: 180.0,
				Tolerance:   10.0,
				Weight:      2.0,
			},
			{
				Name:        "Leg Straight",
				Points:      [3]string{entity.LeftHip, entity.LeftKnee, entity.LeftAnkle},
				TargetAngle: 180.0,
				Tolerance:   10.0,
				Weight:      2.0,
			},
		},
	},

	"Plank_Pose_or_Kumbhakasana_side": {
		PoseName: "Plank_Pose_or_Kumbhakasana_",
		View:     "side",
		RequiredKeypoints: []string{
			entity.Nose, entity.LeftShoulder, entity.LeftElbow, entity.LeftWrist,
			entity.LeftHip, entity.LeftKnee, entity.LeftAnkle,
		},
		RequiredAngles: []AngleDefinition{
			{
				Name:        "Body Straight Line",
				Points:      [3]string{entity.LeftShoulder, entity.LeftHip, entity.LeftAnkle},
				TargetAngle: 180.0,
				Tolerance:   5.0,
				Weight:      3.5, // most critical
			},
			{
				Name:        "Arm Position",
				Points:      [3]string{entity.LeftWrist, entity.LeftElbow, entity.LeftShoulder},
				TargetAngle: 180.0,
				Tolerance:   10.0,
				Weight:      2.0,
			},
			{
				Name:        "Shoulder Over Wrists",
				Points:      [3]string{entity.LeftWrist, entity.LeftShoulder, entity.LeftHip},
				TargetAngle: 90.0,
				Tolerance:   10.0,
				Weight:      2.0,
			},
			{
				Name:        "Leg Straight",
				Points:      [3]string{entity.LeftHip, entity.LeftKnee, entity.LeftAnkle},
				TargetAngle: 180.0,
				Tolerance:   5.0,
				Weight:      1.5,
			},
		},
	},

	"Mountain_Pose_or_Tadasana_front": {
		PoseName: "Mountain_Pose_or_Tadasana_",
		View:     "front",
		RequiredKeypoints: []string{
			entity.Nose, entity.LeftShoulder, entity.RightShoulder,
			entity.LeftHip, entity.RightHip,
			entity.LeftKnee, entity.RightKnee,
			entity.LeftAnkle, entity.RightAnkle,
		},
		RequiredAngles: []AngleDefinition{
			{
				Name:        "Left Leg Straight",
				Points:      [3]string{entity.LeftHip, entity.LeftKnee, entity.LeftAnkle},
				TargetAngle: 180.0,
				Tolerance:   5.0,
				Weight:      2.5,
			},
			{
				Name:        "Right Leg Straight",
				Points:      [3]string{entity.RightHip, entity.RightKnee, entity.RightAnkle},
				TargetAngle: 180.0,
				Tolerance:   5.0,
				Weight:      2.5,
			},
			{
				Name:        "Shoulders Level",
				Points:      [3]string{entity.LeftShoulder, entity.LeftHip, entity.RightShoulder},
				TargetAngle: 180.0,
				Tolerance:   5.0,
				Weight:      2.0,
			},
			{
				Name:        "Hips Level",
				Points:      [3]string{entity.LeftHip, entity.RightHip, entity.RightKnee},
				TargetAngle: 180.0,
				Tolerance:   5.0,
				Weight:      2.0,
			},
		},
	},

	"Child_Pose_or_Balasana_side": {
		PoseName: "Child_Pose_or_Balasana_",
		View:     "side",
		RequiredKeypoints: []string{
			entity.Nose, entity.LeftShoulder, entity.LeftElbow, entity.LeftWrist,
			entity.LeftHip, entity.LeftKnee, entity.LeftAnkle,
		},
		RequiredAngles: []AngleDefinition{
			{
				Name:        "Hip Flexion",
				Points:      [3]string{entity.LeftShoulder, entity.LeftHip, entity.LeftKnee},
				TargetAngle: 45.0, // deep fold
				Tolerance:   15.0,
				Weight:      3.0,
			},
			{
				Name:        "Knee Bend",
				Points:      [3]string{entity.LeftHip, entity.LeftKnee, entity.LeftAnkle},
				TargetAngle: 45.0, // sitting on heels
				Tolerance:   20.0,
				Weight:      2.5,
			},
			{
				Name:        "Arms Extended",
				Points:      [3]string{entity.LeftWrist, entity.LeftShoulder, entity.LeftHip},
				TargetAngle: 30.0, // arms reaching forward
				Tolerance:   20.0,
				Weight:      1.5,
			},
		},
	},
}
