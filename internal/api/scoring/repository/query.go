package scoringRepository

const (
	querySaveReport = `
		INSERT INTO score_reports (
			id,
			pose_id,
			view,
			overall_score,
			angle_score,
			connection_score,
			report,
			created_at
		) VALUES (
			:id,
			:pose_id,
			:view,
			:overall_score,
			:angle_score,
			:connection_score,
			:report,
			:created_at
		)
	`

	queryGetReportByID = `
		SELECT
			id,
			pose_id,
			view,
			report,
			created_at
		FROM score_reports
		WHERE id = :id
	`

	queryGetReportsByPose = `
		SELECT
			id,
			pose_id,
			view,
			report,
			created_at
		FROM score_reports
		WHERE pose_id = :pose_id
		ORDER BY created_at DESC
		LIMIT :limit
	`
)
