package scoringRepository

import (
	"YogaPoseAPI/internal/api/scoring"
	"YogaPoseAPI/internal/entity"
	contextPkg "YogaPoseAPI/pkg/context"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ScoreReportDB struct {
	ID        sql.NullString `db:"id"`
	PoseID    sql.NullString `db:"pose_id"`
	View      sql.NullString `db:"view"`
	Report    []byte         `db:"report"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *reportRepository) SaveReport(c context.Context, record entity.ScoreRecord) error {
	requestID := contextPkg.GetRequestID(c)

	reportJSON, err := json.Marshal(record.Report)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to marshal report for SaveReport")
		return err
	}

	argsKV := map[string]interface{}{
		"id":               record.ID,
		"pose_id":          record.PoseID,
		"view":             record.View,
		"overall_score":    record.Report.OverallScore,
		"angle_score":      record.Report.AngleScore,
		"connection_score": record.Report.ConnectionScore,
		"report":           reportJSON,
		"created_at":       record.CreatedAt,
	}

	query, args, err := sqlx.Named(querySaveReport, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for SaveReport")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when saving score report")

		return err
	}

	return nil
}

func (r *reportRepository) GetReportByID(c context.Context, id string) (entity.ScoreRecord, error) {
	requestID := contextPkg.GetRequestID(c)
	var row ScoreReportDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetReportByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReportByID named query preparation err")

		return entity.ScoreRecord{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"report_id":  id,
			}).Warn("GetReportByID no rows found")
			return entity.ScoreRecord{}, scoring.ErrReportNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReportByID execution err")
		return entity.ScoreRecord{}, err
	}

	return r.makeScoreRecord(requestID, row)
}

func (r *reportRepository) GetReportsByPose(c context.Context, poseID string, limit int) ([]entity.ScoreRecord, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []ScoreReportDB

	argsKV := map[string]interface{}{
		"pose_id": poseID,
		"limit":   limit,
	}

	query, args, err := sqlx.Named(queryGetReportsByPose, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReportsByPose named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetReportsByPose execution err")
		return nil, err
	}

	result := make([]entity.ScoreRecord, 0, len(rows))
	for _, row := range rows {
		record, err := r.makeScoreRecord(requestID, row)
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}

	return result, nil
}

func (r *reportRepository) makeScoreRecord(requestID string, row ScoreReportDB) (entity.ScoreRecord, error) {
	var report entity.AccuracyReport
	if err := json.Unmarshal(row.Report, &report); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"report_id":  row.ID.String,
			"error":      err.Error(),
		}).Error("Failed to unmarshal stored score report")
		return entity.ScoreRecord{}, err
	}

	return entity.ScoreRecord{
		ID:        row.ID.String,
		PoseID:    row.PoseID.String,
		View:      row.View.String,
		Report:    report,
		CreatedAt: row.CreatedAt,
	}, nil
}
