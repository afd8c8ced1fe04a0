package scoringHandler

import (
	"YogaPoseAPI/internal/api/scoring"
	contextPkg "YogaPoseAPI/pkg/context"
	"YogaPoseAPI/pkg/handlerUtil"
	"YogaPoseAPI/pkg/log"
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ScoringHandler) ScorePose(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing pose scoring request")

	var req scoring.ScoreRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	record, err := h.scoringService.Score(c, req.PoseName, req.View, req.ToKeypointSet())
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "score_pose")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id":    requestID,
			"path":          ctx.Path(),
			"pose_id":       record.PoseID,
			"report_id":     record.ID,
			"overall_score": record.Report.OverallScore,
		}).Info("Pose scoring successful")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, scoring.ScoreResponse{
			Data: *record,
		})
	}
}

func (h *ScoringHandler) ScoreFrame(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing frame scoring request")

	var poseID string
	var base64Image string

	file, err := ctx.FormFile("image")
	if err == nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"file_name":  file.Filename,
			"file_size":  file.Size,
		}).Debug("Processing file upload")

		if err := h.utils.ValidateImageFile(file); err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "validate_image_file")
		}

		fileContent, err := file.Open()
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "open_file")
		}
		defer fileContent.Close()

		base64Image, err = h.utils.ConvertFileToBase64(fileContent)
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "convert_to_base64")
		}

		poseID = ctx.FormValue("pose_id")
		if poseID == "" {
			return errHandler.Handle(ctx, requestID, scoring.ErrBadRequest, ctx.Path(), "read_pose_id")
		}
	} else {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
		}).Debug("Processing JSON request")

		var req scoring.FrameScoreRequest
		if err := ctx.BodyParser(&req); err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
		}

		if err := h.validator.Struct(req); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}

		poseID = req.PoseID
		base64Image = req.ImageBase64
	}

	frame, err := base64.StdEncoding.DecodeString(base64Image)
	if err != nil {
		return errHandler.Handle(ctx, requestID, scoring.ErrBadRequest, ctx.Path(), "decode_image")
	}

	record, err := h.scoringService.ScoreFrame(c, poseID, frame)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "score_frame")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id":    requestID,
			"path":          ctx.Path(),
			"pose_id":       record.PoseID,
			"report_id":     record.ID,
			"overall_score": record.Report.OverallScore,
		}).Info("Frame scoring successful")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, scoring.ScoreResponse{
			Data: *record,
		})
	}
}

func (h *ScoringHandler) GetReport(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 5*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	reportID := ctx.Params("report_id")
	if reportID == "" {
		return errHandler.Handle(ctx, requestID, scoring.ErrBadRequest, ctx.Path(), "read_report_id")
	}

	record, err := h.scoringService.GetReport(c, reportID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_report")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, scoring.ScoreResponse{
			Data: *record,
		})
	}
}

func (h *ScoringHandler) GetHistory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 5*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	poseID := ctx.Query("pose_id")
	if poseID == "" {
		return errHandler.Handle(ctx, requestID, scoring.ErrBadRequest, ctx.Path(), "read_pose_id")
	}

	limit := ctx.QueryInt("limit", 20)

	records, err := h.scoringService.GetHistory(c, poseID, limit)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_history")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, scoring.HistoryResponse{
			Data: records,
		})
	}
}

func (h *ScoringHandler) ListPoses(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, scoring.PoseListResponse{
		Data: h.scoringService.ListConfiguredPoses(),
	})
}

func (h *ScoringHandler) GetPoseConfig(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	poseID := ctx.Params("pose_id")

	summary, err := h.scoringService.GetPoseSummary(poseID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_pose_config")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, scoring.PoseConfigResponse{
		Data: summary,
	})
}
