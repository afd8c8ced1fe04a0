package handlerUtil

import (
	"YogaPoseAPI/internal/api/scoring"
	"YogaPoseAPI/pkg/log"
	"YogaPoseAPI/pkg/response"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	// Scoring domain errors
	if errors.Is(err, scoring.ErrUnknownPose) {
		h.logger.WithFields(fields).Warn("No configuration for requested pose")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No angle configuration found for pose",
			"code":    "UNKNOWN_POSE",
		})
	}

	if errors.Is(err, scoring.ErrReportNotFound) {
		h.logger.WithFields(fields).Warn("Score report not found")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Score report not found",
			"code":    "REPORT_NOT_FOUND",
		})
	}

	if errors.Is(err, scoring.ErrDetectorUnavailable) {
		h.logger.WithFields(fields).Error("Pose detector service unavailable")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"message": "Pose detector service unavailable",
			"code":    "DETECTOR_UNAVAILABLE",
		})
	}

	if errors.Is(err, scoring.ErrNoKeypointsDetected) {
		h.logger.WithFields(fields).Warn("Detector returned no keypoints")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "No keypoints detected in frame",
			"code":    "NO_KEYPOINTS_DETECTED",
		})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithFields(fields).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
