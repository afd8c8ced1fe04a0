package scoring

import (
	"YogaPoseAPI/pkg/response"
	"net/http"
)

var (
	ErrUnknownPose         = response.NewError(http.StatusNotFound, "no angle configuration found for pose")
	ErrReportNotFound      = response.NewError(http.StatusNotFound, "score report not found")
	ErrDetectorUnavailable = response.NewError(http.StatusServiceUnavailable, "pose detector service unavailable")
	ErrNoKeypointsDetected = response.NewError(http.StatusUnprocessableEntity, "no keypoints detected in frame")
	ErrInternalServerError = response.NewError(http.StatusInternalServerError, "internal server error")
	ErrBadRequest          = response.NewError(http.StatusBadRequest, "bad request")
)
