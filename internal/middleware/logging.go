package middleware

import (
	"YogaPoseAPI/pkg/log"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
)

const maxLoggedBody = 2048

func LoggerConfig() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID, ok := c.Locals("X-Request-ID").(string)
		if !ok || requestID == "" {
			requestID = "unknown"
		}

		c.Locals("request_id", requestID)

		err := c.Next()

		latency := time.Since(start)
		status := c.Response().StatusCode()

		if err != nil && status == fiber.StatusInternalServerError {
			return err
		}

		logFields := log.Fields{
			"request_id":    requestID,
			"method":        c.Method(),
			"path":          c.Path(),
			"status":        status,
			"latency_ms":    latency.Milliseconds(),
			"ip":            c.IP(),
			"host":          c.Hostname(),
			"user_agent":    c.Get("User-Agent"),
			"response_size": len(c.Response().Body()),
		}

		if len(c.Request().Body()) > 0 {
			logFields["request_body"] = sanitizeRequestBody(string(c.Request().Body()))
		}

		if status >= 500 {
			log.Error(logFields, "Server error")
		} else if status >= 400 {
			log.Warn(logFields, "Client error")
		} else {
			log.Info(logFields, "Success")
		}

		return err
	}
}

// sanitizeRequestBody keeps log lines readable: base64 frames are huge and
// keypoint payloads can run long, so bulky fields are elided and the rest
// truncated.
func sanitizeRequestBody(body string) string {
	var jsonBody map[string]interface{}
	if err := json.Unmarshal([]byte(body), &jsonBody); err != nil {
		return "[non-JSON body]"
	}

	bulkyFields := []string{"image_base64", "keypoints"}

	for _, field := range bulkyFields {
		if _, exists := jsonBody[field]; exists {
			jsonBody[field] = "[ELIDED]"
		}
	}

	sanitized, err := json.Marshal(jsonBody)
	if err != nil {
		return "[sanitization-failed]"
	}

	if len(sanitized) > maxLoggedBody {
		return string(sanitized[:maxLoggedBody]) + "...[truncated]"
	}

	return string(sanitized)
}
