package scoringHandler

import (
	"YogaPoseAPI/internal/api/scoring"
	"encoding/json"
	"time"

	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
)

// handleLiveWebSocket scores a stream of camera frames against one pose.
// Binary messages carry frames; a text message carrying a LiveTargetMessage
// switches the session to another pose. The initial pose comes from the
// pose_id query parameter.
func (h *ScoringHandler) handleLiveWebSocket(c *websocket.Conn) {
	h.log.Info("Live scoring WebSocket client connected")
	defer h.log.Info("Live scoring WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		h.log.Debug("Received ping, sending pong")
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	poseID := c.Query("pose_id")
	if poseID != "" && !h.scoringService.HasConfig(poseID) {
		if err := c.WriteJSON(map[string]string{"error": "no angle configuration found for pose: " + poseID}); err != nil {
			h.log.Errorf("Error sending error response: %v", err)
		}
		poseID = ""
	}

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Live scoring WebSocket error: %v", err)
			} else {
				h.log.Info("Live scoring WebSocket connection closed")
			}
			break
		}

		if messageType == websocket.TextMessage {
			var target scoring.LiveTargetMessage
			if err := json.Unmarshal(message, &target); err != nil {
				h.log.Errorf("Error parsing live target message: %v", err)
				continue
			}

			if !h.scoringService.HasConfig(target.PoseID) {
				if err := c.WriteJSON(map[string]string{"error": "no angle configuration found for pose: " + target.PoseID}); err != nil {
					h.log.Errorf("Error sending error response: %v", err)
					break
				}
				continue
			}

			poseID = target.PoseID
			h.log.Infof("Live scoring session retargeted to %s", poseID)
		} else if messageType == websocket.BinaryMessage {
			if poseID == "" {
				if err := c.WriteJSON(map[string]string{"error": "no target pose selected"}); err != nil {
					h.log.Errorf("Error sending error response: %v", err)
					break
				}
				continue
			}

			record, err := h.scoringService.ScoreFrame(context.Background(), poseID, message)
			if err != nil {
				h.log.Errorf("Error scoring live frame: %v", err)
				if writeErr := c.WriteJSON(map[string]string{"error": err.Error()}); writeErr != nil {
					h.log.Errorf("Error sending error response: %v", writeErr)
					break
				}
				continue
			}

			if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
				h.log.Errorf("Error setting write deadline: %v", err)
				break
			}

			if err := c.WriteJSON(scoring.ScoreResponse{Data: *record}); err != nil {
				h.log.Errorf("Error writing JSON response: %v", err)
				break
			}

			if err := c.SetWriteDeadline(time.Time{}); err != nil {
				h.log.Errorf("Error resetting write deadline: %v", err)
				break
			}
		} else {
			h.log.Warnf("Received unexpected message type: %d", messageType)
		}
	}
}
