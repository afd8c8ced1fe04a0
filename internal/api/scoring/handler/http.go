package scoringHandler

import (
	scoringService "YogaPoseAPI/internal/api/scoring/service"
	"YogaPoseAPI/internal/middleware"
	"YogaPoseAPI/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type ScoringHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	scoringService scoringService.IScoringService
	utils          utils.IUtils
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ss scoringService.IScoringService,
	utils utils.IUtils,
) *ScoringHandler {
	return &ScoringHandler{
		scoringService: ss,
		log:            log,
		validator:      validator,
		middleware:     middleware,
		utils:          utils,
	}
}

func (h *ScoringHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	pose := srv.Group("/pose")
	pose.Post("/score", h.middleware.NewRateLimiter, h.ScorePose)
	pose.Post("/score/frame", h.middleware.NewRateLimiter, h.ScoreFrame)
	pose.Get("/score/:report_id", h.GetReport)
	pose.Get("/history", h.GetHistory)
	pose.Get("/configs", h.ListPoses)
	pose.Get("/configs/:pose_id", h.GetPoseConfig)

	live := pose.Group("/live")
	live.Use("/ws", wsMiddleware)
	live.Get("/ws", websocket.New(h.handleLiveWebSocket))
}
