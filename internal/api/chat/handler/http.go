package chatHandler

import (
	chatService "SakuBot/internal/api/chat/service"
	"SakuBot/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	chatService chatService.IChatService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	chatService chatService.IChatService,
) *ChatHandler {
	return &ChatHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		chatService: chatService,
	}
}

func (h *ChatHandler) Start(srv fiber.Router) {
	chat := srv.Group("/chat")

	chat.Post("/message", h.middleware.NewTokenMiddleware, h.SendMessage)
	chat.Post("/nlp/test", h.middleware.NewTokenMiddleware, h.TestNLP)
	chat.Get("/history", h.middleware.NewTokenMiddleware, h.GetHistory)
}
