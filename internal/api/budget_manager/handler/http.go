package budgetHandler

import (
	budgetService "SakuBot/internal/api/budget_manager/service"
	"SakuBot/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BudgetHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	budgetService budgetService.IBudgetService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	budgetService budgetService.IBudgetService,
) *BudgetHandler {
	return &BudgetHandler{
		log:           log,
		validator:     validate,
		middleware:    middleware,
		budgetService: budgetService,
	}
}

func (h *BudgetHandler) Start(srv fiber.Router) {
	budget := srv.Group("/budget")

	budget.Post("/transactions", h.middleware.NewTokenMiddleware, h.CreateTransaction)
	budget.Get("/transactions/period", h.middleware.NewTokenMiddleware, h.GetTransactionsByPeriod)
	budget.Get("/stats", h.middleware.NewTokenMiddleware, h.GetPeriodStats)
	budget.Get("/transactions/filter", h.middleware.NewTokenMiddleware, h.GetTransactionsByTypeAndCategory)
	budget.Get("/transactions/:id", h.middleware.NewTokenMiddleware, h.GetTransactionByID)
	budget.Put("/transactions/:id", h.middleware.NewTokenMiddleware, h.UpdateTransaction)
	budget.Delete("/transactions/:id", h.middleware.NewTokenMiddleware, h.DeleteTransaction)

	budget.Post("/goals", h.middleware.NewTokenMiddleware, h.CreateSavingGoal)
	budget.Get("/goals", h.middleware.NewTokenMiddleware, h.GetSavingGoals)
	budget.Patch("/goals/:id", h.middleware.NewTokenMiddleware, h.UpdateSavingGoalProgress)
	budget.Delete("/goals/:id", h.middleware.NewTokenMiddleware, h.DeleteSavingGoal)

	budget.Put("/wallet", h.middleware.NewTokenMiddleware, h.UpdateWalletSettings)
	budget.Get("/wallet", h.middleware.NewTokenMiddleware, h.GetWalletSettings)
}
