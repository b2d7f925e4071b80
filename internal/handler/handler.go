package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/carehome-dev/care-journal/backend/internal/config"
	"github.com/carehome-dev/care-journal/backend/internal/domain"
	"github.com/carehome-dev/care-journal/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.currentUser)

		r.Get("/my-info", h.GetMyInfo)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.GetAllUsers) // 员工列表所有人可见，选择登录账号时需要
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateUser)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
				r.Patch("/", h.UpdateUser)
				r.Delete("/", h.DeleteUser)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.GetAllCategories)
			r.Group(func(r chi.Router) {
				r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
				r.Post("/", h.CreateCategory)
				r.Patch("/{id}", h.UpdateCategory)
				r.Delete("/{id}", h.DeleteCategory)
			})
		})

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/", h.GetSchedule)
			r.Post("/", h.CreateScheduleEntry)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/generate", h.GenerateRoster)
			r.Route("/{id}", func(r chi.Router) {
				r.With(h.preventInactiveStaff).Post("/request-coverage", h.RequestCoverage)
				r.With(h.preventInactiveStaff).Post("/express-interest", h.ExpressInterest)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/approve-swap", h.ApproveSwap)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/reject-interest", h.RejectInterest)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/assign", h.AssignStaff)
				r.Delete("/", h.DeleteScheduleEntry)
			})
		})

		r.Route("/shifts", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Get("/", h.GetAllShifts)
			r.Get("/mine", h.GetMyShifts)
			r.With(h.preventInactiveStaff).Post("/clock-in", h.ClockIn)
			r.With(h.preventInactiveStaff).Post("/clock-out", h.ClockOut)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", h.GetAllMessages)
			r.Get("/unread", h.GetUnreadMessages)
			r.Post("/", h.CreateMessage)
			r.Post("/{id}/acknowledge", h.AcknowledgeMessage)
		})

		r.Route("/journal", func(r chi.Router) {
			r.Get("/", h.GetJournalEntries)
			r.Post("/", h.CreateJournalEntry)
			r.Put("/{id}", h.ReplaceJournalEntry)
		})

		r.Route("/timesheet", func(r chi.Router) {
			r.Get("/", h.GetMyTimesheet)
			r.Post("/export", h.ExportMyTimesheet)
		})
	})
}
