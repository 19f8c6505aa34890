package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub-hr/hr-backend-go/internal/config"
	"github.com/staffhub-hr/hr-backend-go/internal/handler/http/middleware"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Staff        StaffHandler
	Attendance   AttendanceHandler
	LeaveRequest LeaveRequestHandler
	LeaveBalance LeaveBalanceHandler
	Report       ReportHandler
	Payslip      PayslipHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Batch-Summary"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
		})

		// Punch endpoints stay open: the attendance kiosk has no login.
		r.Route("/attendance", func(r chi.Router) {
			r.Post("/save", h.Attendance.Save)
			r.Get("/all", h.Attendance.List)
			r.Get("/today", h.Attendance.ListToday)
			r.Post("/getByIdDate", h.Attendance.GetByIDDate)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Use(middleware.AdminOnly)
				r.Get("/export", h.Attendance.Export)
			})
		})

		r.Route("/staffs", func(r chi.Router) {
			r.Get("/", h.Staff.List)
			r.Post("/getById", h.Staff.GetByID)
			r.Get("/search/{last3digits}", h.Staff.Search)

			// Roster mutations are admin only
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Use(middleware.AdminOnly)
				r.Post("/", h.Staff.Create)
				r.Put("/{id}", h.Staff.Update)
				r.Delete("/{id}", h.Staff.Delete)
			})
		})

		r.Route("/leave-requests", func(r chi.Router) {
			r.Post("/create", h.LeaveRequest.Create)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/pending", h.LeaveRequest.ListPending)
				r.Get("/approved", h.LeaveRequest.ListApproved)
				r.Get("/rejected", h.LeaveRequest.ListRejected)
				r.Put("/update-status", h.LeaveRequest.UpdateStatus)
				r.Get("/export", h.LeaveRequest.Export)
			})
		})

		// Requires admin
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.AdminOnly)

			r.Route("/leave-balance", func(r chi.Router) {
				r.Get("/", h.LeaveBalance.List)
				r.Post("/add", h.LeaveBalance.Add)
				r.Put("/edit/{id}", h.LeaveBalance.Edit)
				r.Delete("/remove/{id}", h.LeaveBalance.Remove)
				r.Post("/reset-monthly", h.LeaveBalance.ResetMonthly)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/monthly", h.Report.Monthly)
				r.Get("/monthly/export", h.Report.ExportMonthly)
			})

			r.Route("/payslip", func(r chi.Router) {
				r.Post("/compute", h.Payslip.Compute)
				r.Post("/send-payslip-email", h.Payslip.SendPayslipEmail)
				r.Get("/merge", h.Payslip.Merge)
				r.Post("/merge", h.Payslip.Merge)
			})
		})
	})

	return r
}
