package main

import (
	"fmt"
	"net/http"

	"github.com/staffhub-hr/hr-backend-go/internal/config"
	appHTTP "github.com/staffhub-hr/hr-backend-go/internal/handler/http"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/cron"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/database"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/email"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/geocode"
	"github.com/staffhub-hr/hr-backend-go/internal/pkg/jwt"
	"github.com/staffhub-hr/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub-hr/hr-backend-go/internal/service/attendance"
	authService "github.com/staffhub-hr/hr-backend-go/internal/service/auth"
	leaveBalanceService "github.com/staffhub-hr/hr-backend-go/internal/service/leavebalance"
	leaveRequestService "github.com/staffhub-hr/hr-backend-go/internal/service/leaverequest"
	payslipService "github.com/staffhub-hr/hr-backend-go/internal/service/payslip"
	reportService "github.com/staffhub-hr/hr-backend-go/internal/service/report"
	staffService "github.com/staffhub-hr/hr-backend-go/internal/service/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	staffRepo := postgresql.NewStaffRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	emailSvc := email.NewEmailService(cfg.SMTP)
	geocoder := geocode.NewNominatimResolver(cfg.Geocode.BaseURL, cfg.Geocode.Timeout)

	authSvc := authService.NewAuthService(cfg.Auth, jwtService)
	staffSvc := staffService.NewStaffService(staffRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, staffRepo, geocoder)
	leaveRequestSvc := leaveRequestService.NewLeaveRequestService(db, leaveRequestRepo)
	leaveBalanceSvc := leaveBalanceService.NewLeaveBalanceService(leaveBalanceRepo)
	reportSvc := reportService.NewReportService(staffRepo, attendanceRepo)
	payslipSvc := payslipService.NewPayslipService(emailSvc, cfg.Payslip.SalaryWorkbookPath)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Staff:        appHTTP.NewStaffHandler(staffSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		LeaveRequest: appHTTP.NewLeaveRequestHandler(leaveRequestSvc),
		LeaveBalance: appHTTP.NewLeaveBalanceHandler(leaveBalanceSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
		Payslip:      appHTTP.NewPayslipHandler(payslipSvc),
	})

	if cfg.Cron.AutoLeaveReset {
		scheduler := cron.NewScheduler()
		scheduler.AddJob("monthly-leave-reset", cfg.Cron.AutoLeaveResetInterval, leaveBalanceSvc.ResetMonthlyJob)
		scheduler.Start()
		defer scheduler.Stop()
	}

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
