package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "microfinance-backend/internal/adapter/http"
	appmw "microfinance-backend/internal/adapter/middleware"
	"microfinance-backend/internal/adapter/repository/mysql"
	"microfinance-backend/internal/config"
	"microfinance-backend/internal/infrastructure/cache"
	"microfinance-backend/internal/infrastructure/db"
	approvalUC "microfinance-backend/internal/usecase/approval"
	authUC "microfinance-backend/internal/usecase/auth"
	borrowerUC "microfinance-backend/internal/usecase/borrower"
	loanUC "microfinance-backend/internal/usecase/loan"
	orgUC "microfinance-backend/internal/usecase/org"
	repaymentUC "microfinance-backend/internal/usecase/repayment"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	// repositories
	loans := mysql.NewLoanRepository(gdb)
	borrowers := mysql.NewBorrowerRepository(gdb)
	org := mysql.NewOrgRepository(gdb)
	reports := mysql.NewReportRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	// usecases
	loanUsecase := loanUC.NewUsecase(loans)
	approvalUsecase := approvalUC.NewUsecase(loans, tx)
	repaymentUsecase := repaymentUC.NewUsecase(tx, repaymentUC.Options{
		PenaltyResetOnCatchup: cfg.PenaltyResetOnCatchup,
	})
	borrowerUsecase := borrowerUC.NewUsecase(borrowers)
	orgUsecase := orgUC.NewUsecase(org)
	authUsecase := authUC.NewUsecase(cfg.AdminUser, cfg.AdminPass, cfg.JWTSecret)

	// handlers
	h := httpadp.NewHandler(gdb)
	loanHandler := httpadp.NewLoanHandler(loanUsecase, reports)
	approvalHandler := httpadp.NewApprovalHandler(approvalUsecase)
	repaymentHandler := httpadp.NewRepaymentHandler(repaymentUsecase, reports)
	directoryHandler := httpadp.NewDirectoryHandler(borrowerUsecase, orgUsecase)
	reportHandler := httpadp.NewReportHandler(reports)
	authHandler := httpadp.NewAuthHandler(authUsecase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover(), echomw.CORS())

	idemp := appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	api := e.Group("/api")
	api.GET("/health", h.Health)

	api.POST("/calculate-emi", loanHandler.CalculateEMI)

	api.GET("/loans", loanHandler.ListLoans)
	api.POST("/loans", loanHandler.CreateLoan, idemp)
	api.GET("/loans/:loan_id", loanHandler.GetLoan)
	api.GET("/loans/:loan_id/repayments", repaymentHandler.LoanSchedule)
	api.PUT("/loans/:loan_id/approve", approvalHandler.ApproveLoan, idemp)
	api.PUT("/loans/:loan_id/reject", approvalHandler.RejectLoan, idemp)

	api.GET("/repayments", repaymentHandler.ListRepayments)
	api.PUT("/repayments/:repayment_id/pay", repaymentHandler.PostPayment, idemp)

	api.GET("/borrowers", directoryHandler.ListBorrowers)
	api.POST("/borrowers", directoryHandler.CreateBorrower)
	api.GET("/guarantors", directoryHandler.ListGuarantors)
	api.POST("/guarantors", directoryHandler.CreateGuarantor)
	api.PUT("/guarantors/:guarantor_id", directoryHandler.UpdateGuarantor)
	api.DELETE("/guarantors/:guarantor_id", directoryHandler.DeleteGuarantor)
	api.GET("/staff", directoryHandler.ListStaff)
	api.POST("/staff", directoryHandler.CreateStaff)
	api.GET("/branches", directoryHandler.ListBranches)
	api.GET("/regions", directoryHandler.ListRegions)
	api.POST("/regions", directoryHandler.CreateRegion)

	api.GET("/analytics/portfolio-summary", reportHandler.PortfolioSummary)
	api.GET("/analytics/defaulters", reportHandler.Defaulters)
	api.GET("/analytics/regional", reportHandler.Regional)
	api.GET("/analytics/nested-query", reportHandler.OverdueBorrowers)
	api.GET("/analytics/join-query", reportHandler.ApprovedLoans)
	api.GET("/analytics/aggregate-query", reportHandler.RegionAggregates)

	api.POST("/admin/login", authHandler.Login)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
