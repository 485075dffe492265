package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "loanbook-backend/internal/adapter/http"
	idemp "loanbook-backend/internal/adapter/middleware"
	"loanbook-backend/internal/adapter/repository/mysql"
	"loanbook-backend/internal/config"
	"loanbook-backend/internal/infrastructure/cache"
	"loanbook-backend/internal/infrastructure/db"
	borrowerUC "loanbook-backend/internal/usecase/borrower"
	loanUC "loanbook-backend/internal/usecase/loan"
	rateUC "loanbook-backend/internal/usecase/rate"
	transactionUC "loanbook-backend/internal/usecase/transaction"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	borrowerRepo := mysql.NewBorrowerRepository(gdb)
	rateRepo := mysql.NewRateRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	txRepo := mysql.NewTransactionRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	borrowerH := httpadp.NewBorrowerHandler(borrowerUC.NewUsecase(borrowerRepo))
	rateH := httpadp.NewRateHandler(rateUC.NewUsecase(rateRepo))
	loanH := httpadp.NewLoanHandler(loanUC.NewUsecase(loanRepo, rateRepo, uow))
	txH := httpadp.NewTransactionHandler(transactionUC.NewUsecase(loanRepo, txRepo, uow))
	h := httpadp.NewHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	// routes
	e.GET("/health", h.Health)

	e.POST("/borrowers", borrowerH.Register)
	e.GET("/borrowers", borrowerH.List)
	e.GET("/borrowers/:borrower_id", borrowerH.Get)
	e.PATCH("/borrowers/:borrower_id", borrowerH.Update)

	e.POST("/rates", rateH.Create)
	e.GET("/rates", rateH.List)
	e.GET("/rates/:rate_id", rateH.Get)
	e.PATCH("/rates/:rate_id", rateH.Update)

	e.POST("/loans", loanH.CreateLoan)
	e.GET("/loans", loanH.ListLoans)
	e.GET("/loans/:loan_id", loanH.GetLoan)
	e.PATCH("/loans/:loan_id", loanH.UpdateLoan)
	e.PUT("/loans/:loan_id/status", loanH.UpdateLoanStatus)

	// ledger postings are double-submit guarded
	idempTTL := time.Duration(cfg.IdempTTLSecs) * time.Second
	e.POST("/loans/:loan_id/transactions", txH.PostTransaction, idemp.IdempotencyMiddleware(rdb, idempTTL))
	e.GET("/loans/:loan_id/transactions", txH.ListTransactions)
	e.GET("/transactions/:transaction_id", txH.GetTransaction)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
