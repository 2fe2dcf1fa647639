package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	"github.com/MikeMC777/orders-payments/internal/config"
	"github.com/MikeMC777/orders-payments/internal/docs"
	"github.com/MikeMC777/orders-payments/internal/healthz"
	"github.com/MikeMC777/orders-payments/internal/httpx"
	"github.com/MikeMC777/orders-payments/internal/payment"
)

//go:generate swag init -g main.go -d ./,../../internal/healthz -o ../../internal/docs --instanceName payments --outputTypes go --parseDependency --parseInternal

// @title        Payment Gateway API
// @version      1.0
// @description  Simulated card payment gateway.
// @BasePath     /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func gatewayOptions(cfg config.Gateway) (payment.Options, error) {
	limit, err := decimal.NewFromString(cfg.DeclineAbove)
	if err != nil {
		return payment.Options{}, fmt.Errorf("GATEWAY_DECLINE_ABOVE %q: %w", cfg.DeclineAbove, err)
	}
	return payment.Options{
		ProcessDelay: cfg.ProcessDelay,
		RefundDelay:  cfg.RefundDelay,
		DeclineAbove: limit,
	}, nil
}

func newRouter(gw *payment.Gateway) *gin.Engine {
	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(), gin.Recovery())

	r.GET("/health", healthz.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(docs.SwaggerInfopayments.InstanceName())))

	api := r.Group("/api/payments")
	api.POST("/process", processPaymentHandler(gw))
	api.POST("/validate-card", validateCardHandler())
	api.GET("/:id", getPaymentHandler(gw))
	api.POST("/:id/refund", refundPaymentHandler(gw))
	return r
}

func run() error {
	cfg, err := config.Load("payment-gateway")
	if err != nil {
		return err
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	opts, err := gatewayOptions(cfg.Gateway)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.PaymentSvcAddr,
		Handler:           newRouter(payment.NewGateway(opts)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("payment-gateway listening on %s (decline above %s)", srv.Addr, opts.DeclineAbove)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Printf("payment-gateway shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	if cfg.GRPCHealthAddr != "" {
		g.Go(func() error { return healthz.ServeGRPC(gctx, cfg.GRPCHealthAddr, cfg.ServiceName) })
	}
	return g.Wait()
}
