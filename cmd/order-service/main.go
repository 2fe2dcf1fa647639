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
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/sync/errgroup"

	"github.com/MikeMC777/orders-payments/internal/config"
	"github.com/MikeMC777/orders-payments/internal/docs"
	"github.com/MikeMC777/orders-payments/internal/healthz"
	"github.com/MikeMC777/orders-payments/internal/httpx"
	"github.com/MikeMC777/orders-payments/internal/order"
	"github.com/MikeMC777/orders-payments/internal/upstream"
)

//go:generate swag init -g main.go -d ./,../../internal/healthz -o ../../internal/docs --instanceName orders --outputTypes go --parseDependency --parseInternal

// @title        Order Service API
// @version      1.0
// @description  Orders stored locally or in the external Order API, paid through the payment gateway.
// @BasePath     /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func newClient(u config.Upstream, userAgent string) (*upstream.Client, error) {
	c, err := upstream.New(u.BaseURL,
		upstream.WithTimeout(u.Timeout),
		upstream.WithInterceptors(upstream.Headers(userAgent, u.APIKey), upstream.Logging()),
	)
	if err != nil {
		return nil, fmt.Errorf("upstream %s: %w", u.BaseURL, err)
	}
	return c, nil
}

func newRouter(repo order.Repository, orders *upstream.OrderClient, payments *upstream.PaymentClient) *gin.Engine {
	r := gin.New()
	r.Use(httpx.RequestID(), httpx.Logger(), gin.Recovery())

	r.GET("/health", healthz.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(docs.SwaggerInfoorders.InstanceName())))

	api := r.Group("/api")
	api.POST("/orders", createOrderHandler(repo))
	api.POST("/orders/place", placeOrderHandler(repo, payments))
	api.GET("/orders", listOrdersHandler(orders))
	api.GET("/orders/:id", getOrderHandler(repo))
	api.PUT("/orders/:id", updateOrderHandler(orders))
	api.PATCH("/orders/:id/status", updateOrderStatusHandler(orders))
	api.DELETE("/orders/:id", deleteOrderHandler(orders))
	api.GET("/customers/:customerId/orders", customerOrdersHandler(orders))
	return r
}

func run() error {
	cfg, err := config.Load("order-service")
	if err != nil {
		return err
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	orderAPI, err := newClient(cfg.OrderAPI, cfg.UserAgent())
	if err != nil {
		return err
	}
	paymentAPI, err := newClient(cfg.PaymentAPI, cfg.UserAgent())
	if err != nil {
		return err
	}
	orders := upstream.NewOrderClient(orderAPI)
	payments := upstream.NewPaymentClient(paymentAPI)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepo(ctx, cfg.Store, orders)
	if err != nil {
		return err
	}
	defer closeRepo()

	srv := &http.Server{
		Addr:              cfg.OrderSvcAddr,
		Handler:           newRouter(repo, orders, payments),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("order-service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Printf("order-service shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	if cfg.GRPCHealthAddr != "" {
		g.Go(func() error { return healthz.ServeGRPC(gctx, cfg.GRPCHealthAddr, cfg.ServiceName) })
	}
	return g.Wait()
}
