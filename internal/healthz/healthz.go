// Package healthz exposes liveness for both services: an HTTP /health route
// and an optional gRPC health-checking server.
package healthz

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const StatusHealthy = "Healthy"

// swagger:model HealthResponse
type Response struct {
	Status    string    `json:"status"    example:"Healthy"`
	Timestamp time.Time `json:"timestamp"`
}

// Handler godoc
// @Summary  Liveness
// @Tags     Health
// @Produce  json
// @Success  200 {object} Response
// @Router   /health [get]
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{Status: StatusHealthy, Timestamp: time.Now().UTC()})
	}
}

// NewGRPCServer returns a gRPC server whose health service reports SERVING
// for the overall server and for service.
func NewGRPCServer(service string) (*grpc.Server, *health.Server) {
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(service, healthpb.HealthCheckResponse_SERVING)

	s := grpc.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	return s, hs
}

// ServeGRPC runs the health server on addr until ctx is done.
func ServeGRPC(ctx context.Context, addr, service string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("grpc health listen %s: %w", addr, err)
	}
	s, hs := NewGRPCServer(service)

	go func() {
		<-ctx.Done()
		hs.Shutdown() // flips every service to NOT_SERVING
		s.GracefulStop()
	}()

	log.Printf("[healthz] grpc health listening on %s", lis.Addr())
	if err := s.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
