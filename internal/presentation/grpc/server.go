package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"time"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/Sidiqjon/debt-manager/internal/infrastructure/config"
	"github.com/Sidiqjon/debt-manager/pkg/auth"
	"github.com/Sidiqjon/debt-manager/pkg/observability"
	"github.com/Sidiqjon/debt-manager/pkg/tlsutil"
)

// Server wraps a gRPC server with the debt service handler registered.
type Server struct {
	gs      *grpclib.Server
	handler *Handler
	logger  *slog.Logger
}

// NewServer creates and configures the gRPC server.
func NewServer(handler *Handler, logger *slog.Logger, jwtService *auth.JWTService, metrics *observability.Metrics, tlsCfg config.TLSConfig) *Server {
	// Auth interceptor skips health checks and the unauthenticated entry
	// points: registration and the two logins.
	authInterceptor := auth.UnaryAuthInterceptor(jwtService, []string{
		"/grpc.health.v1.Health/Check",
		"/grpc.health.v1.Health/Watch",
		"/" + serviceName + "/RegisterSeller",
		"/" + serviceName + "/LoginSeller",
		"/" + serviceName + "/LoginAdmin",
	})

	var serverOpts []grpclib.ServerOption
	serverOpts = append(serverOpts, grpclib.ChainUnaryInterceptor(
		metricsInterceptor(metrics),
		authInterceptor,
	))

	if tlsCfg.Enabled && tlsCfg.CertFile != "" && tlsCfg.KeyFile != "" {
		creds, err := tlsutil.ServerTLSConfig(tlsCfg.CertFile, tlsCfg.KeyFile)
		if err != nil {
			logger.Error("failed to load TLS credentials, starting without TLS", "error", err)
		} else {
			serverOpts = append(serverOpts, grpclib.Creds(creds))
			logger.Info("gRPC TLS enabled", "cert", tlsCfg.CertFile, "key", tlsCfg.KeyFile)
		}
	} else {
		logger.Info("gRPC TLS not configured, running without TLS")
	}

	gs := grpclib.NewServer(serverOpts...)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(gs, healthSrv)
	healthSrv.SetServingStatus("debt-manager", healthpb.HealthCheckResponse_SERVING)

	// Only enable reflection when GRPC_REFLECTION=true.
	if os.Getenv("GRPC_REFLECTION") == "true" {
		reflection.Register(gs)
	}

	RegisterDebtServiceServer(gs, handler)

	return &Server{
		gs:      gs,
		handler: handler,
		logger:  logger,
	}
}

func metricsInterceptor(metrics *observability.Metrics) grpclib.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpclib.UnaryServerInfo, handler grpclib.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		metrics.RequestDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		return resp, err
	}
}

// Serve starts the gRPC server on the specified address.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	s.logger.Info("gRPC server listening", "addr", addr)
	return s.gs.Serve(lis)
}

// GracefulStop stops the server gracefully.
func (s *Server) GracefulStop() {
	s.logger.Info("gRPC server shutting down")
	s.gs.GracefulStop()
}
