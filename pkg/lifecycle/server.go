// Package lifecycle runs an adapter service: the monitoring loop, the
// HTTP API and a gRPC health endpoint whose serving state follows the
// adapter's ONLINE/OFFLINE events.
package lifecycle

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/opsbridge/snbridge/pkg/events"
	"github.com/opsbridge/snbridge/pkg/logger"
	"github.com/opsbridge/snbridge/pkg/models"
)

const (
	ShutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// Service defines the interface that all services must implement.
type Service interface {
	Start(context.Context) error
	Stop(context.Context) error
}

// ServerOptions holds configuration for creating a server.
type ServerOptions struct {
	HTTPAddr    string
	GRPCAddr    string
	ServiceName string
	Service     Service
	HTTPHandler http.Handler
	Bus         *events.Bus
	Log         logger.Logger
}

// RunServer starts a service with the provided options and handles
// lifecycle. It blocks until a signal arrives, the context ends or a
// component fails.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts.Log.Info("*** Starting service %s", opts.ServiceName)

	grpcServer, lis, err := setupGRPCServer(opts)
	if err != nil {
		return fmt.Errorf("failed to setup gRPC server: %w", err)
	}

	httpServer := &http.Server{
		Addr:              opts.HTTPAddr,
		Handler:           opts.HTTPHandler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)

	go func() {
		if err := opts.Service.Start(ctx); err != nil {
			select {
			case errChan <- err:
			default:
				opts.Log.Error("Service error: %v", err)
			}
		}
	}()

	go func() {
		opts.Log.Info("Starting gRPC health endpoint on %s", opts.GRPCAddr)

		if err := grpcServer.Serve(lis); err != nil {
			select {
			case errChan <- err:
			default:
				opts.Log.Error("gRPC server error: %v", err)
			}
		}
	}()

	go func() {
		opts.Log.Info("Starting HTTP API on %s", opts.HTTPAddr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			select {
			case errChan <- err:
			default:
				opts.Log.Error("HTTP server error: %v", err)
			}
		}
	}()

	return handleShutdown(ctx, cancel, grpcServer, httpServer, opts, errChan)
}

func setupGRPCServer(opts *ServerOptions) (*grpc.Server, net.Listener, error) {
	lis, err := net.Listen("tcp", opts.GRPCAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to listen on %s: %w", opts.GRPCAddr, err)
	}

	grpcServer := grpc.NewServer()

	hs := health.NewServer()
	// Not serving until the first successful health check flips it.
	hs.SetServingStatus(opts.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(grpcServer, hs)

	if opts.Bus != nil {
		opts.Bus.On(string(models.HealthOnline), func(events.Payload) {
			hs.SetServingStatus(opts.ServiceName, healthpb.HealthCheckResponse_SERVING)
		})
		opts.Bus.On(string(models.HealthOffline), func(events.Payload) {
			hs.SetServingStatus(opts.ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
		})
	}

	return grpcServer, lis, nil
}

func handleShutdown(
	ctx context.Context, cancel context.CancelFunc,
	grpcServer *grpc.Server, httpServer *http.Server,
	opts *ServerOptions, errChan chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var runErr error

	select {
	case sig := <-sigChan:
		opts.Log.Info("Received signal %v, initiating shutdown", sig)
	case err := <-errChan:
		opts.Log.Error("Received error: %v, initiating shutdown", err)
		runErr = fmt.Errorf("service error: %w", err)
	case <-ctx.Done():
		opts.Log.Info("Context canceled, initiating shutdown")
		runErr = ctx.Err()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		opts.Log.Error("Error during HTTP shutdown: %v", err)
	}

	stopped := make(chan struct{})

	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		grpcServer.Stop()
	}

	if err := opts.Service.Stop(shutdownCtx); err != nil {
		opts.Log.Error("Error during service shutdown: %v", err)
		return fmt.Errorf("shutdown error: %w", err)
	}

	return runErr
}
