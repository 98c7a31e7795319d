package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lobbynetz/backend/data"
	mid "github.com/lobbynetz/backend/internal/server/middleware"
	"github.com/lobbynetz/backend/internal/storage"
	"github.com/lobbynetz/backend/internal/util"
	"github.com/lobbynetz/backend/pkg/common"
	"github.com/lobbynetz/backend/pkg/graph"
	"github.com/lobbynetz/backend/pkg/loader"
	lio "github.com/lobbynetz/backend/pkg/loader/io"
	ls3 "github.com/lobbynetz/backend/pkg/loader/s3"
	"github.com/lobbynetz/backend/pkg/logger"
	"github.com/lobbynetz/backend/pkg/metrics"

	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

// NewEcho builds the HTTP server around an already loaded graph.
func NewEcho(app *mid.App, allowOrigins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Error("Request failed", "method", v.Method, "uri", v.URI, "status", v.Status,
					"latency", v.Latency, "request_id", v.RequestID, "err", v.Error)
				return nil
			}
			logger.Info("Request", "method", v.Method, "uri", v.URI, "status", v.Status,
				"latency", v.Latency, "request_id", v.RequestID)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(mid.MetricsMiddleware)
	e.Use(mid.AppContextMiddleware(app))

	RegisterRoutes(e)

	return e
}

// LoadNetwork reads the dataset selected by DATA_SOURCE: the embedded sample
// (default), a local file at DATA_PATH, or the object DATA_PATH in AWS_BUCKET.
func LoadNetwork(ctx context.Context) (common.Network, error) {
	source := util.GetEnvString("DATA_SOURCE", "embedded")
	path := util.GetEnv("DATA_PATH")

	var file loader.DatasetFile
	switch source {
	case "embedded":
		file = loader.NewDatasetFile(data.SampleFile, lio.NewFSDatasetLoader(data.FS))
	case "file":
		if path == "" {
			return common.Network{}, fmt.Errorf("DATA_PATH is required for DATA_SOURCE=file")
		}
		file = loader.NewDatasetFile(path, lio.NewIODatasetLoader())
	case "s3":
		if path == "" {
			return common.Network{}, fmt.Errorf("DATA_PATH is required for DATA_SOURCE=s3")
		}
		bucket, err := storage.Bucket()
		if err != nil {
			return common.Network{}, err
		}
		client, err := storage.NewS3Client(ctx)
		if err != nil {
			return common.Network{}, err
		}
		file = loader.NewDatasetFile(path, ls3.NewS3DatasetLoaderWithClient(bucket, client))
	default:
		return common.Network{}, fmt.Errorf("unknown DATA_SOURCE %q", source)
	}

	logger.Info("Loading dataset", "source", source, "path", file.Path, "format", file.Format)
	return loader.Load(ctx, file)
}

func Init() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	network, err := LoadNetwork(ctx)
	if err != nil {
		logger.Fatal("Failed to load dataset", "err", err)
	}

	g := graph.New(network)
	metrics.DatasetNodes.Set(float64(g.NodeCount()))
	metrics.DatasetLinks.Set(float64(g.LinkCount()))
	logger.Info("Dataset loaded", "nodes", g.NodeCount(), "links", g.LinkCount())

	origins := util.GetEnvList("CORS_ORIGINS", []string{"*"})
	e := NewEcho(&mid.App{Graph: g}, origins)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
