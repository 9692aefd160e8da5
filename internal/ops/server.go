// Package ops is the internal operator surface: dead-letter inspection and
// replay, saga inspection, audit trails, worker metrics, and runtime log
// level. It is not the platform's public API gateway and must never be
// exposed beyond the operations network.
package ops

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/internal/audit"
	"workgrid.io/workgrid/internal/config"
	"workgrid.io/workgrid/internal/dispatch"
	"workgrid.io/workgrid/internal/pkg/logger"
	"workgrid.io/workgrid/internal/pkg/worker"
	"workgrid.io/workgrid/internal/saga"
)

// Server is the operator HTTP server.
type Server struct {
	cfg         config.OpsConfig
	dispatcher  *dispatch.Dispatcher
	sink        *dispatch.Sink
	coordinator *saga.Coordinator
	recorder    *audit.Recorder
	pools       *worker.Pools

	httpServer *http.Server
}

// NewServer assembles the operator server.
func NewServer(cfg config.OpsConfig, d *dispatch.Dispatcher, sink *dispatch.Sink, c *saga.Coordinator, rec *audit.Recorder, pools *worker.Pools) *Server {
	s := &Server{
		cfg:         cfg,
		dispatcher:  d,
		sink:        sink,
		coordinator: c,
		recorder:    rec,
		pools:       pools,
	}
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

func (s *Server) router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", s.health)

	v1 := router.Group("/ops/v1", TokenAuth([]byte(s.cfg.TokenSecret)))
	{
		v1.GET("/dead-letters", s.listDeadLetters)
		v1.GET("/dead-letters/:id", s.getDeadLetter)
		v1.POST("/dead-letters/:id/replay", s.replayDeadLetter)

		v1.GET("/sagas", s.listSagas)
		v1.GET("/sagas/:id", s.getSaga)

		v1.GET("/audit/:resourceType/:resourceID", s.auditTrail)

		v1.GET("/workers", s.workerMetrics)
		v1.Any("/log-level", gin.WrapH(logger.LevelHandler()))
	}
	return router
}

// Run serves until ctx is cancelled, then drains within the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.Info("ops server listening", zap.String("addr", s.httpServer.Addr))

	select {
	case err := <-errCh:
		return fmt.Errorf("ops server: %w", err)
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown ops server: %w", err)
	}
	logger.Info("ops server stopped")
	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) listDeadLetters(c *gin.Context) {
	limit := intQuery(c, "limit", 100)
	rows, err := s.sink.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dead_letters": rows})
}

func (s *Server) getDeadLetter(c *gin.Context) {
	row, err := s.sink.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, code := http.StatusInternalServerError, "INTERNAL"
		if ent.IsNotFound(err) {
			status, code = http.StatusNotFound, "NOT_FOUND"
		}
		c.JSON(status, gin.H{"code": code, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (s *Server) replayDeadLetter(c *gin.Context) {
	id := c.Param("id")
	if err := s.dispatcher.Replay(c.Request.Context(), id); err != nil {
		status, code := http.StatusInternalServerError, "REPLAY_FAILED"
		if ent.IsNotFound(err) {
			status, code = http.StatusNotFound, "NOT_FOUND"
		}
		c.JSON(status, gin.H{"code": code, "message": err.Error()})
		return
	}
	logger.Info("dead letter replayed",
		zap.String("id", id),
		zap.String("operator", c.GetString("operator")),
	)
	c.JSON(http.StatusOK, gin.H{"replayed": id})
}

func (s *Server) listSagas(c *gin.Context) {
	limit := intQuery(c, "limit", 100)
	rows, err := s.coordinator.List(c.Request.Context(), limit, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sagas": rows})
}

func (s *Server) getSaga(c *gin.Context) {
	inst, err := s.coordinator.Inspect(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, code := http.StatusInternalServerError, "INTERNAL"
		if ent.IsNotFound(err) {
			status, code = http.StatusNotFound, "NOT_FOUND"
		}
		c.JSON(status, gin.H{"code": code, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inst)
}

func (s *Server) auditTrail(c *gin.Context) {
	rows, err := s.recorder.ForResource(c.Request.Context(), c.Param("resourceType"), c.Param("resourceID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": rows})
}

func (s *Server) workerMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.pools.Metrics())
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v := fallback
	if raw := c.Query(name); raw != "" {
		if _, err := fmt.Sscanf(raw, "%d", &v); err != nil {
			return fallback
		}
	}
	return v
}
