package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"priceserver/catalog"
	"priceserver/server/middleware"
)

// Runner запускает прогон конвейера. Интерфейс нужен, чтобы в тестах
// подменять настоящий конвейер заглушкой.
type Runner interface {
	Run(ctx context.Context) (RunStats, error)
}

// RunStats сводка прогона для ответа API.
type RunStats struct {
	FilesProcessed int `json:"files_processed"`
	FilesSkipped   int `json:"files_skipped"`
	RowsIngested   int `json:"rows_ingested"`
	RowsExported   int `json:"rows_exported"`
	Brands         int `json:"brands"`
}

// CatalogSource отдает сохраненный каталог.
type CatalogSource interface {
	Catalog() ([]catalog.Listing, error)
}

// Server HTTP-обвязка конвейера: ручка запуска и чтение каталога.
type Server struct {
	router  *gin.Engine
	runner  Runner
	source  CatalogSource
	log     *slog.Logger
	limiter *rate.Limiter

	// одновременно может идти только один прогон
	running sync.Mutex
}

// New создает Server. refreshPerHour ограничивает частоту запусков
// конвейера через API.
func New(runner Runner, source CatalogSource, refreshPerHour int, log *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		runner:  runner,
		source:  source,
		log:     log,
		limiter: rate.NewLimiter(rate.Every(time.Hour/time.Duration(refreshPerHour)), 1),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	r.GET("/health", s.handleHealth)
	api := r.Group("/api/v1")
	{
		api.POST("/refresh", s.handleRefresh)
		api.GET("/catalog", s.handleCatalog)
	}

	s.router = r
	return s
}

// Router отдает маршрутизатор (для httptest).
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe запускает сервер.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("сервер запущен", "адрес", addr)
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleRefresh запускает прогон конвейера. Запросы сверх лимита частоты
// получают 429, повторный запрос во время идущего прогона — 409.
func (s *Server) handleRefresh(c *gin.Context) {
	if !s.limiter.Allow() {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": "слишком частые запуски, попробуйте позже",
		})
		return
	}
	if !s.running.TryLock() {
		c.JSON(http.StatusConflict, gin.H{"error": "прогон уже идет"})
		return
	}
	defer s.running.Unlock()

	reqID := middleware.GetRequestID(c)
	s.log.Info("запуск конвейера по запросу", "request_id", reqID)

	stats, err := s.runner.Run(c.Request.Context())
	if err != nil {
		s.log.Error("прогон не удался", "request_id", reqID, "ошибка", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleCatalog(c *gin.Context) {
	rows, err := s.source.Catalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(rows), "items": rows})
}
