package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"go-bibsort/config"
	"go-bibsort/services/executor"
	"go-bibsort/util/logger"
)

var log = logger.WithPrefix("server")

type Server struct {
	configs *config.ServerConfig
	es      *executor.ExecutorService
	engine  *gin.Engine
	http    *http.Server
}

func New(configs *config.ServerConfig, es *executor.ExecutorService) (*Server, error) {
	if configs == nil || es == nil {
		return nil, errors.New("server: missing configs or executor")
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	s := &Server{
		configs: configs,
		es:      es,
		engine:  engine,
	}
	s.routes(engine.Group("/"))

	s.http = &http.Server{
		Addr:         fmt.Sprintf("%v:%v", configs.Host, configs.Port),
		Handler:      engine,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

func (s *Server) routes(group *gin.RouterGroup) {
	ctrl := NewArticleController(s.es)

	group.GET("/articles", ctrl.SortHandler)
	group.GET("/criteria", ctrl.CriteriaHandler)
	group.GET("/words", ctrl.WordsHandler)
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start listens in the background. The channel yields the error that made
// the server stop, and nothing after a clean Stop.
func (s *Server) Start() <-chan error {
	errs := make(chan error, 1)
	go func() {
		log.Infof("server started [%s]", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errs <- errors.Wrapf(err, "unable to listen addr: %s", s.http.Addr)
		}
		close(errs)
	}()
	return errs
}

func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func requestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		log.Debugf("%s %s -> %d (%v)",
			ctx.Request.Method, ctx.Request.URL.RequestURI(), ctx.Writer.Status(), time.Since(start))
	}
}
