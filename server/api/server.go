// Package api
package api

import (
	"go.uber.org/zap"

	"github.com/maverickdao/governance-backend/cache"
	"github.com/maverickdao/governance-backend/db"
	"github.com/maverickdao/governance-backend/gov"
)

type Server struct {
	authorizationSecret string

	engine      *gov.Engine
	dbClient    db.Client
	cacheClient cache.Client

	logger *zap.Logger
}

func (s *Server) SetSecret(secret string) *Server {
	s.authorizationSecret = secret
	return s
}

func (s *Server) SetLogger(logger *zap.Logger) *Server {
	s.logger = logger
	return s
}

func (s *Server) SetStorage(db db.Client) *Server {
	s.dbClient = db
	return s
}

func (s *Server) SetCache(cache cache.Client) *Server {
	s.cacheClient = cache
	return s
}

func (s *Server) SetEngine(engine *gov.Engine) *Server {
	s.engine = engine
	return s
}
