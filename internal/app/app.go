package app

import (
	"database/sql"

	"go-hrms/internal/shared/config"
	"go-hrms/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type infrastructure struct {
	gormDB *gorm.DB
	sqlDB  *sql.DB
	redis  *redis.Client
}

func (i *infrastructure) Close() {
	if i.redis != nil {
		_ = i.redis.Close()
	}
	if i.sqlDB != nil {
		_ = i.sqlDB.Close()
	}
}

func connect(cfg *config.Config, logger *zap.Logger) (*infrastructure, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DB.MaxRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	return &infrastructure{gormDB: gormDB, sqlDB: sqlDB, redis: redisClient}, nil
}

// BuildApp connects the backing stores and registers every module on the
// router. The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	infra, err := connect(cfg, logger)
	if err != nil {
		return nil, err
	}

	svc := buildServices(cfg, infra.sqlDB, infra.gormDB, infra.redis, zap.L())
	if err := registerModules(router, cfg, svc, infra.gormDB, infra.redis, zap.L()); err != nil {
		infra.Close()
		return nil, err
	}

	return infra.Close, nil
}
