// Package db はGORMによるデータベース接続の確立とマイグレーションを提供します。
package db

import (
	"fmt"
	"log"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	commententity "stocknotes/internal/feature/comments/domain/entity"
	stockentity "stocknotes/internal/feature/stocks/domain/entity"
)

// Config holds the database connection settings, populated from environment
// variables by platform/config.
type Config struct {
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
	Host     string `env:"DB_HOST" envDefault:"127.0.0.1"`
	Port     string `env:"DB_PORT" envDefault:"3306"`

	// InstanceName selects a Cloud SQL unix-socket connection when set.
	InstanceName string `env:"INSTANCE_CONNECTION_NAME"`

	// RunMigrations enables schema auto-migration at startup.
	RunMigrations bool `env:"RUN_MIGRATIONS"`
}

// BuildDSN は設定からMySQLのDSN文字列を組み立てます。
// InstanceNameが設定されている場合はCloud SQLのUnixソケット接続を優先します。
func BuildDSN(cfg Config) string {
	if cfg.InstanceName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// OpenDB はデータベースに接続し、共有の*gorm.DBハンドルを返します。
// 接続は最大60秒までリトライされます。ハンドルは並行利用に対して安全で、
// すべてのリポジトリに注入されます。
func OpenDB(cfg Config) *gorm.DB {
	dsn := BuildDSN(cfg)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		// コメントは株式削除後もstock_idを保持したまま残るため、
		// 外部キー制約は作成しません。
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{
			DisableForeignKeyConstraintWhenMigrating: true,
		})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&stockentity.Stock{},
			&commententity.Comment{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
