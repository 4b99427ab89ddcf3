// Package db はユーザーストア用のデータベース接続を提供します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"polygon_dashboard/internal/feature/auth/domain/entity"
)

// OpenDB はデータベース接続を開きます。
// DB_HOSTが設定されていればMySQL、なければ開発用にSQLiteファイルへフォールバックします。
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")

	// 開発用フォールバック（SQLite）
	if host == "" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "./dashboard.db"
		}
		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open sqlite database: %v", err)
		}
		log.Println("USING_SQLITE:", path)
		migrate(db)
		return db
	}

	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		user, pass, host, port, name)

	var (
		db  *gorm.DB
		err error
	)

	// コンテナ起動直後はDBが未準備の場合があるためリトライする
	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gmysql.Open(dsn), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	migrate(db)
	return db
}

// migrate はRUN_MIGRATIONSが有効な場合にスキーママイグレーションを実行します。
func migrate(db *gorm.DB) {
	if os.Getenv("RUN_MIGRATIONS") != "true" {
		return
	}
	if err := db.AutoMigrate(&entity.User{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
}
