package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"polygon_dashboard/internal/app/di"
	"polygon_dashboard/internal/app/router"
	authadapters "polygon_dashboard/internal/feature/auth/adapters"
	authhandler "polygon_dashboard/internal/feature/auth/transport/handler"
	authusecase "polygon_dashboard/internal/feature/auth/usecase"
	barshandler "polygon_dashboard/internal/feature/bars/transport/handler"
	barsusecase "polygon_dashboard/internal/feature/bars/usecase"
	finhandler "polygon_dashboard/internal/feature/financials/transport/handler"
	finusecase "polygon_dashboard/internal/feature/financials/usecase"
	newshandler "polygon_dashboard/internal/feature/news/transport/handler"
	newsusecase "polygon_dashboard/internal/feature/news/usecase"
	refhandler "polygon_dashboard/internal/feature/reference/transport/handler"
	refusecase "polygon_dashboard/internal/feature/reference/usecase"
	"polygon_dashboard/internal/platform/cache"
	infradb "polygon_dashboard/internal/platform/db"
	jwtmw "polygon_dashboard/internal/platform/jwt"
	infraredis "polygon_dashboard/internal/platform/redis"
)

// tokenExpiration は発行するJWTトークンの有効期間です。
const tokenExpiration = 24 * time.Hour

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Polygon APIクライアント
	polygonClient := di.NewPolygonClient()

	// Repository
	userRepo := authadapters.NewUserRepository(db)

	// Redisキャッシュでラップ
	ttl := cache.DefaultTTL
	marketRepo := cache.NewCachingMarketRepository(rdb, ttl, polygonClient, "bars")
	financialsRepo := cache.NewCachingFinancialsRepository(rdb, ttl, polygonClient, "financials")
	referenceRepo := cache.NewCachingReferenceRepository(rdb, ttl, polygonClient, "reference")
	newsRepo := cache.NewCachingNewsRepository(rdb, ttl, polygonClient, "news")

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), tokenExpiration))
	barsUC := barsusecase.NewBarsUsecase(marketRepo)
	financialsUC := finusecase.NewFinancialsUsecase(financialsRepo)
	referenceUC := refusecase.NewReferenceUsecase(referenceRepo)
	newsUC := newsusecase.NewNewsUsecase(newsRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	barsH := barshandler.NewBarsHandler(barsUC)
	financialsH := finhandler.NewFinancialsHandler(financialsUC)
	referenceH := refhandler.NewReferenceHandler(referenceUC)
	newsH := newshandler.NewNewsHandler(newsUC)

	// ルータ生成
	router := router.NewRouter(authH, barsH, financialsH, referenceH, newsH)

	// CORS追加
	router.Use(cors.Default())

	// POLYGON_API_KEYチェック（開発中の注意喚起）
	if os.Getenv("POLYGON_API_KEY") == "" {
		log.Println("[WARN] POLYGON_API_KEY is not set. Upstream requests will fail.")
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
