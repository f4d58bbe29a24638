package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"personaljournal/internal/config"
	"personaljournal/internal/database"
	"personaljournal/internal/handlers"
	"personaljournal/internal/middleware"
	"personaljournal/internal/routes"
	"personaljournal/internal/services"
	"personaljournal/internal/store"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	// Connect to MongoDB (required: the journal lives there)
	log.Printf("Connecting to MongoDB...")
	client, db, err := database.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.DisconnectMongo(client)

	st := store.New(db)
	entryHandler := handlers.NewEntryHandler(st)
	postHandler := handlers.NewPostHandler(st)

	// Contact form storage (optional)
	contactHandler := handlers.NewContactHandler(nil)
	if cfg.PostgresURI != "" {
		log.Printf("Connecting to PostgreSQL...")
		pg, err := database.ConnectPostgres(cfg.PostgresURI)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL:", err)
		}
		defer pg.Close()
		contactHandler = handlers.NewContactHandler(pg)
	} else {
		log.Println("Warning: POSTGRES_URI not set. Contact form will not be available")
	}

	// Cover image uploads (optional)
	uploadHandler := handlers.NewUploadHandler(nil)
	if cfg.CloudinaryName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		cld, err := services.NewCloudinaryService(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Printf("Warning: Failed to initialize Cloudinary: %v", err)
			log.Println("Cover image uploads will not be available")
		} else {
			uploadHandler = handlers.NewUploadHandler(cld)
			log.Println("✅ Cloudinary service initialized")
		}
	} else {
		log.Println("Warning: Cloudinary credentials not found. Cover image uploads will not be available")
	}

	// AI writing helpers (optional)
	aiHandler := handlers.NewAIHandler(nil)
	if cfg.OpenAIAPIKey != "" {
		aiHandler = handlers.NewAIHandler(services.NewAIService(cfg.OpenAIAPIKey))
		log.Println("✅ AI writing helpers enabled")
	} else {
		log.Println("Warning: OPENAI_API_KEY not set. AI writing helpers will not be available")
	}

	// Rate limiting: Redis-backed when available, in-process otherwise
	var rdb *redis.Client
	if cfg.RedisURI != "" {
		log.Printf("Connecting to Redis...")
		rdb, err = database.ConnectRedis(cfg.RedisURI)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v", err)
			log.Println("Falling back to in-process rate limiting")
			rdb = nil
		} else {
			defer rdb.Close()
		}
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.IsProduction() {
		r.Use(middleware.SecurityHeaders)
	}
	if rdb != nil {
		r.Use(middleware.RateLimit(rdb))
	} else {
		r.Use(middleware.LocalRateLimit)
	}

	// Health check (no JSON envelope, load balancers just want a 200)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.Setup(r, entryHandler, postHandler, contactHandler, uploadHandler, aiHandler)

	log.Printf("🚀 Journal backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
