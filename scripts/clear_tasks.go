package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"todolist-api/pkg/config"
)

// Dev helper: wipes the tasks table and the task read cache.
// Run with: go run scripts/clear_tasks.go
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	clearTasks(cfg)
	clearTaskCache(cfg)

	fmt.Println("Done! Ready for fresh testing.")
}

func clearTasks(cfg *config.Config) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Database.Host, cfg.Database.User, cfg.Database.Password,
		cfg.Database.DBName, cfg.Database.Port, cfg.Database.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	result := db.Exec("DELETE FROM tasks")
	if result.Error != nil {
		log.Fatal("Failed to delete tasks:", result.Error)
	}

	fmt.Printf("Deleted %d tasks\n", result.RowsAffected)
}

func clearTaskCache(cfg *config.Config) {
	if cfg.Redis.URL == "" {
		fmt.Println("Redis not configured, skipping cache")
		return
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Printf("Bad REDIS_URL, skipping cache: %v\n", err)
		return
	}

	client := redis.NewClient(opts)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	keys, err := client.Keys(ctx, "task:detail:*").Result()
	if err != nil {
		log.Printf("Failed to scan cache keys: %v\n", err)
		return
	}
	if len(keys) == 0 {
		fmt.Println("No cached tasks")
		return
	}

	deleted, err := client.Del(ctx, keys...).Result()
	if err != nil {
		log.Printf("Failed to delete cache keys: %v\n", err)
		return
	}

	fmt.Printf("Deleted %d cached tasks\n", deleted)
}
