package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"rupeess_backend/internals/configs"
)

var DB *gorm.DB

// ConnectDB membuka koneksi PostgreSQL via GORM.
// Kalau DB belum dikonfigurasi, JANGAN fatal: seluruh read path
// degrade ke fallback data (lihat controller shops/categories).
func ConnectDB(cfg *configs.Config) {
	if cfg.DBHost == "" {
		log.Println("⚠️ Database tidak dikonfigurasi — jalan tanpa DB (fallback mode).")
		return
	}

	log.Println("🔌 Koneksi ke PostgreSQL...")

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=rupeess&options=-c statement_timeout=3000",
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 aman untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Printf("❌ Gagal konek DB: %v — lanjut tanpa DB (fallback mode).", err)
		return
	}
	DB = db
	log.Println("✅ DB connected.")
}

// TunePool menyetel ukuran pool koneksi.
func TunePool() {
	if DB == nil {
		return
	}
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[ERROR] Gagal ambil sql.DB: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// WarmUpQueries ping ringan supaya koneksi pertama tidak cold.
func WarmUpQueries() {
	if DB == nil {
		return
	}
	var one int
	if err := DB.Raw("SELECT 1").Scan(&one).Error; err != nil {
		log.Printf("[WARNING] Warm-up query gagal: %v", err)
		return
	}
	log.Println("🔥 DB warm-up OK.")
}
