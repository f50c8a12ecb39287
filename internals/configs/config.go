package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// =======================
// CONFIG STRUCT
// =======================

// NearbyPolicy adalah policy knobs untuk proximity ranking (bukan konstanta).
type NearbyPolicy struct {
	RadiusKm        float64 // default 50
	FallbackEnabled bool    // kalau tidak ada hasil dalam radius → recent shops
	HeroLimit       int     // rail=hero
	RailLimit       int     // rail=left / rail=right
	DefaultLimit    int     // tanpa rail
}

type EducationConfig struct {
	BaseFile         string // seed base questions (read-only)
	CustomFile       string // custom questions (admin CRUD)
	ExpandPerSubject int    // jumlah variant per subject saat expand
	SkipBudget       int
	TimePerQuestion  int // detik per soal
	SessionTTL       time.Duration
}

type Config struct {
	Port      string
	JWTSecret string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string
	DBSSLMode  string

	Nearby    NearbyPolicy
	Education EducationConfig
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env file tidak ditemukan, pakai ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, pakai ENV dari sistem")
	}
}

// Load membaca seluruh konfigurasi sekali di startup.
// Handler tidak boleh baca env sendiri; semua lewat struct ini.
func Load() *Config {
	LoadEnv()

	cfg := &Config{
		Port:      GetEnv("PORT", "3000"),
		JWTSecret: GetEnv("JWT_SECRET"),

		DBUser:     GetEnv("DB_USER"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBHost:     GetEnv("DB_HOST"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBName:     GetEnv("DB_NAME", "rupeess"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "require"),

		Nearby: NearbyPolicy{
			RadiusKm:        getFloat("NEARBY_RADIUS_KM", 50),
			FallbackEnabled: getBool("NEARBY_FALLBACK", true),
			HeroLimit:       getInt("NEARBY_HERO_LIMIT", 5),
			RailLimit:       getInt("NEARBY_RAIL_LIMIT", 2),
			DefaultLimit:    getInt("NEARBY_DEFAULT_LIMIT", 100),
		},
		Education: EducationConfig{
			BaseFile:         GetEnv("QUESTIONS_BASE_FILE", "data/base_questions.json"),
			CustomFile:       GetEnv("QUESTIONS_CUSTOM_FILE", "data/questions.json"),
			ExpandPerSubject: getInt("QUESTIONS_EXPAND_PER_SUBJECT", 500),
			SkipBudget:       getInt("QUIZ_SKIP_BUDGET", 3),
			TimePerQuestion:  getInt("QUIZ_TIME_PER_QUESTION", 60),
			SessionTTL:       time.Duration(getInt("QUIZ_SESSION_TTL_MINUTES", 120)) * time.Minute,
		},
	}

	if cfg.JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
	if cfg.DBHost == "" {
		log.Println("⚠️ DB_HOST kosong — read path akan degrade ke fallback data.")
	}

	return cfg
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("⚠️ %s bukan angka valid, pakai default %d", key, def)
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("⚠️ %s bukan angka valid, pakai default %v", key, def)
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
