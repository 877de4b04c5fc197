package configs

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type ConfigStruct struct {
	Port                string
	AccessTokenSecret   string
	AccessTokenExpireHr int
	RedisUrl            string
	RedisPassword       string
	MongodbDatabaseUrl  string
	MongodbDatabaseName string
	TmdbBaseUrl         string
	TmdbApiKey          string
	MovieCacheTtlSec    int
	CorsAllowedOrigins  []string
	SentryDns           string
	SentryRelease       string
	PrintErrors         bool
}

var configs = ConfigStruct{}

func GetConfigs() ConfigStruct {
	return configs
}

func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v", err)
	}

	configs.Port = os.Getenv("PORT")
	configs.AccessTokenSecret = os.Getenv("ACCESS_TOKEN_SECRET")
	configs.AccessTokenExpireHr, _ = strconv.Atoi(os.Getenv("ACCESS_TOKEN_EXPIRE_HOUR"))
	if configs.AccessTokenExpireHr == 0 {
		configs.AccessTokenExpireHr = 24
	}
	configs.RedisUrl = os.Getenv("REDIS_URL")
	configs.RedisPassword = os.Getenv("REDIS_PASSWORD")
	configs.MongodbDatabaseUrl = os.Getenv("MONGODB_DATABASE_URL")
	configs.MongodbDatabaseName = os.Getenv("MONGODB_DATABASE_NAME")
	configs.TmdbBaseUrl = os.Getenv("TMDB_BASE_URL")
	configs.TmdbApiKey = os.Getenv("TMDB_API_KEY")
	configs.MovieCacheTtlSec, _ = strconv.Atoi(os.Getenv("REDIS_EXPIRE_TIME"))
	if configs.MovieCacheTtlSec == 0 {
		configs.MovieCacheTtlSec = 60
	}
	configs.CorsAllowedOrigins = strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), "---")
	for i := range configs.CorsAllowedOrigins {
		configs.CorsAllowedOrigins[i] = strings.TrimSpace(configs.CorsAllowedOrigins[i])
	}
	configs.SentryDns = os.Getenv("SENTRY_DNS")
	configs.SentryRelease = os.Getenv("SENTRY_RELEASE")
	configs.PrintErrors = os.Getenv("PRINT_ERRORS") == "true"
}
