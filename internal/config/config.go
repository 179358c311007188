package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Address    string
	Port       int
	BaseURL    string
	MongoURI   string
	MongoDB    string
	RedisAddr  string
	RedisPass  string
	RedisDB    int
	AdminEmail string
	AdminPass  string
	JWTSecret  string
}

func Load() (*Config, error) {
	_ = godotenv.Load("../../.env")

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "7000"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, errors.New("invalid PORT value")
	}

	address := os.Getenv("ADDRESS")
	if address == "" {
		address = "0.0.0.0"
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + portStr
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		mongoDB = "ipoportal"
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	redisDBStr := os.Getenv("REDIS_DB")
	if redisDBStr == "" {
		redisDBStr = "0"
	}
	redisDB, err := strconv.Atoi(redisDBStr)
	if err != nil {
		return nil, errors.New("invalid REDIS_DB value")
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@wcib.com"
	}

	adminPass := os.Getenv("ADMIN_PASS")
	if adminPass == "" {
		adminPass = "admin"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "default_jwt_secret"
	}

	return &Config{
		Address:    address,
		Port:       port,
		BaseURL:    baseURL,
		MongoURI:   mongoURI,
		MongoDB:    mongoDB,
		RedisAddr:  redisAddr,
		RedisPass:  os.Getenv("REDIS_PASS"),
		RedisDB:    redisDB,
		AdminEmail: adminEmail,
		AdminPass:  adminPass,
		JWTSecret:  jwtSecret,
	}, nil
}
