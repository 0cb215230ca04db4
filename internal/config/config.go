package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	AdminUser string
	AdminPass string
	JWTSecret string

	// When true, fully covering an installment clears any penalty accrued
	// while it was overdue. Off by default: a penalty, once charged, sticks.
	PenaltyResetOnCatchup bool
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	c := &Config{
		AppPort:   getenv("APP_PORT", "5000"),
		MySQLHost: getenv("MYSQL_HOST", "localhost"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "loan_management"),
		MySQLUser: getenv("MYSQL_USER", "root"),
		MySQLPass: getenv("MYSQL_PASS", ""),

		RedisAddr:    getenv("REDIS_ADDR", "localhost:6379"),
		IdempTTLSecs: 300,

		AdminUser: getenv("ADMIN_USER", "admin"),
		AdminPass: getenv("ADMIN_PASS", "admin123"),
		JWTSecret: getenv("JWT_SECRET", "dev-secret-change-me"),
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	if v := os.Getenv("PENALTY_RESET_ON_CATCHUP"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.PenaltyResetOnCatchup = b
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.AdminUser == "" || c.AdminPass == "" {
		return errors.New("missing admin credentials (ADMIN_USER/ADMIN_PASS)")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATE/DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
