package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/studybuddy-ai/studybuddy/app/core/srv"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr     string      `toml:"addr"`
	Log      Log         `toml:"log"`
	Postgres PGConfig    `toml:"postgres"`
	Redis    RedisConfig `toml:"redis"`

	AI        srv.AIConfig    `toml:"ai"`
	Retrieval RetrievalConfig `toml:"retrieval"`

	Security Security `toml:"security"`
}

// RetrievalConfig 检索相关的可调参数
type RetrievalConfig struct {
	TopK       int `toml:"top_k"`       // 相似片段召回数量，默认 6
	ChunkWords int `toml:"chunk_words"` // 切片最大词数，默认 500
}

func (r RetrievalConfig) TopKOrDefault() int {
	if r.TopK > 0 {
		return r.TopK
	}
	return 6
}

func (r RetrievalConfig) ChunkWordsOrDefault() int {
	if r.ChunkWords > 0 {
		return r.ChunkWords
	}
	return 500
}

type Security struct {
	JWTSecret string `toml:"jwt_secret"` // 为空则关闭鉴权
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("STUDYBUDDY_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.Redis.FromENV()
	c.AI.Cohere.Token = os.Getenv("STUDYBUDDY_COHERE_TOKEN")
	c.AI.Completion.Driver = os.Getenv("STUDYBUDDY_COMPLETION_DRIVER")
	c.AI.Completion.Token = os.Getenv("STUDYBUDDY_COMPLETION_TOKEN")
	c.Security.JWTSecret = os.Getenv("STUDYBUDDY_JWT_SECRET")
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("STUDYBUDDY_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

type RedisConfig struct {
	Addr     string `toml:"addr"`     // Redis地址，格式: host:port
	Password string `toml:"password"` // Redis密码
	DB       int    `toml:"db"`       // Redis数据库索引 (0-15)

	PoolSize     int `toml:"pool_size"`      // 连接池大小，默认10
	MinIdleConns int `toml:"min_idle_conns"` // 最小空闲连接数，默认0
}

func (r *RedisConfig) FromENV() {
	r.Addr = os.Getenv("STUDYBUDDY_REDIS_ADDR")
	r.Password = os.Getenv("STUDYBUDDY_REDIS_PASSWORD")
	if dbStr := os.Getenv("STUDYBUDDY_REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			r.DB = db
		}
	}
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("STUDYBUDDY_API_LOG_LEVEL")
	l.Path = os.Getenv("STUDYBUDDY_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
