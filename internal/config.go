package internal

import (
	"fmt"
	"time"
)

type Config struct {
	Port       int    `env:"PORT,default=3001"`
	HealthPort int    `env:"HEALTH_PORT,default=50051"`
	DebugPort  int    `env:"DEBUG_PORT,default=8081"`
	LogLevel   string `env:"LOG_LEVEL,default=INFO"`

	SQLiteFilepath string `env:"SQLITE_FILEPATH,required=true"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`

	JWTSecret         string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=168h"`

	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	DeliveryTimeout      time.Duration `env:"DELIVERY_TIMEOUT,default=2s"`
	PingInterval         time.Duration `env:"PING_INTERVAL,default=25s"`
	EventTimeout         time.Duration `env:"EVENT_TIMEOUT,default=500ms"`
	RoomBufferSize       int           `env:"ROOM_BUFFER_SIZE,default=128"`
	EventBufferSize      int           `env:"EVENT_BUFFER_SIZE,default=1024"`
	TypingTTL            time.Duration `env:"TYPING_TTL,default=24h"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=1s"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=15s"`

	SearchBatchSize     int           `env:"SEARCH_BATCH_SIZE,default=50"`
	SearchBufferTimeout time.Duration `env:"SEARCH_BUFFER_TIMEOUT,default=1s"`
	SinkTimeout         time.Duration `env:"SINK_TIMEOUT,default=2s"`

	CensoredDir     string `env:"CENSORED_DIR"`
	CensoredWords   string `env:"CENSORED_WORDS"`
	CharReplacement string `env:"CHARACTER_REPLACEMENT,default=*"`

	CORSOrigin      string        `env:"CORS_ORIGIN,default=http://localhost:5173"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX,default=100"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW,default=15m"`

	AuthRateLimitMax       int           `env:"AUTH_RATE_LIMIT_MAX,default=5"`
	AuthRateLimitWindow    time.Duration `env:"AUTH_RATE_LIMIT_WINDOW,default=15m"`
	MessageRateLimitMax    int           `env:"MESSAGE_RATE_LIMIT_MAX,default=5"`
	MessageRateLimitWindow time.Duration `env:"MESSAGE_RATE_LIMIT_WINDOW,default=10s"`

	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=10s"`
	LatencyThreshold     time.Duration `env:"LATENCY_THRESHOLD,default=200ms"`
	LowCapacityThreshold int           `env:"LOW_CAPACITY_THRESHOLD,default=10"`
	RSSThresholdMb       uint64        `env:"RSS_THRESHOLD_MB,default=512"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
