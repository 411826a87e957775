package internal

import (
	"fmt"
	"net/netip"
	"strings"
	"time"
)

type Config struct {
	Host     string `env:"HOST,default=0.0.0.0"`
	WSPort   int    `env:"WS_PORT,required=true"`
	GRPCPort int    `env:"GRPC_PORT,required=true"`
	LogLevel string `env:"LOG_LEVEL,default=INFO"`
	// Reverse proxies allowed to set X-Forwarded-For, as IPs or CIDRs
	// separated by ';'. Empty means the socket peer is the visitor.
	TrustedProxies []string `env:"TRUSTED_PROXIES,separator=;"`

	SqlitePath     string `env:"SQLITE_PATH,required=true"`
	SqliteDebug    bool   `env:"SQLITE_DEBUG,default=false"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`

	// Optional: owner notifications are disabled without a broker url.
	AmqpURL      string `env:"AMQP_URL"`
	AmqpExchange string `env:"AMQP_EXCHANGE,default=portal-chat"`
	// Optional: connections are kept in memory without a redis address.
	RedisAddr   string `env:"REDIS_ADDR"`
	RedisPrefix string `env:"REDIS_PREFIX,default=portal-chat:"`
	// Scopes the redis keys of this process, the host name when empty.
	InstanceID string `env:"INSTANCE_ID"`

	JwtSecret         string        `env:"JWT_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=12h"`

	CensoredWords   string `env:"CENSORED_WORDS"`
	CensoredDir     string `env:"CENSORED_DIR"`
	CharReplacement string `env:"CHARACTER_REPLACEMENT,default=*"`

	HistoryLimit    int           `env:"HISTORY_LIMIT,default=100"`
	SinkTimeout     time.Duration `env:"SINK_TIMEOUT,default=2s"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=10s"`
	WriteWait       time.Duration `env:"WRITE_WAIT,default=10s"`
	PongWait        time.Duration `env:"PONG_WAIT,default=60s"`
	PingPeriod      time.Duration `env:"PING_PERIOD,default=50s"`
	MaxMessageSize  int64         `env:"MAX_MESSAGE_SIZE,default=4096"`
	SendBufferSize  int           `env:"SEND_BUFFER_SIZE,default=64"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// Validate checks the constraints go-env cannot express.
func (c Config) Validate() error {
	if c.PingPeriod >= c.PongWait {
		return fmt.Errorf("PING_PERIOD (%s) must be shorter than PONG_WAIT (%s)", c.PingPeriod, c.PongWait)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("HISTORY_LIMIT must be positive, got %d", c.HistoryLimit)
	}
	if c.SendBufferSize <= 0 {
		return fmt.Errorf("SEND_BUFFER_SIZE must be positive, got %d", c.SendBufferSize)
	}
	if _, err := CharacterRune(c.CharReplacement); err != nil {
		return err
	}
	for _, proxy := range c.TrustedProxies {
		if err := validateProxy(proxy); err != nil {
			return err
		}
	}
	return nil
}

func validateProxy(proxy string) error {
	if strings.Contains(proxy, "/") {
		if _, err := netip.ParsePrefix(proxy); err != nil {
			return fmt.Errorf("TRUSTED_PROXIES: invalid CIDR %q: %w", proxy, err)
		}
		return nil
	}
	if _, err := netip.ParseAddr(proxy); err != nil {
		return fmt.Errorf("TRUSTED_PROXIES: invalid IP %q: %w", proxy, err)
	}
	return nil
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
