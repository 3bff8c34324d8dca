package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates every runtime setting of the assistant backend.
type Config struct {
	Server       ServerConfig
	AI           AIConfig
	Conversation ConversationConfig
	Security     SecurityConfig
	Storage      StorageConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	conversation, err := loadConversationConfig()
	if err != nil {
		return nil, err
	}

	security, err := loadSecurityConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:       server,
		AI:           ai,
		Conversation: conversation,
		Security:     security,
		Storage:      loadStorageConfig(),
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	origins := []string{"*"}
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		origins = origins[:0]
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port, AllowedOrigins: origins}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port, AllowedOrigins: origins}, nil
}

// AIConfig describes the optional language-model provider. Absent credentials
// are not an error: the engine starts in degraded, template-only mode.
type AIConfig struct {
	APIKey         string
	AccessKey      string
	SecretKey      string
	Model          string
	BaseURL        string
	Region         string
	Temperature    float64
	MaxTokens      int
	Timeout        time.Duration
	EnableFallback bool
}

// Enabled reports whether the required credentials were provided.
func (c AIConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// Provider names the configured backend for status reporting.
func (c AIConfig) Provider() string {
	return "ark"
}

// NewChatModel builds a chat model instance from the configuration.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("ark credentials or model missing: provide ARK_API_KEY (or AK/SK) plus ARK_MODEL")
	}

	temperature := float32(c.Temperature)
	maxTokens := c.MaxTokens

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}
	temp := 0.7
	if temperature != nil {
		temp = *temperature
	}

	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}
	tokens := 500
	if maxTokens != nil {
		tokens = *maxTokens
	}

	timeoutSeconds, err := parseOptionalIntEnv("AI_TIMEOUT_SECONDS")
	if err != nil {
		return AIConfig{}, err
	}
	timeout := 20 * time.Second
	if timeoutSeconds != nil && *timeoutSeconds > 0 {
		timeout = time.Duration(*timeoutSeconds) * time.Second
	}

	fallback, err := parseBoolEnv("AI_ENABLE_FALLBACK", true)
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		APIKey:         strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:      strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:      strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:          strings.TrimSpace(os.Getenv("ARK_MODEL")),
		BaseURL:        getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:         getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature:    temp,
		MaxTokens:      tokens,
		Timeout:        timeout,
		EnableFallback: fallback,
	}, nil
}

// ConversationConfig bounds conversation state.
type ConversationConfig struct {
	MaxMessages    int
	SessionTimeout time.Duration
}

func loadConversationConfig() (ConversationConfig, error) {
	maxMessages := 50
	if override, err := parseOptionalIntEnv("CHAT_MAX_MESSAGES"); err != nil {
		return ConversationConfig{}, err
	} else if override != nil && *override > 0 {
		maxMessages = *override
	}

	timeout := 30 * time.Minute
	if override, err := parseOptionalIntEnv("CHAT_SESSION_TIMEOUT_MINUTES"); err != nil {
		return ConversationConfig{}, err
	} else if override != nil && *override > 0 {
		timeout = time.Duration(*override) * time.Minute
	}

	return ConversationConfig{MaxMessages: maxMessages, SessionTimeout: timeout}, nil
}

// SecurityConfig bounds inbound message handling.
type SecurityConfig struct {
	MaxMessageLength     int
	RateLimitMaxRequests int
	RateLimitWindow      time.Duration
}

func loadSecurityConfig() (SecurityConfig, error) {
	maxLength := 500
	if override, err := parseOptionalIntEnv("CHAT_MAX_MESSAGE_LENGTH"); err != nil {
		return SecurityConfig{}, err
	} else if override != nil && *override > 0 {
		maxLength = *override
	}
	if maxLength > 1000 {
		maxLength = 1000
	}

	maxRequests := 10
	if override, err := parseOptionalIntEnv("CHAT_RATE_LIMIT_REQUESTS"); err != nil {
		return SecurityConfig{}, err
	} else if override != nil && *override > 0 {
		maxRequests = *override
	}

	window := time.Minute
	if override, err := parseOptionalIntEnv("CHAT_RATE_LIMIT_WINDOW_SECONDS"); err != nil {
		return SecurityConfig{}, err
	} else if override != nil && *override > 0 {
		window = time.Duration(*override) * time.Second
	}

	return SecurityConfig{
		MaxMessageLength:     maxLength,
		RateLimitMaxRequests: maxRequests,
		RateLimitWindow:      window,
	}, nil
}

// StorageConfig points at the best-effort context mirror. An empty path
// disables persistence entirely.
type StorageConfig struct {
	Path    string
	Enabled bool
}

func loadStorageConfig() StorageConfig {
	path := strings.TrimSpace(os.Getenv("CHAT_DB_PATH"))
	return StorageConfig{Path: path, Enabled: path != ""}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
