package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "1MB"
	defaultMongoTimeout       = 10 * time.Second
	defaultAccessTokenTTL     = 24 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// QRCode configuration for certificate verification codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for resource change events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configuration for the activity push receiver
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	// Client configuration used by hubctl
	Client *ClientConfig `json:"client" yaml:"client"`
}

// MongoConfig defines the document database connection.
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
	MaxPoolSize    uint64        `json:"maxPoolSize" yaml:"maxPoolSize"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL    time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	VerifyBaseURL        string `json:"verifyBaseUrl" yaml:"verifyBaseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider      string `json:"provider" yaml:"provider"`
	ProjectID     string `json:"projectId" yaml:"projectId"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// WorkerConfig defines the push endpoint that receives resource events.
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
	// PushAudience is the OIDC audience Pub/Sub signs push tokens for; empty derives it from the request URL.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// ClientConfig defines how the admin console reaches the API.
type ClientConfig struct {
	APIBaseURL string `json:"apiBaseUrl" yaml:"apiBaseUrl"`
	// TokenFile is where the session token is persisted between runs.
	TokenFile string `json:"tokenFile" yaml:"tokenFile"`
}

// LoadWithEnv reads <currEnv>.yaml from the first search path that has it, then
// lets environment variables override individual keys.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	dirs, err := searchDirs(configPath)
	if err != nil {
		return nil, err
	}

	name := currEnv + ".yaml"
	idx := slices.IndexFunc(dirs, func(dir string) bool {
		_, statErr := os.Stat(filepath.Join(dir, name))

		return statErr == nil
	})
	if idx < 0 {
		return nil, errors.Errorf("config file %s not found in any search path", name)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(filepath.Join(dirs[idx], name)), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}

	// MONGO_URI -> mongo.uri, CLIENT_APIBASEURL -> client.apiBaseUrl
	fileKeys := k.Raw()
	overlay := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fileKeys), value
		},
	})
	if err := k.Load(overlay, nil); err != nil {
		return nil, errors.Wrap(err, "overlay environment")
	}

	cfg := new(T)
	decoder := &mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        strings.EqualFold,
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoder}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}

	return cfg, nil
}

func searchDirs(extra []string) ([]string, error) {
	dirs := []string{defaultPath}
	if len(extra) == 0 {
		return dirs, nil
	}

	pwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "os.Getwd")
	}
	for _, dir := range extra {
		dirs = append(dirs, filepath.Join(pwd, dir))
	}

	return dirs, nil
}

// New loads config.yaml, honouring a .env file in the working directory when present.
func New() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	return cfg, nil
}

func orDefault[V comparable](v *V, fallback V) {
	var zero V
	if *v == zero {
		*v = fallback
	}
}

func ensure[S any](p **S) *S {
	if *p == nil {
		*p = new(S)
	}

	return *p
}

func applyDefaults(cfg *Config) {
	cfg.HTTP.MaxRequestBodySize = strings.TrimSpace(cfg.HTTP.MaxRequestBodySize)
	orDefault(&cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	orDefault(&cfg.HTTP.Port, 8080)

	mongo := ensure(&cfg.Mongo)
	orDefault(&mongo.URI, "mongodb://localhost:27017")
	orDefault(&mongo.Database, "creativehub")
	if mongo.ConnectTimeout <= 0 {
		mongo.ConnectTimeout = defaultMongoTimeout
	}

	auth := ensure(&cfg.Auth)
	if auth.AccessTokenTTL <= 0 {
		auth.AccessTokenTTL = defaultAccessTokenTTL
	}
	if auth.MinPasswordLength <= 0 {
		auth.MinPasswordLength = 6
	}

	orDefault(&ensure(&cfg.Worker).Port, 8081)
	orDefault(&ensure(&cfg.Client).APIBaseURL, "http://localhost:8080")
}

// canonicalizeEnvKey maps an env var onto the dotted koanf path, reusing the
// camelCase spelling of keys already present in the file.
func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	var path []string
	level := existing

	for segment := range strings.SplitSeq(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}
		key, child := matchKey(level, segment)
		path = append(path, key)
		level = child
	}

	return strings.Join(path, ".")
}

// matchKey returns the file spelling of segment at this level and the map below
// it; unknown segments are kept as given and end the lookup.
func matchKey(level map[string]any, segment string) (string, map[string]any) {
	want := normalizeToken(segment)
	for key, value := range level {
		if normalizeToken(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func normalizeToken(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}
