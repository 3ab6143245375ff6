package config

import (
	"github.com/ZilDuck/nft-marketplace/internal/log"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"math/big"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Env     string
	Network string
	Index   string
	Debug   bool
	LogPath string

	DataPath string
	ApiPort  string

	// Operator is the address the marketplace presents to registries when it
	// asks whether it may transfer a token on a seller's behalf.
	Operator string

	MetadataTimeout int

	Demo          DemoConfig
	ElasticSearch ElasticSearchConfig
	Amqp          AmqpConfig
}

// DemoConfig seeds the in-memory registries a local daemon trades against.
// Each listed contract is created with TokenSupply tokens minted to Admin and
// the marketplace operator approved to transfer them.
type DemoConfig struct {
	SingleContracts   []string
	QuantityContracts []string
	Admin             string
	TokenSupply       int
}

type ElasticSearchConfig struct {
	Hosts       []string
	Sniff       bool
	HealthCheck bool
	Debug       bool
	Username    string
	Password    string
	Refresh     string
	MappingDir  string
}

type AmqpConfig struct {
	Uri string
}

func Init(logName string) {
	err := godotenv.Load(".env")
	if err != nil {
		zap.L().With(zap.Error(err)).Warn("Unable to load .env")
	}

	initLogger(logName)
}

func initLogger(logName string) {
	path := Get().LogPath
	if path == "" {
		path = "./var/" + logName + ".log"
	}

	log.NewLogger(path, Get().Debug)
}

func Get() *Config {
	return &Config{
		Env:             getString("ENV", ""),
		Network:         getString("NETWORK", "mainnet"),
		Index:           getString("INDEX_NAME", "marketplace"),
		Debug:           getBool("DEBUG", false),
		LogPath:         getString("LOG_PATH", ""),
		DataPath:        getString("DATA_PATH", "./var/marketplace.db"),
		ApiPort:         getString("API_PORT", "8080"),
		Operator:        getString("MARKETPLACE_OPERATOR", "marketplace"),
		MetadataTimeout: getInt("METADATA_TIMEOUT", 10),
		Demo: DemoConfig{
			SingleContracts:   getSlice("DEMO_SINGLE_CONTRACTS", make([]string, 0), ","),
			QuantityContracts: getSlice("DEMO_QUANTITY_CONTRACTS", make([]string, 0), ","),
			Admin:             getString("DEMO_ADMIN", "0xadmin"),
			TokenSupply:       getInt("DEMO_TOKEN_SUPPLY", 10),
		},
		ElasticSearch: ElasticSearchConfig{
			Hosts:       getSlice("ELASTIC_SEARCH_HOSTS", make([]string, 0), ","),
			Sniff:       getBool("ELASTIC_SEARCH_SNIFF", true),
			HealthCheck: getBool("ELASTIC_SEARCH_HEALTH_CHECK", true),
			Debug:       getBool("ELASTIC_SEARCH_DEBUG", false),
			Username:    getString("ELASTIC_SEARCH_USERNAME", ""),
			Password:    getString("ELASTIC_SEARCH_PASSWORD", ""),
			Refresh:     getString("ELASTIC_SEARCH_REFRESH", "wait_for"),
			MappingDir:  getString("ELASTIC_SEARCH_MAPPING_DIR", "./mappings"),
		},
		Amqp: AmqpConfig{
			Uri: getString("AMQP_URI", ""),
		},
	}
}

func getString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultValue
}

func getInt(key string, defaultValue int) int {
	valStr := getString(key, "")
	val, _, err := big.ParseFloat(valStr, 10, 0, big.ToNearestEven)
	if err != nil {
		return defaultValue
	}

	intVal, _ := val.Int64()
	return int(intVal)
}

func getBool(key string, defaultValue bool) bool {
	valStr := getString(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultValue
}

func getSlice(key string, defaultVal []string, sep string) []string {
	valStr := getString(key, "")
	if valStr == "" {
		return defaultVal
	}

	return strings.Split(valStr, sep)
}
