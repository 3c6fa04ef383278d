package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/calidadsoft/loginbackend/internal/flagx"
	"github.com/calidadsoft/loginbackend/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "1m" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config
// struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	MaxLoginAttempts      int            `json:"max_login_attempts"`
	BlockDuration         timex.Duration `json:"block_duration"`
	SeedUsers             bool           `json:"seed_users"`
	SeedAdminEmail        string         `json:"seed_admin_email"`
	SeedAdminPassword     string         `json:"seed_admin_password"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; when
// neither is set, no JSON file is loaded. Fields absent from the file keep
// their current (default) values. If the file cannot be read or contains
// invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
	if c.MaxLoginAttempts != 0 {
		config.MaxLoginAttempts = c.MaxLoginAttempts
	}
	if c.BlockDuration.Duration != 0 {
		config.BlockDuration = time.Duration(c.BlockDuration.Duration)
	}
	if c.SeedUsers {
		config.SeedUsers = true
	}
	if c.SeedAdminEmail != "" {
		config.SeedAdminEmail = c.SeedAdminEmail
	}
	if c.SeedAdminPassword != "" {
		config.SeedAdminPassword = c.SeedAdminPassword
	}
}
