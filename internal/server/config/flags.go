package config

import (
	"flag"
	"os"
	"time"

	"github.com/calidadsoft/loginbackend/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     HTTP bind address (e.g., ":8080")
//	-d string     PostgreSQL DSN
//	-s string     JWT HMAC secret key
//	-t int        session token validity, minutes
//	-m int        max failed login attempts before blocking
//	-k int        block duration, minutes
//	-seed         seed the initial admin account at startup
//	-ae string    seed admin email
//	-ap string    seed admin password
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers in minutes and then converted
//     to time.Duration values.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-m", "-k", "-seed", "-ae", "-ap"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity duration (in minutes)")
	fs.IntVar(&config.MaxLoginAttempts, "m", config.MaxLoginAttempts, "max failed login attempts before blocking")
	blockMinutes := fs.Int("k", int(config.BlockDuration.Minutes()), "block duration (in minutes)")

	fs.BoolVar(&config.SeedUsers, "seed", config.SeedUsers, "seed initial admin account at startup")
	fs.StringVar(&config.SeedAdminEmail, "ae", config.SeedAdminEmail, "seed admin email")
	fs.StringVar(&config.SeedAdminPassword, "ap", config.SeedAdminPassword, "seed admin password")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
	config.BlockDuration = time.Duration(*blockMinutes) * time.Minute
}
