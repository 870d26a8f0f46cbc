package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-r directory with the override catalogs
//	-default-culture default locale tag
//	-cultures comma-separated supported locale tags
//	-allow-missing-override use bundled catalogs when an override file is missing
//	-array-strategy union|replace
//	-null-strategy merge|overwrite
//	-indent indentation of written catalogs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-log-level zerolog level name
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("localization-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var resourcesPath string
	var defaultCulture string
	var cultures string
	var allowMissingOverride bool
	var arrayStrategy string
	var nullStrategy string
	var indent string
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var logLevel string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&resourcesPath, "r", "", "Directory with override catalogs")
	fs.StringVar(&defaultCulture, "default-culture", "", "Default locale tag")
	fs.StringVar(&cultures, "cultures", "", "Comma-separated supported locale tags")
	fs.BoolVar(&allowMissingOverride, "allow-missing-override", false, "Use bundled catalogs when an override file is missing")
	fs.StringVar(&arrayStrategy, "array-strategy", "", "Array merge strategy: union or replace")
	fs.StringVar(&nullStrategy, "null-strategy", "", "Null merge strategy: merge or overwrite")
	fs.StringVar(&indent, "indent", "", "Indentation of written catalogs")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(errors.New("error parsing flags"), err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Localization: Localization{
			ResourcesPath:        resourcesPath,
			DefaultCulture:       defaultCulture,
			SupportedCultures:    splitList(cultures),
			AllowMissingOverride: allowMissingOverride,
			ArrayStrategy:        arrayStrategy,
			NullStrategy:         nullStrategy,
			Indent:               indent,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
