package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
)

// NetAddress is a listen address given as host:port. The host may be empty
// (all interfaces), "localhost" or an IP literal; IPv6 literals are bracketed.
// It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

var (
	errAddressFormat = errors.New("need address in a form `host:port`")
	errPortRange     = errors.New("port must be between 1 and 65535")
	errHostFormat    = errors.New("host must be empty, localhost or an IP address")
)

// ParseFlags reads the command line into a partial config. Unset flags stay
// zero so lower-priority sources can fill them.
//
//	-a                 listen address, host:port
//	-c, -config        JSON or YAML config file
//	-shutdown-timeout  graceful shutdown bound, e.g. 10s
//	-log-level         zerolog level name
//	-upstream-endpoint PhoneNotify SOAP endpoint URL
//	-upstream-username PhoneNotify basic auth user
//	-upstream-password PhoneNotify basic auth password
func ParseFlags() *StructuredConfig {
	// flag.CommandLine exits the process on a bad flag.
	cfg, _ := parseFlagSet(flag.CommandLine, os.Args[1:])
	return cfg
}

func parseFlagSet(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		cfg     StructuredConfig
		address NetAddress
	)

	fs.Var(&address, "a", "Listen address host:port")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "JSON or YAML config file path (alias of -c)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Upstream.Endpoint, "upstream-endpoint", "", "PhoneNotify SOAP endpoint URL")
	fs.StringVar(&cfg.Upstream.Username, "upstream-username", "", "PhoneNotify basic auth username")
	fs.StringVar(&cfg.Upstream.Password, "upstream-password", "", "PhoneNotify basic auth password")

	err := fs.Parse(args)
	cfg.Server.HTTPAddress = address.String()

	return &cfg, err
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses and validates host:port.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", errAddressFormat, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errPortRange
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errHostFormat
	}

	a.Host = host
	a.Port = port
	return nil
}
