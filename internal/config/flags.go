// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface. An empty Host means "all
// interfaces".
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partial [StructuredConfig].
//
// Flags:
//
//	-a server listen address in format [host]:port
//	-public-dir public web root
//	-user-data-sets-dir destination of /upload-data-sets, relative to the web root
//	-image-data-sets-dir destination of /upload-image-data-sets, relative to the web root
//	-expose-uploads serve uploaded files through the static handler
//	-d upload journal DSN
//	-read-timeout server read timeout (e.g. "30s")
//	-write-timeout server write timeout (e.g. "30s")
//	-shutdown-timeout graceful shutdown timeout (e.g. "10s")
//	-server base URL used by the uploader client
//	-request-timeout uploader client request timeout (e.g. "30s")
//	-c/-config json file path with configs
//
// Positional arguments left after the flags are returned in Args.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("gan-datasets", flag.ContinueOnError)

	var serverAddress NetAddress
	var publicDir, userDataSetsDir, imageDataSetsDir string
	var exposeUploads bool
	var databaseDSN string
	var readTimeout, writeTimeout, shutdownTimeout time.Duration
	var adapterAddress string
	var requestTimeout time.Duration
	var concurrency int
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address [host]:port")
	fs.StringVar(&publicDir, "public-dir", "", "Public web root")
	fs.StringVar(&userDataSetsDir, "user-data-sets-dir", "", "User data sets directory, relative to the web root")
	fs.StringVar(&imageDataSetsDir, "image-data-sets-dir", "", "Image data sets directory, relative to the web root")
	fs.BoolVar(&exposeUploads, "expose-uploads", true, "Serve uploaded files through the static handler")
	fs.StringVar(&databaseDSN, "d", "", "Upload journal DSN")
	fs.DurationVar(&readTimeout, "read-timeout", 0, "Server read timeout (e.g., 30s)")
	fs.DurationVar(&writeTimeout, "write-timeout", 0, "Server write timeout (e.g., 30s)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&adapterAddress, "server", "", "Server base URL for the uploader client")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Client request timeout (e.g., 30s)")
	fs.IntVar(&concurrency, "j", 0, "Number of files the client uploads at once")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				PublicDir:        publicDir,
				UserDataSetsDir:  userDataSetsDir,
				ImageDataSetsDir: imageDataSetsDir,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
			Concurrency:    concurrency,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}

	// only an explicitly passed -expose-uploads takes part in merging
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "expose-uploads" {
			cfg.Storage.Files.ExposeUploads = &exposeUploads
		}
	})

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when no port was set.
func (a *NetAddress) String() string {
	if a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. The host must be empty, "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `[host]:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
