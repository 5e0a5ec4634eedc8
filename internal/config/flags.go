// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
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
//	-a document service address in format [host]:[port]
//	-process-url platform AJAX endpoint URL
//	-process-name application process name
//	-upload-path document endpoint path
//	-doc-type document type tag
//	-app-id-source p_app_id source: token or application
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-app-id platform application id
//	-session-id platform session id
//	-page-id platform page id
//	-headless run once without the terminal UI
//	-log-file log file path
//	-name, -hire-date, -salary, -file employee form values
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var uploadAddress NetAddress
	var processURL, processName, uploadPath, docType, appIDSource string
	var requestTimeout time.Duration
	var appID, sessionID, pageID, logFile string
	var headless bool
	var name, hireDate, salary, file string
	var jsonConfigPath string

	fs := flag.NewFlagSet("go-emp-docs", flag.ContinueOnError)

	fs.Var(&uploadAddress, "a", "Document service address host:port")
	fs.StringVar(&processURL, "process-url", "", "Platform AJAX endpoint URL")
	fs.StringVar(&processName, "process-name", "", "Application process name")
	fs.StringVar(&uploadPath, "upload-path", "", "Document endpoint path")
	fs.StringVar(&docType, "doc-type", "", "Document type tag")
	fs.StringVar(&appIDSource, "app-id-source", "", "p_app_id header source: token or application")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&appID, "app-id", "", "Platform application id")
	fs.StringVar(&sessionID, "session-id", "", "Platform session id")
	fs.StringVar(&pageID, "page-id", "", "Platform page id")
	fs.BoolVar(&headless, "headless", false, "Run once without the terminal UI")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&name, "name", "", "Employee name")
	fs.StringVar(&hireDate, "hire-date", "", "Employee hire date")
	fs.StringVar(&salary, "salary", "", "Employee salary")
	fs.StringVar(&file, "file", "", "Path of the document to upload")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			ApplicationID: appID,
			SessionID:     sessionID,
			PageID:        pageID,
			Headless:      headless,
			LogFile:       logFile,
		},
		Adapter: Adapter{
			ProcessURL:        processURL,
			ProcessName:       processName,
			UploadAddress:     uploadAddress.String(),
			UploadPath:        uploadPath,
			DocType:           docType,
			AppIDHeaderSource: appIDSource,
			RequestTimeout:    requestTimeout,
		},
		Form: Form{
			Name:     name,
			HireDate: hireDate,
			Salary:   salary,
			File:     file,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be "localhost", an IP address or a DNS name.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host == "" {
		return errors.New("host is empty")
	}

	if host != "localhost" && net.ParseIP(host) == nil && !isHostName(host) {
		return errors.New("incorrect host provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

func isHostName(host string) bool {
	if len(host) > 253 || strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") {
		return false
	}

	for _, label := range strings.Split(host, ".") {
		if label == "" || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, r := range label {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-') {
				return false
			}
		}
	}

	return true
}
