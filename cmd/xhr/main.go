// Copyright 2021 The xhr Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command xhr issues one HTTP request and prints its outcome as JSON.
//
// Usage:
//
//	xhr METHOD URL [DATA]
//
// Settings come from XHR_-prefixed environment variables, or a .env
// file in the working directory: XHR_TIMEOUT_MS, XHR_ABORT_GRACE_MS,
// XHR_RESPONSE_TYPE, XHR_HEADERS and XHR_LOG_LEVEL.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/gogama/xhr"
	"github.com/gogama/xhr/header"
	"github.com/gogama/xhr/internal/config"
	"github.com/gogama/xhr/internal/logger"
	"github.com/gogama/xhr/request"
	"github.com/gogama/xhr/transport"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	code, err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "xhr: %v\n", err)
	}
	os.Exit(code)
}

type output struct {
	ID         string          `json:"id"`
	Status     int             `json:"status,omitempty"`
	StatusText string          `json:"statusText,omitempty"`
	Headers    header.Response `json:"headers,omitempty"`
	Data       interface{}     `json:"data,omitempty"`
	Error      *errorOutput    `json:"error,omitempty"`
}

type errorOutput struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
	Code    string `json:"code,omitempty"`
}

func run(args []string, stdout, stderr io.Writer) (int, error) {
	if len(args) < 2 || len(args) > 3 {
		return 2, errors.New("usage: xhr METHOD URL [DATA]")
	}

	cfg, err := config.Load(".env")
	if err != nil {
		return 2, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.LogLevel, stderr)
	defer func() {
		_ = log.Sync()
	}()

	var data interface{}
	if len(args) == 3 {
		data = args[2]
	}
	req, err := request.NewConfig(args[0], args[1], data)
	if err != nil {
		return 2, err
	}
	req.Headers = cfg.RequestHeaders
	req.ResponseType = transport.ResponseType(cfg.ResponseType)
	req.Timeout = cfg.Timeout

	x := &xhr.Executor{
		Logger:     log,
		AbortGrace: cfg.AbortGrace,
	}
	call := x.Go(req)
	_, err = call.Result()
	e := call.Execution()
	log.Info("request settled",
		zap.String("id", e.ID),
		zap.Int("status", e.StatusCode()),
		zap.Duration("duration", e.Duration()),
		zap.Bool("ok", err == nil))

	out := output{ID: e.ID}
	if e.Response != nil {
		out.Status = e.Response.Status
		out.StatusText = e.Response.StatusText
		out.Headers = e.Response.Headers
		out.Data = printable(e.Response.Data)
	}
	code := 0
	if err != nil {
		code = 1
		out.Error = &errorOutput{Message: err.Error()}
		var re *request.Error
		if errors.As(err, &re) {
			out.Error.Kind = re.Kind().String()
			out.Error.Code = re.Code
		}
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(out); err != nil {
		return 1, err
	}
	return code, nil
}

func printable(data interface{}) interface{} {
	if b, ok := data.([]byte); ok {
		return string(b)
	}
	return data
}
