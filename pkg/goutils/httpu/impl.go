/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package httpu

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/voedger/backoff/pkg/backoff"
	"github.com/voedger/backoff/pkg/goutils/logger"
)

func (c *implIHTTPClient) Req(ctx context.Context, urlStr string, body string, optFuncs ...ReqOptFunc) (*HTTPResponse, error) {
	opts := newReqOpts(c.defaultOpts, optFuncs)
	return backoff.Supply(ctx, c.policy, func() (*HTTPResponse, error) {
		resp, err := c.do(ctx, opts, urlStr, body)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		respBody, err := readBody(resp)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
		if !slices.Contains(opts.expectedHTTPCodes, resp.StatusCode) {
			return nil, unexpectedStatusCode(resp.StatusCode, respBody)
		}
		return &HTTPResponse{
			StatusCode: resp.StatusCode,
			Header:     resp.Header,
			Body:       respBody,
		}, nil
	})
}

func (c *implIHTTPClient) Download(ctx context.Context, urlStr string, dstPath string, optFuncs ...ReqOptFunc) error {
	opts := newReqOpts(c.defaultOpts, optFuncs)
	err := c.policy.Execute(ctx, func() error {
		return c.download(ctx, opts, urlStr, dstPath)
	})
	if err == nil {
		logger.VerboseCtx(logger.WithContextAttrs(ctx, logger.LogAttr_URL, urlStr), "downloaded to ", dstPath)
	}
	return err
}

func (c *implIHTTPClient) CloseIdleConnections() {
	c.client.CloseIdleConnections()
}

func (c *implIHTTPClient) do(ctx context.Context, opts *reqOpts, urlStr string, body string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, opts.method, urlStr, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("NewRequest() failed: %w", err)
	}
	for k, v := range opts.headers {
		req.Header.Set(k, v)
	}
	return c.client.Do(req)
}

// download makes one attempt, the response body goes to a temp file next to dstPath
func (c *implIHTTPClient) download(ctx context.Context, opts *reqOpts, urlStr string, dstPath string) (err error) {
	resp, err := c.do(ctx, opts, urlStr, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if !slices.Contains(opts.expectedHTTPCodes, resp.StatusCode) {
		respBody, _ := readBody(resp)
		return unexpectedStatusCode(resp.StatusCode, respBody)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dstPath), downloadTempPattern)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err = io.Copy(tmp, resp.Body); err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), downloadedFilePerm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dstPath)
}
