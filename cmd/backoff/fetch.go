/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/voedger/backoff/pkg/goutils/httpu"
)

func newFetchCmd(params *cliParams) *cobra.Command {
	var output string
	var headers []string
	cmd := &cobra.Command{
		Use:   "fetch URL",
		Short: "GET the URL until it responds with 200 or 201",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			reqOpts, err := headerOpts(headers)
			if err != nil {
				return err
			}
			s, err := params.newSession(cmd, "fetch")
			if err != nil {
				return err
			}
			defer func() { err = s.close(err) }()

			client, cleanup := httpu.NewIHTTPClient(s.policy, reqOpts...)
			defer cleanup()

			if len(output) > 0 {
				return client.Download(cmd.Context(), args[0], output)
			}
			resp, err := client.Req(cmd.Context(), args[0], "")
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), resp.Body)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the body to the file instead of stdout")
	cmd.Flags().StringArrayVarP(&headers, "header", "H", nil, "Request header \"Name: value\", may be repeated")
	return cmd
}

func headerOpts(headers []string) ([]httpu.ReqOptFunc, error) {
	kv := make([]string, 0, 2*len(headers))
	for _, h := range headers {
		name, value, ok := strings.Cut(h, ":")
		name = strings.TrimSpace(name)
		if !ok || len(name) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHeader, h)
		}
		kv = append(kv, name, strings.TrimSpace(value))
	}
	if len(kv) == 0 {
		return nil, nil
	}
	return []httpu.ReqOptFunc{httpu.WithHeaders(kv...)}, nil
}
