/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package backoffcfg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/voedger/backoff/pkg/backoff"
)

// Load reads Config from the YAML file at path
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()
	cfg, err := decode(file)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads Config from YAML bytes, unknown keys are rejected
func Parse(data []byte) (Config, error) {
	return decode(bytes.NewReader(data))
}

func decode(r io.Reader) (cfg Config, err error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Options converts the fields that are set into backoff options
func (c Config) Options() []backoff.Option {
	var opts []backoff.Option
	if c.MaxRetries != nil {
		opts = append(opts, backoff.WithMaxRetries(*c.MaxRetries))
	}
	if c.InitialWaitPeriod != nil {
		opts = append(opts, backoff.WithInitialWaitPeriod(time.Duration(*c.InitialWaitPeriod)))
	}
	if c.GrowthFactor != nil {
		opts = append(opts, backoff.WithGrowthFactor(*c.GrowthFactor))
	}
	if len(c.Name) > 0 {
		opts = append(opts, backoff.WithName(c.Name))
	}
	return opts
}

// Policy builds a policy from c, extra options are applied after the config ones
func (c Config) Policy(extra ...backoff.Option) (backoff.Policy, error) {
	return backoff.New(append(c.Options(), extra...)...)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
