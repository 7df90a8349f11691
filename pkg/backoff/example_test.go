/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package backoff_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/voedger/backoff/pkg/backoff"
)

func ExampleSupply() {
	policy := backoff.MustNew(
		backoff.WithMaxRetries(3),
		backoff.WithInitialWaitPeriod(time.Millisecond),
	)

	attempts := 0
	result, err := backoff.Supply(context.Background(), policy, func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("temporary error")
		}
		return "success", nil
	})

	fmt.Printf("Result: %s\n", result)
	fmt.Printf("Error: %v\n", err)
	fmt.Printf("Attempts: %d\n", attempts)
	// Output:
	// Result: success
	// Error: <nil>
	// Attempts: 3
}

func ExamplePolicy_Execute() {
	policy, err := backoff.Default().WithMaxRetries(2)
	if err != nil {
		panic(err)
	}
	policy, err = policy.WithInitialWaitPeriod(time.Millisecond)
	if err != nil {
		panic(err)
	}

	err = policy.Execute(context.Background(), func() error {
		return errors.New("connection refused")
	})

	var failed *backoff.RetriableOperationFailedError
	if errors.As(err, &failed) {
		fmt.Println("Attempts:", failed.Attempts)
		fmt.Println("Cause:", failed.Cause)
	}
	// Output:
	// Attempts: 3
	// Cause: connection refused
}

func ExamplePolicy_Schedule() {
	policy := backoff.MustNew(backoff.WithMaxRetries(4), backoff.WithInitialWaitPeriod(250*time.Millisecond))
	fmt.Println(policy.Schedule(policy.MaxRetries()))
	fmt.Println(policy.MaxTotalWait())
	// Output:
	// [250ms 500ms 1s 2s]
	// 3.75s
}
