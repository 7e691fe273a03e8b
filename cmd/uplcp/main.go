// SPDX-License-Identifier: MIT

// Command uplcp partitions the parameter interval of a uni-parametric LCP,
// LP or QP instance into invariancy regions and writes them to a solution file.
//
//	uplcp problem.txt -numThreads 4 -parStart T -showProgress F
//	uplcp problem.txt --config run.yaml --output out.txt --metrics-file run.prom
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
