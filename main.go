// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/staranto/pyclean/internal/cacheutil"
	"github.com/staranto/pyclean/internal/command"
	mylog "github.com/staranto/pyclean/internal/log"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// realMain returns 0 whatever the removal outcome. Only a failure to start
// (no anchor, no app) is reflected in the exit status.
func realMain() int {
	mylog.InitLogger()

	anchor, err := cacheutil.Anchor()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	log.Debugf("anchor resolved to %s", anchor)

	app, err := command.InitApp(ctx, os.Args, anchor)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	return 0
}
