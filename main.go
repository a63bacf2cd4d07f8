/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/budistudiobank-hash/tanggap-cinta-anak/cmd"
	"github.com/budistudiobank-hash/tanggap-cinta-anak/logging"
)

func main() {
	logging.Init()
	logger := logging.Logger(logging.SourceApp)

	app := &cli.Command{
		Name:  "tanggap",
		Usage: "Tanggap Cinta Anak - child growth and pregnancy risk checks",
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdMigrate,
			cmd.CmdAssess,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatal("Command failed", "error", err)
	}
}
