// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/contractd/command/contract-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "contract-cli"
	app.Usage = "manage records held by contractd"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " configuration `FILE` [$XDG_CONFIG_HOME/contract-cli/contract-cli.json]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " admin key `PASSWORD`",
		},
	}

	ownerFlag := cli.StringFlag{
		Name:  "owner, o",
		Value: "",
		Usage: "*owner `ACCOUNT`",
	}
	idFlag := cli.StringFlag{
		Name:  "id, i",
		Value: "",
		Usage: "*record `ID`",
	}
	nameFlag := cli.StringFlag{
		Name:  "name, n",
		Value: "",
		Usage: "*field `NAME`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "create the configuration holding the admin key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*contractd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "private-key, k",
					Value: "",
					Usage: " use an existing base58 private `KEY`",
				},
				cli.BoolFlag{
					Name:  "testnet, t",
					Usage: " generate a testnet key",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "account",
			Usage:     "display the admin account",
			ArgsUsage: " ",
			Action:    runAccount,
		},
		{
			Name:      "create",
			Usage:     "create a record for an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				ownerFlag,
				cli.StringSliceFlag{
					Name:  "field, f",
					Usage: " field `NAME=VALUE`, repeat for more fields",
				},
				cli.StringFlag{
					Name:  "party-a, a",
					Value: "",
					Usage: " first party `STRING`",
				},
				cli.StringFlag{
					Name:  "party-b, b",
					Value: "",
					Usage: " second party `STRING`",
				},
				cli.StringFlag{
					Name:  "type, t",
					Value: "",
					Usage: " contract type `STRING`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "update",
			Usage:     "set one field of a record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				ownerFlag,
				idFlag,
				nameFlag,
				cli.StringFlag{
					Name:  "value, V",
					Value: "",
					Usage: " field `VALUE`",
				},
			},
			Action: runUpdate,
		},
		{
			Name:      "delete",
			Usage:     "remove one field of a record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				ownerFlag,
				idFlag,
				nameFlag,
			},
			Action: runDelete,
		},
		{
			Name:      "get",
			Usage:     "read one field of a record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				ownerFlag,
				idFlag,
				nameFlag,
			},
			Action: runGet,
		},
		{
			Name:      "fields",
			Usage:     "read all fields of a record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				ownerFlag,
				idFlag,
			},
			Action: runFields,
		},
		{
			Name:      "list",
			Usage:     "list the record ids of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				ownerFlag,
			},
			Action: runList,
		},
		{
			Name:      "info",
			Usage:     "display contractd status",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:      "watch",
			Usage:     "print record change notifications",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "subscribe, s",
					Value: "",
					Usage: "*publisher IP and port, `IP:PORT`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 0,
					Usage: " stop after `COUNT` notifications, 0 = no limit",
				},
			},
			Action: runWatch,
		},
		{
			Name:      "version",
			Usage:     "display contract-cli version",
			ArgsUsage: " ",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		file, err := configurationFile(c.GlobalString("config"), app.Name)
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		m := &metadata{
			file:    file,
			save:    false,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			m.config, err = configuration.Load(file)
			if nil != err {
				return err
			}
		}

		c.App.Metadata["config"] = m
		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if m.verbose {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			return configuration.Save(m.file, m.config)
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// explicit file, or the default below the XDG configuration directory
func configurationFile(file string, name string) (string, error) {
	if "" != file {
		return filepath.Abs(filepath.Clean(file))
	}

	p := os.Getenv("XDG_CONFIG_HOME")
	if "" == p {
		home := os.Getenv("HOME")
		if "" == home {
			return "", fmt.Errorf("neither XDG_CONFIG_HOME nor HOME environment is set")
		}
		p = filepath.Join(home, ".config")
	}
	return filepath.Join(p, name, name+".json"), nil
}
