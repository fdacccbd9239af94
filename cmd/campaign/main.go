package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	apperrors "github.com/chainsafe/campaign-client/pkg/app/errors"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(apperrors.ExitCode(err))
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "campaign",
		Usage: "approve, create and donate to fundraising campaigns",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to an optional YAML configuration file",
				EnvVars: []string{"CAMPAIGN_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "dotenv file loaded into the environment (defaults to ./.env when present)",
			},
		},
		Action: runAction,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "approve, optionally create a campaign, then donate",
				Action: runAction,
			},
			{
				Name:   "approve",
				Usage:  "approve the campaign to spend the donation amount",
				Action: approveAction,
			},
			{
				Name:   "create-campaign",
				Usage:  "create a campaign through the factory",
				Action: createCampaignAction,
			},
			{
				Name:   "donate",
				Usage:  "donate the configured amount to the campaign",
				Action: donateAction,
			},
			{
				Name:  "describe",
				Usage: "print the metadata of a campaign",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "campaign",
						Usage: "campaign address (defaults to contracts.campaign_address)",
					},
				},
				Action: describeAction,
			},
			{
				Name:   "status",
				Usage:  "print the signer's token balance and the campaign allowance",
				Action: statusAction,
			},
			{
				Name:      "decode-metadata",
				Usage:     "decode hex-encoded campaign metadata",
				ArgsUsage: "<hex>",
				Action:    decodeMetadataAction,
			},
			{
				Name:   "config",
				Usage:  "print the effective configuration",
				Action: configAction,
			},
		},
	}
}
