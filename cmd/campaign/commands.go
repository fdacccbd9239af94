package main

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/chainsafe/campaign-client/internal/metrics"
	apperrors "github.com/chainsafe/campaign-client/pkg/app/errors"
	"github.com/chainsafe/campaign-client/pkg/config"
	"github.com/chainsafe/campaign-client/pkg/ethereum"
	"github.com/chainsafe/campaign-client/pkg/interaction"
	"github.com/chainsafe/campaign-client/pkg/metadata"
)

// session holds everything a command needs for one invocation
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Metrics
	eth     *ethereum.Client
	client  *interaction.Client
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	if err := config.LoadEnvFile(c.String("env-file")); err != nil {
		return nil, err
	}
	return config.Load(c.String("config"))
}

// connect loads the configuration, builds the logger and dials the node
func connect(c *cli.Context) (*session, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return nil, apperrors.ConfigurationError(err, "failed to initialize logger")
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	eth, err := ethereum.NewClient(c.Context, &cfg.Ethereum, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	m := metrics.New()
	client := interaction.NewClient(
		eth,
		interaction.NewBindings(eth.Backend()),
		interaction.SettingsFromConfig(cfg),
		c.App.Writer,
		m,
		logger,
	)

	return &session{cfg: cfg, logger: logger, metrics: m, eth: eth, client: client}, nil
}

// close releases the connection and flushes metrics and logs
func (s *session) close() {
	s.eth.Close()
	if path := s.cfg.Monitoring.TextfilePath; path != "" {
		if err := s.metrics.WriteTextfile(path); err != nil {
			s.logger.Warn("Failed to write metrics textfile", zap.String("path", path), zap.Error(err))
		}
	}
	_ = s.logger.Sync()
}

// withSession runs fn against a connected session
func withSession(c *cli.Context, fn func(ctx context.Context, s *session) error) error {
	s, err := connect(c)
	if err != nil {
		return err
	}
	defer s.close()

	if err := fn(c.Context, s); err != nil {
		s.logger.Error("Command failed",
			zap.String("category", apperrors.CategoryOf(err).String()),
			zap.Error(err))
		return err
	}
	return nil
}

func runAction(c *cli.Context) error {
	return withSession(c, func(ctx context.Context, s *session) error {
		return runSequence(ctx, s.client, planFromConfig(s.cfg), s.logger)
	})
}

func approveAction(c *cli.Context) error {
	return withSession(c, func(ctx context.Context, s *session) error {
		return s.client.Approve(ctx, s.cfg.Contracts.Campaign(), s.cfg.Donation.Value())
	})
}

func createCampaignAction(c *cli.Context) error {
	return withSession(c, func(ctx context.Context, s *session) error {
		created, err := s.client.CreateCampaign(ctx, s.cfg.Contracts.Factory())
		if err != nil {
			return err
		}
		s.logger.Info("Created campaign", zap.String("campaign", created.Hex()))
		return nil
	})
}

func donateAction(c *cli.Context) error {
	return withSession(c, func(ctx context.Context, s *session) error {
		return s.client.Donate(ctx, s.cfg.Contracts.Campaign(), s.cfg.Donation.Value())
	})
}

func describeAction(c *cli.Context) error {
	return withSession(c, func(ctx context.Context, s *session) error {
		campaign := s.cfg.Contracts.Campaign()
		if v := c.String("campaign"); v != "" {
			if !common.IsHexAddress(v) {
				return apperrors.AddressParseError(fmt.Errorf("%q is not a hex address", v), "--campaign is invalid")
			}
			campaign = common.HexToAddress(v)
		}

		md, err := s.client.Describe(ctx, campaign)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(c.App.Writer, md.Describe())
		return err
	})
}

func statusAction(c *cli.Context) error {
	return withSession(c, func(ctx context.Context, s *session) error {
		status, err := s.client.Status(ctx, s.cfg.Contracts.Campaign())
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(c.App.Writer, status.Describe())
		return err
	})
}

func decodeMetadataAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return apperrors.ValidationError(nil, "decode-metadata expects exactly one hex argument")
	}

	md, err := metadata.Decode(c.Args().First())
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(c.App.Writer, md.Describe())
	return err
}

func configAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(c.App.Writer)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg.Redacted())
}
