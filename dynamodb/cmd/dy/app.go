package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/acksell/dynein/dynamodb/ddbcache"
	"github.com/acksell/dynein/dynamodb/ddbctl"
	"github.com/acksell/dynein/dynamodb/ddbiface"
	"github.com/acksell/dynein/dynamodb/ddbui"
	"github.com/acksell/dynein/dynamodb/internal/logging"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"go.uber.org/zap"
)

type globalFlags struct {
	region  string
	table   string
	output  string
	verbose bool
}

// app is the state shared by all commands of one invocation.
type app struct {
	flags globalFlags

	cfg   Config
	log   *zap.Logger
	cache *ddbcache.Cache
	aws   aws.Config

	ctl   *ddbctl.Client
	scope ddbctl.Scope
}

// setup loads configuration and builds the control client. It runs before
// every command except version.
func (a *app) setup(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = logging.New(logging.Options{Verbose: a.flags.verbose, File: cfg.LogPath()})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	a.log.Debug("loaded config", zap.String("path", cfg.Path()))

	a.aws, err = config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("load AWS config: %w", err)
	}

	a.scope = ddbctl.Scope{
		Region:    a.flags.region,
		Table:     a.flags.table,
		Output:    a.flags.output,
		Using:     cfg.Using,
		AWSRegion: a.aws.Region,
	}

	var tableCache ddbctl.TableCache = ddbctl.NoCache{}
	a.cache, err = ddbcache.Open(ddbcache.Options{
		Path:   cfg.CachePath(),
		Logger: logging.Badger(a.log),
	})
	if err != nil {
		// Usually another dy process holds the directory lock.
		a.log.Warn("table cache disabled", zap.String("dir", cfg.CachePath()), zap.Error(err))
		a.cache = nil
	} else {
		tableCache = a.cache
	}

	prompt := &ddbui.Prompt{Stdin: os.Stdin, Stdout: os.Stdout}
	a.ctl = ddbctl.New(ddbctl.Options{
		Tables:      a.dynamoClient,
		Regions:     ec2.NewFromConfig(a.awsConfigFor(a.scope.EffectiveRegion())),
		Cache:       tableCache,
		Selector:    prompt,
		Confirmer:   prompt,
		Out:         os.Stdout,
		Logger:      a.log,
		Concurrency: cfg.Concurrency,
		Now:         time.Now,
	})
	return nil
}

func (a *app) awsConfigFor(region string) aws.Config {
	cfg := a.aws.Copy()
	cfg.Region = region
	return cfg
}

func (a *app) dynamoClient(_ context.Context, region string) (ddbiface.ControlPlane, error) {
	return dynamodb.NewFromConfig(a.awsConfigFor(region)), nil
}

func (a *app) close() {
	if a.cache != nil {
		if err := a.cache.Close(); err != nil && a.log != nil {
			a.log.Warn("close table cache", zap.Error(err))
		}
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}
