// Package ddbctl implements the dy commands on top of the DynamoDB control
// plane: listing and describing tables, creating tables and indexes, deleting
// tables, and taking, listing and restoring on-demand backups.
//
// Operations return errors classified with ddberr and never exit the process.
package ddbctl

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/acksell/dynein/dynamodb/ddbcache"
	"github.com/acksell/dynein/dynamodb/ddberr"
	"github.com/acksell/dynein/dynamodb/ddbiface"
	"github.com/acksell/dynein/dynamodb/ddbui"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ClientFactory returns a control-plane client bound to region.
type ClientFactory func(ctx context.Context, region string) (ddbiface.ControlPlane, error)

// TableCache remembers raw table descriptions per region.
type TableCache interface {
	PutTable(region string, desc *types.TableDescription) error
	GetTable(region, name string) (*ddbcache.Entry, error)
	Tables(region string) ([]string, error)
}

// Options configures a Client. Only Tables is required.
type Options struct {
	Tables  ClientFactory
	Regions ddbiface.RegionLister

	Cache     TableCache
	Selector  ddbui.Selector
	Confirmer ddbui.Confirmer

	Out    io.Writer
	Logger *zap.Logger

	// Concurrency bounds fan-out over regions and tables. 0 means unbounded.
	Concurrency int
	Now         func() time.Time
}

type Client struct {
	tables  ClientFactory
	regions ddbiface.RegionLister

	cache     TableCache
	selector  ddbui.Selector
	confirmer ddbui.Confirmer

	out         io.Writer
	log         *zap.Logger
	concurrency int
	now         func() time.Time
}

func New(opts Options) *Client {
	c := &Client{
		tables:      opts.Tables,
		regions:     opts.Regions,
		cache:       opts.Cache,
		selector:    opts.Selector,
		confirmer:   opts.Confirmer,
		out:         opts.Out,
		log:         opts.Logger,
		concurrency: opts.Concurrency,
		now:         opts.Now,
	}
	if c.cache == nil {
		c.cache = NoCache{}
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

func (c *Client) api(ctx context.Context, region string) (ddbiface.ControlPlane, error) {
	api, err := c.tables(ctx, region)
	if err != nil {
		return nil, ddberr.Upstream("create dynamodb client for "+region, err)
	}
	return api, nil
}

// NoCache is a TableCache that stores nothing.
type NoCache struct{}

func (NoCache) PutTable(string, *types.TableDescription) error { return nil }
func (NoCache) GetTable(string, string) (*ddbcache.Entry, error) {
	return nil, ddbcache.ErrNotFound
}
func (NoCache) Tables(string) ([]string, error) { return nil, nil }
