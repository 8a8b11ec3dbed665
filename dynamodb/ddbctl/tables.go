package ddbctl

import (
	"context"
	"fmt"

	"github.com/acksell/dynein/dynamodb/ddbdesc"
	"github.com/acksell/dynein/dynamodb/ddberr"
	"github.com/acksell/dynein/dynamodb/ddbui"
	"github.com/acksell/dynein/dynamodb/schema"
	"github.com/acksell/dynein/dynamodb/table"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"go.uber.org/zap"
)

func checkOutput(op string, sc Scope) error {
	if !ddbui.ValidOutput(sc.Output) {
		return ddberr.User(op, "unsupported output format %q", sc.Output)
	}
	return nil
}

// ListTables prints the table names in the effective region.
func (c *Client) ListTables(ctx context.Context, sc Scope) error {
	region := sc.EffectiveRegion()
	names, err := c.tableNames(ctx, region)
	if err != nil {
		return err
	}
	ddbui.RenderTableNames(c.out, region, names, sc.UsingTableIn(region))
	return nil
}

// ListTablesAllRegions prints the table names of every region the account
// can see. Regions that fail are logged and skipped.
func (c *Client) ListTablesAllRegions(ctx context.Context, sc Scope) error {
	regions, err := c.regionNames(ctx)
	if err != nil {
		return err
	}
	results := fanOut(ctx, c.concurrency, regions, c.tableNames)
	for _, r := range results {
		if r.err == nil {
			ddbui.RenderTableNames(c.out, r.key, r.value, sc.UsingTableIn(r.key))
		}
	}
	return summarize(c.log, "list tables", results)
}

func (c *Client) regionNames(ctx context.Context) ([]string, error) {
	if c.regions == nil {
		return nil, ddberr.Internal("list regions", "no region lister configured")
	}
	out, err := c.regions.DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, ddberr.Upstream("list regions", err)
	}
	names := make([]string, 0, len(out.Regions))
	for _, r := range out.Regions {
		if r.RegionName != nil {
			names = append(names, *r.RegionName)
		}
	}
	return names, nil
}

func (c *Client) tableNames(ctx context.Context, region string) ([]string, error) {
	api, err := c.api(ctx, region)
	if err != nil {
		return nil, err
	}
	out, err := api.ListTables(ctx, &dynamodb.ListTablesInput{})
	if err != nil {
		return nil, ddberr.Upstream("list tables in "+region, err)
	}
	return out.TableNames, nil
}

// DescribeTable prints the normalized description of the effective table.
func (c *Client) DescribeTable(ctx context.Context, sc Scope) error {
	if err := checkOutput("describe table", sc); err != nil {
		return err
	}
	name, err := sc.EffectiveTable()
	if err != nil {
		return err
	}
	desc, err := c.describe(ctx, sc.EffectiveRegion(), name)
	if err != nil {
		return err
	}
	return ddbui.RenderTable(c.out, desc)
}

// DescribeAllTables prints every table in the effective region as a stream of
// YAML documents, in the order the service listed them.
func (c *Client) DescribeAllTables(ctx context.Context, sc Scope) error {
	if err := checkOutput("describe tables", sc); err != nil {
		return err
	}
	region := sc.EffectiveRegion()
	names, err := c.tableNames(ctx, region)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(c.out, "No table in region %s.\n", region)
		return nil
	}
	results := fanOut(ctx, c.concurrency, names, func(ctx context.Context, name string) (*schema.TableDescription, error) {
		return c.describe(ctx, region, name)
	})
	descs := make([]*schema.TableDescription, 0, len(results))
	for _, r := range results {
		if r.err == nil {
			descs = append(descs, r.value)
		}
	}
	if err := ddbui.RenderTables(c.out, descs); err != nil {
		return err
	}
	return summarize(c.log, "describe table", results)
}

func (c *Client) describeRaw(ctx context.Context, region, name string) (*types.TableDescription, error) {
	api, err := c.api(ctx, region)
	if err != nil {
		return nil, err
	}
	out, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(name)})
	if err != nil {
		return nil, ddberr.Upstream(fmt.Sprintf("describe table %q", name), err)
	}
	return out.Table, nil
}

func (c *Client) describe(ctx context.Context, region, name string) (*schema.TableDescription, error) {
	raw, err := c.describeRaw(ctx, region, name)
	if err != nil {
		return nil, err
	}
	return c.aggregate(region, raw)
}

// aggregate caches raw and normalizes it. A cache failure is only logged.
func (c *Client) aggregate(region string, raw *types.TableDescription) (*schema.TableDescription, error) {
	if raw != nil {
		if err := c.cache.PutTable(region, raw); err != nil {
			c.log.Warn("caching table description failed",
				zap.String("region", region),
				zap.String("table", aws.ToString(raw.TableName)),
				zap.Error(err))
		}
	}
	return ddbdesc.Normalize(region, raw)
}

// CreateTable creates an on-demand table with the primary key given as
// "NAME[,TYPE]" specs and prints its description.
func (c *Client) CreateTable(ctx context.Context, sc Scope, name string, keySpecs []string) error {
	const op = "create table"
	if err := checkOutput(op, sc); err != nil {
		return err
	}
	if name == "" {
		return ddberr.User(op, "table name is required")
	}
	keys, err := table.ParseKeySpecs(keySpecs)
	if err != nil {
		return err
	}
	region := sc.EffectiveRegion()
	api, err := c.api(ctx, region)
	if err != nil {
		return err
	}
	out, err := api.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:            aws.String(name),
		KeySchema:            keys.KeySchema(),
		AttributeDefinitions: keys.AttributeDefinitions(),
		BillingMode:          types.BillingModePayPerRequest,
	})
	if err != nil {
		return ddberr.Upstream(fmt.Sprintf("%s %q", op, name), err)
	}
	desc, err := c.aggregate(region, out.TableDescription)
	if err != nil {
		return err
	}
	return ddbui.RenderTable(c.out, desc)
}

// CreateIndex adds a global secondary index projecting all attributes to the
// effective table and prints the updated description.
func (c *Client) CreateIndex(ctx context.Context, sc Scope, indexName string, keySpecs []string) error {
	const op = "create index"
	if err := checkOutput(op, sc); err != nil {
		return err
	}
	if indexName == "" {
		return ddberr.User(op, "index name is required")
	}
	keys, err := table.ParseKeySpecs(keySpecs)
	if err != nil {
		return err
	}
	name, err := sc.EffectiveTable()
	if err != nil {
		return err
	}
	region := sc.EffectiveRegion()
	api, err := c.api(ctx, region)
	if err != nil {
		return err
	}
	out, err := api.UpdateTable(ctx, &dynamodb.UpdateTableInput{
		TableName:            aws.String(name),
		AttributeDefinitions: keys.AttributeDefinitions(),
		GlobalSecondaryIndexUpdates: []types.GlobalSecondaryIndexUpdate{{
			Create: &types.CreateGlobalSecondaryIndexAction{
				IndexName:  aws.String(indexName),
				KeySchema:  keys.KeySchema(),
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		}},
	})
	if err != nil {
		return ddberr.Upstream(fmt.Sprintf("%s %q on %q", op, indexName, name), err)
	}
	desc, err := c.aggregate(region, out.TableDescription)
	if err != nil {
		return err
	}
	return ddbui.RenderTable(c.out, desc)
}

// DeleteTable deletes name after confirmation, unless yes is set. Declining
// is not an error.
func (c *Client) DeleteTable(ctx context.Context, sc Scope, name string, yes bool) error {
	const op = "delete table"
	if name == "" {
		return ddberr.User(op, "table name is required")
	}
	if !yes {
		if c.confirmer == nil {
			return ddberr.User(op, "refusing to delete %q without confirmation; pass --yes", name)
		}
		ok, err := c.confirmer.Confirm(fmt.Sprintf("Delete table '%s'", name))
		if err != nil {
			return ddberr.User(op, "confirmation failed: %v", err)
		}
		if !ok {
			fmt.Fprintln(c.out, "Delete operation has been canceled.")
			return nil
		}
	}
	api, err := c.api(ctx, sc.EffectiveRegion())
	if err != nil {
		return err
	}
	if _, err := api.DeleteTable(ctx, &dynamodb.DeleteTableInput{TableName: aws.String(name)}); err != nil {
		return ddberr.Upstream(fmt.Sprintf("%s %q", op, name), err)
	}
	fmt.Fprintf(c.out, "DynamoDB table '%s' has been deleted successfully.\n", name)
	return nil
}

// Use resolves name in the effective region, from the cache when possible,
// prints its primary key and returns what the caller should remember.
func (c *Client) Use(ctx context.Context, sc Scope, name string) (Using, error) {
	if name == "" {
		return Using{}, ddberr.User("use table", "table name is required")
	}
	region := sc.EffectiveRegion()
	def, err := c.tableDefinition(ctx, region, name)
	if err != nil {
		return Using{}, err
	}
	sk := "-"
	if def.KeyDefinitions.HasSortKey() {
		sk = def.KeyDefinitions.SortKey.String()
	}
	fmt.Fprintf(c.out, "Now you're using the table '%s' (%s). pk: %s, sk: %s\n",
		name, region, def.KeyDefinitions.PartitionKey, sk)
	return Using{Region: region, Table: name}, nil
}

func (c *Client) tableDefinition(ctx context.Context, region, name string) (table.TableDefinition, error) {
	entry, err := c.cache.GetTable(region, name)
	if err == nil && entry.Description != nil {
		c.log.Debug("table definition from cache", zap.String("region", region), zap.String("table", name))
		return table.FromDescription(region, entry.Description)
	}
	raw, err := c.describeRaw(ctx, region, name)
	if err != nil {
		return table.TableDefinition{}, err
	}
	if err := c.cache.PutTable(region, raw); err != nil {
		c.log.Warn("caching table description failed", zap.String("table", name), zap.Error(err))
	}
	return table.FromDescription(region, raw)
}

// CachedTables prints the tables remembered for the effective region.
func (c *Client) CachedTables(sc Scope) error {
	region := sc.EffectiveRegion()
	names, err := c.cache.Tables(region)
	if err != nil {
		return ddberr.Internal("read cache", "%v", err)
	}
	ddbui.RenderTableNames(c.out, region, names, sc.UsingTableIn(region))
	return nil
}
