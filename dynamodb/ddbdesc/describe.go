package ddbdesc

import (
	"time"

	"github.com/acksell/dynein/dynamodb/ddberr"
	"github.com/acksell/dynein/dynamodb/schema"
	"github.com/acksell/dynein/dynamodb/table"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TimestampLayout is RFC 3339 with a numeric zone, so UTC renders as +00:00.
const TimestampLayout = "2006-01-02T15:04:05-07:00"

// FormatTimestamp renders t in UTC with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Normalize builds the printable description of desc, as seen in region.
func Normalize(region string, desc *types.TableDescription) (*schema.TableDescription, error) {
	if desc == nil {
		return nil, errInvariant("normalize table", "table description is missing")
	}
	keys, err := table.ResolvePrimaryKey(desc.KeySchema, desc.AttributeDefinitions)
	if err != nil {
		return nil, err
	}
	mode := ClassifyMode(desc.BillingModeSummary)
	capacity, err := ExtractCapacity(mode, desc.ProvisionedThroughput)
	if err != nil {
		return nil, err
	}
	gsi, err := ExtractSecondaryIndexes(mode, desc.AttributeDefinitions, GlobalIndexes(desc.GlobalSecondaryIndexes))
	if err != nil {
		return nil, err
	}
	lsi, err := ExtractSecondaryIndexes(mode, desc.AttributeDefinitions, LocalIndexes(desc.LocalSecondaryIndexes))
	if err != nil {
		return nil, err
	}

	out := &schema.TableDescription{
		Name:      aws.ToString(desc.TableName),
		Region:    region,
		Status:    string(desc.TableStatus),
		Schema:    keyPair(keys),
		Mode:      mode,
		Capacity:  capacity,
		GSI:       gsi,
		LSI:       lsi,
		Stream:    ExtractStream(desc.LatestStreamArn, desc.StreamSpecification),
		Count:     aws.ToInt64(desc.ItemCount),
		SizeBytes: aws.ToInt64(desc.TableSizeBytes),
	}
	if desc.CreationDateTime != nil {
		out.CreatedAt = FormatTimestamp(*desc.CreationDateTime)
	}
	return out, nil
}

func errInvariant(op, msg string) error {
	return ddberr.Internal(op, "%s", msg)
}
