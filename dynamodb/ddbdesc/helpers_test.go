package ddbdesc

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var created = time.Date(2020, 8, 14, 13, 16, 7, 0, time.UTC)

func keyElem(name string, role types.KeyType) types.KeySchemaElement {
	return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: role}
}

func attrDef(name string, kind types.ScalarAttributeType) types.AttributeDefinition {
	return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: kind}
}

func throughput(read, write int64) *types.ProvisionedThroughputDescription {
	return &types.ProvisionedThroughputDescription{
		ReadCapacityUnits:  aws.Int64(read),
		WriteCapacityUnits: aws.Int64(write),
	}
}

// musicTable is a provisioned table with one GSI and one LSI.
func musicTable() *types.TableDescription {
	return &types.TableDescription{
		TableName:   aws.String("Music"),
		TableStatus: types.TableStatusActive,
		KeySchema: []types.KeySchemaElement{
			keyElem("Artist", types.KeyTypeHash),
			keyElem("SongTitle", types.KeyTypeRange),
		},
		AttributeDefinitions: []types.AttributeDefinition{
			attrDef("Artist", types.ScalarAttributeTypeS),
			attrDef("SongTitle", types.ScalarAttributeTypeS),
			attrDef("Year", types.ScalarAttributeTypeN),
		},
		ProvisionedThroughput: throughput(10, 5),
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndexDescription{{
			IndexName:             aws.String("by-year"),
			KeySchema:             []types.KeySchemaElement{keyElem("Year", types.KeyTypeHash)},
			ProvisionedThroughput: throughput(3, 2),
		}},
		LocalSecondaryIndexes: []types.LocalSecondaryIndexDescription{{
			IndexName: aws.String("artist-year"),
			KeySchema: []types.KeySchemaElement{
				keyElem("Artist", types.KeyTypeHash),
				keyElem("Year", types.KeyTypeRange),
			},
		}},
		ItemCount:        aws.Int64(42),
		TableSizeBytes:   aws.Int64(1024),
		CreationDateTime: aws.Time(created),
	}
}

func onDemand() *types.BillingModeSummary {
	return &types.BillingModeSummary{BillingMode: types.BillingModePayPerRequest}
}
