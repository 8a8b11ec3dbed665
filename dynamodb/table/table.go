package table

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableDefinition is the typed key layout of a table and its indexes,
// derived from a raw table description.
type TableDefinition struct {
	Name           string
	Region         string
	KeyDefinitions PrimaryKeyDefinition
	GSIs           []IndexDefinition
	LSIs           []IndexDefinition
}

// IndexDefinition represents a secondary index definition.
type IndexDefinition struct {
	Name           string
	KeyDefinitions PrimaryKeyDefinition
}

// FromDescription builds a TableDefinition out of a DescribeTable result.
// Index key schemas are resolved against the table's attribute definitions.
func FromDescription(region string, desc *types.TableDescription) (TableDefinition, error) {
	if desc == nil {
		return TableDefinition{}, fmt.Errorf("table description is nil")
	}
	keys, err := ResolvePrimaryKey(desc.KeySchema, desc.AttributeDefinitions)
	if err != nil {
		return TableDefinition{}, fmt.Errorf("table %q: %w", aws.ToString(desc.TableName), err)
	}
	def := TableDefinition{
		Name:           aws.ToString(desc.TableName),
		Region:         region,
		KeyDefinitions: keys,
	}
	for _, gsi := range desc.GlobalSecondaryIndexes {
		idx, err := indexDefinition(gsi.IndexName, gsi.KeySchema, desc.AttributeDefinitions)
		if err != nil {
			return TableDefinition{}, err
		}
		def.GSIs = append(def.GSIs, idx)
	}
	for _, lsi := range desc.LocalSecondaryIndexes {
		idx, err := indexDefinition(lsi.IndexName, lsi.KeySchema, desc.AttributeDefinitions)
		if err != nil {
			return TableDefinition{}, err
		}
		def.LSIs = append(def.LSIs, idx)
	}
	return def, nil
}

func indexDefinition(name *string, ks []types.KeySchemaElement, defs []types.AttributeDefinition) (IndexDefinition, error) {
	keys, err := ResolvePrimaryKey(ks, defs)
	if err != nil {
		return IndexDefinition{}, fmt.Errorf("index %q: %w", aws.ToString(name), err)
	}
	return IndexDefinition{Name: aws.ToString(name), KeyDefinitions: keys}, nil
}
