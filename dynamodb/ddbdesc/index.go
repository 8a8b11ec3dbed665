package ddbdesc

import (
	"fmt"

	"github.com/acksell/dynein/dynamodb/schema"
	"github.com/acksell/dynein/dynamodb/table"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// SecondaryIndex is what the normalizer needs from a raw index description.
type SecondaryIndex interface {
	IndexName() string
	KeySchema() []types.KeySchemaElement
	// Capacity reports the index's own capacity under the table's mode.
	Capacity(mode schema.Mode) (*schema.Capacity, error)
}

type globalIndex struct{ desc types.GlobalSecondaryIndexDescription }

func (g globalIndex) IndexName() string                   { return aws.ToString(g.desc.IndexName) }
func (g globalIndex) KeySchema() []types.KeySchemaElement { return g.desc.KeySchema }
func (g globalIndex) Capacity(mode schema.Mode) (*schema.Capacity, error) {
	return ExtractCapacity(mode, g.desc.ProvisionedThroughput)
}

type localIndex struct{ desc types.LocalSecondaryIndexDescription }

func (l localIndex) IndexName() string                   { return aws.ToString(l.desc.IndexName) }
func (l localIndex) KeySchema() []types.KeySchemaElement { return l.desc.KeySchema }

// Capacity is always nil: a local index consumes the base table's throughput.
func (l localIndex) Capacity(schema.Mode) (*schema.Capacity, error) { return nil, nil }

// GlobalIndexes adapts raw GSI descriptions. A nil input stays nil.
func GlobalIndexes(raw []types.GlobalSecondaryIndexDescription) []SecondaryIndex {
	if raw == nil {
		return nil
	}
	out := make([]SecondaryIndex, 0, len(raw))
	for _, d := range raw {
		out = append(out, globalIndex{d})
	}
	return out
}

// LocalIndexes adapts raw LSI descriptions. A nil input stays nil.
func LocalIndexes(raw []types.LocalSecondaryIndexDescription) []SecondaryIndex {
	if raw == nil {
		return nil
	}
	out := make([]SecondaryIndex, 0, len(raw))
	for _, d := range raw {
		out = append(out, localIndex{d})
	}
	return out
}

// ExtractSecondaryIndexes normalizes indexes in source order. Key schemas are
// resolved against the table's attribute definitions, which the indexes share.
// Returns nil when no indexes are defined.
func ExtractSecondaryIndexes(mode schema.Mode, defs []types.AttributeDefinition, indexes []SecondaryIndex) ([]schema.SecondaryIndex, error) {
	if indexes == nil {
		return nil, nil
	}
	out := make([]schema.SecondaryIndex, 0, len(indexes))
	for _, idx := range indexes {
		keys, err := table.ResolvePrimaryKey(idx.KeySchema(), defs)
		if err != nil {
			return nil, fmt.Errorf("index %q: %w", idx.IndexName(), err)
		}
		capacity, err := idx.Capacity(mode)
		if err != nil {
			return nil, fmt.Errorf("index %q: %w", idx.IndexName(), err)
		}
		out = append(out, schema.SecondaryIndex{
			Name:     idx.IndexName(),
			Schema:   keyPair(keys),
			Capacity: capacity,
		})
	}
	return out, nil
}

func keyPair(keys table.PrimaryKeyDefinition) schema.KeyPair {
	kp := schema.KeyPair{PartitionKey: keys.PartitionKey.String()}
	if keys.HasSortKey() {
		kp.SortKey = aws.String(keys.SortKey.String())
	}
	return kp
}
