package table

import (
	"strings"

	"github.com/acksell/dynein/dynamodb/ddberr"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ParseKeySpecs parses the "name[,TYPE]" specifiers given on the command line.
// The first specifier is the partition key, the optional second one the sort key.
// TYPE defaults to S.
func ParseKeySpecs(specs []string) (PrimaryKeyDefinition, error) {
	if len(specs) == 0 || len(specs) > 2 {
		return PrimaryKeyDefinition{}, ddberr.User("parse keys", "pass one or two key definitions, e.g. --keys myPk,S mySk,N (got %d)", len(specs))
	}
	var def PrimaryKeyDefinition
	for i, spec := range specs {
		key, err := parseKeySpec(spec)
		if err != nil {
			return PrimaryKeyDefinition{}, err
		}
		if i == 0 {
			def.PartitionKey = key
		} else {
			def.SortKey = key
		}
	}
	return def, nil
}

func parseKeySpec(spec string) (KeyDef, error) {
	parts := strings.Split(spec, ",")
	if len(parts) > 2 || parts[0] == "" {
		return KeyDef{}, ddberr.User("parse keys", "invalid key definition %q, valid format is name[,TYPE] e.g. myPk,S", spec)
	}
	key := KeyDef{Name: parts[0], Kind: KeyKindS}
	if len(parts) == 2 {
		kind, err := ParseKeyKind(parts[1])
		if err != nil {
			return KeyDef{}, ddberr.User("parse keys", "invalid key definition %q: %v", spec, err)
		}
		key.Kind = kind
	}
	return key, nil
}

// KeySchema returns the HASH (and RANGE) elements for a create request.
func (k PrimaryKeyDefinition) KeySchema() []types.KeySchemaElement {
	ks := []types.KeySchemaElement{{
		AttributeName: aws.String(k.PartitionKey.Name),
		KeyType:       types.KeyTypeHash,
	}}
	if k.HasSortKey() {
		ks = append(ks, types.KeySchemaElement{
			AttributeName: aws.String(k.SortKey.Name),
			KeyType:       types.KeyTypeRange,
		})
	}
	return ks
}

// AttributeDefinitions returns the attribute types of the key attributes.
func (k PrimaryKeyDefinition) AttributeDefinitions() []types.AttributeDefinition {
	defs := []types.AttributeDefinition{{
		AttributeName: aws.String(k.PartitionKey.Name),
		AttributeType: types.ScalarAttributeType(k.PartitionKey.Kind),
	}}
	if k.HasSortKey() {
		defs = append(defs, types.AttributeDefinition{
			AttributeName: aws.String(k.SortKey.Name),
			AttributeType: types.ScalarAttributeType(k.SortKey.Kind),
		})
	}
	return defs
}
