package ddbctl

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/acksell/dynein/dynamodb/ddbcache"
	"github.com/acksell/dynein/dynamodb/ddbiface"
	"github.com/acksell/dynein/dynamodb/ddbmock"
	"github.com/acksell/dynein/dynamodb/ddbui"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var frozen = time.Unix(1700000000, 0)

type memCache struct {
	mu      sync.Mutex
	entries map[string]map[string]*types.TableDescription
	putErr  error
}

func newMemCache() *memCache {
	return &memCache{entries: map[string]map[string]*types.TableDescription{}}
}

func (m *memCache) PutTable(region string, desc *types.TableDescription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.putErr != nil {
		return m.putErr
	}
	if m.entries[region] == nil {
		m.entries[region] = map[string]*types.TableDescription{}
	}
	m.entries[region][aws.ToString(desc.TableName)] = desc
	return nil
}

func (m *memCache) GetTable(region, name string) (*ddbcache.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	desc, ok := m.entries[region][name]
	if !ok {
		return nil, ddbcache.ErrNotFound
	}
	return &ddbcache.Entry{Region: region, Description: desc}, nil
}

func (m *memCache) Tables(region string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var names []string
	for name := range m.entries[region] {
		names = append(names, name)
	}
	return names, nil
}

type harness struct {
	client *Client
	api    *ddbmock.ControlPlane
	cache  *memCache
	prompt *ddbui.Scripted
	out    *bytes.Buffer
	// regions records which region each client was created for.
	regions []string
	mu      sync.Mutex
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		api:    ddbmock.New(t),
		cache:  newMemCache(),
		prompt: &ddbui.Scripted{},
		out:    &bytes.Buffer{},
	}
	h.client = New(Options{
		Tables: func(_ context.Context, region string) (ddbiface.ControlPlane, error) {
			h.mu.Lock()
			h.regions = append(h.regions, region)
			h.mu.Unlock()
			return h.api, nil
		},
		Cache:     h.cache,
		Selector:  h.prompt,
		Confirmer: h.prompt,
		Out:       h.out,
		Now:       func() time.Time { return frozen },
	})
	return h
}

var errThrottled = errors.New("ThrottlingException: rate exceeded")

func keyElem(name string, role types.KeyType) types.KeySchemaElement {
	return types.KeySchemaElement{AttributeName: aws.String(name), KeyType: role}
}

func attrDef(name string, kind types.ScalarAttributeType) types.AttributeDefinition {
	return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: kind}
}

// ordersTable is an on-demand table keyed by id with no indexes.
func ordersTable(name string) *types.TableDescription {
	return &types.TableDescription{
		TableName:            aws.String(name),
		TableStatus:          types.TableStatusActive,
		KeySchema:            []types.KeySchemaElement{keyElem("id", types.KeyTypeHash)},
		AttributeDefinitions: []types.AttributeDefinition{attrDef("id", types.ScalarAttributeTypeS)},
		BillingModeSummary:   &types.BillingModeSummary{BillingMode: types.BillingModePayPerRequest},
		ItemCount:            aws.Int64(0),
		TableSizeBytes:       aws.Int64(0),
		CreationDateTime:     aws.Time(time.Unix(0, 0)),
	}
}

func backup(table, name string, status types.BackupStatus, size int64) types.BackupSummary {
	return types.BackupSummary{
		TableName:              aws.String(table),
		BackupName:             aws.String(name),
		BackupArn:              aws.String("arn:aws:dynamodb:us-east-1:111111111111:table/" + table + "/backup/" + name),
		BackupStatus:           status,
		BackupSizeBytes:        aws.Int64(size),
		BackupCreationDateTime: aws.Time(time.Unix(0, 0)),
	}
}
