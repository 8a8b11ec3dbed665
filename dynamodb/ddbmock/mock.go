// Package ddbmock provides expectation-based mocks of the ddbiface interfaces.
//
// Every call fails the test unless the matching Func field is replaced:
//
//	m := ddbmock.New(t)
//	m.DescribeTableFunc = func(ctx context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
//		return &dynamodb.DescribeTableOutput{Table: desc}, nil
//	}
package ddbmock

import (
	"context"
	"sync"
	"testing"

	"github.com/acksell/dynein/dynamodb/ddbiface"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

type APICall[T, U any] = func(context.Context, *T, ...func(*dynamodb.Options)) (*U, error)

// ControlPlane is a mock ddbiface.ControlPlane.
type ControlPlane struct {
	DescribeTableFunc          APICall[dynamodb.DescribeTableInput, dynamodb.DescribeTableOutput]
	ListTablesFunc             APICall[dynamodb.ListTablesInput, dynamodb.ListTablesOutput]
	CreateTableFunc            APICall[dynamodb.CreateTableInput, dynamodb.CreateTableOutput]
	UpdateTableFunc            APICall[dynamodb.UpdateTableInput, dynamodb.UpdateTableOutput]
	DeleteTableFunc            APICall[dynamodb.DeleteTableInput, dynamodb.DeleteTableOutput]
	CreateBackupFunc           APICall[dynamodb.CreateBackupInput, dynamodb.CreateBackupOutput]
	ListBackupsFunc            APICall[dynamodb.ListBackupsInput, dynamodb.ListBackupsOutput]
	RestoreTableFromBackupFunc APICall[dynamodb.RestoreTableFromBackupInput, dynamodb.RestoreTableFromBackupOutput]

	mu    sync.Mutex
	calls []string
}

var _ ddbiface.ControlPlane = (*ControlPlane)(nil)

// New creates a mock whose every method fails t until overridden.
func New(t testing.TB) *ControlPlane {
	return &ControlPlane{
		DescribeTableFunc:          unexpected[dynamodb.DescribeTableInput, dynamodb.DescribeTableOutput](t, "DescribeTable"),
		ListTablesFunc:             unexpected[dynamodb.ListTablesInput, dynamodb.ListTablesOutput](t, "ListTables"),
		CreateTableFunc:            unexpected[dynamodb.CreateTableInput, dynamodb.CreateTableOutput](t, "CreateTable"),
		UpdateTableFunc:            unexpected[dynamodb.UpdateTableInput, dynamodb.UpdateTableOutput](t, "UpdateTable"),
		DeleteTableFunc:            unexpected[dynamodb.DeleteTableInput, dynamodb.DeleteTableOutput](t, "DeleteTable"),
		CreateBackupFunc:           unexpected[dynamodb.CreateBackupInput, dynamodb.CreateBackupOutput](t, "CreateBackup"),
		ListBackupsFunc:            unexpected[dynamodb.ListBackupsInput, dynamodb.ListBackupsOutput](t, "ListBackups"),
		RestoreTableFromBackupFunc: unexpected[dynamodb.RestoreTableFromBackupInput, dynamodb.RestoreTableFromBackupOutput](t, "RestoreTableFromBackup"),
	}
}

func unexpected[T, U any](t testing.TB, name string) APICall[T, U] {
	return func(context.Context, *T, ...func(*dynamodb.Options)) (*U, error) {
		t.Errorf("unexpected call to %s", name)
		return new(U), nil
	}
}

// Calls returns the names of the methods called so far, in order.
func (m *ControlPlane) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *ControlPlane) record(name string) {
	m.mu.Lock()
	m.calls = append(m.calls, name)
	m.mu.Unlock()
}

func (m *ControlPlane) DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	m.record("DescribeTable")
	return m.DescribeTableFunc(ctx, params, optFns...)
}

func (m *ControlPlane) ListTables(ctx context.Context, params *dynamodb.ListTablesInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListTablesOutput, error) {
	m.record("ListTables")
	return m.ListTablesFunc(ctx, params, optFns...)
}

func (m *ControlPlane) CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	m.record("CreateTable")
	return m.CreateTableFunc(ctx, params, optFns...)
}

func (m *ControlPlane) UpdateTable(ctx context.Context, params *dynamodb.UpdateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTableOutput, error) {
	m.record("UpdateTable")
	return m.UpdateTableFunc(ctx, params, optFns...)
}

func (m *ControlPlane) DeleteTable(ctx context.Context, params *dynamodb.DeleteTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteTableOutput, error) {
	m.record("DeleteTable")
	return m.DeleteTableFunc(ctx, params, optFns...)
}

func (m *ControlPlane) CreateBackup(ctx context.Context, params *dynamodb.CreateBackupInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateBackupOutput, error) {
	m.record("CreateBackup")
	return m.CreateBackupFunc(ctx, params, optFns...)
}

func (m *ControlPlane) ListBackups(ctx context.Context, params *dynamodb.ListBackupsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ListBackupsOutput, error) {
	m.record("ListBackups")
	return m.ListBackupsFunc(ctx, params, optFns...)
}

func (m *ControlPlane) RestoreTableFromBackup(ctx context.Context, params *dynamodb.RestoreTableFromBackupInput, optFns ...func(*dynamodb.Options)) (*dynamodb.RestoreTableFromBackupOutput, error) {
	m.record("RestoreTableFromBackup")
	return m.RestoreTableFromBackupFunc(ctx, params, optFns...)
}

// Regions is a mock ddbiface.RegionLister returning a fixed list.
type Regions struct {
	DescribeRegionsFunc func(context.Context, *ec2.DescribeRegionsInput, ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
}

var _ ddbiface.RegionLister = (*Regions)(nil)

func (r *Regions) DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error) {
	return r.DescribeRegionsFunc(ctx, params, optFns...)
}
