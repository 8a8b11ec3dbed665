package ddbctl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acksell/dynein/dynamodb/ddberr"
	"github.com/acksell/dynein/dynamodb/ddbui"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// ErrNoEligibleBackup is returned by ResolveBackup when no backup is
// AVAILABLE.
var ErrNoEligibleBackup = errors.New("no AVAILABLE backup found")

// BackupName is the name given to on-demand backups taken by dy.
func BackupName(table string, at time.Time) string {
	return fmt.Sprintf("%s--dy-%d", table, at.Unix())
}

// RestoreTargetName is the default name of a table restored from source.
func RestoreTargetName(source string, at time.Time) string {
	return fmt.Sprintf("%s--restore-%d", source, at.Unix())
}

// Backup takes an on-demand backup of the effective table.
func (c *Client) Backup(ctx context.Context, sc Scope, allTables bool) error {
	const op = "create backup"
	if allTables {
		fmt.Fprintln(c.out, "--all-tables only applies together with --list; backing up the target table.")
	}
	name, err := sc.EffectiveTable()
	if err != nil {
		return err
	}
	api, err := c.api(ctx, sc.EffectiveRegion())
	if err != nil {
		return err
	}
	out, err := api.CreateBackup(ctx, &dynamodb.CreateBackupInput{
		TableName:  aws.String(name),
		BackupName: aws.String(BackupName(name, c.now())),
	})
	if err != nil {
		return ddberr.Upstream(fmt.Sprintf("%s of %q", op, name), err)
	}
	d := out.BackupDetails
	if d == nil {
		return ddberr.Internal(op, "response for %q has no backup details", name)
	}
	fmt.Fprintf(c.out, "Backup creation has been started:\n")
	fmt.Fprintf(c.out, "  Backup Name: %s (status: %s)\n", aws.ToString(d.BackupName), d.BackupStatus)
	fmt.Fprintf(c.out, "  Backup ARN: %s\n", aws.ToString(d.BackupArn))
	fmt.Fprintf(c.out, "  Backup Size: %s\n", ddbui.FormatBytes(aws.ToInt64(d.BackupSizeBytes)))
	return nil
}

// ListBackups prints the backups of the effective table, or of every table in
// the region when allTables is set.
func (c *Client) ListBackups(ctx context.Context, sc Scope, allTables bool) error {
	source := ""
	if !allTables {
		var err error
		if source, err = sc.EffectiveTable(); err != nil {
			return err
		}
	}
	backups, err := c.listBackups(ctx, sc.EffectiveRegion(), source)
	if err != nil {
		return err
	}
	ddbui.RenderBackups(c.out, backups)
	return nil
}

// listBackups lists the backups of table, or of all tables if table is "".
func (c *Client) listBackups(ctx context.Context, region, table string) ([]types.BackupSummary, error) {
	api, err := c.api(ctx, region)
	if err != nil {
		return nil, err
	}
	in := &dynamodb.ListBackupsInput{}
	if table != "" {
		in.TableName = aws.String(table)
	}
	out, err := api.ListBackups(ctx, in)
	if err != nil {
		return nil, ddberr.Upstream("list backups in "+region, err)
	}
	return out.BackupSummaries, nil
}

// EligibleBackups keeps the AVAILABLE backups, in order.
func EligibleBackups(backups []types.BackupSummary) []types.BackupSummary {
	var out []types.BackupSummary
	for _, b := range backups {
		if b.BackupStatus == types.BackupStatusAvailable {
			out = append(out, b)
		}
	}
	return out
}

// BackupRef identifies the backup chosen for a restore.
type BackupRef struct {
	ARN       string
	Name      string
	TableName string
}

func refOf(b types.BackupSummary) BackupRef {
	return BackupRef{
		ARN:       aws.ToString(b.BackupArn),
		Name:      aws.ToString(b.BackupName),
		TableName: aws.ToString(b.TableName),
	}
}

// ResolveBackup picks the backup to restore out of eligible. A non-empty name
// must match a backup name exactly; otherwise sel is asked to choose. When
// eligible is empty it returns ErrNoEligibleBackup.
func ResolveBackup(name string, eligible []types.BackupSummary, sel ddbui.Selector) (BackupRef, error) {
	const op = "resolve backup"
	if len(eligible) == 0 {
		return BackupRef{}, ErrNoEligibleBackup
	}
	if name != "" {
		for _, b := range eligible {
			if aws.ToString(b.BackupName) == name {
				return refOf(b), nil
			}
		}
		return BackupRef{}, ddberr.User(op, "no AVAILABLE backup named %q", name)
	}
	if sel == nil {
		return BackupRef{}, ddberr.User(op, "no backup name given; pass --backup")
	}
	labels := make([]string, len(eligible))
	for i, b := range eligible {
		labels[i] = ddbui.BackupLabel(b)
	}
	idx, err := sel.Select("Select backup data to restore", labels)
	if err != nil {
		return BackupRef{}, ddberr.User(op, "no backup selected: %v", err)
	}
	if idx < 0 || idx >= len(eligible) {
		return BackupRef{}, ddberr.Internal(op, "selection %d out of range", idx)
	}
	return refOf(eligible[idx]), nil
}

// RestoreOptions are the inputs of Restore.
type RestoreOptions struct {
	// BackupName selects a backup without prompting.
	BackupName string
	// RestoreName overrides the target table name.
	RestoreName string
	// AllTables offers backups of every table in the region.
	AllTables bool
}

type restoreState int

const (
	restoreListing restoreState = iota
	restoreResolving
	restoreRequesting
	restoreReporting
)

func (s restoreState) String() string {
	switch s {
	case restoreListing:
		return "listing"
	case restoreResolving:
		return "resolving"
	case restoreRequesting:
		return "requesting"
	case restoreReporting:
		return "reporting"
	default:
		return "unknown"
	}
}

// Restore restores a backup into a new table and prints the new table's
// description as returned by the restore call.
func (c *Client) Restore(ctx context.Context, sc Scope, opts RestoreOptions) error {
	const op = "restore table"
	if err := checkOutput(op, sc); err != nil {
		return err
	}
	trace := func(s restoreState) { c.log.Debug("restore", zap.Stringer("state", s)) }

	region := sc.EffectiveRegion()
	source := ""
	if !opts.AllTables {
		var err error
		if source, err = sc.EffectiveTable(); err != nil {
			return err
		}
	}

	trace(restoreListing)
	backups, err := c.listBackups(ctx, region, source)
	if err != nil {
		return err
	}

	trace(restoreResolving)
	ref, err := ResolveBackup(opts.BackupName, EligibleBackups(backups), c.selector)
	if errors.Is(err, ErrNoEligibleBackup) {
		fmt.Fprintln(c.out, "No AVAILABLE state backup found for the table.")
		return nil
	}
	if err != nil {
		return err
	}
	if ref.TableName != "" {
		source = ref.TableName
	}
	target := opts.RestoreName
	if target == "" {
		target = RestoreTargetName(source, c.now())
	}

	trace(restoreRequesting)
	api, err := c.api(ctx, region)
	if err != nil {
		return err
	}
	out, err := api.RestoreTableFromBackup(ctx, &dynamodb.RestoreTableFromBackupInput{
		BackupArn:       aws.String(ref.ARN),
		TargetTableName: aws.String(target),
	})
	if err != nil {
		c.log.Debug("restore request failed", zap.String("backup", ref.ARN), zap.String("code", ddberr.APICode(err)))
		return ddberr.Upstream(fmt.Sprintf("%s %q from %s", op, target, ref.Name), err)
	}

	trace(restoreReporting)
	fmt.Fprintf(c.out, "Table restoration from: '%s' has been started\n", ref.ARN)
	desc, err := c.aggregate(region, out.TableDescription)
	if err != nil {
		return err
	}
	return ddbui.RenderTable(c.out, desc)
}
