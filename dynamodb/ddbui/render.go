package ddbui

import (
	"fmt"
	"io"

	"github.com/acksell/dynein/dynamodb/ddbdesc"
	"github.com/acksell/dynein/dynamodb/schema"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// OutputYAML is the only structured output format. An empty format means YAML.
const OutputYAML = "yaml"

// ValidOutput reports whether format can be rendered.
func ValidOutput(format string) bool {
	return format == "" || format == OutputYAML
}

// RenderTable writes desc as a YAML document. Absent values render as null.
func RenderTable(w io.Writer, desc *schema.TableDescription) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(desc); err != nil {
		return fmt.Errorf("encode table description: %w", err)
	}
	return enc.Close()
}

// RenderTables writes descs as a stream of YAML documents separated by "---".
func RenderTables(w io.Writer, descs []*schema.TableDescription) error {
	if len(descs) == 0 {
		return nil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, desc := range descs {
		if err := enc.Encode(desc); err != nil {
			return fmt.Errorf("encode table description %q: %w", desc.Name, err)
		}
	}
	return enc.Close()
}

// RenderTableNames writes the tables of one region, marking the table in use.
func RenderTableNames(w io.Writer, region string, names []string, using string) {
	fmt.Fprintf(w, "DynamoDB tables in region: %s\n", region)
	if len(names) == 0 {
		fmt.Fprintln(w, "  No table in this region.")
		return
	}
	for _, name := range names {
		if using != "" && name == using {
			fmt.Fprintf(w, "* %s\n", name)
		} else {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
}

var backupHeader = []string{"Table", "Status", "CreatedAt", "BackupName (size)"}

// RenderBackups writes one tab-aligned row per backup under a header row.
func RenderBackups(w io.Writer, backups []types.BackupSummary) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(backupHeader)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetCenterSeparator("")
	tw.SetColumnSeparator("")
	tw.SetRowSeparator("")
	tw.SetHeaderLine(false)
	tw.SetBorder(false)
	tw.SetTablePadding("\t")
	tw.SetNoWhiteSpace(true)
	for _, b := range backups {
		tw.Append([]string{
			aws.ToString(b.TableName),
			string(b.BackupStatus),
			backupCreatedAt(b),
			fmt.Sprintf("%s (%s)", aws.ToString(b.BackupName), FormatBytes(aws.ToInt64(b.BackupSizeBytes))),
		})
	}
	tw.Render()
}

// BackupLabel is how a backup is shown in the selection prompt.
func BackupLabel(b types.BackupSummary) string {
	return fmt.Sprintf("%s (%s, %s)", aws.ToString(b.BackupName), backupCreatedAt(b), FormatBytes(aws.ToInt64(b.BackupSizeBytes)))
}

func backupCreatedAt(b types.BackupSummary) string {
	if b.BackupCreationDateTime == nil {
		return ""
	}
	return ddbdesc.FormatTimestamp(*b.BackupCreationDateTime)
}
