package main

import (
	"fmt"

	"github.com/acksell/dynein/dynamodb/ddbctl"
	"github.com/acksell/dynein/dynamodb/ddberr"
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "dy",
		Short:         "dy - DynamoDB control plane CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd.Context())
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.region, "region", "r", "", "AWS region (defaults to the table in use, then the AWS profile)")
	pf.StringVarP(&a.flags.table, "table", "t", "", "target table (defaults to the table in use)")
	pf.StringVarP(&a.flags.output, "output", "o", "", "output format (yaml)")
	pf.BoolVar(&a.flags.verbose, "verbose", false, "log debug output to stderr")

	root.AddCommand(
		newListCmd(a),
		newDescCmd(a),
		newCreateCmd(a),
		newDeleteCmd(a),
		newBackupCmd(a),
		newRestoreCmd(a),
		newUseCmd(a),
		newVersionCmd(),
	)
	return root
}

func newListCmd(a *app) *cobra.Command {
	var allRegions bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tables in the region",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if allRegions {
				return a.ctl.ListTablesAllRegions(cmd.Context(), a.scope)
			}
			return a.ctl.ListTables(cmd.Context(), a.scope)
		},
	}
	cmd.Flags().BoolVar(&allRegions, "all-regions", false, "list tables in every region")
	return cmd
}

func newDescCmd(a *app) *cobra.Command {
	var allTables bool
	cmd := &cobra.Command{
		Use:     "desc [TABLE]",
		Aliases: []string{"describe"},
		Short:   "Describe a table",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if allTables {
				return a.ctl.DescribeAllTables(cmd.Context(), a.scope)
			}
			sc := a.scope
			if len(args) == 1 {
				sc = sc.WithTable(args[0])
			}
			return a.ctl.DescribeTable(cmd.Context(), sc)
		},
	}
	cmd.Flags().BoolVar(&allTables, "all-tables", false, "describe every table in the region")
	return cmd
}

// keySpecs joins --keys values with the positional arguments that follow
// the resource name, so both `--keys id,S --keys at,N` and `--keys id,S at,N`
// work.
func keySpecs(flag []string, rest []string) []string {
	out := make([]string, 0, len(flag)+len(rest))
	out = append(out, flag...)
	return append(out, rest...)
}

func newCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a table or a global secondary index",
	}

	var tableKeys []string
	table := &cobra.Command{
		Use:   "table NAME --keys pk[,TYPE] [sk[,TYPE]]",
		Short: "Create an on-demand table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ctl.CreateTable(cmd.Context(), a.scope, args[0], keySpecs(tableKeys, args[1:]))
		},
	}
	table.Flags().StringArrayVar(&tableKeys, "keys", nil, "primary key as NAME[,S|N|B]; a second value is the sort key")

	var indexKeys []string
	index := &cobra.Command{
		Use:   "index NAME --keys pk[,TYPE] [sk[,TYPE]]",
		Short: "Add a global secondary index to the target table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ctl.CreateIndex(cmd.Context(), a.scope, args[0], keySpecs(indexKeys, args[1:]))
		},
	}
	index.Flags().StringArrayVar(&indexKeys, "keys", nil, "index key as NAME[,S|N|B]; a second value is the sort key")

	cmd.AddCommand(table, index)
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a table",
	}
	var yes bool
	table := &cobra.Command{
		Use:   "table NAME",
		Short: "Delete a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.ctl.DeleteTable(cmd.Context(), a.scope, args[0], yes)
		},
	}
	table.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.AddCommand(table)
	return cmd
}

func newBackupCmd(a *app) *cobra.Command {
	var list, allTables bool
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Take an on-demand backup of the target table, or list backups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if list {
				return a.ctl.ListBackups(cmd.Context(), a.scope, allTables)
			}
			return a.ctl.Backup(cmd.Context(), a.scope, allTables)
		},
	}
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list backups instead of taking one")
	cmd.Flags().BoolVar(&allTables, "all-tables", false, "with --list, list backups of every table in the region")
	return cmd
}

func newRestoreCmd(a *app) *cobra.Command {
	var opts ddbctl.RestoreOptions
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore a backup into a new table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.ctl.Restore(cmd.Context(), a.scope, opts)
		},
	}
	cmd.Flags().StringVar(&opts.BackupName, "backup", "", "backup name to restore (prompts when omitted)")
	cmd.Flags().StringVar(&opts.RestoreName, "restore-name", "", "name of the new table (default {table}--restore-{unix})")
	cmd.Flags().BoolVar(&opts.AllTables, "all-tables", false, "choose among backups of every table in the region")
	return cmd
}

func newUseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use [TABLE]",
		Short: "Remember a table as the default target",
		Long:  "With a table name, makes it the default target of later commands. Without one, lists the tables dy knows about in the region.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.ctl.CachedTables(a.scope)
			}
			using, err := a.ctl.Use(cmd.Context(), a.scope, args[0])
			if err != nil {
				return err
			}
			a.cfg.Using = using
			if err := a.cfg.Save(); err != nil {
				return ddberr.User("use table", "save %s: %v", a.cfg.Path(), err)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dy version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dy version %s\n", version)
		},
	}
}
