// Package ddbui is the terminal side of the CLI: it renders normalized table
// descriptions as YAML, lists tables and backups, and asks the operator to
// pick a backup or confirm a destructive action.
//
// Interaction goes through the Selector and Confirmer interfaces so the
// workflows in ddbctl can be driven by scripted answers in tests. Prompt is
// the promptui-backed implementation used by the dy binary.
package ddbui
