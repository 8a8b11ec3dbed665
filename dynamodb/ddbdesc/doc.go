// Package ddbdesc normalizes raw DynamoDB control-plane descriptions into
// schema.TableDescription.
//
// The raw SDK types leave almost every field optional. The rules applied here:
//
//   - A table without a BillingModeSummary predates on-demand billing and is
//     Provisioned.
//   - OnDemand tables never show capacity, neither on the table nor on its
//     global indexes.
//   - Provisioned tables always show capacity on the table and on every global
//     index. Local indexes share the table's throughput and never show capacity.
//   - Every key schema resolves to exactly one typed partition key and at most
//     one typed sort key.
//
// Data that breaks these rules is reported as a ddberr.KindInternal error.
package ddbdesc
