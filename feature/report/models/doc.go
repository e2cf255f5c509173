// Package models defines the data shapes flowing through the reconciliation
// pipeline: raw events, joined pairs, persisted report records, and the raw
// cheater registry rows.
//
// All values are constructed fresh each run and never mutated after creation;
// the pipeline stages only filter, join, and project them.
package models
