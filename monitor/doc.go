// Package monitor is the event reconciliation and diff engine: it keeps
// per-source device property snapshots and computes stable-ordered
// differences between successive snapshots as events arrive.
package monitor
