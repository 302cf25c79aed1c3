// Package sim provides the core discrete-event engine for batchsim: a
// simulator of a server that executes requests in fixed-size batches under
// per-request latency (SLO) constraints.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - request.go: Request lifecycle (not-yet-arrived → waiting → in-flight → finished)
//   - event.go: The three-way event classification driving the loop
//   - engine.go: The event loop, its fixed per-instant protocol, and invariants
//
// # Architecture
//
// The engine owns three ordered containers (not-yet-arrived, waiting,
// in-flight) and mutates them through four operations: admission drop
// (admission.go), arrival transfer (arrival.go), scheduling placement and
// preemption reset (request.go). Batch composition is delegated to a
// Policy (policy.go) chosen at startup; the engine decides when to invoke
// it and enforces consistency.
//
// Workload generation and trace variation live in sim/workload.
//
// # Key Interfaces
//
// The single extension point is Policy, with three operations:
//   - Schedule: steady-state batch composition plus a wakeup-time request
//   - Preempt: mid-flight recomposition of an executing batch
//   - OfflineSchedule: one-shot bulk scheduling with all requests at t=0
package sim
