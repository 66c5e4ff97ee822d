// Package greenrt is a cooperative user-space threading runtime for a
// process the host kernel sees as single-threaded. It multiplexes many
// application-level tasks onto that one execution context: a fixed-size
// thread table with a non-preemptive round-robin scheduler, a
// machine-level context switch between task stacks, and a family of
// synchronization primitives (Mutex, Semaphore, Cond, Channel) built
// directly on the scheduler's block/wake discipline.
//
// Call Init once before anything else. Every other exported function in
// this package assumes a live runtime.
//
// Known limitations:-
//
// 1. MaxThreads tasks total, fixed at compile time.
// 2. No preemption: a task that never calls Yield, never blocks, and
//    never exits starves every other task forever.
// 3. No multi-core parallelism — this is one cooperative scheduler on
//    one pinned OS thread, not a work-stealing pool.
package greenrt
