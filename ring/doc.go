// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity FIFO ring buffers with overwrite-on-full semantics.
//
// Three engines share one contract (api.Ring) and differ only in how
// positions wrap around the storage:
//   - Masking: bitwise AND with capacity-1; power-of-two storage only.
//   - SparseMasking: masking arithmetic over power-of-two storage, with a
//     smaller artificial capacity of any non-zero size.
//   - Subtracting: conditional subtraction; any non-zero size, no slack.
//
// Engines are single-owner state machines over {offset, length, storage}.
// They hold no locks; wrap them in an external mutex or an SPSC discipline
// if more than one goroutine needs access. Enqueue and Dequeue never fail:
// all errors are confined to construction.
package ring
