// SPDX-License-Identifier: MIT

// Package resource budgets the memory and worker slots used by SpGEMM.
//
// A Controller hands out byte reservations for dense workspaces and slots
// for kernel workers. Memory reservations never block: a refusal is reported
// immediately as ErrMemoryLimitExceeded so callers can distinguish running
// out of memory from every other failure. A nil *Controller imposes no limits.
package resource
