// SPDX-License-Identifier: MIT

package spgemm

// SetGeneration lets tests drive the generation counter towards wrap-around.
func (w *Workspace[T]) SetGeneration(g uint64) { w.gen = g }

// Generation returns the current generation.
func (w *Workspace[T]) Generation() uint64 { return w.gen }
