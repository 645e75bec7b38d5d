// SPDX-License-Identifier: MIT

// Package config loads engine configuration with koanf.
//
// Sources, later ones overriding earlier ones:
//
//  1. Default values
//  2. YAML file
//  3. Environment variables: GRAPHBLAS_SECTION_KEY, e.g.
//     GRAPHBLAS_SPGEMM_MASK_POLICY=emit_identity sets spgemm.mask_policy
//  4. Overrides passed by the caller (command-line flags)
//
// Example file:
//
//	critical:
//	  backend: named
//	  multithreaded: true
//	spgemm:
//	  workers: 8
//	  chunk_size: 0
//	  mask_policy: omit_empty
//	  output_format: auto
//	resource:
//	  memory_limit: 268435456
//	  max_workers: 0
//	log:
//	  level: info
//	  format: text
//	metrics:
//	  address: ":9464"
package config
