// SPDX-License-Identifier: MIT

package critical_test

import (
	"testing"

	"github.com/giserh/RedisGraph/critical"
)

func BenchmarkRun(b *testing.B) {
	for _, k := range allKinds {
		b.Run(k.String(), func(b *testing.B) {
			var backend critical.Backend
			if k == critical.KindNamed {
				backend = critical.Named(b.Name())
			} else {
				backend, _ = critical.NewBackend(k)
			}
			s, err := critical.New(critical.WithBackend(backend))
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					if err := s.Do(func() {}); err != nil {
						b.Error(err)
					}
				}
			})
		})
	}
}
