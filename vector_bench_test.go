package smallvec

import (
	"strconv"
	"testing"
)

var benchLengths = []int{
	2,
	8,
	64,
	1024,
}

func BenchmarkBuild(b *testing.B) {
	for _, n := range benchLengths {
		b.Run("variant=slice/n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				var s []uint64
				for j := range n {
					s = append(s, uint64(j))
				}
				benchSink = len(s)
			}
		})

		b.Run("variant=smallvec/n="+strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				var v Vector[uint64, [8]uint64]
				for j := range n {
					v.Push(uint64(j))
				}
				benchSink = v.Len()
			}
		})

		b.Run("variant=smallvec-pool/n="+strconv.Itoa(n), func(b *testing.B) {
			pool := NewPoolAllocator[uint64](nil)
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				v := MustNew[uint64, [8]uint64](WithAllocator[uint64](pool))
				for j := range n {
					v.Push(uint64(j))
				}
				benchSink = v.Len()
				v.Release()
			}
		})
	}
}

func BenchmarkIterate(b *testing.B) {
	for _, n := range benchLengths {
		var v Vector[uint64, [8]uint64]
		for j := range n {
			v.Push(uint64(j))
		}

		b.Run("variant=values/n="+strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var sum uint64
				for value := range v.Values() {
					sum += value
				}
				benchSink = int(sum)
			}
		})

		b.Run("variant=cursor/n="+strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				var sum uint64
				for c, end := v.Begin(), v.End(); c.Less(end); c.Inc() {
					sum += c.Value()
				}
				benchSink = int(sum)
			}
		})
	}
}

func BenchmarkSwap(b *testing.B) {
	for _, n := range []int{4, 100} {
		var x, y Vector[uint64, [8]uint64]
		x.Resize(n)
		y.Resize(n)

		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				x.Swap(&y)
			}
		})
	}
}

var benchSink int
