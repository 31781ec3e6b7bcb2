package cache

import (
	"strconv"
	"testing"
)

func BenchmarkCacheGet(b *testing.B) {
	c := New[string, int](1000)
	for i := 0; i < 100; i++ {
		c.Set(strconv.Itoa(i), i)
	}

	b.ReportAllocs()
	for b.Loop() {
		c.Get("50")
	}
}

func BenchmarkCacheGetOrCreate(b *testing.B) {
	c := New[int, int](64)
	i := 0
	b.ReportAllocs()
	for b.Loop() {
		i++
		c.GetOrCreate(i%100, func() int { return i })
	}
}
