// Benchmarks compare greenrt's cooperative Channel against Go's native
// chan for a single-producer/single-consumer pipeline, the same
// side-by-side shape as the teacher's own benchmarks/main_test.go
// (ZenQ vs native chan), adapted to this package's task/channel API
// instead of goroutines/native channels on the greenrt side.
package main

import (
	"testing"

	"github.com/alphadose/greenrt"
)

const channelCapacity = 16

func greenrtRunner(size int, b *testing.B) {
	greenrt.Init()
	ch, err := greenrt.NewChannel[int](channelCapacity)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		done := greenrt.NewSemaphore(0)

		producerTid, err := greenrt.Create(func(arg any) any {
			for i := 0; i < size; i++ {
				if err := ch.Send(i); err != nil {
					b.Fatal(err)
				}
			}
			done.Post()
			return nil
		}, nil)
		if err != nil {
			b.Fatal(err)
		}

		consumerTid, err := greenrt.Create(func(arg any) any {
			for i := 0; i < size; i++ {
				if _, err := ch.Recv(); err != nil {
					b.Fatal(err)
				}
			}
			done.Post()
			return nil
		}, nil)
		if err != nil {
			b.Fatal(err)
		}

		done.Wait()
		done.Wait()

		// Join to return both slots to Unused — otherwise b.N iterations
		// would exhaust the MaxThreads-sized table within a few runs.
		if _, err := greenrt.Join(producerTid); err != nil {
			b.Fatal(err)
		}
		if _, err := greenrt.Join(consumerTid); err != nil {
			b.Fatal(err)
		}
	}
}

func nativeChanRunner(size int, b *testing.B) {
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		ch := make(chan int, channelCapacity)
		done := make(chan struct{}, 2)

		go func() {
			for i := 0; i < size; i++ {
				ch <- i
			}
			done <- struct{}{}
		}()
		go func() {
			for i := 0; i < size; i++ {
				<-ch
			}
			done <- struct{}{}
		}()

		<-done
		<-done
	}
}

func BenchmarkGreenrtChannelSize50(b *testing.B) { greenrtRunner(50, b) }

func BenchmarkNativeChanSize50(b *testing.B) { nativeChanRunner(50, b) }

func BenchmarkGreenrtChannelSize5000(b *testing.B) { greenrtRunner(5000, b) }

func BenchmarkNativeChanSize5000(b *testing.B) { nativeChanRunner(5000, b) }
