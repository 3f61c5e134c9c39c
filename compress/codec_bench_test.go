package compress

import (
	"fmt"
	"testing"
)

func BenchmarkAllCodecs_Compress(b *testing.B) {
	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			for _, rows := range []int{16, 256, 4096} {
				b.Run(fmt.Sprintf("%d_rows", rows), func(b *testing.B) {
					data := tuplePayload(rows)

					b.ReportAllocs()
					b.SetBytes(int64(len(data)))

					for b.Loop() {
						if _, err := codec.Compress(data); err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		})
	}
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			for _, rows := range []int{16, 256, 4096} {
				b.Run(fmt.Sprintf("%d_rows", rows), func(b *testing.B) {
					data := tuplePayload(rows)
					compressed, err := codec.Compress(data)
					if err != nil {
						b.Fatal(err)
					}

					b.ReportAllocs()
					b.SetBytes(int64(len(data)))

					for b.Loop() {
						if _, err := codec.Decompress(compressed); err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		})
	}
}

func BenchmarkAllCodecs_Parallel(b *testing.B) {
	data := tuplePayload(1024)

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName+"_Compress", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))

			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					if _, err := codec.Compress(data); err != nil {
						b.Error(err)
						return
					}
				}
			})
		})

		b.Run(codecName+"_Decompress", func(b *testing.B) {
			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.SetBytes(int64(len(data)))

			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					if _, err := codec.Decompress(compressed); err != nil {
						b.Error(err)
						return
					}
				}
			})
		})
	}
}
