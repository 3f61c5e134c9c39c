package fdbtuple_test

import (
	"bytes"
	"fmt"

	"github.com/arloliu/fdbtuple"
	"github.com/arloliu/fdbtuple/item"
)

func ExamplePack() {
	key, err := fdbtuple.Pack("hello", []byte("world"))
	if err != nil {
		panic(err)
	}
	fmt.Printf("% x\n", key)
	// Output:
	// 02 68 65 6c 6c 6f 00 01 77 6f 72 6c 64 00
}

func ExampleDecodeTuple() {
	t, err := fdbtuple.DecodeTuple([]byte{0x14, 0x05, 0x15, 0x01, 0x00, 0xFF, 0x00})
	if err != nil {
		panic(err)
	}
	fmt.Println(t)
	// Output:
	// (0, (1, nil))
}

func ExampleDecodeTuple2() {
	key := fdbtuple.NewTuple2("users", int64(42)).Encode()

	row, err := fdbtuple.DecodeTuple2[string, int64](key)
	if err != nil {
		panic(err)
	}
	fmt.Println(row.V0, row.V1)
	// Output:
	// users 42
}

func ExampleCompare() {
	a := fdbtuple.Tuple{item.String("a")}
	b := fdbtuple.Tuple{item.String("a"), item.Int(-1)}

	fmt.Println(fdbtuple.Compare(a, b))
	fmt.Println(bytes.Compare(fdbtuple.EncodeTuple(a), fdbtuple.EncodeTuple(b)))
	// Output:
	// -1
	// -1
}
