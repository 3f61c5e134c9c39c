package item_test

import (
	"fmt"

	"github.com/arloliu/fdbtuple/item"
)

func ExampleEncode() {
	fmt.Printf("% x\n", item.Encode(item.Int(-1)))
	fmt.Printf("% x\n", item.Encode(item.Bytes("a\x00b")))
	fmt.Printf("% x\n", item.Encode(item.Tuple{item.Null{}, item.Int(1)}))
	// Output:
	// 13 fe
	// 01 61 00 ff 62 00
	// 05 00 ff 15 01 00
}

func ExampleDecode() {
	buf := []byte{0x02, 'k', 'e', 'y', 0x00, 0x15, 0x2A}

	v, n, err := item.Decode(buf)
	if err != nil {
		panic(err)
	}
	fmt.Println(v, n)

	v, n, err = item.Decode(buf[n:])
	if err != nil {
		panic(err)
	}
	fmt.Println(v, n)
	// Output:
	// "key" 5
	// 42 2
}
