package alphaid_test

import (
	"errors"
	"fmt"

	"github.com/komuw/alphaid"
)

func ExampleCodec_EncodeToString() {
	c, err := alphaid.New[uint64](alphaid.Options{})
	if err != nil {
		panic(err)
	}

	fmt.Println(c.EncodeToString(0))
	fmt.Println(c.EncodeToString(1))
	fmt.Println(c.EncodeToString(1350997667))

	// Output:
	// a
	// b
	// 90F7qb
}

func ExampleCodec_DecodeString() {
	c := alphaid.MustNew[uint64](alphaid.Options{})

	rowID, err := c.DecodeString("90F7qb")
	if err != nil {
		panic(err)
	}
	fmt.Println(rowID)

	_, err = c.DecodeString("not/an/id")
	fmt.Println(errors.Is(err, alphaid.ErrUnknownSymbol))

	// Output:
	// 1350997667
	// true
}

func ExampleNew() {
	// Pad IDs to a minimum length of 5, using an alphabet without
	// lookalike symbols.
	c, err := alphaid.New[uint32](alphaid.Options{
		Alphabet: "abcdefghjkmnpqrstuvwxyz23456789",
		MinLen:   5,
	})
	if err != nil {
		panic(err)
	}

	id := c.EncodeToString(7)
	v, err := c.DecodeString(id)
	if err != nil {
		panic(err)
	}
	fmt.Println(id, v)

	// Output: haaab 7
}
