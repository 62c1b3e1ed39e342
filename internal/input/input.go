// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package input

// Source is the set of materialized values a parser can consume.
type Source interface {
	~string | ~[]byte
}

// Input is an immutable cursor over a Source. Data holds whatever remains
// unconsumed and Index is the absolute offset of Data[0] within the value
// the parse started from. Index only exists for diagnostics.
type Input[S Source] struct {
	Data  S
	Index int
}

// New positions a cursor at the start of data.
func New[S Source](data S) Input[S] {
	return Input[S]{Data: data}
}

// Advance returns a cursor n elements further along. n must not exceed Len.
func (in Input[S]) Advance(n int) Input[S] {
	return Input[S]{
		Data:  in.Data[n:],
		Index: in.Index + n,
	}
}

// Len is the number of unconsumed elements.
func (in Input[S]) Len() int {
	return len(in.Data)
}

func (in Input[S]) Empty() bool {
	return len(in.Data) == 0
}
