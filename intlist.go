package linear

import (
	"strconv"
	"strings"
)

// NewIntList returns a new IntList holding the decimal digits of n.
func NewIntList(n uint64) *IntList {
	digits := []int{int(n % 10)}
	for n /= 10; n > 0; n /= 10 {
		digits = append(digits, int(n%10))
	}
	l := &IntList{}
	// Cannot fail, there's always at least one digit.
	_ = l.Reset(digits...)
	return l
}

// IntList is a non-negative integer stored as a LinkedList of its decimal
// digits, the least significant digit first.
//
// Numbers of any length can be added, Value is only exact for sums that
// fit into uint64 while String is always exact.
type IntList struct {
	LinkedList[int]
}

// Add returns the sum of l and other as a new IntList.
func (l *IntList) Add(other *IntList) *IntList {
	long, short := l.Head(), other.Head()
	if l.Len() < other.Len() {
		long, short = short, long
	}
	sum := &IntList{}
	carry := 0
	for ; long != nil; long = long.Next() {
		digit := long.Value + carry
		if short != nil {
			digit += short.Value
			short = short.Next()
		}
		carry = digit / 10
		sum.Append(digit % 10)
	}
	if carry > 0 {
		sum.Append(carry)
	}
	return sum
}

// Value returns the number held by the list.
func (l *IntList) Value() uint64 {
	var v, place uint64 = 0, 1
	for n := l.Head(); n != nil; n = n.Next() {
		v += uint64(n.Value) * place
		place *= 10
	}
	return v
}

// String returns the decimal representation of the number.
func (l *IntList) String() string {
	digits := l.Values()
	if len(digits) == 0 {
		return "0"
	}
	var b strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteString(strconv.Itoa(digits[i]))
	}
	return b.String()
}
