package setalg

import (
	"reflect"
	"testing"
)

func TestIntersectBasic(t *testing.T) {
	got := Intersect([]uint32{1, 2, 3}, []uint32{2, 3, 4})
	want := []uint32{2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestIntersectEmpty(t *testing.T) {
	got := Intersect([]uint32{1, 2, 3}, nil)
	if len(got) != 0 {
		t.Errorf("intersection with empty should be empty, got %v", got)
	}
}

func TestUnionBasic(t *testing.T) {
	got := Union([]uint32{1, 3}, []uint32{2, 3, 4})
	want := []uint32{1, 2, 3, 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestUnionWithEmptyIsIdentity(t *testing.T) {
	a := []uint32{1, 2, 5}
	got := Union(a, nil)
	if !reflect.DeepEqual(got, a) {
		t.Errorf("union with empty should be identity, got %v", got)
	}
}

func TestNegateBasic(t *testing.T) {
	got := Negate([]uint32{1, 3}, 5)
	want := []uint32{2, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNegateDoubleNegation(t *testing.T) {
	var n uint32 = 10
	l := []uint32{2, 4, 6, 8}
	got := Negate(Negate(l, n), n)
	if !reflect.DeepEqual(got, l) {
		t.Errorf("double negation should be identity, got %v, want %v", got, l)
	}
}

func TestDeMorgan(t *testing.T) {
	var n uint32 = 8
	a := []uint32{1, 2, 3, 4}
	b := []uint32{2, 4, 6, 8}

	left := Negate(Intersect(a, b), n)
	right := Union(Negate(a, n), Negate(b, n))
	if !reflect.DeepEqual(left, right) {
		t.Errorf("De Morgan's law failed: negate(intersect) = %v, union(negate) = %v", left, right)
	}
}

func TestIntersectCommutativeAssociative(t *testing.T) {
	a := []uint32{1, 2, 3, 4}
	b := []uint32{2, 3, 5}
	c := []uint32{2, 3, 4, 6}

	if !reflect.DeepEqual(Intersect(a, b), Intersect(b, a)) {
		t.Error("intersection should be commutative")
	}
	left := Intersect(Intersect(a, b), c)
	right := Intersect(a, Intersect(b, c))
	if !reflect.DeepEqual(left, right) {
		t.Error("intersection should be associative")
	}
}

func TestUnionCommutativeAssociative(t *testing.T) {
	a := []uint32{1, 4}
	b := []uint32{2, 3, 5}
	c := []uint32{1, 3, 6}

	if !reflect.DeepEqual(Union(a, b), Union(b, a)) {
		t.Error("union should be commutative")
	}
	left := Union(Union(a, b), c)
	right := Union(a, Union(b, c))
	if !reflect.DeepEqual(left, right) {
		t.Error("union should be associative")
	}
}
