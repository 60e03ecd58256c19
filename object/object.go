package object

import "fmt"

// Tree is a node of a generic object tree with payload type T. It is a
// closed sum over Scalar, Sequence and Mapping. The marker method carries
// the payload type, so a Tree[A] cannot be used where a Tree[B] is expected.
type Tree[T any] interface {
	tree(T)
}

// Scalar is a leaf holding one payload value.
type Scalar[T any] struct {
	Value T
}

func (Scalar[T]) tree(T) {}

func (s Scalar[T]) String() string {
	return fmt.Sprintf("Scalar(%v)", s.Value)
}

// Sequence is an ordered list of subtrees.
type Sequence[T any] struct {
	Items []Tree[T]
}

func (Sequence[T]) tree(T) {}

func (s Sequence[T]) String() string {
	return fmt.Sprintf("Sequence(%d)", len(s.Items))
}

// Pair is one entry of a Mapping.
type Pair[T any] struct {
	Key   string
	Value Tree[T]
}

// Mapping is an ordered list of key/subtree pairs.
type Mapping[T any] struct {
	Pairs []Pair[T]
}

func (Mapping[T]) tree(T) {}

func (m Mapping[T]) String() string {
	return fmt.Sprintf("Mapping(%d)", len(m.Pairs))
}

// --- Construction ----------------------------------------------------------

// Of wraps a payload value into a scalar leaf.
func Of[T any](value T) Tree[T] {
	return Scalar[T]{Value: value}
}

// Seq builds a sequence node from its items.
func Seq[T any](items ...Tree[T]) Tree[T] {
	return Sequence[T]{Items: items}
}

// Dict builds a mapping node from its pairs.
func Dict[T any](pairs ...Pair[T]) Tree[T] {
	return Mapping[T]{Pairs: pairs}
}

// P builds a single mapping pair.
func P[T any](key string, value Tree[T]) Pair[T] {
	return Pair[T]{Key: key, Value: value}
}

// --- Transformation --------------------------------------------------------

// Map applies f to every payload in t, preserving the tree's shape. A nil
// tree maps to nil.
func Map[T, S any](t Tree[T], f func(T) S) Tree[S] {
	switch n := t.(type) {
	case nil:
		return nil
	case Scalar[T]:
		return Scalar[S]{Value: f(n.Value)}
	case Sequence[T]:
		items := make([]Tree[S], len(n.Items))
		for i, item := range n.Items {
			items[i] = Map(item, f)
		}
		return Sequence[S]{Items: items}
	case Mapping[T]:
		pairs := make([]Pair[S], len(n.Pairs))
		for i, p := range n.Pairs {
			pairs[i] = Pair[S]{Key: p.Key, Value: Map(p.Value, f)}
		}
		return Mapping[S]{Pairs: pairs}
	}
	panic(fmt.Sprintf("object tree node of unknown kind %T", t))
}
