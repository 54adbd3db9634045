// Package go2 contains general utility helpers that should've been in Go. Maybe they'll be in Go 2.0.
package go2

import (
	"golang.org/x/exp/constraints"
)

func Pointer[T any](v T) *T {
	return &v
}

// Deref returns the value p points at, or fallback when p is nil.
func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Contains[T comparable](els []T, el T) bool {
	for _, el2 := range els {
		if el2 == el {
			return true
		}
	}
	return false
}

func Filter[T any](els []T, fn func(T) bool) []T {
	out := []T{}
	for _, el := range els {
		if fn(el) {
			out = append(out, el)
		}
	}
	return out
}

// Dedupe returns els without repeated values. The first occurrence wins and the
// relative order of the kept values is unchanged.
func Dedupe[T comparable](els []T) []T {
	seen := make(map[T]struct{}, len(els))
	out := make([]T, 0, len(els))
	for _, el := range els {
		if _, ok := seen[el]; ok {
			continue
		}
		seen[el] = struct{}{}
		out = append(out, el)
	}
	return out
}

// Without returns els minus every value in drop, keeping the order of the rest.
func Without[T comparable](els, drop []T) []T {
	if len(drop) == 0 {
		return append([]T{}, els...)
	}
	dropped := make(map[T]struct{}, len(drop))
	for _, el := range drop {
		dropped[el] = struct{}{}
	}
	return Filter(els, func(el T) bool {
		_, ok := dropped[el]
		return !ok
	})
}

func Equal[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
