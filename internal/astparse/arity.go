package astparse

// fibonacciBuckets are the upper bounds of the arity_bin buckets (spec.md
// §3, ASTNode.arity_bin: "Fibonacci bucket of children_count"). Bucket index
// i covers children_count in (fibonacciBuckets[i-1], fibonacciBuckets[i]];
// bucket 0 covers children_count == 0. Anything past the last bound falls
// into the final, open-ended bucket.
var fibonacciBuckets = []uint32{0, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144, 233}

// arityBin maps a children_count to its Fibonacci bucket index, clamped to
// fit the 8-bit ASTNode.ArityBin field.
func arityBin(childrenCount uint32) uint8 {
	for i, bound := range fibonacciBuckets {
		if childrenCount <= bound {
			return uint8(i)
		}
	}
	return uint8(len(fibonacciBuckets))
}
