package coord

// EncodePerm returns the Lehmer-code index of perm, a permutation of
// 0..len(perm)-1, in factorial number system order.
func EncodePerm(perm []int) int {
	n := len(perm)
	idx := 0
	used := make([]bool, n)
	for i := 0; i < n; i++ {
		rank := 0
		for v := 0; v < perm[i]; v++ {
			if !used[v] {
				rank++
			}
		}
		used[perm[i]] = true
		idx = idx*(n-i) + rank
	}
	return idx
}

// DecodePerm inverts EncodePerm for a permutation of size n.
func DecodePerm(idx, n int) []int {
	fact := make([]int, n+1)
	fact[0] = 1
	for i := 1; i <= n; i++ {
		fact[i] = fact[i-1] * i
	}
	ranks := make([]int, n)
	rem := idx
	for i := 0; i < n; i++ {
		f := fact[n-1-i]
		ranks[i] = rem / f
		rem = rem % f
	}
	available := make([]int, n)
	for i := range available {
		available[i] = i
	}
	perm := make([]int, n)
	for i := 0; i < n; i++ {
		r := ranks[i]
		perm[i] = available[r]
		available = append(available[:r], available[r+1:]...)
	}
	return perm
}

// EncodeCombination returns the combinatorial-number-system index of a
// sorted subset `chosen` drawn from {0, ..., n-1}.
func EncodeCombination(chosen []int, n int) int {
	idx := 0
	for i, c := range chosen {
		idx += binomial(c, i+1)
	}
	return idx
}

// DecodeCombination inverts EncodeCombination, returning the k-element
// sorted subset of {0, ..., n-1} with the given index; the caller
// supplies k, and each element is found by binomial search down from n-1.
func DecodeCombination(idx, n, k int) []int {
	chosen := make([]int, k)
	rem := idx
	c := n - 1
	for i := k; i >= 1; i-- {
		for binomial(c, i) > rem {
			c--
		}
		chosen[i-1] = c
		rem -= binomial(c, i)
		c--
	}
	return chosen
}

var binomialCache = map[[2]int]int{}

func binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	key := [2]int{n, k}
	if v, ok := binomialCache[key]; ok {
		return v
	}
	if k == 0 || k == n {
		binomialCache[key] = 1
		return 1
	}
	v := binomial(n-1, k-1) + binomial(n-1, k)
	binomialCache[key] = v
	return v
}
