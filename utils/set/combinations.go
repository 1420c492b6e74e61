package set

// Combinations calls do with every k-element subset of {0, ..., n-1}
// exactly once. Each combination is ascending and combinations are produced
// in lexicographic order. The slice passed to do is owned by the callee.
func Combinations(n, k int, do func([]int)) {
	if k < 0 || k > n {
		return
	}

	chosen := make([]int, 0, k)

	var choose func(from int)
	choose = func(from int) {
		if len(chosen) == k {
			combo := make([]int, k)
			copy(combo, chosen)
			do(combo)
			return
		}

		// Leave enough room for the remaining picks.
		for i := from; i <= n-(k-len(chosen)); i++ {
			chosen = append(chosen, i)
			choose(i + 1)
			chosen = chosen[:len(chosen)-1]
		}
	}

	choose(0)
}

// Binomial computes C(n, k). It is 0 whenever k is outside [0, n].
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}

	res := 1
	for i := 1; i <= k; i++ {
		res = res * (n - k + i) / i
	}
	return res
}
