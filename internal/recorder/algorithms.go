package recorder

import "github.com/san-kum/sortviz/internal/anim"

const combShrink = 1.3

func MergeSort(values []int) anim.Log {
	t := &tape{}
	var sort func(l, r int)
	sort = func(l, r int) {
		if l >= r {
			return
		}
		m := (l + r) / 2
		sort(l, m)
		sort(m+1, r)
		t.merge(values, l, m, r)
	}
	sort(0, len(values)-1)
	return t.result()
}

// merge combines values[l..m] and values[m+1..r]. Positions are taken from a
// snapshot of the range, so a source index names where the value sat before
// this merge started.
func (t *tape) merge(values []int, l, m, r int) {
	tmp := make([]int, r-l+1)
	copy(tmp, values[l:r+1])
	at := func(i int) int { return tmp[i-l] }

	left, right, pos := l, m+1, l
	for left <= m || right <= r {
		src := right
		if right > r || (left <= m && at(left) <= at(right)) {
			src = left
			left++
		} else {
			right++
		}
		if pos != src {
			t.write(pos, src, at(src))
		}
		values[pos] = at(src)
		pos++
	}
}

func BubbleSort(values []int) anim.Log {
	t := &tape{}
	n := len(values)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if values[j] > values[j+1] {
				t.exchange(values, j, j+1)
			}
		}
	}
	return t.result()
}

func HeapSort(values []int) anim.Log {
	t := &tape{}
	n := len(values)
	for i := (n - 2) / 2; i >= 0; i-- {
		t.siftDown(values, i, n-1)
	}
	for i := n - 1; i > 0; i-- {
		t.exchange(values, 0, i)
		t.siftDown(values, 0, i-1)
	}
	return t.result()
}

// siftDown restores the max-heap property below i, with last as the final
// heap index (inclusive).
func (t *tape) siftDown(values []int, i, last int) {
	for 2*i+1 <= last {
		j := 2*i + 1
		if j < last && values[j] < values[j+1] {
			j++
		}
		if values[i] >= values[j] {
			return
		}
		t.exchange(values, i, j)
		i = j
	}
}

func QuickSort(values []int) anim.Log {
	t := &tape{}
	var sort func(lo, hi int)
	sort = func(lo, hi int) {
		if lo >= hi {
			return
		}
		p := t.partition(values, lo, hi)
		sort(lo, p-1)
		sort(p+1, hi)
	}
	sort(0, len(values)-1)
	return t.result()
}

// partition is Lomuto's scheme with values[hi] as the pivot.
func (t *tape) partition(values []int, lo, hi int) int {
	pivot := values[hi]
	p := lo
	for i := lo; i < hi; i++ {
		if values[i] < pivot {
			t.exchange(values, i, p)
			p++
		}
	}
	t.exchange(values, hi, p)
	return p
}

func SelectionSort(values []int) anim.Log {
	t := &tape{}
	n := len(values)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if values[j] < values[minIdx] {
				minIdx = j
			}
		}
		t.exchange(values, i, minIdx)
	}
	return t.result()
}

// CombSort keeps shrinking the gap until it reaches 1, then keeps making
// gap-1 passes until one of them performs no swap.
func CombSort(values []int) anim.Log {
	t := &tape{}
	n := len(values)
	gap := n
	swapped := false
	for gap != 1 || swapped {
		gap = int(float64(gap) / combShrink)
		if gap < 1 {
			gap = 1
		}
		swapped = false
		for i := 0; i+gap < n; i++ {
			if values[i] > values[i+gap] {
				t.exchange(values, i, i+gap)
				swapped = true
			}
		}
	}
	return t.result()
}

func GnomeSort(values []int) anim.Log {
	t := &tape{}
	pos := 1
	for pos < len(values) {
		if values[pos] >= values[pos-1] {
			pos++
			continue
		}
		t.exchange(values, pos, pos-1)
		if pos > 1 {
			pos--
		}
	}
	return t.result()
}

// OddEvenSort alternates a pass over odd-indexed pairs with a pass over
// even-indexed pairs and stops after a full cycle without a swap.
func OddEvenSort(values []int) anim.Log {
	t := &tape{}
	n := len(values)
	for sorted := false; !sorted; {
		sorted = true
		for start := 1; start >= 0; start-- {
			for i := start; i < n-1; i += 2 {
				if values[i] > values[i+1] {
					t.exchange(values, i, i+1)
					sorted = false
				}
			}
		}
	}
	return t.result()
}
