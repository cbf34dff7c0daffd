package img2svg

// orderedMap is an insertion-ordered map. Each key is assigned the dense
// index at which it was first inserted; later inserts of the same key keep
// that index.
type orderedMap[K comparable, V any] struct {
	keys   []K
	values []V
	index  map[K]int
}

func newOrderedMap[K comparable, V any]() *orderedMap[K, V] {
	return &orderedMap[K, V]{
		index: make(map[K]int),
	}
}

// insert adds key with the value produced by mk if it is new and returns
// its index and whether it was added.
func (om *orderedMap[K, V]) insert(key K, mk func(i int) V) (int, bool) {
	if i, ok := om.index[key]; ok {
		return i, false
	}
	i := len(om.keys)
	om.index[key] = i
	om.keys = append(om.keys, key)
	om.values = append(om.values, mk(i))
	return i, true
}

// get returns the index of key.
func (om *orderedMap[K, V]) get(key K) (int, bool) {
	i, ok := om.index[key]
	return i, ok
}

func (om *orderedMap[K, V]) len() int {
	return len(om.keys)
}
