package fsa

// Hashable 自定义哈希接口
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// hashMap 链式哈希表, keyed by Hashable values that Go maps cannot key on directly (slices, sets).
type hashMap[T any] struct {
	buckets    []*entry[T]
	size       int
	mask       uint64
	emptyValue T
	loadFactor float64
}

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

type hashMapOptions struct {
	capacity   int
	loadFactor float64 // 负载因子，默认0.75
}

type hashMapOption func(*hashMapOptions)

func withCapacity(capacity int) hashMapOption {
	return func(o *hashMapOptions) {
		o.capacity = capacity
	}
}

// newHashMap capacity is rounded up to a power of two.
func newHashMap[T any](opts ...hashMapOption) *hashMap[T] {
	options := &hashMapOptions{
		capacity:   1,
		loadFactor: 0.75,
	}
	for _, opt := range opts {
		opt(options)
	}

	realCap := 1
	for realCap < options.capacity {
		realCap <<= 1
	}

	return &hashMap[T]{
		buckets:    make([]*entry[T], realCap),
		mask:       uint64(realCap - 1),
		loadFactor: options.loadFactor,
	}
}

// Set 插入键值对
func (m *hashMap[T]) Set(key Hashable, value T) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}

	// 头插法
	m.buckets[index] = &entry[T]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > m.loadFactor {
		m.resize()
	}
}

// Get 获取值
func (m *hashMap[T]) Get(key Hashable) (T, bool) {
	index := key.Hash() & m.mask

	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	return m.emptyValue, false
}

// GetOrSet Returns the value stored under key, storing value first when the key is absent.
func (m *hashMap[T]) GetOrSet(key Hashable, value T) (T, bool) {
	if v, ok := m.Get(key); ok {
		return v, true
	}
	m.Set(key, value)
	return value, false
}

// 扩容哈希表
func (m *hashMap[T]) resize() {
	newCap := len(m.buckets) << 1
	newBuckets := make([]*entry[T], newCap)
	newMask := uint64(newCap - 1)

	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			newIndex := e.key.Hash() & newMask
			newBuckets[newIndex] = &entry[T]{
				key:   e.key,
				value: e.value,
				next:  newBuckets[newIndex],
			}
		}
	}

	m.buckets = newBuckets
	m.mask = newMask
}

// Size 获取元素数量
func (m *hashMap[T]) Size() int {
	return m.size
}
