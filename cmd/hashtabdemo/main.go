// Command hashtabdemo exercises the table as a simple string set: it
// inserts a batch of words, looks a few up, removes one, then walks the
// whole table with both Scan and a safe iterator to show they agree.
package main

import (
	"fmt"

	"github.com/valkey-io/hashtab"
)

// Elements must fit in a machine word, so the set stores *string rather
// than string. DefaultHash and == would then compare pointer identity, not
// string content, so the Type below supplies a content-based hash and
// equality instead.
func main() {
	ty := &hashtab.Type[*string]{
		ElementGetKey: func(elem *string) any { return *elem },
		KeyCompare:    hashtab.NewContentCompare[string](),
		HashFunction:  hashtab.NewContentHash[string](),
	}
	t := hashtab.NewTable[*string](ty, hashtab.WithInitialCapacity[*string](8))

	words := []string{"apple", "banana", "cherry", "date", "elderberry", "fig", "grape"}
	for i := range words {
		if !t.Add(&words[i]) {
			fmt.Printf("%q was already present\n", words[i])
		}
	}

	fmt.Printf("size after insert: %d\n", t.Size())

	if _, ok := t.Find("cherry"); ok {
		fmt.Println("found cherry")
	}
	if _, ok := t.Find("kiwi"); !ok {
		fmt.Println("kiwi is absent, as expected")
	}

	t.Delete("banana")
	fmt.Printf("size after delete: %d\n", t.Size())

	scanned := make(map[string]bool)
	var cursor uint64
	for {
		cursor = t.Scan(cursor, func(elem **string) {
			scanned[**elem] = true
		}, 0)
		if cursor == 0 {
			break
		}
	}
	fmt.Printf("scan visited %d distinct elements\n", len(scanned))

	it := hashtab.NewSafeIterator[*string](t)
	count := 0
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	it.Reset()
	fmt.Printf("safe iterator visited %d elements\n", count)
}
