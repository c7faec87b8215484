package trie_test

import (
	"fmt"

	"github.com/matzehuels/wordhunt/pkg/trie"
	"github.com/matzehuels/wordhunt/pkg/word"
)

func Example() {
	t, err := trie.FromStrings([]string{"foo", "bar", "baz", "foooz", "barz", "buz"})
	if err != nil {
		panic(err)
	}
	fmt.Println(t.ListWords())
	fmt.Println(t.Contains(word.MustParse("fooo")), t.HasPrefix(word.MustParse("fooo")))
	// Output:
	// [BAR BARZ BAZ BUZ FOO FOOOZ]
	// false true
}

func ExampleTrie_NextSymbols() {
	t := trie.FromWords(word.MustParse("tea"), word.MustParse("ten"), word.MustParse("to"))
	id, _ := t.Root(word.MustSymbol('t'))
	fmt.Println(t.NextSymbols(id))
	// Output:
	// [E O]
}
