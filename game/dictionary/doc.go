// Package dictionary provides the word list used to judge and find words.
//
// Trie implements engine.Dictionary: both exact-word and prefix queries walk
// one node per letter, so the enumerator can abandon a branch as soon as the
// letters traced so far no longer begin any word.
//
// Usage:
//
//	dict, err := dictionary.Open(os.Getenv("DICTIONARY_FILE"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	dict.ContainsWord("tram")   // true
//	dict.ContainsPrefix("TRA")  // true
//
// An empty path selects a small embedded English word list.
package dictionary
