// Package analysis groups the term-statistics pipeline used to rank
// candidates: tokenisation, TF-IDF vectors, ranking and keyword extraction.
//
// Every function in these packages is pure. Nothing is cached between calls,
// so a vocabulary is always built from the corpus it scores.
package analysis
