// Package domain contains the core entities of the flashcard pipeline:
// generated question/answer pairs, syllabus units, and the ledger of cards
// that have already been pushed into Anki. It is independent of any
// generation backend, note sink, or storage format.
package domain
