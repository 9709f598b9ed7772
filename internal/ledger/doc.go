// Package ledger persists the record of flashcards already created in Anki
// as a single human-readable JSON document. The file is rewritten in full on
// every save; there is one writer per file and no locking.
package ledger
