// Package syllabus splits course syllabus text into units, the batching
// granularity for flashcard generation, and carries the built-in syllabus
// used when no syllabus file is configured.
package syllabus
