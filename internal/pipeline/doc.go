// Package pipeline drives a flashcard run end to end: it splits the
// syllabus into units, asks the text generator for question/answer pairs,
// filters pairs already in the ledger, and submits the rest to the note
// sink one at a time, persisting the ledger after every accepted card.
//
// Everything is sequential. Submissions are paced by a fixed delay that
// is injected as a Sleeper so tests run instantly.
package pipeline
