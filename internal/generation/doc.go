// Package generation defines the boundary between the flashcard pipeline and
// external text-generation services (Gemini, OpenAI). It owns the
// instructional prompt sent for each syllabus unit and the parser that turns
// the free-text reply into question/answer pairs, so that backends only have
// to move a prompt out and a blob of text back.
package generation
