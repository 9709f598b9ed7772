// Package gemini provides an implementation of the generation.TextGenerator
// interface that uses Google's Gemini API.
//
// This package is an infrastructure adapter: it translates one prompt into a
// single GenerateContent call and maps the reply, or its absence, onto the
// error taxonomy of the generation package. It keeps no conversation state,
// does not stream, and does not retry.
package gemini
